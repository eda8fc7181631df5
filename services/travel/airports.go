// Package travel holds the static airport/airline reference data used
// to turn provider IATA codes into display names.
package travel

import (
	"sort"
	"strings"
)

// AirportInfo describes one known airport.
type AirportInfo struct {
	City    string
	Airport string
	Country string
}

var airportCodes = map[string]AirportInfo{
	// Major US airports
	"JFK": {"New York", "John F. Kennedy International Airport", "United States"},
	"LAX": {"Los Angeles", "Los Angeles International Airport", "United States"},
	"ORD": {"Chicago", "O'Hare International Airport", "United States"},
	"DFW": {"Dallas", "Dallas/Fort Worth International Airport", "United States"},
	"ATL": {"Atlanta", "Hartsfield-Jackson Atlanta International Airport", "United States"},
	"SFO": {"San Francisco", "San Francisco International Airport", "United States"},
	"MIA": {"Miami", "Miami International Airport", "United States"},
	"LAS": {"Las Vegas", "McCarran International Airport", "United States"},
	"DEN": {"Denver", "Denver International Airport", "United States"},
	"SEA": {"Seattle", "Seattle-Tacoma International Airport", "United States"},
	"BOS": {"Boston", "Logan International Airport", "United States"},
	"IAH": {"Houston", "George Bush Intercontinental Airport", "United States"},
	"MCO": {"Orlando", "Orlando International Airport", "United States"},
	"PHX": {"Phoenix", "Phoenix Sky Harbor International Airport", "United States"},
	"CLT": {"Charlotte", "Charlotte Douglas International Airport", "United States"},
	"EWR": {"Newark", "Newark Liberty International Airport", "United States"},
	"DTW": {"Detroit", "Detroit Metropolitan Airport", "United States"},
	"MSP": {"Minneapolis", "Minneapolis-Saint Paul International Airport", "United States"},
	"FLL": {"Fort Lauderdale", "Fort Lauderdale-Hollywood International Airport", "United States"},
	"BWI": {"Baltimore", "Baltimore/Washington International Airport", "United States"},

	// Major European airports
	"LHR": {"London", "Heathrow Airport", "United Kingdom"},
	"CDG": {"Paris", "Charles de Gaulle Airport", "France"},
	"AMS": {"Amsterdam", "Amsterdam Airport Schiphol", "Netherlands"},
	"FRA": {"Frankfurt", "Frankfurt Airport", "Germany"},
	"MAD": {"Madrid", "Adolfo Suárez Madrid-Barajas Airport", "Spain"},
	"BCN": {"Barcelona", "Barcelona-El Prat Airport", "Spain"},
	"FCO": {"Rome", "Leonardo da Vinci International Airport", "Italy"},
	"MXP": {"Milan", "Milan Malpensa Airport", "Italy"},
	"ZRH": {"Zurich", "Zurich Airport", "Switzerland"},
	"VIE": {"Vienna", "Vienna International Airport", "Austria"},
	"CPH": {"Copenhagen", "Copenhagen Airport", "Denmark"},
	"ARN": {"Stockholm", "Stockholm Arlanda Airport", "Sweden"},
	"OSL": {"Oslo", "Oslo Airport", "Norway"},
	"HEL": {"Helsinki", "Helsinki Airport", "Finland"},
	"WAW": {"Warsaw", "Warsaw Chopin Airport", "Poland"},
	"PRG": {"Prague", "Václav Havel Airport Prague", "Czech Republic"},
	"BUD": {"Budapest", "Budapest Ferenc Liszt International Airport", "Hungary"},
	"ATH": {"Athens", "Athens International Airport", "Greece"},
	"DUB": {"Dublin", "Dublin Airport", "Ireland"},
	"EDI": {"Edinburgh", "Edinburgh Airport", "United Kingdom"},
	"MAN": {"Manchester", "Manchester Airport", "United Kingdom"},
	"BRU": {"Brussels", "Brussels Airport", "Belgium"},
	"LUX": {"Luxembourg", "Luxembourg Airport", "Luxembourg"},

	// Major Asian airports
	"NRT": {"Tokyo", "Narita International Airport", "Japan"},
	"HND": {"Tokyo", "Haneda Airport", "Japan"},
	"ICN": {"Seoul", "Incheon International Airport", "South Korea"},
	"PEK": {"Beijing", "Beijing Capital International Airport", "China"},
	"PVG": {"Shanghai", "Shanghai Pudong International Airport", "China"},
	"HKG": {"Hong Kong", "Hong Kong International Airport", "Hong Kong"},
	"SIN": {"Singapore", "Singapore Changi Airport", "Singapore"},
	"BKK": {"Bangkok", "Suvarnabhumi Airport", "Thailand"},
	"DEL": {"Delhi", "Indira Gandhi International Airport", "India"},
	"BOM": {"Mumbai", "Chhatrapati Shivaji Maharaj International Airport", "India"},
	"BLR": {"Bangalore", "Kempegowda International Airport", "India"},
	"MAA": {"Chennai", "Chennai International Airport", "India"},
	"HYD": {"Hyderabad", "Rajiv Gandhi International Airport", "India"},
	"CCU": {"Kolkata", "Netaji Subhas Chandra Bose International Airport", "India"},
	"KUL": {"Kuala Lumpur", "Kuala Lumpur International Airport", "Malaysia"},
	"CGK": {"Jakarta", "Soekarno-Hatta International Airport", "Indonesia"},
	"MNL": {"Manila", "Ninoy Aquino International Airport", "Philippines"},
	"HAN": {"Hanoi", "Noi Bai International Airport", "Vietnam"},
	"SGN": {"Ho Chi Minh City", "Tan Son Nhat International Airport", "Vietnam"},
	"DAC": {"Dhaka", "Hazrat Shahjalal International Airport", "Bangladesh"},
	"KTM": {"Kathmandu", "Tribhuvan International Airport", "Nepal"},
	"CMB": {"Colombo", "Bandaranaike International Airport", "Sri Lanka"},
	"MLE": {"Male", "Velana International Airport", "Maldives"},

	// Major Middle Eastern airports
	"DXB": {"Dubai", "Dubai International Airport", "United Arab Emirates"},
	"AUH": {"Abu Dhabi", "Abu Dhabi International Airport", "United Arab Emirates"},
	"DOH": {"Doha", "Hamad International Airport", "Qatar"},
	"RUH": {"Riyadh", "King Khalid International Airport", "Saudi Arabia"},
	"JED": {"Jeddah", "King Abdulaziz International Airport", "Saudi Arabia"},
	"AMM": {"Amman", "Queen Alia International Airport", "Jordan"},
	"BEY": {"Beirut", "Beirut-Rafic Hariri International Airport", "Lebanon"},
	"TLV": {"Tel Aviv", "Ben Gurion Airport", "Israel"},
	"CAI": {"Cairo", "Cairo International Airport", "Egypt"},
	"IST": {"Istanbul", "Istanbul Airport", "Turkey"},

	// Major African airports
	"JNB": {"Johannesburg", "O. R. Tambo International Airport", "South Africa"},
	"CPT": {"Cape Town", "Cape Town International Airport", "South Africa"},
	"NBO": {"Nairobi", "Jomo Kenyatta International Airport", "Kenya"},
	"ADD": {"Addis Ababa", "Bole International Airport", "Ethiopia"},
	"CMN": {"Casablanca", "Mohammed V International Airport", "Morocco"},
	"TUN": {"Tunis", "Tunis-Carthage International Airport", "Tunisia"},
	"ALG": {"Algiers", "Houari Boumediene Airport", "Algeria"},
	"DAR": {"Dar es Salaam", "Julius Nyerere International Airport", "Tanzania"},

	// Major Oceanian airports
	"SYD": {"Sydney", "Sydney Airport", "Australia"},
	"MEL": {"Melbourne", "Melbourne Airport", "Australia"},
	"BNE": {"Brisbane", "Brisbane Airport", "Australia"},
	"PER": {"Perth", "Perth Airport", "Australia"},
	"ADL": {"Adelaide", "Adelaide Airport", "Australia"},
	"AKL": {"Auckland", "Auckland Airport", "New Zealand"},
	"WLG": {"Wellington", "Wellington Airport", "New Zealand"},
	"CHC": {"Christchurch", "Christchurch Airport", "New Zealand"},
	"NAN": {"Nadi", "Nadi International Airport", "Fiji"},

	// Major Canadian airports
	"YYZ": {"Toronto", "Toronto Pearson International Airport", "Canada"},
	"YVR": {"Vancouver", "Vancouver International Airport", "Canada"},
	"YUL": {"Montreal", "Montréal-Trudeau International Airport", "Canada"},
	"YYC": {"Calgary", "Calgary International Airport", "Canada"},
	"YOW": {"Ottawa", "Ottawa Macdonald-Cartier International Airport", "Canada"},
	"YEG": {"Edmonton", "Edmonton International Airport", "Canada"},
	"YHZ": {"Halifax", "Halifax Stanfield International Airport", "Canada"},
	"YWG": {"Winnipeg", "Winnipeg James Armstrong Richardson International Airport", "Canada"},
}

// cityToAirports is the reverse mapping, built once at init.
var cityToAirports = func() map[string][]string {
	m := make(map[string][]string)
	for code, info := range airportCodes {
		key := strings.ToLower(info.City)
		m[key] = append(m[key], code)
	}
	for _, codes := range m {
		sort.Strings(codes)
	}
	return m
}()

// GetAirportInfo returns the known airport for code, or nil.
func GetAirportInfo(code string) *AirportInfo {
	if info, ok := airportCodes[strings.ToUpper(code)]; ok {
		return &info
	}
	return nil
}

// GetCityName resolves an airport code to its city name. Unknown codes
// pass through unchanged; the mapping never fails.
func GetCityName(code string) string {
	if info := GetAirportInfo(code); info != nil {
		return info.City
	}
	return code
}

// GetAirportName resolves an airport code to its full airport name,
// with the same identity fallback as GetCityName.
func GetAirportName(code string) string {
	if info := GetAirportInfo(code); info != nil {
		return info.Airport
	}
	return code
}

// FindAirportCodes returns the airport codes serving a city name. The
// input may already be an IATA code, which matches itself.
func FindAirportCodes(cityName string) []string {
	normalized := strings.ToLower(strings.TrimSpace(cityName))

	if codes, ok := cityToAirports[normalized]; ok {
		return codes
	}

	// The assistant sometimes hands us a code instead of a city.
	if GetAirportInfo(cityName) != nil {
		return []string{strings.ToUpper(cityName)}
	}

	// Partial match.
	var matches []string
	seen := make(map[string]bool)
	for city, codes := range cityToAirports {
		if strings.Contains(city, normalized) || strings.Contains(normalized, city) {
			for _, code := range codes {
				if !seen[code] {
					seen[code] = true
					matches = append(matches, code)
				}
			}
		}
	}
	return matches
}
