package travel

import "strings"

// AirlineInfo describes one known carrier.
type AirlineInfo struct {
	Name    string
	Country string
}

var airlineCodes = map[string]AirlineInfo{
	// Major US airlines
	"AA": {"American Airlines", "United States"},
	"DL": {"Delta Air Lines", "United States"},
	"UA": {"United Airlines", "United States"},
	"WN": {"Southwest Airlines", "United States"},
	"AS": {"Alaska Airlines", "United States"},
	"B6": {"JetBlue Airways", "United States"},
	"NK": {"Spirit Airlines", "United States"},
	"F9": {"Frontier Airlines", "United States"},
	"HA": {"Hawaiian Airlines", "United States"},
	"AC": {"Air Canada", "Canada"},
	"WS": {"WestJet", "Canada"},

	// Major European airlines
	"BA": {"British Airways", "United Kingdom"},
	"LH": {"Lufthansa", "Germany"},
	"AF": {"Air France", "France"},
	"KL": {"KLM Royal Dutch Airlines", "Netherlands"},
	"IB": {"Iberia", "Spain"},
	"AZ": {"ITA Airways", "Italy"},
	"LX": {"Swiss International Air Lines", "Switzerland"},
	"OS": {"Austrian Airlines", "Austria"},
	"SK": {"SAS Scandinavian Airlines", "Sweden"},
	"AY": {"Finnair", "Finland"},
	"DY": {"Norwegian Air Shuttle", "Norway"},
	"TP": {"TAP Air Portugal", "Portugal"},
	"SN": {"Brussels Airlines", "Belgium"},
	"EI": {"Aer Lingus", "Ireland"},
	"LO": {"LOT Polish Airlines", "Poland"},
	"A3": {"Aegean Airlines", "Greece"},
	"TK": {"Turkish Airlines", "Turkey"},

	// Major Asian airlines
	"NH": {"All Nippon Airways", "Japan"},
	"JL": {"Japan Airlines", "Japan"},
	"KE": {"Korean Air", "South Korea"},
	"OZ": {"Asiana Airlines", "South Korea"},
	"CA": {"Air China", "China"},
	"MU": {"China Eastern Airlines", "China"},
	"CZ": {"China Southern Airlines", "China"},
	"CX": {"Cathay Pacific", "Hong Kong"},
	"SQ": {"Singapore Airlines", "Singapore"},
	"TG": {"Thai Airways International", "Thailand"},
	"AI": {"Air India", "India"},
	"6E": {"IndiGo", "India"},
	"MH": {"Malaysia Airlines", "Malaysia"},
	"GA": {"Garuda Indonesia", "Indonesia"},
	"PR": {"Philippine Airlines", "Philippines"},
	"VN": {"Vietnam Airlines", "Vietnam"},
	"QR": {"Qatar Airways", "Qatar"},
	"EK": {"Emirates", "United Arab Emirates"},
	"EY": {"Etihad Airways", "United Arab Emirates"},
	"SV": {"Saudi Arabian Airlines", "Saudi Arabia"},
	"RJ": {"Royal Jordanian", "Jordan"},
	"LY": {"El Al Israel Airlines", "Israel"},
	"MS": {"EgyptAir", "Egypt"},

	// Major Oceanian airlines
	"QF": {"Qantas", "Australia"},
	"VA": {"Virgin Australia", "Australia"},
	"NZ": {"Air New Zealand", "New Zealand"},
	"FJ": {"Fiji Airways", "Fiji"},

	// Major African airlines
	"SA": {"South African Airways", "South Africa"},
	"KQ": {"Kenya Airways", "Kenya"},
	"ET": {"Ethiopian Airlines", "Ethiopia"},
	"AT": {"Royal Air Maroc", "Morocco"},
	"TU": {"Tunisair", "Tunisia"},

	// Major Latin American airlines
	"LA": {"LATAM Airlines", "Chile"},
	"AV": {"Avianca", "Colombia"},
	"CM": {"Copa Airlines", "Panama"},
	"AM": {"Aeroméxico", "Mexico"},
	"AR": {"Aerolíneas Argentinas", "Argentina"},
	"JJ": {"LATAM Brasil", "Brazil"},
	"G3": {"Gol Transportes Aéreos", "Brazil"},
}

// GetAirlineInfo returns the known carrier for code, or nil.
func GetAirlineInfo(code string) *AirlineInfo {
	if info, ok := airlineCodes[strings.ToUpper(code)]; ok {
		return &info
	}
	return nil
}

// GetAirlineName resolves a carrier code to its display name. Unknown
// codes pass through unchanged.
func GetAirlineName(code string) string {
	if info := GetAirlineInfo(code); info != nil {
		return info.Name
	}
	return code
}
