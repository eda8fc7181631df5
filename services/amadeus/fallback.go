package amadeus

import (
	"fmt"
	"strings"
	"time"

	"avion/models"
	"avion/services/travel"
)

// Sample data generators. These produce results with exactly the same
// shape as live responses so the UI renders them unchanged, tagged as
// sample data. They back every adapter failure path.

type sampleCarrier struct {
	code     string
	name     string
	priceMod float64
	stops    int
}

var sampleCarriers = []sampleCarrier{
	{"UA", "United Airlines", 1.00, 0},
	{"BA", "British Airways", 1.15, 0},
	{"EK", "Emirates", 1.30, 0},
	{"F9", "Frontier Airlines", 0.65, 1},
}

var sampleRoutePrices = map[string]float64{
	"LHR-JFK": 450, "JFK-LHR": 450,
	"LHR-CDG": 120, "CDG-LHR": 120,
	"SFO-JFK": 320, "JFK-SFO": 320,
	"LAX-NRT": 650, "NRT-LAX": 650,
	"IST-DXB": 250, "DXB-IST": 250,
	"FRA-IST": 150, "IST-FRA": 150,
}

func sampleFlightSearchResults(origin, destination string, now time.Time) *models.FlightSearchResults {
	originCode := firstCodeOr(origin, "JFK")
	destinationCode := firstCodeOr(destination, "LHR")

	basePrice, ok := sampleRoutePrices[originCode+"-"+destinationCode]
	if !ok {
		basePrice = 400
	}

	departureDay := now.AddDate(0, 0, 1)
	flightHours := 7 * time.Hour

	flights := make([]models.Flight, 0, len(sampleCarriers))
	for i, carrier := range sampleCarriers {
		price := float64(int(basePrice*carrier.priceMod/5) * 5)
		duration := flightHours
		if carrier.stops > 0 {
			duration += 90 * time.Minute
		}

		depTime := time.Date(departureDay.Year(), departureDay.Month(), departureDay.Day(),
			6+i*3, 0, 0, 0, time.UTC)
		arrTime := depTime.Add(duration)

		flights = append(flights, models.Flight{
			ID: fmt.Sprintf("%s%d", carrier.code, 100+i*13),
			Departure: models.FlightEndpoint{
				CityName:    travel.GetCityName(originCode),
				AirportCode: originCode,
				Timestamp:   depTime.Format(time.RFC3339),
			},
			Arrival: models.FlightEndpoint{
				CityName:    travel.GetCityName(destinationCode),
				AirportCode: destinationCode,
				Timestamp:   arrTime.Format(time.RFC3339),
			},
			Airlines:      []string{carrier.name},
			PriceInUSD:    price,
			NumberOfStops: carrier.stops,
		})
	}

	return &models.FlightSearchResults{Flights: flights, Mode: "oneway", IsSampleData: true}
}

func sampleFlightStatus(flightNumber, date string) *models.FlightStatus {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		day = time.Now().AddDate(0, 0, 1)
	}
	depTime := time.Date(day.Year(), day.Month(), day.Day(), 9, 30, 0, 0, time.UTC)
	arrTime := depTime.Add(7*time.Hour + 15*time.Minute)

	return &models.FlightStatus{
		FlightNumber: strings.ToUpper(flightNumber),
		Departure: models.StatusEndpoint{
			CityName:    travel.GetCityName("JFK"),
			AirportCode: "JFK",
			AirportName: travel.GetAirportName("JFK"),
			Timestamp:   depTime.Format(time.RFC3339),
			Terminal:    "4",
			Gate:        "B22",
		},
		Arrival: models.StatusEndpoint{
			CityName:    travel.GetCityName("LHR"),
			AirportCode: "LHR",
			AirportName: travel.GetAirportName("LHR"),
			Timestamp:   arrTime.Format(time.RFC3339),
			Terminal:    "5",
			Gate:        "TBD",
		},
		TotalDistanceInMiles: 3451,
		IsSampleData:         true,
	}
}

func sampleHotelSearchResults(city string, nights int) *models.HotelSearchResults {
	cityName := travel.GetCityName(city)
	if cityName == "" {
		cityName = city
	}

	build := func(id, name, street, roomType string, perNight, rating float64, amenities []string) models.Hotel {
		return models.Hotel{
			ID:            id,
			Name:          name,
			Address:       fmt.Sprintf("%s, %s", street, cityName),
			PricePerNight: perNight,
			TotalNights:   nights,
			TotalPrice:    perNight * float64(nights),
			Rating:        rating,
			Amenities:     amenities,
			RoomType:      roomType,
		}
	}

	return &models.HotelSearchResults{
		Hotels: []models.Hotel{
			build("hotel_1", fmt.Sprintf("The Grand %s Hotel", cityName), "123 Grand St",
				"Deluxe King Room", 220, 4.7, []string{"Free WiFi", "Breakfast included", "Gym", "Bar"}),
			build("hotel_2", "City Center Inn", "456 Central Ave",
				"Standard Double Room", 150, 4.2, []string{"Free WiFi", "Breakfast included"}),
			build("hotel_3", fmt.Sprintf("Budget Stay %s", cityName), "789 Budget Rd",
				"Single Room", 90, 3.8, []string{"Free WiFi"}),
		},
		IsSampleData: true,
	}
}

func firstCodeOr(cityOrCode, fallback string) string {
	if codes := travel.FindAirportCodes(cityOrCode); len(codes) > 0 {
		return codes[0]
	}
	if len(cityOrCode) == 3 {
		return strings.ToUpper(cityOrCode)
	}
	return fallback
}
