package booking

import (
	"fmt"
	"math/rand"

	"avion/models"
)

const (
	cabinFirst    = "first"
	cabinBusiness = "business"
	cabinEconomy  = "economy"
)

var seatLetters = []string{"A", "B", "C", "D", "E", "F"}

// seatClassForRow maps a row number of the mock cabin onto its class.
// Rows 1-2 are first, 3-5 business, everything up to row 10 economy.
func seatClassForRow(row int) string {
	switch {
	case row <= 2:
		return cabinFirst
	case row <= 5:
		return cabinBusiness
	default:
		return cabinEconomy
	}
}

func seatPosition(letter string) string {
	switch letter {
	case "A", "F":
		return "window"
	case "C", "D":
		return "aisle"
	default:
		return "middle"
	}
}

func seatPrice(class, position string) float64 {
	prices := map[string]map[string]float64{
		cabinFirst:    {"window": 180, "aisle": 160, "middle": 140},
		cabinBusiness: {"window": 120, "aisle": 110, "middle": 90},
		cabinEconomy:  {"window": 60, "aisle": 50, "middle": 35},
	}
	return prices[class][position]
}

func seatAvailability(class string) bool {
	// First class fills up last, economy first.
	switch class {
	case cabinFirst:
		return rand.Float64() > 0.2
	case cabinBusiness:
		return rand.Float64() > 0.3
	default:
		return rand.Float64() > 0.4
	}
}

// generateSeatMap builds the mock 10-row, 6-column cabin for a flight.
// Availability is randomized per call; prices depend only on class and
// position so the same seat number always costs the same.
func generateSeatMap() []models.Seat {
	seats := make([]models.Seat, 0, 60)
	for row := 1; row <= 10; row++ {
		class := seatClassForRow(row)
		for _, letter := range seatLetters {
			position := seatPosition(letter)
			seats = append(seats, models.Seat{
				SeatNumber:  fmt.Sprintf("%d%s", row, letter),
				PriceInUSD:  seatPrice(class, position),
				IsAvailable: seatAvailability(class),
				Class:       class,
			})
		}
	}
	return seats
}
