package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalPrice(t *testing.T) {
	flight := 1200.0
	seat := 50.0

	assert.Equal(t, 1250.0, computeTotalPrice(&flight, &seat, 1))
	assert.Equal(t, 1200.0, computeTotalPrice(&flight, nil, 1))
	assert.Equal(t, 50.0, computeTotalPrice(nil, &seat, 1))
}

func TestComputeTotalPriceEstimatesWhenUnknown(t *testing.T) {
	oneSeat := computeTotalPrice(nil, nil, 1)
	twoSeats := computeTotalPrice(nil, nil, 2)

	assert.Greater(t, oneSeat, 0.0)
	assert.Greater(t, twoSeats, oneSeat)
	// Zero seats still estimates as a single passenger.
	assert.Equal(t, oneSeat, computeTotalPrice(nil, nil, 0))
}

func TestHotelTotalPrice(t *testing.T) {
	captured := 500.0
	assert.Equal(t, 500.0, hotelTotalPrice(HotelReservationInput{TotalPrice: &captured}))

	// Known room: nights times the nightly rate.
	assert.Equal(t, 438.0, hotelTotalPrice(HotelReservationInput{
		RoomID:       "room_2",
		CheckInDate:  "2026-09-10",
		CheckOutDate: "2026-09-12",
	}))

	// Unknown room and dates: one night at the fallback rate.
	assert.Equal(t, fallbackNightlyRate, hotelTotalPrice(HotelReservationInput{}))
}
