package booking

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"avion/models"
)

// FlightDetails extracts the typed flight blob from a reservation. Records
// loaded from Mongo carry Details as a raw document, so the blob is
// round-tripped through bson when needed.
func FlightDetails(reservation *models.Reservation) (*models.FlightReservationDetails, error) {
	if reservation.Kind != models.ReservationKindFlight {
		return nil, fmt.Errorf("reservation %s is a %s reservation, not a flight", reservation.ID, reservation.Kind)
	}
	if details, ok := reservation.Details.(models.FlightReservationDetails); ok {
		return &details, nil
	}
	var details models.FlightReservationDetails
	if err := decodeDetails(reservation.Details, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func HotelDetails(reservation *models.Reservation) (*models.HotelReservationDetails, error) {
	if reservation.Kind != models.ReservationKindHotel {
		return nil, fmt.Errorf("reservation %s is a %s reservation, not a hotel stay", reservation.ID, reservation.Kind)
	}
	if details, ok := reservation.Details.(models.HotelReservationDetails); ok {
		return &details, nil
	}
	var details models.HotelReservationDetails
	if err := decodeDetails(reservation.Details, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func decodeDetails(raw, out interface{}) error {
	data, err := bson.Marshal(raw)
	if err != nil {
		return fmt.Errorf("re-encoding reservation details: %w", err)
	}
	if err := bson.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding reservation details: %w", err)
	}
	return nil
}
