package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"avion/models"
	"avion/services/travel"
)

const fallbackNightlyRate = 149.0

// mockRooms is the static room inventory offered for any hotel, matching
// the sample data used when live hotel offers are unavailable.
var mockRooms = []models.Room{
	{
		ID:            "room_1",
		Type:          "Standard Queen",
		PricePerNight: 149,
		Amenities:     []string{"Free WiFi", "Coffee maker", "City view"},
		Refundable:    false,
	},
	{
		ID:            "room_2",
		Type:          "Deluxe King",
		PricePerNight: 219,
		Amenities:     []string{"Free WiFi", "Mini bar", "Work desk", "Bathtub"},
		Refundable:    true,
	},
	{
		ID:            "room_3",
		Type:          "Executive Suite",
		PricePerNight: 349,
		Amenities:     []string{"Free WiFi", "Separate living area", "Lounge access", "Bathtub"},
		Refundable:    true,
	},
}

// HotelReservationInput mirrors FlightReservationInput for stays. Dates
// use YYYY-MM-DD strings as captured from the conversation.
type HotelReservationInput struct {
	HotelID      string   `json:"hotelId"`
	RoomID       string   `json:"roomId"`
	GuestName    string   `json:"guestName"`
	CheckInDate  string   `json:"checkInDate"`
	CheckOutDate string   `json:"checkOutDate"`
	TotalPrice   *float64 `json:"totalPrice,omitempty"`
}

// SelectHotelRoom returns the room choices for a hotel. Like the seat map
// it never fails; the inventory is local.
func (s *DefaultBookingService) SelectHotelRoom(ctx context.Context, hotelID string) *models.RoomSelection {
	s.Logger.Debug("Listing rooms", zap.String("hotelID", hotelID))
	return &models.RoomSelection{HotelID: hotelID, Rooms: mockRooms}
}

// CreateHotelReservation persists a hotel reservation for the signed-in
// user. The stay follows the same lifecycle as a flight reservation: it
// starts unpaid and only the verify step can flip the flag.
func (s *DefaultBookingService) CreateHotelReservation(ctx context.Context, userID string, input HotelReservationInput) (*models.Reservation, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	details := models.HotelReservationDetails{
		HotelID:      input.HotelID,
		RoomID:       input.RoomID,
		GuestName:    input.GuestName,
		CheckInDate:  input.CheckInDate,
		CheckOutDate: input.CheckOutDate,
		TotalPrice:   hotelTotalPrice(input),
	}

	reservation := &models.Reservation{
		ID:                  uuid.New().String(),
		UserID:              userID,
		Kind:                models.ReservationKindHotel,
		Details:             details,
		HasCompletedPayment: false,
		CreatedAt:           time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, reservation); err != nil {
		s.Logger.Error("Failed to persist hotel reservation", zap.Error(err))
		return nil, err
	}
	s.Logger.Info("Reservation created",
		zap.String("reservationID", reservation.ID),
		zap.String("kind", reservation.Kind),
		zap.Float64("totalPrice", details.TotalPrice))
	return reservation, nil
}

// HotelConfirmation builds the confirmed-stay document, gated on the
// stored payment flag exactly like the boarding pass.
func (s *DefaultBookingService) HotelConfirmation(ctx context.Context, userID, reservationID string) (*models.HotelBookingConfirmation, error) {
	reservation, err := s.ownedReservation(ctx, userID, reservationID)
	if err != nil {
		return nil, err
	}
	if !reservation.HasCompletedPayment {
		s.Logger.Warn("Hotel confirmation requested before payment",
			zap.String("reservationID", reservationID))
		return nil, ErrPaymentNotVerified
	}
	details, err := HotelDetails(reservation)
	if err != nil {
		return nil, err
	}
	return &models.HotelBookingConfirmation{
		ReservationID: reservation.ID,
		HotelID:       details.HotelID,
		RoomID:        details.RoomID,
		GuestName:     details.GuestName,
		CheckInDate:   details.CheckInDate,
		CheckOutDate:  details.CheckOutDate,
		TotalPrice:    details.TotalPrice,
	}, nil
}

// hotelTotalPrice prefers the price captured in conversation, then the
// selected room's nightly rate across the stay, then a flat estimate.
func hotelTotalPrice(input HotelReservationInput) float64 {
	if input.TotalPrice != nil && *input.TotalPrice >= 0 {
		return *input.TotalPrice
	}
	nights := travel.StayNights(input.CheckInDate, input.CheckOutDate)
	for _, room := range mockRooms {
		if room.ID == input.RoomID {
			return room.PricePerNight * float64(nights)
		}
	}
	return fallbackNightlyRate * float64(nights)
}
