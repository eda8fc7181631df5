package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	reservationRepo "avion/database/repository/reservation"
	"avion/models"
	"avion/services/travel"
	"avion/utils"
)

// FlightReservationInput carries whatever details the conversation managed
// to collect before the reservation step. Every field is optional; missing
// prices are estimated and missing strings persist as empty.
type FlightReservationInput struct {
	Seats               []string `json:"seats"`
	FlightNumber        string   `json:"flightNumber"`
	Departure           models.ReservationEndpoint
	Arrival             models.ReservationEndpoint
	PassengerName       string   `json:"passengerName"`
	SelectedFlightPrice *float64 `json:"selectedFlightPrice,omitempty"`
	SelectedSeatPrice   *float64 `json:"selectedSeatPrice,omitempty"`
}

// PaymentAuthorization is returned by the authorize step. It only echoes
// the reservation so the caller can hand off to a payment collaborator;
// no charge happens here.
type PaymentAuthorization struct {
	ReservationID string `json:"reservationId"`
}

// PaymentStatus reports the stored payment flag for a reservation.
type PaymentStatus struct {
	ReservationID       string `json:"reservationId"`
	HasCompletedPayment bool   `json:"hasCompletedPayment"`
}

// Service owns the reservation lifecycle for both flights and hotels:
// create, authorize, verify, and the payment-gated confirmation documents.
type Service interface {
	SelectSeats(ctx context.Context, flightNumber string) *models.SeatSelection
	CreateReservation(ctx context.Context, userID string, input FlightReservationInput) (*models.Reservation, error)
	AuthorizePayment(ctx context.Context, userID, reservationID string) (*PaymentAuthorization, error)
	CompletePayment(ctx context.Context, userID, reservationID string) (*PaymentStatus, error)
	VerifyPayment(ctx context.Context, userID, reservationID string) (*PaymentStatus, error)
	BoardingPass(ctx context.Context, userID, reservationID string) (*models.BoardingPass, error)

	SelectHotelRoom(ctx context.Context, hotelID string) *models.RoomSelection
	CreateHotelReservation(ctx context.Context, userID string, input HotelReservationInput) (*models.Reservation, error)
	HotelConfirmation(ctx context.Context, userID, reservationID string) (*models.HotelBookingConfirmation, error)

	GetReservation(ctx context.Context, userID, reservationID string) (*models.Reservation, error)
}

// DefaultBookingService is the production implementation backed by the
// reservation repository.
type DefaultBookingService struct {
	Repo     reservationRepo.Repository
	Reminder ReminderScheduler
	Logger   *zap.Logger
}

// ReminderScheduler is notified once a payment is verified so a trip
// reminder can be queued. A nil scheduler disables reminders.
type ReminderScheduler interface {
	ScheduleTripReminder(ctx context.Context, reservation *models.Reservation) error
}

func NewBookingService(repo reservationRepo.Repository, reminder ReminderScheduler) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:     repo,
		Reminder: reminder,
		Logger:   utils.GetLogger().Named("booking"),
	}
}

// SelectSeats returns the mock seat map for a flight. It never fails: the
// cabin layout is generated locally.
func (s *DefaultBookingService) SelectSeats(ctx context.Context, flightNumber string) *models.SeatSelection {
	s.Logger.Debug("Generating seat map", zap.String("flightNumber", flightNumber))
	return &models.SeatSelection{Seats: generateSeatMap()}
}

// CreateReservation persists a flight reservation for the signed-in user.
// The total price follows the captured components: both prices sum, a
// single price stands alone, and an estimate covers the empty case.
func (s *DefaultBookingService) CreateReservation(ctx context.Context, userID string, input FlightReservationInput) (*models.Reservation, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	details := models.FlightReservationDetails{
		Seats:               input.Seats,
		FlightNumber:        input.FlightNumber,
		Departure:           normalizeEndpoint(input.Departure),
		Arrival:             normalizeEndpoint(input.Arrival),
		PassengerName:       input.PassengerName,
		SelectedFlightPrice: input.SelectedFlightPrice,
		SelectedSeatPrice:   input.SelectedSeatPrice,
		TotalPriceInUSD:     computeTotalPrice(input.SelectedFlightPrice, input.SelectedSeatPrice, len(input.Seats)),
	}

	reservation := &models.Reservation{
		ID:                  uuid.New().String(),
		UserID:              userID,
		Kind:                models.ReservationKindFlight,
		Details:             details,
		HasCompletedPayment: false,
		CreatedAt:           time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, reservation); err != nil {
		s.Logger.Error("Failed to persist reservation", zap.Error(err))
		return nil, err
	}
	s.Logger.Info("Reservation created",
		zap.String("reservationID", reservation.ID),
		zap.String("kind", reservation.Kind),
		zap.Float64("totalPriceInUSD", details.TotalPriceInUSD))
	return reservation, nil
}

// AuthorizePayment checks ownership and hands the reservation id back for
// the payment collaborator to act on. Calling it repeatedly is harmless:
// it never creates or mutates anything.
func (s *DefaultBookingService) AuthorizePayment(ctx context.Context, userID, reservationID string) (*PaymentAuthorization, error) {
	if _, err := s.ownedReservation(ctx, userID, reservationID); err != nil {
		return nil, err
	}
	return &PaymentAuthorization{ReservationID: reservationID}, nil
}

// CompletePayment records the (mocked) successful payment by flipping the
// stored flag. Completing an already-paid reservation is a no-op with the
// same result.
func (s *DefaultBookingService) CompletePayment(ctx context.Context, userID, reservationID string) (*PaymentStatus, error) {
	reservation, err := s.ownedReservation(ctx, userID, reservationID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.SetPaymentVerified(ctx, reservationID); err != nil {
		return nil, err
	}
	s.Logger.Info("Payment verified", zap.String("reservationID", reservationID))
	if s.Reminder != nil {
		reservation.HasCompletedPayment = true
		if err := s.Reminder.ScheduleTripReminder(ctx, reservation); err != nil {
			// Reminders are best effort; the payment itself already stuck.
			s.Logger.Warn("Failed to schedule trip reminder", zap.Error(err))
		}
	}
	return &PaymentStatus{ReservationID: reservationID, HasCompletedPayment: true}, nil
}

// VerifyPayment reads the stored flag without modifying it.
func (s *DefaultBookingService) VerifyPayment(ctx context.Context, userID, reservationID string) (*PaymentStatus, error) {
	reservation, err := s.ownedReservation(ctx, userID, reservationID)
	if err != nil {
		return nil, err
	}
	return &PaymentStatus{
		ReservationID:       reservationID,
		HasCompletedPayment: reservation.HasCompletedPayment,
	}, nil
}

// BoardingPass builds the boarding document for a paid flight reservation.
// The stored payment flag is the gate: an unpaid reservation is rejected
// no matter what the conversation claims.
func (s *DefaultBookingService) BoardingPass(ctx context.Context, userID, reservationID string) (*models.BoardingPass, error) {
	reservation, err := s.ownedReservation(ctx, userID, reservationID)
	if err != nil {
		return nil, err
	}
	if !reservation.HasCompletedPayment {
		s.Logger.Warn("Boarding pass requested before payment",
			zap.String("reservationID", reservationID))
		return nil, ErrPaymentNotVerified
	}
	details, err := FlightDetails(reservation)
	if err != nil {
		return nil, err
	}
	return &models.BoardingPass{
		ReservationID: reservation.ID,
		PassengerName: details.PassengerName,
		FlightNumber:  details.FlightNumber,
		Seats:         details.Seats,
		Departure:     details.Departure,
		Arrival:       details.Arrival,
	}, nil
}

// GetReservation fetches a reservation with the usual ownership check.
func (s *DefaultBookingService) GetReservation(ctx context.Context, userID, reservationID string) (*models.Reservation, error) {
	return s.ownedReservation(ctx, userID, reservationID)
}

func (s *DefaultBookingService) ownedReservation(ctx context.Context, userID, reservationID string) (*models.Reservation, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	reservation, err := s.Repo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.UserID != userID {
		return nil, ErrNotAuthorized
	}
	return reservation, nil
}

// normalizeEndpoint fills display names from airport data when the
// conversation only captured a code.
func normalizeEndpoint(e models.ReservationEndpoint) models.ReservationEndpoint {
	if e.AirportCode != "" {
		if e.CityName == "" {
			e.CityName = travel.GetCityName(e.AirportCode)
		}
		if e.AirportName == "" {
			e.AirportName = travel.GetAirportName(e.AirportCode)
		}
	}
	return e
}
