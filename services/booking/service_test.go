package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	reservationRepo "avion/database/repository/reservation"
	"avion/models"
)

// memoryRepo is an in-memory reservation store for tests.
type memoryRepo struct {
	mu           sync.Mutex
	reservations map[string]*models.Reservation
	creates      int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{reservations: make(map[string]*models.Reservation)}
}

func (r *memoryRepo) Create(ctx context.Context, reservation *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	stored := *reservation
	r.reservations[reservation.ID] = &stored
	return nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *memoryRepo) SetPaymentVerified(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.reservations[id]
	if !ok {
		return reservationRepo.ErrNotFound
	}
	stored.HasCompletedPayment = true
	return nil
}

func newTestService(repo *memoryRepo) *DefaultBookingService {
	return &DefaultBookingService{Repo: repo, Logger: zap.NewNop()}
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateReservationRequiresUser(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)

	_, err := svc.CreateReservation(context.Background(), "", FlightReservationInput{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Zero(t, repo.creates, "no partial reservation may be written")

	_, err = svc.CreateHotelReservation(context.Background(), "", HotelReservationInput{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Zero(t, repo.creates)
}

func TestCreateReservationSumsBothPrices(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	reservation, err := svc.CreateReservation(context.Background(), "user-1", FlightReservationInput{
		Seats:               []string{"3C"},
		FlightNumber:        "BA142",
		SelectedFlightPrice: floatPtr(1200),
		SelectedSeatPrice:   floatPtr(50),
	})
	require.NoError(t, err)

	details := reservation.Details.(models.FlightReservationDetails)
	assert.Equal(t, 1250.0, details.TotalPriceInUSD)
	assert.False(t, reservation.HasCompletedPayment)
	assert.Equal(t, models.ReservationKindFlight, reservation.Kind)
}

func TestCreateReservationWithEmptyInput(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	reservation, err := svc.CreateReservation(context.Background(), "user-1", FlightReservationInput{})
	require.NoError(t, err)

	details := reservation.Details.(models.FlightReservationDetails)
	assert.GreaterOrEqual(t, details.TotalPriceInUSD, 0.0)
	assert.NotEmpty(t, reservation.ID)
}

func TestBoardingPassGatedOnPayment(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	reservation, err := svc.CreateReservation(ctx, "user-1", FlightReservationInput{
		Seats:         []string{"3C", "3D"},
		FlightNumber:  "BA142",
		PassengerName: "Ada Lovelace",
		Departure:     models.ReservationEndpoint{AirportCode: "JFK", Timestamp: "2026-09-01T09:30:00Z"},
		Arrival:       models.ReservationEndpoint{AirportCode: "LHR", Timestamp: "2026-09-01T21:45:00Z"},
	})
	require.NoError(t, err)

	_, err = svc.BoardingPass(ctx, "user-1", reservation.ID)
	assert.ErrorIs(t, err, ErrPaymentNotVerified)

	status, err := svc.VerifyPayment(ctx, "user-1", reservation.ID)
	require.NoError(t, err)
	assert.False(t, status.HasCompletedPayment)

	_, err = svc.CompletePayment(ctx, "user-1", reservation.ID)
	require.NoError(t, err)

	status, err = svc.VerifyPayment(ctx, "user-1", reservation.ID)
	require.NoError(t, err)
	assert.True(t, status.HasCompletedPayment)

	pass, err := svc.BoardingPass(ctx, "user-1", reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", pass.PassengerName)
	assert.Equal(t, []string{"3C", "3D"}, pass.Seats)
	assert.Equal(t, "New York", pass.Departure.CityName)
}

func TestNormalizeEndpointFillsAirportNames(t *testing.T) {
	endpoint := normalizeEndpoint(models.ReservationEndpoint{AirportCode: "JFK"})
	assert.Equal(t, "New York", endpoint.CityName)
	assert.Equal(t, "John F. Kennedy International Airport", endpoint.AirportName)

	// Captured names win over the lookup.
	endpoint = normalizeEndpoint(models.ReservationEndpoint{
		AirportCode: "JFK",
		CityName:    "NYC",
		AirportName: "Kennedy",
	})
	assert.Equal(t, "NYC", endpoint.CityName)
	assert.Equal(t, "Kennedy", endpoint.AirportName)
}

func TestCompletePaymentIsIdempotent(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	reservation, err := svc.CreateReservation(ctx, "user-1", FlightReservationInput{})
	require.NoError(t, err)

	first, err := svc.CompletePayment(ctx, "user-1", reservation.ID)
	require.NoError(t, err)
	second, err := svc.CompletePayment(ctx, "user-1", reservation.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.creates, "repeat payment must not create reservations")
}

func TestAuthorizePaymentDoesNotMutate(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	reservation, err := svc.CreateReservation(ctx, "user-1", FlightReservationInput{})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		auth, err := svc.AuthorizePayment(ctx, "user-1", reservation.ID)
		require.NoError(t, err)
		assert.Equal(t, reservation.ID, auth.ReservationID)
	}
	assert.Equal(t, 1, repo.creates)

	status, err := svc.VerifyPayment(ctx, "user-1", reservation.ID)
	require.NoError(t, err)
	assert.False(t, status.HasCompletedPayment, "authorize alone must not flip the flag")
}

func TestReservationOwnership(t *testing.T) {
	svc := newTestService(newMemoryRepo())
	ctx := context.Background()

	reservation, err := svc.CreateReservation(ctx, "user-1", FlightReservationInput{})
	require.NoError(t, err)

	_, err = svc.VerifyPayment(ctx, "user-2", reservation.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)
	_, err = svc.BoardingPass(ctx, "user-2", reservation.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)
	_, err = svc.CompletePayment(ctx, "user-2", reservation.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestUnknownReservation(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	_, err := svc.VerifyPayment(context.Background(), "user-1", "missing")
	assert.ErrorIs(t, err, reservationRepo.ErrNotFound)
}

func TestHotelConfirmationGatedOnPayment(t *testing.T) {
	svc := newTestService(newMemoryRepo())
	ctx := context.Background()

	reservation, err := svc.CreateHotelReservation(ctx, "user-1", HotelReservationInput{
		HotelID:      "hotel_1",
		RoomID:       "room_2",
		GuestName:    "Ada Lovelace",
		CheckInDate:  "2026-09-10",
		CheckOutDate: "2026-09-13",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReservationKindHotel, reservation.Kind)

	details := reservation.Details.(models.HotelReservationDetails)
	// Three nights in the Deluxe King at 219/night.
	assert.Equal(t, 657.0, details.TotalPrice)

	_, err = svc.HotelConfirmation(ctx, "user-1", reservation.ID)
	assert.ErrorIs(t, err, ErrPaymentNotVerified)

	_, err = svc.CompletePayment(ctx, "user-1", reservation.ID)
	require.NoError(t, err)

	confirmation, err := svc.HotelConfirmation(ctx, "user-1", reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, "hotel_1", confirmation.HotelID)
	assert.Equal(t, "2026-09-13", confirmation.CheckOutDate)
}

func TestSelectSeatsShape(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	selection := svc.SelectSeats(context.Background(), "BA142")
	require.Len(t, selection.Seats, 60)

	first := selection.Seats[0]
	assert.Equal(t, "1A", first.SeatNumber)
	assert.Equal(t, cabinFirst, first.Class)
	assert.Equal(t, 180.0, first.PriceInUSD)

	// Row 7 seat B is an economy middle seat.
	var midEconomy *models.Seat
	for i := range selection.Seats {
		if selection.Seats[i].SeatNumber == "7B" {
			midEconomy = &selection.Seats[i]
			break
		}
	}
	require.NotNil(t, midEconomy)
	assert.Equal(t, cabinEconomy, midEconomy.Class)
	assert.Equal(t, 35.0, midEconomy.PriceInUSD)
}

func TestSelectHotelRoomShape(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	selection := svc.SelectHotelRoom(context.Background(), "hotel_1")
	assert.Equal(t, "hotel_1", selection.HotelID)
	require.Len(t, selection.Rooms, 3)
	assert.Equal(t, "room_1", selection.Rooms[0].ID)
}
