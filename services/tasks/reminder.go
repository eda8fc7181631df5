package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"avion/config"
	"avion/models"
	"avion/services/booking"
	"avion/utils"
)

const TypeTripReminder = "trip:reminder"

// reminderLeadTime is how long before departure or check-in the reminder
// fires.
const reminderLeadTime = 24 * time.Hour

// NewTripReminderTask wraps a payload into an asynq task scheduled for
// fireAt.
func NewTripReminderTask(payload models.TripReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeTripReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}

// ReminderService enqueues trip reminders once payment is verified.
// It implements booking.ReminderScheduler.
type ReminderService struct {
	client *asynq.Client
	logger *zap.Logger
	now    func() time.Time
}

var _ booking.ReminderScheduler = (*ReminderService)(nil)

func NewReminderService() *ReminderService {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	return &ReminderService{
		client: client,
		logger: utils.GetLogger().Named("reminders"),
		now:    time.Now,
	}
}

// ScheduleTripReminder queues a reminder 24 hours before the trip starts.
// Trips starting sooner than that, or with an unparsable start time, are
// skipped silently: a reminder that cannot be timed is worse than none.
func (r *ReminderService) ScheduleTripReminder(ctx context.Context, reservation *models.Reservation) error {
	start, summary, ok := tripStart(reservation)
	if !ok {
		r.logger.Debug("No usable trip start time, skipping reminder",
			zap.String("reservationID", reservation.ID))
		return nil
	}
	fireAt := start.Add(-reminderLeadTime)
	if !fireAt.After(r.now()) {
		return nil
	}

	payload := models.TripReminderPayload{
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		Kind:          reservation.Kind,
		Summary:       summary,
		FireDate:      fireAt.UTC().Format(time.RFC3339),
	}
	task, opts, err := NewTripReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := r.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueueing trip reminder: %w", err)
	}
	r.logger.Info("Trip reminder scheduled",
		zap.String("reservationID", reservation.ID),
		zap.Time("fireAt", fireAt))
	return nil
}

// tripStart pulls the trip's start moment out of the reservation blob.
// Flight departures carry RFC 3339 timestamps; hotel check-ins are plain
// dates and default to 15:00 UTC check-in.
func tripStart(reservation *models.Reservation) (time.Time, string, bool) {
	switch reservation.Kind {
	case models.ReservationKindFlight:
		details, err := booking.FlightDetails(reservation)
		if err != nil {
			return time.Time{}, "", false
		}
		start, err := time.Parse(time.RFC3339, details.Departure.Timestamp)
		if err != nil {
			return time.Time{}, "", false
		}
		summary := fmt.Sprintf("Flight %s from %s to %s",
			details.FlightNumber, details.Departure.CityName, details.Arrival.CityName)
		return start, summary, true
	case models.ReservationKindHotel:
		details, err := booking.HotelDetails(reservation)
		if err != nil {
			return time.Time{}, "", false
		}
		day, err := time.Parse("2006-01-02", details.CheckInDate)
		if err != nil {
			return time.Time{}, "", false
		}
		start := day.Add(15 * time.Hour)
		summary := fmt.Sprintf("Hotel check-in for %s on %s", details.GuestName, details.CheckInDate)
		return start, summary, true
	default:
		return time.Time{}, "", false
	}
}
