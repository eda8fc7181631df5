package models

// TripReminderPayload is the queued message for an upcoming-trip
// reminder, enqueued when a reservation's payment is verified.
type TripReminderPayload struct {
	ReservationID string `json:"reservationId"`
	UserID        string `json:"userId"`
	Kind          string `json:"kind"`
	Summary       string `json:"summary"`
	FireDate      string `json:"fireDate"`
}
