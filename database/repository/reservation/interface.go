package reservation

import (
	"context"
	"errors"

	"avion/models"
)

// ErrNotFound is returned when no reservation exists for the given id.
var ErrNotFound = errors.New("reservation not found")

// Repository defines the persisted reservation contract. Only the
// payment flag is ever mutable; there is no update of other fields.
type Repository interface {
	Create(ctx context.Context, res *models.Reservation) error
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	// SetPaymentVerified flips hasCompletedPayment to true. Verifying
	// an already-verified reservation is a no-op.
	SetPaymentVerified(ctx context.Context, id string) error
}
