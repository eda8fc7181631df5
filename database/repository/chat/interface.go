package chat

import (
	"context"
	"errors"

	"avion/models"
)

// ErrNotFound is returned when no chat exists for the given id.
var ErrNotFound = errors.New("chat not found")

// Repository persists chat histories keyed by chat id.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Chat, error)
	// Save upserts the full chat document (history replacement).
	Save(ctx context.Context, chat *models.Chat) error
	Delete(ctx context.Context, id string) error
}
