package notification

import (
	"context"

	"github.com/RamadhaniRO/voya-travel-platform/internal/domain"
)

// Store is the durable side of a user's notification feed. The feed treats it
// as the single source of truth and only caches what it returns.
type Store interface {
	FetchRecent(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
	Delete(ctx context.Context, id, userID int64) error
}
