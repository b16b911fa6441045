package repositories

import (
	"context"

	"github.com/google/uuid"
	"portfolio.backend/internal/domain/entities"
)

type ContactMessageRepository interface {
	Create(ctx context.Context, message *entities.ContactMessage) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ContactMessage, error)
	// List returns the newest messages first together with the unpaginated total.
	List(ctx context.Context, filter entities.ContactMessageFilter) ([]*entities.ContactMessage, int64, error)
	SetRead(ctx context.Context, id uuid.UUID, isRead bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountUnread(ctx context.Context) (int64, error)
}
