package repositories

import (
	"context"

	"github.com/google/uuid"
	"portfolio.backend/internal/domain/entities"
)

// AttachmentRepository writes an attachment path only while the column is still empty.
// It reports false when the attachment was already set.
type AttachmentRepository interface {
	SetAttachment(ctx context.Context, id uuid.UUID, field entities.AttachmentField, path string) (bool, error)
}

type ProfileRepository interface {
	AttachmentRepository
	Create(ctx context.Context, profile *entities.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error)
	// GetActive returns the oldest profile, or ErrNotFound when there is none.
	GetActive(ctx context.Context) (*entities.Profile, error)
	List(ctx context.Context) ([]*entities.Profile, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, profile *entities.Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
	// GetOrCreate looks the profile up by name and inserts it only when missing.
	GetOrCreate(ctx context.Context, profile *entities.Profile) (bool, error)
}
