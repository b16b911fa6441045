package repositories

import (
	"context"

	"github.com/google/uuid"
	"portfolio.backend/internal/domain/entities"
)

type CertificationRepository interface {
	AttachmentRepository
	Create(ctx context.Context, certification *entities.Certification) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Certification, error)
	GetByTitle(ctx context.Context, title string) (*entities.Certification, error)
	List(ctx context.Context) ([]*entities.Certification, error)
	Update(ctx context.Context, certification *entities.Certification) error
	UpdateOrder(ctx context.Context, id uuid.UUID, order int) error
	Delete(ctx context.Context, id uuid.UUID) error
	// GetOrCreate is keyed by title.
	GetOrCreate(ctx context.Context, certification *entities.Certification) (bool, error)
}
