package repositories

import (
	"context"

	"github.com/google/uuid"
	"portfolio.backend/internal/domain/entities"
)

type EducationRepository interface {
	Create(ctx context.Context, education *entities.Education) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Education, error)
	List(ctx context.Context) ([]*entities.Education, error)
	Update(ctx context.Context, education *entities.Education) error
	UpdateOrder(ctx context.Context, id uuid.UUID, order int) error
	Delete(ctx context.Context, id uuid.UUID) error
	// GetOrCreate is keyed by (degree, institution).
	GetOrCreate(ctx context.Context, education *entities.Education) (bool, error)
}
