package repositories

import (
	"context"

	"github.com/google/uuid"
	"portfolio.backend/internal/domain/entities"
)

type ProjectRepository interface {
	AttachmentRepository
	Create(ctx context.Context, project *entities.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error)
	GetByTitle(ctx context.Context, title string) (*entities.Project, error)
	List(ctx context.Context) ([]*entities.Project, error)
	Update(ctx context.Context, project *entities.Project) error
	UpdateOrder(ctx context.Context, id uuid.UUID, order int) error
	Delete(ctx context.Context, id uuid.UUID) error
	// GetOrCreate is keyed by title.
	GetOrCreate(ctx context.Context, project *entities.Project) (bool, error)
}
