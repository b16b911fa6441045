package repositories

import (
	"context"

	"github.com/google/uuid"
	"portfolio.backend/internal/domain/entities"
)

type SkillCategoryRepository interface {
	AttachmentRepository
	Create(ctx context.Context, category *entities.SkillCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.SkillCategory, error)
	GetByName(ctx context.Context, name string) (*entities.SkillCategory, error)
	List(ctx context.Context) ([]*entities.SkillCategory, error)
	// ListWithSkills returns categories in default order, each with its skills in default order.
	ListWithSkills(ctx context.Context) ([]*entities.SkillCategory, error)
	Update(ctx context.Context, category *entities.SkillCategory) error
	UpdateOrder(ctx context.Context, id uuid.UUID, order int) error
	// Delete removes the category together with all of its skills.
	Delete(ctx context.Context, id uuid.UUID) error
	// GetOrCreate is keyed by name.
	GetOrCreate(ctx context.Context, category *entities.SkillCategory) (bool, error)
}

type SkillRepository interface {
	AttachmentRepository
	Create(ctx context.Context, skill *entities.Skill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Skill, error)
	GetByName(ctx context.Context, categoryID uuid.UUID, name string) (*entities.Skill, error)
	List(ctx context.Context) ([]*entities.Skill, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entities.Skill, error)
	Update(ctx context.Context, skill *entities.Skill) error
	UpdateOrder(ctx context.Context, id uuid.UUID, order int) error
	Delete(ctx context.Context, id uuid.UUID) error
	// GetOrCreate is keyed by (category, name).
	GetOrCreate(ctx context.Context, skill *entities.Skill) (bool, error)
}
