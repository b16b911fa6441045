package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/internal/infrastructure/models"
)

type EducationRepository struct {
	db *gorm.DB
}

func NewEducationRepository(db *gorm.DB) *EducationRepository {
	return &EducationRepository{db: db}
}

func (r *EducationRepository) Create(ctx context.Context, education *entities.Education) error {
	ensureID(&education.ID)
	m := r.toModel(education)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	education.CreatedAt = m.CreatedAt
	education.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *EducationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Education, error) {
	var m models.Education
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

// List returns education entries newest first; ongoing entries come last.
func (r *EducationRepository) List(ctx context.Context) ([]*entities.Education, error) {
	var ms []models.Education
	if err := GetDB(ctx, r.db).Order(insertionOrder).Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Education, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	entities.SortEducations(items)
	return items, nil
}

func (r *EducationRepository) Update(ctx context.Context, education *entities.Education) error {
	updates := map[string]interface{}{
		"degree":      education.Degree,
		"institution": education.Institution,
		"start_year":  education.StartYear,
		"end_year":    education.EndYear.Ptr(),
		"description": education.Description,
		"sort_order":  education.Order,
		"updated_at":  time.Now(),
	}
	return updateByID(GetDB(ctx, r.db), &models.Education{}, education.ID, updates)
}

func (r *EducationRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	return updateOrder(GetDB(ctx, r.db), &models.Education{}, id, order)
}

func (r *EducationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(GetDB(ctx, r.db), &models.Education{}, id)
}

func (r *EducationRepository) GetOrCreate(ctx context.Context, education *entities.Education) (bool, error) {
	ensureID(&education.ID)
	m := r.toModel(education)
	created, err := getOrCreate(GetDB(ctx, r.db), m, "degree = ? AND institution = ?", education.Degree, education.Institution)
	if err != nil {
		return false, err
	}
	*education = *r.toEntity(m)
	return created, nil
}

func (r *EducationRepository) toEntity(m *models.Education) *entities.Education {
	return &entities.Education{
		ID:          m.ID,
		Degree:      m.Degree,
		Institution: m.Institution,
		StartYear:   m.StartYear,
		EndYear:     null.IntFromPtr(m.EndYear),
		Description: m.Description,
		Order:       m.SortOrder,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *EducationRepository) toModel(e *entities.Education) *models.Education {
	return &models.Education{
		ID:          e.ID,
		Degree:      e.Degree,
		Institution: e.Institution,
		StartYear:   e.StartYear,
		EndYear:     e.EndYear.Ptr(),
		Description: e.Description,
		SortOrder:   e.Order,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
