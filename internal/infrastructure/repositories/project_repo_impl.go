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

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	ensureID(&project.ID)
	m := r.toModel(project)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	project.CreatedAt = m.CreatedAt
	project.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	var m models.Project
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *ProjectRepository) GetByTitle(ctx context.Context, title string) (*entities.Project, error) {
	var m models.Project
	if err := GetDB(ctx, r.db).Where("title = ?", title).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]*entities.Project, error) {
	var ms []models.Project
	if err := GetDB(ctx, r.db).Order(insertionOrder).Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Project, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	entities.SortProjects(items)
	return items, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	updates := map[string]interface{}{
		"title":        project.Title,
		"description":  project.Description,
		"technologies": project.Technologies,
		"github_link":  project.GithubLink,
		"live_link":    project.LiveLink,
		"sort_order":   project.Order,
		"updated_at":   time.Now(),
	}
	return updateByID(GetDB(ctx, r.db), &models.Project{}, project.ID, updates)
}

func (r *ProjectRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	return updateOrder(GetDB(ctx, r.db), &models.Project{}, id, order)
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(GetDB(ctx, r.db), &models.Project{}, id)
}

func (r *ProjectRepository) GetOrCreate(ctx context.Context, project *entities.Project) (bool, error) {
	ensureID(&project.ID)
	m := r.toModel(project)
	created, err := getOrCreate(GetDB(ctx, r.db), m, "title = ?", project.Title)
	if err != nil {
		return false, err
	}
	*project = *r.toEntity(m)
	return created, nil
}

func (r *ProjectRepository) SetAttachment(ctx context.Context, id uuid.UUID, field entities.AttachmentField, path string) (bool, error) {
	return setAttachment(GetDB(ctx, r.db), &models.Project{}, entities.MediaTargetProject, id, field, path)
}

func (r *ProjectRepository) toEntity(m *models.Project) *entities.Project {
	return &entities.Project{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Technologies: m.Technologies,
		GithubLink:   m.GithubLink,
		LiveLink:     m.LiveLink,
		Video:        null.StringFromPtr(m.Video),
		Image:        null.StringFromPtr(m.Image),
		Order:        m.SortOrder,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *ProjectRepository) toModel(e *entities.Project) *models.Project {
	return &models.Project{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Technologies: e.Technologies,
		GithubLink:   e.GithubLink,
		LiveLink:     e.LiveLink,
		Video:        e.Video.Ptr(),
		Image:        e.Image.Ptr(),
		SortOrder:    e.Order,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
