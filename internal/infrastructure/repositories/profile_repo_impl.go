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

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	ensureID(&profile.ID)
	m := r.toModel(profile)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	var m models.Profile
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *ProfileRepository) GetActive(ctx context.Context) (*entities.Profile, error) {
	var m models.Profile
	if err := GetDB(ctx, r.db).Order(insertionOrder).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]*entities.Profile, error) {
	var ms []models.Profile
	if err := GetDB(ctx, r.db).Order(insertionOrder).Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Profile, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ProfileRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, &models.Profile{})
}

func (r *ProfileRepository) Update(ctx context.Context, profile *entities.Profile) error {
	updates := map[string]interface{}{
		"name":         profile.Name,
		"title":        profile.Title,
		"bio":          profile.Bio,
		"email":        profile.Email,
		"phone":        profile.Phone,
		"linkedin_url": profile.LinkedInURL,
		"github_url":   profile.GithubURL,
		"updated_at":   time.Now(),
	}
	return updateByID(GetDB(ctx, r.db), &models.Profile{}, profile.ID, updates)
}

func (r *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(GetDB(ctx, r.db), &models.Profile{}, id)
}

func (r *ProfileRepository) GetOrCreate(ctx context.Context, profile *entities.Profile) (bool, error) {
	ensureID(&profile.ID)
	m := r.toModel(profile)
	created, err := getOrCreate(GetDB(ctx, r.db), m, "name = ?", profile.Name)
	if err != nil {
		return false, err
	}
	*profile = *r.toEntity(m)
	return created, nil
}

func (r *ProfileRepository) SetAttachment(ctx context.Context, id uuid.UUID, field entities.AttachmentField, path string) (bool, error) {
	return setAttachment(GetDB(ctx, r.db), &models.Profile{}, entities.MediaTargetProfile, id, field, path)
}

func (r *ProfileRepository) toEntity(m *models.Profile) *entities.Profile {
	return &entities.Profile{
		ID:              m.ID,
		Name:            m.Name,
		Title:           m.Title,
		Bio:             m.Bio,
		Email:           m.Email,
		Phone:           m.Phone,
		LinkedInURL:     m.LinkedInURL,
		GithubURL:       m.GithubURL,
		ProfileImage:    null.StringFromPtr(m.ProfileImage),
		Resume:          null.StringFromPtr(m.Resume),
		BackgroundImage: null.StringFromPtr(m.BackgroundImage),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *ProfileRepository) toModel(e *entities.Profile) *models.Profile {
	return &models.Profile{
		ID:              e.ID,
		Name:            e.Name,
		Title:           e.Title,
		Bio:             e.Bio,
		Email:           e.Email,
		Phone:           e.Phone,
		LinkedInURL:     e.LinkedInURL,
		GithubURL:       e.GithubURL,
		ProfileImage:    e.ProfileImage.Ptr(),
		Resume:          e.Resume.Ptr(),
		BackgroundImage: e.BackgroundImage.Ptr(),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
