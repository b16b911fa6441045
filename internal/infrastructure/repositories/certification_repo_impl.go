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

type CertificationRepository struct {
	db *gorm.DB
}

func NewCertificationRepository(db *gorm.DB) *CertificationRepository {
	return &CertificationRepository{db: db}
}

func (r *CertificationRepository) Create(ctx context.Context, certification *entities.Certification) error {
	ensureID(&certification.ID)
	m := r.toModel(certification)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	certification.CreatedAt = m.CreatedAt
	certification.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *CertificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Certification, error) {
	var m models.Certification
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *CertificationRepository) GetByTitle(ctx context.Context, title string) (*entities.Certification, error) {
	var m models.Certification
	if err := GetDB(ctx, r.db).Where("title = ?", title).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *CertificationRepository) List(ctx context.Context) ([]*entities.Certification, error) {
	var ms []models.Certification
	if err := GetDB(ctx, r.db).Order(insertionOrder).Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Certification, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	entities.SortCertifications(items)
	return items, nil
}

func (r *CertificationRepository) Update(ctx context.Context, certification *entities.Certification) error {
	updates := map[string]interface{}{
		"title":      certification.Title,
		"issuer":     certification.Issuer,
		"issue_date": certification.IssueDate.Ptr(),
		"sort_order": certification.Order,
		"updated_at": time.Now(),
	}
	return updateByID(GetDB(ctx, r.db), &models.Certification{}, certification.ID, updates)
}

func (r *CertificationRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	return updateOrder(GetDB(ctx, r.db), &models.Certification{}, id, order)
}

func (r *CertificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(GetDB(ctx, r.db), &models.Certification{}, id)
}

func (r *CertificationRepository) GetOrCreate(ctx context.Context, certification *entities.Certification) (bool, error) {
	ensureID(&certification.ID)
	m := r.toModel(certification)
	created, err := getOrCreate(GetDB(ctx, r.db), m, "title = ?", certification.Title)
	if err != nil {
		return false, err
	}
	*certification = *r.toEntity(m)
	return created, nil
}

func (r *CertificationRepository) SetAttachment(ctx context.Context, id uuid.UUID, field entities.AttachmentField, path string) (bool, error) {
	return setAttachment(GetDB(ctx, r.db), &models.Certification{}, entities.MediaTargetCertification, id, field, path)
}

func (r *CertificationRepository) toEntity(m *models.Certification) *entities.Certification {
	return &entities.Certification{
		ID:               m.ID,
		Title:            m.Title,
		Issuer:           m.Issuer,
		CertificateImage: null.StringFromPtr(m.CertificateImage),
		CertificateFile:  null.StringFromPtr(m.CertificateFile),
		IssueDate:        null.TimeFromPtr(m.IssueDate),
		Order:            m.SortOrder,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (r *CertificationRepository) toModel(e *entities.Certification) *models.Certification {
	return &models.Certification{
		ID:               e.ID,
		Title:            e.Title,
		Issuer:           e.Issuer,
		CertificateImage: e.CertificateImage.Ptr(),
		CertificateFile:  e.CertificateFile.Ptr(),
		IssueDate:        e.IssueDate.Ptr(),
		SortOrder:        e.Order,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
