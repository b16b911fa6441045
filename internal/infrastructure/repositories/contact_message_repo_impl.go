package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/internal/infrastructure/models"
	"portfolio.backend/pkg/utils"
)

type ContactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) *ContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

func (r *ContactMessageRepository) Create(ctx context.Context, message *entities.ContactMessage) error {
	ensureID(&message.ID)
	m := r.toModel(message)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	message.CreatedAt = m.CreatedAt
	message.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ContactMessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ContactMessage, error) {
	var m models.ContactMessage
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return r.toEntity(&m), nil
}

func (r *ContactMessageRepository) List(ctx context.Context, filter entities.ContactMessageFilter) ([]*entities.ContactMessage, int64, error) {
	scoped := func() *gorm.DB {
		q := GetDB(ctx, r.db).Model(&models.ContactMessage{})
		if filter.UnreadOnly {
			q = q.Where("is_read = ?", false)
		}
		return q
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := utils.GetPaginationParams(filter.Page, filter.Limit)
	query := scoped().Order("created_at DESC, id DESC").
		Offset(page.CalculateOffset()).
		Limit(page.Limit)

	var ms []models.ContactMessage
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.ContactMessage, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	entities.SortContactMessages(items)
	return items, total, nil
}

func (r *ContactMessageRepository) SetRead(ctx context.Context, id uuid.UUID, isRead bool) error {
	updates := map[string]interface{}{
		"is_read":    isRead,
		"updated_at": time.Now(),
	}
	return updateByID(GetDB(ctx, r.db), &models.ContactMessage{}, id, updates)
}

func (r *ContactMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(GetDB(ctx, r.db), &models.ContactMessage{}, id)
}

func (r *ContactMessageRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, &models.ContactMessage{})
}

func (r *ContactMessageRepository) CountUnread(ctx context.Context) (int64, error) {
	var n int64
	if err := GetDB(ctx, r.db).Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *ContactMessageRepository) toEntity(m *models.ContactMessage) *entities.ContactMessage {
	return &entities.ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *ContactMessageRepository) toModel(e *entities.ContactMessage) *models.ContactMessage {
	return &models.ContactMessage{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Subject:   e.Subject,
		Message:   e.Message,
		IsRead:    e.IsRead,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
