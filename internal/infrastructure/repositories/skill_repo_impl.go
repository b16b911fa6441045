package repositories

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"portfolio.backend/internal/domain/entities"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/infrastructure/models"
)

type SkillCategoryRepository struct {
	db *gorm.DB
}

func NewSkillCategoryRepository(db *gorm.DB) *SkillCategoryRepository {
	return &SkillCategoryRepository{db: db}
}

func (r *SkillCategoryRepository) Create(ctx context.Context, category *entities.SkillCategory) error {
	ensureID(&category.ID)
	m := toSkillCategoryModel(category)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	category.CreatedAt = m.CreatedAt
	category.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *SkillCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.SkillCategory, error) {
	var m models.SkillCategory
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return toSkillCategoryEntity(&m), nil
}

func (r *SkillCategoryRepository) GetByName(ctx context.Context, name string) (*entities.SkillCategory, error) {
	var m models.SkillCategory
	if err := GetDB(ctx, r.db).Where("name = ?", name).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return toSkillCategoryEntity(&m), nil
}

func (r *SkillCategoryRepository) List(ctx context.Context) ([]*entities.SkillCategory, error) {
	var ms []models.SkillCategory
	if err := GetDB(ctx, r.db).Order(insertionOrder).Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.SkillCategory, 0, len(ms))
	for i := range ms {
		items = append(items, toSkillCategoryEntity(&ms[i]))
	}
	entities.SortSkillCategories(items)
	return items, nil
}

func (r *SkillCategoryRepository) ListWithSkills(ctx context.Context) ([]*entities.SkillCategory, error) {
	var ms []models.SkillCategory
	err := GetDB(ctx, r.db).
		Preload("Skills", func(db *gorm.DB) *gorm.DB { return db.Order(insertionOrder) }).
		Order(insertionOrder).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.SkillCategory, 0, len(ms))
	for i := range ms {
		category := toSkillCategoryEntity(&ms[i])
		category.Skills = make([]*entities.Skill, 0, len(ms[i].Skills))
		for j := range ms[i].Skills {
			category.Skills = append(category.Skills, toSkillEntity(&ms[i].Skills[j]))
		}
		entities.SortSkills(category.Skills)
		items = append(items, category)
	}
	entities.SortSkillCategories(items)
	return items, nil
}

func (r *SkillCategoryRepository) Update(ctx context.Context, category *entities.SkillCategory) error {
	updates := map[string]interface{}{
		"name":       category.Name,
		"sort_order": category.Order,
		"updated_at": time.Now(),
	}
	return updateByID(GetDB(ctx, r.db), &models.SkillCategory{}, category.ID, updates)
}

func (r *SkillCategoryRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	return updateOrder(GetDB(ctx, r.db), &models.SkillCategory{}, id, order)
}

// Delete removes the skills explicitly so the cascade holds even where foreign keys are not enforced.
func (r *SkillCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.Skill{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &models.SkillCategory{}, id)
	})
}

func (r *SkillCategoryRepository) GetOrCreate(ctx context.Context, category *entities.SkillCategory) (bool, error) {
	ensureID(&category.ID)
	m := toSkillCategoryModel(category)
	created, err := getOrCreate(GetDB(ctx, r.db), m, "name = ?", category.Name)
	if err != nil {
		return false, err
	}
	*category = *toSkillCategoryEntity(m)
	return created, nil
}

func (r *SkillCategoryRepository) SetAttachment(ctx context.Context, id uuid.UUID, field entities.AttachmentField, path string) (bool, error) {
	return setAttachment(GetDB(ctx, r.db), &models.SkillCategory{}, entities.MediaTargetSkillCategory, id, field, path)
}

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) Create(ctx context.Context, skill *entities.Skill) error {
	ensureID(&skill.ID)
	if err := r.requireCategory(ctx, skill.CategoryID); err != nil {
		return err
	}
	m := toSkillModel(skill)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return translateError(err)
	}
	skill.CreatedAt = m.CreatedAt
	skill.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *SkillRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Skill, error) {
	var m models.Skill
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return toSkillEntity(&m), nil
}

func (r *SkillRepository) GetByName(ctx context.Context, categoryID uuid.UUID, name string) (*entities.Skill, error) {
	var m models.Skill
	if err := GetDB(ctx, r.db).Where("category_id = ? AND name = ?", categoryID, name).First(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return toSkillEntity(&m), nil
}

// List returns every skill ordered by category rank, then by the per-category order.
func (r *SkillRepository) List(ctx context.Context) ([]*entities.Skill, error) {
	var cats []models.SkillCategory
	if err := GetDB(ctx, r.db).Order(insertionOrder).Find(&cats).Error; err != nil {
		return nil, err
	}
	categories := make([]*entities.SkillCategory, 0, len(cats))
	for i := range cats {
		categories = append(categories, toSkillCategoryEntity(&cats[i]))
	}
	entities.SortSkillCategories(categories)
	rank := make(map[uuid.UUID]int, len(categories))
	for i, c := range categories {
		rank[c.ID] = i
	}

	var ms []models.Skill
	if err := GetDB(ctx, r.db).Order(insertionOrder).Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Skill, 0, len(ms))
	for i := range ms {
		items = append(items, toSkillEntity(&ms[i]))
	}
	slices.SortStableFunc(items, entities.CompareSkillsByCategory(rank))
	return items, nil
}

func (r *SkillRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entities.Skill, error) {
	var ms []models.Skill
	if err := GetDB(ctx, r.db).Where("category_id = ?", categoryID).Order(insertionOrder).Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Skill, 0, len(ms))
	for i := range ms {
		items = append(items, toSkillEntity(&ms[i]))
	}
	entities.SortSkills(items)
	return items, nil
}

func (r *SkillRepository) Update(ctx context.Context, skill *entities.Skill) error {
	if err := r.requireCategory(ctx, skill.CategoryID); err != nil {
		return err
	}
	updates := map[string]interface{}{
		"category_id": skill.CategoryID,
		"name":        skill.Name,
		"sort_order":  skill.Order,
		"updated_at":  time.Now(),
	}
	return updateByID(GetDB(ctx, r.db), &models.Skill{}, skill.ID, updates)
}

func (r *SkillRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	return updateOrder(GetDB(ctx, r.db), &models.Skill{}, id, order)
}

func (r *SkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(GetDB(ctx, r.db), &models.Skill{}, id)
}

func (r *SkillRepository) GetOrCreate(ctx context.Context, skill *entities.Skill) (bool, error) {
	ensureID(&skill.ID)
	m := toSkillModel(skill)
	created, err := getOrCreate(GetDB(ctx, r.db), m, "category_id = ? AND name = ?", skill.CategoryID, skill.Name)
	if err != nil {
		return false, err
	}
	*skill = *toSkillEntity(m)
	return created, nil
}

func (r *SkillRepository) SetAttachment(ctx context.Context, id uuid.UUID, field entities.AttachmentField, path string) (bool, error) {
	return setAttachment(GetDB(ctx, r.db), &models.Skill{}, entities.MediaTargetSkill, id, field, path)
}

// requireCategory rejects skills pointing at a category that does not exist.
func (r *SkillRepository) requireCategory(ctx context.Context, categoryID uuid.UUID) error {
	var n int64
	if err := GetDB(ctx, r.db).Model(&models.SkillCategory{}).Where("id = ?", categoryID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return domainerrors.BadRequest("skill category does not exist")
	}
	return nil
}

func toSkillCategoryEntity(m *models.SkillCategory) *entities.SkillCategory {
	return &entities.SkillCategory{
		ID:        m.ID,
		Name:      m.Name,
		Icon:      null.StringFromPtr(m.Icon),
		Order:     m.SortOrder,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toSkillCategoryModel(e *entities.SkillCategory) *models.SkillCategory {
	return &models.SkillCategory{
		ID:        e.ID,
		Name:      e.Name,
		Icon:      e.Icon.Ptr(),
		SortOrder: e.Order,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toSkillEntity(m *models.Skill) *entities.Skill {
	return &entities.Skill{
		ID:         m.ID,
		CategoryID: m.CategoryID,
		Name:       m.Name,
		Icon:       null.StringFromPtr(m.Icon),
		Order:      m.SortOrder,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toSkillModel(e *entities.Skill) *models.Skill {
	return &models.Skill{
		ID:         e.ID,
		CategoryID: e.CategoryID,
		Name:       e.Name,
		Icon:       e.Icon.Ptr(),
		SortOrder:  e.Order,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
