package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"portfolio.backend/internal/domain/entities"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/pkg/utils"
)

// insertionOrder is the storage order every list starts from before the domain comparator runs
const insertionOrder = "created_at ASC, id ASC"

func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainerrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", domainerrors.ErrAlreadyExists, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", domainerrors.ErrInvalidInput, err)
	}
	return err
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = utils.GenerateUUIDv7()
	}
}

// getOrCreate returns the row matching where, inserting m when none exists.
// Concurrent inserts that lose the race on a unique index are resolved by re-reading the winner.
func getOrCreate[M any](db *gorm.DB, m *M, where string, args ...interface{}) (bool, error) {
	var existing M
	err := db.Where(where, args...).Order(insertionOrder).First(&existing).Error
	if err == nil {
		*m = existing
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(m)
	if result.Error != nil {
		return false, translateError(result.Error)
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	if err := db.Where(where, args...).Order(insertionOrder).First(&existing).Error; err != nil {
		return false, translateError(err)
	}
	*m = existing
	return false, nil
}

// setAttachment writes path into column only while it is NULL.
// It returns false when the column already held a value and ErrNotFound when the row is missing.
func setAttachment(db *gorm.DB, model interface{}, target entities.MediaTarget, id uuid.UUID, field entities.AttachmentField, path string) (bool, error) {
	if !target.Supports(field) {
		return false, fmt.Errorf("%w: %s has no %s attachment", domainerrors.ErrInvalidInput, target, field)
	}
	column := string(field)

	result := db.Model(model).
		Where("id = ? AND "+column+" IS NULL", id).
		Update(column, path)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, domainerrors.ErrNotFound
	}
	return false, nil
}

func updateOrder(db *gorm.DB, model interface{}, id uuid.UUID, order int) error {
	result := db.Model(model).Where("id = ?", id).Update("sort_order", order)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func deleteByID(db *gorm.DB, model interface{}, id uuid.UUID) error {
	result := db.Delete(model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func countRows(ctx context.Context, db *gorm.DB, model interface{}) (int64, error) {
	var n int64
	if err := GetDB(ctx, db).Model(model).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func updateByID(db *gorm.DB, model interface{}, id uuid.UUID, updates map[string]interface{}) error {
	result := db.Model(model).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
