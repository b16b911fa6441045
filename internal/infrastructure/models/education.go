package models

import (
	"time"

	"github.com/google/uuid"
)

type Education struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Degree      string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_educations_identity"`
	Institution string    `gorm:"type:varchar(300);not null;uniqueIndex:idx_educations_identity"`
	StartYear   int       `gorm:"not null"`
	EndYear     *int
	Description string `gorm:"type:text;not null"`
	SortOrder   int    `gorm:"column:sort_order;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Education) TableName() string { return "educations" }
