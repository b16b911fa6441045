package models

import (
	"time"

	"github.com/google/uuid"
)

type SkillCategory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Icon      *string   `gorm:"type:varchar(255)"`
	SortOrder int       `gorm:"column:sort_order;not null"`
	Skills    []Skill   `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SkillCategory) TableName() string { return "skill_categories" }

type Skill struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_skills_identity"`
	Name       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_skills_identity"`
	Icon       *string   `gorm:"type:varchar(255)"`
	SortOrder  int       `gorm:"column:sort_order;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Skill) TableName() string { return "skills" }
