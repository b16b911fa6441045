package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title        string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description  string    `gorm:"type:text;not null"`
	Technologies string    `gorm:"type:varchar(500);not null"`
	GithubLink   string    `gorm:"type:varchar(200)"`
	LiveLink     string    `gorm:"type:varchar(200)"`
	Video        *string   `gorm:"type:varchar(255)"`
	Image        *string   `gorm:"type:varchar(255)"`
	SortOrder    int       `gorm:"column:sort_order;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Project) TableName() string { return "projects" }
