package models

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	Title           string    `gorm:"type:varchar(300);not null"`
	Bio             string    `gorm:"type:text;not null"`
	Email           string    `gorm:"type:varchar(254);not null"`
	Phone           string    `gorm:"type:varchar(20);not null"`
	LinkedInURL     string    `gorm:"column:linkedin_url;type:varchar(200)"`
	GithubURL       string    `gorm:"type:varchar(200)"`
	ProfileImage    *string   `gorm:"type:varchar(255)"`
	Resume          *string   `gorm:"type:varchar(255)"`
	BackgroundImage *string   `gorm:"type:varchar(255)"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

func (Profile) TableName() string { return "profiles" }
