package models

import (
	"time"

	"github.com/google/uuid"
)

type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Email     string    `gorm:"type:varchar(254);not null"`
	Subject   string    `gorm:"type:varchar(200);not null"`
	Message   string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (ContactMessage) TableName() string { return "contact_messages" }
