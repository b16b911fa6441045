package models

import (
	"time"

	"github.com/google/uuid"
)

type Certification struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title            string     `gorm:"type:varchar(200);not null;uniqueIndex"`
	Issuer           string     `gorm:"type:varchar(200);not null"`
	CertificateImage *string    `gorm:"type:varchar(255)"`
	CertificateFile  *string    `gorm:"type:varchar(255)"`
	IssueDate        *time.Time `gorm:"type:date"`
	SortOrder        int        `gorm:"column:sort_order;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Certification) TableName() string { return "certifications" }
