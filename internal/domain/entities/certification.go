package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type Certification struct {
	ID               uuid.UUID   `json:"id"`
	Title            string      `json:"title"`
	Issuer           string      `json:"issuer"`
	CertificateImage null.String `json:"certificateImage"`
	CertificateFile  null.String `json:"certificateFile"`
	IssueDate        null.Time   `json:"issueDate"`
	Order            int         `json:"order"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// CertificationInput represents admin input for a certification. IssueDate uses YYYY-MM-DD.
type CertificationInput struct {
	Title     string `json:"title" binding:"required,max=200"`
	Issuer    string `json:"issuer" binding:"max=200"`
	IssueDate string `json:"issueDate" binding:"omitempty,datetime=2006-01-02"`
	Order     int    `json:"order"`
}
