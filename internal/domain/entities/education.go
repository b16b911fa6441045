package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Education is one entry of the education history. EndYear is null while ongoing.
type Education struct {
	ID          uuid.UUID `json:"id"`
	Degree      string    `json:"degree"`
	Institution string    `json:"institution"`
	StartYear   int       `json:"startYear"`
	EndYear     null.Int  `json:"endYear"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Period renders the year range shown on the page, e.g. "2021 - 2025" or "2019 - Present".
func (e *Education) Period() string {
	start := itoa(e.StartYear)
	if !e.EndYear.Valid {
		return start + " - Present"
	}
	return start + " - " + itoa(e.EndYear.Int)
}

// EducationInput represents admin input for an education entry
type EducationInput struct {
	Degree      string `json:"degree" binding:"required,max=200"`
	Institution string `json:"institution" binding:"required,max=300"`
	StartYear   int    `json:"startYear" binding:"required"`
	EndYear     *int   `json:"endYear"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}
