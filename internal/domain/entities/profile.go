package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Profile is the owner of the portfolio. Only the active (oldest) profile is rendered.
type Profile struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Title           string      `json:"title"`
	Bio             string      `json:"bio"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	LinkedInURL     string      `json:"linkedinUrl"`
	GithubURL       string      `json:"githubUrl"`
	ProfileImage    null.String `json:"profileImage"`
	Resume          null.String `json:"resume"`
	BackgroundImage null.String `json:"backgroundImage"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// ProfileInput represents admin input for creating or updating a profile
type ProfileInput struct {
	Name        string `json:"name" binding:"required,max=200"`
	Title       string `json:"title" binding:"required,max=300"`
	Bio         string `json:"bio" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"max=20"`
	LinkedInURL string `json:"linkedinUrl" binding:"omitempty,url"`
	GithubURL   string `json:"githubUrl" binding:"omitempty,url"`
}
