package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Project is a portfolio project. Technologies is a comma separated list.
type Project struct {
	ID           uuid.UUID   `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Technologies string      `json:"technologies"`
	GithubLink   string      `json:"githubLink"`
	LiveLink     string      `json:"liveLink"`
	Video        null.String `json:"video"`
	Image        null.String `json:"image"`
	Order        int         `json:"order"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// TechnologyList splits Technologies on commas, dropping blanks.
func (p *Project) TechnologyList() []string {
	parts := strings.Split(p.Technologies, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ProjectInput represents admin input for a project
type ProjectInput struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description" binding:"required"`
	Technologies string `json:"technologies" binding:"max=500"`
	GithubLink   string `json:"githubLink" binding:"omitempty,url"`
	LiveLink     string `json:"liveLink" binding:"omitempty,url"`
	Order        int    `json:"order"`
}
