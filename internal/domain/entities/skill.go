package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// SkillCategory groups skills on the page. Deleting a category deletes its skills.
type SkillCategory struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Icon      null.String `json:"icon"`
	Order     int         `json:"order"`
	Skills    []*Skill    `json:"skills,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type Skill struct {
	ID         uuid.UUID   `json:"id"`
	CategoryID uuid.UUID   `json:"categoryId"`
	Name       string      `json:"name"`
	Icon       null.String `json:"icon"`
	Order      int         `json:"order"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// SkillCategoryInput represents admin input for a skill category
type SkillCategoryInput struct {
	Name  string `json:"name" binding:"required,max=100"`
	Order int    `json:"order"`
}

// SkillInput represents admin input for a skill
type SkillInput struct {
	CategoryID uuid.UUID `json:"categoryId" binding:"required"`
	Name       string    `json:"name" binding:"required,max=100"`
	Order      int       `json:"order"`
}
