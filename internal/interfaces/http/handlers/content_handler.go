package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/interfaces/http/response"
	"portfolio.backend/internal/usecases"
)

// ContentHandler exposes admin CRUD for the page records
type ContentHandler struct {
	content *usecases.ContentUsecase
}

func NewContentHandler(content *usecases.ContentUsecase) *ContentHandler {
	return &ContentHandler{content: content}
}

// The helpers below hold the request plumbing shared by every record type.

func listItems[T any](c *gin.Context, fn func(context.Context) ([]T, error)) {
	items, err := fn(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

func getItem[T any](c *gin.Context, fn func(context.Context, uuid.UUID) (T, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := fn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func createItem[In, T any](c *gin.Context, fn func(context.Context, *In) (T, error)) {
	var input In
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	item, err := fn(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

func updateItem[In, T any](c *gin.Context, fn func(context.Context, uuid.UUID, *In) (T, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input In
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	item, err := fn(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func reorderItem(c *gin.Context, fn func(context.Context, uuid.UUID, int) error) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input struct {
		Order *int `json:"order" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	if err := fn(c.Request.Context(), id, *input.Order); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "order": *input.Order})
}

func deleteItem(c *gin.Context, fn func(context.Context, uuid.UUID) error) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := fn(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Profiles: /api/v1/admin/profiles

func (h *ContentHandler) ListProfiles(c *gin.Context)  { listItems(c, h.content.ListProfiles) }
func (h *ContentHandler) GetProfile(c *gin.Context)    { getItem(c, h.content.GetProfile) }
func (h *ContentHandler) CreateProfile(c *gin.Context) { createItem(c, h.content.CreateProfile) }
func (h *ContentHandler) UpdateProfile(c *gin.Context) { updateItem(c, h.content.UpdateProfile) }
func (h *ContentHandler) DeleteProfile(c *gin.Context) { deleteItem(c, h.content.DeleteProfile) }

// Education: /api/v1/admin/educations

func (h *ContentHandler) ListEducations(c *gin.Context)   { listItems(c, h.content.ListEducations) }
func (h *ContentHandler) GetEducation(c *gin.Context)     { getItem(c, h.content.GetEducation) }
func (h *ContentHandler) CreateEducation(c *gin.Context)  { createItem(c, h.content.CreateEducation) }
func (h *ContentHandler) UpdateEducation(c *gin.Context)  { updateItem(c, h.content.UpdateEducation) }
func (h *ContentHandler) ReorderEducation(c *gin.Context) { reorderItem(c, h.content.ReorderEducation) }
func (h *ContentHandler) DeleteEducation(c *gin.Context)  { deleteItem(c, h.content.DeleteEducation) }

// Projects: /api/v1/admin/projects

func (h *ContentHandler) ListProjects(c *gin.Context)   { listItems(c, h.content.ListProjects) }
func (h *ContentHandler) GetProject(c *gin.Context)     { getItem(c, h.content.GetProject) }
func (h *ContentHandler) CreateProject(c *gin.Context)  { createItem(c, h.content.CreateProject) }
func (h *ContentHandler) UpdateProject(c *gin.Context)  { updateItem(c, h.content.UpdateProject) }
func (h *ContentHandler) ReorderProject(c *gin.Context) { reorderItem(c, h.content.ReorderProject) }
func (h *ContentHandler) DeleteProject(c *gin.Context)  { deleteItem(c, h.content.DeleteProject) }

// Skill categories: /api/v1/admin/skill-categories

func (h *ContentHandler) ListSkillCategories(c *gin.Context) {
	listItems(c, h.content.ListSkillCategories)
}
func (h *ContentHandler) GetSkillCategory(c *gin.Context) { getItem(c, h.content.GetSkillCategory) }
func (h *ContentHandler) CreateSkillCategory(c *gin.Context) {
	createItem(c, h.content.CreateSkillCategory)
}
func (h *ContentHandler) UpdateSkillCategory(c *gin.Context) {
	updateItem(c, h.content.UpdateSkillCategory)
}
func (h *ContentHandler) ReorderSkillCategory(c *gin.Context) {
	reorderItem(c, h.content.ReorderSkillCategory)
}
func (h *ContentHandler) DeleteSkillCategory(c *gin.Context) {
	deleteItem(c, h.content.DeleteSkillCategory)
}

// Skills: /api/v1/admin/skills

func (h *ContentHandler) ListSkills(c *gin.Context)   { listItems(c, h.content.ListSkills) }
func (h *ContentHandler) GetSkill(c *gin.Context)     { getItem(c, h.content.GetSkill) }
func (h *ContentHandler) CreateSkill(c *gin.Context)  { createItem(c, h.content.CreateSkill) }
func (h *ContentHandler) UpdateSkill(c *gin.Context)  { updateItem(c, h.content.UpdateSkill) }
func (h *ContentHandler) ReorderSkill(c *gin.Context) { reorderItem(c, h.content.ReorderSkill) }
func (h *ContentHandler) DeleteSkill(c *gin.Context)  { deleteItem(c, h.content.DeleteSkill) }

// Certifications: /api/v1/admin/certifications

func (h *ContentHandler) ListCertifications(c *gin.Context) {
	listItems(c, h.content.ListCertifications)
}
func (h *ContentHandler) GetCertification(c *gin.Context) { getItem(c, h.content.GetCertification) }
func (h *ContentHandler) CreateCertification(c *gin.Context) {
	createItem(c, h.content.CreateCertification)
}
func (h *ContentHandler) UpdateCertification(c *gin.Context) {
	updateItem(c, h.content.UpdateCertification)
}
func (h *ContentHandler) ReorderCertification(c *gin.Context) {
	reorderItem(c, h.content.ReorderCertification)
}
func (h *ContentHandler) DeleteCertification(c *gin.Context) {
	deleteItem(c, h.content.DeleteCertification)
}
