package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"portfolio.backend/internal/domain/entities"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/interfaces/http/response"
	"portfolio.backend/internal/interfaces/http/views"
	"portfolio.backend/internal/usecases"
	"portfolio.backend/pkg/utils"
)

type ContactHandler struct {
	contact *usecases.ContactUsecase
}

func NewContactHandler(contact *usecases.ContactUsecase) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Submit stores a contact form message and redirects home with a flash notice.
// POST /contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var input entities.ContactInput
	// unbindable bodies leave the fields blank, which fails validation below
	_ = c.ShouldBind(&input)

	_, err := h.contact.SubmitContact(c.Request.Context(), input)
	switch {
	case err == nil:
		setFlash(c, views.FlashSuccess, usecases.ContactSuccessMessage)
	case errors.Is(err, domainerrors.ErrValidation):
		setFlash(c, views.FlashError, domainerrors.FromDomain(err).Message)
	default:
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// RedirectHome sends non-POST visits back to the homepage without side effects.
// GET /contact
func (h *ContactHandler) RedirectHome(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

// ListMessages returns the inbox, newest first.
// GET /api/v1/admin/messages?unread=true&page=1&limit=20
func (h *ContactHandler) ListMessages(c *gin.Context) {
	filter := entities.ContactMessageFilter{
		UnreadOnly: c.Query("unread") == "true",
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(utils.DefaultPageLimit)))

	items, meta, err := h.contact.ListMessages(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items, "meta": meta})
}

// GetMessage returns one message.
// GET /api/v1/admin/messages/:id
func (h *ContactHandler) GetMessage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	msg, err := h.contact.GetMessage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, msg)
}

// MarkRead flips the read flag.
// PATCH /api/v1/admin/messages/:id/read
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input struct {
		IsRead *bool `json:"isRead" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	if err := h.contact.MarkRead(c.Request.Context(), id, *input.IsRead); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "isRead": *input.IsRead})
}

// DeleteMessage removes a message.
// DELETE /api/v1/admin/messages/:id
func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.contact.DeleteMessage(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid ID"))
		return uuid.Nil, false
	}
	return id, true
}
