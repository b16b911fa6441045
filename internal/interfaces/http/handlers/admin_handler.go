package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/internal/interfaces/http/response"
	"portfolio.backend/internal/usecases"
)

// AdminHandler handles admin maintenance endpoints
type AdminHandler struct {
	content   *usecases.ContentUsecase
	contact   *usecases.ContactUsecase
	seed      *usecases.SeedUsecase
	media     *usecases.MediaUsecase
	importDir string
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	content *usecases.ContentUsecase,
	contact *usecases.ContactUsecase,
	seed *usecases.SeedUsecase,
	media *usecases.MediaUsecase,
	importDir string,
) *AdminHandler {
	return &AdminHandler{
		content:   content,
		contact:   contact,
		seed:      seed,
		media:     media,
		importDir: importDir,
	}
}

// Stats returns record counts and the unread inbox count
// GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	counts, err := h.content.Counts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	inbox, err := h.contact.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"content": counts, "messages": inbox})
}

// Seed ensures the reference data exists without touching existing rows
// POST /api/v1/admin/seed
func (h *AdminHandler) Seed(c *gin.Context) {
	report, err := h.seed.SeedReferenceData(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, report)
}

// ImportMedia attaches the bundled static files to the reference records.
// Partial failures still return the full report.
// POST /api/v1/admin/media/import
func (h *AdminHandler) ImportMedia(c *gin.Context) {
	report, err := h.media.AttachMedia(c.Request.Context(), usecases.DefaultMediaPlan(), h.importDir)
	if err != nil {
		response.Success(c, http.StatusMultiStatus, gin.H{"report": report, "error": err.Error()})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"report": report, "attached": report.Count(entities.MediaAttached)})
}
