package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"portfolio.backend/internal/domain/entities"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/interfaces/http/response"
	"portfolio.backend/internal/usecases"
	"portfolio.backend/pkg/logger"
)

// Plain-text bodies of the legacy setup route
const (
	SetupForbiddenMessage = "Forbidden"
	SetupExistsMessage    = "Data already exists!"
	SetupSeededMessage    = "Data populated successfully!"
)

type SetupHandler struct {
	bootstrap *usecases.BootstrapUsecase
}

func NewSetupHandler(bootstrap *usecases.BootstrapUsecase) *SetupHandler {
	return &SetupHandler{bootstrap: bootstrap}
}

// SetupData is the legacy one-shot trigger. It is only routed when explicitly enabled.
// GET /setup-data?key=
func (h *SetupHandler) SetupData(c *gin.Context) {
	outcome, _, err := h.bootstrap.BootstrapIfEmpty(c.Request.Context(), c.Query("key"))
	switch {
	case outcome == entities.BootstrapRejected:
		c.String(http.StatusForbidden, SetupForbiddenMessage)
	case err != nil:
		logger.Error(c.Request.Context(), "Setup failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Error: %s", err.Error())
	case outcome == entities.BootstrapAlreadySeeded:
		c.String(http.StatusOK, SetupExistsMessage)
	default:
		c.String(http.StatusOK, SetupSeededMessage)
	}
}

// Bootstrap runs the same gate for an authenticated administrator.
// POST /api/v1/admin/bootstrap
func (h *SetupHandler) Bootstrap(c *gin.Context) {
	var input struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	outcome, report, err := h.bootstrap.BootstrapIfEmpty(c.Request.Context(), input.Key)
	if err != nil {
		if outcome == entities.BootstrapRejected || errors.Is(err, domainerrors.ErrForbidden) {
			response.Error(c, domainerrors.Forbidden("invalid setup key"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"outcome": outcome, "report": report})
}
