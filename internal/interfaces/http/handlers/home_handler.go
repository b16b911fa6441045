package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"portfolio.backend/internal/interfaces/http/response"
	"portfolio.backend/internal/interfaces/http/views"
	"portfolio.backend/internal/usecases"
	"portfolio.backend/pkg/logger"
)

type HomeHandler struct {
	homepage *usecases.HomepageUsecase
}

func NewHomeHandler(homepage *usecases.HomepageUsecase) *HomeHandler {
	return &HomeHandler{homepage: homepage}
}

// Index renders the public page. A database without a profile still renders.
// GET /
func (h *HomeHandler) Index(c *gin.Context) {
	view, err := h.homepage.BuildHomepageView(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to build homepage", zap.Error(err))
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	c.HTML(http.StatusOK, views.IndexTemplate, views.NewIndexData(view, popFlash(c)))
}

// Homepage returns the same aggregate as JSON.
// GET /api/v1/homepage
func (h *HomeHandler) Homepage(c *gin.Context) {
	view, err := h.homepage.BuildHomepageView(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}
