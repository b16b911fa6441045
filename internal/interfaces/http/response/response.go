package response

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/pkg/logger"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Sentinel domain errors are mapped to their HTTP status.
func Error(c *gin.Context, err error) {
	appErr := domainerrors.FromDomain(err)
	if appErr.Status >= 500 {
		ctx := context.Background()
		if c.Request != nil {
			ctx = c.Request.Context()
		}
		logger.Error(ctx, "Request failed", zap.Error(err))
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// ErrorWithError sends an error response with a specific status, code and message
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}
