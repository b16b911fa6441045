package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/interfaces/http/response"
	"portfolio.backend/internal/usecases"
	"portfolio.backend/pkg/jwt"
)

const refreshCookie = "refresh_token"

// AuthHandler handles administrator authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AdminAuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AdminAuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Login exchanges the admin password for a token pair
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pair, err := h.authUsecase.Login(c.Request.Context(), input.Password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			response.Error(c, domainerrors.Unauthorized("Invalid password"))
			return
		}
		response.Error(c, err)
		return
	}

	h.writeTokens(c, pair)
}

// RefreshToken issues a new pair from a refresh token in the body or cookie
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken"`
	}
	if c.Request.ContentLength > 0 {
		_ = c.ShouldBindJSON(&input)
	}
	if input.RefreshToken == "" {
		if cookie, err := c.Cookie(refreshCookie); err == nil {
			input.RefreshToken = cookie
		}
	}
	if input.RefreshToken == "" {
		response.Error(c, domainerrors.Unauthorized("Refresh token is required"))
		return
	}

	pair, err := h.authUsecase.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.writeTokens(c, pair)
}

func (h *AuthHandler) writeTokens(c *gin.Context, pair *jwt.TokenPair) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshCookie, pair.RefreshToken, 3600*24*7, "/api/v1/auth", "", false, true)
	response.Success(c, http.StatusOK, pair)
}
