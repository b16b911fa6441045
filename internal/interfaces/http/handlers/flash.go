package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"portfolio.backend/internal/interfaces/http/views"
)

const (
	flashCookie = "flash"
	flashMaxAge = 60
)

// setFlash stores a one-shot notice that survives the redirect to the homepage
func setFlash(c *gin.Context, kind, message string) {
	value := kind + ":" + base64.RawURLEncoding.EncodeToString([]byte(message))
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, value, flashMaxAge, "/", "", false, true)
}

// popFlash reads the notice and clears the cookie so it is shown once
func popFlash(c *gin.Context) *views.Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	kind, encoded, ok := strings.Cut(raw, ":")
	if !ok || (kind != views.FlashSuccess && kind != views.FlashError) {
		return nil
	}
	msg, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}
	return &views.Flash{Kind: kind, Message: string(msg)}
}
