package aws

import (
	"errors"
	"net/http"

	"aws-auth-service/internal/logger"
	"aws-auth-service/internal/middleware"
	"aws-auth-service/internal/session"

	"github.com/gin-gonic/gin"
)

// Handler serves the credential endpoints. Both routes sit behind the
// auth gate; a valid token whose session has been evicted is the
// distinct "session not found" case, not a token failure.
type Handler struct {
	bridge   *Bridge
	sessions session.Store
}

func NewHandler(bridge *Bridge, sessions session.Store) *Handler {
	return &Handler{
		bridge:   bridge,
		sessions: sessions,
	}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/aws/cli", h.CLI)
	r.GET("/aws/console", h.Console)
}

// CLI returns raw temporary credentials for use with the AWS CLI.
func (h *Handler) CLI(c *gin.Context) {
	creds, ok := h.credentials(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, creds)
}

// Console returns a one-time browser console login URL.
func (h *Handler) Console(c *gin.Context) {
	creds, ok := h.credentials(c)
	if !ok {
		return
	}

	loginURL, err := h.bridge.ConsoleLoginURL(c.Request.Context(), creds)
	if err != nil {
		logger.Error("console login url request failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "failed to obtain console login url",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": loginURL})
}

func (h *Handler) credentials(c *gin.Context) (*Credentials, bool) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "not authenticated",
		})
		return nil, false
	}

	rec, err := h.sessions.Get(c.Request.Context(), claims.Session)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "session not found",
			})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "session lookup failed",
		})
		return nil, false
	}

	creds, err := h.bridge.AssumeWithIdentity(c.Request.Context(), rec.IDToken)
	if err != nil {
		logger.Error("federation exchange failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "failed to obtain temporary credentials",
		})
		return nil, false
	}

	return creds, true
}
