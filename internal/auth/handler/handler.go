package handler

import (
	"errors"
	"net/http"
	"time"

	"aws-auth-service/internal/auth/provider"
	"aws-auth-service/internal/logger"
	"aws-auth-service/internal/middleware"
	"aws-auth-service/internal/session"
	"aws-auth-service/internal/token"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	provider   provider.OAuthProvider
	sessions   session.Store
	codec      *token.Codec
	sessionTTL time.Duration
	cookieOpts session.CookieOptions
}

func NewHandler(
	p provider.OAuthProvider,
	sessions session.Store,
	codec *token.Codec,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		provider:   p,
		sessions:   sessions,
		codec:      codec,
		sessionTTL: sessionTTL,
		cookieOpts: session.CookieOptions{
			SameSite: http.SameSiteStrictMode,
		},
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/login", h.Login)
	r.GET("/callback", h.Callback)
	r.GET("/logout", h.Logout)
}

// Login starts the authorization-code flow, or short-circuits to the
// landing page when the caller already holds a verifiably valid token.
// Full verification, not cookie presence: an expired or garbage cookie
// must fall through to a fresh redirect.
func (h *Handler) Login(c *gin.Context) {
	if cookie, err := c.Request.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if _, err := h.codec.Verify(cookie.Value); err == nil {
			c.Redirect(http.StatusFound, "/welcome")
			return
		}
	}

	state := generateState(c)
	_, codeChallenge := generatePKCE(c)

	c.Redirect(http.StatusFound, h.provider.AuthCodeURL(state, codeChallenge))
}

// Callback completes the flow: code exchange, assertion verification,
// session creation, token issuance. Any verification failure is fatal
// and leaves no session behind.
func (h *Handler) Callback(c *gin.Context) {
	if !validateState(c) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "invalid state",
		})
		return
	}

	if errParam := c.Query("error"); errParam != "" {
		logger.Warn("provider callback returned error", map[string]any{
			"provider": h.provider.Name(),
			"error":    errParam,
			"desc":     c.Query("error_description"),
		})
		c.Redirect(http.StatusFound, "/login")
		return
	}

	code := c.Query("code")
	if code == "" {
		logger.Error("callback missing code and error", nil)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "missing authorization code",
		})
		return
	}

	grant, err := h.provider.ExchangeCode(
		c.Request.Context(),
		code,
		getPKCEVerifier(c),
	)
	if err != nil {
		if errors.Is(err, provider.ErrCodeExchangeFailed) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "failed to exchange authorization code",
			})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "authentication failed",
		})
		return
	}

	sessionID, err := h.sessions.Put(c.Request.Context(), session.Record{
		IDToken:     grant.IDToken,
		AccessToken: grant.AccessToken,
		Identity:    grant.Identity,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to create session",
		})
		return
	}

	signed, err := h.codec.Issue(token.Claims{
		Session: sessionID,
		Email:   grant.Identity.Email,
		Name:    grant.Identity.Name,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to issue token",
		})
		return
	}

	session.SetCookie(
		c.Writer,
		signed,
		time.Now().Add(h.sessionTTL),
		h.cookieOpts,
	)

	logger.Info("login succeeded", map[string]any{
		"provider": h.provider.Name(),
		"subject":  grant.Identity.Subject,
		"ip":       c.ClientIP(),
	})

	c.Redirect(http.StatusFound, "/welcome")
}

// Logout clears the cookie and redirects to /login unconditionally.
// Revocation of the stored provider token is best-effort: a dead or
// unreachable revocation endpoint must not block logout.
func (h *Handler) Logout(c *gin.Context) {
	if cookie, err := c.Request.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if claims, err := h.codec.Verify(cookie.Value); err == nil {
			h.revokeSession(c, claims.Session)
		}
	}

	session.ClearCookie(c.Writer, h.cookieOpts)
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) revokeSession(c *gin.Context, sessionID string) {
	rec, err := h.sessions.Get(c.Request.Context(), sessionID)
	if err == nil {
		if err := h.provider.RevokeToken(c.Request.Context(), rec.AccessToken); err != nil {
			logger.Warn("access token revocation failed", map[string]any{
				"provider": h.provider.Name(),
				"error":    err.Error(),
			})
		}
	}
	_ = h.sessions.Delete(c.Request.Context(), sessionID)
}

// Welcome returns the authenticated user's basic identity, straight
// from the verified token claims.
func (h *Handler) Welcome(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "not authenticated",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":  claims.Name,
		"email": claims.Email,
	})
}
