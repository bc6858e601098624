package middleware

import (
	"errors"
	"net/http"

	"aws-auth-service/internal/session"
	"aws-auth-service/internal/token"

	"github.com/gin-gonic/gin"
)

// claimsKey is the gin context key the verified claims are stored under.
const claimsKey = "authClaims"

// ClaimsFrom extracts the verified token claims placed on the context
// by RequireAuth.
func ClaimsFrom(c *gin.Context) (token.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return token.Claims{}, false
	}
	claims, ok := v.(token.Claims)
	return claims, ok
}

// RequireAuth guards protected routes. It extracts the session token
// from the cookie, verifies it, and attaches the decoded claims to the
// request context. It deliberately does not consult the session store:
// whether backing session data still exists is the handler's concern.
func RequireAuth(codec *token.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Request.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "not authenticated",
			})
			return
		}

		claims, err := codec.Verify(cookie.Value)
		if err != nil {
			msg := "token not valid"
			if errors.Is(err, token.ErrExpired) {
				msg = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": msg,
			})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}
