// README: Firebase ID-token auth middleware for user-facing routes.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Blast-git/Journey-Sync/internal/infra"
)

// UIDKey is the context key the handlers read the authenticated user id from.
const UIDKey = "auth_uid"

// CallerUID returns the authenticated user id, or "" when the request was not
// authenticated (auth disabled).
func CallerUID(c *gin.Context) string {
	return c.GetString(UIDKey)
}

// Auth verifies the Bearer token with Firebase. A nil verifier disables auth
// entirely; the deployment environment is then responsible for access control.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			c.Next()
			return
		}
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token, err := verifier.VerifyIDToken(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(UIDKey, token.UID)
		c.Next()
	}
}
