package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-space/core/internal/pkg/jwt"
	"github.com/portfolio-space/core/internal/pkg/response"
)

const ContextKeyAdmin = "is_admin"

// Auth enforces admin authentication: either the static admin token or a
// session JWT minted by the login endpoint.
func Auth(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !validCredential(adminToken, extractToken(c), c.ClientIP()) {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyAdmin, true)
		c.Next()
	}
}

// OptionalAuth marks the request as authenticated when a valid credential is
// present, but never blocks. Handlers that do their own authorization checks
// read the flag via IsAuthenticated.
func OptionalAuth(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if validCredential(adminToken, extractToken(c), c.ClientIP()) {
			c.Set(ContextKeyAdmin, true)
		}
		c.Next()
	}
}

// IsAuthenticated reports whether the request carried a valid admin credential.
func IsAuthenticated(c *gin.Context) bool {
	return c.GetBool(ContextKeyAdmin)
}

// validCredential accepts the static admin token (compared in constant time)
// or a session JWT bound to the caller's IP.
func validCredential(adminToken, raw, ip string) bool {
	token := NormalizeToken(raw)
	if token == "" || adminToken == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) == 1 {
		return true
	}
	claims, err := jwt.Parse(token)
	return err == nil && claims.Subject == ip
}

func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
