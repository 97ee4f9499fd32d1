package middleware

import (
	"net/http"
	"strings"

	"github.com/Circulx/Profile-management/internal/errors"
	"github.com/Circulx/Profile-management/pkg/util"
	"github.com/gin-gonic/gin"
)

// SessionIDKey is the gin context key holding the wizard session id
const SessionIDKey = "session_id"

type SessionMiddleware struct {
	tokenSecret string
}

func NewSessionMiddleware(tokenSecret string) *SessionMiddleware {
	return &SessionMiddleware{tokenSecret: tokenSecret}
}

func (m *SessionMiddleware) extractToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// Require validates the session token and aborts without one. Used on the
// session endpoints, which make no sense without a session.
func (m *SessionMiddleware) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		token, ok := m.extractToken(c)
		if !ok {
			log.Warn("Missing or malformed session token", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.Unauthorized(c, errors.SessionTokenInvalid, "A session token is required")
			c.Abort()
			return
		}

		claims, err := util.ValidateSessionToken(token, m.tokenSecret)
		if err != nil {
			log.Warn("Session token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			if err == util.ErrExpiredToken {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.SessionTokenExpired, "The session token has expired")
			} else {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.SessionTokenInvalid, "The session token is invalid")
			}
			c.Abort()
			return
		}

		c.Set(SessionIDKey, claims.SessionID)
		c.Next()
	}
}

// Optional resolves the session token when present and carries on without
// one. Profile and section writes work either way; a bound session just
// gets its wizard progress recorded.
func (m *SessionMiddleware) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := m.extractToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := util.ValidateSessionToken(token, m.tokenSecret)
		if err != nil {
			// An unusable token on an optional route is ignored, not fatal
			GetLoggerFromContext(c).Debug("Ignoring invalid session token", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			c.Next()
			return
		}

		c.Set(SessionIDKey, claims.SessionID)
		c.Next()
	}
}

// GetSessionID retrieves the wizard session id from gin context
func GetSessionID(c *gin.Context) (string, bool) {
	id := c.GetString(SessionIDKey)
	return id, id != ""
}
