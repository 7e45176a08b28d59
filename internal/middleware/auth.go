package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/practiceos/console/internal/session"
)

const (
	// ContextSession is the gin context key the resolved session lives under.
	ContextSession = "session"
)

// AuthMiddleware resolves the console session token on each request.
type AuthMiddleware struct {
	sessions *session.Manager
}

func NewAuthMiddleware(sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate requires a valid session of any kind.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := m.sessions.Resolve(bearerToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "authentication required",
				TraceID: c.GetString(ContextRequestID),
			})
			return
		}
		c.Set(ContextSession, sess)
		c.Next()
	}
}

// RequireKind restricts a route group to one session kind.
func (m *AuthMiddleware) RequireKind(kind session.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if sess == nil || sess.Kind != kind {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "not allowed for this session",
				TraceID: c.GetString(ContextRequestID),
			})
			return
		}
		c.Next()
	}
}

// SessionFrom returns the resolved session, or nil outside authed routes.
func SessionFrom(c *gin.Context) *session.Session {
	raw, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	sess, _ := raw.(*session.Session)
	return sess
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}
