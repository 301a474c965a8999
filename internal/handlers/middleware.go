package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/service"
)

type Middleware struct {
	Auth service.AuthService
}

func NewMiddleware(auth service.AuthService) *Middleware { return &Middleware{Auth: auth} }

// RequireUser resolves the session token (bearer header or cookie) into an
// explicit user id on the request context.
func (m *Middleware) RequireUser(c *gin.Context) {
	var tok string
	if ah := c.GetHeader("Authorization"); strings.HasPrefix(ah, "Bearer ") {
		tok = strings.TrimPrefix(ah, "Bearer ")
	}
	if tok == "" {
		if v, err := c.Cookie("session"); err == nil {
			tok = v
		}
	}
	if tok == "" {
		c.AbortWithStatusJSON(401, gin.H{"error": "login required"})
		return
	}
	uid, err := m.Auth.ParseToken(tok)
	if err != nil {
		c.AbortWithStatusJSON(401, gin.H{"error": "invalid session"})
		return
	}
	c.Set("userID", uid)
	c.Next()
}

// RequireAdmin runs after RequireUser and checks the account's admin flag.
func (m *Middleware) RequireAdmin(c *gin.Context) {
	u, err := m.Auth.GetUser(c.GetUint("userID"))
	if err != nil || !u.IsAdmin {
		c.AbortWithStatusJSON(403, gin.H{"error": "admin access required"})
		return
	}
	c.Next()
}

// OptionalUser resolves the session when present but never blocks; the
// contact form serves guests and account holders alike.
func (m *Middleware) OptionalUser(c *gin.Context) {
	var tok string
	if ah := c.GetHeader("Authorization"); strings.HasPrefix(ah, "Bearer ") {
		tok = strings.TrimPrefix(ah, "Bearer ")
	}
	if tok == "" {
		if v, err := c.Cookie("session"); err == nil {
			tok = v
		}
	}
	if tok != "" {
		if uid, err := m.Auth.ParseToken(tok); err == nil {
			c.Set("userID", uid)
		}
	}
	c.Next()
}
