package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/service"
)

type AuthHTTP struct {
	S service.AuthService
}

func NewAuthHTTP(s service.AuthService) *AuthHTTP { return &AuthHTTP{S: s} }

const sessionCookieMaxAge = 24 * 3600

func (h *AuthHTTP) Register(c *gin.Context) {
	var in struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.BindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "bad json"})
		return
	}
	u, tok, err := h.S.Register(in.Name, in.Email, in.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.SetCookie("session", tok, sessionCookieMaxAge, "/", "", true, true)
	c.JSON(200, gin.H{"ok": true, "token": tok, "token_type": "Bearer", "user": u})
}

func (h *AuthHTTP) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.BindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "bad json"})
		return
	}
	u, tok, err := h.S.Login(in.Email, in.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.SetCookie("session", tok, sessionCookieMaxAge, "/", "", true, true)
	c.JSON(200, gin.H{"ok": true, "token": tok, "token_type": "Bearer", "user": u, "is_admin": u.IsAdmin})
}

func (h *AuthHTTP) Logout(c *gin.Context) {
	c.SetCookie("session", "", -1, "/", "", true, true)
	c.JSON(200, gin.H{"ok": true})
}

// Me returns the current profile with the derived tier attached.
func (h *AuthHTTP) Me(c *gin.Context) {
	u, err := h.S.GetUser(c.GetUint("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	tier, discount := service.ComputeTier(u.TotalOrders)
	c.JSON(200, gin.H{"user": u, "tier": tier, "discount_percent": discount})
}
