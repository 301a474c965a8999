package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/model"
	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/service"
)

// AdminHTTP carries the back-office analytics and user listing.
type AdminHTTP struct {
	Orders service.OrderService
	DB     *gorm.DB
}

func NewAdminHTTP(orders service.OrderService, db *gorm.DB) *AdminHTTP {
	return &AdminHTTP{Orders: orders, DB: db}
}

func (h *AdminHTTP) Dashboard(c *gin.Context) {
	stats, err := h.Orders.Stats()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, stats)
}

func (h *AdminHTTP) ListUsers(c *gin.Context) {
	var users []model.User
	if err := h.DB.Order("created_at desc").Find(&users).Error; err != nil {
		fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		tier, discount := service.ComputeTier(u.TotalOrders)
		out = append(out, gin.H{
			"user":             u,
			"tier":             tier,
			"discount_percent": discount,
		})
	}
	c.JSON(200, out)
}
