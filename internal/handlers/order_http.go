package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/service"
)

type OrderHTTP struct {
	S service.OrderService
}

func NewOrderHTTP(s service.OrderService) *OrderHTTP { return &OrderHTTP{S: s} }

// Inquiry is the public contact-form path. Guests supply contact details;
// logged-in callers are linked by account instead.
func (h *OrderHTTP) Inquiry(c *gin.Context) {
	var in struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		ServiceType string `json:"service" binding:"required"`
		Details     string `json:"message" binding:"required"`
	}
	if err := c.BindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "bad json"})
		return
	}

	var userID *uint
	if v, exists := c.Get("userID"); exists {
		if uid, ok := v.(uint); ok {
			userID = &uid
		}
	}
	if userID == nil && (in.Name == "" || in.Email == "") {
		c.JSON(400, gin.H{"error": "name and email are required"})
		return
	}

	o, err := h.S.SubmitInquiry(service.InquiryInput{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		ServiceType: in.ServiceType,
		Details:     in.Details,
	}, userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(201, o)
}

func (h *OrderHTTP) ListMine(c *gin.Context) {
	orders, err := h.S.ListFor(c.GetUint("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, orders)
}

func (h *OrderHTTP) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, err := h.S.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	if o.UserID == nil || *o.UserID != c.GetUint("userID") {
		fail(c, service.ErrForbidden)
		return
	}
	c.JSON(200, o)
}

// Admin endpoints.

func (h *OrderHTTP) AdminList(c *gin.Context) {
	orders, err := h.S.ListAll(c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, orders)
}

func (h *OrderHTTP) AdminGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, err := h.S.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, o)
}

func (h *OrderHTTP) AdminUpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in struct {
		Status     string `json:"status" binding:"required"`
		AdminNotes string `json:"admin_notes"`
	}
	if err := c.BindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "bad json"})
		return
	}
	o, err := h.S.UpdateStatus(id, in.Status, in.AdminNotes)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, o)
}
