package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/model"
	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/service"
)

type CartHTTP struct {
	S service.CartService
}

func NewCartHTTP(s service.CartService) *CartHTTP { return &CartHTTP{S: s} }

func (h *CartHTTP) Add(c *gin.Context) {
	var in struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity"`
		model.CartOptions
	}
	if err := c.BindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "bad json"})
		return
	}
	it, err := h.S.Add(c.GetUint("userID"), in.ProductID, in.Quantity, in.CartOptions)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(201, it)
}

func (h *CartHTTP) List(c *gin.Context) {
	items, err := h.S.ListFor(c.GetUint("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, items)
}

func (h *CartHTTP) UpdateQuantity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "bad json"})
		return
	}
	it, err := h.S.UpdateQuantity(c.GetUint("userID"), id, in.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, it)
}

func (h *CartHTTP) Remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.S.Remove(c.GetUint("userID"), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"ok": true})
}
