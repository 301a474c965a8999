package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/model"
	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/service"
)

type QuoteHTTP struct {
	S service.QuoteService
}

func NewQuoteHTTP(s service.QuoteService) *QuoteHTTP { return &QuoteHTTP{S: s} }

// Submit snapshots the caller's cart into a pending quote request.
func (h *QuoteHTTP) Submit(c *gin.Context) {
	q, err := h.S.Submit(c.GetUint("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(201, q)
}

func (h *QuoteHTTP) ListMine(c *gin.Context) {
	qs, err := h.S.ListFor(c.GetUint("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, qs)
}

func (h *QuoteHTTP) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	q, err := h.S.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	if q.UserID != c.GetUint("userID") {
		fail(c, service.ErrForbidden)
		return
	}
	items, err := service.Items(q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"quote": q, "items": items})
}

func (h *QuoteHTTP) Accept(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.S.Accept(id, c.GetUint("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, order)
}

func (h *QuoteHTTP) Reject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in struct {
		Reason string `json:"reason"`
	}
	if err := c.BindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "bad json"})
		return
	}
	q, err := h.S.Reject(id, c.GetUint("userID"), in.Reason)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, q)
}

// ListPending is the admin work queue of quotes awaiting a price.
func (h *QuoteHTTP) ListPending(c *gin.Context) {
	status := c.DefaultQuery("status", model.QuotePending)
	qs, err := h.S.ListByStatus(status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, qs)
}

// Price is the admin pricing console endpoint.
func (h *QuoteHTTP) Price(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in struct {
		QuotedCents      int64  `json:"quoted_cents" binding:"required"`
		DiscountCents    int64  `json:"discount_cents"`
		DeliveryFeeCents int64  `json:"delivery_fee_cents"`
		AdminNotes       string `json:"admin_notes"`
		ValidDays        int    `json:"valid_days"`
	}
	if err := c.BindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "bad json"})
		return
	}
	if in.ValidDays == 0 {
		in.ValidDays = 7
	}
	q, err := h.S.Price(id, service.PricingInput{
		QuotedCents:      in.QuotedCents,
		DiscountCents:    in.DiscountCents,
		DeliveryFeeCents: in.DeliveryFeeCents,
		AdminNotes:       in.AdminNotes,
		ValidDays:        in.ValidDays,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, q)
}
