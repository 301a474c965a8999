package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/model"
)

// PricingInput is the admin's offer for a pending quote. Amounts are minor
// units; ValidDays bounds how long the customer may accept.
type PricingInput struct {
	QuotedCents      int64
	DiscountCents    int64
	DeliveryFeeCents int64
	AdminNotes       string
	ValidDays        int
}

type QuoteService interface {
	Submit(userID uint) (model.QuoteRequest, error)
	Price(quoteID uint, in PricingInput) (model.QuoteRequest, error)
	Accept(quoteID, userID uint) (model.Order, error)
	Reject(quoteID, userID uint, reason string) (model.QuoteRequest, error)
	Get(quoteID uint) (model.QuoteRequest, error)
	ListFor(userID uint) ([]model.QuoteRequest, error)
	ListByStatus(status string) ([]model.QuoteRequest, error)
}

type quoteService struct {
	db       *gorm.DB
	notifier Notifier
	now      func() time.Time
}

func NewQuoteService(db *gorm.DB, notifier Notifier) QuoteService {
	return &quoteService{db: db, notifier: notifier, now: time.Now}
}

// Submit snapshots the customer's cart into a new pending quote request and
// empties the cart, both inside one transaction.
func (s *quoteService) Submit(userID uint) (model.QuoteRequest, error) {
	var q model.QuoteRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var items []model.CartItem
		if err := tx.Preload("Product").
			Where("user_id = ?", userID).
			Order("id asc").
			Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		snapshot := make([]model.SnapshotItem, 0, len(items))
		for _, it := range items {
			snapshot = append(snapshot, model.SnapshotItem{
				ProductID:   it.ProductID,
				ProductName: it.Product.Name,
				Quantity:    it.Quantity,
				Size:        it.Size,
				Material:    it.Material,
				Color:       it.Color,
				Finishing:   it.Finishing,
				CustomSize:  it.CustomSize,
				DesignFile:  it.DesignFile,
				DesignNotes: it.DesignNotes,
				BasePrice:   it.Product.BasePriceCents,
			})
		}
		raw, err := json.Marshal(snapshot)
		if err != nil {
			return fmt.Errorf("serialize snapshot: %w", err)
		}

		q = model.QuoteRequest{
			UserID:    userID,
			Status:    model.QuotePending,
			ItemsJSON: string(raw),
		}
		if err := tx.Create(&q).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&model.CartItem{}).Error
	})
	return q, err
}

// Price moves a pending quote to Quoted with the admin's numbers. The status
// condition on the update keeps two concurrent pricing calls from both
// succeeding.
func (s *quoteService) Price(quoteID uint, in PricingInput) (model.QuoteRequest, error) {
	total := in.QuotedCents - in.DiscountCents + in.DeliveryFeeCents
	if total < 0 || in.ValidDays < 1 {
		return model.QuoteRequest{}, ErrInvalidPricing
	}

	var q model.QuoteRequest
	if err := s.db.First(&q, quoteID).Error; err != nil {
		return model.QuoteRequest{}, err
	}
	if q.Status != model.QuotePending {
		return model.QuoteRequest{}, ErrInvalidStateTransition
	}

	validUntil := s.now().Add(time.Duration(in.ValidDays) * 24 * time.Hour)
	res := s.db.Model(&model.QuoteRequest{}).
		Where("id = ? AND status = ?", quoteID, model.QuotePending).
		Updates(map[string]any{
			"status":             model.QuoteQuoted,
			"quoted_cents":       in.QuotedCents,
			"discount_cents":     in.DiscountCents,
			"delivery_fee_cents": in.DeliveryFeeCents,
			"total_cents":        total,
			"admin_notes":        in.AdminNotes,
			"valid_until":        validUntil,
		})
	if res.Error != nil {
		return model.QuoteRequest{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.QuoteRequest{}, ErrInvalidStateTransition
	}
	return s.Get(quoteID)
}

// Accept converts a quoted offer into a confirmed order. Expiry is evaluated
// lazily here; there is no background sweeper. The whole materialization runs
// in one transaction, serialized by a status-conditioned update so that at
// most one order ever exists per quote.
func (s *quoteService) Accept(quoteID, userID uint) (model.Order, error) {
	var q model.QuoteRequest
	if err := s.db.First(&q, quoteID).Error; err != nil {
		return model.Order{}, err
	}
	if q.UserID != userID {
		return model.Order{}, ErrForbidden
	}
	if q.Status != model.QuoteQuoted {
		return model.Order{}, ErrInvalidStateTransition
	}

	now := s.now()
	if q.ValidUntil != nil && now.After(*q.ValidUntil) {
		// Persist the terminal state so later reads agree, then refuse.
		res := s.db.Model(&model.QuoteRequest{}).
			Where("id = ? AND status = ?", quoteID, model.QuoteQuoted).
			Updates(map[string]any{"status": model.QuoteExpired, "responded_at": now})
		if res.Error != nil {
			return model.Order{}, res.Error
		}
		return model.Order{}, ErrQuoteExpired
	}

	var order model.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.QuoteRequest{}).
			Where("id = ? AND status = ?", quoteID, model.QuoteQuoted).
			Updates(map[string]any{"status": model.QuoteConverted, "responded_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost the race to another accept, or the quote moved on.
			return ErrInvalidStateTransition
		}

		quoteRef := q.ID
		order = model.Order{
			Ref:              uuid.New().String(),
			UserID:           &q.UserID,
			ServiceType:      "quote",
			ItemsJSON:        q.ItemsJSON,
			SubtotalCents:    q.QuotedCents,
			DiscountCents:    q.DiscountCents,
			DeliveryFeeCents: q.DeliveryFeeCents,
			TotalCents:       q.TotalCents,
			Status:           model.OrderConfirmed,
			QuoteRequestID:   &quoteRef,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.QuoteRequest{}).
			Where("id = ?", quoteID).
			Update("order_id", order.ID).Error; err != nil {
			return err
		}
		// Lifetime stats feed the tier computation; the tier itself is
		// derived, never written.
		return tx.Model(&model.User{}).
			Where("id = ?", q.UserID).
			Updates(map[string]any{
				"total_orders":      gorm.Expr("total_orders + 1"),
				"total_spent_cents": gorm.Expr("total_spent_cents + ?", q.TotalCents),
			}).Error
	})
	if err != nil {
		return model.Order{}, err
	}

	if s.notifier != nil {
		var u model.User
		if err := s.db.First(&u, userID).Error; err == nil {
			order.User = &u
			s.notifier.OrderConfirmed(order)
		}
	}
	return order, nil
}

func (s *quoteService) Reject(quoteID, userID uint, reason string) (model.QuoteRequest, error) {
	var q model.QuoteRequest
	if err := s.db.First(&q, quoteID).Error; err != nil {
		return model.QuoteRequest{}, err
	}
	if q.UserID != userID {
		return model.QuoteRequest{}, ErrForbidden
	}
	if q.Status != model.QuoteQuoted {
		return model.QuoteRequest{}, ErrInvalidStateTransition
	}

	res := s.db.Model(&model.QuoteRequest{}).
		Where("id = ? AND status = ?", quoteID, model.QuoteQuoted).
		Updates(map[string]any{
			"status":        model.QuoteRejected,
			"reject_reason": reason,
			"responded_at":  s.now(),
		})
	if res.Error != nil {
		return model.QuoteRequest{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.QuoteRequest{}, ErrInvalidStateTransition
	}
	return s.Get(quoteID)
}

func (s *quoteService) Get(quoteID uint) (model.QuoteRequest, error) {
	var q model.QuoteRequest
	return q, s.db.First(&q, quoteID).Error
}

func (s *quoteService) ListFor(userID uint) ([]model.QuoteRequest, error) {
	var qs []model.QuoteRequest
	return qs, s.db.Where("user_id = ?", userID).Order("id desc").Find(&qs).Error
}

func (s *quoteService) ListByStatus(status string) ([]model.QuoteRequest, error) {
	var qs []model.QuoteRequest
	tx := s.db.Order("id desc")
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	return qs, tx.Find(&qs).Error
}

// Items decodes a stored snapshot back into line items.
func Items(q model.QuoteRequest) ([]model.SnapshotItem, error) {
	var items []model.SnapshotItem
	if err := json.Unmarshal([]byte(q.ItemsJSON), &items); err != nil {
		return nil, fmt.Errorf("corrupt quote snapshot: %w", err)
	}
	return items, nil
}
