package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/model"
)

// InquiryInput is the legacy contact-form submission. Contact fields are free
// text; a logged-in submitter is linked by id instead.
type InquiryInput struct {
	Name        string
	Email       string
	Phone       string
	ServiceType string
	Details     string
}

// Statuses an admin may set by hand. Confirmed is deliberately absent: it is
// reserved for quote conversion.
var adminSettableStatuses = map[string]bool{
	model.OrderNew:        true,
	model.OrderInProgress: true,
	model.OrderCompleted:  true,
	model.OrderCancelled:  true,
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type DashboardStats struct {
	TotalOrders    int64            `json:"total_orders"`
	TotalCustomers int64            `json:"total_customers"`
	PendingQuotes  int64            `json:"pending_quotes"`
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
	OrdersThisWeek int64            `json:"orders_this_week"`
	RecentOrders   []model.Order    `json:"recent_orders"`
	DailyOrders    []DailyCount     `json:"daily_orders"`
}

type OrderService interface {
	SubmitInquiry(in InquiryInput, userID *uint) (model.Order, error)
	Get(orderID uint) (model.Order, error)
	ListFor(userID uint) ([]model.Order, error)
	ListAll(statusFilter string) ([]model.Order, error)
	UpdateStatus(orderID uint, status, adminNotes string) (model.Order, error)
	Stats() (DashboardStats, error)
}

type orderService struct {
	db       *gorm.DB
	notifier Notifier
}

func NewOrderService(db *gorm.DB, notifier Notifier) OrderService {
	return &orderService{db: db, notifier: notifier}
}

// SubmitInquiry records a contact-form request as a minimal order. Financial
// fields stay zero and customer lifetime stats are untouched; only converted
// quotes feed the tier computation.
func (s *orderService) SubmitInquiry(in InquiryInput, userID *uint) (model.Order, error) {
	o := model.Order{
		Ref:         uuid.New().String(),
		ServiceType: in.ServiceType,
		Details:     in.Details,
		Status:      model.OrderNew,
	}
	if userID != nil {
		o.UserID = userID
	} else {
		o.GuestName = in.Name
		o.GuestEmail = in.Email
		o.GuestPhone = in.Phone
	}
	if err := s.db.Create(&o).Error; err != nil {
		return model.Order{}, err
	}

	if s.notifier != nil {
		if userID != nil {
			var u model.User
			if err := s.db.First(&u, *userID).Error; err == nil {
				o.User = &u
			}
		}
		s.notifier.InquiryReceived(o)
	}
	return o, nil
}

func (s *orderService) Get(orderID uint) (model.Order, error) {
	var o model.Order
	return o, s.db.Preload("User").First(&o, orderID).Error
}

func (s *orderService) ListFor(userID uint) ([]model.Order, error) {
	var orders []model.Order
	return orders, s.db.Where("user_id = ?", userID).Order("id desc").Find(&orders).Error
}

func (s *orderService) ListAll(statusFilter string) ([]model.Order, error) {
	var orders []model.Order
	tx := s.db.Preload("User").Order("created_at desc")
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}
	return orders, tx.Find(&orders).Error
}

func (s *orderService) UpdateStatus(orderID uint, status, adminNotes string) (model.Order, error) {
	if !adminSettableStatuses[status] {
		return model.Order{}, ErrInvalidStatus
	}
	var o model.Order
	if err := s.db.First(&o, orderID).Error; err != nil {
		return model.Order{}, err
	}
	err := s.db.Model(&o).
		Updates(map[string]any{"status": status, "admin_notes": adminNotes}).Error
	if err != nil {
		return model.Order{}, err
	}
	return s.Get(orderID)
}

func (s *orderService) Stats() (DashboardStats, error) {
	stats := DashboardStats{OrdersByStatus: map[string]int64{}}

	if err := s.db.Model(&model.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return stats, err
	}
	if err := s.db.Model(&model.User{}).
		Where("is_admin = ?", false).
		Count(&stats.TotalCustomers).Error; err != nil {
		return stats, err
	}
	if err := s.db.Model(&model.QuoteRequest{}).
		Where("status = ?", model.QuotePending).
		Count(&stats.PendingQuotes).Error; err != nil {
		return stats, err
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	if err := s.db.Model(&model.Order{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return stats, err
	}
	for _, r := range rows {
		stats.OrdersByStatus[r.Status] = r.Count
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	if err := s.db.Model(&model.Order{}).
		Where("created_at >= ?", weekAgo).
		Count(&stats.OrdersThisWeek).Error; err != nil {
		return stats, err
	}

	if err := s.db.Preload("User").
		Order("created_at desc").
		Limit(5).
		Find(&stats.RecentOrders).Error; err != nil {
		return stats, err
	}

	// One bucket per calendar day, oldest first, for the weekly chart.
	for i := 6; i >= 0; i-- {
		day := time.Now().AddDate(0, 0, -i)
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		end := start.AddDate(0, 0, 1)
		var n int64
		if err := s.db.Model(&model.Order{}).
			Where("created_at >= ? AND created_at < ?", start, end).
			Count(&n).Error; err != nil {
			return stats, err
		}
		stats.DailyOrders = append(stats.DailyOrders, DailyCount{
			Date:  start.Format("Mon"),
			Count: int(n),
		})
	}
	return stats, nil
}
