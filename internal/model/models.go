package model

import "time"

// Quote lifecycle statuses. Converted, Rejected and Expired are terminal.
const (
	QuotePending   = "Pending"
	QuoteQuoted    = "Quoted"
	QuoteConverted = "Converted"
	QuoteRejected  = "Rejected"
	QuoteExpired   = "Expired"
)

// Order statuses. Confirmed is only reachable through quote conversion.
const (
	OrderNew        = "New"
	OrderConfirmed  = "Confirmed"
	OrderInProgress = "In Progress"
	OrderCompleted  = "Completed"
	OrderCancelled  = "Cancelled"
)

type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Email           string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string    `gorm:"column:password_hash" json:"-"`
	Phone           string    `json:"phone"`
	IsAdmin         bool      `gorm:"not null;default:false" json:"is_admin"`
	TotalOrders     int       `gorm:"not null;default:0" json:"total_orders"`
	TotalSpentCents int64     `gorm:"not null;default:0" json:"total_spent_cents"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	CategoryID     uint   `gorm:"index" json:"category_id"`
	Name           string `gorm:"not null" json:"name"`
	Description    string `json:"description"`
	BasePriceCents int64  `json:"base_price_cents"`
	MinOrderQty    int    `gorm:"not null;default:1" json:"min_order_qty"`
	// Option lists offered to the customer, comma separated.
	Sizes      string    `json:"sizes"`
	Materials  string    `json:"materials"`
	Colors     string    `json:"colors"`
	Finishings string    `json:"finishings"`
	ImageURL   string    `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Category   Category  `json:"category"`
}

// CartOptions are the customer's selections for one cart line.
type CartOptions struct {
	Size        string `json:"size"`
	Material    string `json:"material"`
	Color       string `json:"color"`
	Finishing   string `json:"finishing"`
	CustomSize  string `json:"custom_size"`
	DesignFile  string `json:"design_file"`
	DesignNotes string `json:"design_notes"`
}

type CartItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index" json:"user_id"`
	ProductID   uint      `json:"product_id"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Size        string    `json:"size"`
	Material    string    `json:"material"`
	Color       string    `json:"color"`
	Finishing   string    `json:"finishing"`
	CustomSize  string    `json:"custom_size"`
	DesignFile  string    `json:"design_file"`
	DesignNotes string    `json:"design_notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Product     Product   `json:"product"`
}

// SnapshotItem is one entry of the immutable line-item snapshot taken when a
// cart is submitted for quotation. The JSON keys are the persisted format
// shared by quote_requests.items_json and orders.items_json.
type SnapshotItem struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Size        string `json:"size"`
	Material    string `json:"material"`
	Color       string `json:"color"`
	Finishing   string `json:"finishing"`
	CustomSize  string `json:"custom_size"`
	DesignFile  string `json:"design_file"`
	DesignNotes string `json:"design_notes"`
	BasePrice   int64  `json:"base_price"`
}

type QuoteRequest struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index" json:"user_id"`
	Status string `gorm:"not null;default:'Pending';index" json:"status"`
	// Snapshot of the cart at submission time. Never rewritten afterwards,
	// even if the underlying products change or disappear.
	ItemsJSON string `gorm:"column:items_json;type:text;not null" json:"items_json"`

	QuotedCents      int64  `json:"quoted_cents"`
	DiscountCents    int64  `json:"discount_cents"`
	DeliveryFeeCents int64  `json:"delivery_fee_cents"`
	TotalCents       int64  `json:"total_cents"`
	AdminNotes       string `json:"admin_notes"`

	ValidUntil   *time.Time `json:"valid_until"`
	RespondedAt  *time.Time `json:"responded_at"`
	RejectReason string     `json:"reject_reason"`
	OrderID      *uint      `json:"order_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      User      `json:"-"`
}

type Order struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	Ref string `gorm:"uniqueIndex;not null" json:"ref"`

	// Nullable so guest inquiries can exist without an account.
	UserID     *uint  `gorm:"index" json:"user_id"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	GuestPhone string `json:"guest_phone"`

	ServiceType string `json:"service_type"`
	Details     string `json:"details"`
	ItemsJSON   string `gorm:"column:items_json;type:text" json:"items_json"`

	SubtotalCents    int64 `json:"subtotal_cents"`
	DiscountCents    int64 `json:"discount_cents"`
	DeliveryFeeCents int64 `json:"delivery_fee_cents"`
	TotalCents       int64 `json:"total_cents"`

	Status     string `gorm:"not null;default:'New';index" json:"status"`
	AdminNotes string `json:"admin_notes"`

	// Set only when the order was materialized from an accepted quote. The
	// unique index guarantees at most one order per quote at the store level.
	QuoteRequestID *uint `gorm:"uniqueIndex" json:"quote_request_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      *User     `json:"-"`
}

// CustomerName prefers the linked account, falling back to guest contact info.
func (o *Order) CustomerName() string {
	if o.User != nil {
		return o.User.Name
	}
	if o.GuestName != "" {
		return o.GuestName
	}
	return "Guest"
}

func (o *Order) CustomerEmail() string {
	if o.User != nil {
		return o.User.Email
	}
	return o.GuestEmail
}
