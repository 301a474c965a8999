package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/model"
)

func submitQuote(t *testing.T, db *gorm.DB, userID uint) model.QuoteRequest {
	t.Helper()
	q, err := NewQuoteService(db, nil).Submit(userID)
	require.NoError(t, err)
	return q
}

func priceQuote(t *testing.T, db *gorm.DB, quoteID uint, in PricingInput) model.QuoteRequest {
	t.Helper()
	q, err := NewQuoteService(db, nil).Price(quoteID, in)
	require.NoError(t, err)
	return q
}

func TestSubmitSnapshotsAndEmptiesCart(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, "quote@example.com")
	flyers := createProduct(t, db, "A5 Flyers", 1000, 50)
	shirts := createProduct(t, db, "Branded T-Shirt", 25000, 10)
	cart := NewCartService(db, &fakeFiles{})

	_, err := cart.Add(u.ID, flyers.ID, 100, model.CartOptions{Material: "130gsm gloss", DesignFile: "flyer.ai"})
	require.NoError(t, err)
	_, err = cart.Add(u.ID, shirts.ID, 20, model.CartOptions{Size: "L", Color: "Black"})
	require.NoError(t, err)

	q := submitQuote(t, db, u.ID)
	assert.Equal(t, model.QuotePending, q.Status)
	assert.Equal(t, u.ID, q.UserID)

	items, err := Items(q)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "A5 Flyers", items[0].ProductName)
	assert.Equal(t, 100, items[0].Quantity)
	assert.Equal(t, int64(1000), items[0].BasePrice)
	assert.Equal(t, "flyer.ai", items[0].DesignFile)
	assert.Equal(t, "Branded T-Shirt", items[1].ProductName)
	assert.Equal(t, "L", items[1].Size)

	left, err := cart.ListFor(u.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestSubmitEmptyCart(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, "quote@example.com")

	_, err := NewQuoteService(db, nil).Submit(u.ID)
	assert.ErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&model.QuoteRequest{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSnapshotSurvivesProductChanges(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, "quote@example.com")
	p := createProduct(t, db, "Poster", 5000, 1)
	cart := NewCartService(db, &fakeFiles{})

	_, err := cart.Add(u.ID, p.ID, 2, model.CartOptions{})
	require.NoError(t, err)
	q := submitQuote(t, db, u.ID)

	// Reprice and then delete the product; the snapshot must not move.
	require.NoError(t, db.Model(&p).Update("base_price_cents", 9999).Error)
	require.NoError(t, db.Delete(&p).Error)

	q2, err := NewQuoteService(db, nil).Get(q.ID)
	require.NoError(t, err)
	items, err := Items(q2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(5000), items[0].BasePrice)
	assert.Equal(t, "Poster", items[0].ProductName)
}

func TestPriceComputesTotalAndTransitions(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, "quote@example.com")
	p := createProduct(t, db, "A5 Flyers", 1000, 50)
	cart := NewCartService(db, &fakeFiles{})
	_, err := cart.Add(u.ID, p.ID, 100, model.CartOptions{})
	require.NoError(t, err)

	q := submitQuote(t, db, u.ID)
	priced := priceQuote(t, db, q.ID, PricingInput{
		QuotedCents:      95000,
		DiscountCents:    5000,
		DeliveryFeeCents: 10000,
		AdminNotes:       "bulk rate",
		ValidDays:        7,
	})

	assert.Equal(t, model.QuoteQuoted, priced.Status)
	assert.Equal(t, int64(100000), priced.TotalCents)
	assert.Equal(t, "bulk rate", priced.AdminNotes)
	require.NotNil(t, priced.ValidUntil)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), *priced.ValidUntil, time.Minute)
}

func TestPriceTwiceFails(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, "quote@example.com")
	p := createProduct(t, db, "Flyers", 1000, 1)
	cart := NewCartService(db, &fakeFiles{})
	_, err := cart.Add(u.ID, p.ID, 1, model.CartOptions{})
	require.NoError(t, err)

	q := submitQuote(t, db, u.ID)
	in := PricingInput{QuotedCents: 1000, ValidDays: 7}
	priceQuote(t, db, q.ID, in)

	_, err = NewQuoteService(db, nil).Price(q.ID, in)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestPriceNegativeTotal(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, "quote@example.com")
	p := createProduct(t, db, "Flyers", 1000, 1)
	cart := NewCartService(db, &fakeFiles{})
	_, err := cart.Add(u.ID, p.ID, 1, model.CartOptions{})
	require.NoError(t, err)
	q := submitQuote(t, db, u.ID)

	_, err = NewQuoteService(db, nil).Price(q.ID, PricingInput{
		QuotedCents:   1000,
		DiscountCents: 2000,
		ValidDays:     7,
	})
	assert.ErrorIs(t, err, ErrInvalidPricing)

	// Nothing moved.
	got, err := NewQuoteService(db, nil).Get(q.ID)
	require.NoError(t, err)
	assert.Equal(t, model.QuotePending, got.Status)
}

func TestAcceptMaterializesOrder(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, "quote@example.com")
	p := createProduct(t, db, "A5 Flyers", 1000, 50)
	cart := NewCartService(db, &fakeFiles{})
	_, err := cart.Add(u.ID, p.ID, 100, model.CartOptions{})
	require.NoError(t, err)

	q := submitQuote(t, db, u.ID)
	priceQuote(t, db, q.ID, PricingInput{
		QuotedCents: 95000, DiscountCents: 5000, DeliveryFeeCents: 10000, ValidDays: 7,
	})

	notifier := &fakeNotifier{}
	order, err := NewQuoteService(db, notifier).Accept(q.ID, u.ID)
	require.NoError(t, err)

	assert.Equal(t, model.OrderConfirmed, order.Status)
	assert.Equal(t, int64(100000), order.TotalCents)
	assert.Equal(t, int64(95000), order.SubtotalCents)
	assert.Equal(t, int64(5000), order.DiscountCents)
	assert.Equal(t, int64(10000), order.DeliveryFeeCents)
	require.NotNil(t, order.QuoteRequestID)
	assert.Equal(t, q.ID, *order.QuoteRequestID)
	assert.Equal(t, q.ItemsJSON, order.ItemsJSON)

	converted, err := NewQuoteService(db, nil).Get(q.ID)
	require.NoError(t, err)
	assert.Equal(t, model.QuoteConverted, converted.Status)
	require.NotNil(t, converted.OrderID)
	assert.Equal(t, order.ID, *converted.OrderID)

	var after model.User
	require.NoError(t, db.First(&after, u.ID).Error)
	assert.Equal(t, 1, after.TotalOrders)
	assert.Equal(t, int64(100000), after.TotalSpentCents)

	assert.Len(t, notifier.confirmed, 1)
}

func TestAcceptTwiceCreatesOneOrder(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, "quote@example.com")
	p := createProduct(t, db, "Flyers", 1000, 1)
	cart := NewCartService(db, &fakeFiles{})
	_, err := cart.Add(u.ID, p.ID, 1, model.CartOptions{})
	require.NoError(t, err)

	q := submitQuote(t, db, u.ID)
	priceQuote(t, db, q.ID, PricingInput{QuotedCents: 1000, ValidDays: 7})

	svc := NewQuoteService(db, nil)
	_, err = svc.Accept(q.ID, u.ID)
	require.NoError(t, err)

	_, err = svc.Accept(q.ID, u.ID)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)

	var orders int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orders).Error)
	assert.EqualValues(t, 1, orders)

	var after model.User
	require.NoError(t, db.First(&after, u.ID).Error)
	assert.Equal(t, 1, after.TotalOrders)
}

func TestAcceptExpiredQuote(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, "quote@example.com")
	p := createProduct(t, db, "Flyers", 1000, 1)
	cart := NewCartService(db, &fakeFiles{})
	_, err := cart.Add(u.ID, p.ID, 1, model.CartOptions{})
	require.NoError(t, err)

	q := submitQuote(t, db, u.ID)
	priceQuote(t, db, q.ID, PricingInput{QuotedCents: 1000, ValidDays: 7})

	// No background sweeper exists; expiry is evaluated on the accept attempt.
	past := time.Now().Add(-time.Hour)
	require.NoError(t, db.Model(&model.QuoteRequest{}).
		Where("id = ?", q.ID).
		Update("valid_until", past).Error)

	svc := NewQuoteService(db, nil)
	_, err = svc.Accept(q.ID, u.ID)
	assert.ErrorIs(t, err, ErrQuoteExpired)

	got, err := svc.Get(q.ID)
	require.NoError(t, err)
	assert.Equal(t, model.QuoteExpired, got.Status)

	var orders int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)

	var after model.User
	require.NoError(t, db.First(&after, u.ID).Error)
	assert.Zero(t, after.TotalOrders)
}

func TestAcceptByNonOwner(t *testing.T) {
	db := testDB(t)
	owner := createUser(t, db, "owner@example.com")
	intruder := createUser(t, db, "intruder@example.com")
	p := createProduct(t, db, "Flyers", 1000, 1)
	cart := NewCartService(db, &fakeFiles{})
	_, err := cart.Add(owner.ID, p.ID, 1, model.CartOptions{})
	require.NoError(t, err)

	q := submitQuote(t, db, owner.ID)
	priceQuote(t, db, q.ID, PricingInput{QuotedCents: 1000, ValidDays: 7})

	_, err = NewQuoteService(db, nil).Accept(q.ID, intruder.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAcceptPendingQuote(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, "quote@example.com")
	p := createProduct(t, db, "Flyers", 1000, 1)
	cart := NewCartService(db, &fakeFiles{})
	_, err := cart.Add(u.ID, p.ID, 1, model.CartOptions{})
	require.NoError(t, err)
	q := submitQuote(t, db, u.ID)

	_, err = NewQuoteService(db, nil).Accept(q.ID, u.ID)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestRejectQuote(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, "quote@example.com")
	p := createProduct(t, db, "Flyers", 1000, 1)
	cart := NewCartService(db, &fakeFiles{})
	_, err := cart.Add(u.ID, p.ID, 1, model.CartOptions{})
	require.NoError(t, err)

	q := submitQuote(t, db, u.ID)
	priceQuote(t, db, q.ID, PricingInput{QuotedCents: 1000, ValidDays: 7})

	svc := NewQuoteService(db, nil)
	rejected, err := svc.Reject(q.ID, u.ID, "too expensive")
	require.NoError(t, err)
	assert.Equal(t, model.QuoteRejected, rejected.Status)
	assert.Equal(t, "too expensive", rejected.RejectReason)
	assert.NotNil(t, rejected.RespondedAt)

	// Terminal: cannot accept afterwards.
	_, err = svc.Accept(q.ID, u.ID)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestAcceptBumpsTier(t *testing.T) {
	db := testDB(t)
	u := createUser(t, db, "quote@example.com")
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", u.ID).
		Update("total_orders", 4).Error)
	p := createProduct(t, db, "Flyers", 1000, 1)
	cart := NewCartService(db, &fakeFiles{})
	_, err := cart.Add(u.ID, p.ID, 1, model.CartOptions{})
	require.NoError(t, err)

	q := submitQuote(t, db, u.ID)
	priceQuote(t, db, q.ID, PricingInput{QuotedCents: 1000, ValidDays: 7})
	_, err = NewQuoteService(db, nil).Accept(q.ID, u.ID)
	require.NoError(t, err)

	var after model.User
	require.NoError(t, db.First(&after, u.ID).Error)
	tier, discount := ComputeTier(after.TotalOrders)
	assert.Equal(t, TierBronze, tier)
	assert.Equal(t, 5, discount)
}
