package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/model"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.CartItem{},
		&model.QuoteRequest{},
		&model.Order{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) model.User {
	t.Helper()
	u := model.User{Name: "Test Customer", Email: email}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func createProduct(t *testing.T, db *gorm.DB, name string, priceCents int64, minQty int) model.Product {
	t.Helper()
	p := model.Product{Name: name, BasePriceCents: priceCents, MinOrderQty: minQty}
	require.NoError(t, db.Create(&p).Error)
	return p
}

// fakeFiles records Delete calls and can be told to fail them.
type fakeFiles struct {
	deleted []string
	failAll bool
}

func (f *fakeFiles) Save(_ context.Context, filename string, _ io.Reader) (string, error) {
	return filename, nil
}

func (f *fakeFiles) Delete(_ context.Context, ref string) error {
	if f.failAll {
		return errors.New("storage unavailable")
	}
	f.deleted = append(f.deleted, ref)
	return nil
}

func (f *fakeFiles) URL(ref string) string { return "/uploads/" + ref }

// fakeNotifier counts deliveries.
type fakeNotifier struct {
	inquiries []model.Order
	confirmed []model.Order
}

func (n *fakeNotifier) InquiryReceived(o model.Order) { n.inquiries = append(n.inquiries, o) }
func (n *fakeNotifier) OrderConfirmed(o model.Order)  { n.confirmed = append(n.confirmed, o) }
