package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/model"
	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/storage"
)

type CartService interface {
	Add(userID, productID uint, qty int, opts model.CartOptions) (model.CartItem, error)
	UpdateQuantity(userID, itemID uint, qty int) (model.CartItem, error)
	Remove(userID, itemID uint) error
	ListFor(userID uint) ([]model.CartItem, error)
}

type cartService struct {
	db    *gorm.DB
	files storage.FileStore
}

func NewCartService(db *gorm.DB, files storage.FileStore) CartService {
	return &cartService{db: db, files: files}
}

// clampQty lifts the requested quantity up to the product minimum instead of
// rejecting the request. Keeping the add-to-cart flow unblockable is a
// deliberate policy.
func clampQty(qty, minQty int) int {
	if minQty < 1 {
		minQty = 1
	}
	if qty < minQty {
		return minQty
	}
	return qty
}

func (s *cartService) Add(userID, productID uint, qty int, opts model.CartOptions) (model.CartItem, error) {
	var p model.Product
	if err := s.db.First(&p, productID).Error; err != nil {
		return model.CartItem{}, err
	}

	it := model.CartItem{
		UserID:      userID,
		ProductID:   p.ID,
		Quantity:    clampQty(qty, p.MinOrderQty),
		Size:        opts.Size,
		Material:    opts.Material,
		Color:       opts.Color,
		Finishing:   opts.Finishing,
		CustomSize:  opts.CustomSize,
		DesignFile:  opts.DesignFile,
		DesignNotes: opts.DesignNotes,
	}
	if err := s.db.Create(&it).Error; err != nil {
		return model.CartItem{}, err
	}
	it.Product = p
	return it, nil
}

func (s *cartService) UpdateQuantity(userID, itemID uint, qty int) (model.CartItem, error) {
	var it model.CartItem
	err := s.db.Preload("Product").
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&it).Error
	if err != nil {
		return model.CartItem{}, err
	}

	it.Quantity = clampQty(qty, it.Product.MinOrderQty)
	if err := s.db.Model(&it).Update("quantity", it.Quantity).Error; err != nil {
		return model.CartItem{}, err
	}
	return it, nil
}

func (s *cartService) Remove(userID, itemID uint) error {
	var it model.CartItem
	err := s.db.Where("id = ? AND user_id = ?", itemID, userID).First(&it).Error
	if err != nil {
		return err
	}
	if err := s.db.Delete(&it).Error; err != nil {
		return err
	}

	// The DB row is authoritative; losing the physical file is tolerable.
	if it.DesignFile != "" && s.files != nil {
		if err := s.files.Delete(context.Background(), it.DesignFile); err != nil {
			log.Warn().Err(err).Str("ref", it.DesignFile).Uint("item", itemID).
				Msg("failed to release design file")
		}
	}
	return nil
}

func (s *cartService) ListFor(userID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	return items, s.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&items).Error
}
