package service

import (
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/model"
)

// SeedConfig carries the bootstrap data that used to live as ambient
// create-if-missing globals. It is injected once at startup.
type SeedConfig struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// Seed creates the default admin, categories and starter products when the
// store holds none. It is idempotent; running it on every startup is safe.
func Seed(db *gorm.DB, cfg SeedConfig) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return errors.New("seed: admin email and password are required")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var admins int64
		if err := tx.Model(&model.User{}).Where("is_admin = ?", true).Count(&admins).Error; err != nil {
			return err
		}
		if admins == 0 {
			hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			name := cfg.AdminName
			if name == "" {
				name = "Admin"
			}
			admin := model.User{
				Name:         name,
				Email:        cfg.AdminEmail,
				PasswordHash: string(hash),
				IsAdmin:      true,
			}
			if err := tx.Create(&admin).Error; err != nil {
				return err
			}
			log.Info().Str("email", cfg.AdminEmail).Msg("default admin created")
		}

		var categories int64
		if err := tx.Model(&model.Category{}).Count(&categories).Error; err != nil {
			return err
		}
		if categories > 0 {
			return nil
		}

		defaults := []struct {
			category string
			products []model.Product
		}{
			{"Printing", []model.Product{
				{Name: "A5 Flyers", Description: "Full colour A5 flyers", BasePriceCents: 1000, MinOrderQty: 50,
					Sizes: "A5", Materials: "130gsm gloss,170gsm matt", Finishings: "None,Lamination"},
				{Name: "Business Cards", Description: "Double-sided business cards", BasePriceCents: 500, MinOrderQty: 100,
					Sizes: "90x50mm", Materials: "350gsm matt", Finishings: "Matt lamination,Spot UV"},
			}},
			{"Branding", []model.Product{
				{Name: "Branded T-Shirt", Description: "Cotton t-shirt with print", BasePriceCents: 25000, MinOrderQty: 10,
					Sizes: "S,M,L,XL", Colors: "White,Black,Navy", Finishings: "Screen print,DTF"},
			}},
			{"Signage", []model.Product{
				{Name: "Pull-up Banner", Description: "850x2000mm pull-up banner with stand", BasePriceCents: 250000, MinOrderQty: 1,
					Sizes: "850x2000mm", Materials: "PVC"},
			}},
		}
		for _, d := range defaults {
			cat := model.Category{Name: d.category}
			if err := tx.Create(&cat).Error; err != nil {
				return err
			}
			for _, p := range d.products {
				p.CategoryID = cat.ID
				if err := tx.Create(&p).Error; err != nil {
					return err
				}
			}
		}
		log.Info().Msg("default catalog seeded")
		return nil
	})
}
