package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/handlers"
	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/model"
	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/service"
	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/storage"
)

func openDB(cfg Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DBDSN), &gorm.Config{})
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBDSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

func NewServer(cfg Config) (*gin.Engine, func(), error) {
	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.CartItem{},
		&model.QuoteRequest{},
		&model.Order{},
	); err != nil {
		return nil, nil, err
	}

	// Bootstrap data is seeded explicitly here, once, with injected config.
	if err := service.Seed(db, service.SeedConfig{
		AdminName:     cfg.SeedAdminName,
		AdminEmail:    cfg.SeedAdminEmail,
		AdminPassword: cfg.SeedAdminPassword,
	}); err != nil {
		return nil, nil, err
	}

	var files storage.FileStore
	if cfg.CloudinaryURL != "" {
		files, err = storage.NewCloudinaryStore(cfg.CloudinaryURL)
	} else {
		files, err = storage.NewDiskStore(cfg.UploadDir)
	}
	if err != nil {
		return nil, nil, err
	}

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.MaxMultipartMemory = 32 << 20

	// --- Services ---
	email := service.NewEmailService(service.SMTPConfig{
		Host: cfg.SMTPHost, Port: cfg.SMTPPort, From: cfg.SMTPFrom,
	})
	notifier := service.NewEmailNotifier(email, cfg.AdminEmail, cfg.MailConfigured())
	auth := service.NewAuthService(db, []byte(cfg.JWTSecret))
	cart := service.NewCartService(db, files)
	quotes := service.NewQuoteService(db, notifier)
	orders := service.NewOrderService(db, notifier)

	// --- Handlers ---
	mw := handlers.NewMiddleware(auth)
	authH := handlers.NewAuthHTTP(auth)
	catalogH := handlers.NewCatalogHTTP(db)
	cartH := handlers.NewCartHTTP(cart)
	quoteH := handlers.NewQuoteHTTP(quotes)
	orderH := handlers.NewOrderHTTP(orders)
	adminH := handlers.NewAdminHTTP(orders, db)
	uploadH := handlers.NewUploadHTTP(files)

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Locally stored designs are served straight from disk; Cloudinary refs
	// resolve to remote URLs instead.
	if _, ok := files.(*storage.DiskStore); ok {
		r.Static("/uploads", cfg.UploadDir)
	}

	api := r.Group("/api")
	{
		api.POST("/auth/register", authH.Register)
		api.POST("/auth/login", authH.Login)
		api.POST("/auth/logout", authH.Logout)

		api.GET("/products", catalogH.ListProducts)
		api.GET("/products/:id", catalogH.GetProduct)
		api.GET("/categories", catalogH.ListCategories)

		// Contact form: open to guests, links the account when logged in.
		api.POST("/orders/inquiry", mw.OptionalUser, orderH.Inquiry)
	}

	user := api.Group("", mw.RequireUser)
	{
		user.GET("/me", authH.Me)

		user.POST("/uploads", uploadH.Upload)

		user.POST("/cart", cartH.Add)
		user.GET("/cart", cartH.List)
		user.PATCH("/cart/:id", cartH.UpdateQuantity)
		user.DELETE("/cart/:id", cartH.Remove)

		user.POST("/quotes", quoteH.Submit)
		user.GET("/quotes", quoteH.ListMine)
		user.GET("/quotes/:id", quoteH.Get)
		user.POST("/quotes/:id/accept", quoteH.Accept)
		user.POST("/quotes/:id/reject", quoteH.Reject)

		user.GET("/orders", orderH.ListMine)
		user.GET("/orders/:id", orderH.Get)
	}

	admin := api.Group("/admin", mw.RequireUser, mw.RequireAdmin)
	{
		admin.GET("/dashboard", adminH.Dashboard)
		admin.GET("/users", adminH.ListUsers)

		admin.GET("/quotes", quoteH.ListPending)
		admin.POST("/quotes/:id/price", quoteH.Price)

		admin.GET("/orders", orderH.AdminList)
		admin.GET("/orders/:id", orderH.AdminGet)
		admin.POST("/orders/:id/status", orderH.AdminUpdateStatus)

		admin.POST("/products", catalogH.CreateProduct)
		admin.PUT("/products/:id", catalogH.UpdateProduct)
		admin.DELETE("/products/:id", catalogH.DeleteProduct)
		admin.POST("/categories", catalogH.CreateCategory)
		admin.DELETE("/categories/:id", catalogH.DeleteCategory)
	}

	cleanup := func() {
		if s, err := db.DB(); err == nil {
			_ = s.Close()
		}
	}
	return r, cleanup, nil
}
