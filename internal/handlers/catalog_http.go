package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/model"
)

// CatalogHTTP serves the public product/category listing and the admin CRUD
// screens behind it. Catalog access is plain persistence, so it works off the
// DB handle directly rather than a dedicated service.
type CatalogHTTP struct {
	DB *gorm.DB
}

func NewCatalogHTTP(db *gorm.DB) *CatalogHTTP { return &CatalogHTTP{DB: db} }

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func (h *CatalogHTTP) ListProducts(c *gin.Context) {
	tx := h.DB.Preload("Category").Order("id asc")
	if cat := c.Query("category_id"); cat != "" {
		tx = tx.Where("category_id = ?", cat)
	}
	var ps []model.Product
	if err := tx.Find(&ps).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, ps)
}

func (h *CatalogHTTP) GetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var p model.Product
	if err := h.DB.Preload("Category").First(&p, id).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, p)
}

func (h *CatalogHTTP) ListCategories(c *gin.Context) {
	var cs []model.Category
	if err := h.DB.Order("name asc").Find(&cs).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, cs)
}

type productInput struct {
	CategoryID     uint   `json:"category_id"`
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	BasePriceCents int64  `json:"base_price_cents"`
	MinOrderQty    int    `json:"min_order_qty"`
	Sizes          string `json:"sizes"`
	Materials      string `json:"materials"`
	Colors         string `json:"colors"`
	Finishings     string `json:"finishings"`
	ImageURL       string `json:"image_url"`
}

func (h *CatalogHTTP) CreateProduct(c *gin.Context) {
	var in productInput
	if err := c.BindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "bad json"})
		return
	}
	if in.MinOrderQty < 1 {
		in.MinOrderQty = 1
	}
	p := model.Product{
		CategoryID:     in.CategoryID,
		Name:           in.Name,
		Description:    in.Description,
		BasePriceCents: in.BasePriceCents,
		MinOrderQty:    in.MinOrderQty,
		Sizes:          in.Sizes,
		Materials:      in.Materials,
		Colors:         in.Colors,
		Finishings:     in.Finishings,
		ImageURL:       in.ImageURL,
	}
	if err := h.DB.Create(&p).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(201, p)
}

func (h *CatalogHTTP) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var p model.Product
	if err := h.DB.First(&p, id).Error; err != nil {
		fail(c, err)
		return
	}
	var in productInput
	if err := c.BindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "bad json"})
		return
	}
	if in.MinOrderQty < 1 {
		in.MinOrderQty = 1
	}
	updates := map[string]any{
		"category_id":      in.CategoryID,
		"name":             in.Name,
		"description":      in.Description,
		"base_price_cents": in.BasePriceCents,
		"min_order_qty":    in.MinOrderQty,
		"sizes":            in.Sizes,
		"materials":        in.Materials,
		"colors":           in.Colors,
		"finishings":       in.Finishings,
		"image_url":        in.ImageURL,
	}
	if err := h.DB.Model(&p).Updates(updates).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, p)
}

func (h *CatalogHTTP) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	// Quote snapshots keep their own copy of product data, so removing a
	// product never rewrites history.
	if err := h.DB.Delete(&model.Product{}, id).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"ok": true})
}

func (h *CatalogHTTP) CreateCategory(c *gin.Context) {
	var in struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.BindJSON(&in); err != nil {
		c.JSON(400, gin.H{"error": "bad json"})
		return
	}
	cat := model.Category{Name: in.Name}
	if err := h.DB.Create(&cat).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(201, cat)
}

func (h *CatalogHTTP) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.DB.Delete(&model.Category{}, id).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"ok": true})
}
