package handlers

import (
	"errors"
	"net/http"
	"strings"

	"delivery-marketplace-api/models"
	"delivery-marketplace-api/storage"

	"github.com/gin-gonic/gin"
)

// ── Vendor Onboarding ───────────────────────────────────────────────────────

type VendorProductRequest struct {
	Name          string                       `json:"name" binding:"required"`
	Price         float64                      `json:"price" binding:"required,gt=0"`
	Category      string                       `json:"category" binding:"required"`
	Description   string                       `json:"description"`
	ImageURL      string                       `json:"imageUrl"`
	InStock       *bool                        `json:"inStock"`
	CustomOptions *models.ProductCustomOptions `json:"customOptions"`
}

type CreateVendorRequest struct {
	UserID      string                 `json:"userId" binding:"required"`
	BrandName   string                 `json:"brandName" binding:"required,min=2"`
	Category    string                 `json:"category" binding:"required"`
	Description string                 `json:"description"`
	LogoURL     string                 `json:"logoUrl"`
	CoverURL    string                 `json:"coverUrl"`
	Products    []VendorProductRequest `json:"products" binding:"omitempty,dive"`
}

// CreateVendor completes vendor onboarding: it creates the shop profile and
// any starter products, then flips the owning user's onboarding flag. The
// flag is a secondary write with no compensating transaction.
func (h *Handler) CreateVendor(c *gin.Context) {
	var req CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindError(err)})
		return
	}

	// Launch defaults for a freshly onboarded shop
	vendor, err := h.store.CreateVendor(models.Vendor{
		UserID:       req.UserID,
		BrandName:    req.BrandName,
		Category:     req.Category,
		Description:  req.Description,
		LogoURL:      req.LogoURL,
		CoverURL:     req.CoverURL,
		Rating:       4.8,
		DeliveryTime: "15-20 min",
	})
	if err != nil {
		h.serverError(c, "Failed to create vendor profile", err)
		return
	}

	for _, p := range req.Products {
		inStock := true
		if p.InStock != nil {
			inStock = *p.InStock
		}
		_, err := h.store.CreateProduct(models.Product{
			VendorID:      vendor.ID,
			Name:          p.Name,
			Price:         p.Price,
			Category:      p.Category,
			Description:   p.Description,
			ImageURL:      p.ImageURL,
			InStock:       inStock,
			CustomOptions: p.CustomOptions,
		})
		if err != nil {
			h.serverError(c, "Failed to create vendor profile", err)
			return
		}
	}

	complete := true
	if _, err := h.store.UpdateUser(req.UserID, models.UserUpdate{OnboardingComplete: &complete}); err != nil {
		h.serverError(c, "Failed to create vendor profile", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vendor": vendor})
}

// ── Vendor Lookup & Updates ─────────────────────────────────────────────────

// ListVendors returns all vendors, optionally filtered by category, brand
// name search, or popularity.
func (h *Handler) ListVendors(c *gin.Context) {
	vendors, err := h.store.ListVendors()
	if err != nil {
		h.serverError(c, "Failed to get vendors", err)
		return
	}

	category := c.Query("category")
	search := strings.ToLower(c.Query("search"))
	popular := c.Query("popular") == "true"

	filtered := make([]models.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if category != "" && v.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(v.BrandName), search) {
			continue
		}
		if popular && !v.IsPopular {
			continue
		}
		filtered = append(filtered, v)
	}

	c.JSON(http.StatusOK, gin.H{"count": len(filtered), "vendors": filtered})
}

func (h *Handler) GetVendor(c *gin.Context) {
	vendor, err := h.store.GetVendor(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Vendor not found"})
			return
		}
		h.serverError(c, "Failed to get vendor", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}

func (h *Handler) UpdateVendor(c *gin.Context) {
	var upd models.VendorUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindError(err)})
		return
	}

	vendor, err := h.store.UpdateVendor(c.Param("id"), upd)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Vendor not found"})
			return
		}
		h.serverError(c, "Failed to update vendor", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendor": vendor})
}
