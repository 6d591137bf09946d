package handlers

import (
	"errors"
	"net/http"

	"delivery-marketplace-api/models"
	"delivery-marketplace-api/storage"

	"github.com/gin-gonic/gin"
)

type CreateProductRequest struct {
	VendorID      string                       `json:"vendorId" binding:"required"`
	Name          string                       `json:"name" binding:"required"`
	Price         float64                      `json:"price" binding:"required,gt=0"`
	Category      string                       `json:"category" binding:"required"`
	Description   string                       `json:"description"`
	ImageURL      string                       `json:"imageUrl"`
	InStock       *bool                        `json:"inStock"`
	CustomOptions *models.ProductCustomOptions `json:"customOptions"`
}

// GetVendorProducts lists a vendor's catalog; an unknown vendor yields an
// empty list, not a 404.
func (h *Handler) GetVendorProducts(c *gin.Context) {
	products, err := h.store.GetProductsByVendor(c.Param("id"))
	if err != nil {
		h.serverError(c, "Failed to get products", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindError(err)})
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product, err := h.store.CreateProduct(models.Product{
		VendorID:      req.VendorID,
		Name:          req.Name,
		Price:         req.Price,
		Category:      req.Category,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		InStock:       inStock,
		CustomOptions: req.CustomOptions,
	})
	if err != nil {
		h.serverError(c, "Failed to create product", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var upd models.ProductUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindError(err)})
		return
	}

	product, err := h.store.UpdateProduct(c.Param("id"), upd)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		h.serverError(c, "Failed to update product", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	existed, err := h.store.DeleteProduct(c.Param("id"))
	if err != nil {
		h.serverError(c, "Failed to delete product", err)
		return
	}
	if !existed {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
