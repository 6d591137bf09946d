package models

// ProductAddon is an optional extra a customer can attach to a product
type ProductAddon struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ProductCustomOptions struct {
	Addons []ProductAddon `json:"addons,omitempty"`
}

type Product struct {
	ID            string                `json:"id" gorm:"primaryKey;size:36"`
	VendorID      string                `json:"vendorId" gorm:"index;not null"`
	Name          string                `json:"name" gorm:"not null"`
	Price         float64               `json:"price" gorm:"not null"`
	Category      string                `json:"category" gorm:"not null"`
	Description   string                `json:"description"`
	ImageURL      string                `json:"imageUrl"`
	InStock       bool                  `json:"inStock"`
	CustomOptions *ProductCustomOptions `json:"customOptions,omitempty" gorm:"serializer:json"`
}

type ProductUpdate struct {
	Name          *string               `json:"name" binding:"omitempty,min=1"`
	Price         *float64              `json:"price" binding:"omitempty,gt=0"`
	Category      *string               `json:"category" binding:"omitempty,min=1"`
	Description   *string               `json:"description"`
	ImageURL      *string               `json:"imageUrl"`
	InStock       *bool                 `json:"inStock"`
	CustomOptions *ProductCustomOptions `json:"customOptions"`
}

// Apply merges supplied fields; a supplied customOptions object replaces the
// prior value wholesale rather than deep-merging.
func (u ProductUpdate) Apply(product *Product) {
	if u.Name != nil {
		product.Name = *u.Name
	}
	if u.Price != nil {
		product.Price = *u.Price
	}
	if u.Category != nil {
		product.Category = *u.Category
	}
	if u.Description != nil {
		product.Description = *u.Description
	}
	if u.ImageURL != nil {
		product.ImageURL = *u.ImageURL
	}
	if u.InStock != nil {
		product.InStock = *u.InStock
	}
	if u.CustomOptions != nil {
		product.CustomOptions = u.CustomOptions
	}
}
