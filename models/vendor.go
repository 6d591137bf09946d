package models

const DefaultDeliveryTime = "15-30 min"

type Vendor struct {
	ID           string  `json:"id" gorm:"primaryKey;size:36"`
	UserID       string  `json:"userId" gorm:"index;not null"`
	BrandName    string  `json:"brandName" gorm:"not null"`
	Category     string  `json:"category" gorm:"not null"`
	Description  string  `json:"description"`
	LogoURL      string  `json:"logoUrl"`
	CoverURL     string  `json:"coverUrl"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"deliveryTime"`
	IsPopular    bool    `json:"isPopular"`
}

type VendorUpdate struct {
	BrandName    *string  `json:"brandName" binding:"omitempty,min=2"`
	Category     *string  `json:"category" binding:"omitempty,min=1"`
	Description  *string  `json:"description"`
	LogoURL      *string  `json:"logoUrl"`
	CoverURL     *string  `json:"coverUrl"`
	Rating       *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
	DeliveryTime *string  `json:"deliveryTime"`
	IsPopular    *bool    `json:"isPopular"`
}

func (u VendorUpdate) Apply(vendor *Vendor) {
	if u.BrandName != nil {
		vendor.BrandName = *u.BrandName
	}
	if u.Category != nil {
		vendor.Category = *u.Category
	}
	if u.Description != nil {
		vendor.Description = *u.Description
	}
	if u.LogoURL != nil {
		vendor.LogoURL = *u.LogoURL
	}
	if u.CoverURL != nil {
		vendor.CoverURL = *u.CoverURL
	}
	if u.Rating != nil {
		vendor.Rating = *u.Rating
	}
	if u.DeliveryTime != nil {
		vendor.DeliveryTime = *u.DeliveryTime
	}
	if u.IsPopular != nil {
		vendor.IsPopular = *u.IsPopular
	}
}
