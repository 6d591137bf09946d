package models

// VehicleType defines the delivery vehicle classes drivers register with
type VehicleType string

const (
	VehicleBike VehicleType = "bike"
	VehicleKeke VehicleType = "keke"
	VehicleCar  VehicleType = "car"
	VehicleVan  VehicleType = "van"
)

type Driver struct {
	ID            string      `json:"id" gorm:"primaryKey;size:36"`
	UserID        string      `json:"userId" gorm:"index;not null"`
	FullName      string      `json:"fullName" gorm:"not null"`
	PhoneNumber   string      `json:"phoneNumber" gorm:"not null"`
	VehicleType   VehicleType `json:"vehicleType" gorm:"not null"`
	VehicleNumber string      `json:"vehicleNumber" gorm:"not null"`
	VehicleColor  string      `json:"vehicleColor" gorm:"not null"`
	IsAvailable   bool        `json:"isAvailable"`
	TotalEarnings float64     `json:"totalEarnings"`
}

type DriverUpdate struct {
	FullName      *string      `json:"fullName" binding:"omitempty,min=2"`
	PhoneNumber   *string      `json:"phoneNumber" binding:"omitempty,min=10"`
	VehicleType   *VehicleType `json:"vehicleType" binding:"omitempty,oneof=bike keke car van"`
	VehicleNumber *string      `json:"vehicleNumber" binding:"omitempty,min=1"`
	VehicleColor  *string      `json:"vehicleColor" binding:"omitempty,min=1"`
	IsAvailable   *bool        `json:"isAvailable"`
	TotalEarnings *float64     `json:"totalEarnings" binding:"omitempty,gte=0"`
}

func (u DriverUpdate) Apply(driver *Driver) {
	if u.FullName != nil {
		driver.FullName = *u.FullName
	}
	if u.PhoneNumber != nil {
		driver.PhoneNumber = *u.PhoneNumber
	}
	if u.VehicleType != nil {
		driver.VehicleType = *u.VehicleType
	}
	if u.VehicleNumber != nil {
		driver.VehicleNumber = *u.VehicleNumber
	}
	if u.VehicleColor != nil {
		driver.VehicleColor = *u.VehicleColor
	}
	if u.IsAvailable != nil {
		driver.IsAvailable = *u.IsAvailable
	}
	if u.TotalEarnings != nil {
		driver.TotalEarnings = *u.TotalEarnings
	}
}
