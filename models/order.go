package models

// OrderStatus represents all possible states of a marketplace order
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusPreparing  OrderStatus = "preparing"
	StatusReady      OrderStatus = "ready"
	StatusDelivering OrderStatus = "delivering"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// OrderItem is a line item snapshot taken at order time
type OrderItem struct {
	ProductID   string         `json:"productId"`
	ProductName string         `json:"productName"`
	Quantity    int            `json:"quantity"`
	Price       float64        `json:"price"`
	Addons      []ProductAddon `json:"addons,omitempty"`
}

type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;size:36"`
	VendorID        string      `json:"vendorId" gorm:"index;not null"`
	DriverID        *string     `json:"driverId" gorm:"index"`
	CustomerName    string      `json:"customerName" gorm:"not null"`
	CustomerAddress string      `json:"customerAddress" gorm:"not null"`
	Items           []OrderItem `json:"items" gorm:"serializer:json"`
	TotalAmount     float64     `json:"totalAmount" gorm:"not null"`
	Status          OrderStatus `json:"status"`
}

// OrderUpdate is a partial update; a supplied items list replaces the prior
// list wholesale. Status changes are additionally checked against the
// transition table at the facade.
type OrderUpdate struct {
	DriverID        *string      `json:"driverId"`
	CustomerName    *string      `json:"customerName" binding:"omitempty,min=1"`
	CustomerAddress *string      `json:"customerAddress" binding:"omitempty,min=1"`
	Items           []OrderItem  `json:"items" binding:"omitempty,min=1"`
	TotalAmount     *float64     `json:"totalAmount" binding:"omitempty,gt=0"`
	Status          *OrderStatus `json:"status" binding:"omitempty,oneof=pending preparing ready delivering completed cancelled"`
}

func (u OrderUpdate) Apply(order *Order) {
	if u.DriverID != nil {
		order.DriverID = u.DriverID
	}
	if u.CustomerName != nil {
		order.CustomerName = *u.CustomerName
	}
	if u.CustomerAddress != nil {
		order.CustomerAddress = *u.CustomerAddress
	}
	if u.Items != nil {
		order.Items = u.Items
	}
	if u.TotalAmount != nil {
		order.TotalAmount = *u.TotalAmount
	}
	if u.Status != nil {
		order.Status = *u.Status
	}
}
