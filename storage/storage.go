package storage

import (
	"errors"

	"delivery-marketplace-api/models"
)

// ErrNotFound is returned by lookups and updates against an unknown id.
var ErrNotFound = errors.New("record not found")

// Store is the entity-store contract the HTTP layer is written against.
// Create operations assign a fresh id and apply declared defaults; they never
// validate input (validation happens at the facade). Update operations
// shallow-merge the supplied partial over the existing record. List
// operations make no ordering guarantee.
type Store interface {
	CreateUser(user models.User) (models.User, error)
	GetUser(id string) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	UpdateUser(id string, upd models.UserUpdate) (models.User, error)

	CreateVendor(vendor models.Vendor) (models.Vendor, error)
	GetVendor(id string) (models.Vendor, error)
	GetVendorByUserID(userID string) (models.Vendor, error)
	ListVendors() ([]models.Vendor, error)
	UpdateVendor(id string, upd models.VendorUpdate) (models.Vendor, error)

	CreateProduct(product models.Product) (models.Product, error)
	GetProduct(id string) (models.Product, error)
	GetProductsByVendor(vendorID string) ([]models.Product, error)
	UpdateProduct(id string, upd models.ProductUpdate) (models.Product, error)
	DeleteProduct(id string) (bool, error)

	CreateDriver(driver models.Driver) (models.Driver, error)
	GetDriver(id string) (models.Driver, error)
	GetDriverByUserID(userID string) (models.Driver, error)
	UpdateDriver(id string, upd models.DriverUpdate) (models.Driver, error)

	CreateOrder(order models.Order) (models.Order, error)
	GetOrder(id string) (models.Order, error)
	GetOrdersByVendor(vendorID string) ([]models.Order, error)
	GetOrdersByDriver(driverID string) ([]models.Order, error)
	UpdateOrder(id string, upd models.OrderUpdate) (models.Order, error)
}
