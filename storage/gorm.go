package storage

import (
	"errors"

	"delivery-marketplace-api/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormStore is the document-store mode: the same Store contract persisted in
// SQLite so records survive restarts. Selected with STORAGE_DRIVER=sqlite.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate all models
	err = db.AutoMigrate(
		&models.User{},
		&models.Vendor{},
		&models.Product{},
		&models.Driver{},
		&models.Order{},
	)
	if err != nil {
		return nil, err
	}

	return &GormStore{db: db}, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ── Users ───────────────────────────────────────────────────────────────────

func (s *GormStore) CreateUser(user models.User) (models.User, error) {
	user.ID = uuid.NewString()
	if err := s.db.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *GormStore) GetUser(id string) (models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

func (s *GormStore) GetUserByEmail(email string) (models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

func (s *GormStore) UpdateUser(id string, upd models.UserUpdate) (models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return models.User{}, translate(err)
	}
	upd.Apply(&user)
	if err := s.db.Save(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ── Vendors ─────────────────────────────────────────────────────────────────

func (s *GormStore) CreateVendor(vendor models.Vendor) (models.Vendor, error) {
	vendor.ID = uuid.NewString()
	if vendor.DeliveryTime == "" {
		vendor.DeliveryTime = models.DefaultDeliveryTime
	}
	if err := s.db.Create(&vendor).Error; err != nil {
		return models.Vendor{}, err
	}
	return vendor, nil
}

func (s *GormStore) GetVendor(id string) (models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.First(&vendor, "id = ?", id).Error; err != nil {
		return models.Vendor{}, translate(err)
	}
	return vendor, nil
}

func (s *GormStore) GetVendorByUserID(userID string) (models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.First(&vendor, "user_id = ?", userID).Error; err != nil {
		return models.Vendor{}, translate(err)
	}
	return vendor, nil
}

func (s *GormStore) ListVendors() ([]models.Vendor, error) {
	vendors := make([]models.Vendor, 0)
	if err := s.db.Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

func (s *GormStore) UpdateVendor(id string, upd models.VendorUpdate) (models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.First(&vendor, "id = ?", id).Error; err != nil {
		return models.Vendor{}, translate(err)
	}
	upd.Apply(&vendor)
	if err := s.db.Save(&vendor).Error; err != nil {
		return models.Vendor{}, err
	}
	return vendor, nil
}

// ── Products ────────────────────────────────────────────────────────────────

func (s *GormStore) CreateProduct(product models.Product) (models.Product, error) {
	product.ID = uuid.NewString()
	if err := s.db.Create(&product).Error; err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *GormStore) GetProduct(id string) (models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return models.Product{}, translate(err)
	}
	return product, nil
}

func (s *GormStore) GetProductsByVendor(vendorID string) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := s.db.Find(&products, "vendor_id = ?", vendorID).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormStore) UpdateProduct(id string, upd models.ProductUpdate) (models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return models.Product{}, translate(err)
	}
	upd.Apply(&product)
	if err := s.db.Save(&product).Error; err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *GormStore) DeleteProduct(id string) (bool, error) {
	res := s.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ── Drivers ─────────────────────────────────────────────────────────────────

func (s *GormStore) CreateDriver(driver models.Driver) (models.Driver, error) {
	driver.ID = uuid.NewString()
	if err := s.db.Create(&driver).Error; err != nil {
		return models.Driver{}, err
	}
	return driver, nil
}

func (s *GormStore) GetDriver(id string) (models.Driver, error) {
	var driver models.Driver
	if err := s.db.First(&driver, "id = ?", id).Error; err != nil {
		return models.Driver{}, translate(err)
	}
	return driver, nil
}

func (s *GormStore) GetDriverByUserID(userID string) (models.Driver, error) {
	var driver models.Driver
	if err := s.db.First(&driver, "user_id = ?", userID).Error; err != nil {
		return models.Driver{}, translate(err)
	}
	return driver, nil
}

func (s *GormStore) UpdateDriver(id string, upd models.DriverUpdate) (models.Driver, error) {
	var driver models.Driver
	if err := s.db.First(&driver, "id = ?", id).Error; err != nil {
		return models.Driver{}, translate(err)
	}
	upd.Apply(&driver)
	if err := s.db.Save(&driver).Error; err != nil {
		return models.Driver{}, err
	}
	return driver, nil
}

// ── Orders ──────────────────────────────────────────────────────────────────

func (s *GormStore) CreateOrder(order models.Order) (models.Order, error) {
	order.ID = uuid.NewString()
	if order.Status == "" {
		order.Status = models.StatusPending
	}
	if err := s.db.Create(&order).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *GormStore) GetOrder(id string) (models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		return models.Order{}, translate(err)
	}
	return order, nil
}

func (s *GormStore) GetOrdersByVendor(vendorID string) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := s.db.Find(&orders, "vendor_id = ?", vendorID).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormStore) GetOrdersByDriver(driverID string) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := s.db.Find(&orders, "driver_id = ?", driverID).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormStore) UpdateOrder(id string, upd models.OrderUpdate) (models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		return models.Order{}, translate(err)
	}
	upd.Apply(&order)
	if err := s.db.Save(&order).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}
