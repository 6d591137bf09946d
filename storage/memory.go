package storage

import (
	"sync"

	"delivery-marketplace-api/models"

	"github.com/google/uuid"
)

// MemoryStore keeps every entity kind in a keyed map. Foreign-key lookups are
// linear scans, which is fine at this scale. gin serves requests
// concurrently, so the maps are guarded by a single RWMutex; there is no
// versioning or optimistic locking beyond that.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[string]models.User
	vendors  map[string]models.Vendor
	products map[string]models.Product
	drivers  map[string]models.Driver
	orders   map[string]models.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]models.User),
		vendors:  make(map[string]models.Vendor),
		products: make(map[string]models.Product),
		drivers:  make(map[string]models.Driver),
		orders:   make(map[string]models.Order),
	}
}

// ── Users ───────────────────────────────────────────────────────────────────

func (s *MemoryStore) CreateUser(user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = uuid.NewString()
	s.users[user.ID] = user
	return user, nil
}

func (s *MemoryStore) GetUser(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (s *MemoryStore) GetUserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryStore) UpdateUser(id string, upd models.UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	upd.Apply(&user)
	s.users[id] = user
	return user, nil
}

// ── Vendors ─────────────────────────────────────────────────────────────────

func (s *MemoryStore) CreateVendor(vendor models.Vendor) (models.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vendor.ID = uuid.NewString()
	if vendor.DeliveryTime == "" {
		vendor.DeliveryTime = models.DefaultDeliveryTime
	}
	s.vendors[vendor.ID] = vendor
	return vendor, nil
}

func (s *MemoryStore) GetVendor(id string) (models.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vendor, ok := s.vendors[id]
	if !ok {
		return models.Vendor{}, ErrNotFound
	}
	return vendor, nil
}

func (s *MemoryStore) GetVendorByUserID(userID string) (models.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, vendor := range s.vendors {
		if vendor.UserID == userID {
			return vendor, nil
		}
	}
	return models.Vendor{}, ErrNotFound
}

func (s *MemoryStore) ListVendors() ([]models.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vendors := make([]models.Vendor, 0, len(s.vendors))
	for _, vendor := range s.vendors {
		vendors = append(vendors, vendor)
	}
	return vendors, nil
}

func (s *MemoryStore) UpdateVendor(id string, upd models.VendorUpdate) (models.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vendor, ok := s.vendors[id]
	if !ok {
		return models.Vendor{}, ErrNotFound
	}
	upd.Apply(&vendor)
	s.vendors[id] = vendor
	return vendor, nil
}

// ── Products ────────────────────────────────────────────────────────────────

func (s *MemoryStore) CreateProduct(product models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product.ID = uuid.NewString()
	s.products[product.ID] = product
	return product, nil
}

func (s *MemoryStore) GetProduct(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	product, ok := s.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return product, nil
}

func (s *MemoryStore) GetProductsByVendor(vendorID string) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]models.Product, 0)
	for _, product := range s.products {
		if product.VendorID == vendorID {
			products = append(products, product)
		}
	}
	return products, nil
}

func (s *MemoryStore) UpdateProduct(id string, upd models.ProductUpdate) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	upd.Apply(&product)
	s.products[id] = product
	return product, nil
}

func (s *MemoryStore) DeleteProduct(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.products[id]
	delete(s.products, id)
	return ok, nil
}

// ── Drivers ─────────────────────────────────────────────────────────────────

func (s *MemoryStore) CreateDriver(driver models.Driver) (models.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	driver.ID = uuid.NewString()
	s.drivers[driver.ID] = driver
	return driver, nil
}

func (s *MemoryStore) GetDriver(id string) (models.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	driver, ok := s.drivers[id]
	if !ok {
		return models.Driver{}, ErrNotFound
	}
	return driver, nil
}

func (s *MemoryStore) GetDriverByUserID(userID string) (models.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, driver := range s.drivers {
		if driver.UserID == userID {
			return driver, nil
		}
	}
	return models.Driver{}, ErrNotFound
}

func (s *MemoryStore) UpdateDriver(id string, upd models.DriverUpdate) (models.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	driver, ok := s.drivers[id]
	if !ok {
		return models.Driver{}, ErrNotFound
	}
	upd.Apply(&driver)
	s.drivers[id] = driver
	return driver, nil
}

// ── Orders ──────────────────────────────────────────────────────────────────

func (s *MemoryStore) CreateOrder(order models.Order) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.ID = uuid.NewString()
	if order.Status == "" {
		order.Status = models.StatusPending
	}
	s.orders[order.ID] = order
	return order, nil
}

func (s *MemoryStore) GetOrder(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	return order, nil
}

func (s *MemoryStore) GetOrdersByVendor(vendorID string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]models.Order, 0)
	for _, order := range s.orders {
		if order.VendorID == vendorID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (s *MemoryStore) GetOrdersByDriver(driverID string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]models.Order, 0)
	for _, order := range s.orders {
		if order.DriverID != nil && *order.DriverID == driverID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (s *MemoryStore) UpdateOrder(id string, upd models.OrderUpdate) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	upd.Apply(&order)
	s.orders[id] = order
	return order, nil
}
