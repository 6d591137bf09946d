package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"delivery-marketplace-api/handlers"
	"delivery-marketplace-api/models"
	"delivery-marketplace-api/routes"
	"delivery-marketplace-api/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAPI(store storage.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r, handlers.New(store, nil, zap.NewNop()))
	return r
}

func do(r *gin.Engine, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func signUp(t *testing.T, r *gin.Engine, email string, role models.UserRole) (userID, token string) {
	t.Helper()
	w := do(r, http.MethodPost, "/api/auth/signup", gin.H{
		"email":    email,
		"password": "secret123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	user := body["user"].(map[string]any)
	return user["id"].(string), body["token"].(string)
}

// ── Auth ────────────────────────────────────────────────────────────────────

func TestSignUpNeverEchoesPassword(t *testing.T) {
	r := newAPI(storage.NewMemoryStore())

	w := do(r, http.MethodPost, "/api/auth/signup", gin.H{
		"email":    "joe@example.com",
		"password": "secret123",
		"role":     "vendor",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	user := body["user"].(map[string]any)
	assert.NotEmpty(t, user["id"])
	assert.Equal(t, false, user["onboardingComplete"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)
	assert.NotContains(t, w.Body.String(), "secret123")
	assert.NotEmpty(t, body["token"])
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	store := storage.NewMemoryStore()
	r := newAPI(store)
	signUp(t, r, "joe@example.com", models.RoleVendor)

	w := do(r, http.MethodPost, "/api/auth/signup", gin.H{
		"email":    "joe@example.com",
		"password": "different9",
		"role":     "driver",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered", decode(t, w)["message"])

	// the original record is untouched
	user, err := store.GetUserByEmail("joe@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleVendor, user.Role)
}

func TestSignUpValidation(t *testing.T) {
	r := newAPI(storage.NewMemoryStore())

	w := do(r, http.MethodPost, "/api/auth/signup", gin.H{"email": "nope", "password": "secret123", "role": "vendor"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please enter a valid email", decode(t, w)["message"])

	w = do(r, http.MethodPost, "/api/auth/signup", gin.H{"email": "a@b.com", "password": "short", "role": "vendor"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/auth/signup", gin.H{"email": "a@b.com", "password": "secret123", "role": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// spyStore records profile lookups so tests can prove the wrong-password
// path short-circuits.
type spyStore struct {
	*storage.MemoryStore
	vendorLookups int
	driverLookups int
}

func (s *spyStore) GetVendorByUserID(userID string) (models.Vendor, error) {
	s.vendorLookups++
	return s.MemoryStore.GetVendorByUserID(userID)
}

func (s *spyStore) GetDriverByUserID(userID string) (models.Driver, error) {
	s.driverLookups++
	return s.MemoryStore.GetDriverByUserID(userID)
}

func TestSignInWrongPasswordShortCircuits(t *testing.T) {
	store := &spyStore{MemoryStore: storage.NewMemoryStore()}
	r := newAPI(store)
	signUp(t, r, "joe@example.com", models.RoleVendor)

	w := do(r, http.MethodPost, "/api/auth/signin", gin.H{"email": "joe@example.com", "password": "wrongpass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode(t, w)["message"])
	assert.Zero(t, store.vendorLookups)
	assert.Zero(t, store.driverLookups)

	w = do(r, http.MethodPost, "/api/auth/signin", gin.H{"email": "nobody@example.com", "password": "whatever1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode(t, w)["message"])
}

func TestSignInReturnsRoleProfile(t *testing.T) {
	r := newAPI(storage.NewMemoryStore())
	userID, _ := signUp(t, r, "joe@example.com", models.RoleVendor)

	w := do(r, http.MethodPost, "/api/vendors", gin.H{
		"userId":    userID,
		"brandName": "Joe's",
		"category":  "Bakery",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/api/auth/signin", gin.H{"email": "joe@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.NotNil(t, body["vendor"])
	assert.Equal(t, "Joe's", body["vendor"].(map[string]any)["brandName"])
	assert.Nil(t, body["driver"])
	assert.NotEmpty(t, body["token"])
}

func TestAuthMe(t *testing.T) {
	r := newAPI(storage.NewMemoryStore())
	_, token := signUp(t, r, "joe@example.com", models.RoleDriver)

	w := do(r, http.MethodGet, "/api/auth/me", nil, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "joe@example.com", decode(t, w)["user"].(map[string]any)["email"])

	w = do(r, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// ── Vendor onboarding scenario ──────────────────────────────────────────────

func TestVendorOnboardingScenario(t *testing.T) {
	store := storage.NewMemoryStore()
	r := newAPI(store)
	userID, _ := signUp(t, r, "joe@example.com", models.RoleVendor)

	w := do(r, http.MethodPost, "/api/vendors", gin.H{
		"userId":    userID,
		"brandName": "Joe's",
		"category":  "Bakery",
		"products": []gin.H{
			{"name": "Bread", "price": 15, "category": "Packaged"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	vendor := decode(t, w)["vendor"].(map[string]any)
	assert.NotEmpty(t, vendor["id"])
	assert.Equal(t, 4.8, vendor["rating"])
	assert.Equal(t, "15-20 min", vendor["deliveryTime"])

	w = do(r, http.MethodGet, "/api/vendors/"+vendor["id"].(string)+"/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	products := decode(t, w)["products"].([]any)
	require.Len(t, products, 1)
	product := products[0].(map[string]any)
	assert.Equal(t, "Bread", product["name"])
	assert.Equal(t, true, product["inStock"])

	user, err := store.GetUser(userID)
	require.NoError(t, err)
	assert.True(t, user.OnboardingComplete)
}

func TestDriverOnboardingFlipsFlag(t *testing.T) {
	store := storage.NewMemoryStore()
	r := newAPI(store)
	userID, _ := signUp(t, r, "dan@example.com", models.RoleDriver)

	w := do(r, http.MethodPost, "/api/drivers", gin.H{
		"userId":        userID,
		"fullName":      "Dan Okafor",
		"phoneNumber":   "08012345678",
		"vehicleType":   "keke",
		"vehicleNumber": "LAG-123",
		"vehicleColor":  "yellow",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	driver := decode(t, w)["driver"].(map[string]any)
	assert.Equal(t, true, driver["isAvailable"])
	assert.Equal(t, float64(0), driver["totalEarnings"])

	user, err := store.GetUser(userID)
	require.NoError(t, err)
	assert.True(t, user.OnboardingComplete)
}

func TestDriverValidation(t *testing.T) {
	r := newAPI(storage.NewMemoryStore())
	w := do(r, http.MethodPost, "/api/drivers", gin.H{
		"userId":        "u1",
		"fullName":      "Dan Okafor",
		"phoneNumber":   "08012345678",
		"vehicleType":   "truck",
		"vehicleNumber": "LAG-123",
		"vehicleColor":  "yellow",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ── Products ────────────────────────────────────────────────────────────────

func TestCreateProductPriceValidation(t *testing.T) {
	r := newAPI(storage.NewMemoryStore())

	w := do(r, http.MethodPost, "/api/products", gin.H{
		"vendorId": "v1", "name": "Bread", "price": 0, "category": "Packaged",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/products", gin.H{
		"vendorId": "v1", "name": "Bread", "price": 0.01, "category": "Packaged",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 0.01, decode(t, w)["product"].(map[string]any)["price"])
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	r := newAPI(storage.NewMemoryStore())

	w := do(r, http.MethodPost, "/api/products", gin.H{
		"vendorId": "v1", "name": "Bread", "price": 15, "category": "Packaged",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["product"].(map[string]any)["id"].(string)

	// merge keeps unsupplied fields
	w = do(r, http.MethodPatch, "/api/products/"+id, gin.H{"inStock": false})
	require.Equal(t, http.StatusOK, w.Code)
	product := decode(t, w)["product"].(map[string]any)
	assert.Equal(t, false, product["inStock"])
	assert.Equal(t, "Bread", product["name"])
	assert.Equal(t, float64(15), product["price"])

	w = do(r, http.MethodPatch, "/api/products/"+id, gin.H{"price": -2})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodDelete, "/api/products/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["success"])

	w = do(r, http.MethodDelete, "/api/products/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUnknownIDs(t *testing.T) {
	r := newAPI(storage.NewMemoryStore())
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPatch, "/api/vendors/missing", gin.H{"brandName": "New"}).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPatch, "/api/products/missing", gin.H{"name": "New"}).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPatch, "/api/drivers/missing", gin.H{"vehicleColor": "red"}).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPatch, "/api/orders/missing", gin.H{"customerName": "N"}).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/vendors/missing", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/drivers/missing", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/orders/missing", nil).Code)
}

// ── Vendors ─────────────────────────────────────────────────────────────────

func TestVendorPatchMergesFields(t *testing.T) {
	r := newAPI(storage.NewMemoryStore())
	userID, _ := signUp(t, r, "joe@example.com", models.RoleVendor)

	w := do(r, http.MethodPost, "/api/vendors", gin.H{"userId": userID, "brandName": "Joe's", "category": "Bakery"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["vendor"].(map[string]any)["id"].(string)

	w = do(r, http.MethodPatch, "/api/vendors/"+id, gin.H{"description": "Fresh daily"})
	require.Equal(t, http.StatusOK, w.Code)
	vendor := decode(t, w)["vendor"].(map[string]any)
	assert.Equal(t, "Fresh daily", vendor["description"])
	assert.Equal(t, "Joe's", vendor["brandName"])
	assert.Equal(t, "Bakery", vendor["category"])
}

func TestListVendorsFilters(t *testing.T) {
	r := newAPI(storage.NewMemoryStore())
	u1, _ := signUp(t, r, "joe@example.com", models.RoleVendor)
	u2, _ := signUp(t, r, "ada@example.com", models.RoleVendor)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/vendors", gin.H{"userId": u1, "brandName": "Joe's Bakes", "category": "Bakery"}).Code)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/vendors", gin.H{"userId": u2, "brandName": "Ada's Grill", "category": "Grill"}).Code)

	w := do(r, http.MethodGet, "/api/vendors?category=Bakery", nil)
	require.Equal(t, http.StatusOK, w.Code)
	vendors := decode(t, w)["vendors"].([]any)
	require.Len(t, vendors, 1)
	assert.Equal(t, "Joe's Bakes", vendors[0].(map[string]any)["brandName"])

	w = do(r, http.MethodGet, "/api/vendors?search=grill", nil)
	assert.Len(t, decode(t, w)["vendors"].([]any), 1)

	w = do(r, http.MethodGet, "/api/vendors?popular=true", nil)
	assert.Len(t, decode(t, w)["vendors"].([]any), 0)
}

// ── Orders ──────────────────────────────────────────────────────────────────

func placeOrder(t *testing.T, r *gin.Engine, vendorID string) string {
	t.Helper()
	w := do(r, http.MethodPost, "/api/orders", gin.H{
		"vendorId":        vendorID,
		"customerName":    "Ngozi",
		"customerAddress": "12 Allen Ave",
		"items":           []gin.H{{"productId": "p1", "productName": "Bread", "quantity": 1, "price": 15}},
		"totalAmount":     15,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode(t, w)["order"].(map[string]any)
	assert.Equal(t, "pending", order["status"])
	assert.Nil(t, order["driverId"])
	return order["id"].(string)
}

func TestCreateOrderValidation(t *testing.T) {
	r := newAPI(storage.NewMemoryStore())

	w := do(r, http.MethodPost, "/api/orders", gin.H{
		"vendorId": "v1", "customerName": "N", "customerAddress": "A",
		"items": []gin.H{}, "totalAmount": 15,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/orders", gin.H{
		"vendorId": "v1", "customerName": "N", "customerAddress": "A",
		"items": []gin.H{{"productId": "p1", "quantity": 1, "price": 15}}, "totalAmount": 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderLifecycle(t *testing.T) {
	r := newAPI(storage.NewMemoryStore())
	orderID := placeOrder(t, r, "v1")

	// skipping a state is rejected with the valid next states
	w := do(r, http.MethodPatch, "/api/orders/"+orderID, gin.H{"status": "ready"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode(t, w)
	assert.Contains(t, body, "validNextStates")

	// drivers cannot be attached before dispatch
	w = do(r, http.MethodPatch, "/api/orders/"+orderID, gin.H{"driverId": "d1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.Equal(t, http.StatusOK, do(r, http.MethodPatch, "/api/orders/"+orderID, gin.H{"status": "preparing"}).Code)
	require.Equal(t, http.StatusOK, do(r, http.MethodPatch, "/api/orders/"+orderID, gin.H{"status": "ready"}).Code)

	// dispatch requires a driver
	w = do(r, http.MethodPatch, "/api/orders/"+orderID, gin.H{"status": "delivering"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPatch, "/api/orders/"+orderID, gin.H{"status": "delivering", "driverId": "d1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "d1", decode(t, w)["order"].(map[string]any)["driverId"])

	w = do(r, http.MethodGet, "/api/drivers/d1/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["orders"].([]any), 1)

	require.Equal(t, http.StatusOK, do(r, http.MethodPatch, "/api/orders/"+orderID, gin.H{"status": "completed"}).Code)

	// completed is terminal
	w = do(r, http.MethodPatch, "/api/orders/"+orderID, gin.H{"status": "cancelled"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestVendorOrdersList(t *testing.T) {
	r := newAPI(storage.NewMemoryStore())
	orderID := placeOrder(t, r, "v1")
	placeOrder(t, r, "v2")

	w := do(r, http.MethodGet, "/api/vendors/v1/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	orders := decode(t, w)["orders"].([]any)
	require.Len(t, orders, 1)
	assert.Equal(t, orderID, orders[0].(map[string]any)["id"])
}

// ── Uploads ─────────────────────────────────────────────────────────────────

func TestUploadWithoutBackend(t *testing.T) {
	r := newAPI(storage.NewMemoryStore())
	w := do(r, http.MethodPost, "/api/uploads", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
