package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"vivaha-backend/internal/domain"
	"vivaha-backend/internal/payment"
	"vivaha-backend/internal/repository/document"
	"vivaha-backend/internal/repository/kvstore"
	"vivaha-backend/internal/security"
	"vivaha-backend/internal/service"
)

type testEnv struct {
	server *httptest.Server
	store  *document.Store
	tokens security.TokenManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	kv := kvstore.NewMemoryStore()
	store := document.NewStore(kv)
	require.NoError(t, document.SeedProducts(context.Background(), kv, []domain.Product{
		{ID: "VJ-001", Name: "Kundan Bridal Necklace Set", Price: 4599900, Stock: 5, RentalPricePerDay: 250000},
		{ID: "VJ-003", Name: "Temple Jhumka Earrings", Price: 849900, Stock: 20},
	}))

	tokens := security.NewTokenManager("test-secret", 15*time.Minute, time.Hour)
	emailSvc := service.NewNoopEmailService()
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	cartSvc := service.NewCartService(store.CartRepository, store.ProductCatalog)
	userSvc := service.NewUserService(store.UserRepository, noteSvc, 30*24*time.Hour)
	authSvc := service.NewAuthService(store.UserRepository, cartSvc, noteSvc, tokens)
	adminSvc := service.NewAdminService(store.UserRepository, noteSvc, emailSvc)
	orderSvc := service.NewOrderService(store.OrderRepository, store.CartRepository, store.ProductCatalog,
		payment.NewStaticProcessor("accepted"), noteSvc, emailSvc)

	mw := NewAuthMiddleware(tokens, userSvc)
	router := NewRouter(Handlers{
		Auth:          NewAuthHandler(authSvc),
		User:          NewUserHandler(userSvc, mw),
		Cart:          NewCartHandler(cartSvc, mw),
		Order:         NewOrderHandler(orderSvc, mw),
		Notifications: NewNotificationHandler(noteSvc, mw),
		Admin:         NewAdminHandler(adminSvc, userSvc, mw),
		Middleware:    mw,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return &testEnv{server: server, store: store, tokens: tokens}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, e.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func (e *testEnv) seedAdmin(t *testing.T) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &domain.User{
		ID:           "admin-1",
		Name:         "Store Admin",
		Email:        "admin@vivaha.example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedOn:    time.Now(),
	}
	require.NoError(t, e.store.UserRepository.Create(context.Background(), admin))

	token, err := e.tokens.GenerateAccessToken(admin.ID, admin.Email, admin.Role)
	require.NoError(t, err)
	return token
}

func TestGuestCartOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	guest := map[string]string{GuestIDHeader: "guest-7"}

	resp := env.do(t, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"product_id": "VJ-001", "quantity": 1}, guest)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var cart struct {
		Items []domain.LineItem `json:"items"`
		Count int32             `json:"count"`
		Total int64             `json:"total"`
	}
	decode(t, resp, &cart)
	assert.Equal(t, int32(1), cart.Count)
	assert.Equal(t, int64(4599900), cart.Total)

	t.Run("No Identity At All Is Rejected", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/api/v1/cart", nil, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Rental Without Days Is Rejected", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/api/v1/cart/items",
			map[string]any{"product_id": "VJ-001", "purchase_type": "rent", "rental_days": 0}, guest)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRegisterLoginAndCheckoutOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	guest := map[string]string{GuestIDHeader: "guest-9"}

	// Guest fills a cart.
	resp := env.do(t, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"product_id": "VJ-003", "quantity": 2}, guest)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Registration with the guest header absorbs the cart.
	resp = env.do(t, http.MethodPost, "/api/v1/auth/register",
		map[string]string{"name": "Priya", "email": "bride@example.com", "password": "secret123"}, guest)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var auth struct {
		User        *domain.User `json:"user"`
		AccessToken string       `json:"access_token"`
	}
	decode(t, resp, &auth)
	require.NotEmpty(t, auth.AccessToken)
	bearer := map[string]string{"Authorization": "Bearer " + auth.AccessToken}

	resp = env.do(t, http.MethodGet, "/api/v1/cart", nil, bearer)
	var cart struct {
		Count int32 `json:"count"`
	}
	decode(t, resp, &cart)
	assert.Equal(t, int32(2), cart.Count)

	// Duplicate registration conflicts.
	resp = env.do(t, http.MethodPost, "/api/v1/auth/register",
		map[string]string{"name": "Other", "email": "bride@example.com", "password": "whatever"}, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Checkout.
	resp = env.do(t, http.MethodPost, "/api/v1/orders",
		map[string]string{"shipping_address": "12 MG Road, Bengaluru"}, bearer)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var order domain.Order
	decode(t, resp, &order)
	assert.Equal(t, domain.OrderStatusPlaced, order.Status)
	assert.Equal(t, int64(2*849900), order.Total)

	// Placing again on the emptied cart fails cleanly.
	resp = env.do(t, http.MethodPost, "/api/v1/orders",
		map[string]string{"shipping_address": "12 MG Road, Bengaluru"}, bearer)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// The order shows up in the user's list.
	resp = env.do(t, http.MethodGet, "/api/v1/orders", nil, bearer)
	var orders []domain.Order
	decode(t, resp, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestOrderOwnershipOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	// First user places an order.
	resp := env.do(t, http.MethodPost, "/api/v1/auth/register",
		map[string]string{"name": "Priya", "email": "bride@example.com", "password": "secret123"}, nil)
	var owner struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, resp, &owner)
	ownerBearer := map[string]string{"Authorization": "Bearer " + owner.AccessToken}

	resp = env.do(t, http.MethodPost, "/api/v1/cart/items",
		map[string]any{"product_id": "VJ-003", "quantity": 1}, ownerBearer)
	resp.Body.Close()
	resp = env.do(t, http.MethodPost, "/api/v1/orders",
		map[string]string{"shipping_address": "addr"}, ownerBearer)
	var order domain.Order
	decode(t, resp, &order)

	// Second user cannot read or cancel it.
	resp = env.do(t, http.MethodPost, "/api/v1/auth/register",
		map[string]string{"name": "Eve", "email": "eve@example.com", "password": "secret123"}, nil)
	var intruder struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, resp, &intruder)
	intruderBearer := map[string]string{"Authorization": "Bearer " + intruder.AccessToken}

	resp = env.do(t, http.MethodGet, "/api/v1/orders/"+order.ID, nil, intruderBearer)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/v1/orders/"+order.ID+"/cancel",
		map[string]string{"reason": "not mine"}, intruderBearer)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminRoutesOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.seedAdmin(t)
	adminBearer := map[string]string{"Authorization": "Bearer " + adminToken}

	resp := env.do(t, http.MethodPost, "/api/v1/auth/register",
		map[string]string{"name": "Priya", "email": "bride@example.com", "password": "secret123"}, nil)
	var user struct {
		User        *domain.User `json:"user"`
		AccessToken string       `json:"access_token"`
	}
	decode(t, resp, &user)

	t.Run("Plain Users Are Shut Out", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/api/v1/admin/users", nil,
			map[string]string{"Authorization": "Bearer " + user.AccessToken})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Block Then Login Fails Distinctly", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/api/v1/admin/users/"+user.User.ID+"/block",
			map[string]string{"reason": "chargeback abuse"}, adminBearer)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = env.do(t, http.MethodPost, "/api/v1/auth/login",
			map[string]string{"email": "bride@example.com", "password": "secret123"}, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		// A blocked account's token stops working at the cart door too.
		blocked := env.do(t, http.MethodGet, "/api/v1/cart", nil,
			map[string]string{"Authorization": "Bearer " + user.AccessToken})
		defer blocked.Body.Close()
		assert.Equal(t, http.StatusForbidden, blocked.StatusCode)
	})

	t.Run("Unblock Restores Login", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/api/v1/admin/users/"+user.User.ID+"/unblock", nil, adminBearer)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = env.do(t, http.MethodPost, "/api/v1/auth/login",
			map[string]string{"email": "bride@example.com", "password": "secret123"}, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestAccountLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/v1/auth/register",
		map[string]string{"name": "Priya", "email": "bride@example.com", "password": "secret123"}, nil)
	var auth struct {
		User        *domain.User `json:"user"`
		AccessToken string       `json:"access_token"`
	}
	decode(t, resp, &auth)
	bearer := map[string]string{"Authorization": "Bearer " + auth.AccessToken}

	// Self-deletion reports that the session ended.
	resp = env.do(t, http.MethodDelete, "/api/v1/me", nil, bearer)
	var deleted struct {
		SessionEnded bool `json:"session_ended"`
	}
	decode(t, resp, &deleted)
	assert.True(t, deleted.SessionEnded)

	// The deleted account can no longer log in.
	resp = env.do(t, http.MethodPost, "/api/v1/auth/login",
		map[string]string{"email": "bride@example.com", "password": "secret123"}, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Recovery inside the window brings it back.
	resp = env.do(t, http.MethodPost, "/api/v1/accounts/recover",
		map[string]string{"user_id": auth.User.ID}, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/v1/auth/login",
		map[string]string{"email": "bride@example.com", "password": "secret123"}, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
