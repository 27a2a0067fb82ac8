package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth          *AuthHandler
	User          *UserHandler
	Cart          *CartHandler
	Order         *OrderHandler
	Notifications *NotificationHandler
	Admin         *AdminHandler
	Middleware    *AuthMiddleware
}

// NewRouter builds the full route table.
func NewRouter(h Handlers) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	mw := h.Middleware

	// Auth
	api.HandleFunc("/auth/register", h.Auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", h.Auth.Logout).Methods(http.MethodPost)

	// Profile and account lifecycle
	api.HandleFunc("/me", mw.RequireAuth(h.User.GetProfile)).Methods(http.MethodGet)
	api.HandleFunc("/me", mw.RequireAuth(h.User.UpdateProfile)).Methods(http.MethodPatch)
	api.HandleFunc("/me", mw.RequireAuth(h.User.DeleteAccount)).Methods(http.MethodDelete)
	api.HandleFunc("/accounts/recover", h.User.RecoverAccount).Methods(http.MethodPost)

	// Cart: shared by guests (X-Guest-ID) and authenticated users
	api.HandleFunc("/cart", mw.OptionalAuth(h.Cart.GetCart)).Methods(http.MethodGet)
	api.HandleFunc("/cart/items", mw.OptionalAuth(h.Cart.AddItem)).Methods(http.MethodPost)
	api.HandleFunc("/cart/items", mw.OptionalAuth(h.Cart.RemoveItem)).Methods(http.MethodDelete)
	api.HandleFunc("/cart/items", mw.OptionalAuth(h.Cart.UpdateQuantity)).Methods(http.MethodPatch)

	// Orders
	api.HandleFunc("/orders", mw.RequireAuth(h.Order.PlaceOrder)).Methods(http.MethodPost)
	api.HandleFunc("/orders", mw.RequireAuth(h.Order.ListOrders)).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", mw.RequireAuth(h.Order.GetOrder)).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/cancel", mw.RequireAuth(h.Order.CancelOrder)).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/replacement", mw.RequireAuth(h.Order.RequestReplacement)).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/support", mw.RequireAuth(h.Order.RequestSupport)).Methods(http.MethodPost)

	// Notifications
	api.HandleFunc("/notifications", mw.RequireAuth(h.Notifications.List)).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", mw.RequireAuth(h.Notifications.MarkAsRead)).Methods(http.MethodPost)

	// Admin
	api.HandleFunc("/admin/orders", mw.RequireAdmin(h.Order.ListAllOrders)).Methods(http.MethodGet)
	api.HandleFunc("/admin/orders/{id}/status", mw.RequireAdmin(h.Order.UpdateStatus)).Methods(http.MethodPost)
	api.HandleFunc("/admin/users", mw.RequireAdmin(h.Admin.ListUsers)).Methods(http.MethodGet)
	api.HandleFunc("/admin/users/{id}/block", mw.RequireAdmin(h.Admin.BlockUser)).Methods(http.MethodPost)
	api.HandleFunc("/admin/users/{id}/unblock", mw.RequireAdmin(h.Admin.UnblockUser)).Methods(http.MethodPost)
	api.HandleFunc("/admin/users/{id}", mw.RequireAdmin(h.Admin.DeleteUser)).Methods(http.MethodDelete)

	return r
}
