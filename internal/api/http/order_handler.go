package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vivaha-backend/internal/domain"
	"vivaha-backend/internal/repository"
	"vivaha-backend/internal/service"
)

type OrderHandler struct {
	orderSvc service.OrderService
	auth     *AuthMiddleware
}

func NewOrderHandler(orderSvc service.OrderService, auth *AuthMiddleware) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc, auth: auth}
}

type placeOrderRequest struct {
	ShippingAddress string `json:"shipping_address"`
	PickupPoint     string `json:"pickup_point"`
}

func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req placeOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	order, err := h.orderSvc.PlaceOrder(r.Context(), user, req.ShippingAddress, req.PickupPoint)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	order, err := h.orderSvc.GetOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	// Users only see their own orders; staff see everything.
	if order.UserID != user.ID && user.Role == domain.RoleUser {
		writeError(w, repository.ErrOrderNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	orders, err := h.orderSvc.ListOrders(r.Context(), user.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSvc.ListAllOrders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req cancelOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	orderID := mux.Vars(r)["id"]
	order, err := h.orderSvc.GetOrder(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	if order.UserID != user.ID && user.Role == domain.RoleUser {
		writeError(w, repository.ErrOrderNotFound)
		return
	}

	cancelled, err := h.orderSvc.CancelOrder(r.Context(), orderID, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cancelled)
}

type updateStatusRequest struct {
	Status     domain.OrderStatus `json:"status"`
	AdminNotes string             `json:"admin_notes"`
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	order, err := h.orderSvc.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status, req.AdminNotes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

type replacementRequest struct {
	Reason string `json:"reason"`
}

func (h *OrderHandler) RequestReplacement(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req replacementRequest
	if !decodeBody(w, r, &req) {
		return
	}

	orderID := mux.Vars(r)["id"]
	order, err := h.orderSvc.GetOrder(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	if order.UserID != user.ID {
		writeError(w, repository.ErrOrderNotFound)
		return
	}

	updated, err := h.orderSvc.RequestReplacement(r.Context(), orderID, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

type supportRequest struct {
	Issue string `json:"issue"`
}

func (h *OrderHandler) RequestSupport(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req supportRequest
	if !decodeBody(w, r, &req) {
		return
	}

	orderID := mux.Vars(r)["id"]
	order, err := h.orderSvc.GetOrder(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	if order.UserID != user.ID {
		writeError(w, repository.ErrOrderNotFound)
		return
	}

	updated, err := h.orderSvc.RequestPostSaleSupport(r.Context(), orderID, req.Issue)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
