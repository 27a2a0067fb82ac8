package http

import (
	"net/http"

	"vivaha-backend/internal/domain"
	"vivaha-backend/internal/service"
)

type CartHandler struct {
	cartSvc service.CartService
	auth    *AuthMiddleware
}

func NewCartHandler(cartSvc service.CartService, auth *AuthMiddleware) *CartHandler {
	return &CartHandler{cartSvc: cartSvc, auth: auth}
}

// cartRef resolves which cart the request addresses: the authenticated
// user's cart when a valid token is present, otherwise the guest cart named
// by the X-Guest-ID header.
func (h *CartHandler) cartRef(r *http.Request) (service.CartRef, error) {
	if claims := ClaimsFromContext(r.Context()); claims != nil {
		user, err := h.auth.currentUser(r)
		if err != nil {
			return service.CartRef{}, err
		}
		return service.ForUser(user.Email), nil
	}
	guestID := r.Header.Get(GuestIDHeader)
	if guestID == "" {
		return service.CartRef{}, service.ErrAuthenticationRequired
	}
	return service.ForGuest(guestID), nil
}

type cartResponse struct {
	Items []domain.LineItem `json:"items"`
	Count int32             `json:"count"`
	Total int64             `json:"total"`
}

func toCartResponse(cart *domain.Cart) cartResponse {
	return cartResponse{
		Items: cart.Items,
		Count: cart.Count(),
		Total: cart.Total(),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ref, err := h.cartRef(r)
	if err != nil {
		writeError(w, err)
		return
	}
	cart, err := h.cartSvc.GetCart(r.Context(), ref)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(cart))
}

type addItemRequest struct {
	ProductID    string              `json:"product_id"`
	Quantity     int32               `json:"quantity"`
	PurchaseType domain.PurchaseType `json:"purchase_type"`
	RentalDays   int32               `json:"rental_days"`
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ref, err := h.cartRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	req := addItemRequest{Quantity: 1, PurchaseType: domain.PurchaseTypeSale, RentalDays: 1}
	if !decodeBody(w, r, &req) {
		return
	}

	cart, err := h.cartSvc.AddItem(r.Context(), ref, req.ProductID, req.Quantity, req.PurchaseType, req.RentalDays)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(cart))
}

type removeItemRequest struct {
	ProductID    string              `json:"product_id"`
	PurchaseType domain.PurchaseType `json:"purchase_type"`
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ref, err := h.cartRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	req := removeItemRequest{PurchaseType: domain.PurchaseTypeSale}
	if !decodeBody(w, r, &req) {
		return
	}

	cart, err := h.cartSvc.RemoveItem(r.Context(), ref, req.ProductID, req.PurchaseType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(cart))
}

type updateQuantityRequest struct {
	ProductID    string              `json:"product_id"`
	PurchaseType domain.PurchaseType `json:"purchase_type"`
	Quantity     int32               `json:"quantity"`
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ref, err := h.cartRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	req := updateQuantityRequest{PurchaseType: domain.PurchaseTypeSale}
	if !decodeBody(w, r, &req) {
		return
	}

	cart, err := h.cartSvc.UpdateQuantity(r.Context(), ref, req.ProductID, req.PurchaseType, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(cart))
}
