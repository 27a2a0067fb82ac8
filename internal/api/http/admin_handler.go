package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vivaha-backend/internal/service"
)

type AdminHandler struct {
	adminSvc service.AdminService
	userSvc  service.UserService
	auth     *AuthMiddleware
}

func NewAdminHandler(adminSvc service.AdminService, userSvc service.UserService, auth *AuthMiddleware) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, userSvc: userSvc, auth: auth}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminSvc.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

type blockRequest struct {
	Reason string `json:"reason"`
}

func (h *AdminHandler) BlockUser(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	var req blockRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sessionEnded, err := h.adminSvc.BlockUser(r.Context(), claims.UserID, mux.Vars(r)["id"], req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"blocked":       true,
		"session_ended": sessionEnded,
	})
}

func (h *AdminHandler) UnblockUser(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	if err := h.adminSvc.UnblockUser(r.Context(), claims.UserID, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"unblocked": true})
}

// DeleteUser soft-deletes an account on a user's behalf.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	sessionEnded, err := h.userSvc.SoftDelete(r.Context(), claims.UserID, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"deleted":       true,
		"session_ended": sessionEnded,
	})
}
