package http

import (
	"net/http"

	"vivaha-backend/internal/service"
)

type UserHandler struct {
	userSvc service.UserService
	auth    *AuthMiddleware
}

func NewUserHandler(userSvc service.UserService, auth *AuthMiddleware) *UserHandler {
	return &UserHandler{userSvc: userSvc, auth: auth}
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.userSvc.UpdateProfile(r.Context(), user.ID, req.Name); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// DeleteAccount soft-deletes the caller's own account. The response tells
// the client to discard its tokens; recovery stays possible for the
// configured window.
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	sessionEnded, err := h.userSvc.SoftDelete(r.Context(), user.ID, user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"deleted":       true,
		"session_ended": sessionEnded,
	})
}

type recoverRequest struct {
	UserID string `json:"user_id"`
}

// RecoverAccount clears a soft deletion within the recovery window. It is
// unauthenticated on purpose: a deleted account has no live session.
func (h *UserHandler) RecoverAccount(w http.ResponseWriter, r *http.Request) {
	var req recoverRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.userSvc.Recover(r.Context(), req.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"recovered": true})
}
