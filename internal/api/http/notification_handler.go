package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vivaha-backend/internal/service"
)

type NotificationHandler struct {
	noteSvc service.NotificationService
	auth    *AuthMiddleware
}

func NewNotificationHandler(noteSvc service.NotificationService, auth *AuthMiddleware) *NotificationHandler {
	return &NotificationHandler{noteSvc: noteSvc, auth: auth}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	notes, err := h.noteSvc.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	unread, err := h.noteSvc.UnreadCount(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"notifications": notes,
		"unread":        unread,
	})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.noteSvc.MarkAsRead(r.Context(), user.ID, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
