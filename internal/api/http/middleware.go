package http

import (
	"context"
	"net/http"
	"strings"

	"vivaha-backend/internal/domain"
	"vivaha-backend/internal/security"
	"vivaha-backend/internal/service"
)

type contextKey string

const claimsKey contextKey = "claims"

// AuthMiddleware validates Bearer tokens and attaches the claims to the
// request context. Handlers needing the full identity resolve it through the
// user service so blocked or deleted accounts are rejected at the door.
type AuthMiddleware struct {
	tokens  security.TokenManager
	userSvc service.UserService
}

func NewAuthMiddleware(tokens security.TokenManager, userSvc service.UserService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, userSvc: userSvc}
}

func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, service.ErrAuthenticationRequired)
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil || claims.Type != security.TokenTypeAccess {
			writeError(w, service.ErrInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// OptionalAuth attaches claims when a valid token is present but lets
// anonymous requests through. Cart routes use it: guests and users share the
// same endpoints.
func (m *AuthMiddleware) OptionalAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err == nil && claims.Type == security.TokenTypeAccess {
				r = r.WithContext(context.WithValue(r.Context(), claimsKey, claims))
			}
		}
		next(w, r)
	}
}

func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil || (claims.Role != domain.RoleAdmin && claims.Role != domain.RoleStaff) {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "admin access required"})
			return
		}
		next(w, r)
	})
}

// ClaimsFromContext returns the token claims attached by RequireAuth, or nil.
func ClaimsFromContext(ctx context.Context) *security.UserClaims {
	claims, _ := ctx.Value(claimsKey).(*security.UserClaims)
	return claims
}

// currentUser resolves the authenticated identity, rejecting blocked or
// deleted accounts.
func (m *AuthMiddleware) currentUser(r *http.Request) (*domain.User, error) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		return nil, service.ErrAuthenticationRequired
	}
	user, err := m.userSvc.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		return nil, service.ErrAuthenticationRequired
	}
	if !user.CanLogin() {
		return nil, service.ErrAccountDeactivated
	}
	return user, nil
}
