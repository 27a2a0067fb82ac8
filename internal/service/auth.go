package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"vivaha-backend/internal/domain"
	"vivaha-backend/internal/logger"
	"vivaha-backend/internal/repository"
	"vivaha-backend/internal/security"
)

type authService struct {
	userRepo repository.UserRepository
	cartSvc  CartService
	noteSvc  NotificationService
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, cartSvc CartService, noteSvc NotificationService, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		cartSvc:  cartSvc,
		noteSvc:  noteSvc,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, guestID, name, email, password string) (*domain.User, string, string, error) {
	// Only non-deleted identities block an email; a soft-deleted account does
	// not reserve its address.
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", "", ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, "", "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		IsActive:     true,
		CreatedOn:    now,
		LastLogin:    &now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", "", err
	}

	if err := s.absorbGuestCart(ctx, guestID, user.Email); err != nil {
		return nil, "", "", err
	}

	_, _ = s.noteSvc.Notify(ctx, user.ID, "Welcome to Vivaha! Your account is ready.", domain.NotificationTypeAccount, "")

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		return nil, "", "", err
	}

	logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return user, access, refresh, nil
}

func (s *authService) Login(ctx context.Context, guestID, email, password string) (*domain.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, "", "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	// A blocked account with correct credentials gets its own failure so the
	// caller can render a distinct message.
	if !user.IsActive {
		return nil, "", "", ErrAccountDeactivated
	}

	if err := s.absorbGuestCart(ctx, guestID, user.Email); err != nil {
		return nil, "", "", err
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		return nil, "", "", err
	}

	logger.Info("user logged in", "user_id", user.ID)
	return user, access, refresh, nil
}

// absorbGuestCart runs the one-time merge at the authentication boundary.
func (s *authService) absorbGuestCart(ctx context.Context, guestID, email string) error {
	if guestID == "" {
		return nil
	}
	_, err := s.cartSvc.MergeGuestCart(ctx, guestID, email)
	return err
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return "", "", ErrInvalidToken
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrInvalidToken
	}
	if !user.CanLogin() {
		return "", "", ErrAccountDeactivated
	}

	access, newRefresh, err := s.issueTokens(user)
	if err != nil {
		return "", "", err
	}
	return access, newRefresh, nil
}

func (s *authService) Logout(ctx context.Context, refresh string) error {
	// Tokens are stateless; logout is the client discarding them. A token
	// blacklist would slot in here if one were ever needed.
	return nil
}

func (s *authService) issueTokens(user *domain.User) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
