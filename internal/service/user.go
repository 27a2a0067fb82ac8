package service

import (
	"context"
	"time"

	"vivaha-backend/internal/domain"
	"vivaha-backend/internal/logger"
	"vivaha-backend/internal/repository"
)

type userService struct {
	userRepo       repository.UserRepository
	noteSvc        NotificationService
	recoveryWindow time.Duration
}

func NewUserService(userRepo repository.UserRepository, noteSvc NotificationService, recoveryWindow time.Duration) UserService {
	return &userService{
		userRepo:       userRepo,
		noteSvc:        noteSvc,
		recoveryWindow: recoveryWindow,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID, name string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Name = name
	return s.userRepo.Update(ctx, user)
}

func (s *userService) SoftDelete(ctx context.Context, actorID, targetID string) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return false, err
	}

	now := time.Now()
	user.IsDeleted = true
	user.DeletedOn = &now
	// IsActive is left untouched on purpose: deletion and blocking are
	// orthogonal flags.

	if err := s.userRepo.Update(ctx, user); err != nil {
		return false, err
	}

	_, _ = s.noteSvc.Notify(ctx, user.ID,
		"Your account has been deleted. You can recover it within the recovery window.",
		domain.NotificationTypeAccount, "")

	logger.Info("user soft-deleted", "user_id", targetID, "actor_id", actorID)
	return actorID == targetID, nil
}

func (s *userService) Recover(ctx context.Context, userID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.IsDeleted {
		return ErrAccountNotDeleted
	}
	if time.Now().After(user.RecoveryDeadline(s.recoveryWindow)) {
		return ErrRecoveryWindowExpired
	}

	user.IsDeleted = false
	user.DeletedOn = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	_, _ = s.noteSvc.Notify(ctx, user.ID, "Welcome back! Your account has been recovered.",
		domain.NotificationTypeAccount, "")

	logger.Info("user recovered", "user_id", userID)
	return nil
}
