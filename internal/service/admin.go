package service

import (
	"context"

	"vivaha-backend/internal/domain"
	"vivaha-backend/internal/logger"
	"vivaha-backend/internal/repository"
)

type adminService struct {
	userRepo repository.UserRepository
	noteSvc  NotificationService
	emailSvc EmailService
}

func NewAdminService(userRepo repository.UserRepository, noteSvc NotificationService, emailSvc EmailService) AdminService {
	return &adminService{
		userRepo: userRepo,
		noteSvc:  noteSvc,
		emailSvc: emailSvc,
	}
}

func (s *adminService) BlockUser(ctx context.Context, actorID, targetID, reason string) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return false, err
	}

	user.IsActive = false
	if err := s.userRepo.Update(ctx, user); err != nil {
		return false, err
	}

	_, _ = s.noteSvc.Notify(ctx, user.ID, "Your account has been blocked.", domain.NotificationTypeAccount, "")
	_ = s.emailSvc.SendAccountStatusNotification(ctx, user.Email, user.Name, "blocked", reason)

	logger.Info("user blocked", "user_id", targetID, "actor_id", actorID, "reason", reason)
	return actorID == targetID, nil
}

func (s *adminService) UnblockUser(ctx context.Context, actorID, targetID string) error {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	user.IsActive = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	_, _ = s.noteSvc.Notify(ctx, user.ID, "Your account has been unblocked.", domain.NotificationTypeAccount, "")
	_ = s.emailSvc.SendAccountStatusNotification(ctx, user.Email, user.Name, "active", "")

	logger.Info("user unblocked", "user_id", targetID, "actor_id", actorID)
	return nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}
