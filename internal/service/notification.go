package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vivaha-backend/internal/domain"
	"vivaha-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) Notify(ctx context.Context, userID, message string, typ domain.NotificationType, orderID string) (*domain.Notification, error) {
	note := &domain.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Message:   message,
		Type:      typ,
		OrderID:   orderID,
		CreatedOn: time.Now(),
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *notificationService) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.noteRepo.ListForUser(ctx, userID)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID string) error {
	return s.noteRepo.MarkAsRead(ctx, notificationID, userID)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int32, error) {
	return s.noteRepo.UnreadCount(ctx, userID)
}
