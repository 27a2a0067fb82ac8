package document

import (
	"context"
	"errors"
	"fmt"

	"vivaha-backend/internal/domain"
	"vivaha-backend/internal/repository"
	"vivaha-backend/internal/repository/kvstore"
)

// notificationRepository keeps the whole sink in one globally shared document
// and filters per user at read time.
type notificationRepository struct {
	kv kvstore.Store
}

func NewNotificationRepository(kv kvstore.Store) repository.NotificationRepository {
	return &notificationRepository{kv: kv}
}

func (r *notificationRepository) load(ctx context.Context) ([]domain.Notification, error) {
	var notes []domain.Notification
	err := kvstore.GetJSON(ctx, r.kv, keyNotifications, &notes)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	return notes, nil
}

func (r *notificationRepository) save(ctx context.Context, notes []domain.Notification) error {
	if err := kvstore.SetJSON(ctx, r.kv, keyNotifications, notes); err != nil {
		return fmt.Errorf("save notifications: %w", err)
	}
	return nil
}

func (r *notificationRepository) Create(ctx context.Context, note *domain.Notification) error {
	notes, err := r.load(ctx)
	if err != nil {
		return err
	}
	notes = append(notes, *note)
	return r.save(ctx, notes)
}

func (r *notificationRepository) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	notes, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Notification
	// Newest first.
	for i := len(notes) - 1; i >= 0; i-- {
		if notes[i].TargetedAt(userID) {
			out = append(out, notes[i])
		}
	}
	return out, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, userID string) error {
	notes, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range notes {
		if notes[i].ID == id && notes[i].TargetedAt(userID) {
			notes[i].IsRead = true
			return r.save(ctx, notes)
		}
	}
	return repository.ErrNotificationNotFound
}

func (r *notificationRepository) UnreadCount(ctx context.Context, userID string) (int32, error) {
	notes, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	var count int32
	for i := range notes {
		if notes[i].TargetedAt(userID) && !notes[i].IsRead {
			count++
		}
	}
	return count, nil
}
