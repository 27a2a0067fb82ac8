package jobs

import (
	"context"

	"vivaha-backend/internal/logger"
)

// SendUnreadDigests emails every active user who has unread notifications
// waiting. Best effort: a failed email never blocks the rest of the run.
func (jr *JobRunner) SendUnreadDigests() {
	jr.runWithRecovery("SendUnreadDigests", func() {
		ctx := context.Background()

		users, err := jr.userRepo.List(ctx)
		if err != nil {
			logger.Error("Failed to list users for digest", "error", err)
			return
		}

		var sent int
		for _, u := range users {
			if !u.CanLogin() {
				continue
			}
			unread, err := jr.noteSvc.UnreadCount(ctx, u.ID)
			if err != nil {
				logger.Error("Failed to count unread notifications", "user_id", u.ID, "error", err)
				continue
			}
			if unread == 0 {
				continue
			}
			if err := jr.emailSvc.SendUnreadDigest(ctx, u.Email, u.Name, unread); err != nil {
				logger.Error("Failed to send digest", "user_id", u.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Unread digest finished", "sent", sent)
	})
}
