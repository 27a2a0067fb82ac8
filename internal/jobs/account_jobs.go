package jobs

import (
	"context"
	"time"

	"vivaha-backend/internal/logger"
)

// PurgeExpiredDeletedAccounts hard-deletes identities whose recovery window
// has lapsed. Until the window passes, a soft-deleted account stays
// recoverable; after this job runs it is gone for good.
func (jr *JobRunner) PurgeExpiredDeletedAccounts() {
	jr.runWithRecovery("PurgeExpiredDeletedAccounts", func() {
		ctx := context.Background()
		window := jr.config.RecoveryWindow()

		users, err := jr.userRepo.List(ctx)
		if err != nil {
			logger.Error("Failed to list users for purge", "error", err)
			return
		}

		now := time.Now()
		var purged int
		for _, u := range users {
			if !u.IsDeleted || u.DeletedOn == nil {
				continue
			}
			if now.Before(u.RecoveryDeadline(window)) {
				continue
			}
			if err := jr.userRepo.HardDelete(ctx, u.ID); err != nil {
				logger.Error("Failed to purge account", "user_id", u.ID, "error", err)
				continue
			}
			purged++
			logger.Info("Purged expired deleted account", "user_id", u.ID, "deleted_on", u.DeletedOn)
		}

		logger.Info("Account purge finished", "purged", purged)
	})
}
