package jobs

import (
	"vivaha-backend/internal/config"
	"vivaha-backend/internal/logger"
	"vivaha-backend/internal/repository"
	"vivaha-backend/internal/service"
)

// JobRunner coordinates all scheduled maintenance jobs
type JobRunner struct {
	userRepo repository.UserRepository
	noteSvc  service.NotificationService
	emailSvc service.EmailService
	config   *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(userRepo repository.UserRepository, noteSvc service.NotificationService, emailSvc service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		userRepo: userRepo,
		noteSvc:  noteSvc,
		emailSvc: emailSvc,
		config:   cfg,
	}
}

// Config returns the application configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllJobs runs every job once (for manual execution via cmd/cronjob)
func (jr *JobRunner) RunAllJobs() {
	jr.PurgeExpiredDeletedAccounts()
	jr.SendUnreadDigests()
}
