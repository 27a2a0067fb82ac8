package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"vivaha-backend/internal/config"
	"vivaha-backend/internal/jobs"
	"vivaha-backend/internal/kvutil"
	"vivaha-backend/internal/logger"
	"vivaha-backend/internal/repository/document"
	"vivaha-backend/internal/scheduler"
	"vivaha-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit ('purge-accounts', 'unread-digest', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Vivaha cronjob runner...", "log_level", cfg.Log.Level)

	kv, cleanup, err := kvutil.Open(cfg)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer cleanup()

	store := document.NewStore(kv)

	var emailSvc service.EmailService
	if cfg.SMTP.Enabled {
		emailSvc = service.NewEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	} else {
		emailSvc = service.NewNoopEmailService()
	}
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	jobRunner := jobs.NewJobRunner(store.UserRepository, noteSvc, emailSvc, cfg)

	// One-shot mode for manual runs and containers on external schedules
	if *runOnce != "" {
		switch *runOnce {
		case "purge-accounts":
			jobRunner.PurgeExpiredDeletedAccounts()
		case "unread-digest":
			jobRunner.SendUnreadDigests()
		case "all":
			jobRunner.RunAllJobs()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	// Block until interrupted
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	sched.Stop()
}

