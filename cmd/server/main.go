package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	api "vivaha-backend/internal/api/http"
	"vivaha-backend/internal/config"
	"vivaha-backend/internal/domain"
	"vivaha-backend/internal/jobs"
	"vivaha-backend/internal/kvutil"
	"vivaha-backend/internal/logger"
	"vivaha-backend/internal/payment"
	"vivaha-backend/internal/repository"
	"vivaha-backend/internal/repository/document"
	"vivaha-backend/internal/scheduler"
	"vivaha-backend/internal/security"
	"vivaha-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Vivaha backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "storage", cfg.Storage.Type)

	// Initialize the document store
	kv, cleanup, err := kvutil.Open(cfg)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer cleanup()

	store := document.NewStore(kv)

	// Seed the catalog on an empty store so a fresh deployment has products
	// to browse.
	if _, err := store.ProductCatalog.GetProduct(context.Background(), "VJ-001"); errors.Is(err, repository.ErrProductNotFound) {
		if err := document.SeedProducts(context.Background(), kv, sampleCatalog()); err != nil {
			logger.Warn("Failed to seed product catalog", "error", err)
		}
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.SMTP.Enabled {
		logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)
		emailSvc = service.NewEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	} else {
		logger.Info("SMTP disabled, emails will be dropped")
		emailSvc = service.NewNoopEmailService()
	}

	// Initialize Services
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	cartSvc := service.NewCartService(store.CartRepository, store.ProductCatalog)
	userSvc := service.NewUserService(store.UserRepository, noteSvc, cfg.RecoveryWindow())
	authSvc := service.NewAuthService(store.UserRepository, cartSvc, noteSvc, tokenManager)
	adminSvc := service.NewAdminService(store.UserRepository, noteSvc, emailSvc)
	orderSvc := service.NewOrderService(
		store.OrderRepository,
		store.CartRepository,
		store.ProductCatalog,
		payment.NewStaticProcessor("accepted"),
		noteSvc,
		emailSvc,
	)

	// Initialize HTTP layer
	authMw := api.NewAuthMiddleware(tokenManager, userSvc)
	router := api.NewRouter(api.Handlers{
		Auth:          api.NewAuthHandler(authSvc),
		User:          api.NewUserHandler(userSvc, authMw),
		Cart:          api.NewCartHandler(cartSvc, authMw),
		Order:         api.NewOrderHandler(orderSvc, authMw),
		Notifications: api.NewNotificationHandler(noteSvc, authMw),
		Admin:         api.NewAdminHandler(adminSvc, userSvc, authMw),
		Middleware:    authMw,
	})

	// Start maintenance scheduler in-process
	jobRunner := jobs.NewJobRunner(store.UserRepository, noteSvc, emailSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	logger.Info("Listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Server stopped", "error", err)
		log.Fatalf("Server stopped: %v", err)
	}
}


func sampleCatalog() []domain.Product {
	return []domain.Product{
		{ID: "VJ-001", Name: "Kundan Bridal Necklace Set", Price: 4599900, Stock: 5, RentalPricePerDay: 250000},
		{ID: "VJ-002", Name: "Polki Choker", Price: 2899900, Stock: 8, RentalPricePerDay: 180000},
		{ID: "VJ-003", Name: "Temple Jhumka Earrings", Price: 849900, Stock: 20},
		{ID: "VJ-004", Name: "Meenakari Maang Tikka", Price: 459900, Stock: 15},
		{ID: "VJ-005", Name: "Bridal Kada Pair", Price: 1299900, Stock: 10, RentalPricePerDay: 90000},
	}
}
