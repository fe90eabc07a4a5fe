package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/coolbreeze/storefront/docs"
	"github.com/coolbreeze/storefront/internal/api"
	"github.com/coolbreeze/storefront/internal/api/handlers"
	"github.com/coolbreeze/storefront/internal/api/middleware"
	"github.com/coolbreeze/storefront/internal/cache"
	"github.com/coolbreeze/storefront/internal/config"
	"github.com/coolbreeze/storefront/internal/events"
	"github.com/coolbreeze/storefront/internal/health"
	"github.com/coolbreeze/storefront/internal/jobs"
	repository "github.com/coolbreeze/storefront/internal/repositories"
	service "github.com/coolbreeze/storefront/internal/services"
	"github.com/coolbreeze/storefront/internal/telemetry"
	"github.com/coolbreeze/storefront/pkg/mailer"
	"github.com/coolbreeze/storefront/pkg/storage"
	"github.com/coolbreeze/storefront/pkg/stripe"
)

//	@title						CoolBreeze Storefront API
//	@version					1.0
//	@description				Air cooler storefront: catalogue, checkout, warranties, complaints and the admin back-office.
//	@contact.email				support@coolbreeze.in
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
func main() {
	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	shutdownTracing, err := telemetry.Setup(context.Background(), &cfg.Otel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(&cfg.RedisConnect)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer redisClient.Close()

	loc, err := time.LoadLocation(cfg.Jobs.Timezone)
	if err != nil {
		slog.Warn("⚠️ Unknown timezone, falling back to UTC", slog.String("timezone", cfg.Jobs.Timezone))

		loc = time.UTC
	}

	sender, err := mailer.New(&cfg.Mail)
	if err != nil {
		slog.Error("❌ Error configuring the mail provider", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var images storage.ImageStore

	if s3Store, err := storage.NewS3Store(&cfg.Storage); err != nil {
		slog.Warn("⚠️ Product image uploads disabled", slog.String("reason", err.Error()))
	} else {
		images = s3Store
	}

	jwtKey := []byte(cfg.Security.JWTKey)
	stripeClient := stripe.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)
	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	bus := events.NewRedisBus(redisClient)
	emailSettings := service.EmailSettings{
		SiteURL:      cfg.Site.PublicURL,
		SupportEmail: cfg.Invoice.SupportEmail,
		AdminCopy:    cfg.Mail.AdminCopy,
	}

	notificationService := service.NewNotificationService(repos.Notification, sender, cfg.Mail.RatePerSecond)
	userService := service.NewUserService(repos.User, repository.NewRateLimitRepo(redisClient, &cfg.RateConfig), &cfg.Security)
	productService := service.NewProductService(repos.Product, redisCache, images, cfg.Storage.MaxImageBytes)
	cartService := service.NewCartService(repos.Cart, repos.Product)
	orderService := service.NewOrderService(repos.Order, repos.Cart, bus, notificationService, &cfg.Invoice, emailSettings)
	paymentService := service.NewPaymentService(repos.Payment, repos.Order, stripeClient, bus, cfg.Stripe.Currency)
	warrantyService := service.NewWarrantyService(repos.Warranty, repos.Order, repos.Product, notificationService, redisCache, emailSettings)
	complaintService := service.NewComplaintService(repos.Complaint, repos.Order, repos.Warranty, repos.User, notificationService, emailSettings)
	dashboardService := service.NewDashboardService(repos.Stats, redisCache, loc)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	eventHandler := handlers.NewEventHandler(bus)

	router := api.NewRouter(api.Handlers{
		User:         handlers.NewUserHandler(userService),
		Product:      handlers.NewProductHandler(productService, cfg.Storage.MaxImageBytes),
		Cart:         handlers.NewCartHandler(cartService),
		Order:        handlers.NewOrderHandler(orderService),
		Payment:      handlers.NewPaymentHandler(paymentService),
		Warranty:     handlers.NewWarrantyHandler(warrantyService),
		Complaint:    handlers.NewComplaintHandler(complaintService),
		Notification: handlers.NewNotificationHandler(notificationService),
		Dashboard:    handlers.NewDashboardHandler(dashboardService),
		Events:       eventHandler,
	}, api.Options{
		Auth:      middleware.NewAuthMiddleware(jwtKey),
		AdminHost: cfg.Site.AdminHost,
		Health:    healthHandler.Handler(),
		Swagger:   cfg.Env != "production",
		Tracing:   cfg.Otel.Enabled,
	})

	var scheduler *jobs.Scheduler

	if cfg.Jobs.Enabled {
		runner := jobs.NewRunner(&cfg.Jobs, warrantyService, notificationService)

		scheduler, err = jobs.NewScheduler(&cfg.Jobs, runner)
		if err != nil {
			slog.Error("❌ Error scheduling jobs", slog.String("error", err.Error()))
			os.Exit(1)
		}

		scheduler.Start()
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", health.Version))

	// Setup http server
	server := http.Server{
		Addr:              cfg.HTTPServer.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.HTTPServer.ReadTimeout,
	}

	server.RegisterOnShutdown(eventHandler.Shutdown)

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.HTTPServer.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if scheduler != nil {
		scheduler.Stop(shutdownCtx)
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}
