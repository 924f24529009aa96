package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"schedlink/config"
	"schedlink/internal/adapters/auth"
	"schedlink/internal/adapters/email"
	"schedlink/internal/adapters/oauth"
	deliveryhttp "schedlink/internal/delivery/http"
	"schedlink/internal/delivery/http/controllers"
	"schedlink/internal/delivery/http/middleware"
	"schedlink/internal/repository/postgres"
	"schedlink/internal/services"
)

// @title Schedlink API
// @version 1.0
// @description Scheduling backend: host event types, booking questions, contact registration and integrations.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()
	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("opening database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("pinging database", "err", err)
		os.Exit(1)
	}
	logger.Info("database connected")

	// Repositories
	eventTypeRepo := postgres.NewEventTypeRepository(db)
	contactRepo := postgres.NewContactRepository(db)
	questionRepo := postgres.NewEventQuestionRepository(db)
	userRepo := postgres.NewUserRepository(db)
	integrationRepo := postgres.NewIntegrationRepository(db)

	// Adapters
	hasher := auth.NewBcryptHasher(0)
	issuer, verifier := auth.NewJWTCodec(cfg.JWTSecret)
	mailer := email.NewMailer(cfg.Email)
	renderer := email.NewTemplateRenderer()
	exchanger := oauth.NewHTTPExchanger(oauth.EndpointsFromEnv(cfg.BaseURL), nil)

	// Services
	const serviceTimeout = 5 * time.Second
	emailSvc := services.NewEmailService(mailer, renderer)
	eventTypeSvc := services.NewEventTypeService(eventTypeRepo, serviceTimeout)
	contactSvc := services.NewContactService(contactRepo, emailSvc, logger, serviceTimeout)
	questionSvc := services.NewEventQuestionService(questionRepo, eventTypeRepo, logger, serviceTimeout)
	authSvc := services.NewAuthService(userRepo, hasher, issuer, emailSvc, logger, cfg.JWTExpiry)
	integrationSvc := services.NewIntegrationService(integrationRepo, exchanger, serviceTimeout)

	// Controllers
	authCtrl := controllers.NewAuthController(logger, authSvc)
	eventTypeCtrl := controllers.NewEventTypeController(logger, eventTypeSvc)
	contactCtrl := controllers.NewContactController(logger, contactSvc)
	questionCtrl := controllers.NewQuestionController(logger, questionSvc)
	integrationCtrl := controllers.NewIntegrationController(logger, integrationSvc)

	mux := deliveryhttp.NewRouter(logger, verifier, authCtrl, eventTypeCtrl, contactCtrl, questionCtrl, integrationCtrl)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
