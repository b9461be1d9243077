// @title Tech Fest Registration API
// @version 1.0
// @description Registration backend for the BITS Tech Fest website: attendee and team registrations with sequential registration IDs and email confirmations.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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

	"techfestbackend/config"
	_ "techfestbackend/docs"
	"techfestbackend/internal/adapters/auth"
	"techfestbackend/internal/adapters/email"
	delivery "techfestbackend/internal/delivery/http"
	"techfestbackend/internal/delivery/http/controllers"
	"techfestbackend/internal/delivery/http/middleware"
	"techfestbackend/internal/domain"
	"techfestbackend/internal/metrics"
	"techfestbackend/internal/repository/postgres"
	"techfestbackend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	// Repositories
	registrationRepo := postgres.NewRegistrationRepository(db)
	teamRepo := postgres.NewTeamRegistrationRepository(db)
	sequenceRepo := postgres.NewSequenceRepository(db)

	// Adapters
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureTLS,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	tokenIssuer, tokenVerifier := auth.NewJWTTokens(cfg.Admin.JWTSecret)

	// Services
	m := metrics.New()
	allocator := services.NewAllocator(sequenceRepo, map[string]string{
		domain.ScopeRegistration: cfg.RegistrationIDPrefix,
		domain.ScopeTeam:         cfg.TeamIDPrefix,
	})
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	registrationService := services.NewRegistrationService(registrationRepo, allocator, emailService, m, logger)
	teamService := services.NewTeamService(teamRepo, allocator, emailService, m, logger)
	adminService := services.NewAdminService(
		cfg.Admin.Email, cfg.Admin.PasscodeHash,
		auth.NewBcryptVerifier(), tokenIssuer,
		registrationRepo, sequenceRepo,
	)

	// Controllers and router
	registrationController := controllers.NewRegistrationController(logger, registrationService)
	teamController := controllers.NewTeamController(logger, teamService)
	adminController := controllers.NewAdminController(logger, adminService)
	healthController := controllers.NewHealthController(db)

	mux := delivery.NewRouter(registrationController, teamController, adminController, healthController, tokenVerifier)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
