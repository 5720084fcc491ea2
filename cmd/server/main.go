package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"conferencehub/config"
	_ "conferencehub/docs"
	authadapter "conferencehub/internal/adapters/auth"
	"conferencehub/internal/adapters/email"
	delivery "conferencehub/internal/delivery/http"
	"conferencehub/internal/delivery/http/controllers"
	"conferencehub/internal/delivery/http/middleware"
	"conferencehub/internal/repository/postgres"
	"conferencehub/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title ConferenceHub API
// @version 1.0
// @description Conference management backend: users, events, speakers, sessions, and registrations.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("close db", "err", err)
		}
	}()
	if err := db.Ping(); err != nil {
		log.Fatalf("ping db: %v", err)
	}

	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)

	jwtService := authadapter.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	hasher := authadapter.NewBcryptHasher(authadapter.DefaultBcryptCost)

	mailer := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretKey,
		},
	}, logger)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	authService := services.NewAuthService(userRepo, hasher, jwtService, serviceTimeout)
	eventService := services.NewEventService(eventRepo, sessionRepo, serviceTimeout)
	speakerService := services.NewSpeakerService(speakerRepo, serviceTimeout)
	sessionService := services.NewSessionService(sessionRepo, serviceTimeout)
	registrationService := services.NewRegistrationService(registrationRepo, eventRepo, userRepo, emailService, logger, serviceTimeout)

	mux := delivery.NewRouter(delivery.Controllers{
		Auth:         controllers.NewAuthController(logger, authService),
		Event:        controllers.NewEventController(logger, eventService),
		Speaker:      controllers.NewSpeakerController(logger, speakerService),
		Session:      controllers.NewSessionController(logger, sessionService),
		Registration: controllers.NewRegistrationController(logger, registrationService),
	}, jwtService)

	handler := middleware.Logging(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
