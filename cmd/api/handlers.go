package main

import (
	"database/sql"
	"time"

	"github.com/xavierca1/corporate-ask/internal/config"
	"github.com/xavierca1/corporate-ask/internal/infra/auth"
	"github.com/xavierca1/corporate-ask/internal/infra/database"
	"github.com/xavierca1/corporate-ask/internal/infra/http/handlers"
	"github.com/xavierca1/corporate-ask/internal/infra/http/middleware"
	"github.com/xavierca1/corporate-ask/internal/infra/queue"
	"github.com/xavierca1/corporate-ask/internal/usecase"
)

// sessionStore is satisfied by both the Redis and the in-memory store.
type sessionStore interface {
	usecase.WizardStore
	usecase.TokenRevoker
	middleware.RevocationChecker
	handlers.SessionPinger
}

type application struct {
	router  *handlers.Router
	coupons *database.CouponRepository
	limiter *handlers.RateLimiter
}

// buildApp wires repositories, use cases and handlers. rabbitMQ may be nil.
func buildApp(cfg *config.Config, db *sql.DB, sessions sessionStore, rabbitMQ *queue.RabbitMQ) *application {
	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	customerRepo := database.NewPaidCustomerRepository(db)
	userRepo := database.NewUserRepository(db)
	couponRepo := database.NewCouponRepository(db)

	// 2. Adapters
	var (
		producer usecase.QueueProducerInterface
		broker   handlers.BrokerStatus
	)
	if rabbitMQ != nil {
		producer = queue.NewProducer(rabbitMQ.Ch)
		broker = rabbitMQ
	}
	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	// 3. Use cases
	bookingUC := usecase.NewBookingUseCase(sessions, leadRepo, customerRepo, couponRepo, producer, cfg.PaymentNumber)
	authUC := usecase.NewAuthUseCase(userRepo, auth.NewBcryptHasher(), tokens, sessions, usecase.BootstrapAdmin{
		Username: cfg.BootstrapAdminUsername,
		Password: cfg.BootstrapAdminPassword,
	})
	adminUC := usecase.NewAdminUseCase(leadRepo, customerRepo, userRepo, couponRepo, database.NewRowDeleter(db))

	// 4. Handlers
	limiter := handlers.NewRateLimiter(cfg.BookingRateLimit, time.Minute)
	return &application{
		router: &handlers.Router{
			Landing:        handlers.NewLandingHandler(cfg.PaymentNumber),
			Health:         handlers.NewHealthHandler(db, sessions, broker, cfg.Version),
			Booking:        handlers.NewBookingHandler(bookingUC),
			Auth:           handlers.NewAuthHandler(authUC),
			Admin:          handlers.NewAdminHandler(adminUC, authUC),
			Authenticator:  middleware.NewAuthenticator(tokens, sessions),
			Limiter:        limiter,
			AllowedOrigins: cfg.AllowedOrigins,
		},
		coupons: couponRepo,
		limiter: limiter,
	}
}
