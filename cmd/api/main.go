package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/xavierca1/corporate-ask/internal/config"
	"github.com/xavierca1/corporate-ask/internal/infra/database"
	"github.com/xavierca1/corporate-ask/internal/infra/mail"
	"github.com/xavierca1/corporate-ask/internal/infra/queue"
	"github.com/xavierca1/corporate-ask/internal/infra/session"
	"github.com/xavierca1/corporate-ask/internal/infra/worker"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("❌ invalid configuration")
	}
	setupLogging(cfg)

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.AppEnv,
			Release:          "corporate-ask@" + cfg.Version,
			TracesSampleRate: 0.2,
		}); err != nil {
			log.WithError(err).Warn("⚠️ sentry disabled")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Database
	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("❌ database connection failed")
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.WithError(err).Fatal("❌ migrations failed")
	}

	// 2. Session store: Redis when configured, memory otherwise
	var (
		sessions sessionStore
		sweeper  worker.SessionSweeper
	)
	if cfg.RedisAddr != "" {
		client, err := session.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.WithError(err).Fatal("❌ redis connection failed")
		}
		defer client.Close()
		sessions = session.NewRedisStore(client)
	} else {
		mem := session.NewMemoryStore()
		sessions, sweeper = mem, mem
		log.Warn("⚠️ REDIS_ADDR not set, keeping sessions in memory")
	}

	// 3. RabbitMQ (optional)
	var rabbitMQ *queue.RabbitMQ
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err = queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.WithError(err).Fatal("❌ rabbitmq connection failed")
		}
		defer rabbitMQ.Close()

		if cfg.MailEnabled() {
			sender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, cfg.OpsEmail)
			w := queue.NewWorker(rabbitMQ.Ch, sender)
			go func() {
				if err := w.Start(ctx, queue.QueueName); err != nil {
					log.WithError(err).Error("❌ payment worker stopped")
				}
			}()
		} else {
			log.Warn("⚠️ MAIL_HOST or OPS_EMAIL not set, payment notifications are not consumed")
		}
	} else {
		log.Warn("⚠️ RABBITMQ_URL not set, payment notifications disabled")
	}

	// 4. Handlers
	app := buildApp(cfg, db, sessions, rabbitMQ)

	// 5. Background workers
	go worker.NewCouponExpiryWorker(app.coupons, sweeper, cfg.CouponSweepInterval).Start(ctx)
	go app.limiter.Start(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("🔥 Corporate Ask API running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("❌ server failed")
		}
	}()

	<-ctx.Done()
	log.Info("🛑 shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("❌ graceful shutdown failed")
	}
}

func setupLogging(cfg *config.Config) {
	if cfg.IsProduction() {
		log.SetFormatter(&log.JSONFormatter{})
		log.SetLevel(log.InfoLevel)
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.DebugLevel)
}
