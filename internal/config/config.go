package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Server
	Port           string   `env:"PORT" envDefault:"8080"`
	AppEnv         string   `env:"APP_ENV" envDefault:"development"`
	Version        string   `env:"APP_VERSION" envDefault:"1.0.0"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// Storage
	DatabaseURL   string `env:"DATABASE_URL,required,notEmpty"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Messaging
	RabbitMQURL string `env:"RABBITMQ_URL"`

	// Auth
	JWTSecret              string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL               time.Duration `env:"TOKEN_TTL" envDefault:"12h"`
	BootstrapAdminUsername string        `env:"BOOTSTRAP_ADMIN_USERNAME" envDefault:"admin"`
	BootstrapAdminPassword string        `env:"BOOTSTRAP_ADMIN_PASSWORD"`

	// Mail
	MailHost string `env:"MAIL_HOST"`
	MailPort int    `env:"MAIL_PORT" envDefault:"587"`
	MailUser string `env:"MAIL_USER"`
	MailPass string `env:"MAIL_PASS"`
	MailFrom string `env:"MAIL_FROM" envDefault:"no-reply@corporateask.com"`
	OpsEmail string `env:"OPS_EMAIL"`

	// Observability
	SentryDSN string `env:"SENTRY_DSN"`

	// Booking
	PaymentNumber       string        `env:"PAYMENT_NUMBER" envDefault:"01681742043"`
	CouponSweepInterval time.Duration `env:"COUPON_SWEEP_INTERVAL" envDefault:"1m"`
	BookingRateLimit    int           `env:"BOOKING_RATE_LIMIT" envDefault:"10"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// MailEnabled reports whether payment notifications can be emailed.
func (c *Config) MailEnabled() bool {
	return c.MailHost != "" && c.OpsEmail != ""
}
