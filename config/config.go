package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"eventboard/internal/domain"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Revalidation drivers accepted by REVALIDATE_DRIVER.
const (
	DriverLog     = "log"
	DriverWebhook = "webhook"
	DriverRedis   = "redis"
	DriverAMQP    = "amqp"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string `env:"GO_ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// DatabaseURL is checked lazily: an empty value fails the first connect
	// with a configuration error rather than failing startup.
	DatabaseURL      string        `env:"DATABASE_URL"`
	DBConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"10s"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	JWTSecret          string   `env:"JWT_SECRET"`
	JWTIssuer          string   `env:"JWT_ISSUER"`
	UserWebhookSecret  string   `env:"USER_WEBHOOK_SECRET"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	Revalidate RevalidateConfig `envPrefix:"REVALIDATE_"`
}

// RevalidateConfig selects and configures the page revalidation sink.
type RevalidateConfig struct {
	Driver  string        `env:"DRIVER" envDefault:"log"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`

	WebhookURL    string `env:"WEBHOOK_URL"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisChannel  string `env:"REDIS_CHANNEL" envDefault:"pages:invalidated"`

	AMQPURL      string `env:"AMQP_URL"`
	AMQPExchange string `env:"AMQP_EXCHANGE" envDefault:"pages"`
}

// IsProduction reports whether GO_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load loads configuration from environment variables.
// Outside production it first loads a .env file if one exists; variables
// already set in the environment win.
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		// A missing .env is normal: deployments rely on the real environment.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			slog.Warn(".env file could not be loaded", "err", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, domain.ConfigurationError("env", fmt.Sprintf("parse env: %v", err))
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return domain.ConfigurationError("JWT_SECRET", "JWT_SECRET is missing")
	}
	switch c.Revalidate.Driver {
	case DriverLog:
	case DriverWebhook:
		if c.Revalidate.WebhookURL == "" {
			return domain.ConfigurationError("REVALIDATE_WEBHOOK_URL", "REVALIDATE_WEBHOOK_URL is required for the webhook driver")
		}
	case DriverRedis:
		if c.Revalidate.RedisAddr == "" {
			return domain.ConfigurationError("REVALIDATE_REDIS_ADDR", "REVALIDATE_REDIS_ADDR is required for the redis driver")
		}
	case DriverAMQP:
		if c.Revalidate.AMQPURL == "" {
			return domain.ConfigurationError("REVALIDATE_AMQP_URL", "REVALIDATE_AMQP_URL is required for the amqp driver")
		}
	default:
		return domain.ConfigurationError("REVALIDATE_DRIVER", fmt.Sprintf("unknown revalidation driver %q", c.Revalidate.Driver))
	}
	return nil
}
