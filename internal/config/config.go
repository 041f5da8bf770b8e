package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-supabase-jwt-secret-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	AppURL      string `mapstructure:"APP_URL"`

	// Database configuration
	DatabaseDriver   string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Supabase issues the session JWTs; we only verify them
	JWTSecret string `mapstructure:"SUPABASE_JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Stripe configuration
	StripeSecretKey     string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`

	// SMTP configuration
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`
	SMTPTLS      bool   `mapstructure:"SMTP_TLS"`

	// n8n marketing automation
	N8NWebhookURL    string `mapstructure:"N8N_WEBHOOK_URL"`
	N8NWebhookSecret string `mapstructure:"N8N_WEBHOOK_SECRET"`
	N8NQueueSize     int    `mapstructure:"N8N_QUEUE_SIZE"`

	// Public submission rate limiting
	RedisURL                 string `mapstructure:"REDIS_URL"`
	PublicRateLimitPerMinute int    `mapstructure:"PUBLIC_RATE_LIMIT_PER_MINUTE"`

	// Analytics
	AnalyticsMinGroupSize int           `mapstructure:"ANALYTICS_MIN_GROUP_SIZE"`
	AnalyticsCacheSize    int           `mapstructure:"ANALYTICS_CACHE_SIZE"`
	AnalyticsCacheTTL     time.Duration `mapstructure:"ANALYTICS_CACHE_TTL"`

	// Tracing
	OTLPEndpoint string  `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure bool    `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
	OTelSample   float64 `mapstructure:"OTEL_SAMPLE_RATE"`

	// Scheduled jobs
	CronCloseExpired    string `mapstructure:"CRON_CLOSE_EXPIRED"`
	CronClosingReminder string `mapstructure:"CRON_CLOSING_REMINDER"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// ALLOWED_ORIGINS arrives as a comma separated string from the environment
	config.AllowedOrigins = splitAndTrim(strings.Join(config.AllowedOrigins, ","))

	if config.DatabaseURL == "" && config.DatabaseDriver == "postgres" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_URL", "http://localhost:3000")

	// Database defaults
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "psicomapa")
	v.SetDefault("DB_SSL_MODE", "disable")

	v.SetDefault("SUPABASE_JWT_SECRET", defaultJWTSecret)
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	v.SetDefault("STRIPE_SECRET_KEY", "")
	v.SetDefault("STRIPE_WEBHOOK_SECRET", "")

	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM", "PsicoMapa <no-reply@psicomapa.com.br>")
	v.SetDefault("SMTP_TLS", false)

	v.SetDefault("N8N_WEBHOOK_URL", "")
	v.SetDefault("N8N_WEBHOOK_SECRET", "")
	v.SetDefault("N8N_QUEUE_SIZE", 256)

	v.SetDefault("REDIS_URL", "")
	v.SetDefault("PUBLIC_RATE_LIMIT_PER_MINUTE", 30)

	v.SetDefault("ANALYTICS_MIN_GROUP_SIZE", 3)
	v.SetDefault("ANALYTICS_CACHE_SIZE", 256)
	v.SetDefault("ANALYTICS_CACHE_TTL", 5*time.Minute)

	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", true)
	v.SetDefault("OTEL_SAMPLE_RATE", 1.0)

	v.SetDefault("CRON_CLOSE_EXPIRED", "*/15 * * * *")
	v.SetDefault("CRON_CLOSING_REMINDER", "0 9 * * *")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	switch config.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", config.DatabaseDriver)
	}

	if config.DatabaseDriver == "sqlite" && config.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required for the sqlite driver")
	}

	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret || config.JWTSecret == "" {
			return fmt.Errorf("SUPABASE_JWT_SECRET must be set in production")
		}
		if config.StripeWebhookSecret == "" {
			return fmt.Errorf("STRIPE_WEBHOOK_SECRET must be set in production")
		}
		if config.DatabaseDriver == "sqlite" {
			return fmt.Errorf("sqlite driver is not allowed in production")
		}
	}

	if config.AnalyticsMinGroupSize < 1 {
		return fmt.Errorf("ANALYTICS_MIN_GROUP_SIZE must be at least 1")
	}

	return nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
