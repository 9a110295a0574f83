package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Redis configuration (rate limiting + AI response cache).
	// Empty address disables both.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Stripe configuration
	StripeSecretKey         string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret     string `mapstructure:"STRIPE_WEBHOOK_SECRET"`
	StripePriceStarter      string `mapstructure:"STRIPE_PRICE_STARTER"`
	StripePriceProfessional string `mapstructure:"STRIPE_PRICE_PROFESSIONAL"`
	StripePriceEnterprise   string `mapstructure:"STRIPE_PRICE_ENTERPRISE"`
	BillingReturnURL        string `mapstructure:"BILLING_RETURN_URL"`

	// AI provider configuration
	AIProvider      string `mapstructure:"AI_PROVIDER"`
	AnthropicAPIKey string `mapstructure:"ANTHROPIC_API_KEY"`
	GeminiAPIKey    string `mapstructure:"GEMINI_API_KEY"`

	// Rate limiting
	RateLimitRequests  int `mapstructure:"RATE_LIMIT_REQUESTS"`
	RateLimitWindowSec int `mapstructure:"RATE_LIMIT_WINDOW_SEC"`

	// Tenancy defaults
	TrialDays        int `mapstructure:"TRIAL_DAYS"`
	OAuthStateTTLMin int `mapstructure:"OAUTH_STATE_TTL_MIN"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "synthex")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// Redis defaults (empty addr keeps redis-backed features off)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Stripe defaults
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("STRIPE_WEBHOOK_SECRET", "")
	viper.SetDefault("STRIPE_PRICE_STARTER", "")
	viper.SetDefault("STRIPE_PRICE_PROFESSIONAL", "")
	viper.SetDefault("STRIPE_PRICE_ENTERPRISE", "")
	viper.SetDefault("BILLING_RETURN_URL", "http://localhost:3000/settings/billing")

	// AI defaults
	viper.SetDefault("AI_PROVIDER", "anthropic")
	viper.SetDefault("ANTHROPIC_API_KEY", "")
	viper.SetDefault("GEMINI_API_KEY", "")

	// Rate limiting defaults
	viper.SetDefault("RATE_LIMIT_REQUESTS", 120)
	viper.SetDefault("RATE_LIMIT_WINDOW_SEC", 60)

	// Tenancy defaults
	viper.SetDefault("TRIAL_DAYS", 14)
	viper.SetDefault("OAUTH_STATE_TTL_MIN", 10)
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
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if config.StripeWebhookSecret == "" {
			return fmt.Errorf("STRIPE_WEBHOOK_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.AIProvider {
	case "anthropic", "gemini":
	default:
		return fmt.Errorf("unknown AI provider %q", config.AIProvider)
	}

	return nil
}

// OAuthStateTTL returns the OAuth state TTL as a duration
func (c *Config) OAuthStateTTL() time.Duration {
	return time.Duration(c.OAuthStateTTLMin) * time.Minute
}

// RateLimitWindow returns the rate limit window as a duration
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSec) * time.Second
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
