package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret      string         `yaml:"jwt_secret" json:"jwt_secret"`
	RedirectURL    string         `yaml:"redirect_url" json:"redirect_url"`
	AccessTokenTTL time.Duration  `yaml:"access_token_ttl" json:"access_token_ttl"`
	StateTTL       time.Duration  `yaml:"state_ttl" json:"state_ttl"`
	Google         ProviderConfig `yaml:"google" json:"google"`
}

// ProviderConfig holds the OAuth client credentials for a provider
type ProviderConfig struct {
	ClientID     string `yaml:"client_id" json:"client_id"`
	ClientSecret string `yaml:"client_secret" json:"client_secret"`
}

// LoadAuthConfig loads and validates authentication configuration.
// Values come from auth.yaml where present and are overridden by
// environment variables for secrets.
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath != "" {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
		// No config file: defaults plus environment variables apply.
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	// Environment overrides for secrets
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}
	if redirectURL := os.Getenv("AUTH_REDIRECT_URL"); redirectURL != "" {
		config.RedirectURL = redirectURL
	}
	if clientID := os.Getenv("GOOGLE_CLIENT_ID"); clientID != "" {
		config.Google.ClientID = clientID
	}
	if clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET"); clientSecret != "" {
		config.Google.ClientSecret = clientSecret
	}

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("jwt_secret", "your-secret-key-change-in-production")
	v.SetDefault("redirect_url", "http://localhost:7010")
	v.SetDefault("access_token_ttl", time.Hour)
	v.SetDefault("state_ttl", 10*time.Minute)
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.RedirectURL == "" {
		return fmt.Errorf("redirect URL is required")
	}
	if c.Google.ClientID == "" || c.Google.ClientSecret == "" {
		return fmt.Errorf("Google client credentials are required")
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("access_token_ttl must be positive")
	}
	if c.StateTTL <= 0 {
		return fmt.Errorf("state_ttl must be positive")
	}
	return nil
}
