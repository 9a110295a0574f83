package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

const googleUserinfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

// googleEndpoint is the OAuth2 endpoint pair for Google sign-in
var googleEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.google.com/o/oauth2/v2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
}

// GoogleClient wraps the Google OAuth2 and userinfo APIs
type GoogleClient struct {
	config *ProviderConfig
}

// UserProfile represents a Google user profile from the userinfo endpoint
type UserProfile struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// NewGoogleClient creates a new Google OAuth client
func NewGoogleClient(config *ProviderConfig) *GoogleClient {
	return &GoogleClient{config: config}
}

// GetOAuth2Config returns the OAuth2 configuration for this client
func (c *GoogleClient) GetOAuth2Config(redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     googleEndpoint,
	}
}

// GetUserProfile fetches the authenticated user's profile from the
// Google userinfo endpoint
func (c *GoogleClient) GetUserProfile(ctx context.Context, token *oauth2.Token) (*UserProfile, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserinfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build userinfo request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch user profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("invalid access token")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var profile UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode user profile: %w", err)
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("google profile has no email")
	}

	return &profile, nil
}

// ValidateConfig validates the Google client configuration
func (c *GoogleClient) ValidateConfig() error {
	if c.config.ClientID == "" {
		return fmt.Errorf("client ID is required")
	}
	if c.config.ClientSecret == "" {
		return fmt.Errorf("client secret is required")
	}
	return nil
}
