package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"synthex-backend/internal/database/models"
	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshTokenData stores information about an issued refresh token.
// Refresh tokens live in memory: losing them on restart only forces a
// re-login through Google.
type RefreshTokenData struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthService provides authentication functionality
type AuthService struct {
	config        *AuthConfig
	google        *GoogleClient
	states        repository.OAuthStateRepositoryInterface
	users         repository.UserRepositoryInterface
	refreshTokens map[string]*RefreshTokenData
	tokenMutex    sync.RWMutex
	now           func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// UserUUID parses the claim's user id
func (c *AuthClaims) UserUUID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}

// AuthStartResponse represents the response for the auth start endpoint
type AuthStartResponse struct {
	URL string `json:"url"`
}

// AuthHandlerResponse represents the response after a successful OAuth callback
type AuthHandlerResponse struct {
	AccessToken  string      `json:"accessToken"`
	TokenType    string      `json:"tokenType"`
	ExpiresIn    int64       `json:"expiresIn"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	RedirectURI  string      `json:"redirectUri,omitempty"`
	Profile      AuthProfile `json:"profile"`
}

// AuthProfile is the user payload returned to the frontend
type AuthProfile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatarUrl"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid"`
	Claims *AuthClaims `json:"claims,omitempty"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, states repository.OAuthStateRepositoryInterface, users repository.UserRepositoryInterface) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config:        config,
		google:        NewGoogleClient(&config.Google),
		states:        states,
		users:         users,
		refreshTokens: make(map[string]*RefreshTokenData),
		now:           time.Now,
	}, nil
}

// BeginLogin creates a single-use state token and returns the Google
// authorization URL to redirect the user to. The state row expires after
// the configured TTL and can be consumed exactly once by the callback.
func (s *AuthService) BeginLogin(redirectURI string) (string, error) {
	state, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}

	row := &models.OAuthState{
		State:       state,
		Provider:    "google",
		RedirectURI: redirectURI,
		ExpiresAt:   s.now().Add(s.config.StateTTL),
	}
	if err := s.states.Create(row); err != nil {
		return "", fmt.Errorf("persist oauth state: %w", err)
	}

	oauth2Config := s.google.GetOAuth2Config(s.callbackURL())
	return oauth2Config.AuthCodeURL(state), nil
}

// HandleCallback processes the OAuth2 callback: it consumes the state
// token, exchanges the authorization code, fetches the Google profile,
// upserts the user, and issues tokens. A replayed or expired state fails
// with ErrInvalidOAuthState before any code exchange happens.
func (s *AuthService) HandleCallback(ctx context.Context, code, state string) (*AuthHandlerResponse, error) {
	stateRow, err := s.states.Consume(state, s.now())
	if err != nil {
		return nil, err
	}

	oauth2Config := s.google.GetOAuth2Config(s.callbackURL())
	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	profile, err := s.google.GetUserProfile(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}

	user, err := s.upsertUser(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	accessToken, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.issueRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	return &AuthHandlerResponse{
		AccessToken:  accessToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(s.config.AccessTokenTTL.Seconds()),
		RefreshToken: refreshToken,
		RedirectURI:  stateRow.RedirectURI,
		Profile: AuthProfile{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			AvatarURL: user.AvatarURL,
		},
	}, nil
}

// upsertUser finds or creates the platform user matching a Google profile
func (s *AuthService) upsertUser(profile *UserProfile) (*models.User, error) {
	now := s.now()

	user, err := s.users.GetByGoogleID(profile.Sub)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if user == nil {
		// First Google login may match an existing user by email
		user, err = s.users.GetByEmail(profile.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if user == nil {
		user = &models.User{
			Email:       profile.Email,
			Name:        profile.Name,
			AvatarURL:   profile.Picture,
			GoogleID:    profile.Sub,
			LastLoginAt: &now,
		}
		if err := s.users.Create(user); err != nil {
			return nil, err
		}
		return user, nil
	}

	user.Name = profile.Name
	user.AvatarURL = profile.Picture
	user.GoogleID = profile.Sub
	user.LastLoginAt = &now
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GenerateJWT creates a signed access token for a user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "synthex-backend",
			Subject:   user.ID.String(),
			Audience:  jwt.ClaimStrings{"synthex"},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT parses and validates an access token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// Refresh exchanges a refresh token for a fresh access token
func (s *AuthService) Refresh(refreshToken string) (*AuthHandlerResponse, error) {
	s.tokenMutex.RLock()
	data, exists := s.refreshTokens[refreshToken]
	s.tokenMutex.RUnlock()

	if !exists || s.now().After(data.ExpiresAt) {
		s.revokeRefreshToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.users.GetByID(data.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	accessToken, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthHandlerResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.config.AccessTokenTTL.Seconds()),
		Profile: AuthProfile{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			AvatarURL: user.AvatarURL,
		},
	}, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(refreshToken string) {
	s.revokeRefreshToken(refreshToken)
}

func (s *AuthService) issueRefreshToken(user *models.User) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	s.tokenMutex.Lock()
	s.refreshTokens[token] = &RefreshTokenData{
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: s.now().Add(30 * 24 * time.Hour),
		CreatedAt: s.now(),
	}
	s.tokenMutex.Unlock()

	return token, nil
}

func (s *AuthService) revokeRefreshToken(token string) {
	s.tokenMutex.Lock()
	delete(s.refreshTokens, token)
	s.tokenMutex.Unlock()
}

// callbackURL is the redirect URI registered with Google; it must match
// the route the callback handler is mounted on.
func (s *AuthService) callbackURL() string {
	return fmt.Sprintf("%s/api/auth/google/callback", s.config.RedirectURL)
}

// generateToken returns a URL-safe random token
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
