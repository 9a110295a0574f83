package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"synthex-backend/internal/database/models"
	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

const gmailSendURL = "https://gmail.googleapis.com/gmail/v1/users/me/messages/send"

// Mailer sends a single campaign email and returns the provider message id
type Mailer interface {
	Send(ctx context.Context, workspaceID uuid.UUID, from, to, subject, htmlBody string) (string, error)
}

// GmailMailer sends email through the Gmail API using the workspace's
// connected account. Tokens are refreshed through the stored refresh
// token and written back when they rotate.
type GmailMailer struct {
	accounts     repository.EmailAccountRepositoryInterface
	clientID     string
	clientSecret string
	httpClient   *http.Client
}

// NewGmailMailer creates a new Gmail mailer
func NewGmailMailer(accounts repository.EmailAccountRepositoryInterface, clientID, clientSecret string) *GmailMailer {
	return &GmailMailer{
		accounts:     accounts,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

type gmailSendRequest struct {
	Raw string `json:"raw"`
}

type gmailSendResponse struct {
	ID string `json:"id"`
}

// Send delivers one message through the workspace's connected Gmail account
func (m *GmailMailer) Send(ctx context.Context, workspaceID uuid.UUID, from, to, subject, htmlBody string) (string, error) {
	account, err := m.accounts.GetByWorkspaceID(workspaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrEmailAccountNotFound
		}
		return "", fmt.Errorf("failed to load sending account: %w", err)
	}

	token, err := m.freshToken(ctx, account)
	if err != nil {
		return "", err
	}

	raw := buildMIMEMessage(from, to, subject, htmlBody)
	body, err := json.Marshal(gmailSendRequest{Raw: base64.URLEncoding.EncodeToString(raw)})
	if err != nil {
		return "", fmt.Errorf("failed to encode send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, gmailSendURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build send request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gmail send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("gmail send returned status %d", resp.StatusCode)
	}

	var sendResp gmailSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil {
		return "", fmt.Errorf("failed to decode send response: %w", err)
	}

	return sendResp.ID, nil
}

// freshToken returns a valid access token for the account, refreshing
// and persisting it when expired
func (m *GmailMailer) freshToken(ctx context.Context, account *models.EmailAccount) (*oauth2.Token, error) {
	token := &oauth2.Token{
		AccessToken:  account.AccessToken,
		RefreshToken: account.RefreshToken,
	}
	if account.TokenExpiry != nil {
		token.Expiry = *account.TokenExpiry
	}

	config := &oauth2.Config{
		ClientID:     m.clientID,
		ClientSecret: m.clientSecret,
		Endpoint:     google.Endpoint,
	}

	fresh, err := config.TokenSource(ctx, token).Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh gmail token: %w", err)
	}

	if fresh.AccessToken != account.AccessToken {
		expiry := fresh.Expiry
		refreshToken := fresh.RefreshToken
		if refreshToken == "" {
			refreshToken = account.RefreshToken
		}
		if err := m.accounts.UpdateTokens(account.ID, fresh.AccessToken, refreshToken, &expiry); err != nil {
			logrus.WithError(err).WithField("account_id", account.ID).Warn("failed to persist rotated gmail token")
		}
	}

	return fresh, nil
}

// buildMIMEMessage assembles a minimal HTML email in RFC 2822 format
func buildMIMEMessage(from, to, subject, htmlBody string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(htmlBody)
	return buf.Bytes()
}
