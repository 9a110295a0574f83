package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"synthex-backend/internal/cache"
	"synthex-backend/internal/config"
	apperrors "synthex-backend/internal/errors"
	"synthex-backend/internal/metrics"
	"synthex-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	geminiGenerateURL    = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

	aiCacheTTL = 24 * time.Hour
)

// AIGenService generates marketing copy through an LLM provider.
// Responses are cached by request hash, and each uncached generation
// consumes one of the organization's monthly AI credits.
type AIGenService struct {
	orgs       repository.OrganizationRepositoryInterface
	audit      *AuditService
	cache      *cache.Cache
	credits    *CreditMeter
	validator  *validator.Validate
	cfg        *config.Config
	httpClient *http.Client
}

// NewAIGenService creates a new AI generation service
func NewAIGenService(
	orgs repository.OrganizationRepositoryInterface,
	audit *AuditService,
	aiCache *cache.Cache,
	credits *CreditMeter,
	validator *validator.Validate,
	cfg *config.Config,
) *AIGenService {
	return &AIGenService{
		orgs:       orgs,
		audit:      audit,
		cache:      aiCache,
		credits:    credits,
		validator:  validator,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// GenerateContentRequest represents a content generation request
type GenerateContentRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=subject_line email_body social_post"`
	Prompt   string `json:"prompt" validate:"required,min=10,max=2000"`
	Tone     string `json:"tone,omitempty" validate:"omitempty,oneof=professional casual playful urgent"`
	Audience string `json:"audience,omitempty" validate:"max=500"`
}

// GenerateContentResponse represents generated content
type GenerateContentResponse struct {
	Content  string `json:"content"`
	Provider string `json:"provider"`
	Cached   bool   `json:"cached"`
}

// Generate produces marketing copy for the organization. Identical
// requests within the cache TTL are served from cache and do not
// consume credits.
func (s *AIGenService) Generate(ctx context.Context, orgID uuid.UUID, actorID uuid.UUID, req *GenerateContentRequest) (*GenerateContentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	cacheKey := s.requestHash(orgID, req)
	var cached GenerateContentResponse
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		cached.Cached = true
		return &cached, nil
	}

	org, err := s.orgs.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	limits := LimitsForTier(org.PlanTier)
	if !s.credits.Consume(ctx, orgID, limits.AICreditsPerMonth) {
		return nil, apperrors.ErrCreditsExhausted
	}

	prompt := buildPrompt(req)

	var content string
	switch s.cfg.AIProvider {
	case "gemini":
		content, err = s.generateGemini(ctx, prompt)
	default:
		content, err = s.generateAnthropic(ctx, prompt)
	}
	if err != nil {
		metrics.AIGenerations.WithLabelValues(s.cfg.AIProvider, "failed").Inc()
		return nil, err
	}
	metrics.AIGenerations.WithLabelValues(s.cfg.AIProvider, "ok").Inc()

	response := &GenerateContentResponse{Content: content, Provider: s.cfg.AIProvider}
	if err := s.cache.Set(ctx, cacheKey, response, aiCacheTTL); err != nil {
		logrus.WithError(err).Warn("failed to cache generated content")
	}

	s.audit.Record(orgID, &actorID, "ai.content_generated", "organization", &orgID, map[string]string{
		"kind": req.Kind,
	})

	return response, nil
}

func (s *AIGenService) requestHash(orgID uuid.UUID, req *GenerateContentRequest) string {
	sum := sha256.Sum256([]byte(orgID.String() + "|" + req.Kind + "|" + req.Prompt + "|" + req.Tone + "|" + req.Audience))
	return "ai:" + hex.EncodeToString(sum[:])
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (s *AIGenService) generateAnthropic(ctx context.Context, prompt string) (string, error) {
	if s.cfg.AnthropicAPIKey == "" {
		return "", &apperrors.ConfigurationError{Message: "ANTHROPIC_API_KEY is not set"}
	}

	body, err := json.Marshal(anthropicRequest{
		Model:     "claude-3-5-haiku-latest",
		MaxTokens: 1024,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.cfg.AnthropicAPIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("anthropic returned status %d: %s", resp.StatusCode, string(data))
	}

	var parsed anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Content) == 0 {
		return "", errors.New("anthropic returned empty content")
	}

	return parsed.Content[0].Text, nil
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (s *AIGenService) generateGemini(ctx context.Context, prompt string) (string, error) {
	if s.cfg.GeminiAPIKey == "" {
		return "", &apperrors.ConfigurationError{Message: "GEMINI_API_KEY is not set"}
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := geminiGenerateURL + "?key=" + s.cfg.GeminiAPIKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, string(data))
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini returned empty content")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func buildPrompt(req *GenerateContentRequest) string {
	var buf bytes.Buffer
	switch req.Kind {
	case "subject_line":
		buf.WriteString("Write an email subject line")
	case "email_body":
		buf.WriteString("Write an HTML marketing email body")
	case "social_post":
		buf.WriteString("Write a short social media post")
	}
	if req.Tone != "" {
		fmt.Fprintf(&buf, " in a %s tone", req.Tone)
	}
	if req.Audience != "" {
		fmt.Fprintf(&buf, " for this audience: %s", req.Audience)
	}
	buf.WriteString(".\n\n")
	buf.WriteString(req.Prompt)
	return buf.String()
}
