// Package gemini provides the Google Gemini implementation of AIClient
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/kotaratanaka/IFA/internal/common"
	"github.com/kotaratanaka/IFA/internal/interfaces"
	"github.com/kotaratanaka/IFA/internal/models"
)

const (
	DefaultModel     = "gemini-2.0-flash"
	DefaultRateLimit = 2 // requests per second
)

// DefaultTimeout bounds one generation call end to end.
const DefaultTimeout = 120 * time.Second

// Client implements the AIClient interface
type Client struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
	retry   common.RetryPolicy
	timeout time.Duration
	logger  *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithModel sets the model to use
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithRateLimit sets the request pacing in requests per second
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithMaxAttempts sets the retry ceiling for quota failures
func WithMaxAttempts(attempts int) ClientOption {
	return func(c *Client) {
		if attempts > 0 {
			c.retry.MaxAttempts = attempts
		}
	}
}

// WithTimeout sets the per-call deadline for generation requests
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client:  genaiClient,
		model:   DefaultModel,
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
		retry:   common.DefaultRetryPolicy(isQuotaError),
		timeout: DefaultTimeout,
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// isQuotaError reports whether the failure is a rate/quota rejection that
// warrants a backoff-and-retry. All other failures propagate immediately.
func isQuotaError(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED"
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// generate runs one paced, quota-retried text generation call under the
// configured deadline.
func (c *Client) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	c.logger.Debug().Str("model", c.model).Int("prompt_chars", len(prompt)).Msg("Generating content")

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	return common.Retry(ctx, c.retry, func(ctx context.Context) (string, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}

		result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
		if err != nil {
			return "", fmt.Errorf("failed to generate content: %w", err)
		}
		return extractTextFromResponse(result)
	})
}

// jsonConfig asks the model for a raw JSON response body.
func jsonConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
}

// extractTextFromResponse extracts text from a generate content response
func extractTextFromResponse(result *genai.GenerateContentResponse) (string, error) {
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text := ""
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	return text, nil
}

// DeepResearch gathers background research for the proposal targets.
func (c *Client) DeepResearch(ctx context.Context, profile *models.ClientProfile, assets []models.Asset) (string, error) {
	text, err := c.generate(ctx, buildResearchPrompt(profile, assets), nil)
	if err != nil {
		return "", fmt.Errorf("deep research: %w", err)
	}
	return text, nil
}

// Recommendations fetches candidate assets for the resolved settings.
func (c *Client) Recommendations(ctx context.Context, profile *models.ClientProfile, requests []models.ProposalRequest) ([]models.Asset, error) {
	text, err := c.generate(ctx, buildRecommendationPrompt(profile, requests), jsonConfig())
	if err != nil {
		return nil, fmt.Errorf("recommendations: %w", err)
	}

	var candidates []models.Asset
	if err := json.Unmarshal([]byte(extractJSON(text)), &candidates); err != nil {
		return nil, fmt.Errorf("recommendations: malformed candidate payload: %w", err)
	}
	return candidates, nil
}

// ProposalDocument generates the full slide deck.
func (c *Client) ProposalDocument(ctx context.Context, profile *models.ClientProfile, holdings, proposed []models.Asset, researchText string) (*models.PresentationData, error) {
	text, err := c.generate(ctx, buildProposalPrompt(profile, holdings, proposed, researchText), jsonConfig())
	if err != nil {
		return nil, fmt.Errorf("proposal document: %w", err)
	}

	var presentation models.PresentationData
	if err := json.Unmarshal([]byte(extractJSON(text)), &presentation); err != nil {
		return nil, fmt.Errorf("proposal document: malformed presentation payload: %w", err)
	}
	return &presentation, nil
}

// RewriteText rewrites slide text per an adviser instruction.
func (c *Client) RewriteText(ctx context.Context, currentText, instruction string) (string, error) {
	text, err := c.generate(ctx, buildRewritePrompt(currentText, instruction), nil)
	if err != nil {
		return "", fmt.Errorf("rewrite text: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// ParseDocument extracts assets and profile hints from an uploaded
// document. PDF text is extracted locally before prompting so the model
// receives plain text instead of raw bytes.
func (c *Client) ParseDocument(ctx context.Context, data []byte, mimeType string) (*models.DocumentExtraction, error) {
	content, err := documentText(data, mimeType)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	text, err := c.generate(ctx, buildParsePrompt(content), jsonConfig())
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	var extraction models.DocumentExtraction
	if err := json.Unmarshal([]byte(extractJSON(text)), &extraction); err != nil {
		return nil, fmt.Errorf("parse document: malformed extraction payload: %w", err)
	}
	return &extraction, nil
}

// Close closes the client
func (c *Client) Close() error {
	// The genai client doesn't have a Close method
	return nil
}

// Ensure Client implements AIClient
var _ interfaces.AIClient = (*Client)(nil)
