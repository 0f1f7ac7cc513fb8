package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiClient generates text through the Gemini API.
type GeminiClient struct {
	client     *genai.Client
	Model      string
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Timeout    time.Duration
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiClient{
		client:     client,
		Model:      model,
		MaxRetries: 3,
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
		Timeout:    90 * time.Second,
	}, nil
}

// Generate returns the text of the first candidate for prompt.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, g.Timeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= g.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(Backoff(g.BaseDelay, g.MaxDelay, attempt)):
			case <-ctx.Done():
				return "", fmt.Errorf("context timeout during retry: %w", ctx.Err())
			}
		}

		result, err := g.client.Models.GenerateContent(ctx, g.Model, genai.Text(prompt),
			&genai.GenerateContentConfig{Temperature: genai.Ptr(float32(0.1))})
		if err == nil {
			if err := validateResponse(result); err != nil {
				return "", fmt.Errorf("invalid response: %w", err)
			}
			return result.Text(), nil
		}

		lastErr = err
		if !Retryable(err) {
			return "", fmt.Errorf("generate content failed: %w", err)
		}
	}
	return "", fmt.Errorf("max retries (%d) exceeded: %w", g.MaxRetries, lastErr)
}

// Backoff doubles base per attempt (1-based), capped at limit.
func Backoff(base, limit time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		return 0
	}
	d := base << (attempt - 1)
	if d > limit || d <= 0 {
		d = limit
	}
	return d
}

// Retryable reports whether err is a rate limit, a server fault or a
// transient network error.
func Retryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	// The client returns APIError by value; older call sites wrap a pointer.
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return retryableCode(apiErr.Code)
	}
	var apiPtr *genai.APIError
	if errors.As(err, &apiPtr) && apiPtr != nil {
		return retryableCode(apiPtr.Code)
	}
	msg := err.Error()
	for _, s := range []string{"connection refused", "connection reset", "timeout", "temporary failure", "EOF"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

func retryableCode(code int) bool {
	switch code {
	case 429, 500, 502, 503, 504:
		return true
	}
	return false
}

func validateResponse(resp *genai.GenerateContentResponse) error {
	switch {
	case resp == nil:
		return errors.New("response is nil")
	case len(resp.Candidates) == 0:
		return errors.New("no candidates in response")
	case resp.Candidates[0].Content == nil:
		return errors.New("candidate content is nil")
	case len(resp.Candidates[0].Content.Parts) == 0:
		return errors.New("no parts in content")
	}
	return nil
}
