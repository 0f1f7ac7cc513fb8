// Package ai talks to text-completion backends: the internal chat service
// and Google Gemini.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const DefaultServiceURL = "http://ai-service:8000"

// Client calls the chat endpoint of the internal ai-service.
type Client struct {
	BaseURL  string
	HTTP     *http.Client
	Attempts int
	// Backoff is the wait before retry number i (0-based).
	Backoff func(i int) time.Duration
}

// NewClient builds a client for baseURL, falling back to AI_SERVICE_URL and
// then DefaultServiceURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("AI_SERVICE_URL")
	}
	if baseURL == "" {
		baseURL = DefaultServiceURL
	}
	return &Client{
		BaseURL:  baseURL,
		HTTP:     &http.Client{Timeout: 60 * time.Second},
		Attempts: 3,
		Backoff:  exponential,
	}
}

func exponential(i int) time.Duration {
	return time.Duration(1<<i) * time.Second
}

type chatRequest struct {
	Agent string `json:"agent"`
	Input string `json:"input"`
}

type chatResponse struct {
	Agent  string `json:"agent"`
	Output string `json:"output"`
}

// StatusError is a non-200 reply from the ai-service.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ai-service returned non-200 status: %d", e.Code)
}

// Generate sends prompt to /v1/chat and returns the raw completion text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	b, err := json.Marshal(chatRequest{Agent: "auto", Input: prompt})
	if err != nil {
		return "", err
	}

	resp, err := c.doPostWithRetry(ctx, "/v1/chat", b)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Code: resp.StatusCode, Body: string(respBytes)}
	}

	var out chatResponse
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("decode ai-service response: %w", err)
	}
	return out.Output, nil
}

// doPostWithRetry performs an HTTP POST to the given path with retry/backoff.
// Transport errors and 5xx replies are retried; anything else is returned as is.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := c.Attempts
	if attempts < 1 {
		attempts = 1
	}
	backoff := c.Backoff
	if backoff == nil {
		backoff = exponential
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTP.Do(req)
		switch {
		case err != nil:
			lastErr = err
		case resp.StatusCode >= 500 && i < attempts-1:
			resp.Body.Close()
			lastErr = &StatusError{Code: resp.StatusCode}
		default:
			return resp, nil
		}

		if i < attempts-1 {
			select {
			case <-time.After(backoff(i)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}
