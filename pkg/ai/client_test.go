package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noWait(int) time.Duration { return 0 }

func TestClientGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "auto", req.Agent)
		assert.Equal(t, "analyze this", req.Input)

		_ = json.NewEncoder(w).Encode(chatResponse{Agent: "hr", Output: `{"score": 80}`})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	out, err := c.Generate(context.Background(), "analyze this")
	require.NoError(t, err)
	assert.Equal(t, `{"score": 80}`, out)
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(chatResponse{Output: "ok"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.Backoff = noWait
	out, err := c.Generate(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClientGivesUpAfterAttempts(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.Backoff = noWait
	_, err := c.Generate(context.Background(), "x")

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.Backoff = noWait
	_, err := c.Generate(context.Background(), "x")
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClientCanceledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	c := NewClient(srv.URL)
	c.Backoff = func(int) time.Duration {
		cancel()
		return time.Hour
	}
	_, err := c.Generate(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClientDefaults(t *testing.T) {
	t.Setenv("AI_SERVICE_URL", "")
	assert.Equal(t, DefaultServiceURL, NewClient("").BaseURL)

	t.Setenv("AI_SERVICE_URL", "http://svc:9000")
	assert.Equal(t, "http://svc:9000", NewClient("").BaseURL)
}

func TestBackoff(t *testing.T) {
	assert.Equal(t, time.Duration(0), Backoff(time.Second, time.Minute, 0))
	assert.Equal(t, time.Second, Backoff(time.Second, time.Minute, 1))
	assert.Equal(t, 4*time.Second, Backoff(time.Second, time.Minute, 3))
	assert.Equal(t, 10*time.Second, Backoff(time.Second, 10*time.Second, 8))
}

func TestRetryable(t *testing.T) {
	assert.False(t, Retryable(nil))
	assert.False(t, Retryable(context.Canceled))
	assert.True(t, Retryable(errors.New("read: connection reset by peer")))
	assert.False(t, Retryable(errors.New("invalid argument")))
}
