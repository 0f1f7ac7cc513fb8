package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn"}, &buf)

	l.Info().Msg("hidden")
	l.Warn().Str("template", "kd").Msg("shown")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "kd", line["template"])
	assert.Equal(t, "shown", line["message"])
}

func TestNewBadLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "loud"}, &buf)
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Format: "pretty"}, &buf)
	l.Debug().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info"}, &buf)
	ctx := WithContext(context.Background(), l)
	Ctx(ctx).Info().Msg("from ctx")
	assert.Contains(t, buf.String(), "from ctx")

	assert.NotNil(t, Ctx(context.Background()))
}
