package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/lumiforge/mealsub-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type alerterStub struct {
	messages []string
}

func (a *alerterStub) SendAlert(msg string) error {
	a.messages = append(a.messages, msg)
	return nil
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestLogger_AlertsOnlyOnErrors(t *testing.T) {
	var buf bytes.Buffer
	alerts := &alerterStub{}
	l := newLogger(&buf, &config.Config{LogLevel: "info", ServiceName: "mealsub-backend"}, alerts)

	l.Debug("hidden")
	l.Info("Subscription paused", "subscription_id", "sub-1")
	l.Error("Failed to expire subscription", "subscription_id", "sub-2", "error", "conflict")

	require.Equal(t, []string{"Failed to expire subscription: conflict"}, alerts.messages)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	var first map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	assert.Equal(t, "mealsub-backend", first["service"])
	assert.Equal(t, "sub-1", first["subscription_id"])
}

func TestFromContext(t *testing.T) {
	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, l, FromContext(WithContext(context.Background(), l)))
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}
