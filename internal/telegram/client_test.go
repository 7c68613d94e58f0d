package telegram

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lumiforge/mealsub-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SendAlert_NotConfigured(t *testing.T) {
	c := NewClient(&config.Config{})

	assert.False(t, c.IsConfigured())
	assert.NoError(t, c.SendAlert("boom"))
}

func TestClient_SendAlert(t *testing.T) {
	var gotPath, gotChat, gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotPath = r.URL.Path
		gotChat = r.PostForm.Get("chat_id")
		gotText = r.PostForm.Get("text")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(&config.Config{TelegramBotToken: "tok", TelegramAdminChatID: "42", ServiceName: "mealsub-backend"})
	c.apiURL = srv.URL

	require.NoError(t, c.SendAlert("expiry sweep failed"))
	assert.Equal(t, "/bottok/sendMessage", gotPath)
	assert.Equal(t, "42", gotChat)
	assert.Equal(t, "🚨 [mealsub-backend] ERROR: expiry sweep failed", gotText)
}

func TestClient_SendAlert_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(&config.Config{TelegramBotToken: "tok", TelegramAdminChatID: "42"})
	c.apiURL = srv.URL

	assert.Error(t, c.SendAlert("boom"))
}
