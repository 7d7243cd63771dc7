package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personal-finance/tracker/internal/application/adapter"
)

func TestResendClient_Send(t *testing.T) {
	var (
		body map[string]any
		auth string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.Equal(t, "/emails", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_123"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewResendClient("re_key", srv.URL, "Finance Tracker", "alerts@example.com")
	require.NoError(t, err)

	receipt, err := client.Send(context.Background(), adapter.OutboundEmail{
		To:      "ana@example.com",
		Subject: "Budget exceeded: Groceries",
		HTML:    "<p>hi</p>",
		Text:    "hi",
		Tags:    map[string]string{"kind": "budget_exceeded", "area": "budgets"},
	})
	require.NoError(t, err)

	assert.Equal(t, "msg_123", receipt.MessageID)
	assert.Equal(t, "Bearer re_key", auth)
	assert.Equal(t, "Finance Tracker <alerts@example.com>", body["from"])
	assert.Equal(t, []any{"ana@example.com"}, body["to"])

	tags, ok := body["tags"].([]any)
	require.True(t, ok)
	require.Len(t, tags, 2)
	assert.Equal(t, "area", tags[0].(map[string]any)["name"])
	assert.Equal(t, "budget_exceeded", tags[1].(map[string]any)["value"])
}
