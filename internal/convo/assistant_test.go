package convo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockChatAPI(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestChatAccumulatesPreferences(t *testing.T) {
	srv := newMockChatAPI(t, `{"message":"Tennis it is! Anything else?","preferences":{"sports":["tennis"],"teams":[],"tournaments":[],"eventTypes":[],"keywords":[]},"readyToGenerate":false}`)
	defer srv.Close()

	a := NewAssistant(Config{APIKey: "test-key", BaseURL: srv.URL}, zap.NewNop())

	reply, err := a.Chat(context.Background(), "u1", "I like tennis")
	require.NoError(t, err)
	assert.Equal(t, "Tennis it is! Anything else?", reply.Message)
	assert.False(t, reply.ReadyToGenerate)

	prefs := a.Preferences("u1")
	assert.Equal(t, []string{"tennis"}, prefs.Sports)
}

func TestChatSignalsReadyToGenerate(t *testing.T) {
	srv := newMockChatAPI(t, `{"message":"Here comes your calendar!","preferences":{},"readyToGenerate":true}`)
	defer srv.Close()

	a := NewAssistant(Config{APIKey: "test-key", BaseURL: srv.URL}, zap.NewNop())

	reply, err := a.Chat(context.Background(), "u2", "yes, generate it")
	require.NoError(t, err)
	assert.True(t, reply.ReadyToGenerate)
}

func TestChatPassesThroughNonJSONReplies(t *testing.T) {
	srv := newMockChatAPI(t, "Sure! What sport are you into?")
	defer srv.Close()

	a := NewAssistant(Config{APIKey: "test-key", BaseURL: srv.URL}, zap.NewNop())

	reply, err := a.Chat(context.Background(), "u3", "hi")
	require.NoError(t, err)
	assert.Equal(t, "Sure! What sport are you into?", reply.Message)
	assert.False(t, reply.ReadyToGenerate)
}

func TestResetDropsState(t *testing.T) {
	srv := newMockChatAPI(t, `{"message":"ok","preferences":{"sports":["tennis"]},"readyToGenerate":false}`)
	defer srv.Close()

	a := NewAssistant(Config{APIKey: "test-key", BaseURL: srv.URL}, zap.NewNop())
	_, err := a.Chat(context.Background(), "u4", "tennis")
	require.NoError(t, err)
	require.NotEmpty(t, a.Preferences("u4").Sports)

	a.Reset("u4")
	assert.True(t, a.Preferences("u4").IsEmpty())
}
