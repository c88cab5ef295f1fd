package extract

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

func completionResponse(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"model":   "gpt-4o-mini",
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
}

func newMockAPI(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(completionResponse(content)))
	}))
}

func TestOpenAIExtractorParsesFilter(t *testing.T) {
	srv := newMockAPI(t, `{"sports":["tennis"],"teams":[],"tournaments":["US Open"],"keywords":["final"],"filename":"tennis_events","summary":"Tennis events"}`, http.StatusOK)
	defer srv.Close()

	e := NewOpenAIExtractor(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	f, err := e.Extract(context.Background(), "tennis finals at the us open")
	require.NoError(t, err)

	assert.Equal(t, []string{"tennis"}, f.Sports)
	assert.Equal(t, []string{"US Open"}, f.Tournaments)
	assert.Contains(t, f.Keywords, "final")
	assert.Equal(t, "tennis_events", f.Filename)
}

func TestOpenAIExtractorStripsProseAroundJSON(t *testing.T) {
	srv := newMockAPI(t, "Here is the filter:\n```json\n{\"sports\":[\"football\"]}\n```", http.StatusOK)
	defer srv.Close()

	e := NewOpenAIExtractor(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	f, err := e.Extract(context.Background(), "football please")
	require.NoError(t, err)

	assert.Equal(t, []string{"football"}, f.Sports)
	assert.NotNil(t, f.Teams, "missing fields must normalize to empty slices")
}

func TestOpenAIExtractorAcceptsBracesInSummary(t *testing.T) {
	srv := newMockAPI(t, `{"sports":["tennis"],"summary":"tennis events (incl. finals}...)"}`, http.StatusOK)
	defer srv.Close()

	e := NewOpenAIExtractor(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	f, err := e.Extract(context.Background(), "tennis")
	require.NoError(t, err, "a brace inside a string value must not truncate the object")
	assert.Equal(t, []string{"tennis"}, f.Sports)
}

func TestOpenAIExtractorErrorsOnBadJSON(t *testing.T) {
	srv := newMockAPI(t, "sorry, I cannot help with that", http.StatusOK)
	defer srv.Close()

	e := NewOpenAIExtractor(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	_, err := e.Extract(context.Background(), "tennis")
	assert.Error(t, err)
}

func TestOpenAIExtractorErrorsOnServerFailure(t *testing.T) {
	srv := newMockAPI(t, "", http.StatusInternalServerError)
	defer srv.Close()

	e := NewOpenAIExtractor(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	_, err := e.Extract(context.Background(), "tennis")
	assert.Error(t, err)
}

func TestFallbackRecoversFromPrimaryFailure(t *testing.T) {
	srv := newMockAPI(t, "", http.StatusInternalServerError)
	defer srv.Close()

	primary := NewOpenAIExtractor(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	e := WithFallback(primary, NewRuleExtractor(), zap.NewNop())

	f, err := e.Extract(context.Background(), "tennis final")
	require.NoError(t, err, "fallback must absorb primary errors")
	assert.Equal(t, []string{"tennis"}, f.Sports)
	assert.Contains(t, f.Keywords, "final")
}

func TestFallbackPrefersPrimaryResult(t *testing.T) {
	srv := newMockAPI(t, `{"sports":["basketball"],"filename":"basketball_events"}`, http.StatusOK)
	defer srv.Close()

	primary := NewOpenAIExtractor(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	e := WithFallback(primary, NewRuleExtractor(), zap.NewNop())

	f, err := e.Extract(context.Background(), "hoops tonight")
	require.NoError(t, err)
	assert.Equal(t, []string{"basketball"}, f.Sports)
}

func TestFallbackWithNilPrimary(t *testing.T) {
	e := WithFallback(nil, NewRuleExtractor(), nil)

	f, err := e.Extract(context.Background(), "football")
	require.NoError(t, err)
	assert.Equal(t, []string{"football"}, f.Sports)
}
