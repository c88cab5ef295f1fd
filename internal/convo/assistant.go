package convo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"go.uber.org/zap"

	"sportscal/internal/extract"
)

const (
	historyLimit   = 10
	requestTimeout = 30 * time.Second
)

const systemPromptTemplate = `You are a friendly sports calendar assistant. Chat with the user about
which sports events they want in their calendar. The catalogue covers
tennis (US Open), football (La Liga: Barcelona, Real Madrid, Atletico
Madrid) and basketball.

The user's preferences so far: %s

Respond with strict JSON only, shaped as:
{"message": "<your reply to the user>",
 "preferences": {"sports": [], "teams": [], "tournaments": [], "eventTypes": [], "keywords": []},
 "readyToGenerate": <true when the user confirms they want the calendar>}

Put only NEW preferences mentioned in the latest message into "preferences".`

// Reply is one assistant turn: text for the user plus the signal that
// the user confirmed calendar generation.
type Reply struct {
	Message         string
	ReadyToGenerate bool
}

// assistantPayload is the JSON shape the model is instructed to return.
type assistantPayload struct {
	Message         string      `json:"message"`
	Preferences     Preferences `json:"preferences"`
	ReadyToGenerate bool        `json:"readyToGenerate"`
}

// conversation holds one user's rolling chat history and preferences.
type conversation struct {
	history []openai.ChatCompletionMessageParamUnion
	prefs   Preferences
}

// Assistant runs free-form preference-gathering dialogues over a chat
// completion endpoint. State is per user, capped to the last few turns.
type Assistant struct {
	client openai.Client
	model  string
	log    *zap.Logger

	mu    sync.Mutex
	convs map[string]*conversation
}

// Config carries the assistant's endpoint settings. BaseURL is an
// override for tests.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

func NewAssistant(cfg Config, log *zap.Logger) *Assistant {
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: requestTimeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Assistant{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
		log:    log,
		convs:  make(map[string]*conversation),
	}
}

// Chat runs one dialogue turn for the user. Preferences found in the
// model's reply are merged into the user's running set. A reply that is
// not valid JSON is passed through as plain text rather than dropped.
func (a *Assistant) Chat(ctx context.Context, userID, text string) (Reply, error) {
	conv := a.conversation(userID)

	prefsJSON, _ := json.Marshal(conv.prefs)
	system := fmt.Sprintf(systemPromptTemplate, string(prefsJSON))

	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(conv.history)+2)
	msgs = append(msgs, openai.SystemMessage(system))
	msgs = append(msgs, conv.history...)
	msgs = append(msgs, openai.UserMessage(text))

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(a.model),
		Messages: msgs,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Reply{}, fmt.Errorf("empty completion response")
	}
	content := resp.Choices[0].Message.Content

	reply := a.parseReply(userID, conv, content)
	a.remember(conv, text, content)
	return reply, nil
}

// Preferences returns a copy of the user's accumulated preferences.
func (a *Assistant) Preferences(userID string) Preferences {
	a.mu.Lock()
	defer a.mu.Unlock()
	conv, ok := a.convs[userID]
	if !ok {
		return Preferences{}
	}
	return conv.prefs
}

// Reset drops the user's conversation state after a calendar is sent.
func (a *Assistant) Reset(userID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.convs, userID)
}

func (a *Assistant) conversation(userID string) *conversation {
	a.mu.Lock()
	defer a.mu.Unlock()
	conv, ok := a.convs[userID]
	if !ok {
		conv = &conversation{}
		a.convs[userID] = conv
	}
	return conv
}

func (a *Assistant) parseReply(userID string, conv *conversation, content string) Reply {
	var payload assistantPayload
	raw := extract.ExtractJSON(content)
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		a.log.Debug("assistant reply was not JSON, using raw text",
			zap.String("user_id", userID), zap.Error(err))
		return Reply{Message: strings.TrimSpace(content)}
	}
	conv.prefs.Merge(payload.Preferences)
	return Reply{Message: payload.Message, ReadyToGenerate: payload.ReadyToGenerate}
}

func (a *Assistant) remember(conv *conversation, userText, assistantText string) {
	conv.history = append(conv.history,
		openai.UserMessage(userText),
		openai.AssistantMessage(assistantText),
	)
	if len(conv.history) > historyLimit {
		conv.history = conv.history[len(conv.history)-historyLimit:]
	}
}
