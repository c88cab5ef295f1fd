package orchestrator

import (
	"strings"

	"sportscal/internal/customize"
)

// Intent is the router decision for which handler should run.
type Intent string

const (
	IntentCustomize Intent = "customize"
	IntentSports    Intent = "sports"
	IntentCalendar  Intent = "calendar"
	IntentChat      Intent = "chat"
)

// RoutedIntent carries the decision plus a short reasoning string for logs.
type RoutedIntent struct {
	Intent    Intent
	Reasoning string
}

// KeywordRouter is a lightweight deterministic intent router.
type KeywordRouter struct{}

func NewKeywordRouter() *KeywordRouter {
	return &KeywordRouter{}
}

func (r *KeywordRouter) Route(text string) RoutedIntent {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return RoutedIntent{Intent: IntentChat, Reasoning: "empty input"}
	}

	if customize.IsTrigger(normalized) {
		return RoutedIntent{Intent: IntentCustomize, Reasoning: "contains customization trigger"}
	}

	sportsHints := []string{
		"tennis", "football", "soccer", "basketball", "sport",
		"barcelona", "barca", "madrid", "atletico", "lakers",
		"us open", "la liga", "champions league", "final", "semifinal", "match", "game",
	}
	calendarHints := []string{"calendar", "ics", "schedule", "events"}

	switch {
	case containsAny(normalized, sportsHints):
		return RoutedIntent{Intent: IntentSports, Reasoning: "contains sports cues"}
	case containsAny(normalized, calendarHints):
		return RoutedIntent{Intent: IntentCalendar, Reasoning: "contains calendar cues"}
	default:
		return RoutedIntent{Intent: IntentChat, Reasoning: "no sports or calendar cues"}
	}
}

func containsAny(text string, values []string) bool {
	for _, v := range values {
		if strings.Contains(text, v) {
			return true
		}
	}
	return false
}
