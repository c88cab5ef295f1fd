package extract

import (
	"context"
	"strings"

	"sportscal/internal/filter"
)

// vocabEntry maps trigger substrings to a canonical label.
type vocabEntry struct {
	triggers []string
	label    string
}

var sportVocab = []vocabEntry{
	{triggers: []string{"tennis"}, label: "tennis"},
	{triggers: []string{"football", "soccer"}, label: "football"},
	{triggers: []string{"basketball"}, label: "basketball"},
	{triggers: []string{"hockey"}, label: "hockey"},
}

var teamVocab = []vocabEntry{
	{triggers: []string{"barcelona", "barca"}, label: "Barcelona"},
	{triggers: []string{"real madrid", "madrid"}, label: "Real Madrid"},
	{triggers: []string{"atletico", "atlético"}, label: "Atletico Madrid"},
	{triggers: []string{"lakers"}, label: "Lakers"},
}

var tournamentVocab = []vocabEntry{
	{triggers: []string{"us open"}, label: "US Open"},
	{triggers: []string{"la liga"}, label: "La Liga"},
	{triggers: []string{"champions league"}, label: "Champions League"},
}

var keywordVocab = []vocabEntry{
	{triggers: []string{"semifinal"}, label: "semifinal"},
	{triggers: []string{"final"}, label: "final"},
	{triggers: []string{"championship"}, label: "championship"},
}

// RuleExtractor is the deterministic vocabulary-based extractor. It never
// fails and serves as the fallback for the AI-backed variant.
type RuleExtractor struct{}

func NewRuleExtractor() *RuleExtractor {
	return &RuleExtractor{}
}

func (e *RuleExtractor) Extract(_ context.Context, text string) (filter.Filter, error) {
	lower := strings.ToLower(text)

	f := filter.Filter{
		Sports:      scanVocab(lower, sportVocab),
		Teams:       scanVocab(lower, teamVocab),
		Tournaments: scanVocab(lower, tournamentVocab),
		Keywords:    scanVocab(lower, keywordVocab),
	}

	f.Filename = filter.DefaultFilename
	f.Summary = "Mixed sports events"
	if len(f.Sports) > 0 {
		f.Summary = strings.Join(f.Sports, ", ") + " events"
		f.Filename = strings.Join(f.Sports, "_") + "_events"
	}
	if len(f.Teams) > 0 {
		f.Summary += "\nTeams: " + strings.Join(f.Teams, ", ")
	}

	f.Normalize()
	return f, nil
}

func scanVocab(lower string, vocab []vocabEntry) []string {
	var out []string
	for _, entry := range vocab {
		for _, trigger := range entry.triggers {
			if strings.Contains(lower, trigger) {
				out = append(out, entry.label)
				break
			}
		}
	}
	return out
}
