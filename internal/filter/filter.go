package filter

import (
	"strings"

	"sportscal/internal/catalogue"
)

// Filter describes the subset of catalogue events a user wants. All fields
// are optional; an empty filter matches everything.
type Filter struct {
	Sports      []string `json:"sports"`
	Teams       []string `json:"teams"`
	Tournaments []string `json:"tournaments"`
	Keywords    []string `json:"keywords"`
	Filename    string   `json:"filename"`
	Summary     string   `json:"summary"`
}

// DefaultFilename is used when no sport was detected in the request.
const DefaultFilename = "sports_events"

// IsEmpty reports whether no filter dimension is populated. Filename and
// Summary are presentation fields and do not count.
func (f Filter) IsEmpty() bool {
	return len(f.Sports) == 0 && len(f.Teams) == 0 &&
		len(f.Tournaments) == 0 && len(f.Keywords) == 0
}

// Normalize fills zero values so a partially populated filter (e.g. parsed
// from an LLM response with missing fields) is always safe to use.
func (f *Filter) Normalize() {
	if f.Sports == nil {
		f.Sports = []string{}
	}
	if f.Teams == nil {
		f.Teams = []string{}
	}
	if f.Tournaments == nil {
		f.Tournaments = []string{}
	}
	if f.Keywords == nil {
		f.Keywords = []string{}
	}
	if f.Filename == "" {
		f.Filename = DefaultFilename
	}
	if f.Summary == "" {
		f.Summary = "Mixed sports events"
	}
}

// Matches reports whether the event satisfies the filter.
//
// An empty filter matches every event. Otherwise the result is the logical
// OR across the populated dimensions: one hit on any dimension is enough.
// This means sports=[tennis] plus teams=[Barcelona] yields the union of
// tennis events and Barcelona events, not the intersection. That mirrors the
// behavior users already rely on and must not be tightened to AND.
func Matches(ev catalogue.Event, f Filter) bool {
	if f.IsEmpty() {
		return true
	}

	if matchesSport(ev, f.Sports) {
		return true
	}
	if matchesTeams(ev, f.Teams) {
		return true
	}
	if matchesTournament(ev, f.Tournaments) {
		return true
	}
	if matchesKeywords(ev, f.Keywords) {
		return true
	}
	return false
}

// Apply returns the catalogue events matching the filter, in input order.
func Apply(events []catalogue.Event, f Filter) []catalogue.Event {
	matched := make([]catalogue.Event, 0, len(events))
	for _, ev := range events {
		if Matches(ev, f) {
			matched = append(matched, ev)
		}
	}
	return matched
}

// matchesSport: case-insensitive exact match against the event sport.
func matchesSport(ev catalogue.Event, sports []string) bool {
	for _, s := range sports {
		if strings.EqualFold(s, string(ev.Sport)) {
			return true
		}
	}
	return false
}

// matchesTeams: a filter team matches if it appears as a substring of any
// participant name.
func matchesTeams(ev catalogue.Event, teams []string) bool {
	for _, want := range teams {
		w := strings.ToLower(want)
		if w == "" {
			continue
		}
		for _, have := range ev.Teams {
			if strings.Contains(strings.ToLower(have), w) {
				return true
			}
		}
	}
	return false
}

func matchesTournament(ev catalogue.Event, tournaments []string) bool {
	t := strings.ToLower(ev.Tournament)
	for _, want := range tournaments {
		w := strings.ToLower(want)
		if w != "" && strings.Contains(t, w) {
			return true
		}
	}
	return false
}

// matchesKeywords checks the event keywords, title and description; any one
// hit is sufficient.
func matchesKeywords(ev catalogue.Event, keywords []string) bool {
	title := strings.ToLower(ev.Title)
	desc := strings.ToLower(ev.Description)
	for _, want := range keywords {
		w := strings.ToLower(want)
		if w == "" {
			continue
		}
		for _, kw := range ev.Keywords {
			if strings.Contains(strings.ToLower(kw), w) {
				return true
			}
		}
		if strings.Contains(title, w) || strings.Contains(desc, w) {
			return true
		}
	}
	return false
}
