package convo

import (
	"strings"

	"sportscal/internal/filter"
)

// Preferences accumulates what the user has asked for across a whole
// conversation. Each turn may contribute a partial fragment; fields are
// merged by union so earlier requests are never forgotten.
type Preferences struct {
	Sports      []string `json:"sports"`
	Teams       []string `json:"teams"`
	Tournaments []string `json:"tournaments"`
	EventTypes  []string `json:"eventTypes"`
	Keywords    []string `json:"keywords"`
}

// Merge folds a new fragment into p, deduplicating case-insensitively.
func (p *Preferences) Merge(frag Preferences) {
	p.Sports = union(p.Sports, frag.Sports)
	p.Teams = union(p.Teams, frag.Teams)
	p.Tournaments = union(p.Tournaments, frag.Tournaments)
	p.EventTypes = union(p.EventTypes, frag.EventTypes)
	p.Keywords = union(p.Keywords, frag.Keywords)
}

// IsEmpty reports whether nothing has been collected yet.
func (p Preferences) IsEmpty() bool {
	return len(p.Sports) == 0 && len(p.Teams) == 0 &&
		len(p.Tournaments) == 0 && len(p.EventTypes) == 0 && len(p.Keywords) == 0
}

// ToFilter converts the accumulated preferences into a filter ready for
// rendering. Event types fold into keywords since both match the same
// event fields.
func (p *Preferences) ToFilter() filter.Filter {
	f := filter.Filter{
		Sports:      append([]string(nil), p.Sports...),
		Teams:       append([]string(nil), p.Teams...),
		Tournaments: append([]string(nil), p.Tournaments...),
		Keywords:    union(p.Keywords, p.EventTypes),
	}

	if len(p.Sports) > 0 {
		f.Filename = strings.ToLower(strings.Join(p.Sports, "_")) + "_events"
	}

	var parts []string
	if len(p.Sports) > 0 {
		parts = append(parts, strings.Join(p.Sports, ", ")+" events")
	}
	if len(p.Teams) > 0 {
		parts = append(parts, "featuring "+strings.Join(p.Teams, ", "))
	}
	if len(p.Tournaments) > 0 {
		parts = append(parts, "from "+strings.Join(p.Tournaments, ", "))
	}
	f.Summary = strings.Join(parts, " ")

	f.Normalize()
	return f
}

func union(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range append(append([]string{}, a...), b...) {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
