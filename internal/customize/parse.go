package customize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// knownNames covers teams and players users mention most often. Matched by
// substring so "the Lakers game" still hits "Lakers".
var knownNames = []string{
	"Djokovic", "Alcaraz", "Medvedev", "Sinner", "Nadal", "Federer", "Fritz",
	"Barcelona", "Real Madrid", "Atletico Madrid", "Bayern Munich",
	"Manchester United", "Manchester City", "Liverpool", "Chelsea", "Arsenal",
	"Lakers", "Celtics", "Warriors", "Bulls",
}

var sportNames = []string{
	"tennis", "football", "soccer", "basketball", "hockey",
	"baseball", "golf", "volleyball", "rugby",
}

// ParseSport maps free text onto a fixed sport label. Unrecognized input
// is classified as "other" rather than rejected.
func ParseSport(text string) string {
	lower := strings.ToLower(text)
	for _, s := range sportNames {
		if strings.Contains(lower, s) {
			if s == "soccer" {
				return "football"
			}
			return s
		}
	}
	return "other"
}

// ExtractTeams pulls up to two participant names out of free text. Known
// names win; otherwise capitalized tokens longer than two runes are taken
// in order of appearance.
func ExtractTeams(text string) []string {
	lower := strings.ToLower(text)

	type hit struct {
		pos  int
		name string
	}
	var hits []hit
	for _, name := range knownNames {
		if idx := strings.Index(lower, strings.ToLower(name)); idx >= 0 {
			hits = append(hits, hit{pos: idx, name: name})
		}
	}
	if len(hits) > 0 {
		sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
		teams := make([]string, 0, 2)
		for _, h := range hits {
			teams = append(teams, h.name)
			if len(teams) == 2 {
				break
			}
		}
		return teams
	}

	var teams []string
	for _, tok := range strings.Fields(text) {
		tok = strings.Trim(tok, ".,!?;:\"'")
		if len([]rune(tok)) <= 2 {
			continue
		}
		if !unicode.IsUpper([]rune(tok)[0]) {
			continue
		}
		teams = append(teams, tok)
		if len(teams) == 2 {
			break
		}
	}
	return teams
}

// EventTitle builds a display title from the extracted team names.
func EventTitle(teams []string) string {
	switch len(teams) {
	case 2:
		return fmt.Sprintf("%s vs %s", teams[0], teams[1])
	case 1:
		return teams[0]
	default:
		return "Sports Event"
	}
}

// ParseDate turns free text into an ISO calendar date. Relative anchors
// ("today", "tomorrow", "next week") are resolved against now; explicit
// dates are accepted as YYYY-MM-DD, DD/MM/YYYY or DD-MM-YYYY. Anything
// else defaults to tomorrow, so the flow can always continue.
func ParseDate(text string, now time.Time) string {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "today"):
		return now.Format("2006-01-02")
	case strings.Contains(lower, "tomorrow"):
		return now.AddDate(0, 0, 1).Format("2006-01-02")
	case strings.Contains(lower, "next week"):
		return now.AddDate(0, 0, 7).Format("2006-01-02")
	}

	for _, tok := range strings.Fields(text) {
		if d, err := time.Parse("2006-01-02", tok); err == nil {
			return d.Format("2006-01-02")
		}
		if d, err := time.Parse("02/01/2006", tok); err == nil {
			return d.Format("2006-01-02")
		}
		if d, err := time.Parse("02-01-2006", tok); err == nil {
			return d.Format("2006-01-02")
		}
	}

	return now.AddDate(0, 0, 1).Format("2006-01-02")
}

// ParseTime turns free text into a 24-hour "HH:MM" string. Handles
// "HH:MM am/pm", "N am/pm" and bare "HH:MM", each anywhere in the
// sentence; everything else defaults to 20:00.
func ParseTime(text string) string {
	tokens := strings.Fields(strings.ToLower(text))
	for i, tok := range tokens {
		tokens[i] = strings.Trim(tok, ".,!?;:\"'()")
	}

	if h, m, ok := scanMeridiem(tokens, true); ok {
		return fmt.Sprintf("%02d:%02d", h, m)
	}
	if h, m, ok := scanMeridiem(tokens, false); ok {
		return fmt.Sprintf("%02d:%02d", h, m)
	}
	if h, m, ok := scanClock(tokens); ok {
		return fmt.Sprintf("%02d:%02d", h, m)
	}

	return "20:00"
}

// scanMeridiem finds a clock ("7:30pm", "7:30 pm") or, with wantClock
// false, a bare hour ("7pm", "7 pm") carrying an am/pm marker, attached
// to the token or as the following token.
func scanMeridiem(tokens []string, wantClock bool) (int, int, bool) {
	for i, tok := range tokens {
		head, mer := tok, ""
		switch {
		case strings.HasSuffix(tok, "am"), strings.HasSuffix(tok, "pm"):
			head, mer = tok[:len(tok)-2], tok[len(tok)-2:]
		case i+1 < len(tokens) && (tokens[i+1] == "am" || tokens[i+1] == "pm"):
			mer = tokens[i+1]
		}
		if mer == "" || head == "" {
			continue
		}

		var h, m int
		if wantClock {
			var ok bool
			h, m, ok = splitClock(head)
			if !ok {
				continue
			}
		} else {
			n, err := strconv.Atoi(head)
			if err != nil {
				continue
			}
			h = n
		}
		if h < 1 || h > 12 {
			continue
		}
		return applyMeridiem(h, mer == "pm"), m, true
	}
	return 0, 0, false
}

// scanClock finds a bare "19:30" token.
func scanClock(tokens []string) (int, int, bool) {
	for _, tok := range tokens {
		if h, m, ok := splitClock(tok); ok {
			return h, m, true
		}
	}
	return 0, 0, false
}

func splitClock(s string) (int, int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

func applyMeridiem(h int, pm bool) int {
	if pm && h != 12 {
		return h + 12
	}
	if !pm && h == 12 {
		return 0
	}
	return h
}
