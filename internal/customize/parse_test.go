package customize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var parseNow = time.Date(2025, time.September, 1, 10, 0, 0, 0, time.UTC)

func TestParseDate(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"today", "2025-09-01"},
		{"tomorrow", "2025-09-02"},
		{"next week", "2025-09-08"},
		{"it's tomorrow actually", "2025-09-02"},
		{"2024-12-25", "2024-12-25"},
		{"on 2024-12-25 please", "2024-12-25"},
		{"25/12/2024", "2024-12-25"},
		{"25-12-2024", "2024-12-25"},
		{"gibberish", "2025-09-02"},
		{"", "2025-09-02"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDate(tt.text, parseNow))
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"7pm", "19:00"},
		{"7 pm", "19:00"},
		{"7am", "07:00"},
		{"12am", "00:00"},
		{"12pm", "12:00"},
		{"19:30", "19:30"},
		{"7:30pm", "19:30"},
		{"7:30 pm", "19:30"},
		{"12:15am", "00:15"},
		{"the game is at 7pm", "19:00"},
		{"starts around 7:30pm I think", "19:30"},
		{"maybe 9 pm works for us", "21:00"},
		{"7pm!", "19:00"},
		{"around 9:00", "09:00"},
		{"nonsense", "20:00"},
		{"", "20:00"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTime(tt.text))
		})
	}
}

func TestParseSport(t *testing.T) {
	assert.Equal(t, "tennis", ParseSport("Tennis please"))
	assert.Equal(t, "football", ParseSport("soccer"))
	assert.Equal(t, "football", ParseSport("football"))
	assert.Equal(t, "basketball", ParseSport("I want basketball"))
	assert.Equal(t, "other", ParseSport("curling"))
}

func TestExtractTeamsKnownNames(t *testing.T) {
	assert.Equal(t, []string{"Djokovic", "Alcaraz"}, ExtractTeams("djokovic vs alcaraz"))
	assert.Equal(t, []string{"Barcelona"}, ExtractTeams("just barcelona"))
	assert.Equal(t, []string{"Real Madrid", "Lakers"}, ExtractTeams("real madrid then lakers after"))
}

func TestExtractTeamsCapitalizedFallback(t *testing.T) {
	assert.Equal(t, []string{"Hapoel", "Maccabi"}, ExtractTeams("Hapoel against Maccabi tonight"))
	assert.Empty(t, ExtractTeams("nobody in particular"))
}

func TestExtractTeamsOrderedByAppearance(t *testing.T) {
	assert.Equal(t, []string{"Alcaraz", "Djokovic"}, ExtractTeams("alcaraz plays djokovic"))
}

func TestEventTitle(t *testing.T) {
	assert.Equal(t, "Djokovic vs Alcaraz", EventTitle([]string{"Djokovic", "Alcaraz"}))
	assert.Equal(t, "Barcelona", EventTitle([]string{"Barcelona"}))
	assert.Equal(t, "Sports Event", EventTitle(nil))
}
