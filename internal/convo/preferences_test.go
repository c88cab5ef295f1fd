package convo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeUnionsWithoutDuplicates(t *testing.T) {
	p := Preferences{Sports: []string{"tennis"}, Teams: []string{"Barcelona"}}

	p.Merge(Preferences{
		Sports:   []string{"Tennis", "football"},
		Teams:    []string{"barcelona", "Real Madrid"},
		Keywords: []string{"final"},
	})

	assert.Equal(t, []string{"tennis", "football"}, p.Sports)
	assert.Equal(t, []string{"Barcelona", "Real Madrid"}, p.Teams)
	assert.Equal(t, []string{"final"}, p.Keywords)
}

func TestMergeIgnoresBlankEntries(t *testing.T) {
	var p Preferences
	p.Merge(Preferences{Sports: []string{"", "  ", "tennis"}})
	assert.Equal(t, []string{"tennis"}, p.Sports)
}

func TestIsEmpty(t *testing.T) {
	var p Preferences
	assert.True(t, p.IsEmpty())

	p.Merge(Preferences{EventTypes: []string{"final"}})
	assert.False(t, p.IsEmpty())
}

func TestToFilterFoldsEventTypesIntoKeywords(t *testing.T) {
	p := Preferences{
		Sports:     []string{"tennis"},
		EventTypes: []string{"final"},
		Keywords:   []string{"semifinal"},
	}

	f := p.ToFilter()
	assert.Equal(t, []string{"tennis"}, f.Sports)
	assert.ElementsMatch(t, []string{"final", "semifinal"}, f.Keywords)
	assert.Equal(t, "tennis_events", f.Filename)
	assert.Contains(t, f.Summary, "tennis events")
}

func TestToFilterDefaultsWhenEmpty(t *testing.T) {
	var p Preferences
	f := p.ToFilter()

	assert.Equal(t, "sports_events", f.Filename)
	assert.NotEmpty(t, f.Summary)
	assert.True(t, f.IsEmpty(), "empty preferences produce a pass-through filter")
}

func TestToFilterSummaryMentionsTeamsAndTournaments(t *testing.T) {
	p := Preferences{
		Sports:      []string{"football"},
		Teams:       []string{"Barcelona"},
		Tournaments: []string{"La Liga"},
	}
	f := p.ToFilter()
	assert.Contains(t, f.Summary, "Barcelona")
	assert.Contains(t, f.Summary, "La Liga")
}
