package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportscal/internal/catalogue"
)

func TestEmptyFilterMatchesEverything(t *testing.T) {
	events := catalogue.Events()
	require.NotEmpty(t, events)

	empty := Filter{}
	for _, ev := range events {
		assert.True(t, Matches(ev, empty), "event %q should pass an empty filter", ev.Title)
	}
	assert.Len(t, Apply(events, empty), len(events))
}

func TestMatchingIsUnionAcrossDimensions(t *testing.T) {
	events := catalogue.Events()

	tennisOnly := Apply(events, Filter{Sports: []string{"tennis"}})
	barcaOnly := Apply(events, Filter{Teams: []string{"Barcelona"}})
	combined := Apply(events, Filter{Sports: []string{"tennis"}, Teams: []string{"Barcelona"}})

	require.NotEmpty(t, tennisOnly)
	require.NotEmpty(t, barcaOnly)

	// The combined filter must return the union, never the intersection.
	// No catalogue event is both tennis and a Barcelona match, so an
	// AND interpretation would return nothing here.
	assert.Len(t, combined, len(tennisOnly)+len(barcaOnly))

	want := make(map[string]bool)
	for _, ev := range tennisOnly {
		want[ev.Title] = true
	}
	for _, ev := range barcaOnly {
		want[ev.Title] = true
	}
	for _, ev := range combined {
		assert.True(t, want[ev.Title], "unexpected event %q in combined result", ev.Title)
	}
}

func TestMatchingIsCaseInsensitive(t *testing.T) {
	events := catalogue.Events()

	lower := Apply(events, Filter{Sports: []string{"tennis"}})
	upper := Apply(events, Filter{Sports: []string{"TENNIS"}})
	assert.Equal(t, lower, upper)

	mixed := Apply(events, Filter{Teams: []string{"bArCeLoNa"}})
	assert.Equal(t, Apply(events, Filter{Teams: []string{"barcelona"}}), mixed)
}

func TestSportMatchIsExact(t *testing.T) {
	ev := catalogue.Event{Sport: catalogue.SportTennis}
	assert.True(t, Matches(ev, Filter{Sports: []string{"Tennis"}}))
	assert.False(t, Matches(ev, Filter{Sports: []string{"tennis cap"}}))
	assert.False(t, Matches(ev, Filter{Sports: []string{"ten"}}))
}

func TestTeamMatchIsSubstring(t *testing.T) {
	ev := catalogue.Event{Teams: []string{"FC Barcelona", "Girona FC"}}
	assert.True(t, Matches(ev, Filter{Teams: []string{"Barcelona"}}))
	assert.True(t, Matches(ev, Filter{Teams: []string{"girona"}}))
	assert.False(t, Matches(ev, Filter{Teams: []string{"Madrid"}}))
}

func TestKeywordsMatchTitleAndDescription(t *testing.T) {
	ev := catalogue.Event{
		Title:       "US Open Men's Final - Championship Match",
		Description: "Top players competing for the Grand Slam title",
		Keywords:    []string{"final"},
	}
	assert.True(t, Matches(ev, Filter{Keywords: []string{"final"}}), "keyword list hit")
	assert.True(t, Matches(ev, Filter{Keywords: []string{"championship"}}), "title hit")
	assert.True(t, Matches(ev, Filter{Keywords: []string{"grand slam"}}), "description hit")
	assert.False(t, Matches(ev, Filter{Keywords: []string{"quarterfinal"}}))
}

func TestTournamentMatchIsSubstring(t *testing.T) {
	ev := catalogue.Event{Tournament: "La Liga"}
	assert.True(t, Matches(ev, Filter{Tournaments: []string{"la liga"}}))
	assert.True(t, Matches(ev, Filter{Tournaments: []string{"Liga"}}))
	assert.False(t, Matches(ev, Filter{Tournaments: []string{"Champions League"}}))
}

func TestNormalizeFillsDefaults(t *testing.T) {
	var f Filter
	f.Normalize()

	assert.NotNil(t, f.Sports)
	assert.NotNil(t, f.Teams)
	assert.NotNil(t, f.Tournaments)
	assert.NotNil(t, f.Keywords)
	assert.Equal(t, DefaultFilename, f.Filename)
	assert.NotEmpty(t, f.Summary)
}

func TestIsEmptyIgnoresPresentationFields(t *testing.T) {
	f := Filter{Filename: "x", Summary: "y"}
	assert.True(t, f.IsEmpty())

	f.Keywords = []string{"final"}
	assert.False(t, f.IsEmpty())
}
