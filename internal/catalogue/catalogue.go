package catalogue

import "time"

// Sport classifies a catalogue event
type Sport string

const (
	SportTennis     Sport = "tennis"
	SportFootball   Sport = "football"
	SportBasketball Sport = "basketball"
	SportOther      Sport = "other"
)

// Status is the ICS-level confirmation state of an event
type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusTentative Status = "TENTATIVE"
)

// Event is a seeded sports fixture. The catalogue is built once at process
// start and is read-only afterwards; callers must not mutate returned events.
type Event struct {
	Title          string
	Description    string
	Location       string
	Start          time.Time
	End            time.Time
	Categories     []string
	Sport          Sport
	Tournament     string
	Teams          []string
	Keywords       []string
	Status         Status
	ReminderOffset time.Duration
}

func utc(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

var seed = []Event{
	{
		Title:          "US Open Men's Semifinal 1 - Alcaraz vs Medvedev",
		Description:    "US Open Tennis Championship - Men's Singles Semifinal\nArthur Ashe Stadium",
		Location:       "Arthur Ashe Stadium, Flushing Meadows, New York",
		Start:          utc(2024, time.September, 6, 19, 0),
		End:            utc(2024, time.September, 6, 22, 0),
		Categories:     []string{"Tennis", "US Open"},
		Sport:          SportTennis,
		Tournament:     "US Open",
		Teams:          []string{"Alcaraz", "Medvedev"},
		Keywords:       []string{"semifinal"},
		Status:         StatusConfirmed,
		ReminderOffset: time.Hour,
	},
	{
		Title:          "US Open Men's Semifinal 2 - Djokovic vs Fritz",
		Description:    "US Open Tennis Championship - Men's Singles Semifinal\nArthur Ashe Stadium",
		Location:       "Arthur Ashe Stadium, Flushing Meadows, New York",
		Start:          utc(2024, time.September, 7, 19, 0),
		End:            utc(2024, time.September, 7, 22, 0),
		Categories:     []string{"Tennis", "US Open"},
		Sport:          SportTennis,
		Tournament:     "US Open",
		Teams:          []string{"Djokovic", "Fritz"},
		Keywords:       []string{"semifinal"},
		Status:         StatusConfirmed,
		ReminderOffset: time.Hour,
	},
	{
		Title:          "US Open Men's Final - Championship Match",
		Description:    "US Open Tennis Championship - Men's Singles Final\nArthur Ashe Stadium\nTop players competing for the Grand Slam title",
		Location:       "Arthur Ashe Stadium, Flushing Meadows, New York",
		Start:          utc(2024, time.September, 8, 19, 0),
		End:            utc(2024, time.September, 8, 22, 0),
		Categories:     []string{"Tennis", "US Open"},
		Sport:          SportTennis,
		Tournament:     "US Open",
		Teams:          nil,
		Keywords:       []string{"final", "championship"},
		Status:         StatusConfirmed,
		ReminderOffset: time.Hour,
	},
	{
		Title:          "Real Madrid vs Athletic Bilbao",
		Description:    "La Liga - Spanish Football League\nJornada 4\nSantiago Bernabéu Stadium",
		Location:       "Santiago Bernabéu Stadium, Madrid, Spain",
		Start:          utc(2024, time.September, 7, 20, 0),
		End:            utc(2024, time.September, 7, 22, 0),
		Categories:     []string{"Football", "La Liga", "Real Madrid"},
		Sport:          SportFootball,
		Tournament:     "La Liga",
		Teams:          []string{"Real Madrid", "Athletic Bilbao"},
		Keywords:       nil,
		Status:         StatusConfirmed,
		ReminderOffset: time.Hour,
	},
	{
		Title:          "Real Madrid vs Villarreal CF",
		Description:    "La Liga - Spanish Football League\nJornada 7\nSantiago Bernabéu Stadium",
		Location:       "Santiago Bernabéu Stadium, Madrid, Spain",
		Start:          utc(2024, time.September, 28, 20, 0),
		End:            utc(2024, time.September, 28, 22, 0),
		Categories:     []string{"Football", "La Liga", "Real Madrid"},
		Sport:          SportFootball,
		Tournament:     "La Liga",
		Teams:          []string{"Real Madrid", "Villarreal CF"},
		Keywords:       nil,
		Status:         StatusConfirmed,
		ReminderOffset: time.Hour,
	},
	{
		Title:          "FC Barcelona vs Girona FC",
		Description:    "La Liga - Spanish Football League\nJornada 5\nCamp Nou Stadium",
		Location:       "Camp Nou, Barcelona, Spain",
		Start:          utc(2024, time.September, 15, 20, 0),
		End:            utc(2024, time.September, 15, 22, 0),
		Categories:     []string{"Football", "La Liga", "Barcelona"},
		Sport:          SportFootball,
		Tournament:     "La Liga",
		Teams:          []string{"FC Barcelona", "Girona FC"},
		Keywords:       nil,
		Status:         StatusConfirmed,
		ReminderOffset: time.Hour,
	},
	{
		Title:          "FC Barcelona vs Sevilla FC",
		Description:    "La Liga - Spanish Football League\nJornada 8\nCamp Nou Stadium",
		Location:       "Camp Nou, Barcelona, Spain",
		Start:          utc(2024, time.October, 5, 20, 0),
		End:            utc(2024, time.October, 5, 22, 0),
		Categories:     []string{"Football", "La Liga", "Barcelona"},
		Sport:          SportFootball,
		Tournament:     "La Liga",
		Teams:          []string{"FC Barcelona", "Sevilla FC"},
		Keywords:       nil,
		Status:         StatusConfirmed,
		ReminderOffset: time.Hour,
	},
	{
		Title:          "Atlético Madrid vs Real Sociedad",
		Description:    "La Liga - Spanish Football League\nJornada 6\nMetropolitano Stadium",
		Location:       "Wanda Metropolitano, Madrid, Spain",
		Start:          utc(2024, time.September, 22, 18, 0),
		End:            utc(2024, time.September, 22, 20, 0),
		Categories:     []string{"Football", "La Liga", "Atletico Madrid"},
		Sport:          SportFootball,
		Tournament:     "La Liga",
		Teams:          []string{"Atletico Madrid", "Real Sociedad"},
		Keywords:       nil,
		Status:         StatusConfirmed,
		ReminderOffset: time.Hour,
	},
	{
		Title:          "Atlético Madrid vs Real Betis",
		Description:    "La Liga - Spanish Football League\nJornada 9\nMetropolitano Stadium",
		Location:       "Wanda Metropolitano, Madrid, Spain",
		Start:          utc(2024, time.October, 12, 18, 0),
		End:            utc(2024, time.October, 12, 20, 0),
		Categories:     []string{"Football", "La Liga", "Atletico Madrid"},
		Sport:          SportFootball,
		Tournament:     "La Liga",
		Teams:          []string{"Atletico Madrid", "Real Betis"},
		Keywords:       nil,
		Status:         StatusConfirmed,
		ReminderOffset: time.Hour,
	},
}

// Events returns the seed catalogue. The returned slice is shared; treat it
// as read-only.
func Events() []Event {
	return seed
}
