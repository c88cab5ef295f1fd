package customize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Step identifies where in the event-building flow a session is.
type Step string

const (
	StepSport    Step = "sport_selection"
	StepTeams    Step = "team_selection"
	StepDate     Step = "date_selection"
	StepTime     Step = "time_selection"
	StepLocation Step = "location_selection"
	StepMore     Step = "more_events"
)

// ErrNoEventsCreated reports a flow that finished without a single
// completed event. Callers treat it as retryable, not fatal.
var ErrNoEventsCreated = errors.New("customization finished with no events created")

// CustomEvent is a user-authored event built up over several messages.
// Once appended to a session's Events list it is never modified.
type CustomEvent struct {
	Sport       string   `json:"sport"`
	Title       string   `json:"title"`
	Teams       []string `json:"teams"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Time        string   `json:"time"` // HH:MM, 24-hour
	Location    string   `json:"location"`
	Description string   `json:"description"`
}

// Session holds one user's in-progress customization flow. It is stored
// as JSON so any Store backend can hold it.
type Session struct {
	UserID    string        `json:"user_id"`
	Step      Step          `json:"step"`
	Current   CustomEvent   `json:"current"`
	Events    []CustomEvent `json:"events"`
	LastInput string        `json:"last_input"`
	StartedAt time.Time     `json:"started_at"`
}

// Result is what one turn of the flow produces: the next prompt to show
// the user, and on completion the collected events.
type Result struct {
	Prompt string
	Done   bool
	Events []CustomEvent
}

var triggerWords = []string{"customize", "custom", "create event", "add event", "my own"}

// IsTrigger reports whether text asks to start the event-building flow.
func IsTrigger(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range triggerWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// Customizer drives the per-user event-building state machine. Callers
// must serialize messages per user id; Customizer assumes no two Advance
// calls for the same user run concurrently.
type Customizer struct {
	store Store
	log   *zap.Logger
	now   func() time.Time
}

func NewCustomizer(store Store, log *zap.Logger) *Customizer {
	return &Customizer{store: store, log: log, now: time.Now}
}

// Start opens a fresh session for the user, replacing any existing one.
func (c *Customizer) Start(ctx context.Context, userID string) (Result, error) {
	sess := &Session{
		UserID:    userID,
		Step:      StepSport,
		StartedAt: c.now(),
	}
	if err := c.store.Put(ctx, sess); err != nil {
		return Result{}, fmt.Errorf("saving session: %w", err)
	}
	c.log.Info("customization started", zap.String("user_id", userID))
	return Result{Prompt: PromptSport}, nil
}

// Active reports whether the user has a session in flight.
func (c *Customizer) Active(ctx context.Context, userID string) bool {
	_, err := c.store.Get(ctx, userID)
	return err == nil
}

// Advance feeds one message into the user's session and returns the next
// prompt. A message with no active session starts the flow over instead
// of failing. When the flow completes the session is deleted and the
// collected events are returned; ErrNoEventsCreated signals an empty run.
func (c *Customizer) Advance(ctx context.Context, userID, text string) (Result, error) {
	sess, err := c.store.Get(ctx, userID)
	if errors.Is(err, ErrSessionNotFound) {
		return c.Start(ctx, userID)
	}
	if err != nil {
		return Result{}, fmt.Errorf("loading session: %w", err)
	}

	text = strings.TrimSpace(text)
	sess.LastInput = text

	switch sess.Step {
	case StepSport:
		sess.Current.Sport = ParseSport(text)
		sess.Step = StepTeams
		return c.save(ctx, sess, PromptTeams)

	case StepTeams:
		teams := ExtractTeams(text)
		sess.Current.Teams = teams
		sess.Current.Title = EventTitle(teams)
		sess.Step = StepDate
		return c.save(ctx, sess, PromptDate)

	case StepDate:
		sess.Current.Date = ParseDate(text, c.now())
		sess.Step = StepTime
		return c.save(ctx, sess, PromptTime)

	case StepTime:
		sess.Current.Time = ParseTime(text)
		sess.Step = StepLocation
		return c.save(ctx, sess, PromptLocation)

	case StepLocation:
		loc := text
		if loc == "" {
			loc = "TBD"
		}
		sess.Current.Location = loc
		sess.Current.Description = fmt.Sprintf("%s event: %s", sess.Current.Sport, sess.Current.Title)
		sess.Events = append(sess.Events, sess.Current)
		sess.Current = CustomEvent{}
		sess.Step = StepMore
		return c.save(ctx, sess, fmt.Sprintf(PromptMore, len(sess.Events)))

	case StepMore:
		lower := strings.ToLower(text)
		if strings.Contains(lower, "yes") || strings.Contains(lower, "add") || strings.Contains(lower, "more") {
			sess.Step = StepSport
			return c.save(ctx, sess, PromptSport)
		}
		return c.finish(ctx, sess)

	default:
		// Unknown step means corrupted state; start over.
		c.log.Warn("unknown session step, restarting",
			zap.String("user_id", userID), zap.String("step", string(sess.Step)))
		return c.Start(ctx, userID)
	}
}

// Cancel drops the user's session if one exists.
func (c *Customizer) Cancel(ctx context.Context, userID string) error {
	return c.store.Delete(ctx, userID)
}

func (c *Customizer) save(ctx context.Context, sess *Session, prompt string) (Result, error) {
	if err := c.store.Put(ctx, sess); err != nil {
		return Result{}, fmt.Errorf("saving session: %w", err)
	}
	return Result{Prompt: prompt}, nil
}

func (c *Customizer) finish(ctx context.Context, sess *Session) (Result, error) {
	if err := c.store.Delete(ctx, sess.UserID); err != nil {
		c.log.Warn("deleting finished session", zap.String("user_id", sess.UserID), zap.Error(err))
	}
	if len(sess.Events) == 0 {
		return Result{Done: true}, ErrNoEventsCreated
	}
	c.log.Info("customization finished",
		zap.String("user_id", sess.UserID), zap.Int("events", len(sess.Events)))
	return Result{Done: true, Events: sess.Events}, nil
}
