package calendar

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"sportscal/internal/catalogue"
	"sportscal/internal/customize"
	"sportscal/internal/filter"
)

const productID = "-//sportscal//Sports Calendar Bot//EN"

// ErrNoEvents reports that nothing survived filtering, so there is no
// calendar to produce. Surfaced to the user as "adjust your request".
var ErrNoEvents = errors.New("no events to render")

// Render serializes the catalogue events matching f into an iCalendar
// payload. A nil or empty filter renders the whole catalogue.
func Render(events []catalogue.Event, f *filter.Filter) ([]byte, error) {
	if f != nil {
		events = filter.Apply(events, *f)
	}
	if len(events) == 0 {
		return nil, ErrNoEvents
	}

	cal := newCalendar()
	for _, ev := range events {
		if !ev.Start.Before(ev.End) {
			return nil, fmt.Errorf("event %q: start %s is not before end %s",
				ev.Title, ev.Start.Format(time.RFC3339), ev.End.Format(time.RFC3339))
		}
		addEvent(cal, ev)
	}
	return serialize(cal)
}

// RenderCustom serializes user-authored events. Each gets a fixed
// one-hour duration, a confirmed status and a reminder an hour before
// start.
func RenderCustom(events []customize.CustomEvent) ([]byte, error) {
	if len(events) == 0 {
		return nil, ErrNoEvents
	}

	cal := newCalendar()
	for _, ce := range events {
		start, err := time.Parse("2006-01-02 15:04", ce.Date+" "+ce.Time)
		if err != nil {
			return nil, fmt.Errorf("event %q: bad date/time %q %q: %w", ce.Title, ce.Date, ce.Time, err)
		}
		start = start.UTC()
		addEvent(cal, catalogue.Event{
			Title:          ce.Title,
			Description:    ce.Description,
			Location:       ce.Location,
			Start:          start,
			End:            start.Add(time.Hour),
			Categories:     []string{"Sports", ce.Sport},
			Status:         catalogue.StatusConfirmed,
			ReminderOffset: time.Hour,
		})
	}
	return serialize(cal)
}

func newCalendar() *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	return cal
}

func addEvent(cal *ics.Calendar, ev catalogue.Event) {
	e := cal.AddEvent(uuid.NewString() + "@sportscal")
	e.SetCreatedTime(time.Now().UTC())
	e.SetDtStampTime(time.Now().UTC())
	e.SetStartAt(ev.Start)
	e.SetEndAt(ev.End)
	e.SetSummary(ev.Title)
	if ev.Description != "" {
		e.SetDescription(ev.Description)
	}
	if ev.Location != "" {
		e.SetLocation(ev.Location)
	}
	if len(ev.Categories) > 0 {
		e.SetProperty(ics.ComponentPropertyCategories, strings.Join(ev.Categories, ","))
	}

	switch ev.Status {
	case catalogue.StatusTentative:
		e.SetStatus(ics.ObjectStatusTentative)
	default:
		e.SetStatus(ics.ObjectStatusConfirmed)
	}

	if ev.ReminderOffset > 0 {
		a := e.AddAlarm()
		a.SetAction(ics.ActionDisplay)
		a.SetTrigger(triggerFor(ev.ReminderOffset))
		a.SetProperty(ics.ComponentPropertyDescription, "Reminder: "+ev.Title)
	}
}

// triggerFor formats a reminder offset as a negative ISO 8601 duration.
func triggerFor(d time.Duration) string {
	if d%time.Hour == 0 {
		return fmt.Sprintf("-PT%dH", int(d.Hours()))
	}
	return fmt.Sprintf("-PT%dM", int(d.Minutes()))
}

func serialize(cal *ics.Calendar) ([]byte, error) {
	var buf bytes.Buffer
	if err := cal.SerializeTo(&buf); err != nil {
		return nil, fmt.Errorf("serializing calendar: %w", err)
	}
	return buf.Bytes(), nil
}
