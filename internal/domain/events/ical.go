package events

import (
	"context"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

const (
	calendarProductID = "-//pet-care-companion//agenda//EN"
	defaultDuration   = time.Hour
)

// Calendar exporta la agenda como iCalendar. Eventos con fecha u hora ilegible
// se omiten (y se loguean); repeat y reminder se traducen a RRULE y VALARM.
func (s *Service) Calendar(ctx context.Context, c Criteria) (string, error) {
	evs, err := s.List(ctx, c)
	if err != nil {
		return "", err
	}
	cal, skipped := BuildCalendar(evs, s.loc, s.now())
	for id, err := range skipped {
		s.log.Warn("event skipped from calendar export", map[string]any{"event_id": id, "error": err.Error()})
	}
	return cal.Serialize(), nil
}

func BuildCalendar(evs []Event, loc *time.Location, stamp time.Time) (*ics.Calendar, map[string]error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)

	skipped := map[string]error{}
	for _, e := range evs {
		start, err := StartsAt(e, loc)
		if err != nil {
			skipped[e.ID] = err
			continue
		}

		ve := cal.AddEvent(e.ID + "@pet-care-companion")
		ve.SetDtStampTime(stamp.UTC())
		ve.SetStartAt(start.UTC())
		ve.SetEndAt(start.Add(defaultDuration).UTC())
		ve.SetSummary(summary(e))
		if e.Location != "" {
			ve.SetLocation(e.Location)
		}
		if desc := description(e); desc != "" {
			ve.SetDescription(desc)
		}
		ve.SetProperty(ics.ComponentPropertyCategories, string(e.Type))
		if e.Completed() {
			ve.SetProperty(ics.ComponentProperty("X-PETCARE-STATUS"), string(EventStatusCompleted))
		}

		if opt, err := Recurrence(e.Repeat, start); err != nil {
			skipped[e.ID] = err
		} else if opt != nil {
			ve.AddProperty(ics.ComponentPropertyRrule, opt.RRuleString())
		}

		if off, ok, err := ReminderOffset(e.Reminder); err == nil && ok {
			alarm := ve.AddAlarm()
			alarm.SetAction(ics.ActionDisplay)
			alarm.SetTrigger(triggerFor(off))
			alarm.SetProperty(ics.ComponentPropertyDescription, summary(e))
		}
	}
	return cal, skipped
}

func summary(e Event) string {
	if strings.TrimSpace(e.Pet) == "" {
		return e.Title
	}
	return e.Title + " (" + e.Pet + ")"
}

func description(e Event) string {
	parts := make([]string, 0, 2)
	if e.Description != "" {
		parts = append(parts, e.Description)
	}
	if e.Notes != "" {
		parts = append(parts, "Notes: "+e.Notes)
	}
	return strings.Join(parts, "\n\n")
}

// triggerFor arma un TRIGGER relativo negativo (RFC 5545 dur-value).
func triggerFor(off time.Duration) string {
	if off <= 0 {
		return "PT0M"
	}
	day := 24 * time.Hour
	switch {
	case off%day == 0:
		return fmt.Sprintf("-P%dD", off/day)
	case off%time.Hour == 0:
		return fmt.Sprintf("-PT%dH", off/time.Hour)
	default:
		return fmt.Sprintf("-PT%dM", off/time.Minute)
	}
}
