package events

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// FullDateLayout es el formato de Event.FullDate ("March 24, 2025").
const FullDateLayout = "January 2, 2006"

var (
	ErrMalformedDate   = errors.New("malformed date")
	ErrUnknownRepeat   = errors.New("unknown repeat rule")
	ErrUnknownReminder = errors.New("unknown reminder")

	everyNRe         = regexp.MustCompile(`^every\s+(\d+)\s+(day|week|month|year)s?$`)
	reminderOffsetRe = regexp.MustCompile(`^(\d+)\s+(minute|min|hour|day|week)s?\s+before$`)
	noneWords        = map[string]struct{}{"": {}, "none": {}, "never": {}, "off": {}}
)

// StartsAt combina FullDate + Time en loc.
func StartsAt(e Event, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	d, err := eventDay(e, loc)
	if err != nil {
		return time.Time{}, err
	}
	h, m, err := ParseClock(e.Time)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), h, m, 0, 0, loc), nil
}

func eventDay(e Event, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(FullDateLayout, strings.TrimSpace(e.FullDate), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, e.FullDate)
	}
	return d, nil
}

// dayIndex compara días calendario en loc.
func dayIndex(t time.Time, loc *time.Location) int {
	y, m, d := t.In(loc).Date()
	return y*10000 + int(m)*100 + d
}

// InView ubica un evento en Past/Today/Next respecto de now. Solo mira la
// fecha: un evento con hora ilegible igual cae en su día.
func InView(e Event, v View, now time.Time, loc *time.Location) (bool, error) {
	if loc == nil {
		loc = time.Local
	}
	day, err := eventDay(e, loc)
	if err != nil {
		return false, err
	}
	ev, today := dayIndex(day, loc), dayIndex(now, loc)
	switch v {
	case ViewPast:
		return ev < today, nil
	case ViewToday:
		return ev == today, nil
	case ViewNext:
		return ev > today, nil
	default:
		return false, fmt.Errorf("%w: unknown view %q", ErrInvalidInput, v)
	}
}

// Recurrence traduce Event.Repeat a opciones de RRULE.
// Devuelve (nil, nil) si el evento no se repite.
func Recurrence(repeat string, start time.Time) (*rrule.ROption, error) {
	s := strings.ToLower(strings.Join(strings.Fields(repeat), " "))
	if _, off := noneWords[s]; off || s == "once" {
		return nil, nil
	}

	var freq rrule.Frequency
	interval := 1
	switch s {
	case "daily", "every day":
		freq = rrule.DAILY
	case "weekly", "every week":
		freq = rrule.WEEKLY
	case "monthly", "every month":
		freq = rrule.MONTHLY
	case "yearly", "annually", "every year":
		freq = rrule.YEARLY
	default:
		m := everyNRe.FindStringSubmatch(s)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRepeat, repeat)
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRepeat, repeat)
		}
		interval = n
		switch m[2] {
		case "day":
			freq = rrule.DAILY
		case "week":
			freq = rrule.WEEKLY
		case "month":
			freq = rrule.MONTHLY
		case "year":
			freq = rrule.YEARLY
		}
	}

	return &rrule.ROption{
		Freq:     freq,
		Interval: interval,
		Dtstart:  start,
	}, nil
}

// NextOccurrence es la primera ocurrencia estrictamente posterior a after.
// Para eventos sin repetición es el propio inicio si todavía no pasó.
func NextOccurrence(e Event, after time.Time, loc *time.Location) (time.Time, bool) {
	start, err := StartsAt(e, loc)
	if err != nil {
		return time.Time{}, false
	}
	opt, err := Recurrence(e.Repeat, start)
	if err != nil || opt == nil {
		if start.After(after) {
			return start, true
		}
		return time.Time{}, false
	}
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return time.Time{}, false
	}
	next := r.After(after, false)
	return next, !next.IsZero()
}

// ReminderOffset parsea "15 minutes before", "1 hour before", "1 day before".
// Devuelve (0, false, nil) si el evento no tiene recordatorio.
func ReminderOffset(reminder string) (time.Duration, bool, error) {
	s := strings.ToLower(strings.Join(strings.Fields(reminder), " "))
	if _, off := noneWords[s]; off {
		return 0, false, nil
	}
	if s == "at time of event" || s == "at start" {
		return 0, true, nil
	}

	m := reminderOffsetRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false, fmt.Errorf("%w: %q", ErrUnknownReminder, reminder)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrUnknownReminder, reminder)
	}

	unit := time.Minute
	switch m[2] {
	case "hour":
		unit = time.Hour
	case "day":
		unit = 24 * time.Hour
	case "week":
		unit = 7 * 24 * time.Hour
	}
	return time.Duration(n) * unit, true, nil
}
