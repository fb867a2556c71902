package events

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedTime = errors.New("malformed time of day")

// ParseClock acepta "3:13 PM", "11:00am", "12:05 AM" o "17:30" y devuelve
// hora (0-23) y minutos. Cualquier otra forma es ErrMalformedTime.
func ParseClock(s string) (hour, minute int, err error) {
	raw := s
	s = strings.ToUpper(strings.TrimSpace(s))

	meridiem := ""
	if strings.HasSuffix(s, "AM") || strings.HasSuffix(s, "PM") {
		meridiem = s[len(s)-2:]
		s = strings.TrimSpace(s[:len(s)-2])
	}

	hh, mm, ok := strings.Cut(s, ":")
	if !ok || hh == "" || len(mm) != 2 || !digits(hh) || !digits(mm) {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, raw)
	}

	hour, err = strconv.Atoi(hh)
	if err != nil || len(hh) > 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, raw)
	}
	minute, err = strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, raw)
	}

	switch meridiem {
	case "":
		if hour < 0 || hour > 23 {
			return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, raw)
		}
	default:
		if hour < 1 || hour > 12 {
			return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, raw)
		}
		hour %= 12
		if meridiem == "PM" {
			hour += 12
		}
	}

	return hour, minute, nil
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// BucketForHour: mañana <12, tarde 12-16, noche >=17.
func BucketForHour(hour int) TimeOfDay {
	switch {
	case hour < 12:
		return TimeOfDayMorning
	case hour < 17:
		return TimeOfDayAfternoon
	default:
		return TimeOfDayEvening
	}
}

// BucketFor clasifica un string de hora. No hay bucket por defecto:
// una hora ilegible es ErrMalformedTime y el caller decide.
func BucketFor(clock string) (TimeOfDay, error) {
	h, _, err := ParseClock(clock)
	if err != nil {
		return "", err
	}
	return BucketForHour(h), nil
}
