package events

import (
	"fmt"
	"strings"
)

// EventType es la categoría cerrada de un evento; solo afecta estilo (colores, ícono).
type EventType string

const (
	EventTypeAppointment  EventType = "APPOINTMENT"
	EventTypeGrooming     EventType = "GROOMING"
	EventTypePrescription EventType = "PRESCRIPTION"
	EventTypeOther        EventType = "OTHER"
)

func (t EventType) Known() bool {
	switch t {
	case EventTypeAppointment, EventTypeGrooming, EventTypePrescription, EventTypeOther:
		return true
	default:
		return false
	}
}

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusCompleted EventStatus = "completed"
)

// Toggled devuelve el otro estado. Solo hay dos.
func (s EventStatus) Toggled() EventStatus {
	if s == EventStatusCompleted {
		return EventStatusUpcoming
	}
	return EventStatusCompleted
}

func ParseStatus(s string) (EventStatus, error) {
	switch EventStatus(strings.ToLower(strings.TrimSpace(s))) {
	case EventStatusUpcoming:
		return EventStatusUpcoming, nil
	case EventStatusCompleted:
		return EventStatusCompleted, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, s)
	}
}

type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayEvening   TimeOfDay = "evening"

	// TimeOfDayUnscheduled agrupa eventos cuya hora no se pudo parsear.
	TimeOfDayUnscheduled TimeOfDay = "unscheduled"
)

// View son las pestañas de la agenda: Past / Today / Next.
type View string

const (
	ViewPast  View = "past"
	ViewToday View = "today"
	ViewNext  View = "next"
)

func ParseView(s string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case "", ViewToday:
		return ViewToday, nil
	case ViewPast:
		return ViewPast, nil
	case ViewNext:
		return ViewNext, nil
	default:
		return "", fmt.Errorf("%w: unknown view %q", ErrInvalidInput, s)
	}
}
