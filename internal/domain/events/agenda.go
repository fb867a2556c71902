package events

import (
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Criteria combina tres filtros con AND. Cada uno vacío = sin restricción.
type Criteria struct {
	Types         []EventType
	Pets          []string
	HideCompleted bool
}

func (c Criteria) Empty() bool {
	return len(c.Types) == 0 && len(c.Pets) == 0 && !c.HideCompleted
}

func (c Criteria) Matches(e Event) bool {
	if len(c.Types) > 0 && !slices.Contains(c.Types, e.Type) {
		return false
	}
	if len(c.Pets) > 0 && !slices.Contains(c.Pets, e.Pet) {
		return false
	}
	if c.HideCompleted && e.Status == EventStatusCompleted {
		return false
	}
	return true
}

// Filter es estable: conserva el orden de entrada.
func Filter(events []Event, c Criteria) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if c.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// ToggleCompletion devuelve una copia con el status del evento id invertido.
// El slice de entrada no se modifica. Si no hay match, la copia es igual a la entrada.
func ToggleCompletion(events []Event, id string) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = out[i].Status.Toggled()
		}
	}
	return out
}

func FindByID(events []Event, id string) (Event, bool) {
	for _, e := range events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

type Group struct {
	TimeOfDay TimeOfDay
	Label     string
	Events    []Event
}

var groupOrder = []TimeOfDay{TimeOfDayMorning, TimeOfDayAfternoon, TimeOfDayEvening}

// GroupByTimeOfDay devuelve siempre Morning/Afternoon/Evening (aunque vacíos)
// y Unscheduled solo si hay eventos con hora ilegible.
func GroupByTimeOfDay(events []Event) []Group {
	buckets := map[TimeOfDay][]Event{}
	for _, e := range events {
		tod, err := BucketFor(e.Time)
		if err != nil {
			tod = TimeOfDayUnscheduled
		}
		buckets[tod] = append(buckets[tod], e)
	}

	order := groupOrder
	if len(buckets[TimeOfDayUnscheduled]) > 0 {
		order = append(append([]TimeOfDay{}, groupOrder...), TimeOfDayUnscheduled)
	}

	title := cases.Title(language.English)
	out := make([]Group, 0, len(order))
	for _, tod := range order {
		evs := buckets[tod]
		if evs == nil {
			evs = []Event{}
		}
		out = append(out, Group{
			TimeOfDay: tod,
			Label:     title.String(string(tod)),
			Events:    evs,
		})
	}
	return out
}
