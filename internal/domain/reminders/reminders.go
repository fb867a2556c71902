package reminders

import (
	"time"

	"pet-care-companion/internal/domain/events"
)

// Reminder es un aviso a disparar para una ocurrencia concreta de un evento.
type Reminder struct {
	Event    events.Event
	FireAt   time.Time
	StartsAt time.Time // ocurrencia (para eventos repetidos, no el primer inicio)
}

// Due devuelve los recordatorios cuyo instante cae en (from, to].
// Eventos completados, sin reminder o con reminder ilegible se ignoran.
// Para eventos repetidos se usa la ocurrencia que corresponde a la ventana.
func Due(evs []events.Event, from, to time.Time, loc *time.Location) []Reminder {
	out := make([]Reminder, 0)
	if !to.After(from) {
		return out
	}
	for _, e := range evs {
		if e.Completed() {
			continue
		}
		off, ok, err := events.ReminderOffset(e.Reminder)
		if err != nil || !ok {
			continue
		}
		// fire = start - off ∈ (from, to]  <=>  start ∈ (from+off, to+off]
		start, found := events.NextOccurrence(e, from.Add(off), loc)
		if !found || start.After(to.Add(off)) {
			continue
		}
		out = append(out, Reminder{
			Event:    e,
			FireAt:   start.Add(-off),
			StartsAt: start,
		})
	}
	return out
}
