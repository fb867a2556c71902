package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-care-companion/internal/domain/pets"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Get("/events.ics", calendarHandler(svc))

	r.Route("/events", func(er chi.Router) {
		er.Get("/", listEventsHandler(svc))
		er.Get("/{eventID}", getEventHandler(svc))

		// Marcar / desmarcar como completado
		er.Post("/{eventID}/toggle", toggleEventHandler(svc))
	})

	r.Get("/agenda", agendaHandler(svc))
	r.Get("/home", homeHandler(svc, petsSvc))
}

type attachmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type styleResponse struct {
	Colors     [2]string `json:"colors"`
	IconFamily string    `json:"icon_family"`
	Icon       string    `json:"icon"`
}

// eventResponse representa un evento de cuidado devuelto por la API,
// con el estilo y el momento del día ya derivados.
type eventResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Pet         string               `json:"pet"`
	Time        string               `json:"time"`
	Date        string               `json:"date"`
	FullDate    string               `json:"full_date"`
	Type        EventType            `json:"type" enums:"APPOINTMENT,GROOMING,PRESCRIPTION,OTHER"`
	Status      EventStatus          `json:"status" enums:"upcoming,completed"`
	Description string               `json:"description"`
	Location    string               `json:"location"`
	Notes       string               `json:"notes"`
	Reminder    string               `json:"reminder"`
	Repeat      string               `json:"repeat"`
	Color       string               `json:"color,omitempty"`
	PetImage    string               `json:"pet_image,omitempty"`
	Attachments []attachmentResponse `json:"attachments"`

	Style          styleResponse `json:"style"`
	TimeOfDay      TimeOfDay     `json:"time_of_day,omitempty"`
	StartsAt       *time.Time    `json:"starts_at,omitempty"`
	NextOccurrence *time.Time    `json:"next_occurrence,omitempty"`
}

type groupResponse struct {
	TimeOfDay TimeOfDay       `json:"time_of_day"`
	Label     string          `json:"label"`
	Events    []eventResponse `json:"events"`
}

type agendaResponse struct {
	View      View            `json:"view" enums:"past,today,next"`
	Date      string          `json:"date"` // YYYY-MM-DD
	Total     int             `json:"total"`
	HasMissed bool            `json:"has_missed"`
	Groups    []groupResponse `json:"groups"`
}

type homeResponse struct {
	Date      string             `json:"date"`
	Events    []eventResponse    `json:"events"`
	Pets      []pets.PetResponse `json:"pets"`
	Birthdays []string           `json:"birthdays"` // nombres
}

// listEventsHandler godoc
// @Summary Listar eventos
// @Description Lista los eventos en el orden del dataset. Los filtros se combinan con AND y un filtro vacío no restringe nada.
// @Tags events
// @Produce json
// @Param types query string false "CSV de tipos (APPOINTMENT,GROOMING,PRESCRIPTION,OTHER)"
// @Param pets query string false "CSV de nombres de mascota"
// @Param hide_completed query bool false "Ocultar completados"
// @Success 200 {array} eventResponse
// @Failure 400 {string} string "filtros inválidos"
// @Failure 500 {string} string "internal error"
// @Router /events [get]
func listEventsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := parseCriteria(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.List(r.Context(), c)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toEventResponses(items, svc.Location(), svc.Now()))
	}
}

// getEventHandler godoc
// @Summary Detalle de evento
// @Description Devuelve el evento por ID exacto. Si no existe responde 404 para que el cliente muestre "not found".
// @Tags events
// @Produce json
// @Param eventID path string true "ID del evento"
// @Success 200 {object} eventResponse
// @Failure 404 {string} string "event not found"
// @Failure 500 {string} string "internal error"
// @Router /events/{eventID} [get]
func getEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.Get(r.Context(), chi.URLParam(r, "eventID"))
		if err != nil {
			writeLookupError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponse(e, svc.Location(), svc.Now()))
	}
}

// toggleEventHandler godoc
// @Summary Alternar completado
// @Description Alterna el status del evento entre upcoming y completed. El cambio se publica por /ws.
// @Tags events
// @Produce json
// @Param eventID path string true "ID del evento"
// @Success 200 {object} eventResponse
// @Failure 404 {string} string "event not found"
// @Failure 500 {string} string "internal error"
// @Router /events/{eventID}/toggle [post]
func toggleEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.ToggleCompletion(r.Context(), chi.URLParam(r, "eventID"))
		if err != nil {
			writeLookupError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponse(e, svc.Location(), svc.Now()))
	}
}

// agendaHandler godoc
// @Summary Agenda por pestaña
// @Description Eventos de la pestaña Past/Today/Next agrupados en Morning/Afternoon/Evening. `has_missed` indica eventos pasados sin completar.
// @Tags events
// @Produce json
// @Param view query string false "past | today | next (default today)"
// @Param types query string false "CSV de tipos"
// @Param pets query string false "CSV de nombres de mascota"
// @Param hide_completed query bool false "Ocultar completados"
// @Success 200 {object} agendaResponse
// @Failure 400 {string} string "parámetros inválidos"
// @Failure 500 {string} string "internal error"
// @Router /agenda [get]
func agendaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := ParseView(r.URL.Query().Get("view"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		c, err := parseCriteria(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		a, err := svc.Agenda(r.Context(), v, c)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := agendaResponse{
			View:      a.View,
			Date:      a.Date.Format("2006-01-02"),
			Total:     a.Total,
			HasMissed: a.HasMissed,
			Groups:    make([]groupResponse, 0, len(a.Groups)),
		}
		for _, g := range a.Groups {
			out.Groups = append(out.Groups, groupResponse{
				TimeOfDay: g.TimeOfDay,
				Label:     g.Label,
				Events:    toEventResponses(g.Events, svc.Location(), a.Date),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// homeHandler godoc
// @Summary Pantalla de inicio
// @Description Eventos de hoy y mascotas (con flag de cumpleaños).
// @Tags events
// @Produce json
// @Success 200 {object} homeResponse
// @Failure 500 {string} string "internal error"
// @Router /home [get]
func homeHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		today, err := svc.Today(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		profiles, err := petsSvc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		now := svc.Now()
		out := homeResponse{
			Date:      now.Format("2006-01-02"),
			Events:    toEventResponses(today, svc.Location(), now),
			Pets:      pets.ToResponses(profiles),
			Birthdays: []string{},
		}
		for _, p := range profiles {
			if p.IsBirthday {
				out.Birthdays = append(out.Birthdays, p.Name)
			}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// calendarHandler godoc
// @Summary Exportar agenda (iCalendar)
// @Description Exporta los eventos como text/calendar (RRULE desde repeat, VALARM desde reminder). Acepta los mismos filtros que /events.
// @Tags events
// @Produce plain
// @Param types query string false "CSV de tipos"
// @Param pets query string false "CSV de nombres de mascota"
// @Param hide_completed query bool false "Ocultar completados"
// @Success 200 {string} string "VCALENDAR"
// @Failure 400 {string} string "filtros inválidos"
// @Failure 500 {string} string "internal error"
// @Router /events.ics [get]
func calendarHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := parseCriteria(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		body, err := svc.Calendar(r.Context(), c)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `inline; filename="agenda.ics"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	}
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
		http.Error(w, "event not found", http.StatusNotFound)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// parseCriteria: types=APPOINTMENT,GROOMING & pets=Tommy,Max & hide_completed=true
func parseCriteria(r *http.Request) (Criteria, error) {
	q := r.URL.Query()
	var c Criteria

	for _, t := range splitCSV(q.Get("types")) {
		c.Types = append(c.Types, EventType(strings.ToUpper(t)))
	}
	c.Pets = splitCSV(q.Get("pets"))

	if v := strings.TrimSpace(q.Get("hide_completed")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Criteria{}, fmt.Errorf("hide_completed must be a boolean")
		}
		c.HideCompleted = b
	}
	return c, nil
}

func splitCSV(v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func toEventResponse(e Event, loc *time.Location, now time.Time) eventResponse {
	st := e.Style()
	out := eventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Pet:         e.Pet,
		Time:        e.Time,
		Date:        e.Date,
		FullDate:    e.FullDate,
		Type:        e.Type,
		Status:      e.Status,
		Description: e.Description,
		Location:    e.Location,
		Notes:       e.Notes,
		Reminder:    e.Reminder,
		Repeat:      e.Repeat,
		Color:       e.Color,
		PetImage:    e.PetImage,
		Attachments: make([]attachmentResponse, 0, len(e.Attachments)),
		Style: styleResponse{
			Colors:     st.Colors,
			IconFamily: st.Icon.Family,
			Icon:       st.Icon.Name,
		},
	}
	for _, a := range e.Attachments {
		out.Attachments = append(out.Attachments, attachmentResponse{ID: a.ID, Name: a.Name, Icon: a.Icon})
	}

	if tod, err := BucketFor(e.Time); err == nil {
		out.TimeOfDay = tod
	}
	if start, err := StartsAt(e, loc); err == nil {
		out.StartsAt = &start
	}
	if next, ok := NextOccurrence(e, now, loc); ok {
		out.NextOccurrence = &next
	}
	return out
}

func toEventResponses(items []Event, loc *time.Location, now time.Time) []eventResponse {
	out := make([]eventResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toEventResponse(e, loc, now))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
