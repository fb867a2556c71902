package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"pet-care-companion/internal/domain/events"
	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/platform/httpclient"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed dataset.yaml
var embedded []byte

var (
	ErrInvalidDataset = errors.New("invalid dataset")
	ErrDuplicateID    = errors.New("duplicate id")
)

const birthdayLayout = "2006-01-02"

// Dataset es el contenido inicial de los repositorios.
type Dataset struct {
	Events []events.Event
	Pets   []pets.Pet
}

type document struct {
	Events []eventDoc `yaml:"events"`
	Pets   []petDoc   `yaml:"pets"`
}

type attachmentDoc struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

type eventDoc struct {
	ID          string          `yaml:"id"`
	Title       string          `yaml:"title"`
	Pet         string          `yaml:"pet"`
	Time        string          `yaml:"time"`
	Date        string          `yaml:"date"`
	FullDate    string          `yaml:"full_date"`
	Type        string          `yaml:"type"`
	Color       string          `yaml:"color"`
	Status      string          `yaml:"status"`
	Description string          `yaml:"description"`
	Location    string          `yaml:"location"`
	Notes       string          `yaml:"notes"`
	Reminder    string          `yaml:"reminder"`
	Repeat      string          `yaml:"repeat"`
	PetImage    string          `yaml:"pet_image"`
	Attachments []attachmentDoc `yaml:"attachments"`
}

type petDoc struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Breed    string `yaml:"breed"`
	Age      int    `yaml:"age"`
	Birthday string `yaml:"birthday"` // YYYY-MM-DD
	Image    string `yaml:"image"`
}

// Embedded devuelve el dataset de demo compilado en el binario.
func Embedded() (Dataset, error) {
	return Parse(embedded)
}

// Load resuelve source: vacío = embebido, http(s) = remoto, otro = archivo.
func Load(ctx context.Context, source string, client *httpclient.Client) (Dataset, error) {
	source = strings.TrimSpace(source)
	switch {
	case source == "":
		return Embedded()
	case httpclient.IsRemote(source):
		if client == nil {
			client = httpclient.New(0)
		}
		b, err := client.Fetch(ctx, source, "application/yaml")
		if err != nil {
			return Dataset{}, fmt.Errorf("seed: fetch %s: %w", source, err)
		}
		return Parse(b)
	default:
		b, err := os.ReadFile(source)
		if err != nil {
			return Dataset{}, fmt.Errorf("seed: read %s: %w", source, err)
		}
		return Parse(b)
	}
}

// Parse decodifica y valida un dataset YAML. Campos desconocidos son error.
func Parse(b []byte) (Dataset, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return Dataset{}, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}

	out := Dataset{
		Events: make([]events.Event, 0, len(doc.Events)),
		Pets:   make([]pets.Pet, 0, len(doc.Pets)),
	}

	seen := map[string]struct{}{}
	for i, d := range doc.Events {
		e, err := d.toEvent()
		if err != nil {
			return Dataset{}, fmt.Errorf("%w: events[%d]: %v", ErrInvalidDataset, i, err)
		}
		if _, dup := seen[e.ID]; dup {
			return Dataset{}, fmt.Errorf("%w: event %q", ErrDuplicateID, e.ID)
		}
		seen[e.ID] = struct{}{}
		out.Events = append(out.Events, e)
	}

	seen = map[string]struct{}{}
	for i, d := range doc.Pets {
		p, err := d.toPet()
		if err != nil {
			return Dataset{}, fmt.Errorf("%w: pets[%d]: %v", ErrInvalidDataset, i, err)
		}
		if _, dup := seen[p.ID]; dup {
			return Dataset{}, fmt.Errorf("%w: pet %q", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
		out.Pets = append(out.Pets, p)
	}

	return out, nil
}

func (d eventDoc) toEvent() (events.Event, error) {
	id := strings.TrimSpace(d.ID)
	if id == "" {
		return events.Event{}, errors.New("id is required")
	}

	status := events.EventStatusUpcoming
	if strings.TrimSpace(d.Status) != "" {
		st, err := events.ParseStatus(d.Status)
		if err != nil {
			return events.Event{}, err
		}
		status = st
	}

	e := events.Event{
		ID:          id,
		Title:       d.Title,
		Pet:         d.Pet,
		Time:        d.Time,
		Date:        d.Date,
		FullDate:    d.FullDate,
		Type:        events.EventType(strings.ToUpper(strings.TrimSpace(d.Type))),
		Status:      status,
		Description: d.Description,
		Location:    d.Location,
		Notes:       d.Notes,
		Reminder:    d.Reminder,
		Repeat:      d.Repeat,
		Color:       d.Color,
		PetImage:    d.PetImage,
		Attachments: make([]events.Attachment, 0, len(d.Attachments)),
	}
	for _, a := range d.Attachments {
		aid := strings.TrimSpace(a.ID)
		if aid == "" {
			aid = uuid.NewString()
		}
		e.Attachments = append(e.Attachments, events.Attachment{ID: aid, Name: a.Name, Icon: a.Icon})
	}
	return e, nil
}

func (d petDoc) toPet() (pets.Pet, error) {
	id := strings.TrimSpace(d.ID)
	if id == "" {
		return pets.Pet{}, errors.New("id is required")
	}
	if d.Age < 0 {
		return pets.Pet{}, errors.New("age must be >= 0")
	}

	var bday time.Time
	if s := strings.TrimSpace(d.Birthday); s != "" {
		t, err := time.Parse(birthdayLayout, s)
		if err != nil {
			return pets.Pet{}, fmt.Errorf("birthday must be YYYY-MM-DD")
		}
		bday = t
	}

	return pets.Pet{
		ID:       id,
		Name:     d.Name,
		Breed:    d.Breed,
		Age:      d.Age,
		Birthday: bday,
		Image:    d.Image,
	}, nil
}
