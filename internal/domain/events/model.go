package events

// Attachment es un adjunto de solo lectura; Icon lo resuelve el cliente.
type Attachment struct {
	ID   string
	Name string
	Icon string
}

// Event es inmutable salvo Status, que solo cambia vía ToggleCompletion.
// Time, Date y FullDate son strings de presentación ("3:13 PM", "Mon, Mar 24",
// "March 24, 2025").
type Event struct {
	ID    string
	Title string
	Pet   string

	Time     string
	Date     string
	FullDate string

	Type   EventType
	Status EventStatus

	Description string
	Location    string
	Notes       string
	Reminder    string // "15 minutes before"
	Repeat      string // "Monthly", "Every 6 months"

	Color    string
	PetImage string

	Attachments []Attachment
}

func (e Event) Completed() bool {
	return e.Status == EventStatusCompleted
}

func (e Event) Style() Style {
	return StyleFor(string(e.Type))
}
