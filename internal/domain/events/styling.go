package events

// Icon identifica un ícono de una familia (FontAwesome5, MaterialIcons...).
// Es opaco para el backend.
type Icon struct {
	Family string
	Name   string
}

type Style struct {
	Colors [2]string // gradiente: [claro, oscuro]
	Icon   Icon
}

var styles = map[EventType]Style{
	EventTypeAppointment: {
		Colors: [2]string{"#4CAF50", "#388E3C"},
		Icon:   Icon{Family: "FontAwesome5", Name: "clinic-medical"},
	},
	EventTypeGrooming: {
		Colors: [2]string{"#FF4081", "#F50057"},
		Icon:   Icon{Family: "MaterialIcons", Name: "content-cut"},
	},
	EventTypePrescription: {
		Colors: [2]string{"#2196F3", "#1976D2"},
		Icon:   Icon{Family: "FontAwesome5", Name: "pills"},
	},
	EventTypeOther: {
		Colors: [2]string{"#673AB7", "#512DA8"},
		Icon:   Icon{Family: "FontAwesome5", Name: "paw"},
	},
}

// StyleFor es total: cualquier tag fuera de la tabla (incluido "") cae en OTHER.
func StyleFor(t string) Style {
	if s, ok := styles[EventType(t)]; ok {
		return s
	}
	return styles[EventTypeOther]
}
