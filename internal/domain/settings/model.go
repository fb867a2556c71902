package settings

import "time"

type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// Preferences son las opciones de la pantalla Settings. Hay un solo perfil
// por instalación; ID se asigna en el primer guardado.
type Preferences struct {
	ID            string
	Notifications bool
	DarkMode      bool
	Language      string // BCP-47 canónico ("en", "es-AR")
	Units         Units
	UpdatedAt     time.Time
}

func Defaults() Preferences {
	return Preferences{
		Notifications: true,
		DarkMode:      false,
		Language:      "en",
		Units:         UnitsMetric,
	}
}
