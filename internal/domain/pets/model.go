package pets

import "time"

// Pet es el perfil de una mascota tal como lo muestra la app.
// Birthday solo se usa por mes/día (el año se ignora).
type Pet struct {
	ID    string
	Name  string
	Breed string
	Age   int // años

	Birthday time.Time

	// Image es una referencia opaca (URL o asset) que resuelve el cliente.
	Image string
}
