package settings

import "context"

// Repository guarda el único perfil de preferencias.
// Get devuelve ErrNotFound si todavía no se guardó nada.
type Repository interface {
	Get(ctx context.Context) (Preferences, error)
	Save(ctx context.Context, p Preferences) error
}
