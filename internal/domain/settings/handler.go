package settings

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/settings", getSettingsHandler(svc))
	r.Patch("/settings", patchSettingsHandler(svc))
}

type settingsResponse struct {
	Notifications bool       `json:"notifications"`
	DarkMode      bool       `json:"dark_mode"`
	Language      string     `json:"language"`
	Units         Units      `json:"units" enums:"metric,imperial"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type patchSettingsRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Notifications *bool   `json:"notifications"`
	DarkMode      *bool   `json:"dark_mode"`
	Language      *string `json:"language"`
	Units         *string `json:"units"`
}

// getSettingsHandler godoc
// @Summary Obtener preferencias
// @Description Devuelve las preferencias guardadas o los valores por defecto.
// @Tags settings
// @Produce json
// @Success 200 {object} settingsResponse
// @Failure 500 {string} string "internal error"
// @Router /settings [get]
func getSettingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(p))
	}
}

// patchSettingsHandler godoc
// @Summary Actualizar preferencias
// @Description Actualiza solo los campos enviados. `language` es un tag BCP-47; `units` es metric o imperial.
// @Tags settings
// @Accept json
// @Produce json
// @Param body body patchSettingsRequest true "Campos a actualizar"
// @Success 200 {object} settingsResponse
// @Failure 400 {string} string "invalid json / invalid language / invalid units"
// @Failure 500 {string} string "internal error"
// @Router /settings [patch]
func patchSettingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req patchSettingsRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), Patch{
			Notifications: req.Notifications,
			DarkMode:      req.DarkMode,
			Language:      req.Language,
			Units:         req.Units,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrUnknownLanguage):
				http.Error(w, "invalid language", http.StatusBadRequest)
			case errors.Is(err, ErrUnknownUnits):
				http.Error(w, "invalid units", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, toResponse(p))
	}
}

func toResponse(p Preferences) settingsResponse {
	out := settingsResponse{
		Notifications: p.Notifications,
		DarkMode:      p.DarkMode,
		Language:      p.Language,
		Units:         p.Units,
	}
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
