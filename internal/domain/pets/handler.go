package pets

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/birthdays", listBirthdaysHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
	})
}

// PetResponse representa una mascota devuelta por la API.
type PetResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Breed        string `json:"breed"`
	Age          int    `json:"age"`
	Birthday     string `json:"birthday"` // YYYY-MM-DD
	Image        string `json:"image"`
	IsBirthday   bool   `json:"is_birthday"`
	NextBirthday string `json:"next_birthday"` // YYYY-MM-DD
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Lista las mascotas en el orden del dataset. `is_birthday` se calcula contra la fecha de hoy en la zona configurada (solo mes/día).
// @Tags pets
// @Produce json
// @Success 200 {array} PetResponse
// @Failure 500 {string} string "internal error"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, ToResponses(items))
	}
}

// listBirthdaysHandler godoc
// @Summary Mascotas que cumplen años hoy
// @Tags pets
// @Produce json
// @Success 200 {array} PetResponse
// @Failure 500 {string} string "internal error"
// @Router /pets/birthdays [get]
func listBirthdaysHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Birthdays(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, ToResponses(items))
	}
}

// getPetHandler godoc
// @Summary Perfil de mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} PetResponse
// @Failure 404 {string} string "pet not found"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(p))
	}
}

func ToResponse(p Profile) PetResponse {
	return PetResponse{
		ID:           p.ID,
		Name:         p.Name,
		Breed:        p.Breed,
		Age:          p.Age,
		Birthday:     p.Birthday.Format("2006-01-02"),
		Image:        p.Image,
		IsBirthday:   p.IsBirthday,
		NextBirthday: p.NextBirthday.Format("2006-01-02"),
	}
}

func ToResponses(items []Profile) []PetResponse {
	out := make([]PetResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ToResponse(p))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
