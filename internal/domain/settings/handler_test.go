package settings

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func doReq(t *testing.T, h http.Handler, method, path string, body any) (int, settingsResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out settingsResponse
	if rec.Code == http.StatusOK {
		if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return rec.Code, out
}

func TestHandler_Settings(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, NewService(&testRepo{}))

	st, out := doReq(t, r, http.MethodGet, "/settings", nil)
	if st != http.StatusOK || !out.Notifications || out.Language != "en" || out.UpdatedAt != nil {
		t.Fatalf("unexpected defaults: %d %+v", st, out)
	}

	st, out = doReq(t, r, http.MethodPatch, "/settings", map[string]any{"dark_mode": true, "units": "imperial"})
	if st != http.StatusOK || !out.DarkMode || out.Units != UnitsImperial || out.UpdatedAt == nil {
		t.Fatalf("unexpected patch result: %d %+v", st, out)
	}

	st, out = doReq(t, r, http.MethodGet, "/settings", nil)
	if st != http.StatusOK || !out.DarkMode {
		t.Fatalf("patch not persisted: %+v", out)
	}
}

func TestHandler_SettingsBadRequests(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, NewService(&testRepo{}))

	cases := []any{
		map[string]any{"units": "stones"},
		map[string]any{"language": "??"},
		map[string]any{"theme": "dark"},
	}
	for _, body := range cases {
		if st, _ := doReq(t, r, http.MethodPatch, "/settings", body); st != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d", body, st)
		}
	}
}
