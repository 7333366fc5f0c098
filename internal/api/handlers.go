// Package api exposes the app state and its derived views over HTTP,
// using chi routing and RFC 7807 problem responses.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/astralhq/astral/internal/state"
	"github.com/astralhq/astral/internal/suggest"
	"github.com/astralhq/astral/internal/types"
)

// Handler implements the API handlers
type Handler struct {
	store     *state.Store
	suggester suggest.Suggester
	apiKey    string
	version   string

	ignoredGoalDays int
	heatmapDays     int
}

// NewHandler creates a new Handler.
func NewHandler(s *state.Store, sg suggest.Suggester, apiKey, version string, ignoredGoalDays, heatmapDays int) *Handler {
	return &Handler{
		store:           s,
		suggester:       sg,
		apiKey:          apiKey,
		version:         version,
		ignoredGoalDays: ignoredGoalDays,
		heatmapDays:     heatmapDays,
	}
}

// HealthResponse is the GET /health payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Today     string `json:"today"`
	TaskCount int    `json:"taskCount"`
	GoalCount int    `json:"goalCount"`
}

// Health returns the health status
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "healthy",
		Version: h.version,
	}
	h.store.Read(func(st *types.AppState, now time.Time) {
		resp.Today = now.Format(time.DateOnly)
		resp.TaskCount = len(st.Tasks)
		resp.GoalCount = len(st.Goals)
	})

	writeJSON(w, http.StatusOK, resp)
}

// ExportState returns the whole persisted state as one JSON document.
func (h *Handler) ExportState(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.Export()
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// decodeJSON decodes the request body into v, writing a 400 problem on
// failure. Returns false when the response has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %s", err.Error()))
		return false
	}
	return true
}
