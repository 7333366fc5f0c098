package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/astralhq/astral/internal/derive"
	"github.com/astralhq/astral/internal/types"
	"github.com/astralhq/astral/internal/validation"
)

// ListAreas handles GET /api/v1/areas
func (h *Handler) ListAreas(w http.ResponseWriter, r *http.Request) {
	var areas []types.Area
	h.store.Read(func(st *types.AppState, _ time.Time) {
		if t := r.URL.Query().Get("type"); t != "" {
			areas = derive.AreasByType(st, types.AreaType(t))
		} else {
			areas = derive.Areas(st)
		}
	})
	writeJSON(w, http.StatusOK, areas)
}

// CreateArea handles POST /api/v1/areas
func (h *Handler) CreateArea(w http.ResponseWriter, r *http.Request) {
	var in types.NewArea
	if !decodeJSON(w, r, &in) {
		return
	}

	var c validation.Collector
	c.Add(validation.ValidateRequired("name", in.Name))
	c.Add(validation.ValidateUTF8("name", in.Name))
	c.Add(validation.ValidateMaxLength("name", in.Name, 200))
	c.Add(validation.ValidateEnum("type", string(in.Type), []string{
		string(types.AreaLife), string(types.AreaWork), string(types.AreaMixed),
	}))
	if c.HasErrors() {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", c.Errors())
		return
	}

	area, err := h.store.AddArea(r.Context(), in)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, area)
}

// UpdateArea handles PATCH /api/v1/areas/{id}
func (h *Handler) UpdateArea(w http.ResponseWriter, r *http.Request) {
	var u types.AreaUpdate
	if !decodeJSON(w, r, &u) {
		return
	}

	area, err := h.store.UpdateArea(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	if area == nil {
		WriteProblem(w, r, http.StatusNotFound, "Area not found")
		return
	}
	writeJSON(w, http.StatusOK, area)
}

// DeleteArea handles DELETE /api/v1/areas/{id}
func (h *Handler) DeleteArea(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteArea(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStateError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AreaOverview is the per-area drill-down payload.
type AreaOverview struct {
	Area     types.Area      `json:"area"`
	Goals    []types.Goal    `json:"goals"`
	Projects []types.Project `json:"projects"`
	Tasks    []types.Task    `json:"tasks"`
	Notes    []types.Note    `json:"notes"`
}

// GetAreaOverview handles GET /api/v1/areas/{id}/overview
func (h *Handler) GetAreaOverview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	area := h.store.GetArea(id)
	if area == nil {
		WriteProblem(w, r, http.StatusNotFound, "Area not found")
		return
	}

	out := AreaOverview{Area: *area}
	h.store.Read(func(st *types.AppState, _ time.Time) {
		out.Goals = derive.GoalsByArea(st, id)
		out.Projects = derive.ProjectsByArea(st, id)
		out.Tasks = derive.TasksByArea(st, id)
		out.Notes = derive.NotesByArea(st, id)
	})
	writeJSON(w, http.StatusOK, out)
}
