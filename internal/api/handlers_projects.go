package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/astralhq/astral/internal/derive"
	"github.com/astralhq/astral/internal/types"
	"github.com/astralhq/astral/internal/validation"
)

// ListProjects handles GET /api/v1/projects. The default view is active
// projects in priority order; ?all=true returns everything.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	var projects []types.Project
	h.store.Read(func(st *types.AppState, _ time.Time) {
		if r.URL.Query().Get("all") == "true" {
			projects = append(projects, st.Projects...)
		} else {
			projects = derive.ActiveProjects(st)
		}
	})
	writeJSON(w, http.StatusOK, projects)
}

// CreateProject handles POST /api/v1/projects
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var in types.NewProject
	if !decodeJSON(w, r, &in) {
		return
	}

	var c validation.Collector
	c.Add(validation.ValidateRequired("name", in.Name))
	c.Add(validation.ValidateMaxLength("name", in.Name, 200))
	if in.Priority != 0 {
		c.Add(validation.ValidateRange("priority", float64(in.Priority), 1, 5))
	}
	if c.HasErrors() {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", c.Errors())
		return
	}

	project, err := h.store.AddProject(r.Context(), in)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

// UpdateProject handles PATCH /api/v1/projects/{id}
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var u types.ProjectUpdate
	if !decodeJSON(w, r, &u) {
		return
	}

	project, err := h.store.UpdateProject(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	if project == nil {
		WriteProblem(w, r, http.StatusNotFound, "Project not found")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// DeleteProject handles DELETE /api/v1/projects/{id}
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStateError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListProjectTasks handles GET /api/v1/projects/{id}/tasks
func (h *Handler) ListProjectTasks(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.store.GetProject(id) == nil {
		WriteProblem(w, r, http.StatusNotFound, "Project not found")
		return
	}

	var tasks []types.Task
	h.store.Read(func(st *types.AppState, _ time.Time) {
		tasks = derive.ProjectTasks(st, id)
	})
	writeJSON(w, http.StatusOK, tasks)
}
