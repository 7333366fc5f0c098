package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/astralhq/astral/internal/derive"
	"github.com/astralhq/astral/internal/types"
	"github.com/astralhq/astral/internal/validation"
)

// ListTasks handles GET /api/v1/tasks with an optional area filter.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	var tasks []types.Task
	h.store.Read(func(st *types.AppState, _ time.Time) {
		if areaID := r.URL.Query().Get("areaId"); areaID != "" {
			tasks = derive.TasksByArea(st, areaID)
			return
		}
		tasks = append(tasks, st.Tasks...)
	})
	writeJSON(w, http.StatusOK, tasks)
}

// CreateTask handles POST /api/v1/tasks
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var in types.NewTask
	if !decodeJSON(w, r, &in) {
		return
	}

	var c validation.Collector
	c.Add(validation.ValidateRequired("title", in.Title))
	c.Add(validation.ValidateUTF8("title", in.Title))
	c.Add(validation.ValidateMaxLength("title", in.Title, 500))
	if in.ScheduledFor != nil {
		c.Add(validation.ValidateDate("scheduledFor", *in.ScheduledFor))
	}
	if in.DueDate != nil {
		c.Add(validation.ValidateDate("dueDate", *in.DueDate))
	}
	if c.HasErrors() {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", c.Errors())
		return
	}

	task, err := h.store.AddTask(r.Context(), in)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

// UpdateTask handles PATCH /api/v1/tasks/{id}
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var u types.TaskUpdate
	if !decodeJSON(w, r, &u) {
		return
	}

	task, err := h.store.UpdateTask(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	if task == nil {
		WriteProblem(w, r, http.StatusNotFound, "Task not found")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// DeleteTask handles DELETE /api/v1/tasks/{id}
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteTask(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStateError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleTask handles POST /api/v1/tasks/{id}/toggle
func (h *Handler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.store.ToggleTaskDone(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	if task == nil {
		WriteProblem(w, r, http.StatusNotFound, "Task not found")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// ScheduleTaskToday handles POST /api/v1/tasks/{id}/schedule-today
func (h *Handler) ScheduleTaskToday(w http.ResponseWriter, r *http.Request) {
	task, err := h.store.ScheduleTaskForToday(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	if task == nil {
		WriteProblem(w, r, http.StatusNotFound, "Task not found")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// MoveTaskTomorrow handles POST /api/v1/tasks/{id}/move-tomorrow
func (h *Handler) MoveTaskTomorrow(w http.ResponseWriter, r *http.Request) {
	task, err := h.store.MoveTaskToTomorrow(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	if task == nil {
		WriteProblem(w, r, http.StatusNotFound, "Task not found")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// GetTaskGoal handles GET /api/v1/tasks/{id}/goal: the goal the task
// ultimately serves, directly or through its project.
func (h *Handler) GetTaskGoal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var (
		found bool
		goal  *types.Goal
	)
	h.store.Read(func(st *types.AppState, _ time.Time) {
		for i := range st.Tasks {
			if st.Tasks[i].ID == id {
				found = true
				goal = derive.ResolveTaskGoal(st, &st.Tasks[i])
				return
			}
		}
	})
	if !found {
		WriteProblem(w, r, http.StatusNotFound, "Task not found")
		return
	}
	if goal == nil {
		WriteProblem(w, r, http.StatusNotFound, "Task has no goal context")
		return
	}
	writeJSON(w, http.StatusOK, goal)
}
