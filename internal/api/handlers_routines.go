package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/astralhq/astral/internal/derive"
	"github.com/astralhq/astral/internal/types"
	"github.com/astralhq/astral/internal/validation"
)

// ListRoutines handles GET /api/v1/routines with an optional type filter.
func (h *Handler) ListRoutines(w http.ResponseWriter, r *http.Request) {
	var routines []types.Routine
	h.store.Read(func(st *types.AppState, _ time.Time) {
		if t := r.URL.Query().Get("type"); t != "" {
			routines = derive.RoutinesByType(st, types.RoutineType(t))
			return
		}
		routines = append(routines, st.Routines...)
	})
	writeJSON(w, http.StatusOK, routines)
}

// CreateRoutine handles POST /api/v1/routines
func (h *Handler) CreateRoutine(w http.ResponseWriter, r *http.Request) {
	var in types.NewRoutine
	if !decodeJSON(w, r, &in) {
		return
	}

	var c validation.Collector
	c.Add(validation.ValidateRequired("name", in.Name))
	c.Add(validation.ValidateEnum("type", string(in.Type), []string{
		string(types.RoutineMorning), string(types.RoutineEvening),
		string(types.RoutineWeekly), string(types.RoutineMonthly),
	}))
	if c.HasErrors() {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", c.Errors())
		return
	}

	routine, err := h.store.AddRoutine(r.Context(), in)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, routine)
}

// UpdateRoutine handles PATCH /api/v1/routines/{id}
func (h *Handler) UpdateRoutine(w http.ResponseWriter, r *http.Request) {
	var u types.RoutineUpdate
	if !decodeJSON(w, r, &u) {
		return
	}

	routine, err := h.store.UpdateRoutine(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	if routine == nil {
		WriteProblem(w, r, http.StatusNotFound, "Routine not found")
		return
	}
	writeJSON(w, http.StatusOK, routine)
}

// DeleteRoutine handles DELETE /api/v1/routines/{id}
func (h *Handler) DeleteRoutine(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteRoutine(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStateError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleHabitRequest is the POST /api/v1/habits/toggle payload. A missing
// date means today.
type ToggleHabitRequest struct {
	RoutineID string `json:"routineId"`
	ItemID    string `json:"itemId"`
	Date      string `json:"date,omitempty"`
}

// ToggleHabit handles POST /api/v1/habits/toggle
func (h *Handler) ToggleHabit(w http.ResponseWriter, r *http.Request) {
	var req ToggleHabitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var c validation.Collector
	c.Add(validation.ValidateRequired("routineId", req.RoutineID))
	c.Add(validation.ValidateRequired("itemId", req.ItemID))
	if req.Date != "" {
		c.Add(validation.ValidateDate("date", req.Date))
	}
	if c.HasErrors() {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", c.Errors())
		return
	}

	date := req.Date
	if date == "" {
		date = h.store.Today()
	}
	if err := h.store.ToggleHabitLog(r.Context(), req.RoutineID, req.ItemID, date); err != nil {
		MapStateError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListHabitLogs handles GET /api/v1/habits. A missing date means today.
func (h *Handler) ListHabitLogs(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date != "" {
		if err := validation.ValidateDate("date", date); err != nil {
			WriteProblemWithErrors(w, r, "Request contains invalid fields", []validation.ValidationError{*err})
			return
		}
	}

	var logs []types.HabitLog
	h.store.Read(func(st *types.AppState, now time.Time) {
		d := date
		if d == "" {
			d = now.Format(time.DateOnly)
		}
		logs = derive.HabitLogsForDate(st, d)
	})
	writeJSON(w, http.StatusOK, logs)
}
