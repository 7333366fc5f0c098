package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/astralhq/astral/internal/derive"
	"github.com/astralhq/astral/internal/types"
	"github.com/astralhq/astral/internal/validation"
)

// ListGoals handles GET /api/v1/goals. Filters: ?quarter=Q3&year=2026
// for a quarter view, ?active=true for active goals, otherwise all.
func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var goals []types.Goal
	h.store.Read(func(st *types.AppState, _ time.Time) {
		switch {
		case q.Get("quarter") != "" && q.Get("year") != "":
			year, err := strconv.Atoi(q.Get("year"))
			if err != nil {
				return
			}
			goals = derive.GoalsByQuarter(st, types.Quarter(q.Get("quarter")), year)
		case q.Get("active") == "true":
			goals = derive.ActiveGoals(st)
		default:
			goals = append(goals, st.Goals...)
		}
	})
	writeJSON(w, http.StatusOK, goals)
}

// CreateGoal handles POST /api/v1/goals
func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var in types.NewGoal
	if !decodeJSON(w, r, &in) {
		return
	}

	var c validation.Collector
	c.Add(validation.ValidateRequired("title", in.Title))
	c.Add(validation.ValidateEnum("type", string(in.Type), []string{
		string(types.GoalNumeric), string(types.GoalProject),
		string(types.GoalPipeline), string(types.GoalHabit),
	}))
	c.Add(validation.ValidateEnum("quarter", string(in.Quarter), []string{
		string(types.Q1), string(types.Q2), string(types.Q3), string(types.Q4),
	}))
	if c.HasErrors() {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", c.Errors())
		return
	}

	goal, err := h.store.AddGoal(r.Context(), in)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, goal)
}

// UpdateGoal handles PATCH /api/v1/goals/{id}
func (h *Handler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	var u types.GoalUpdate
	if !decodeJSON(w, r, &u) {
		return
	}

	goal, err := h.store.UpdateGoal(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	if goal == nil {
		WriteProblem(w, r, http.StatusNotFound, "Goal not found")
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

// DeleteGoal handles DELETE /api/v1/goals/{id}
func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteGoal(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStateError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateMetricRequest is the POST /api/v1/goals/{id}/metric payload.
type UpdateMetricRequest struct {
	Value float64 `json:"value"`
}

// UpdateGoalMetric handles POST /api/v1/goals/{id}/metric
func (h *Handler) UpdateGoalMetric(w http.ResponseWriter, r *http.Request) {
	var req UpdateMetricRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	goal, err := h.store.UpdateGoalMetric(r.Context(), chi.URLParam(r, "id"), req.Value)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	if goal == nil {
		WriteProblem(w, r, http.StatusNotFound, "Goal not found")
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

// GoalProgress is the GET /api/v1/goals/{id}/progress payload.
type GoalProgress struct {
	GoalID   string  `json:"goalId"`
	Type     string  `json:"type"`
	Progress float64 `json:"progress"`
}

// GetGoalProgress handles GET /api/v1/goals/{id}/progress
func (h *Handler) GetGoalProgress(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var (
		found bool
		out   GoalProgress
	)
	h.store.Read(func(st *types.AppState, now time.Time) {
		for i := range st.Goals {
			if st.Goals[i].ID == id {
				found = true
				out = GoalProgress{
					GoalID:   id,
					Type:     string(st.Goals[i].Type),
					Progress: derive.Progress(st, &st.Goals[i], now),
				}
				return
			}
		}
	})
	if !found {
		WriteProblem(w, r, http.StatusNotFound, "Goal not found")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GetGoalHeatmap handles GET /api/v1/goals/{id}/heatmap
func (h *Handler) GetGoalHeatmap(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.store.GetGoal(id) == nil {
		WriteProblem(w, r, http.StatusNotFound, "Goal not found")
		return
	}

	var heatmap map[string]bool
	h.store.Read(func(st *types.AppState, now time.Time) {
		heatmap = derive.GoalHeatmap(st, id, now, h.heatmapDays)
	})
	writeJSON(w, http.StatusOK, heatmap)
}

// ListGoalActivities handles GET /api/v1/goals/{id}/activities with an
// optional ?days=N trailing window.
func (h *Handler) ListGoalActivities(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.store.GetGoal(id) == nil {
		WriteProblem(w, r, http.StatusNotFound, "Goal not found")
		return
	}

	days := 0
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			WriteProblem(w, r, http.StatusBadRequest, "days must be a non-negative integer")
			return
		}
		days = n
	}

	var activities []types.GoalActivity
	h.store.Read(func(st *types.AppState, now time.Time) {
		activities = derive.GoalActivities(st, id, now, days)
	})
	writeJSON(w, http.StatusOK, activities)
}

// LogGoalActivity handles POST /api/v1/goals/{id}/activities
func (h *Handler) LogGoalActivity(w http.ResponseWriter, r *http.Request) {
	var in types.NewGoalActivity
	if !decodeJSON(w, r, &in) {
		return
	}
	in.GoalID = chi.URLParam(r, "id")
	if h.store.GetGoal(in.GoalID) == nil {
		WriteProblem(w, r, http.StatusNotFound, "Goal not found")
		return
	}

	var c validation.Collector
	c.Add(validation.ValidateRequired("description", in.Description))
	if in.Date != "" {
		c.Add(validation.ValidateDate("date", in.Date))
	}
	if c.HasErrors() {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", c.Errors())
		return
	}
	if in.Type == "" {
		in.Type = types.ActivityManualLog
	}

	activity, err := h.store.LogGoalActivity(r.Context(), in)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, activity)
}

// GoalLinks is the GET /api/v1/goals/{id}/links payload: everything the
// goal is connected to.
type GoalLinks struct {
	Tasks    []types.Task         `json:"tasks"`
	Projects []types.Project      `json:"projects"`
	Deals    []types.PipelineDeal `json:"deals"`
}

// GetGoalLinks handles GET /api/v1/goals/{id}/links
func (h *Handler) GetGoalLinks(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var (
		found bool
		out   GoalLinks
	)
	h.store.Read(func(st *types.AppState, _ time.Time) {
		for i := range st.Goals {
			if st.Goals[i].ID == id {
				found = true
				out = GoalLinks{
					Tasks:    derive.GoalLinkedTasks(st, &st.Goals[i]),
					Projects: derive.GoalLinkedProjects(st, &st.Goals[i]),
					Deals:    derive.GoalLinkedDeals(st, &st.Goals[i]),
				}
				return
			}
		}
	})
	if !found {
		WriteProblem(w, r, http.StatusNotFound, "Goal not found")
		return
	}
	writeJSON(w, http.StatusOK, out)
}
