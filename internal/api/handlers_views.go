package api

import (
	"net/http"
	"time"

	"github.com/astralhq/astral/internal/derive"
	"github.com/astralhq/astral/internal/types"
)

// TodayView is the GET /api/v1/views/today payload: everything the day
// screen needs in one read.
type TodayView struct {
	Date    string              `json:"date"`
	Tasks   []types.Task        `json:"tasks"`
	MITs    []types.Task        `json:"mits"`
	Intent  *types.DailyIntent  `json:"intent"`
	CheckIn *types.DailyCheckIn `json:"checkIn"`
}

// GetTodayView handles GET /api/v1/views/today
func (h *Handler) GetTodayView(w http.ResponseWriter, r *http.Request) {
	var out TodayView
	h.store.Read(func(st *types.AppState, now time.Time) {
		today := now.Format(time.DateOnly)
		out = TodayView{
			Date:    today,
			Tasks:   derive.TodayTasks(st, today),
			MITs:    derive.MITs(st, today),
			Intent:  derive.IntentByDate(st, today),
			CheckIn: derive.CheckInByDate(st, today),
		}
	})
	writeJSON(w, http.StatusOK, out)
}

// GetInboxView handles GET /api/v1/views/inbox: unscheduled loose tasks.
func (h *Handler) GetInboxView(w http.ResponseWriter, r *http.Request) {
	var tasks []types.Task
	h.store.Read(func(st *types.AppState, _ time.Time) {
		tasks = derive.InboxTasks(st)
	})
	writeJSON(w, http.StatusOK, tasks)
}

// GetUpcomingView handles GET /api/v1/views/upcoming
func (h *Handler) GetUpcomingView(w http.ResponseWriter, r *http.Request) {
	var tasks []types.Task
	h.store.Read(func(st *types.AppState, now time.Time) {
		tasks = derive.UpcomingTasks(st, now.Format(time.DateOnly))
	})
	writeJSON(w, http.StatusOK, tasks)
}

// GetSomedayView handles GET /api/v1/views/someday
func (h *Handler) GetSomedayView(w http.ResponseWriter, r *http.Request) {
	var tasks []types.Task
	h.store.Read(func(st *types.AppState, _ time.Time) {
		tasks = derive.SomedayTasks(st)
	})
	writeJSON(w, http.StatusOK, tasks)
}

// GetOrphanTasks handles GET /api/v1/coach/orphans: tasks with no path to
// any goal.
func (h *Handler) GetOrphanTasks(w http.ResponseWriter, r *http.Request) {
	var tasks []types.Task
	h.store.Read(func(st *types.AppState, _ time.Time) {
		tasks = derive.OrphanTasks(st)
	})
	writeJSON(w, http.StatusOK, tasks)
}

// GetIgnoredGoals handles GET /api/v1/coach/ignored: active goals with no
// logged activity inside the configured window.
func (h *Handler) GetIgnoredGoals(w http.ResponseWriter, r *http.Request) {
	var goals []types.Goal
	h.store.Read(func(st *types.AppState, now time.Time) {
		goals = derive.IgnoredGoals(st, now, h.ignoredGoalDays)
	})
	writeJSON(w, http.StatusOK, goals)
}
