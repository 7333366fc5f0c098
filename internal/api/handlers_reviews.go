package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/astralhq/astral/internal/derive"
	"github.com/astralhq/astral/internal/types"
	"github.com/astralhq/astral/internal/validation"
)

// GetCurrentReview handles GET /api/v1/reviews/current: the review for
// the week containing today, 404 when none exists yet.
func (h *Handler) GetCurrentReview(w http.ResponseWriter, r *http.Request) {
	var review *types.WeeklyReview
	h.store.Read(func(st *types.AppState, now time.Time) {
		review = derive.ReviewByWeekStart(st, derive.WeekStart(now))
	})
	if review == nil {
		WriteProblem(w, r, http.StatusNotFound, "No review for the current week")
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// ListReviews handles GET /api/v1/reviews
func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	var reviews []types.WeeklyReview
	h.store.Read(func(st *types.AppState, _ time.Time) {
		reviews = append(reviews, st.WeeklyReviews...)
	})
	writeJSON(w, http.StatusOK, reviews)
}

// CreateReview handles POST /api/v1/reviews. A missing weekStart defaults
// to the current week's Monday.
func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var in types.NewWeeklyReview
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.WeekStart == "" {
		in.WeekStart = derive.WeekStart(h.store.Now())
	}
	if err := validation.ValidateDate("weekStart", in.WeekStart); err != nil {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", []validation.ValidationError{*err})
		return
	}

	review, err := h.store.AddWeeklyReview(r.Context(), in)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

// UpdateReview handles PATCH /api/v1/reviews/{id}
func (h *Handler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	var u types.WeeklyReviewUpdate
	if !decodeJSON(w, r, &u) {
		return
	}

	review, err := h.store.UpdateWeeklyReview(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	if review == nil {
		WriteProblem(w, r, http.StatusNotFound, "Weekly review not found")
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// GetCheckIn handles GET /api/v1/checkins/{date}
func (h *Handler) GetCheckIn(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if err := validation.ValidateDate("date", date); err != nil {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", []validation.ValidationError{*err})
		return
	}

	var checkIn *types.DailyCheckIn
	h.store.Read(func(st *types.AppState, _ time.Time) {
		checkIn = derive.CheckInByDate(st, date)
	})
	if checkIn == nil {
		WriteProblem(w, r, http.StatusNotFound, "No check-in for that date")
		return
	}
	writeJSON(w, http.StatusOK, checkIn)
}

// PutCheckIn handles PUT /api/v1/checkins/{date}: an upsert of partial
// check-in fields keyed by date.
func (h *Handler) PutCheckIn(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if err := validation.ValidateDate("date", date); err != nil {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", []validation.ValidationError{*err})
		return
	}

	var u types.CheckInUpdate
	if !decodeJSON(w, r, &u) {
		return
	}

	checkIn, err := h.store.UpdateCheckIn(r.Context(), date, u)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, checkIn)
}

// MorningCheckInRequest is the POST /api/v1/checkins/morning payload.
type MorningCheckInRequest struct {
	Intention    string  `json:"intention"`
	SingleAction string  `json:"singleAction"`
	GoalFocus    *string `json:"goalFocus"`
}

// MorningCheckIn handles POST /api/v1/checkins/morning for today.
func (h *Handler) MorningCheckIn(w http.ResponseWriter, r *http.Request) {
	var req MorningCheckInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	checkIn, err := h.store.SetMorningCheckIn(r.Context(), req.Intention, req.SingleAction, req.GoalFocus)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, checkIn)
}

// EveningReflectionRequest is the POST /api/v1/checkins/evening payload.
type EveningReflectionRequest struct {
	DidMoveGoalForward bool    `json:"didMoveGoalForward"`
	GoalMovedID        *string `json:"goalMovedId"`
	Insight            string  `json:"insight"`
	WhatLetGo          string  `json:"whatLetGo"`
}

// EveningReflection handles POST /api/v1/checkins/evening for today.
func (h *Handler) EveningReflection(w http.ResponseWriter, r *http.Request) {
	var req EveningReflectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	checkIn, err := h.store.SetEveningReflection(r.Context(), req.DidMoveGoalForward, req.GoalMovedID, req.Insight, req.WhatLetGo)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, checkIn)
}

// SetMITsRequest is the PUT /api/v1/mits payload. Ids past the cap of
// three are dropped in order.
type SetMITsRequest struct {
	TaskIDs []string `json:"taskIds"`
}

// SetMITs handles PUT /api/v1/mits for today.
func (h *Handler) SetMITs(w http.ResponseWriter, r *http.Request) {
	var req SetMITsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	checkIn, err := h.store.SetMITs(r.Context(), req.TaskIDs)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, checkIn)
}

// GetMITs handles GET /api/v1/mits: today's most-important tasks resolved
// to full task records, skipping ids that no longer exist.
func (h *Handler) GetMITs(w http.ResponseWriter, r *http.Request) {
	var tasks []types.Task
	h.store.Read(func(st *types.AppState, now time.Time) {
		tasks = derive.MITs(st, now.Format(time.DateOnly))
	})
	writeJSON(w, http.StatusOK, tasks)
}

// IntentRequest is the PUT /api/v1/intents/today payload. Nil fields are
// left untouched.
type IntentRequest struct {
	Intention  *string `json:"intention"`
	Reflection *string `json:"reflection"`
}

// PutTodayIntent handles PUT /api/v1/intents/today
func (h *Handler) PutTodayIntent(w http.ResponseWriter, r *http.Request) {
	var req IntentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Intention != nil {
		if err := h.store.SetTodayIntention(r.Context(), *req.Intention); err != nil {
			MapStateError(w, r, err)
			return
		}
	}
	if req.Reflection != nil {
		if err := h.store.SetTodayReflection(r.Context(), *req.Reflection); err != nil {
			MapStateError(w, r, err)
			return
		}
	}

	var intent *types.DailyIntent
	h.store.Read(func(st *types.AppState, now time.Time) {
		intent = derive.IntentByDate(st, now.Format(time.DateOnly))
	})
	writeJSON(w, http.StatusOK, intent)
}
