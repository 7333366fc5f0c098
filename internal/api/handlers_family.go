package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/astralhq/astral/internal/derive"
	"github.com/astralhq/astral/internal/types"
	"github.com/astralhq/astral/internal/validation"
)

// ListWeekMealPlans handles GET /api/v1/meal-plans/week (Sunday-start).
func (h *Handler) ListWeekMealPlans(w http.ResponseWriter, r *http.Request) {
	var plans []types.MealPlan
	h.store.Read(func(st *types.AppState, now time.Time) {
		plans = derive.WeekMealPlans(st, now)
	})
	writeJSON(w, http.StatusOK, plans)
}

// PutMealPlan handles PUT /api/v1/meal-plans. The plan for the given date
// is created or replaced.
func (h *Handler) PutMealPlan(w http.ResponseWriter, r *http.Request) {
	var in types.NewMealPlan
	if !decodeJSON(w, r, &in) {
		return
	}
	if err := validation.ValidateDate("date", in.Date); err != nil {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", []validation.ValidationError{*err})
		return
	}

	plan, err := h.store.AddMealPlan(r.Context(), in)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// UpdateMealPlan handles PATCH /api/v1/meal-plans/{id}
func (h *Handler) UpdateMealPlan(w http.ResponseWriter, r *http.Request) {
	var u types.MealPlanUpdate
	if !decodeJSON(w, r, &u) {
		return
	}

	plan, err := h.store.UpdateMealPlan(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	if plan == nil {
		WriteProblem(w, r, http.StatusNotFound, "Meal plan not found")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// DeleteMealPlan handles DELETE /api/v1/meal-plans/{id}
func (h *Handler) DeleteMealPlan(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteMealPlan(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStateError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListShopping handles GET /api/v1/shopping
func (h *Handler) ListShopping(w http.ResponseWriter, r *http.Request) {
	var items []types.ShoppingItem
	h.store.Read(func(st *types.AppState, _ time.Time) {
		items = append(items, st.ShoppingItems...)
	})
	writeJSON(w, http.StatusOK, items)
}

// CreateShoppingItem handles POST /api/v1/shopping
func (h *Handler) CreateShoppingItem(w http.ResponseWriter, r *http.Request) {
	var in types.NewShoppingItem
	if !decodeJSON(w, r, &in) {
		return
	}
	if err := validation.ValidateRequired("name", in.Name); err != nil {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", []validation.ValidationError{*err})
		return
	}

	item, err := h.store.AddShoppingItem(r.Context(), in)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// UpdateShoppingItem handles PATCH /api/v1/shopping/{id}
func (h *Handler) UpdateShoppingItem(w http.ResponseWriter, r *http.Request) {
	var u types.ShoppingItemUpdate
	if !decodeJSON(w, r, &u) {
		return
	}

	item, err := h.store.UpdateShoppingItem(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	if item == nil {
		WriteProblem(w, r, http.StatusNotFound, "Shopping item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// ToggleShoppingItem handles POST /api/v1/shopping/{id}/toggle
func (h *Handler) ToggleShoppingItem(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ToggleShoppingItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStateError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteShoppingItem handles DELETE /api/v1/shopping/{id}
func (h *Handler) DeleteShoppingItem(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteShoppingItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStateError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearCompletedShopping handles POST /api/v1/shopping/clear-completed
func (h *Handler) ClearCompletedShopping(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearCompletedShopping(r.Context()); err != nil {
		MapStateError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListUpcomingEvents handles GET /api/v1/events/upcoming
func (h *Handler) ListUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	var events []types.FamilyEvent
	h.store.Read(func(st *types.AppState, now time.Time) {
		events = derive.UpcomingEvents(st, now.Format(time.DateOnly))
	})
	writeJSON(w, http.StatusOK, events)
}

// CreateFamilyEvent handles POST /api/v1/events
func (h *Handler) CreateFamilyEvent(w http.ResponseWriter, r *http.Request) {
	var in types.NewFamilyEvent
	if !decodeJSON(w, r, &in) {
		return
	}

	var c validation.Collector
	c.Add(validation.ValidateRequired("title", in.Title))
	c.Add(validation.ValidateDate("date", in.Date))
	if c.HasErrors() {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", c.Errors())
		return
	}

	ev, err := h.store.AddFamilyEvent(r.Context(), in)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ev)
}

// UpdateFamilyEvent handles PATCH /api/v1/events/{id}
func (h *Handler) UpdateFamilyEvent(w http.ResponseWriter, r *http.Request) {
	var u types.FamilyEventUpdate
	if !decodeJSON(w, r, &u) {
		return
	}

	ev, err := h.store.UpdateFamilyEvent(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	if ev == nil {
		WriteProblem(w, r, http.StatusNotFound, "Family event not found")
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

// DeleteFamilyEvent handles DELETE /api/v1/events/{id}
func (h *Handler) DeleteFamilyEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteFamilyEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStateError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
