package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/astralhq/astral/internal/derive"
	"github.com/astralhq/astral/internal/types"
	"github.com/astralhq/astral/internal/validation"
)

// ListDeals handles GET /api/v1/deals with an optional pipeline filter.
func (h *Handler) ListDeals(w http.ResponseWriter, r *http.Request) {
	var deals []types.PipelineDeal
	h.store.Read(func(st *types.AppState, _ time.Time) {
		if p := r.URL.Query().Get("pipeline"); p != "" {
			deals = derive.DealsByPipeline(st, types.PipelineType(p))
			return
		}
		deals = append(deals, st.Deals...)
	})
	writeJSON(w, http.StatusOK, deals)
}

// CreateDeal handles POST /api/v1/deals
func (h *Handler) CreateDeal(w http.ResponseWriter, r *http.Request) {
	var in types.NewDeal
	if !decodeJSON(w, r, &in) {
		return
	}

	var c validation.Collector
	c.Add(validation.ValidateRequired("name", in.Name))
	c.Add(validation.ValidateEnum("pipelineType", string(in.PipelineType), []string{
		string(types.PipelineSalvaje), string(types.PipelineAIBots),
	}))
	if c.HasErrors() {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", c.Errors())
		return
	}

	deal, err := h.store.AddDeal(r.Context(), in)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, deal)
}

// UpdateDeal handles PATCH /api/v1/deals/{id}
func (h *Handler) UpdateDeal(w http.ResponseWriter, r *http.Request) {
	var u types.DealUpdate
	if !decodeJSON(w, r, &u) {
		return
	}

	deal, err := h.store.UpdateDeal(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	if deal == nil {
		WriteProblem(w, r, http.StatusNotFound, "Deal not found")
		return
	}
	writeJSON(w, http.StatusOK, deal)
}

// DeleteDeal handles DELETE /api/v1/deals/{id}
func (h *Handler) DeleteDeal(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteDeal(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStateError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoveDealRequest is the POST /api/v1/deals/{id}/stage payload. Stage
// vocabulary is free-form and pipeline-specific, so it is not validated.
type MoveDealRequest struct {
	Stage string `json:"stage"`
}

// MoveDeal handles POST /api/v1/deals/{id}/stage
func (h *Handler) MoveDeal(w http.ResponseWriter, r *http.Request) {
	var req MoveDealRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateRequired("stage", req.Stage); err != nil {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", []validation.ValidationError{*err})
		return
	}

	deal, err := h.store.MoveDealToStage(r.Context(), chi.URLParam(r, "id"), req.Stage)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	if deal == nil {
		WriteProblem(w, r, http.StatusNotFound, "Deal not found")
		return
	}
	writeJSON(w, http.StatusOK, deal)
}
