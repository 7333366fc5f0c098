package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/astralhq/astral/internal/derive"
	"github.com/astralhq/astral/internal/types"
	"github.com/astralhq/astral/internal/validation"
)

// ListInbox handles GET /api/v1/inbox (unprocessed captures only).
func (h *Handler) ListInbox(w http.ResponseWriter, r *http.Request) {
	var items []types.InboxItem
	h.store.Read(func(st *types.AppState, _ time.Time) {
		items = derive.UnprocessedInbox(st)
	})
	writeJSON(w, http.StatusOK, items)
}

// CaptureRequest is the POST /api/v1/inbox payload.
type CaptureRequest struct {
	Text string `json:"text"`
}

// CaptureInbox handles POST /api/v1/inbox. The capture lands immediately;
// suggestion runs afterwards and is best-effort.
func (h *Handler) CaptureInbox(w http.ResponseWriter, r *http.Request) {
	var req CaptureRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var c validation.Collector
	c.Add(validation.ValidateRequired("text", req.Text))
	c.Add(validation.ValidateUTF8("text", req.Text))
	c.Add(validation.ValidateMaxLength("text", req.Text, 2000))
	if c.HasErrors() {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", c.Errors())
		return
	}

	item, err := h.store.AddInboxItem(r.Context(), req.Text)
	if err != nil {
		MapStateError(w, r, err)
		return
	}

	if h.suggester != nil {
		sug, err := h.suggester.Suggest(r.Context(), h.store.Snapshot(), req.Text)
		if err != nil {
			slog.Warn("inbox suggestion failed", "error", err, "item_id", item.ID)
		}
		if sug.Type != types.InboxUnknown || sug.AreaID != nil {
			if err := h.store.SetInboxSuggestion(r.Context(), item.ID, sug.Type, sug.AreaID); err == nil {
				item.SuggestedType = sug.Type
				item.SuggestedAreaID = sug.AreaID
			}
		}
	}

	writeJSON(w, http.StatusCreated, item)
}

// ProcessInbox handles POST /api/v1/inbox/{id}/process
func (h *Handler) ProcessInbox(w http.ResponseWriter, r *http.Request) {
	var in types.ProcessInboxInput
	if !decodeJSON(w, r, &in) {
		return
	}

	id := chi.URLParam(r, "id")
	if h.store.GetInboxItem(id) == nil {
		WriteProblem(w, r, http.StatusNotFound, "Inbox item not found")
		return
	}

	if err := h.store.ProcessInboxItem(r.Context(), id, in); err != nil {
		MapStateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.store.GetInboxItem(id))
}

// DeleteInbox handles DELETE /api/v1/inbox/{id}
func (h *Handler) DeleteInbox(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteInboxItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStateError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearProcessedInbox handles POST /api/v1/inbox/clear-processed
func (h *Handler) ClearProcessedInbox(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearProcessedInbox(r.Context()); err != nil {
		MapStateError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
