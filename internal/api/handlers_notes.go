package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/astralhq/astral/internal/derive"
	"github.com/astralhq/astral/internal/types"
	"github.com/astralhq/astral/internal/validation"
)

// ListNotes handles GET /api/v1/notes with optional category and q filters.
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	var notes []types.Note
	h.store.Read(func(st *types.AppState, _ time.Time) {
		switch {
		case r.URL.Query().Get("q") != "":
			notes = derive.SearchNotes(st, r.URL.Query().Get("q"))
		case r.URL.Query().Get("category") != "":
			notes = derive.NotesByCategory(st, types.NoteCategory(r.URL.Query().Get("category")))
		default:
			notes = append(notes, st.Notes...)
		}
	})
	writeJSON(w, http.StatusOK, notes)
}

// CreateNote handles POST /api/v1/notes
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var in types.NewNote
	if !decodeJSON(w, r, &in) {
		return
	}

	var c validation.Collector
	c.Add(validation.ValidateRequired("title", in.Title))
	c.Add(validation.ValidateUTF8("content", in.Content))
	if c.HasErrors() {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", c.Errors())
		return
	}

	note, err := h.store.AddNote(r.Context(), in)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// UpdateNote handles PATCH /api/v1/notes/{id}
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var u types.NoteUpdate
	if !decodeJSON(w, r, &u) {
		return
	}

	note, err := h.store.UpdateNote(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	if note == nil {
		WriteProblem(w, r, http.StatusNotFound, "Note not found")
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// DeleteNote handles DELETE /api/v1/notes/{id}
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteNote(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStateError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListContent handles GET /api/v1/content with an optional status filter.
func (h *Handler) ListContent(w http.ResponseWriter, r *http.Request) {
	var items []types.ContentItem
	h.store.Read(func(st *types.AppState, _ time.Time) {
		if s := r.URL.Query().Get("status"); s != "" {
			items = derive.ContentByStatus(st, types.ContentStatus(s))
			return
		}
		items = append(items, st.ContentItems...)
	})
	writeJSON(w, http.StatusOK, items)
}

// CreateContent handles POST /api/v1/content
func (h *Handler) CreateContent(w http.ResponseWriter, r *http.Request) {
	var in types.NewContentItem
	if !decodeJSON(w, r, &in) {
		return
	}
	if err := validation.ValidateRequired("title", in.Title); err != nil {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", []validation.ValidationError{*err})
		return
	}

	item, err := h.store.AddContent(r.Context(), in)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// UpdateContent handles PATCH /api/v1/content/{id}
func (h *Handler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	var u types.ContentItemUpdate
	if !decodeJSON(w, r, &u) {
		return
	}

	item, err := h.store.UpdateContent(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	if item == nil {
		WriteProblem(w, r, http.StatusNotFound, "Content item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DeleteContent handles DELETE /api/v1/content/{id}
func (h *Handler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteContent(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStateError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
