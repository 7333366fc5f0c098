package state

import (
	"context"
	"time"

	"github.com/astralhq/astral/internal/types"
)

// AddNote creates a vault note.
func (s *Store) AddNote(ctx context.Context, in types.NewNote) (*types.Note, error) {
	now := s.nowISO()
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	note := types.Note{
		ID:        newID(prefixNote),
		Title:     in.Title,
		Content:   in.Content,
		Category:  in.Category,
		Tags:      tags,
		ProjectID: in.ProjectID,
		AreaID:    in.AreaID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := s.mutate(ctx, func(st *types.AppState) {
		st.Notes = append(st.Notes, note)
	})
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote applies a partial update and refreshes updatedAt.
// Unknown ids are a no-op and return nil.
func (s *Store) UpdateNote(ctx context.Context, id string, u types.NoteUpdate) (*types.Note, error) {
	var updated *types.Note
	err := s.mutate(ctx, func(st *types.AppState) {
		for i := range st.Notes {
			if st.Notes[i].ID != id {
				continue
			}
			n := &st.Notes[i]
			if u.Title != nil {
				n.Title = *u.Title
			}
			if u.Content != nil {
				n.Content = *u.Content
			}
			if u.Category != nil {
				n.Category = *u.Category
			}
			if u.Tags != nil {
				n.Tags = u.Tags
			}
			if u.ProjectID != nil {
				n.ProjectID = *u.ProjectID
			}
			if u.AreaID != nil {
				n.AreaID = *u.AreaID
			}
			n.UpdatedAt = s.nowISO()
			clone := *n
			updated = &clone
			return
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteNote removes the note.
func (s *Store) DeleteNote(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *types.AppState) {
		kept := st.Notes[:0]
		for _, n := range st.Notes {
			if n.ID != id {
				kept = append(kept, n)
			}
		}
		st.Notes = kept
	})
}

// GetNote returns a copy of the note, or nil when absent.
func (s *Store) GetNote(id string) *types.Note {
	var found *types.Note
	s.Read(func(st *types.AppState, _ time.Time) {
		for i := range st.Notes {
			if st.Notes[i].ID == id {
				clone := st.Notes[i]
				found = &clone
				return
			}
		}
	})
	return found
}
