package state

import (
	"context"
	"time"

	"github.com/astralhq/astral/internal/types"
)

// AddInboxItem captures raw text into the inbox, untriaged.
func (s *Store) AddInboxItem(ctx context.Context, text string) (*types.InboxItem, error) {
	item := types.InboxItem{
		ID:            newID(prefixInbox),
		RawText:       text,
		SuggestedType: types.InboxUnknown,
		Processed:     false,
		CreatedAt:     s.nowISO(),
	}
	err := s.mutate(ctx, func(st *types.AppState) {
		st.InboxItems = append(st.InboxItems, item)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SetInboxSuggestion records a triage suggestion on a capture. Called by the
// suggestion pass; never changes Processed.
func (s *Store) SetInboxSuggestion(ctx context.Context, id string, suggestedType types.InboxItemType, areaID *string) error {
	return s.mutate(ctx, func(st *types.AppState) {
		for i := range st.InboxItems {
			if st.InboxItems[i].ID == id {
				st.InboxItems[i].SuggestedType = suggestedType
				st.InboxItems[i].SuggestedAreaID = areaID
				return
			}
		}
	})
}

// DeleteInboxItem discards a capture.
func (s *Store) DeleteInboxItem(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *types.AppState) {
		kept := st.InboxItems[:0]
		for _, i := range st.InboxItems {
			if i.ID != id {
				kept = append(kept, i)
			}
		}
		st.InboxItems = kept
	})
}

// ClearProcessedInbox drops every capture already triaged.
func (s *Store) ClearProcessedInbox(ctx context.Context) error {
	return s.mutate(ctx, func(st *types.AppState) {
		kept := st.InboxItems[:0]
		for _, i := range st.InboxItems {
			if !i.Processed {
				kept = append(kept, i)
			}
		}
		st.InboxItems = kept
	})
}

// ProcessInboxItem converts a capture into a task, project, or note with the
// standard capture defaults, then marks the item processed. An unknown id or
// an unsupported target type is a no-op.
func (s *Store) ProcessInboxItem(ctx context.Context, id string, in types.ProcessInboxInput) error {
	now := s.nowISO()
	return s.mutate(ctx, func(st *types.AppState) {
		var item *types.InboxItem
		for i := range st.InboxItems {
			if st.InboxItems[i].ID == id {
				item = &st.InboxItems[i]
				break
			}
		}
		if item == nil {
			return
		}

		title := in.Title
		if title == "" {
			title = item.RawText
		}

		switch in.Type {
		case types.InboxTask:
			st.Tasks = append(st.Tasks, types.Task{
				ID:        newID(prefixTask),
				Title:     title,
				ProjectID: in.ProjectID,
				AreaID:    in.AreaID,
				Area:      types.TaskAreaWork,
				Category:  types.CategoryPersonal,
				Status:    types.TaskTodo,
				Priority:  types.PriorityNormal,
				TimeBlock: types.BlockUnscheduled,
				Mode:      types.ModeAll,
				CreatedAt: now,
			})
		case types.InboxProject:
			st.Projects = append(st.Projects, types.Project{
				ID:        newID(prefixProject),
				Name:      title,
				Type:      types.ProjectOther,
				Status:    types.ProjectIdea,
				Priority:  3,
				Links:     []types.ProjectLink{},
				AreaID:    in.AreaID,
				CreatedAt: now,
				UpdatedAt: now,
			})
		case types.InboxNote:
			st.Notes = append(st.Notes, types.Note{
				ID:        newID(prefixNote),
				Title:     title,
				Category:  types.NoteIdeas,
				Tags:      []string{},
				ProjectID: in.ProjectID,
				AreaID:    in.AreaID,
				CreatedAt: now,
				UpdatedAt: now,
			})
		default:
			return
		}

		item.Processed = true
	})
}

// GetInboxItem returns a copy of the capture, or nil when absent.
func (s *Store) GetInboxItem(id string) *types.InboxItem {
	var found *types.InboxItem
	s.Read(func(st *types.AppState, _ time.Time) {
		for i := range st.InboxItems {
			if st.InboxItems[i].ID == id {
				clone := st.InboxItems[i]
				found = &clone
				return
			}
		}
	})
	return found
}
