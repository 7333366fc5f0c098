package state

import (
	"context"

	"github.com/astralhq/astral/internal/types"
)

// AddContent creates a content item.
func (s *Store) AddContent(ctx context.Context, in types.NewContentItem) (*types.ContentItem, error) {
	now := s.nowISO()
	assets := in.AssetURLs
	if assets == nil {
		assets = []string{}
	}
	item := types.ContentItem{
		ID:           newID(prefixContent),
		Title:        in.Title,
		Type:         in.Type,
		Platform:     in.Platform,
		Status:       in.Status,
		Content:      in.Content,
		AssetURLs:    assets,
		ScheduledFor: in.ScheduledFor,
		PostedAt:     in.PostedAt,
		GoalID:       in.GoalID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := s.mutate(ctx, func(st *types.AppState) {
		st.ContentItems = append(st.ContentItems, item)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateContent applies a partial update and refreshes updatedAt.
// Unknown ids are a no-op and return nil.
func (s *Store) UpdateContent(ctx context.Context, id string, u types.ContentItemUpdate) (*types.ContentItem, error) {
	var updated *types.ContentItem
	err := s.mutate(ctx, func(st *types.AppState) {
		for i := range st.ContentItems {
			if st.ContentItems[i].ID != id {
				continue
			}
			c := &st.ContentItems[i]
			if u.Title != nil {
				c.Title = *u.Title
			}
			if u.Type != nil {
				c.Type = *u.Type
			}
			if u.Platform != nil {
				c.Platform = *u.Platform
			}
			if u.Status != nil {
				c.Status = *u.Status
			}
			if u.Content != nil {
				c.Content = *u.Content
			}
			if u.AssetURLs != nil {
				c.AssetURLs = u.AssetURLs
			}
			if u.ScheduledFor != nil {
				c.ScheduledFor = *u.ScheduledFor
			}
			if u.PostedAt != nil {
				c.PostedAt = *u.PostedAt
			}
			if u.GoalID != nil {
				c.GoalID = *u.GoalID
			}
			c.UpdatedAt = s.nowISO()
			clone := *c
			updated = &clone
			return
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteContent removes the content item.
func (s *Store) DeleteContent(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *types.AppState) {
		kept := st.ContentItems[:0]
		for _, c := range st.ContentItems {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		st.ContentItems = kept
	})
}
