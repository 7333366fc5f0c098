package state

import (
	"context"
	"time"

	"github.com/astralhq/astral/internal/types"
)

// AddArea creates a new life domain.
func (s *Store) AddArea(ctx context.Context, in types.NewArea) (*types.Area, error) {
	area := types.Area{
		ID:        newID(prefixArea),
		Name:      in.Name,
		Type:      in.Type,
		Icon:      in.Icon,
		Color:     in.Color,
		Order:     in.Order,
		CreatedAt: s.nowISO(),
	}
	err := s.mutate(ctx, func(st *types.AppState) {
		st.Areas = append(st.Areas, area)
	})
	if err != nil {
		return nil, err
	}
	return &area, nil
}

// UpdateArea applies a partial update. Unknown ids are a no-op and return nil.
func (s *Store) UpdateArea(ctx context.Context, id string, u types.AreaUpdate) (*types.Area, error) {
	var updated *types.Area
	err := s.mutate(ctx, func(st *types.AppState) {
		for i := range st.Areas {
			if st.Areas[i].ID != id {
				continue
			}
			a := &st.Areas[i]
			if u.Name != nil {
				a.Name = *u.Name
			}
			if u.Type != nil {
				a.Type = *u.Type
			}
			if u.Icon != nil {
				a.Icon = *u.Icon
			}
			if u.Color != nil {
				a.Color = *u.Color
			}
			if u.Order != nil {
				a.Order = *u.Order
			}
			clone := *a
			updated = &clone
			return
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteArea removes the area and clears areaId on everything tagged with it.
// Dependents survive; only the tag is lost.
func (s *Store) DeleteArea(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *types.AppState) {
		kept := st.Areas[:0]
		for _, a := range st.Areas {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		st.Areas = kept
		applyCascades(st, "area", id)
	})
}

// GetArea returns a copy of the area, or nil when absent.
func (s *Store) GetArea(id string) *types.Area {
	var found *types.Area
	s.Read(func(st *types.AppState, _ time.Time) {
		for i := range st.Areas {
			if st.Areas[i].ID == id {
				clone := st.Areas[i]
				found = &clone
				return
			}
		}
	})
	return found
}
