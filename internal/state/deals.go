package state

import (
	"context"
	"time"

	"github.com/astralhq/astral/internal/types"
)

// AddDeal creates a pipeline deal.
func (s *Store) AddDeal(ctx context.Context, in types.NewDeal) (*types.PipelineDeal, error) {
	now := s.nowISO()
	deal := types.PipelineDeal{
		ID:           newID(prefixDeal),
		PipelineType: in.PipelineType,
		Name:         in.Name,
		Value:        in.Value,
		Stage:        in.Stage,
		NextAction:   in.NextAction,
		ContactInfo:  in.ContactInfo,
		Phone:        in.Phone,
		Email:        in.Email,
		Notes:        in.Notes,
		GoalID:       in.GoalID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := s.mutate(ctx, func(st *types.AppState) {
		st.Deals = append(st.Deals, deal)
	})
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

// UpdateDeal applies a partial update and refreshes updatedAt.
// Unknown ids are a no-op and return nil.
func (s *Store) UpdateDeal(ctx context.Context, id string, u types.DealUpdate) (*types.PipelineDeal, error) {
	var updated *types.PipelineDeal
	err := s.mutate(ctx, func(st *types.AppState) {
		for i := range st.Deals {
			if st.Deals[i].ID != id {
				continue
			}
			d := &st.Deals[i]
			if u.PipelineType != nil {
				d.PipelineType = *u.PipelineType
			}
			if u.Name != nil {
				d.Name = *u.Name
			}
			if u.Value != nil {
				d.Value = *u.Value
			}
			if u.Stage != nil {
				d.Stage = *u.Stage
			}
			if u.NextAction != nil {
				d.NextAction = *u.NextAction
			}
			if u.ContactInfo != nil {
				d.ContactInfo = *u.ContactInfo
			}
			if u.Phone != nil {
				d.Phone = *u.Phone
			}
			if u.Email != nil {
				d.Email = *u.Email
			}
			if u.Notes != nil {
				d.Notes = *u.Notes
			}
			if u.GoalID != nil {
				d.GoalID = *u.GoalID
			}
			d.UpdatedAt = s.nowISO()
			clone := *d
			updated = &clone
			return
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteDeal removes the deal.
func (s *Store) DeleteDeal(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *types.AppState) {
		kept := st.Deals[:0]
		for _, d := range st.Deals {
			if d.ID != id {
				kept = append(kept, d)
			}
		}
		st.Deals = kept
	})
}

// MoveDealToStage moves a deal to a new pipeline stage and refreshes
// updatedAt. Stage vocabulary is per pipeline and not validated here.
func (s *Store) MoveDealToStage(ctx context.Context, id, stage string) (*types.PipelineDeal, error) {
	var updated *types.PipelineDeal
	err := s.mutate(ctx, func(st *types.AppState) {
		for i := range st.Deals {
			if st.Deals[i].ID != id {
				continue
			}
			d := &st.Deals[i]
			d.Stage = stage
			d.UpdatedAt = s.nowISO()
			clone := *d
			updated = &clone
			return
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetDeal returns a copy of the deal, or nil when absent.
func (s *Store) GetDeal(id string) *types.PipelineDeal {
	var found *types.PipelineDeal
	s.Read(func(st *types.AppState, _ time.Time) {
		for i := range st.Deals {
			if st.Deals[i].ID == id {
				clone := st.Deals[i]
				found = &clone
				return
			}
		}
	})
	return found
}
