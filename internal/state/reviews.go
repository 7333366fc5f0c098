package state

import (
	"context"
	"time"

	"github.com/astralhq/astral/internal/types"
)

// maxWeeklyOutcomes caps how many outcomes a review can plan.
const maxWeeklyOutcomes = 5

// AddWeeklyReview creates the review for a week. Outcomes beyond the cap
// are dropped; outcomes without an id are assigned one.
func (s *Store) AddWeeklyReview(ctx context.Context, in types.NewWeeklyReview) (*types.WeeklyReview, error) {
	r := types.WeeklyReview{
		ID:              newID(prefixWeekly),
		WeekStart:       in.WeekStart,
		WhatMovedNeedle: in.WhatMovedNeedle,
		WhatDidntWork:   in.WhatDidntWork,
		WhatFeltAligned: in.WhatFeltAligned,
		WeeklyOutcomes:  normalizeOutcomes(in.WeeklyOutcomes),
		CompletedAt:     in.CompletedAt,
		CreatedAt:       s.nowISO(),
	}
	err := s.mutate(ctx, func(st *types.AppState) {
		st.WeeklyReviews = append(st.WeeklyReviews, r)
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateWeeklyReview applies a partial update. Unknown ids are a no-op
// and return nil.
func (s *Store) UpdateWeeklyReview(ctx context.Context, id string, u types.WeeklyReviewUpdate) (*types.WeeklyReview, error) {
	var updated *types.WeeklyReview
	err := s.mutate(ctx, func(st *types.AppState) {
		for i := range st.WeeklyReviews {
			if st.WeeklyReviews[i].ID != id {
				continue
			}
			r := &st.WeeklyReviews[i]
			if u.WhatMovedNeedle != nil {
				r.WhatMovedNeedle = *u.WhatMovedNeedle
			}
			if u.WhatDidntWork != nil {
				r.WhatDidntWork = *u.WhatDidntWork
			}
			if u.WhatFeltAligned != nil {
				r.WhatFeltAligned = *u.WhatFeltAligned
			}
			if u.WeeklyOutcomes != nil {
				r.WeeklyOutcomes = normalizeOutcomes(u.WeeklyOutcomes)
			}
			if u.CompletedAt != nil {
				r.CompletedAt = *u.CompletedAt
			}
			clone := *r
			updated = &clone
			return
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetWeeklyReview returns a copy of the review, or nil when absent.
func (s *Store) GetWeeklyReview(id string) *types.WeeklyReview {
	var out *types.WeeklyReview
	s.Read(func(st *types.AppState, _ time.Time) {
		for _, r := range st.WeeklyReviews {
			if r.ID == id {
				clone := r
				out = &clone
				return
			}
		}
	})
	return out
}

func normalizeOutcomes(in []types.WeeklyOutcome) []types.WeeklyOutcome {
	if len(in) > maxWeeklyOutcomes {
		in = in[:maxWeeklyOutcomes]
	}
	out := make([]types.WeeklyOutcome, 0, len(in))
	for _, o := range in {
		if o.ID == "" {
			o.ID = newID(prefixOutcome)
		}
		if o.LinkedTaskIDs == nil {
			o.LinkedTaskIDs = []string{}
		}
		out = append(out, o)
	}
	return out
}
