package state

import (
	"context"
	"time"

	"github.com/astralhq/astral/internal/types"
)

// maxMITs caps the most-important-task list for a day.
const maxMITs = 3

// upsertCheckIn finds or creates the check-in for date and applies fn.
func (s *Store) upsertCheckIn(ctx context.Context, date string, fn func(c *types.DailyCheckIn)) (*types.DailyCheckIn, error) {
	var result types.DailyCheckIn
	err := s.mutate(ctx, func(st *types.AppState) {
		for i := range st.DailyCheckIns {
			if st.DailyCheckIns[i].Date == date {
				c := &st.DailyCheckIns[i]
				fn(c)
				c.UpdatedAt = s.nowISO()
				result = *c
				return
			}
		}
		now := s.nowISO()
		c := types.DailyCheckIn{
			Date:      date,
			MITIDs:    []string{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		fn(&c)
		st.DailyCheckIns = append(st.DailyCheckIns, c)
		result = c
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SetMorningCheckIn upserts the morning half of today's check-in.
func (s *Store) SetMorningCheckIn(ctx context.Context, intention, singleAction string, goalFocus *string) (*types.DailyCheckIn, error) {
	return s.upsertCheckIn(ctx, s.today(), func(c *types.DailyCheckIn) {
		c.MorningIntention = intention
		c.SingleAction = singleAction
		c.GoalFocus = goalFocus
	})
}

// SetEveningReflection upserts the evening half of today's check-in.
func (s *Store) SetEveningReflection(ctx context.Context, didMove bool, goalMovedID *string, insight, whatLetGo string) (*types.DailyCheckIn, error) {
	return s.upsertCheckIn(ctx, s.today(), func(c *types.DailyCheckIn) {
		c.DidMoveGoalForward = didMove
		c.GoalMovedID = goalMovedID
		c.Insight = insight
		c.WhatLetGo = whatLetGo
	})
}

// UpdateCheckIn upserts the check-in for a date with partial fields.
func (s *Store) UpdateCheckIn(ctx context.Context, date string, u types.CheckInUpdate) (*types.DailyCheckIn, error) {
	return s.upsertCheckIn(ctx, date, func(c *types.DailyCheckIn) {
		if u.MorningIntention != nil {
			c.MorningIntention = *u.MorningIntention
		}
		if u.SingleAction != nil {
			c.SingleAction = *u.SingleAction
		}
		if u.GoalFocus != nil {
			c.GoalFocus = u.GoalFocus
		}
		if u.MITIDs != nil {
			c.MITIDs = clampMITs(u.MITIDs)
		}
		if u.DidMoveGoalForward != nil {
			c.DidMoveGoalForward = *u.DidMoveGoalForward
		}
		if u.GoalMovedID != nil {
			c.GoalMovedID = u.GoalMovedID
		}
		if u.Insight != nil {
			c.Insight = *u.Insight
		}
		if u.WhatLetGo != nil {
			c.WhatLetGo = *u.WhatLetGo
		}
	})
}

// SetMITs replaces today's most-important-task list. Ids beyond the cap
// are dropped in order.
func (s *Store) SetMITs(ctx context.Context, taskIDs []string) (*types.DailyCheckIn, error) {
	clamped := clampMITs(taskIDs)
	return s.upsertCheckIn(ctx, s.today(), func(c *types.DailyCheckIn) {
		c.MITIDs = clamped
	})
}

// GetMITs returns today's most-important-task id list.
func (s *Store) GetMITs() []string {
	out := []string{}
	s.Read(func(st *types.AppState, now time.Time) {
		date := now.Format(time.DateOnly)
		for _, c := range st.DailyCheckIns {
			if c.Date == date {
				out = append(out, c.MITIDs...)
				return
			}
		}
	})
	return out
}

func clampMITs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	if len(ids) > maxMITs {
		ids = ids[:maxMITs]
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
