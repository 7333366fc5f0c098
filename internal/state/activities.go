package state

import (
	"context"

	"github.com/astralhq/astral/internal/types"
)

// LogGoalActivity appends a row to a goal's activity log. The log is
// append-only; rows only disappear when their goal is deleted.
func (s *Store) LogGoalActivity(ctx context.Context, in types.NewGoalActivity) (*types.GoalActivity, error) {
	date := in.Date
	if date == "" {
		date = s.today()
	}
	a := types.GoalActivity{
		ID:             newID(prefixActivity),
		GoalID:         in.GoalID,
		Date:           date,
		Type:           in.Type,
		Description:    in.Description,
		LinkedEntityID: in.LinkedEntityID,
		MetricChange:   in.MetricChange,
		CreatedAt:      s.nowISO(),
	}
	err := s.mutate(ctx, func(st *types.AppState) {
		st.GoalActivities = append(st.GoalActivities, a)
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}
