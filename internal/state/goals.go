package state

import (
	"context"
	"fmt"
	"time"

	"github.com/astralhq/astral/internal/types"
)

// AddGoal creates a quarterly goal. The goal type picks the progress
// algorithm and does not change after creation.
func (s *Store) AddGoal(ctx context.Context, in types.NewGoal) (*types.Goal, error) {
	projectIDs := in.ProjectIDs
	if projectIDs == nil {
		projectIDs = []string{}
	}
	now := s.nowISO()
	g := types.Goal{
		ID:            newID(prefixGoal),
		Title:         in.Title,
		Why:           in.Why,
		Type:          in.Type,
		Quarter:       in.Quarter,
		Year:          in.Year,
		Status:        in.Status,
		AreaID:        in.AreaID,
		TargetMetric:  in.TargetMetric,
		CurrentMetric: in.CurrentMetric,
		MetricUnit:    in.MetricUnit,
		PipelineType:  in.PipelineType,
		TargetStage:   in.TargetStage,
		ProjectIDs:    projectIDs,
		Color:         in.Color,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err := s.mutate(ctx, func(st *types.AppState) {
		st.Goals = append(st.Goals, g)
	})
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// UpdateGoal applies a partial update. The goal type is not updatable.
// Unknown ids are a no-op and return nil.
func (s *Store) UpdateGoal(ctx context.Context, id string, u types.GoalUpdate) (*types.Goal, error) {
	var updated *types.Goal
	err := s.mutate(ctx, func(st *types.AppState) {
		for i := range st.Goals {
			if st.Goals[i].ID != id {
				continue
			}
			g := &st.Goals[i]
			if u.Title != nil {
				g.Title = *u.Title
			}
			if u.Why != nil {
				g.Why = *u.Why
			}
			if u.Quarter != nil {
				g.Quarter = *u.Quarter
			}
			if u.Year != nil {
				g.Year = *u.Year
			}
			if u.Status != nil {
				g.Status = *u.Status
			}
			if u.AreaID != nil {
				g.AreaID = *u.AreaID
			}
			if u.TargetMetric != nil {
				g.TargetMetric = u.TargetMetric
			}
			if u.CurrentMetric != nil {
				g.CurrentMetric = u.CurrentMetric
			}
			if u.MetricUnit != nil {
				g.MetricUnit = *u.MetricUnit
			}
			if u.PipelineType != nil {
				g.PipelineType = *u.PipelineType
			}
			if u.TargetStage != nil {
				g.TargetStage = *u.TargetStage
			}
			if u.ProjectIDs != nil {
				g.ProjectIDs = u.ProjectIDs
			}
			if u.Color != nil {
				g.Color = *u.Color
			}
			g.UpdatedAt = s.nowISO()
			clone := *g
			updated = &clone
			return
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteGoal removes the goal, detaches every entity that pointed at it,
// and drops its activity log.
func (s *Store) DeleteGoal(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *types.AppState) {
		kept := st.Goals[:0]
		for _, g := range st.Goals {
			if g.ID != id {
				kept = append(kept, g)
			}
		}
		st.Goals = kept
		applyCascades(st, "goal", id)
	})
}

// UpdateGoalMetric sets a numeric goal's current metric and appends a
// metric_updated activity describing the change. A missing current metric
// counts as zero for the change delta. Unknown ids are a no-op.
func (s *Store) UpdateGoalMetric(ctx context.Context, id string, value float64) (*types.Goal, error) {
	var updated *types.Goal
	err := s.mutate(ctx, func(st *types.AppState) {
		for i := range st.Goals {
			if st.Goals[i].ID != id {
				continue
			}
			g := &st.Goals[i]
			old := 0.0
			if g.CurrentMetric != nil {
				old = *g.CurrentMetric
			}
			v := value
			g.CurrentMetric = &v
			g.UpdatedAt = s.nowISO()

			change := value - old
			st.GoalActivities = append(st.GoalActivities, types.GoalActivity{
				ID:           newID(prefixActivity),
				GoalID:       g.ID,
				Date:         s.today(),
				Type:         types.ActivityMetricUpdated,
				Description:  fmt.Sprintf("Updated from %v to %v %s", old, value, g.MetricUnit),
				MetricChange: &change,
				CreatedAt:    s.nowISO(),
			})
			clone := *g
			updated = &clone
			return
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetGoal returns a copy of the goal, or nil when absent.
func (s *Store) GetGoal(id string) *types.Goal {
	var out *types.Goal
	s.Read(func(st *types.AppState, _ time.Time) {
		for _, g := range st.Goals {
			if g.ID == id {
				clone := g
				out = &clone
				return
			}
		}
	})
	return out
}
