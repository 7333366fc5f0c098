package derive

import (
	"time"

	"github.com/astralhq/astral/internal/types"
)

// habitWindowDays is the trailing window for habit-goal progress.
const habitWindowDays = 30

// Progress returns the goal's completion percentage in [0,100].
// The algorithm is keyed on the goal type:
//
//   - numeric: currentMetric / targetMetric, capped at 100. No target (or a
//     zero target) means 0; a missing or negative current metric counts as 0.
//   - project: share of done tasks among GoalLinkedTasks. No linked tasks
//     means 0.
//   - pipeline: share of won deals (stage "sold" or "won") among deals
//     directly linked to the goal. No deals means 0.
//   - habit: share of the trailing 30 calendar days (today inclusive) that
//     have at least one logged activity for the goal.
func Progress(st *types.AppState, goal *types.Goal, now time.Time) float64 {
	if goal == nil {
		return 0
	}

	switch goal.Type {
	case types.GoalNumeric:
		if goal.TargetMetric == nil || *goal.TargetMetric == 0 {
			return 0
		}
		current := 0.0
		if goal.CurrentMetric != nil && *goal.CurrentMetric > 0 {
			current = *goal.CurrentMetric
		}
		pct := current / *goal.TargetMetric * 100
		if pct > 100 {
			return 100
		}
		return pct

	case types.GoalProject:
		linked := GoalLinkedTasks(st, goal)
		if len(linked) == 0 {
			return 0
		}
		done := 0
		for _, t := range linked {
			if t.Status == types.TaskDone {
				done++
			}
		}
		return float64(done) / float64(len(linked)) * 100

	case types.GoalPipeline:
		deals := GoalLinkedDeals(st, goal)
		if len(deals) == 0 {
			return 0
		}
		won := 0
		for _, d := range deals {
			if d.Stage == types.StageSold || d.Stage == types.StageWon {
				won++
			}
		}
		return float64(won) / float64(len(deals)) * 100

	case types.GoalHabit:
		active := 0
		for i := 0; i < habitWindowDays; i++ {
			if hasActivityOn(st, goal.ID, DaysBack(now, i)) {
				active++
			}
		}
		return float64(active) / float64(habitWindowDays) * 100

	default:
		return 0
	}
}

// hasActivityOn reports whether the goal has any activity logged on date.
func hasActivityOn(st *types.AppState, goalID, date string) bool {
	for _, a := range st.GoalActivities {
		if a.GoalID == goalID && a.Date == date {
			return true
		}
	}
	return false
}
