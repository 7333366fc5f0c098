package derive

import (
	"sort"
	"time"

	"github.com/astralhq/astral/internal/types"
)

// DefaultIgnoredDays is the trailing window for ignored-goal detection.
const DefaultIgnoredDays = 7

// DefaultHeatmapDays is the trailing window for activity heatmaps.
const DefaultHeatmapDays = 30

// OrphanTasks returns open tasks (not done, not someday) with no resolvable
// goal lineage. A task linked only through a goal's projectIds list is not
// an orphan.
func OrphanTasks(st *types.AppState) []types.Task {
	orphans := []types.Task{}
	for i := range st.Tasks {
		t := &st.Tasks[i]
		if t.Status == types.TaskDone || t.Status == types.TaskSomeday {
			continue
		}
		if !HasGoalContext(st, t) {
			orphans = append(orphans, *t)
		}
	}
	return orphans
}

// IgnoredGoals returns active goals with no activity dated within the
// trailing window. The cutoff is today minus days; an activity dated exactly
// on the cutoff still counts as recent. A goal with no activities at all is
// trivially ignored.
func IgnoredGoals(st *types.AppState, now time.Time, days int) []types.Goal {
	if days <= 0 {
		days = DefaultIgnoredDays
	}
	cutoff := DaysBack(now, days)

	ignored := []types.Goal{}
	for _, g := range st.Goals {
		if g.Status != types.GoalActive {
			continue
		}
		recent := false
		for _, a := range st.GoalActivities {
			if a.GoalID == g.ID && a.Date >= cutoff {
				recent = true
				break
			}
		}
		if !recent {
			ignored = append(ignored, g)
		}
	}
	return ignored
}

// GoalHeatmap maps each of the trailing days (today and the days-1 before
// it) to whether the goal has any activity on that date.
func GoalHeatmap(st *types.AppState, goalID string, now time.Time, days int) map[string]bool {
	if days <= 0 {
		days = DefaultHeatmapDays
	}
	heatmap := make(map[string]bool, days)
	for i := 0; i < days; i++ {
		date := DaysBack(now, i)
		heatmap[date] = hasActivityOn(st, goalID, date)
	}
	return heatmap
}

// GoalActivities returns the goal's activity log, newest date first.
// A positive days limits the result to the trailing window.
func GoalActivities(st *types.AppState, goalID string, now time.Time, days int) []types.GoalActivity {
	activities := []types.GoalActivity{}
	cutoff := ""
	if days > 0 {
		cutoff = DaysBack(now, days)
	}
	for _, a := range st.GoalActivities {
		if a.GoalID != goalID {
			continue
		}
		if cutoff != "" && a.Date < cutoff {
			continue
		}
		activities = append(activities, a)
	}
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Date > activities[j].Date
	})
	return activities
}

// MITs resolves today's check-in MIT ids to tasks, preserving the id order.
// Ids that no longer resolve are silently dropped.
func MITs(st *types.AppState, today string) []types.Task {
	checkIn := CheckInByDate(st, today)
	if checkIn == nil || len(checkIn.MITIDs) == 0 {
		return []types.Task{}
	}
	tasks := []types.Task{}
	for _, id := range checkIn.MITIDs {
		if t := taskByID(st, id); t != nil {
			tasks = append(tasks, *t)
		}
	}
	return tasks
}

// CheckInByDate returns the daily check-in for the given date, or nil.
func CheckInByDate(st *types.AppState, date string) *types.DailyCheckIn {
	for i := range st.DailyCheckIns {
		if st.DailyCheckIns[i].Date == date {
			return &st.DailyCheckIns[i]
		}
	}
	return nil
}

// ReviewByWeekStart returns the weekly review keyed by the given Monday, or nil.
func ReviewByWeekStart(st *types.AppState, weekStart string) *types.WeeklyReview {
	for i := range st.WeeklyReviews {
		if st.WeeklyReviews[i].WeekStart == weekStart {
			return &st.WeeklyReviews[i]
		}
	}
	return nil
}

// IntentByDate returns the daily intent for the given date, or nil.
func IntentByDate(st *types.AppState, date string) *types.DailyIntent {
	for i := range st.DailyIntents {
		if st.DailyIntents[i].Date == date {
			return &st.DailyIntents[i]
		}
	}
	return nil
}
