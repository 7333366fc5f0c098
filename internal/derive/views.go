package derive

import (
	"sort"
	"strings"
	"time"

	"github.com/astralhq/astral/internal/types"
)

// TodayTasks returns tasks scheduled for today, excluding someday tasks.
// Done tasks stay in the view so the day's list shows completions.
func TodayTasks(st *types.AppState, today string) []types.Task {
	tasks := []types.Task{}
	for _, t := range st.Tasks {
		if t.ScheduledFor != nil && *t.ScheduledFor == today && t.Status != types.TaskSomeday {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// InboxTasks returns unscheduled, projectless tasks that are still open.
func InboxTasks(st *types.AppState) []types.Task {
	tasks := []types.Task{}
	for _, t := range st.Tasks {
		if t.ScheduledFor == nil && t.ProjectID == nil &&
			t.Status != types.TaskSomeday && t.Status != types.TaskDone {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// UpcomingTasks returns open tasks scheduled strictly after today.
func UpcomingTasks(st *types.AppState, today string) []types.Task {
	tasks := []types.Task{}
	for _, t := range st.Tasks {
		if t.ScheduledFor != nil && *t.ScheduledFor > today && t.Status != types.TaskDone {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// SomedayTasks returns tasks parked in someday.
func SomedayTasks(st *types.AppState) []types.Task {
	tasks := []types.Task{}
	for _, t := range st.Tasks {
		if t.Status == types.TaskSomeday {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// ProjectTasks returns all tasks belonging to a project.
func ProjectTasks(st *types.AppState, projectID string) []types.Task {
	tasks := []types.Task{}
	for _, t := range st.Tasks {
		if t.ProjectID != nil && *t.ProjectID == projectID {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// ActiveProjects returns projects that are underway (not paused, not just an
// idea), highest priority first.
func ActiveProjects(st *types.AppState) []types.Project {
	projects := []types.Project{}
	for _, p := range st.Projects {
		if p.Status != types.ProjectPaused && p.Status != types.ProjectIdea {
			projects = append(projects, p)
		}
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Priority < projects[j].Priority
	})
	return projects
}

// ActiveGoals returns goals with active status.
func ActiveGoals(st *types.AppState) []types.Goal {
	goals := []types.Goal{}
	for _, g := range st.Goals {
		if g.Status == types.GoalActive {
			goals = append(goals, g)
		}
	}
	return goals
}

// GoalsByQuarter returns goals for one quarter of one year.
func GoalsByQuarter(st *types.AppState, quarter types.Quarter, year int) []types.Goal {
	goals := []types.Goal{}
	for _, g := range st.Goals {
		if g.Quarter == quarter && g.Year == year {
			goals = append(goals, g)
		}
	}
	return goals
}

// Areas returns all areas sorted by display order.
func Areas(st *types.AppState) []types.Area {
	areas := append([]types.Area{}, st.Areas...)
	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].Order < areas[j].Order
	})
	return areas
}

// AreasByType returns areas of one type sorted by display order.
func AreasByType(st *types.AppState, areaType types.AreaType) []types.Area {
	areas := []types.Area{}
	for _, a := range st.Areas {
		if a.Type == areaType {
			areas = append(areas, a)
		}
	}
	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].Order < areas[j].Order
	})
	return areas
}

// GoalsByArea returns goals tagged with the area.
func GoalsByArea(st *types.AppState, areaID string) []types.Goal {
	goals := []types.Goal{}
	for _, g := range st.Goals {
		if g.AreaID != nil && *g.AreaID == areaID {
			goals = append(goals, g)
		}
	}
	return goals
}

// ProjectsByArea returns projects tagged with the area.
func ProjectsByArea(st *types.AppState, areaID string) []types.Project {
	projects := []types.Project{}
	for _, p := range st.Projects {
		if p.AreaID != nil && *p.AreaID == areaID {
			projects = append(projects, p)
		}
	}
	return projects
}

// TasksByArea returns tasks tagged with the area.
func TasksByArea(st *types.AppState, areaID string) []types.Task {
	tasks := []types.Task{}
	for _, t := range st.Tasks {
		if t.AreaID != nil && *t.AreaID == areaID {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// NotesByArea returns notes tagged with the area.
func NotesByArea(st *types.AppState, areaID string) []types.Note {
	notes := []types.Note{}
	for _, n := range st.Notes {
		if n.AreaID != nil && *n.AreaID == areaID {
			notes = append(notes, n)
		}
	}
	return notes
}

// UnprocessedInbox returns captures not yet triaged.
func UnprocessedInbox(st *types.AppState) []types.InboxItem {
	items := []types.InboxItem{}
	for _, i := range st.InboxItems {
		if !i.Processed {
			items = append(items, i)
		}
	}
	return items
}

// DealsByPipeline returns deals belonging to one pipeline.
func DealsByPipeline(st *types.AppState, pipelineType types.PipelineType) []types.PipelineDeal {
	deals := []types.PipelineDeal{}
	for _, d := range st.Deals {
		if d.PipelineType == pipelineType {
			deals = append(deals, d)
		}
	}
	return deals
}

// NotesByCategory returns vault notes of one category.
func NotesByCategory(st *types.AppState, category types.NoteCategory) []types.Note {
	notes := []types.Note{}
	for _, n := range st.Notes {
		if n.Category == category {
			notes = append(notes, n)
		}
	}
	return notes
}

// SearchNotes returns notes whose title, content, or tags contain the query,
// case-insensitively.
func SearchNotes(st *types.AppState, query string) []types.Note {
	lower := strings.ToLower(query)
	notes := []types.Note{}
	for _, n := range st.Notes {
		if strings.Contains(strings.ToLower(n.Title), lower) ||
			strings.Contains(strings.ToLower(n.Content), lower) {
			notes = append(notes, n)
			continue
		}
		for _, tag := range n.Tags {
			if strings.Contains(strings.ToLower(tag), lower) {
				notes = append(notes, n)
				break
			}
		}
	}
	return notes
}

// ContentByStatus returns content items in one editorial state.
func ContentByStatus(st *types.AppState, status types.ContentStatus) []types.ContentItem {
	items := []types.ContentItem{}
	for _, c := range st.ContentItems {
		if c.Status == status {
			items = append(items, c)
		}
	}
	return items
}

// MonthlyIncome sums income transactions dated within the current month.
func MonthlyIncome(st *types.AppState, now time.Time) float64 {
	return monthlyTotal(st, now, types.TransactionIncome)
}

// MonthlyExpenses sums expense transactions dated within the current month.
func MonthlyExpenses(st *types.AppState, now time.Time) float64 {
	return monthlyTotal(st, now, types.TransactionExpense)
}

func monthlyTotal(st *types.AppState, now time.Time, txnType types.TransactionType) float64 {
	monthStart := MonthStart(now)
	var sum float64
	for _, t := range st.Transactions {
		if t.Type == txnType && t.Date >= monthStart {
			sum += t.Amount
		}
	}
	return sum
}

// TransactionsByCategory returns transactions in one category.
func TransactionsByCategory(st *types.AppState, category types.TransactionCategory) []types.Transaction {
	txns := []types.Transaction{}
	for _, t := range st.Transactions {
		if t.Category == category {
			txns = append(txns, t)
		}
	}
	return txns
}

// MealPlanByDate returns the meal plan for a date, or nil. At most one plan
// exists per date.
func MealPlanByDate(st *types.AppState, date string) *types.MealPlan {
	for i := range st.MealPlans {
		if st.MealPlans[i].Date == date {
			return &st.MealPlans[i]
		}
	}
	return nil
}

// WeekMealPlans returns meal plans within the current Sunday-to-Saturday
// week. The meal planner keeps the original Sunday-start week, unlike the
// weekly review which keys on Monday.
func WeekMealPlans(st *types.AppState, now time.Time) []types.MealPlan {
	weekStart := now.AddDate(0, 0, -int(now.Weekday()))
	startStr := weekStart.Format(DateOnly)
	endStr := weekStart.AddDate(0, 0, 6).Format(DateOnly)

	plans := []types.MealPlan{}
	for _, m := range st.MealPlans {
		if m.Date >= startStr && m.Date <= endStr {
			plans = append(plans, m)
		}
	}
	return plans
}

// UpcomingEvents returns family events dated today or later, soonest first.
func UpcomingEvents(st *types.AppState, today string) []types.FamilyEvent {
	events := []types.FamilyEvent{}
	for _, e := range st.FamilyEvents {
		if e.Date >= today {
			events = append(events, e)
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
	return events
}

// RoutinesByType returns routines of one cadence.
func RoutinesByType(st *types.AppState, routineType types.RoutineType) []types.Routine {
	routines := []types.Routine{}
	for _, r := range st.Routines {
		if r.Type == routineType {
			routines = append(routines, r)
		}
	}
	return routines
}

// HabitLogsForDate returns all habit logs recorded on a date.
func HabitLogsForDate(st *types.AppState, date string) []types.HabitLog {
	logs := []types.HabitLog{}
	for _, h := range st.HabitLogs {
		if h.Date == date {
			logs = append(logs, h)
		}
	}
	return logs
}
