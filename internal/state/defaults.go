package state

import (
	"time"

	"github.com/astralhq/astral/internal/types"
)

// DefaultState returns the compiled-in initial state: empty collections plus
// the six seed areas. Seed area ids are fixed so fresh installs are stable.
func DefaultState(now time.Time) *types.AppState {
	return &types.AppState{
		Areas:          defaultAreas(now),
		InboxItems:     []types.InboxItem{},
		Projects:       []types.Project{},
		Tasks:          []types.Task{},
		DailyIntents:   []types.DailyIntent{},
		Deals:          []types.PipelineDeal{},
		Notes:          []types.Note{},
		ContentItems:   []types.ContentItem{},
		Transactions:   []types.Transaction{},
		MealPlans:      []types.MealPlan{},
		ShoppingItems:  []types.ShoppingItem{},
		FamilyEvents:   []types.FamilyEvent{},
		Routines:       []types.Routine{},
		HabitLogs:      []types.HabitLog{},
		Goals:          []types.Goal{},
		WeeklyReviews:  []types.WeeklyReview{},
		DailyCheckIns:  []types.DailyCheckIn{},
		GoalActivities: []types.GoalActivity{},
	}
}

// defaultAreas are the seed life domains present on first load.
func defaultAreas(now time.Time) []types.Area {
	createdAt := now.UTC().Format(time.RFC3339)
	return []types.Area{
		{ID: "area-health", Name: "Health", Type: types.AreaLife, Icon: "💪", Color: "#22C55E", Order: 1, CreatedAt: createdAt},
		{ID: "area-family", Name: "Family", Type: types.AreaLife, Icon: "👨‍👩‍👧", Color: "#EC4899", Order: 2, CreatedAt: createdAt},
		{ID: "area-business", Name: "Business", Type: types.AreaWork, Icon: "💼", Color: "#3B82F6", Order: 3, CreatedAt: createdAt},
		{ID: "area-creativity", Name: "Creativity", Type: types.AreaMixed, Icon: "🎨", Color: "#8B5CF6", Order: 4, CreatedAt: createdAt},
		{ID: "area-spirituality", Name: "Spirituality", Type: types.AreaLife, Icon: "🧘", Color: "#F59E0B", Order: 5, CreatedAt: createdAt},
		{ID: "area-money", Name: "Money", Type: types.AreaWork, Icon: "💰", Color: "#10B981", Order: 6, CreatedAt: createdAt},
	}
}

// mergeWithDefaults fills top-level collections missing from a loaded blob
// with their defaults. The merge is shallow by contract: a collection present
// in the blob (even empty) is taken wholesale, never merged element-wise,
// and nothing inside array elements is repaired.
func mergeWithDefaults(loaded *types.AppState, now time.Time) *types.AppState {
	def := DefaultState(now)

	if loaded.Areas == nil {
		loaded.Areas = def.Areas
	}
	if loaded.InboxItems == nil {
		loaded.InboxItems = def.InboxItems
	}
	if loaded.Projects == nil {
		loaded.Projects = def.Projects
	}
	if loaded.Tasks == nil {
		loaded.Tasks = def.Tasks
	}
	if loaded.DailyIntents == nil {
		loaded.DailyIntents = def.DailyIntents
	}
	if loaded.Deals == nil {
		loaded.Deals = def.Deals
	}
	if loaded.Notes == nil {
		loaded.Notes = def.Notes
	}
	if loaded.ContentItems == nil {
		loaded.ContentItems = def.ContentItems
	}
	if loaded.Transactions == nil {
		loaded.Transactions = def.Transactions
	}
	if loaded.MealPlans == nil {
		loaded.MealPlans = def.MealPlans
	}
	if loaded.ShoppingItems == nil {
		loaded.ShoppingItems = def.ShoppingItems
	}
	if loaded.FamilyEvents == nil {
		loaded.FamilyEvents = def.FamilyEvents
	}
	if loaded.Routines == nil {
		loaded.Routines = def.Routines
	}
	if loaded.HabitLogs == nil {
		loaded.HabitLogs = def.HabitLogs
	}
	if loaded.Goals == nil {
		loaded.Goals = def.Goals
	}
	if loaded.WeeklyReviews == nil {
		loaded.WeeklyReviews = def.WeeklyReviews
	}
	if loaded.DailyCheckIns == nil {
		loaded.DailyCheckIns = def.DailyCheckIns
	}
	if loaded.GoalActivities == nil {
		loaded.GoalActivities = def.GoalActivities
	}

	return loaded
}
