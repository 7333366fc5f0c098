package derive

import (
	"testing"

	"github.com/astralhq/astral/internal/types"
)

func TestOrphanTasks(t *testing.T) {
	st := &types.AppState{
		Goals: []types.Goal{
			{ID: "goal-1", ProjectIDs: []string{"proj-linked"}},
		},
		Projects: []types.Project{
			{ID: "proj-linked"},
			{ID: "proj-loose"},
		},
		Tasks: []types.Task{
			{ID: "task-direct", GoalID: s("goal-1"), Status: types.TaskTodo},
			{ID: "task-via-list", ProjectID: s("proj-linked"), Status: types.TaskTodo},
			{ID: "task-loose-project", ProjectID: s("proj-loose"), Status: types.TaskTodo},
			{ID: "task-bare", Status: types.TaskTodo},
			{ID: "task-done", Status: types.TaskDone},
			{ID: "task-someday", Status: types.TaskSomeday},
		},
	}

	orphans := OrphanTasks(st)
	if len(orphans) != 2 {
		t.Fatalf("OrphanTasks: got %d, want 2", len(orphans))
	}
	got := map[string]bool{orphans[0].ID: true, orphans[1].ID: true}
	if !got["task-loose-project"] || !got["task-bare"] {
		t.Errorf("OrphanTasks: got %v, want task-loose-project and task-bare", got)
	}
}

func TestIgnoredGoals_WindowBoundary(t *testing.T) {
	st := &types.AppState{
		Goals: []types.Goal{
			{ID: "goal-fresh", Status: types.GoalActive},
			{ID: "goal-boundary", Status: types.GoalActive},
			{ID: "goal-stale", Status: types.GoalActive},
			{ID: "goal-silent", Status: types.GoalActive},
			{ID: "goal-paused", Status: types.GoalPaused},
		},
		GoalActivities: []types.GoalActivity{
			{ID: "a1", GoalID: "goal-fresh", Date: DaysBack(testNow, 6)},
			{ID: "a2", GoalID: "goal-boundary", Date: DaysBack(testNow, 7)},
			{ID: "a3", GoalID: "goal-stale", Date: DaysBack(testNow, 8)},
		},
	}

	ignored := IgnoredGoals(st, testNow, 7)
	got := map[string]bool{}
	for _, g := range ignored {
		got[g.ID] = true
	}

	if got["goal-fresh"] {
		t.Error("goal with activity 6 days ago should not be ignored")
	}
	if got["goal-boundary"] {
		t.Error("activity exactly on the cutoff still counts as recent")
	}
	if !got["goal-stale"] {
		t.Error("goal with activity 8 days ago should be ignored")
	}
	if !got["goal-silent"] {
		t.Error("goal with no activities should be ignored")
	}
	if got["goal-paused"] {
		t.Error("paused goals are never reported as ignored")
	}
}

func TestGoalHeatmap(t *testing.T) {
	st := &types.AppState{
		GoalActivities: []types.GoalActivity{
			{ID: "a1", GoalID: "goal-1", Date: Today(testNow)},
			{ID: "a2", GoalID: "goal-1", Date: DaysBack(testNow, 3)},
			{ID: "a3", GoalID: "goal-other", Date: DaysBack(testNow, 1)},
		},
	}

	heatmap := GoalHeatmap(st, "goal-1", testNow, 7)
	if len(heatmap) != 7 {
		t.Fatalf("GoalHeatmap: got %d entries, want 7", len(heatmap))
	}
	if !heatmap[Today(testNow)] {
		t.Error("today should be active")
	}
	if !heatmap[DaysBack(testNow, 3)] {
		t.Error("3 days back should be active")
	}
	if heatmap[DaysBack(testNow, 1)] {
		t.Error("another goal's activity must not mark the day")
	}
}

func TestGoalActivities_SortedAndWindowed(t *testing.T) {
	st := &types.AppState{
		GoalActivities: []types.GoalActivity{
			{ID: "a-old", GoalID: "goal-1", Date: DaysBack(testNow, 10)},
			{ID: "a-new", GoalID: "goal-1", Date: Today(testNow)},
			{ID: "a-mid", GoalID: "goal-1", Date: DaysBack(testNow, 5)},
			{ID: "a-other", GoalID: "goal-2", Date: Today(testNow)},
		},
	}

	all := GoalActivities(st, "goal-1", testNow, 0)
	if len(all) != 3 {
		t.Fatalf("GoalActivities: got %d, want 3", len(all))
	}
	if all[0].ID != "a-new" || all[1].ID != "a-mid" || all[2].ID != "a-old" {
		t.Errorf("GoalActivities order: got %s,%s,%s", all[0].ID, all[1].ID, all[2].ID)
	}

	windowed := GoalActivities(st, "goal-1", testNow, 7)
	if len(windowed) != 2 {
		t.Fatalf("GoalActivities windowed: got %d, want 2", len(windowed))
	}
}

func TestMITs_OrderAndMissingIDs(t *testing.T) {
	today := Today(testNow)
	st := &types.AppState{
		Tasks: []types.Task{
			{ID: "task-a", Title: "a"},
			{ID: "task-b", Title: "b"},
		},
		DailyCheckIns: []types.DailyCheckIn{
			{Date: today, MITIDs: []string{"task-b", "task-gone", "task-a"}},
		},
	}

	mits := MITs(st, today)
	if len(mits) != 2 {
		t.Fatalf("MITs: got %d, want 2", len(mits))
	}
	if mits[0].ID != "task-b" || mits[1].ID != "task-a" {
		t.Errorf("MITs order: got %s,%s, want task-b,task-a", mits[0].ID, mits[1].ID)
	}
}

func TestMITs_NoCheckIn(t *testing.T) {
	st := &types.AppState{Tasks: []types.Task{{ID: "task-a"}}}
	if mits := MITs(st, Today(testNow)); len(mits) != 0 {
		t.Errorf("MITs without check-in: got %d, want 0", len(mits))
	}
}
