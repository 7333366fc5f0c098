package state

import (
	"context"
	"testing"
	"time"

	"github.com/astralhq/astral/internal/types"
)

func TestDeleteGoal_DetachesDependents(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	goal, err := s.AddGoal(ctx, types.NewGoal{Title: "Land 5 clients", Type: types.GoalNumeric, Quarter: types.Q1, Year: 2026, Status: types.GoalActive})
	if err != nil {
		t.Fatalf("AddGoal: %v", err)
	}
	task, _ := s.AddTask(ctx, types.NewTask{Title: "cold outreach", Status: types.TaskTodo, GoalID: &goal.ID})
	project, _ := s.AddProject(ctx, types.NewProject{Name: "Sales site", Status: types.ProjectActive, GoalID: &goal.ID})
	deal, _ := s.AddDeal(ctx, types.NewDeal{Name: "Acme", PipelineType: types.PipelineSalvaje, Stage: "contacted", GoalID: &goal.ID})
	content, _ := s.AddContent(ctx, types.NewContentItem{Title: "Launch thread", GoalID: &goal.ID})
	if _, err := s.LogGoalActivity(ctx, types.NewGoalActivity{GoalID: goal.ID, Type: types.ActivityManualLog, Description: "kickoff"}); err != nil {
		t.Fatalf("LogGoalActivity: %v", err)
	}

	if err := s.DeleteGoal(ctx, goal.ID); err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}

	if s.GetGoal(goal.ID) != nil {
		t.Error("goal still present after delete")
	}
	if got := s.GetTask(task.ID); got == nil || got.GoalID != nil {
		t.Errorf("task.GoalID = %v, want nil", got)
	}
	if got := s.GetProject(project.ID); got == nil || got.GoalID != nil {
		t.Errorf("project.GoalID = %v, want nil", got)
	}
	if got := s.GetDeal(deal.ID); got == nil || got.GoalID != nil {
		t.Errorf("deal.GoalID = %v, want nil", got)
	}
	s.Read(func(st *types.AppState, _ time.Time) {
		for _, c := range st.ContentItems {
			if c.ID == content.ID && c.GoalID != nil {
				t.Errorf("content.GoalID = %q, want nil", *c.GoalID)
			}
		}
		if len(st.GoalActivities) != 0 {
			t.Errorf("len(GoalActivities) = %d, want 0 (cascade delete)", len(st.GoalActivities))
		}
	})
}

func TestDeleteArea_NullsReferences(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	area, err := s.AddArea(ctx, types.NewArea{Name: "Side hustle", Type: types.AreaWork, Order: 7})
	if err != nil {
		t.Fatalf("AddArea: %v", err)
	}
	goal, _ := s.AddGoal(ctx, types.NewGoal{Title: "Ship it", Type: types.GoalProject, Quarter: types.Q1, Year: 2026, Status: types.GoalActive, AreaID: &area.ID})
	project, _ := s.AddProject(ctx, types.NewProject{Name: "Landing page", Status: types.ProjectActive, AreaID: &area.ID})
	task, _ := s.AddTask(ctx, types.NewTask{Title: "buy domain", Status: types.TaskTodo, AreaID: &area.ID})
	note, _ := s.AddNote(ctx, types.NewNote{Title: "Name ideas", Category: types.NoteIdeas, AreaID: &area.ID})
	routine, _ := s.AddRoutine(ctx, types.NewRoutine{Name: "Deep work", Type: types.RoutineMorning, AreaID: &area.ID})

	if err := s.DeleteArea(ctx, area.ID); err != nil {
		t.Fatalf("DeleteArea: %v", err)
	}

	if got := s.GetGoal(goal.ID); got == nil || got.AreaID != nil {
		t.Errorf("goal.AreaID = %v, want nil", got)
	}
	if got := s.GetProject(project.ID); got == nil || got.AreaID != nil {
		t.Errorf("project.AreaID = %v, want nil", got)
	}
	if got := s.GetTask(task.ID); got == nil || got.AreaID != nil {
		t.Errorf("task.AreaID = %v, want nil", got)
	}
	if got := s.GetNote(note.ID); got == nil || got.AreaID != nil {
		t.Errorf("note.AreaID = %v, want nil", got)
	}
	s.Read(func(st *types.AppState, _ time.Time) {
		for _, r := range st.Routines {
			if r.ID == routine.ID && r.AreaID != nil {
				t.Errorf("routine.AreaID = %q, want nil", *r.AreaID)
			}
		}
	})
}

func TestDeleteProject_NullsTaskBackrefs(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	project, err := s.AddProject(ctx, types.NewProject{Name: "Garden", Status: types.ProjectActive})
	if err != nil {
		t.Fatalf("AddProject: %v", err)
	}
	inside, _ := s.AddTask(ctx, types.NewTask{Title: "plant tomatoes", Status: types.TaskTodo, ProjectID: &project.ID})
	outside, _ := s.AddTask(ctx, types.NewTask{Title: "unrelated", Status: types.TaskTodo})

	if err := s.DeleteProject(ctx, project.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}

	if got := s.GetTask(inside.ID); got == nil || got.ProjectID != nil {
		t.Errorf("inside.ProjectID = %v, want nil", got)
	}
	if got := s.GetTask(outside.ID); got == nil {
		t.Error("unrelated task deleted by project cascade")
	}
}

func TestDeleteRoutine_DropsHabitLogs(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	routine, err := s.AddRoutine(ctx, types.NewRoutine{
		Name:  "Morning",
		Type:  types.RoutineMorning,
		Items: []types.RoutineItem{{ID: "item-1", Text: "meditate"}},
	})
	if err != nil {
		t.Fatalf("AddRoutine: %v", err)
	}
	other, _ := s.AddRoutine(ctx, types.NewRoutine{
		Name:  "Evening",
		Type:  types.RoutineEvening,
		Items: []types.RoutineItem{{ID: "item-2", Text: "journal"}},
	})
	if err := s.ToggleHabitLog(ctx, routine.ID, "item-1", "2026-03-15"); err != nil {
		t.Fatalf("ToggleHabitLog: %v", err)
	}
	if err := s.ToggleHabitLog(ctx, other.ID, "item-2", "2026-03-15"); err != nil {
		t.Fatalf("ToggleHabitLog: %v", err)
	}

	if err := s.DeleteRoutine(ctx, routine.ID); err != nil {
		t.Fatalf("DeleteRoutine: %v", err)
	}

	s.Read(func(st *types.AppState, _ time.Time) {
		if got, want := len(st.HabitLogs), 1; got != want {
			t.Fatalf("len(HabitLogs) = %d, want %d", got, want)
		}
		if st.HabitLogs[0].RoutineID != other.ID {
			t.Errorf("surviving log belongs to %q, want %q", st.HabitLogs[0].RoutineID, other.ID)
		}
	})
}
