package state

import (
	"context"
	"testing"
	"time"

	"github.com/astralhq/astral/internal/types"
)

func TestProcessInboxItem_ToTask(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	item, err := s.AddInboxItem(ctx, "call the plumber")
	if err != nil {
		t.Fatalf("AddInboxItem: %v", err)
	}

	areaID := "area-family"
	if err := s.ProcessInboxItem(ctx, item.ID, types.ProcessInboxInput{Type: types.InboxTask, AreaID: &areaID}); err != nil {
		t.Fatalf("ProcessInboxItem: %v", err)
	}

	s.Read(func(st *types.AppState, _ time.Time) {
		if got, want := len(st.Tasks), 1; got != want {
			t.Fatalf("len(Tasks) = %d, want %d", got, want)
		}
		task := st.Tasks[0]
		if task.Title != "call the plumber" {
			t.Errorf("Title = %q, want raw text as fallback", task.Title)
		}
		if task.Status != types.TaskTodo || task.Priority != types.PriorityNormal {
			t.Errorf("capture defaults = status %q priority %q", task.Status, task.Priority)
		}
		if task.TimeBlock != types.BlockUnscheduled || task.Mode != types.ModeAll {
			t.Errorf("capture defaults = block %q mode %q", task.TimeBlock, task.Mode)
		}
		if task.AreaID == nil || *task.AreaID != areaID {
			t.Errorf("AreaID = %v, want %q", task.AreaID, areaID)
		}
	})

	got := s.GetInboxItem(item.ID)
	if got == nil || !got.Processed {
		t.Errorf("item = %+v, want processed", got)
	}
}

func TestProcessInboxItem_ToProjectWithTitleOverride(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	item, _ := s.AddInboxItem(ctx, "maybe redo the garden?")
	if err := s.ProcessInboxItem(ctx, item.ID, types.ProcessInboxInput{Type: types.InboxProject, Title: "Garden redesign"}); err != nil {
		t.Fatalf("ProcessInboxItem: %v", err)
	}

	s.Read(func(st *types.AppState, _ time.Time) {
		if got, want := len(st.Projects), 1; got != want {
			t.Fatalf("len(Projects) = %d, want %d", got, want)
		}
		p := st.Projects[0]
		if p.Name != "Garden redesign" {
			t.Errorf("Name = %q, want explicit title", p.Name)
		}
		if p.Status != types.ProjectIdea || p.Priority != 3 {
			t.Errorf("capture defaults = status %q priority %d", p.Status, p.Priority)
		}
		if p.Links == nil {
			t.Error("Links = nil, want empty slice")
		}
	})
}

func TestProcessInboxItem_ToNote(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	item, _ := s.AddInboxItem(ctx, "book idea: field notes")
	if err := s.ProcessInboxItem(ctx, item.ID, types.ProcessInboxInput{Type: types.InboxNote}); err != nil {
		t.Fatalf("ProcessInboxItem: %v", err)
	}

	s.Read(func(st *types.AppState, _ time.Time) {
		if got, want := len(st.Notes), 1; got != want {
			t.Fatalf("len(Notes) = %d, want %d", got, want)
		}
		if st.Notes[0].Category != types.NoteIdeas {
			t.Errorf("Category = %q, want %q", st.Notes[0].Category, types.NoteIdeas)
		}
	})
}

func TestProcessInboxItem_UnsupportedTypeIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	item, _ := s.AddInboxItem(ctx, "vague thought")
	if err := s.ProcessInboxItem(ctx, item.ID, types.ProcessInboxInput{Type: types.InboxIdea}); err != nil {
		t.Fatalf("ProcessInboxItem: %v", err)
	}

	got := s.GetInboxItem(item.ID)
	if got == nil || got.Processed {
		t.Errorf("item = %+v, want unprocessed after unsupported target", got)
	}
	s.Read(func(st *types.AppState, _ time.Time) {
		if len(st.Tasks) != 0 || len(st.Projects) != 0 || len(st.Notes) != 0 {
			t.Error("entity created for unsupported target type")
		}
	})
}

func TestClearProcessedInbox(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	done, _ := s.AddInboxItem(ctx, "triaged already")
	pending, _ := s.AddInboxItem(ctx, "still raw")
	if err := s.ProcessInboxItem(ctx, done.ID, types.ProcessInboxInput{Type: types.InboxTask}); err != nil {
		t.Fatalf("ProcessInboxItem: %v", err)
	}

	if err := s.ClearProcessedInbox(ctx); err != nil {
		t.Fatalf("ClearProcessedInbox: %v", err)
	}

	s.Read(func(st *types.AppState, _ time.Time) {
		if got, want := len(st.InboxItems), 1; got != want {
			t.Fatalf("len(InboxItems) = %d, want %d", got, want)
		}
		if st.InboxItems[0].ID != pending.ID {
			t.Errorf("survivor = %q, want %q", st.InboxItems[0].ID, pending.ID)
		}
	})
}

func TestSetInboxSuggestion_KeepsProcessedFlag(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	item, _ := s.AddInboxItem(ctx, "research standing desks")
	areaID := "area-health"
	if err := s.SetInboxSuggestion(ctx, item.ID, types.InboxTask, &areaID); err != nil {
		t.Fatalf("SetInboxSuggestion: %v", err)
	}

	got := s.GetInboxItem(item.ID)
	if got.SuggestedType != types.InboxTask {
		t.Errorf("SuggestedType = %q, want %q", got.SuggestedType, types.InboxTask)
	}
	if got.SuggestedAreaID == nil || *got.SuggestedAreaID != areaID {
		t.Errorf("SuggestedAreaID = %v, want %q", got.SuggestedAreaID, areaID)
	}
	if got.Processed {
		t.Error("suggestion pass marked item processed")
	}
}
