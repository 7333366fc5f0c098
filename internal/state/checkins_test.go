package state

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/astralhq/astral/internal/types"
)

func TestCheckIn_MorningAndEveningShareRecord(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	focus := "goal-1"
	if _, err := s.SetMorningCheckIn(ctx, "ship the draft", "send it to review", &focus); err != nil {
		t.Fatalf("SetMorningCheckIn: %v", err)
	}
	moved := "goal-1"
	c, err := s.SetEveningReflection(ctx, true, &moved, "mornings work best", "perfectionism")
	if err != nil {
		t.Fatalf("SetEveningReflection: %v", err)
	}

	if c.MorningIntention != "ship the draft" {
		t.Errorf("MorningIntention = %q, morning half lost on evening upsert", c.MorningIntention)
	}
	if !c.DidMoveGoalForward || c.Insight != "mornings work best" {
		t.Errorf("evening half = %+v", c)
	}

	s.Read(func(st *types.AppState, _ time.Time) {
		if got, want := len(st.DailyCheckIns), 1; got != want {
			t.Errorf("len(DailyCheckIns) = %d, want %d (same-day upsert)", got, want)
		}
		if st.DailyCheckIns[0].Date != "2026-03-15" {
			t.Errorf("Date = %q, want today", st.DailyCheckIns[0].Date)
		}
	})
}

func TestSetMITs_ClampsToThree(t *testing.T) {
	s, _ := newTestStore(t)

	c, err := s.SetMITs(context.Background(), []string{"task-a", "task-b", "task-c", "task-d", "task-e"})
	if err != nil {
		t.Fatalf("SetMITs: %v", err)
	}
	want := []string{"task-a", "task-b", "task-c"}
	if !reflect.DeepEqual(c.MITIDs, want) {
		t.Errorf("MITIDs = %v, want %v", c.MITIDs, want)
	}

	if got := s.GetMITs(); !reflect.DeepEqual(got, want) {
		t.Errorf("GetMITs() = %v, want %v", got, want)
	}
}

func TestSetMITs_ReplacesPreviousList(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := s.SetMITs(ctx, []string{"task-a", "task-b"}); err != nil {
		t.Fatalf("SetMITs: %v", err)
	}
	c, err := s.SetMITs(ctx, []string{"task-z"})
	if err != nil {
		t.Fatalf("SetMITs: %v", err)
	}
	if want := []string{"task-z"}; !reflect.DeepEqual(c.MITIDs, want) {
		t.Errorf("MITIDs = %v, want %v", c.MITIDs, want)
	}
}

func TestGetMITs_NoCheckIn(t *testing.T) {
	s, _ := newTestStore(t)

	got := s.GetMITs()
	if got == nil || len(got) != 0 {
		t.Errorf("GetMITs() = %v, want empty non-nil slice", got)
	}
}

func TestUpdateCheckIn_PartialFieldsOnExplicitDate(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	intention := "rest day"
	c, err := s.UpdateCheckIn(ctx, "2026-03-10", types.CheckInUpdate{MorningIntention: &intention})
	if err != nil {
		t.Fatalf("UpdateCheckIn: %v", err)
	}
	if c.Date != "2026-03-10" || c.MorningIntention != "rest day" {
		t.Fatalf("check-in = %+v", c)
	}

	insight := "naps help"
	c, err = s.UpdateCheckIn(ctx, "2026-03-10", types.CheckInUpdate{Insight: &insight})
	if err != nil {
		t.Fatalf("UpdateCheckIn: %v", err)
	}
	if c.MorningIntention != "rest day" {
		t.Errorf("MorningIntention = %q, wiped by partial update", c.MorningIntention)
	}
	if c.Insight != "naps help" {
		t.Errorf("Insight = %q", c.Insight)
	}
}
