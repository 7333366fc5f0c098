package state

import (
	"context"
	"time"

	"github.com/astralhq/astral/internal/derive"
	"github.com/astralhq/astral/internal/types"
)

// AddTask creates a task.
func (s *Store) AddTask(ctx context.Context, in types.NewTask) (*types.Task, error) {
	task := types.Task{
		ID:           newID(prefixTask),
		Title:        in.Title,
		ProjectID:    in.ProjectID,
		GoalID:       in.GoalID,
		AreaID:       in.AreaID,
		Area:         in.Area,
		Category:     in.Category,
		Status:       in.Status,
		Priority:     in.Priority,
		DueDate:      in.DueDate,
		ScheduledFor: in.ScheduledFor,
		TimeBlock:    in.TimeBlock,
		Mode:         in.Mode,
		CreatedAt:    s.nowISO(),
	}
	err := s.mutate(ctx, func(st *types.AppState) {
		st.Tasks = append(st.Tasks, task)
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a partial update. Status transitions are not
// constrained: any status may be written over any other. Unknown ids are a
// no-op and return nil.
func (s *Store) UpdateTask(ctx context.Context, id string, u types.TaskUpdate) (*types.Task, error) {
	var updated *types.Task
	err := s.mutate(ctx, func(st *types.AppState) {
		for i := range st.Tasks {
			if st.Tasks[i].ID != id {
				continue
			}
			t := &st.Tasks[i]
			if u.Title != nil {
				t.Title = *u.Title
			}
			if u.ProjectID != nil {
				t.ProjectID = *u.ProjectID
			}
			if u.GoalID != nil {
				t.GoalID = *u.GoalID
			}
			if u.AreaID != nil {
				t.AreaID = *u.AreaID
			}
			if u.Area != nil {
				t.Area = *u.Area
			}
			if u.Category != nil {
				t.Category = *u.Category
			}
			if u.Status != nil {
				t.Status = *u.Status
			}
			if u.Priority != nil {
				t.Priority = *u.Priority
			}
			if u.DueDate != nil {
				t.DueDate = *u.DueDate
			}
			if u.ScheduledFor != nil {
				t.ScheduledFor = *u.ScheduledFor
			}
			if u.TimeBlock != nil {
				t.TimeBlock = *u.TimeBlock
			}
			if u.Mode != nil {
				t.Mode = *u.Mode
			}
			clone := *t
			updated = &clone
			return
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTask removes the task. Nothing cascades from a task.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *types.AppState) {
		kept := st.Tasks[:0]
		for _, t := range st.Tasks {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		st.Tasks = kept
	})
}

// ToggleTaskDone flips a task between done and todo.
func (s *Store) ToggleTaskDone(ctx context.Context, id string) (*types.Task, error) {
	var updated *types.Task
	err := s.mutate(ctx, func(st *types.AppState) {
		for i := range st.Tasks {
			if st.Tasks[i].ID != id {
				continue
			}
			t := &st.Tasks[i]
			if t.Status == types.TaskDone {
				t.Status = types.TaskTodo
			} else {
				t.Status = types.TaskDone
			}
			clone := *t
			updated = &clone
			return
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ScheduleTaskForToday puts the task on today's list and reopens it.
func (s *Store) ScheduleTaskForToday(ctx context.Context, id string) (*types.Task, error) {
	today := s.today()
	var updated *types.Task
	err := s.mutate(ctx, func(st *types.AppState) {
		for i := range st.Tasks {
			if st.Tasks[i].ID != id {
				continue
			}
			t := &st.Tasks[i]
			t.ScheduledFor = &today
			t.Status = types.TaskTodo
			clone := *t
			updated = &clone
			return
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// MoveTaskToTomorrow reschedules the task for tomorrow without touching its
// status.
func (s *Store) MoveTaskToTomorrow(ctx context.Context, id string) (*types.Task, error) {
	tomorrow := s.now().AddDate(0, 0, 1).Format(derive.DateOnly)
	var updated *types.Task
	err := s.mutate(ctx, func(st *types.AppState) {
		for i := range st.Tasks {
			if st.Tasks[i].ID != id {
				continue
			}
			t := &st.Tasks[i]
			t.ScheduledFor = &tomorrow
			clone := *t
			updated = &clone
			return
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetTask returns a copy of the task, or nil when absent.
func (s *Store) GetTask(id string) *types.Task {
	var found *types.Task
	s.Read(func(st *types.AppState, _ time.Time) {
		for i := range st.Tasks {
			if st.Tasks[i].ID == id {
				clone := st.Tasks[i]
				found = &clone
				return
			}
		}
	})
	return found
}
