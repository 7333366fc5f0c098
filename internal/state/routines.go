package state

import (
	"context"

	"github.com/astralhq/astral/internal/types"
)

// AddRoutine creates a routine checklist.
func (s *Store) AddRoutine(ctx context.Context, in types.NewRoutine) (*types.Routine, error) {
	items := in.Items
	if items == nil {
		items = []types.RoutineItem{}
	}
	r := types.Routine{
		ID:        newID(prefixRoutine),
		Name:      in.Name,
		Type:      in.Type,
		Items:     items,
		AreaID:    in.AreaID,
		CreatedAt: s.nowISO(),
	}
	err := s.mutate(ctx, func(st *types.AppState) {
		st.Routines = append(st.Routines, r)
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateRoutine applies a partial update. Unknown ids are a no-op and
// return nil.
func (s *Store) UpdateRoutine(ctx context.Context, id string, u types.RoutineUpdate) (*types.Routine, error) {
	var updated *types.Routine
	err := s.mutate(ctx, func(st *types.AppState) {
		for i := range st.Routines {
			if st.Routines[i].ID != id {
				continue
			}
			r := &st.Routines[i]
			if u.Name != nil {
				r.Name = *u.Name
			}
			if u.Type != nil {
				r.Type = *u.Type
			}
			if u.Items != nil {
				r.Items = u.Items
			}
			if u.AreaID != nil {
				r.AreaID = *u.AreaID
			}
			clone := *r
			updated = &clone
			return
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteRoutine removes the routine and every habit log that references it.
func (s *Store) DeleteRoutine(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *types.AppState) {
		kept := st.Routines[:0]
		for _, r := range st.Routines {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		st.Routines = kept
		applyCascades(st, "routine", id)
	})
}

// ToggleHabitLog flips completion of one routine item on one date. A log
// for the (routine, item, date) key is created on first toggle and flipped
// in place afterwards, never duplicated.
func (s *Store) ToggleHabitLog(ctx context.Context, routineID, itemID, date string) error {
	return s.mutate(ctx, func(st *types.AppState) {
		for i := range st.HabitLogs {
			l := &st.HabitLogs[i]
			if l.RoutineID == routineID && l.ItemID == itemID && l.Date == date {
				l.Completed = !l.Completed
				return
			}
		}
		st.HabitLogs = append(st.HabitLogs, types.HabitLog{
			RoutineID: routineID,
			ItemID:    itemID,
			Date:      date,
			Completed: true,
		})
	})
}
