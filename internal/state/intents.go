package state

import (
	"context"

	"github.com/astralhq/astral/internal/types"
)

// SetTodayIntention upserts today's intent with a new intention.
func (s *Store) SetTodayIntention(ctx context.Context, intention string) error {
	return s.upsertIntent(ctx, func(d *types.DailyIntent) {
		d.Intention = intention
	})
}

// SetTodayReflection upserts today's intent with a new reflection.
func (s *Store) SetTodayReflection(ctx context.Context, reflection string) error {
	return s.upsertIntent(ctx, func(d *types.DailyIntent) {
		d.Reflection = reflection
	})
}

func (s *Store) upsertIntent(ctx context.Context, set func(*types.DailyIntent)) error {
	today := s.today()
	return s.mutate(ctx, func(st *types.AppState) {
		for i := range st.DailyIntents {
			if st.DailyIntents[i].Date == today {
				set(&st.DailyIntents[i])
				return
			}
		}
		intent := types.DailyIntent{Date: today}
		set(&intent)
		st.DailyIntents = append(st.DailyIntents, intent)
	})
}
