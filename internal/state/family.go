package state

import (
	"context"

	"github.com/astralhq/astral/internal/types"
)

// AddMealPlan creates the plan for a date. An existing plan on the same
// date is replaced so at most one plan exists per day.
func (s *Store) AddMealPlan(ctx context.Context, in types.NewMealPlan) (*types.MealPlan, error) {
	plan := types.MealPlan{
		ID:        newID(prefixMeal),
		Date:      in.Date,
		Breakfast: in.Breakfast,
		Lunch:     in.Lunch,
		Dinner:    in.Dinner,
		Notes:     in.Notes,
	}
	err := s.mutate(ctx, func(st *types.AppState) {
		kept := st.MealPlans[:0]
		for _, p := range st.MealPlans {
			if p.Date != in.Date {
				kept = append(kept, p)
			}
		}
		st.MealPlans = append(kept, plan)
	})
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// UpdateMealPlan applies a partial update. Unknown ids are a no-op and
// return nil.
func (s *Store) UpdateMealPlan(ctx context.Context, id string, u types.MealPlanUpdate) (*types.MealPlan, error) {
	var updated *types.MealPlan
	err := s.mutate(ctx, func(st *types.AppState) {
		for i := range st.MealPlans {
			if st.MealPlans[i].ID != id {
				continue
			}
			p := &st.MealPlans[i]
			if u.Date != nil {
				p.Date = *u.Date
			}
			if u.Breakfast != nil {
				p.Breakfast = *u.Breakfast
			}
			if u.Lunch != nil {
				p.Lunch = *u.Lunch
			}
			if u.Dinner != nil {
				p.Dinner = *u.Dinner
			}
			if u.Notes != nil {
				p.Notes = *u.Notes
			}
			clone := *p
			updated = &clone
			return
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteMealPlan removes the plan.
func (s *Store) DeleteMealPlan(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *types.AppState) {
		kept := st.MealPlans[:0]
		for _, p := range st.MealPlans {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		st.MealPlans = kept
	})
}

// AddShoppingItem appends an item to the shopping list.
func (s *Store) AddShoppingItem(ctx context.Context, in types.NewShoppingItem) (*types.ShoppingItem, error) {
	item := types.ShoppingItem{
		ID:        newID(prefixShop),
		Name:      in.Name,
		Quantity:  in.Quantity,
		Category:  in.Category,
		Completed: false,
		CreatedAt: s.nowISO(),
	}
	err := s.mutate(ctx, func(st *types.AppState) {
		st.ShoppingItems = append(st.ShoppingItems, item)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateShoppingItem applies a partial update. Unknown ids are a no-op
// and return nil.
func (s *Store) UpdateShoppingItem(ctx context.Context, id string, u types.ShoppingItemUpdate) (*types.ShoppingItem, error) {
	var updated *types.ShoppingItem
	err := s.mutate(ctx, func(st *types.AppState) {
		for i := range st.ShoppingItems {
			if st.ShoppingItems[i].ID != id {
				continue
			}
			it := &st.ShoppingItems[i]
			if u.Name != nil {
				it.Name = *u.Name
			}
			if u.Quantity != nil {
				it.Quantity = *u.Quantity
			}
			if u.Category != nil {
				it.Category = *u.Category
			}
			if u.Completed != nil {
				it.Completed = *u.Completed
			}
			clone := *it
			updated = &clone
			return
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ToggleShoppingItem flips the completed flag.
func (s *Store) ToggleShoppingItem(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *types.AppState) {
		for i := range st.ShoppingItems {
			if st.ShoppingItems[i].ID == id {
				st.ShoppingItems[i].Completed = !st.ShoppingItems[i].Completed
				return
			}
		}
	})
}

// DeleteShoppingItem removes the item.
func (s *Store) DeleteShoppingItem(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *types.AppState) {
		kept := st.ShoppingItems[:0]
		for _, it := range st.ShoppingItems {
			if it.ID != id {
				kept = append(kept, it)
			}
		}
		st.ShoppingItems = kept
	})
}

// ClearCompletedShopping drops every completed item from the list.
func (s *Store) ClearCompletedShopping(ctx context.Context) error {
	return s.mutate(ctx, func(st *types.AppState) {
		kept := st.ShoppingItems[:0]
		for _, it := range st.ShoppingItems {
			if !it.Completed {
				kept = append(kept, it)
			}
		}
		st.ShoppingItems = kept
	})
}

// AddFamilyEvent creates a family calendar entry.
func (s *Store) AddFamilyEvent(ctx context.Context, in types.NewFamilyEvent) (*types.FamilyEvent, error) {
	ev := types.FamilyEvent{
		ID:        newID(prefixEvent),
		Title:     in.Title,
		Date:      in.Date,
		Type:      in.Type,
		Notes:     in.Notes,
		CreatedAt: s.nowISO(),
	}
	err := s.mutate(ctx, func(st *types.AppState) {
		st.FamilyEvents = append(st.FamilyEvents, ev)
	})
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// UpdateFamilyEvent applies a partial update. Unknown ids are a no-op
// and return nil.
func (s *Store) UpdateFamilyEvent(ctx context.Context, id string, u types.FamilyEventUpdate) (*types.FamilyEvent, error) {
	var updated *types.FamilyEvent
	err := s.mutate(ctx, func(st *types.AppState) {
		for i := range st.FamilyEvents {
			if st.FamilyEvents[i].ID != id {
				continue
			}
			ev := &st.FamilyEvents[i]
			if u.Title != nil {
				ev.Title = *u.Title
			}
			if u.Date != nil {
				ev.Date = *u.Date
			}
			if u.Type != nil {
				ev.Type = *u.Type
			}
			if u.Notes != nil {
				ev.Notes = *u.Notes
			}
			clone := *ev
			updated = &clone
			return
		}
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteFamilyEvent removes the event.
func (s *Store) DeleteFamilyEvent(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *types.AppState) {
		kept := st.FamilyEvents[:0]
		for _, ev := range st.FamilyEvents {
			if ev.ID != id {
				kept = append(kept, ev)
			}
		}
		st.FamilyEvents = kept
	})
}
