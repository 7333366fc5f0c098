package state

import "github.com/astralhq/astral/internal/types"

// CascadeAction is what happens to dependents when their referent is deleted.
type CascadeAction string

const (
	// CascadeNullOut clears the dependent's reference field; the record survives.
	CascadeNullOut CascadeAction = "null-out"
	// CascadeDelete removes the dependent records entirely.
	CascadeDelete CascadeAction = "cascade-delete"
)

// CascadeRule declares one dependent collection affected by a delete.
type CascadeRule struct {
	Collection string
	Field      string
	Action     CascadeAction
	apply      func(st *types.AppState, id string)
}

// cascadeRules is the full rule set, keyed by deleted entity kind. Goal
// activities are the single cascade-delete in the system; every other rule
// nulls the dangling reference and keeps the record.
var cascadeRules = map[string][]CascadeRule{
	"area": {
		{Collection: "goals", Field: "areaId", Action: CascadeNullOut, apply: func(st *types.AppState, id string) {
			for i := range st.Goals {
				if st.Goals[i].AreaID != nil && *st.Goals[i].AreaID == id {
					st.Goals[i].AreaID = nil
				}
			}
		}},
		{Collection: "projects", Field: "areaId", Action: CascadeNullOut, apply: func(st *types.AppState, id string) {
			for i := range st.Projects {
				if st.Projects[i].AreaID != nil && *st.Projects[i].AreaID == id {
					st.Projects[i].AreaID = nil
				}
			}
		}},
		{Collection: "tasks", Field: "areaId", Action: CascadeNullOut, apply: func(st *types.AppState, id string) {
			for i := range st.Tasks {
				if st.Tasks[i].AreaID != nil && *st.Tasks[i].AreaID == id {
					st.Tasks[i].AreaID = nil
				}
			}
		}},
		{Collection: "notes", Field: "areaId", Action: CascadeNullOut, apply: func(st *types.AppState, id string) {
			for i := range st.Notes {
				if st.Notes[i].AreaID != nil && *st.Notes[i].AreaID == id {
					st.Notes[i].AreaID = nil
				}
			}
		}},
		{Collection: "routines", Field: "areaId", Action: CascadeNullOut, apply: func(st *types.AppState, id string) {
			for i := range st.Routines {
				if st.Routines[i].AreaID != nil && *st.Routines[i].AreaID == id {
					st.Routines[i].AreaID = nil
				}
			}
		}},
	},
	"project": {
		{Collection: "tasks", Field: "projectId", Action: CascadeNullOut, apply: func(st *types.AppState, id string) {
			for i := range st.Tasks {
				if st.Tasks[i].ProjectID != nil && *st.Tasks[i].ProjectID == id {
					st.Tasks[i].ProjectID = nil
				}
			}
		}},
	},
	"goal": {
		{Collection: "tasks", Field: "goalId", Action: CascadeNullOut, apply: func(st *types.AppState, id string) {
			for i := range st.Tasks {
				if st.Tasks[i].GoalID != nil && *st.Tasks[i].GoalID == id {
					st.Tasks[i].GoalID = nil
				}
			}
		}},
		{Collection: "projects", Field: "goalId", Action: CascadeNullOut, apply: func(st *types.AppState, id string) {
			for i := range st.Projects {
				if st.Projects[i].GoalID != nil && *st.Projects[i].GoalID == id {
					st.Projects[i].GoalID = nil
				}
			}
		}},
		{Collection: "deals", Field: "goalId", Action: CascadeNullOut, apply: func(st *types.AppState, id string) {
			for i := range st.Deals {
				if st.Deals[i].GoalID != nil && *st.Deals[i].GoalID == id {
					st.Deals[i].GoalID = nil
				}
			}
		}},
		{Collection: "contentItems", Field: "goalId", Action: CascadeNullOut, apply: func(st *types.AppState, id string) {
			for i := range st.ContentItems {
				if st.ContentItems[i].GoalID != nil && *st.ContentItems[i].GoalID == id {
					st.ContentItems[i].GoalID = nil
				}
			}
		}},
		{Collection: "goalActivities", Field: "goalId", Action: CascadeDelete, apply: func(st *types.AppState, id string) {
			kept := st.GoalActivities[:0]
			for _, a := range st.GoalActivities {
				if a.GoalID != id {
					kept = append(kept, a)
				}
			}
			st.GoalActivities = kept
		}},
	},
	"routine": {
		{Collection: "habitLogs", Field: "routineId", Action: CascadeDelete, apply: func(st *types.AppState, id string) {
			kept := st.HabitLogs[:0]
			for _, h := range st.HabitLogs {
				if h.RoutineID != id {
					kept = append(kept, h)
				}
			}
			st.HabitLogs = kept
		}},
	},
}

// applyCascades runs every rule registered for the deleted entity kind.
func applyCascades(st *types.AppState, entity, id string) {
	for _, rule := range cascadeRules[entity] {
		rule.apply(st, id)
	}
}
