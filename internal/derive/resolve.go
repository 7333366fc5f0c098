package derive

import "github.com/astralhq/astral/internal/types"

// ResolveTaskGoal returns the effective goal for a task, or nil.
// Resolution order, first match wins:
//  1. the task's own goal link
//  2. the task's project's back-reference to a goal
//  3. any goal whose projectIds list contains the task's project
//
// Matches are never merged: a task linked through several mechanisms
// resolves to the first one found.
func ResolveTaskGoal(st *types.AppState, task *types.Task) *types.Goal {
	if task == nil {
		return nil
	}

	if task.GoalID != nil {
		if g := goalByID(st, *task.GoalID); g != nil {
			return g
		}
	}

	if task.ProjectID == nil {
		return nil
	}

	if p := projectByID(st, *task.ProjectID); p != nil && p.GoalID != nil {
		if g := goalByID(st, *p.GoalID); g != nil {
			return g
		}
	}

	for i := range st.Goals {
		if containsString(st.Goals[i].ProjectIDs, *task.ProjectID) {
			return &st.Goals[i]
		}
	}

	return nil
}

// HasGoalContext reports whether the task resolves to any goal.
func HasGoalContext(st *types.AppState, task *types.Task) bool {
	return ResolveTaskGoal(st, task) != nil
}

// GoalLinkedTasks returns tasks linked to the goal directly or through the
// goal's project list. This is also the exact join used for project-goal
// progress, so progress and display always agree.
func GoalLinkedTasks(st *types.AppState, goal *types.Goal) []types.Task {
	if goal == nil {
		return []types.Task{}
	}
	linked := []types.Task{}
	for _, t := range st.Tasks {
		if t.GoalID != nil && *t.GoalID == goal.ID {
			linked = append(linked, t)
			continue
		}
		if t.ProjectID != nil && containsString(goal.ProjectIDs, *t.ProjectID) {
			linked = append(linked, t)
		}
	}
	return linked
}

// GoalLinkedProjects returns projects linked to the goal through either
// direction: the project's own goalId back-reference or membership in the
// goal's projectIds list.
func GoalLinkedProjects(st *types.AppState, goal *types.Goal) []types.Project {
	if goal == nil {
		return []types.Project{}
	}
	linked := []types.Project{}
	for _, p := range st.Projects {
		if p.GoalID != nil && *p.GoalID == goal.ID {
			linked = append(linked, p)
			continue
		}
		if containsString(goal.ProjectIDs, p.ID) {
			linked = append(linked, p)
		}
	}
	return linked
}

// GoalLinkedDeals returns deals carrying a direct link to the goal.
func GoalLinkedDeals(st *types.AppState, goal *types.Goal) []types.PipelineDeal {
	if goal == nil {
		return []types.PipelineDeal{}
	}
	linked := []types.PipelineDeal{}
	for _, d := range st.Deals {
		if d.GoalID != nil && *d.GoalID == goal.ID {
			linked = append(linked, d)
		}
	}
	return linked
}

func goalByID(st *types.AppState, id string) *types.Goal {
	for i := range st.Goals {
		if st.Goals[i].ID == id {
			return &st.Goals[i]
		}
	}
	return nil
}

func projectByID(st *types.AppState, id string) *types.Project {
	for i := range st.Projects {
		if st.Projects[i].ID == id {
			return &st.Projects[i]
		}
	}
	return nil
}

func taskByID(st *types.AppState, id string) *types.Task {
	for i := range st.Tasks {
		if st.Tasks[i].ID == id {
			return &st.Tasks[i]
		}
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
