package state

import (
	"context"
	"time"

	"github.com/astralhq/astral/internal/types"
)

// AddProject creates a project.
func (s *Store) AddProject(ctx context.Context, in types.NewProject) (*types.Project, error) {
	now := s.nowISO()
	links := in.Links
	if links == nil {
		links = []types.ProjectLink{}
	}
	project := types.Project{
		ID:         newID(prefixProject),
		Name:       in.Name,
		Type:       in.Type,
		Status:     in.Status,
		Priority:   in.Priority,
		Vision:     in.Vision,
		NextAction: in.NextAction,
		Notes:      in.Notes,
		Links:      links,
		GoalID:     in.GoalID,
		AreaID:     in.AreaID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := s.mutate(ctx, func(st *types.AppState) {
		st.Projects = append(st.Projects, project)
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject applies a partial update and refreshes updatedAt.
// Unknown ids are a no-op and return nil.
func (s *Store) UpdateProject(ctx context.Context, id string, u types.ProjectUpdate) (*types.Project, error) {
	var updated *types.Project
	err := s.mutate(ctx, func(st *types.AppState) {
		for i := range st.Projects {
			if st.Projects[i].ID != id {
				continue
			}
			p := &st.Projects[i]
			if u.Name != nil {
				p.Name = *u.Name
			}
			if u.Type != nil {
				p.Type = *u.Type
			}
			if u.Status != nil {
				p.Status = *u.Status
			}
			if u.Priority != nil {
				p.Priority = *u.Priority
			}
			if u.Vision != nil {
				p.Vision = *u.Vision
			}
			if u.NextAction != nil {
				p.NextAction = *u.NextAction
			}
			if u.Notes != nil {
				p.Notes = *u.Notes
			}
			if u.Links != nil {
				p.Links = u.Links
			}
			if u.GoalID != nil {
				p.GoalID = *u.GoalID
			}
			if u.AreaID != nil {
				p.AreaID = *u.AreaID
			}
			p.UpdatedAt = s.nowISO()
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

// DeleteProject removes the project. Its tasks survive with projectId
// cleared (soft cascade).
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *types.AppState) {
		kept := st.Projects[:0]
		for _, p := range st.Projects {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		st.Projects = kept
		applyCascades(st, "project", id)
	})
}

// GetProject returns a copy of the project, or nil when absent.
func (s *Store) GetProject(id string) *types.Project {
	var found *types.Project
	s.Read(func(st *types.AppState, _ time.Time) {
		for i := range st.Projects {
			if st.Projects[i].ID == id {
				clone := st.Projects[i]
				found = &clone
				return
			}
		}
	})
	return found
}
