package logic

import (
	"fmt"

	"github.com/blues/pts/internal/model"
	"github.com/blues/pts/internal/repository"
)

// AccessGate decides whether a caller may touch a project-scoped
// resource. A caller is a member of a project when they authored it or
// when a contributor row links them to it. The contributor permission
// flag is not consulted here; row existence alone grants base access.
type AccessGate struct {
	projects     *repository.ProjectRepo
	contributors *repository.ContributorRepo
}

func NewAccessGate(projects *repository.ProjectRepo, contributors *repository.ContributorRepo) *AccessGate {
	return &AccessGate{projects: projects, contributors: contributors}
}

// RequireMember returns the project when the caller is a member.
// Project existence is checked before membership, so an absent project
// yields ErrNotFound rather than ErrForbidden.
func (g *AccessGate) RequireMember(projectID, callerID uint) (*model.Project, error) {
	project, err := g.projects.ByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project %d: %w", projectID, err)
	}
	if project == nil {
		return nil, ErrNotFound
	}
	if project.AuthorID == callerID {
		return project, nil
	}
	member, err := g.contributors.Exists(projectID, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership on project %d: %w", projectID, err)
	}
	if !member {
		return nil, ErrForbidden
	}
	return project, nil
}

// RequireAuthor returns the project when the caller authored it.
func (g *AccessGate) RequireAuthor(projectID, callerID uint) (*model.Project, error) {
	project, err := g.projects.ByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project %d: %w", projectID, err)
	}
	if project == nil {
		return nil, ErrNotFound
	}
	if project.AuthorID != callerID {
		return nil, ErrForbidden
	}
	return project, nil
}
