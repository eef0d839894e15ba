package logic

import (
	"fmt"
	"strings"

	"github.com/blues/pts/internal/model"
	"github.com/blues/pts/internal/repository"
)

// ProjectLogic handles project CRUD under the access gate.
type ProjectLogic struct {
	projects *repository.ProjectRepo
	gate     *AccessGate
}

func NewProjectLogic(projects *repository.ProjectRepo, gate *AccessGate) *ProjectLogic {
	return &ProjectLogic{projects: projects, gate: gate}
}

// Create files a new project authored by the caller.
func (l *ProjectLogic) Create(authorID uint, title, description string, projectType model.ProjectType) (*model.Project, error) {
	if err := validateProjectFields(title, projectType); err != nil {
		return nil, err
	}
	project := &model.Project{
		Title:       title,
		Description: description,
		Type:        projectType,
		AuthorID:    authorID,
	}
	if err := l.projects.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// VisibleTo lists projects the user authored or contributes to.
func (l *ProjectLogic) VisibleTo(userID uint) ([]model.Project, error) {
	projects, err := l.projects.VisibleTo(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Get returns the project when the caller is a member.
func (l *ProjectLogic) Get(projectID, callerID uint) (*model.Project, error) {
	return l.gate.RequireMember(projectID, callerID)
}

// Update replaces the project's document. Only the author may update.
func (l *ProjectLogic) Update(projectID, callerID uint, title, description string, projectType model.ProjectType) (*model.Project, error) {
	project, err := l.gate.RequireAuthor(projectID, callerID)
	if err != nil {
		return nil, err
	}
	if err := validateProjectFields(title, projectType); err != nil {
		return nil, err
	}
	project.Title = title
	project.Description = description
	project.Type = projectType
	if err := l.projects.Save(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// Delete removes the project and cascades to its contributors, issues
// and comments. Only the author may delete.
func (l *ProjectLogic) Delete(projectID, callerID uint) error {
	if _, err := l.gate.RequireAuthor(projectID, callerID); err != nil {
		return err
	}
	if err := l.projects.Delete(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func validateProjectFields(title string, projectType model.ProjectType) error {
	if strings.TrimSpace(title) == "" {
		return Validationf("title is required")
	}
	if !model.ValidProjectType(projectType) {
		return Validationf("type must be one of back-end, front-end, iOS, Android")
	}
	return nil
}
