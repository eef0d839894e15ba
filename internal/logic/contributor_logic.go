package logic

import (
	"fmt"

	"github.com/blues/pts/internal/model"
	"github.com/blues/pts/internal/repository"
)

// ContributorLogic manages project membership rows. Adding and removing
// contributors is reserved to the project author.
type ContributorLogic struct {
	contributors *repository.ContributorRepo
	users        *repository.UserRepo
	gate         *AccessGate
}

func NewContributorLogic(contributors *repository.ContributorRepo, users *repository.UserRepo, gate *AccessGate) *ContributorLogic {
	return &ContributorLogic{contributors: contributors, users: users, gate: gate}
}

// Add attaches a user to the project. (user, project) pairs are unique.
func (l *ContributorLogic) Add(projectID, callerID, userID uint, permission model.Permission, role string) (*model.Contributor, error) {
	if _, err := l.gate.RequireAuthor(projectID, callerID); err != nil {
		return nil, err
	}
	if !model.ValidPermission(permission) {
		return nil, Validationf("permission must be granted or denied")
	}
	user, err := l.users.ByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %d: %w", userID, err)
	}
	if user == nil {
		return nil, Validationf("user %d does not exist", userID)
	}
	existing, err := l.contributors.ByProjectAndUser(projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing contributor: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateContributor
	}

	contributor := &model.Contributor{
		UserID:     userID,
		ProjectID:  projectID,
		Permission: permission,
		Role:       role,
	}
	if err := l.contributors.Create(contributor); err != nil {
		return nil, fmt.Errorf("failed to add contributor: %w", err)
	}
	return contributor, nil
}

// Names lists the last names of the project's contributors. Any member
// may read the list.
func (l *ContributorLogic) Names(projectID, callerID uint) ([]string, error) {
	if _, err := l.gate.RequireMember(projectID, callerID); err != nil {
		return nil, err
	}
	contributors, err := l.contributors.ByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributors: %w", err)
	}
	names := make([]string, 0, len(contributors))
	for _, c := range contributors {
		names = append(names, c.User.LastName)
	}
	return names, nil
}

// Remove detaches a user from the project.
func (l *ContributorLogic) Remove(projectID, callerID, userID uint) error {
	if _, err := l.gate.RequireAuthor(projectID, callerID); err != nil {
		return err
	}
	contributor, err := l.contributors.ByProjectAndUser(projectID, userID)
	if err != nil {
		return fmt.Errorf("failed to look up contributor: %w", err)
	}
	if contributor == nil {
		return ErrNotFound
	}
	if err := l.contributors.Delete(contributor.ID); err != nil {
		return fmt.Errorf("failed to remove contributor: %w", err)
	}
	return nil
}
