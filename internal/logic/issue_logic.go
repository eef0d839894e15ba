package logic

import (
	"fmt"
	"strings"

	"github.com/blues/pts/internal/model"
	"github.com/blues/pts/internal/repository"
)

// IssueInput carries the caller-supplied issue document.
type IssueInput struct {
	Title      string
	Desc       string
	Tag        model.IssueTag
	Priority   model.IssuePriority
	Status     model.IssueStatus
	AssigneeID uint
}

// IssueLogic handles issues under a project. Creation is member-gated;
// update and delete require the caller to be the issue's author.
type IssueLogic struct {
	issues   *repository.IssueRepo
	users    *repository.UserRepo
	gate     *AccessGate
	notifier Notifier
}

func NewIssueLogic(issues *repository.IssueRepo, users *repository.UserRepo, gate *AccessGate, notifier Notifier) *IssueLogic {
	return &IssueLogic{issues: issues, users: users, gate: gate, notifier: notifier}
}

// Create files an issue authored by the caller.
func (l *IssueLogic) Create(projectID, callerID uint, in IssueInput) (*model.Issue, error) {
	if _, err := l.gate.RequireMember(projectID, callerID); err != nil {
		return nil, err
	}
	if err := l.validateInput(in); err != nil {
		return nil, err
	}

	issue := &model.Issue{
		Title:      in.Title,
		Desc:       in.Desc,
		Tag:        in.Tag,
		Priority:   in.Priority,
		Status:     in.Status,
		ProjectID:  projectID,
		AuthorID:   callerID,
		AssigneeID: in.AssigneeID,
	}
	if err := l.issues.Create(issue); err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}
	if l.notifier != nil {
		l.notifier.IssueAssigned(issue)
	}
	return issue, nil
}

// List returns the project's issues to any member.
func (l *IssueLogic) List(projectID, callerID uint) ([]model.Issue, error) {
	if _, err := l.gate.RequireMember(projectID, callerID); err != nil {
		return nil, err
	}
	issues, err := l.issues.ByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	return issues, nil
}

// Update replaces the issue's document. Only the issue author may
// update, regardless of their other standing on the project.
func (l *IssueLogic) Update(projectID, issueID, callerID uint, in IssueInput) (*model.Issue, error) {
	if _, err := l.gate.RequireMember(projectID, callerID); err != nil {
		return nil, err
	}
	issue, err := l.issues.ByProjectAndID(projectID, issueID)
	if err != nil {
		return nil, fmt.Errorf("failed to load issue %d: %w", issueID, err)
	}
	if issue == nil {
		return nil, ErrNotFound
	}
	if issue.AuthorID != callerID {
		return nil, ErrForbidden
	}
	if err := l.validateInput(in); err != nil {
		return nil, err
	}

	reassigned := issue.AssigneeID != in.AssigneeID
	issue.Title = in.Title
	issue.Desc = in.Desc
	issue.Tag = in.Tag
	issue.Priority = in.Priority
	issue.Status = in.Status
	issue.AssigneeID = in.AssigneeID
	if err := l.issues.Save(issue); err != nil {
		return nil, fmt.Errorf("failed to update issue: %w", err)
	}
	if reassigned && l.notifier != nil {
		l.notifier.IssueAssigned(issue)
	}
	return issue, nil
}

// Delete removes the issue and its comments. Only the issue author may
// delete.
func (l *IssueLogic) Delete(projectID, issueID, callerID uint) error {
	if _, err := l.gate.RequireMember(projectID, callerID); err != nil {
		return err
	}
	issue, err := l.issues.ByProjectAndID(projectID, issueID)
	if err != nil {
		return fmt.Errorf("failed to load issue %d: %w", issueID, err)
	}
	if issue == nil {
		return ErrNotFound
	}
	if issue.AuthorID != callerID {
		return ErrForbidden
	}
	if err := l.issues.Delete(issue.ID); err != nil {
		return fmt.Errorf("failed to delete issue: %w", err)
	}
	return nil
}

func (l *IssueLogic) validateInput(in IssueInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return Validationf("title is required")
	}
	if !model.ValidIssueTag(in.Tag) {
		return Validationf("tag must be one of BUG, IMPROVEMENT, TASK")
	}
	if !model.ValidIssuePriority(in.Priority) {
		return Validationf("priority must be one of HIGH, MEDIUM, LOW")
	}
	if !model.ValidIssueStatus(in.Status) {
		return Validationf("status must be one of TODO, IN_PROGRESS, DONE")
	}
	assignee, err := l.users.ByID(in.AssigneeID)
	if err != nil {
		return fmt.Errorf("failed to look up assignee %d: %w", in.AssigneeID, err)
	}
	if assignee == nil {
		return Validationf("assignee %d does not exist", in.AssigneeID)
	}
	return nil
}
