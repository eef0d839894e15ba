package logic

import (
	"fmt"
	"strings"

	"github.com/blues/pts/internal/model"
	"github.com/blues/pts/internal/repository"
)

// CommentLogic handles comments under an issue. Creating a comment is
// reserved to the issue's assignee; updating and deleting to the
// comment's author.
type CommentLogic struct {
	comments *repository.CommentRepo
	issues   *repository.IssueRepo
	gate     *AccessGate
	notifier Notifier
}

func NewCommentLogic(comments *repository.CommentRepo, issues *repository.IssueRepo, gate *AccessGate, notifier Notifier) *CommentLogic {
	return &CommentLogic{comments: comments, issues: issues, gate: gate, notifier: notifier}
}

// Create posts a comment authored by the caller on the issue.
func (l *CommentLogic) Create(projectID, issueID, callerID uint, description string) (*model.Comment, error) {
	issue, err := l.requireIssue(projectID, issueID, callerID)
	if err != nil {
		return nil, err
	}
	if issue.AssigneeID != callerID {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(description) == "" {
		return nil, Validationf("description is required")
	}

	comment := &model.Comment{
		Description: description,
		AuthorID:    callerID,
		IssueID:     issue.ID,
	}
	if err := l.comments.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	if l.notifier != nil {
		l.notifier.CommentPosted(issue, comment)
	}
	return comment, nil
}

// List returns the issue's comments to any project member.
func (l *CommentLogic) List(projectID, issueID, callerID uint) ([]model.Comment, error) {
	if _, err := l.requireIssue(projectID, issueID, callerID); err != nil {
		return nil, err
	}
	comments, err := l.comments.ByIssue(issueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// Get returns one comment to any project member.
func (l *CommentLogic) Get(projectID, issueID, commentID, callerID uint) (*model.Comment, error) {
	if _, err := l.requireIssue(projectID, issueID, callerID); err != nil {
		return nil, err
	}
	comment, err := l.comments.ByIssueAndID(issueID, commentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comment %d: %w", commentID, err)
	}
	if comment == nil {
		return nil, ErrNotFound
	}
	return comment, nil
}

// Update replaces the comment's description. Author only.
func (l *CommentLogic) Update(projectID, issueID, commentID, callerID uint, description string) (*model.Comment, error) {
	comment, err := l.Get(projectID, issueID, commentID, callerID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != callerID {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(description) == "" {
		return nil, Validationf("description is required")
	}
	comment.Description = description
	if err := l.comments.Save(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

// Delete removes the comment. Author only.
func (l *CommentLogic) Delete(projectID, issueID, commentID, callerID uint) error {
	comment, err := l.Get(projectID, issueID, commentID, callerID)
	if err != nil {
		return err
	}
	if comment.AuthorID != callerID {
		return ErrForbidden
	}
	if err := l.comments.Delete(comment.ID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

// requireIssue runs the membership gate and resolves the issue within
// the project scope.
func (l *CommentLogic) requireIssue(projectID, issueID, callerID uint) (*model.Issue, error) {
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
	return issue, nil
}
