package model

import (
	"time"

	"gorm.io/gorm"
)

// Issue is a bug, improvement or task filed against a project. It has
// an author (the filer) and an assignee (the user expected to resolve
// it); the two may be the same user.
type Issue struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_time"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Title      string        `json:"title" gorm:"not null" binding:"required"`
	Desc       string        `json:"desc" gorm:"type:text"`
	Tag        IssueTag      `json:"tag" gorm:"not null"`
	Priority   IssuePriority `json:"priority" gorm:"not null"`
	Status     IssueStatus   `json:"status" gorm:"not null"`
	ProjectID  uint          `json:"project_id" gorm:"not null;index"`
	AuthorID   uint          `json:"author_id" gorm:"not null"`
	AssigneeID uint          `json:"assignee_id" gorm:"not null"`

	Author   User      `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Assignee User      `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:IssueID"`
}

// IssueTag classifies the nature of an issue.
type IssueTag string

const (
	IssueTagBug         IssueTag = "BUG"
	IssueTagImprovement IssueTag = "IMPROVEMENT"
	IssueTagTask        IssueTag = "TASK"
)

// IssuePriority ranks urgency.
type IssuePriority string

const (
	IssuePriorityHigh   IssuePriority = "HIGH"
	IssuePriorityMedium IssuePriority = "MEDIUM"
	IssuePriorityLow    IssuePriority = "LOW"
)

// IssueStatus tracks progress.
type IssueStatus string

const (
	IssueStatusTodo       IssueStatus = "TODO"
	IssueStatusInProgress IssueStatus = "IN_PROGRESS"
	IssueStatusDone       IssueStatus = "DONE"
)

// ValidIssueTag reports whether t is an accepted tag.
func ValidIssueTag(t IssueTag) bool {
	switch t {
	case IssueTagBug, IssueTagImprovement, IssueTagTask:
		return true
	}
	return false
}

// ValidIssuePriority reports whether p is an accepted priority.
func ValidIssuePriority(p IssuePriority) bool {
	switch p {
	case IssuePriorityHigh, IssuePriorityMedium, IssuePriorityLow:
		return true
	}
	return false
}

// ValidIssueStatus reports whether s is an accepted status.
func ValidIssueStatus(s IssueStatus) bool {
	switch s {
	case IssueStatusTodo, IssueStatusInProgress, IssueStatusDone:
		return true
	}
	return false
}
