package logic

import "github.com/blues/pts/internal/model"

// Notifier receives domain events for asynchronous fan-out. A nil
// Notifier disables notifications.
type Notifier interface {
	IssueAssigned(issue *model.Issue)
	CommentPosted(issue *model.Issue, comment *model.Comment)
}
