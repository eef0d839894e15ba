package notify

import (
	"encoding/json"

	"github.com/blues/pts/internal/logger"
	"github.com/blues/pts/internal/model"
	"github.com/blues/pts/internal/repository"
	"github.com/panjf2000/ants/v2"
)

// Dispatcher writes in-app notifications off the request path through a
// bounded worker pool. Write failures are logged and never surfaced to
// the request that triggered them.
type Dispatcher struct {
	pool          *ants.Pool
	notifications *repository.NotificationRepo
}

func NewDispatcher(notifications *repository.NotificationRepo, poolSize int) (*Dispatcher, error) {
	if poolSize <= 0 {
		poolSize = 8
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}
	return &Dispatcher{pool: pool, notifications: notifications}, nil
}

// IssueAssigned notifies the assignee of a new or reassigned issue.
func (d *Dispatcher) IssueAssigned(issue *model.Issue) {
	d.submit(issue.AssigneeID, model.NotificationIssueAssigned, map[string]interface{}{
		"project_id": issue.ProjectID,
		"issue_id":   issue.ID,
		"title":      issue.Title,
	})
}

// CommentPosted notifies the issue author of a new comment.
func (d *Dispatcher) CommentPosted(issue *model.Issue, comment *model.Comment) {
	d.submit(issue.AuthorID, model.NotificationCommentPosted, map[string]interface{}{
		"project_id": issue.ProjectID,
		"issue_id":   issue.ID,
		"comment_id": comment.ID,
	})
}

func (d *Dispatcher) submit(userID uint, ntype model.NotificationType, payload map[string]interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to encode %s payload: %v", ntype, err)
		return
	}
	task := func() {
		notification := &model.Notification{
			UserID:  userID,
			Type:    ntype,
			Payload: string(data),
		}
		if err := d.notifications.Create(notification); err != nil {
			logger.Error("Failed to write %s notification for user %d: %v", ntype, userID, err)
		}
	}
	if err := d.pool.Submit(task); err != nil {
		logger.Warn("Notification pool rejected %s for user %d: %v", ntype, userID, err)
	}
}

// Close drains the pool. Pending tasks finish; later submissions are
// rejected and logged.
func (d *Dispatcher) Close() {
	d.pool.Release()
}
