package model

import "time"

// Notification is an in-app message for a user, written asynchronously
// when something happens on an entity they are involved with.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	UserID  uint             `json:"user_id" gorm:"not null;index"`
	Type    NotificationType `json:"type" gorm:"not null"`
	Payload string           `json:"payload" gorm:"type:text"`
	Read    bool             `json:"read" gorm:"default:false"`
}

// NotificationType names the event that produced a notification.
type NotificationType string

const (
	NotificationIssueAssigned NotificationType = "issue_assigned"
	NotificationCommentPosted NotificationType = "comment_posted"
)
