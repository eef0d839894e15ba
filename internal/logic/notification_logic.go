package logic

import (
	"fmt"

	"github.com/blues/pts/internal/model"
	"github.com/blues/pts/internal/repository"
)

// NotificationLogic serves a user's own notifications.
type NotificationLogic struct {
	notifications *repository.NotificationRepo
}

func NewNotificationLogic(notifications *repository.NotificationRepo) *NotificationLogic {
	return &NotificationLogic{notifications: notifications}
}

// List returns the caller's notifications, newest first, and marks them
// read.
func (l *NotificationLogic) List(userID uint, limit int) ([]model.Notification, error) {
	notifications, err := l.notifications.ByUser(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	if err := l.notifications.MarkRead(userID); err != nil {
		return nil, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return notifications, nil
}
