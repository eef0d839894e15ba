package repository

import (
	"github.com/blues/pts/internal/model"
	"gorm.io/gorm"
)

// NotificationRepo persists in-app notifications.
type NotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) Create(notification *model.Notification) error {
	return r.db.Create(notification).Error
}

// ByUser lists the user's notifications, newest first.
func (r *NotificationRepo) ByUser(userID uint, limit int) ([]model.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	var notifications []model.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead marks all of the user's unread notifications as read.
func (r *NotificationRepo) MarkRead(userID uint) error {
	return r.db.Model(&model.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
