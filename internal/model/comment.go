package model

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a note posted on an issue.
type Comment struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Description string `json:"description" gorm:"type:text;not null" binding:"required"`
	AuthorID    uint   `json:"author_id" gorm:"not null"`
	IssueID     uint   `json:"issue_id" gorm:"not null;index"`

	Author User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}
