package model

import (
	"time"

	"gorm.io/gorm"
)

// Project is a tracked project. Its author is an implicit member with
// full access even without a Contributor row.
type Project struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Title       string      `json:"title" gorm:"not null" binding:"required"`
	Description string      `json:"description" gorm:"type:text"`
	Type        ProjectType `json:"type" gorm:"not null"`
	AuthorID    uint        `json:"author_id" gorm:"not null;index"`

	Author       User          `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Contributors []Contributor `json:"contributors,omitempty" gorm:"foreignKey:ProjectID"`
	Issues       []Issue       `json:"issues,omitempty" gorm:"foreignKey:ProjectID"`
}

// ProjectType classifies the kind of deliverable a project targets.
type ProjectType string

const (
	ProjectTypeBackEnd  ProjectType = "back-end"
	ProjectTypeFrontEnd ProjectType = "front-end"
	ProjectTypeIOS      ProjectType = "iOS"
	ProjectTypeAndroid  ProjectType = "Android"
)

// ValidProjectType reports whether t is one of the accepted project types.
func ValidProjectType(t ProjectType) bool {
	switch t {
	case ProjectTypeBackEnd, ProjectTypeFrontEnd, ProjectTypeIOS, ProjectTypeAndroid:
		return true
	}
	return false
}
