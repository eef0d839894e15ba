package model

import (
	"time"

	"gorm.io/gorm"
)

// Contributor links a User to a Project with a role and a permission
// flag. A user appears at most once per project.
type Contributor struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	UserID     uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_contributor_user_project"`
	ProjectID  uint       `json:"project_id" gorm:"not null;uniqueIndex:idx_contributor_user_project"`
	Permission Permission `json:"permission" gorm:"not null;default:'granted'"`
	Role       string     `json:"role"`

	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

// Permission is the contributor permission flag. Base project access is
// decided by row existence alone; the flag is stored but not consulted
// by the membership gate.
type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// ValidPermission reports whether p is an accepted permission value.
func ValidPermission(p Permission) bool {
	return p == PermissionGranted || p == PermissionDenied
}
