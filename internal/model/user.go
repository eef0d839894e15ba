package model

import (
	"time"

	"gorm.io/gorm"
)

// User is an account in the directory. Email is the login identifier.
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	FirstName    string `json:"first_name" gorm:"not null"`
	LastName     string `json:"last_name" gorm:"not null"`
	PasswordHash string `json:"-" gorm:"not null"`

	IsActive bool `json:"is_active" gorm:"default:true"`
	IsStaff  bool `json:"is_staff" gorm:"default:false"`
	IsAdmin  bool `json:"is_admin" gorm:"default:false"`
}
