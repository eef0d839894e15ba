package handler

import "github.com/blues/pts/internal/model"

// Response is the shared envelope for every JSON reply.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Request models.

type SignupRequest struct {
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type ProjectRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Type        model.ProjectType `json:"type" binding:"required"`
}

type ContributorRequest struct {
	UserID     uint             `json:"user_id" binding:"required"`
	Permission model.Permission `json:"permission" binding:"required"`
	Role       string           `json:"role"`
}

type IssueRequest struct {
	Title      string              `json:"title" binding:"required"`
	Desc       string              `json:"desc"`
	Tag        model.IssueTag      `json:"tag" binding:"required"`
	Priority   model.IssuePriority `json:"priority" binding:"required"`
	Status     model.IssueStatus   `json:"status" binding:"required"`
	AssigneeID uint                `json:"assignee_id" binding:"required"`
}

type CommentRequest struct {
	Description string `json:"description" binding:"required"`
}
