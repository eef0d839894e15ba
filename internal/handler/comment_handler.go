package handler

import (
	"net/http"

	"github.com/blues/pts/internal/logic"
	"github.com/blues/pts/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentLogic *logic.CommentLogic
}

func NewCommentHandler(commentLogic *logic.CommentLogic) *CommentHandler {
	return &CommentHandler{commentLogic: commentLogic}
}

// CreateComment posts a comment on the issue. Issue assignee only.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	projectID, issueID, ok := commentScope(c)
	if !ok {
		return
	}
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	comment, err := h.commentLogic.Create(projectID, issueID, caller.ID, req.Description)
	if err != nil {
		FailFromError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "comment created", comment)
}

// GetComments lists the issue's comments to any project member.
func (h *CommentHandler) GetComments(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	projectID, issueID, ok := commentScope(c)
	if !ok {
		return
	}
	comments, err := h.commentLogic.List(projectID, issueID, caller.ID)
	if err != nil {
		FailFromError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "comments", comments)
}

// GetComment returns one comment to any project member.
func (h *CommentHandler) GetComment(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	projectID, issueID, ok := commentScope(c)
	if !ok {
		return
	}
	commentID, ok := parseID(c, "comment_id")
	if !ok {
		return
	}
	comment, err := h.commentLogic.Get(projectID, issueID, commentID, caller.ID)
	if err != nil {
		FailFromError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "comment", comment)
}

// UpdateComment replaces the comment description. Comment author only.
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	projectID, issueID, ok := commentScope(c)
	if !ok {
		return
	}
	commentID, ok := parseID(c, "comment_id")
	if !ok {
		return
	}
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	comment, err := h.commentLogic.Update(projectID, issueID, commentID, caller.ID, req.Description)
	if err != nil {
		FailFromError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "comment updated", comment)
}

// DeleteComment removes the comment. Comment author only.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	projectID, issueID, ok := commentScope(c)
	if !ok {
		return
	}
	commentID, ok := parseID(c, "comment_id")
	if !ok {
		return
	}
	if err := h.commentLogic.Delete(projectID, issueID, commentID, caller.ID); err != nil {
		FailFromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func commentScope(c *gin.Context) (projectID, issueID uint, ok bool) {
	projectID, ok = parseID(c, "project_id")
	if !ok {
		return 0, 0, false
	}
	issueID, ok = parseID(c, "issue_id")
	if !ok {
		return 0, 0, false
	}
	return projectID, issueID, true
}
