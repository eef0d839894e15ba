package handler

import (
	"net/http"

	"github.com/blues/pts/internal/logic"
	"github.com/blues/pts/internal/middleware"
	"github.com/gin-gonic/gin"
)

type IssueHandler struct {
	issueLogic *logic.IssueLogic
}

func NewIssueHandler(issueLogic *logic.IssueLogic) *IssueHandler {
	return &IssueHandler{issueLogic: issueLogic}
}

// CreateIssue files an issue authored by the caller. Member-gated.
func (h *IssueHandler) CreateIssue(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	projectID, ok := parseID(c, "project_id")
	if !ok {
		return
	}
	var req IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	issue, err := h.issueLogic.Create(projectID, caller.ID, issueInput(req))
	if err != nil {
		FailFromError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "issue created", issue)
}

// GetIssues lists the project's issues to any member.
func (h *IssueHandler) GetIssues(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	projectID, ok := parseID(c, "project_id")
	if !ok {
		return
	}
	issues, err := h.issueLogic.List(projectID, caller.ID)
	if err != nil {
		FailFromError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "issues", issues)
}

// UpdateIssue replaces the issue document. Issue author only.
func (h *IssueHandler) UpdateIssue(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	projectID, ok := parseID(c, "project_id")
	if !ok {
		return
	}
	issueID, ok := parseID(c, "issue_id")
	if !ok {
		return
	}
	var req IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	issue, err := h.issueLogic.Update(projectID, issueID, caller.ID, issueInput(req))
	if err != nil {
		FailFromError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "issue updated", issue)
}

// DeleteIssue removes the issue and its comments. Issue author only.
func (h *IssueHandler) DeleteIssue(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	projectID, ok := parseID(c, "project_id")
	if !ok {
		return
	}
	issueID, ok := parseID(c, "issue_id")
	if !ok {
		return
	}
	if err := h.issueLogic.Delete(projectID, issueID, caller.ID); err != nil {
		FailFromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func issueInput(req IssueRequest) logic.IssueInput {
	return logic.IssueInput{
		Title:      req.Title,
		Desc:       req.Desc,
		Tag:        req.Tag,
		Priority:   req.Priority,
		Status:     req.Status,
		AssigneeID: req.AssigneeID,
	}
}
