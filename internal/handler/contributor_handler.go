package handler

import (
	"net/http"

	"github.com/blues/pts/internal/logic"
	"github.com/blues/pts/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ContributorHandler struct {
	contributorLogic *logic.ContributorLogic
}

func NewContributorHandler(contributorLogic *logic.ContributorLogic) *ContributorHandler {
	return &ContributorHandler{contributorLogic: contributorLogic}
}

// AddContributor attaches a user to the project. Project author only.
func (h *ContributorHandler) AddContributor(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	projectID, ok := parseID(c, "project_id")
	if !ok {
		return
	}
	var req ContributorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	contributor, err := h.contributorLogic.Add(projectID, caller.ID, req.UserID, req.Permission, req.Role)
	if err != nil {
		FailFromError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "contributor added", contributor)
}

// GetContributors lists contributor names to any project member.
func (h *ContributorHandler) GetContributors(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	projectID, ok := parseID(c, "project_id")
	if !ok {
		return
	}
	names, err := h.contributorLogic.Names(projectID, caller.ID)
	if err != nil {
		FailFromError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "contributors", names)
}

// RemoveContributor detaches a user from the project. Author only.
func (h *ContributorHandler) RemoveContributor(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	projectID, ok := parseID(c, "project_id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	if err := h.contributorLogic.Remove(projectID, caller.ID, userID); err != nil {
		FailFromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
