package handler

import (
	"net/http"

	"github.com/blues/pts/internal/logic"
	"github.com/blues/pts/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectLogic *logic.ProjectLogic
}

func NewProjectHandler(projectLogic *logic.ProjectLogic) *ProjectHandler {
	return &ProjectHandler{projectLogic: projectLogic}
}

// CreateProject files a project authored by the caller.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	project, err := h.projectLogic.Create(caller.ID, req.Title, req.Description, req.Type)
	if err != nil {
		FailFromError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "project created", project)
}

// GetProjects lists projects the caller authored or contributes to.
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	projects, err := h.projectLogic.VisibleTo(caller.ID)
	if err != nil {
		FailFromError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "projects", projects)
}

// GetProject returns one project to its members.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	projectID, ok := parseID(c, "project_id")
	if !ok {
		return
	}
	project, err := h.projectLogic.Get(projectID, caller.ID)
	if err != nil {
		FailFromError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "project", project)
}

// UpdateProject replaces the project document. Author only.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	projectID, ok := parseID(c, "project_id")
	if !ok {
		return
	}
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	project, err := h.projectLogic.Update(projectID, caller.ID, req.Title, req.Description, req.Type)
	if err != nil {
		FailFromError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, "project updated", project)
}

// DeleteProject removes the project and everything under it. Author only.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	projectID, ok := parseID(c, "project_id")
	if !ok {
		return
	}
	if err := h.projectLogic.Delete(projectID, caller.ID); err != nil {
		FailFromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
