package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketdesk/dto"
	"github.com/linskybing/ticketdesk/services"
	"github.com/linskybing/ticketdesk/utils"
)

type ProjectHandler struct {
	Projects *services.ProjectService
}

// List godoc
// @Summary List projects
// @Produce json
// @Success 200 {array} models.Project
// @Router /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.Projects.ListProjects()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Get godoc
// @Summary Get a project
// @Produce json
// @Success 200 {object} models.Project
// @Router /projects/{project_id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "project_id")
	if err != nil {
		badRequest(c, "invalid project id")
		return
	}

	project, err := h.Projects.GetProject(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Create godoc
// @Summary Create a project
// @Accept json
// @Produce json
// @Success 201 {object} models.Project
// @Router /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}

	var input dto.CreateProjectDTO
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	project, err := h.Projects.CreateProject(c, userID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// Update godoc
// @Summary Update a project
// @Accept json
// @Produce json
// @Success 200 {object} models.Project
// @Router /projects/{project_id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}
	id, err := utils.ParseIDParam(c, "project_id")
	if err != nil {
		badRequest(c, "invalid project id")
		return
	}

	var input dto.UpdateProjectDTO
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	project, err := h.Projects.UpdateProject(c, userID, id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Delete godoc
// @Summary Delete a project
// @Success 204
// @Router /projects/{project_id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}
	id, err := utils.ParseIDParam(c, "project_id")
	if err != nil {
		badRequest(c, "invalid project id")
		return
	}

	if err := h.Projects.DeleteProject(c, userID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddMember godoc
// @Summary Add a user to a project
// @Produce json
// @Success 201 {object} models.ProjectUser
// @Router /projects/{project_id}/members/{user_id} [post]
func (h *ProjectHandler) AddMember(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}
	projectID, err := utils.ParseIDParam(c, "project_id")
	if err != nil {
		badRequest(c, "invalid project id")
		return
	}
	targetID, err := utils.ParseIDParam(c, "user_id")
	if err != nil {
		badRequest(c, "invalid user id")
		return
	}

	membership, err := h.Projects.AddMember(c, userID, projectID, targetID, c.Query("role"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, membership)
}

// RemoveMember godoc
// @Summary Remove a user from a project
// @Success 204
// @Router /projects/{project_id}/members/{user_id} [delete]
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}
	projectID, err := utils.ParseIDParam(c, "project_id")
	if err != nil {
		badRequest(c, "invalid project id")
		return
	}
	targetID, err := utils.ParseIDParam(c, "user_id")
	if err != nil {
		badRequest(c, "invalid user id")
		return
	}

	if err := h.Projects.RemoveMember(c, userID, projectID, targetID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
