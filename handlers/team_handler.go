package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketdesk/dto"
	"github.com/linskybing/ticketdesk/services"
	"github.com/linskybing/ticketdesk/utils"
)

type TeamHandler struct {
	Teams *services.TeamService
}

// List godoc
// @Summary List teams
// @Produce json
// @Success 200 {array} models.Team
// @Router /teams [get]
func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.Teams.ListTeams()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// Get godoc
// @Summary Get a team
// @Produce json
// @Success 200 {object} models.Team
// @Router /teams/{team_id} [get]
func (h *TeamHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "team_id")
	if err != nil {
		badRequest(c, "invalid team id")
		return
	}

	team, err := h.Teams.GetTeam(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// Create godoc
// @Summary Create a team
// @Accept json
// @Produce json
// @Success 201 {object} models.Team
// @Router /teams [post]
func (h *TeamHandler) Create(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}

	var input dto.TeamCreateDTO
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	team, err := h.Teams.CreateTeam(c, userID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// Update godoc
// @Summary Update a team
// @Accept json
// @Produce json
// @Success 200 {object} models.Team
// @Router /teams/{team_id} [put]
func (h *TeamHandler) Update(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}
	id, err := utils.ParseIDParam(c, "team_id")
	if err != nil {
		badRequest(c, "invalid team id")
		return
	}

	var input dto.TeamUpdateDTO
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	team, err := h.Teams.UpdateTeam(c, userID, id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// Delete godoc
// @Summary Delete a team
// @Success 204
// @Router /teams/{team_id} [delete]
func (h *TeamHandler) Delete(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}
	id, err := utils.ParseIDParam(c, "team_id")
	if err != nil {
		badRequest(c, "invalid team id")
		return
	}

	if err := h.Teams.DeleteTeam(c, userID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
