package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketdesk/services"
	"github.com/linskybing/ticketdesk/utils"
)

type TeamUserHandler struct {
	Teams *services.TeamService
	Users *services.UserService
}

func (h *TeamUserHandler) teamAndCaller(c *gin.Context) (teamID, userID uint, ok bool) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return 0, 0, false
	}
	teamID, err = utils.ParseIDParam(c, "team_id")
	if err != nil {
		badRequest(c, "invalid team id")
		return 0, 0, false
	}
	return teamID, userID, true
}

// ListMembers godoc
// @Summary List member briefs of a team
// @Produce json
// @Success 200 {array} dto.UserBrief
// @Router /teams/{team_id}/users [get]
func (h *TeamUserHandler) ListMembers(c *gin.Context) {
	teamID, userID, ok := h.teamAndCaller(c)
	if !ok {
		return
	}
	if err := h.Teams.RequireTeamMember(userID, teamID); err != nil {
		respondServiceError(c, err)
		return
	}

	briefs, err := h.Teams.ListMemberBriefs(teamID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, briefs)
}

// ListAvailableAdmins godoc
// @Summary List available team admins
// @Produce json
// @Success 200 {array} dto.UserBrief
// @Router /teams/{team_id}/available-admins [get]
func (h *TeamUserHandler) ListAvailableAdmins(c *gin.Context) {
	teamID, userID, ok := h.teamAndCaller(c)
	if !ok {
		return
	}
	if err := h.Teams.RequireTeamMember(userID, teamID); err != nil {
		respondServiceError(c, err)
		return
	}

	briefs, err := h.Teams.ListAvailableAdmins(teamID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, briefs)
}

// ListAvailableUsers godoc
// @Summary List available regular members
// @Produce json
// @Success 200 {array} dto.UserBrief
// @Router /teams/{team_id}/available-users [get]
func (h *TeamUserHandler) ListAvailableUsers(c *gin.Context) {
	teamID, userID, ok := h.teamAndCaller(c)
	if !ok {
		return
	}
	if err := h.Teams.RequireTeamMember(userID, teamID); err != nil {
		respondServiceError(c, err)
		return
	}

	briefs, err := h.Teams.ListAvailableMembers(teamID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, briefs)
}

// GetUserInTeam godoc
// @Summary Get a member's role, join date and project memberships
// @Produce json
// @Success 200 {object} dto.UserInTeamOut
// @Router /teams/{team_id}/users/{user_id} [get]
func (h *TeamUserHandler) GetUserInTeam(c *gin.Context) {
	teamID, userID, ok := h.teamAndCaller(c)
	if !ok {
		return
	}
	targetID, err := utils.ParseIDParam(c, "user_id")
	if err != nil {
		badRequest(c, "invalid user id")
		return
	}

	if err := h.Teams.RequireTeamMember(userID, teamID); err != nil {
		respondServiceError(c, err)
		return
	}

	out, err := h.Teams.GetUserInTeam(teamID, targetID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// SetAvailability godoc
// @Summary Toggle the caller's availability
// @Produce json
// @Success 200 {object} dto.AvailabilityOut
// @Router /teams/{team_id}/availability [put]
func (h *TeamUserHandler) SetAvailability(c *gin.Context) {
	// Self-service: the caller only ever flips their own flag, so no
	// membership check beyond identity.
	_, userID, ok := h.teamAndCaller(c)
	if !ok {
		return
	}
	isAvailable, err := strconv.ParseBool(c.Query("is_available"))
	if err != nil {
		badRequest(c, "invalid or missing is_available")
		return
	}

	out, err := h.Users.SetAvailability(c, userID, isAvailable)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// AddMember godoc
// @Summary Add a user to a team
// @Produce json
// @Success 201 {object} dto.TeamMembershipOut
// @Router /teams/{team_id}/members/{user_id} [post]
func (h *TeamUserHandler) AddMember(c *gin.Context) {
	teamID, userID, ok := h.teamAndCaller(c)
	if !ok {
		return
	}
	targetID, err := utils.ParseIDParam(c, "user_id")
	if err != nil {
		badRequest(c, "invalid user id")
		return
	}

	out, err := h.Teams.AddMember(c, userID, teamID, targetID, c.Query("role"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// RemoveMember godoc
// @Summary Remove a user from a team
// @Success 204
// @Router /teams/{team_id}/members/{user_id} [delete]
func (h *TeamUserHandler) RemoveMember(c *gin.Context) {
	teamID, userID, ok := h.teamAndCaller(c)
	if !ok {
		return
	}
	targetID, err := utils.ParseIDParam(c, "user_id")
	if err != nil {
		badRequest(c, "invalid user id")
		return
	}

	if err := h.Teams.RemoveMember(c, userID, teamID, targetID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
