package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketdesk/dto"
	"github.com/linskybing/ticketdesk/services"
	"github.com/linskybing/ticketdesk/utils"
)

type TicketHandler struct {
	Tickets *services.TicketService
}

// projectScope reads the mandatory project_id query parameter that scopes
// every ticket route.
func projectScope(c *gin.Context) (uint, bool) {
	projectID, err := utils.ParseQueryUintParam(c, "project_id")
	if err != nil {
		badRequest(c, "invalid or missing project_id")
		return 0, false
	}
	return projectID, true
}

// Create godoc
// @Summary Create a ticket in a project
// @Accept json
// @Produce json
// @Param project_id query int false "Project scope (falls back to body project_id)"
// @Param ticket body dto.CreateTicketDTO true "Ticket fields"
// @Success 201 {object} dto.TicketOut
// @Router /tickets [post]
func (h *TicketHandler) Create(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}

	var input dto.CreateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	projectID, err := utils.ParseQueryUintParam(c, "project_id")
	if err != nil {
		if input.ProjectID == nil {
			badRequest(c, "project_id required")
			return
		}
		projectID = *input.ProjectID
	}

	var teamOverride *uint
	if override, err := utils.ParseQueryUintParam(c, "team_id"); err == nil {
		teamOverride = &override
	}

	out, err := h.Tickets.CreateTicket(c, userID, projectID, input, teamOverride)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// Get godoc
// @Summary Get one ticket
// @Produce json
// @Success 200 {object} dto.TicketOut
// @Router /tickets/{id} [get]
func (h *TicketHandler) Get(c *gin.Context) {
	projectID, ok := projectScope(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid ticket id")
		return
	}

	out, err := h.Tickets.GetTicket(id, projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// List godoc
// @Summary List all tickets in a project
// @Produce json
// @Success 200 {array} dto.TicketOut
// @Router /tickets [get]
func (h *TicketHandler) List(c *gin.Context) {
	projectID, ok := projectScope(c)
	if !ok {
		return
	}

	out, err := h.Tickets.ListTickets(projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListMine godoc
// @Summary List tickets the caller created
// @Produce json
// @Success 200 {array} dto.TicketOut
// @Router /tickets/mine [get]
func (h *TicketHandler) ListMine(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}
	projectID, ok := projectScope(c)
	if !ok {
		return
	}

	out, err := h.Tickets.ListMyTickets(userID, projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListAssigned godoc
// @Summary List the caller's open or in-progress assigned tickets
// @Produce json
// @Success 200 {array} dto.TicketOut
// @Router /tickets/assigned [get]
func (h *TicketHandler) ListAssigned(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}
	projectID, ok := projectScope(c)
	if !ok {
		return
	}

	out, err := h.Tickets.ListAssignedTickets(userID, projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// UpdateStatus godoc
// @Summary Advance a ticket along its status lifecycle
// @Accept json
// @Produce json
// @Success 200 {object} dto.TicketOut
// @Router /tickets/{id}/status [patch]
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}
	projectID, ok := projectScope(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid ticket id")
		return
	}

	var input dto.TicketStatusUpdateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	out, err := h.Tickets.UpdateStatus(c, id, projectID, input.Status, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// LeaveFeedback godoc
// @Summary Leave feedback on a closed ticket
// @Accept json
// @Produce json
// @Success 200 {object} dto.TicketOut
// @Router /tickets/{id}/feedback [patch]
func (h *TicketHandler) LeaveFeedback(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}
	projectID, ok := projectScope(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid ticket id")
		return
	}

	var input dto.TicketFeedbackUpdateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	out, err := h.Tickets.LeaveFeedback(c, id, projectID, input, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Reassign godoc
// @Summary Reassign a ticket to another project member
// @Accept json
// @Produce json
// @Success 200 {object} dto.TicketOut
// @Router /tickets/{id}/assignee [patch]
func (h *TicketHandler) Reassign(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}
	projectID, ok := projectScope(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid ticket id")
		return
	}

	var input dto.TicketAssigneeUpdateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	out, err := h.Tickets.Reassign(c, id, projectID, input.AssignedTo, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Delete godoc
// @Summary Delete a ticket
// @Success 204
// @Router /tickets/{id} [delete]
func (h *TicketHandler) Delete(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		unauthorized(c, err.Error())
		return
	}
	projectID, ok := projectScope(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid ticket id")
		return
	}

	if err := h.Tickets.DeleteTicket(c, id, projectID, userID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
