package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketdesk/handlers"
	"github.com/linskybing/ticketdesk/middleware"
)

// Register wires every route onto r. /register, /login and the websocket
// stream live outside the JWT group; the stream authenticates via the token
// query parameter instead.
func Register(r *gin.Engine, h *handlers.Handlers) {
	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)
	r.GET("/ws/tickets", h.Stream.Stream)

	auth := r.Group("/", middleware.JWTAuthMiddleware())

	tickets := auth.Group("/tickets")
	{
		tickets.POST("", h.Ticket.Create)
		tickets.GET("", h.Ticket.List)
		tickets.GET("/mine", h.Ticket.ListMine)
		tickets.GET("/assigned", h.Ticket.ListAssigned)
		tickets.GET("/:id", h.Ticket.Get)
		tickets.PATCH("/:id/status", h.Ticket.UpdateStatus)
		tickets.PATCH("/:id/feedback", h.Ticket.LeaveFeedback)
		tickets.PATCH("/:id/assignee", h.Ticket.Reassign)
		tickets.DELETE("/:id", h.Ticket.Delete)

		tickets.POST("/:id/attachments", h.Attachment.Upload)
		tickets.GET("/:id/attachments", h.Attachment.List)
		tickets.GET("/:id/attachments/:attachment_id", h.Attachment.Download)
		tickets.DELETE("/:id/attachments/:attachment_id", h.Attachment.Delete)
	}

	teams := auth.Group("/teams")
	{
		teams.GET("", h.Team.List)
		teams.POST("", h.Team.Create)
		teams.GET("/:team_id", h.Team.Get)
		teams.PUT("/:team_id", h.Team.Update)
		teams.DELETE("/:team_id", h.Team.Delete)

		teams.GET("/:team_id/users", h.TeamUser.ListMembers)
		teams.GET("/:team_id/available-admins", h.TeamUser.ListAvailableAdmins)
		teams.GET("/:team_id/available-users", h.TeamUser.ListAvailableUsers)
		teams.GET("/:team_id/users/:user_id", h.TeamUser.GetUserInTeam)
		teams.PUT("/:team_id/availability", h.TeamUser.SetAvailability)
		teams.POST("/:team_id/members/:user_id", h.TeamUser.AddMember)
		teams.DELETE("/:team_id/members/:user_id", h.TeamUser.RemoveMember)
	}

	projects := auth.Group("/projects")
	{
		projects.GET("", h.Project.List)
		projects.POST("", h.Project.Create)
		projects.GET("/:project_id", h.Project.Get)
		projects.PUT("/:project_id", h.Project.Update)
		projects.DELETE("/:project_id", h.Project.Delete)
		projects.POST("/:project_id/members/:user_id", h.Project.AddMember)
		projects.DELETE("/:project_id/members/:user_id", h.Project.RemoveMember)
	}

	auth.GET("/audit-logs", h.Audit.Query)
}
