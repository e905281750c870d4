package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"github.com/linskybing/ticketdesk/middleware"
	"github.com/linskybing/ticketdesk/services"
	"github.com/linskybing/ticketdesk/utils"
	"github.com/linskybing/ticketdesk/websocket"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type StreamHandler struct {
	Hub     *websocket.Hub
	Tickets *services.TicketService
}

// Stream upgrades the connection and forwards ticket events for one project.
// Browsers cannot set headers on websocket dials, so the JWT rides in the
// token query parameter.
func (h *StreamHandler) Stream(c *gin.Context) {
	claims, err := middleware.ParseToken(c.Query("token"))
	if err != nil || claims == nil {
		unauthorized(c, "invalid token")
		return
	}

	projectID, err := utils.ParseQueryUintParam(c, "project_id")
	if err != nil {
		badRequest(c, "invalid or missing project_id")
		return
	}

	if err := h.Tickets.RequireProjectMember(claims.UserID, projectID); err != nil {
		respondServiceError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.Hub.Subscribe(projectID, conn)
	defer func() {
		h.Hub.Unsubscribe(projectID, conn)
		conn.Close()
	}()

	// Inbound frames are ignored; the read loop only detects disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
