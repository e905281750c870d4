package handlers

import (
	"github.com/linskybing/ticketdesk/services"
	"github.com/linskybing/ticketdesk/websocket"
)

type Handlers struct {
	Auth       *AuthHandler
	Ticket     *TicketHandler
	Attachment *AttachmentHandler
	Team       *TeamHandler
	TeamUser   *TeamUserHandler
	Project    *ProjectHandler
	Audit      *AuditHandler
	Stream     *StreamHandler
}

func New(svcs *services.Services, hub *websocket.Hub) *Handlers {
	return &Handlers{
		Auth:       &AuthHandler{Users: svcs.User},
		Ticket:     &TicketHandler{Tickets: svcs.Ticket},
		Attachment: &AttachmentHandler{Attachments: svcs.Attachment},
		Team:       &TeamHandler{Teams: svcs.Team},
		TeamUser:   &TeamUserHandler{Teams: svcs.Team, Users: svcs.User},
		Project:    &ProjectHandler{Projects: svcs.Project},
		Audit:      &AuditHandler{Audits: svcs.Audit},
		Stream:     &StreamHandler{Hub: hub, Tickets: svcs.Ticket},
	}
}
