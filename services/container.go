package services

import (
	"github.com/linskybing/ticketdesk/repositories"
	"github.com/linskybing/ticketdesk/websocket"
)

type Services struct {
	User       *UserService
	Team       *TeamService
	Project    *ProjectService
	Ticket     *TicketService
	Attachment *AttachmentService
	Audit      *AuditService
}

func New(repos *repositories.Repos, events *websocket.Hub) *Services {
	return &Services{
		User:       NewUserService(repos),
		Team:       NewTeamService(repos),
		Project:    NewProjectService(repos),
		Ticket:     NewTicketService(repos, events),
		Attachment: NewAttachmentService(repos),
		Audit:      NewAuditService(repos),
	}
}
