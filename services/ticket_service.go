package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketdesk/config"
	"github.com/linskybing/ticketdesk/dto"
	"github.com/linskybing/ticketdesk/models"
	"github.com/linskybing/ticketdesk/repositories"
	"github.com/linskybing/ticketdesk/utils"
	"github.com/linskybing/ticketdesk/websocket"
	"gorm.io/gorm"
)

// Status lifecycle is one way: open -> in_progress -> closed. Closed is
// terminal; self-transitions, skips and reversals are all rejected.
var allowedStatusTransitions = map[string][]string{
	string(models.TicketStatusOpen):       {string(models.TicketStatusInProgress)},
	string(models.TicketStatusInProgress): {string(models.TicketStatusClosed)},
	string(models.TicketStatusClosed):     {},
}

type TicketService struct {
	Repos  *repositories.Repos
	Events *websocket.Hub
}

func NewTicketService(repos *repositories.Repos, events *websocket.Hub) *TicketService {
	return &TicketService{Repos: repos, Events: events}
}

func (s *TicketService) CreateTicket(c *gin.Context, actorID, projectID uint, input dto.CreateTicketDTO, teamOverride *uint) (dto.TicketOut, error) {
	teamID, err := s.resolveTeam(actorID, input.TeamID, teamOverride)
	if err != nil {
		return dto.TicketOut{}, err
	}

	if _, err := s.Repos.Team.GetTeamByID(teamID); err != nil {
		return dto.TicketOut{}, ErrTeamNotFound
	}
	project, err := s.Repos.Project.GetProjectByID(projectID)
	if err != nil {
		return dto.TicketOut{}, ErrProjectNotFound
	}

	if _, err := s.Repos.Membership.GetProjectUser(actorID, projectID); err != nil {
		return dto.TicketOut{}, ErrNotProjectMember
	}

	assignedTo, err := s.resolveAssignee(input.AssignedToName, projectID)
	if err != nil {
		return dto.TicketOut{}, err
	}

	ticketType := string(models.TicketTypeWorker)
	if input.Type != nil {
		ticketType = *input.Type
	}

	workerTeamID, err := resolveWorkerTeam(project, input.WorkerTeamID, ticketType)
	if err != nil {
		return dto.TicketOut{}, err
	}

	priority := string(models.TicketPriorityMedium)
	if input.Priority != nil {
		priority = *input.Priority
	}

	ticket := models.Ticket{
		Title:        input.Title,
		Description:  input.Description,
		Type:         ticketType,
		Priority:     priority,
		Status:       string(models.TicketStatusOpen),
		CreatedBy:    actorID,
		AssignedTo:   assignedTo,
		WorkerTeamID: workerTeamID,
		TeamID:       teamID,
		ProjectID:    projectID,
	}
	if err := s.Repos.Ticket.CreateTicket(&ticket); err != nil {
		return dto.TicketOut{}, err
	}

	utils.LogAuditWithConsole(c, "create", "ticket",
		fmt.Sprintf("%d", ticket.ID), nil, ticket, "", s.Repos.Audit)

	out, err := s.readBack(ticket.ID)
	if err != nil {
		return dto.TicketOut{}, err
	}
	s.broadcast("created", out)
	return out, nil
}

func (s *TicketService) GetTicket(id, projectID uint) (dto.TicketOut, error) {
	ticket, err := s.Repos.Ticket.GetTicket(id, projectID)
	if err != nil {
		return dto.TicketOut{}, ErrTicketNotFound
	}
	return s.readBack(ticket.ID)
}

func (s *TicketService) ListTickets(projectID uint) ([]dto.TicketOut, error) {
	tickets, err := s.Repos.Ticket.ListTickets(projectID)
	if err != nil {
		return nil, err
	}
	return dto.NewTicketOutList(tickets), nil
}

func (s *TicketService) ListMyTickets(actorID, projectID uint) ([]dto.TicketOut, error) {
	tickets, err := s.Repos.Ticket.ListTicketsCreatedBy(actorID, projectID)
	if err != nil {
		return nil, err
	}
	return dto.NewTicketOutList(tickets), nil
}

// RequireProjectMember gates operations that need any project role.
func (s *TicketService) RequireProjectMember(actorID, projectID uint) error {
	if _, err := s.Repos.Membership.GetProjectUser(actorID, projectID); err != nil {
		return ErrNotProjectMember
	}
	return nil
}

// ListAssignedTickets returns the actor's open or in-progress tickets in the
// project. Unlike the other list operations it requires project membership.
func (s *TicketService) ListAssignedTickets(actorID, projectID uint) ([]dto.TicketOut, error) {
	if err := s.RequireProjectMember(actorID, projectID); err != nil {
		return nil, err
	}
	tickets, err := s.Repos.Ticket.ListOpenTicketsAssignedTo(actorID, projectID)
	if err != nil {
		return nil, err
	}
	return dto.NewTicketOutList(tickets), nil
}

func (s *TicketService) UpdateStatus(c *gin.Context, id, projectID uint, newStatus string, actorID uint) (dto.TicketOut, error) {
	ticket, err := s.Repos.Ticket.GetTicket(id, projectID)
	if err != nil {
		return dto.TicketOut{}, ErrTicketNotFound
	}
	if ticket.AssignedTo == nil || *ticket.AssignedTo != actorID {
		return dto.TicketOut{}, ErrNotAssignee
	}

	if !transitionAllowed(ticket.Status, newStatus) {
		return dto.TicketOut{}, fmt.Errorf("%w: cannot go from %s to %s",
			ErrInvalidTransition, ticket.Status, newStatus)
	}

	oldTicket := ticket
	ticket.Status = newStatus
	if newStatus == string(models.TicketStatusClosed) {
		now := time.Now().UTC()
		ticket.ClosedAt = &now
	}
	if err := s.Repos.Ticket.SaveTicket(&ticket); err != nil {
		return dto.TicketOut{}, err
	}

	utils.LogAuditWithConsole(c, "update_status", "ticket",
		fmt.Sprintf("%d", ticket.ID), oldTicket, ticket, "", s.Repos.Audit)

	out, err := s.readBack(ticket.ID)
	if err != nil {
		return dto.TicketOut{}, err
	}
	s.broadcast("status", out)
	return out, nil
}

func (s *TicketService) LeaveFeedback(c *gin.Context, id, projectID uint, input dto.TicketFeedbackUpdateDTO, actorID uint) (dto.TicketOut, error) {
	ticket, err := s.Repos.Ticket.GetTicket(id, projectID)
	if err != nil {
		return dto.TicketOut{}, ErrTicketNotFound
	}
	if ticket.CreatedBy != actorID {
		return dto.TicketOut{}, ErrNotCreator
	}
	if ticket.Status != string(models.TicketStatusClosed) {
		return dto.TicketOut{}, ErrTicketNotClosed
	}

	oldTicket := ticket
	// Empty feedback keeps whatever was recorded before; confirmed is
	// always overwritten.
	if input.Feedback != nil && *input.Feedback != "" {
		ticket.Feedback = input.Feedback
	}
	ticket.Confirmed = input.Confirmed
	if err := s.Repos.Ticket.SaveTicket(&ticket); err != nil {
		return dto.TicketOut{}, err
	}

	utils.LogAuditWithConsole(c, "feedback", "ticket",
		fmt.Sprintf("%d", ticket.ID), oldTicket, ticket, "", s.Repos.Audit)

	out, err := s.readBack(ticket.ID)
	if err != nil {
		return dto.TicketOut{}, err
	}
	s.broadcast("feedback", out)
	return out, nil
}

// Reassign changes the assignee. The authorization subject depends on
// config.ReassignLegacyAuthz: the default checks the caller's project admin
// role, legacy mode reproduces the historical checks against the target
// user (under which no reassignment can ever pass both checks).
func (s *TicketService) Reassign(c *gin.Context, id, projectID, targetID, actorID uint) (dto.TicketOut, error) {
	ticket, err := s.Repos.Ticket.GetTicket(id, projectID)
	if err != nil {
		return dto.TicketOut{}, ErrTicketNotFound
	}

	adminSubject := actorID
	if config.ReassignLegacyAuthz {
		adminSubject = targetID
	}
	adminLink, err := s.Repos.Membership.GetProjectUser(adminSubject, projectID)
	if err != nil || adminLink.Role != string(models.ProjectRoleAdmin) {
		return dto.TicketOut{}, ErrNotProjectAdmin
	}

	targetLink, err := s.Repos.Membership.GetProjectUser(targetID, projectID)
	if err != nil {
		return dto.TicketOut{}, ErrTargetNotAssignable
	}
	if targetLink.Role != string(models.ProjectRoleMember) && targetLink.Role != string(models.ProjectRoleWorker) {
		return dto.TicketOut{}, ErrTargetNotAssignable
	}

	target, err := s.Repos.User.GetUserByID(targetID)
	if err != nil || !target.IsAvailable {
		return dto.TicketOut{}, ErrUserUnavailable
	}

	if err := s.Repos.Ticket.SetTicketAssignee(ticket.ID, targetID); err != nil {
		return dto.TicketOut{}, err
	}

	utils.LogAuditWithConsole(c, "reassign", "ticket",
		fmt.Sprintf("%d", ticket.ID), ticket.AssignedTo, targetID, "", s.Repos.Audit)

	out, err := s.readBack(ticket.ID)
	if err != nil {
		return dto.TicketOut{}, err
	}
	s.broadcast("assignee", out)
	return out, nil
}

func (s *TicketService) DeleteTicket(c *gin.Context, id, projectID, actorID uint) error {
	ticket, err := s.Repos.Ticket.GetTicket(id, projectID)
	if err != nil {
		return ErrTicketNotFound
	}

	isCreator := ticket.CreatedBy == actorID
	if !isCreator {
		link, err := s.Repos.Membership.GetProjectUser(actorID, projectID)
		if err != nil || link.Role != string(models.ProjectRoleAdmin) {
			return ErrNotPermitted
		}
	}

	s.removeAttachments(c, ticket.ID)

	if err := s.Repos.Ticket.DeleteTicket(ticket.ID); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "ticket",
		fmt.Sprintf("%d", ticket.ID), ticket, nil, "", s.Repos.Audit)

	if s.Events != nil {
		s.Events.Broadcast(websocket.Event{Type: "deleted", ProjectID: ticket.ProjectID, TicketID: ticket.ID})
	}
	return nil
}

func (s *TicketService) resolveTeam(actorID uint, bodyTeamID, teamOverride *uint) (uint, error) {
	if teamOverride != nil {
		return *teamOverride, nil
	}
	if bodyTeamID != nil {
		return *bodyTeamID, nil
	}
	memberships, err := s.Repos.Membership.ListUserTeams(actorID)
	if err != nil {
		return 0, err
	}
	if len(memberships) == 0 {
		return 0, ErrTeamNotFound
	}
	return memberships[0].TID, nil
}

func (s *TicketService) resolveAssignee(name *string, projectID uint) (*uint, error) {
	if name == nil || *name == "" {
		return nil, nil
	}
	user, err := s.Repos.User.FindProjectMemberByName(projectID, *name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssigneeNotFound
		}
		return nil, err
	}
	return &user.UID, nil
}

func resolveWorkerTeam(project models.Project, explicit *uint, ticketType string) (*uint, error) {
	if explicit != nil {
		if project.WorkerTeamID == nil || *project.WorkerTeamID != *explicit {
			return nil, ErrWorkerTeamMismatch
		}
		return explicit, nil
	}
	if ticketType == string(models.TicketTypeWorker) {
		if project.WorkerTeamID == nil {
			return nil, ErrNoWorkerTeam
		}
		return project.WorkerTeamID, nil
	}
	return nil, nil
}

func transitionAllowed(current, next string) bool {
	for _, allowed := range allowedStatusTransitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s *TicketService) readBack(id uint) (dto.TicketOut, error) {
	ticket, err := s.Repos.Ticket.GetTicketDetail(id)
	if err != nil {
		return dto.TicketOut{}, err
	}
	return dto.NewTicketOut(ticket), nil
}

func (s *TicketService) broadcast(eventType string, out dto.TicketOut) {
	if s.Events == nil {
		return
	}
	s.Events.Broadcast(websocket.Event{
		Type:      eventType,
		ProjectID: out.ProjectID,
		TicketID:  out.ID,
		Payload:   out,
	})
}

func (s *TicketService) removeAttachments(c *gin.Context, ticketID uint) {
	attachments, err := s.Repos.Attachment.ListAttachmentsByTicket(ticketID)
	if err != nil {
		return
	}
	ctx := context.Background()
	if c != nil && c.Request != nil {
		ctx = c.Request.Context()
	}
	for _, a := range attachments {
		// Orphaned objects are tolerable; the row is removed regardless.
		_ = utils.DeleteObject(ctx, a.ObjectKey)
		_ = s.Repos.Attachment.DeleteAttachment(a.ID)
	}
}
