package dto

import (
	"time"

	"github.com/linskybing/ticketdesk/models"
)

type CreateTicketDTO struct {
	Title          string  `json:"title" binding:"required"`
	Description    string  `json:"description" binding:"required"`
	Type           *string `json:"type" binding:"omitempty,oneof=worker general"`
	Priority       *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	ProjectID      *uint   `json:"project_id"`
	TeamID         *uint   `json:"team_id"`
	AssignedToName *string `json:"assigned_to_name"`
	WorkerTeamID   *uint   `json:"worker_team_id"`
}

type TicketStatusUpdateDTO struct {
	Status string `json:"status" binding:"required,oneof=open in_progress closed"`
}

type TicketFeedbackUpdateDTO struct {
	Feedback  *string `json:"feedback"`
	Confirmed bool    `json:"confirmed"`
}

type TicketAssigneeUpdateDTO struct {
	AssignedTo uint `json:"assigned_to" binding:"required"`
}

// TicketOut is the flattened ticket projection returned by every ticket
// endpoint: scalar fields plus creator/assignee/worker-team briefs.
type TicketOut struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Creator     UserBrief  `json:"creator"`
	Assignee    *UserBrief `json:"assignee"`
	WorkerTeam  *TeamBrief `json:"worker_team"`
	TeamID      uint       `json:"team_id"`
	ProjectID   uint       `json:"project_id"`
	Feedback    *string    `json:"feedback"`
	Confirmed   bool       `json:"confirmed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ClosedAt    *time.Time `json:"closed_at"`
}

func NewTicketOut(t models.Ticket) TicketOut {
	out := TicketOut{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Type:        t.Type,
		Priority:    t.Priority,
		Status:      t.Status,
		Creator:     UserBrief{ID: t.Creator.UID, Name: t.Creator.Username},
		TeamID:      t.TeamID,
		ProjectID:   t.ProjectID,
		Feedback:    t.Feedback,
		Confirmed:   t.Confirmed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		ClosedAt:    t.ClosedAt,
	}
	if t.Assignee != nil {
		out.Assignee = &UserBrief{ID: t.Assignee.UID, Name: t.Assignee.Username}
	}
	if t.WorkerTeam != nil {
		out.WorkerTeam = &TeamBrief{ID: t.WorkerTeam.TID, Name: t.WorkerTeam.TeamName}
	}
	return out
}

func NewTicketOutList(tickets []models.Ticket) []TicketOut {
	out := make([]TicketOut, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, NewTicketOut(t))
	}
	return out
}

type AttachmentOut struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedBy  uint      `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewAttachmentOut(a models.TicketAttachment) AttachmentOut {
	return AttachmentOut{
		ID:          a.ID,
		TicketID:    a.TicketID,
		FileName:    a.FileName,
		ContentType: a.ContentType,
		Size:        a.Size,
		UploadedBy:  a.UploadedBy,
		CreatedAt:   a.CreatedAt,
	}
}
