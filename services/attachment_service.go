package services

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/ticketdesk/dto"
	"github.com/linskybing/ticketdesk/models"
	"github.com/linskybing/ticketdesk/repositories"
	"github.com/linskybing/ticketdesk/utils"
)

type AttachmentService struct {
	Repos *repositories.Repos
}

func NewAttachmentService(repos *repositories.Repos) *AttachmentService {
	return &AttachmentService{Repos: repos}
}

func (s *AttachmentService) requireTicketAndMembership(ticketID, projectID, actorID uint) (models.Ticket, error) {
	ticket, err := s.Repos.Ticket.GetTicket(ticketID, projectID)
	if err != nil {
		return models.Ticket{}, ErrTicketNotFound
	}
	if _, err := s.Repos.Membership.GetProjectUser(actorID, projectID); err != nil {
		return models.Ticket{}, ErrNotProjectMember
	}
	return ticket, nil
}

func (s *AttachmentService) Upload(c *gin.Context, ticketID, projectID, actorID uint,
	fileName, contentType string, content io.Reader, size int64) (dto.AttachmentOut, error) {

	ticket, err := s.requireTicketAndMembership(ticketID, projectID, actorID)
	if err != nil {
		return dto.AttachmentOut{}, err
	}

	objectKey := fmt.Sprintf("tickets/%d/%s-%s", ticket.ID, uuid.NewString(), fileName)
	if err := utils.UploadObject(c.Request.Context(), objectKey, contentType, content, size); err != nil {
		return dto.AttachmentOut{}, err
	}

	attachment := models.TicketAttachment{
		TicketID:    ticket.ID,
		FileName:    fileName,
		ObjectKey:   objectKey,
		ContentType: contentType,
		Size:        size,
		UploadedBy:  actorID,
	}
	if err := s.Repos.Attachment.CreateAttachment(&attachment); err != nil {
		return dto.AttachmentOut{}, err
	}

	utils.LogAuditWithConsole(c, "upload_attachment", "ticket",
		fmt.Sprintf("%d", ticket.ID), nil, attachment, "", s.Repos.Audit)
	return dto.NewAttachmentOut(attachment), nil
}

func (s *AttachmentService) List(ticketID, projectID, actorID uint) ([]dto.AttachmentOut, error) {
	if _, err := s.requireTicketAndMembership(ticketID, projectID, actorID); err != nil {
		return nil, err
	}

	attachments, err := s.Repos.Attachment.ListAttachmentsByTicket(ticketID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttachmentOut, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, dto.NewAttachmentOut(a))
	}
	return out, nil
}

// Open returns the attachment metadata and a reader over its payload. The
// caller owns closing the reader.
func (s *AttachmentService) Open(c *gin.Context, ticketID, attachmentID, projectID, actorID uint) (models.TicketAttachment, io.ReadCloser, error) {
	if _, err := s.requireTicketAndMembership(ticketID, projectID, actorID); err != nil {
		return models.TicketAttachment{}, nil, err
	}

	attachment, err := s.Repos.Attachment.GetAttachment(attachmentID, ticketID)
	if err != nil {
		return models.TicketAttachment{}, nil, ErrAttachmentNotFound
	}

	reader, err := utils.OpenObject(c.Request.Context(), attachment.ObjectKey)
	if err != nil {
		return models.TicketAttachment{}, nil, err
	}
	return attachment, reader, nil
}

// Delete removes an attachment; only the uploader or a project admin may.
func (s *AttachmentService) Delete(c *gin.Context, ticketID, attachmentID, projectID, actorID uint) error {
	if _, err := s.Repos.Ticket.GetTicket(ticketID, projectID); err != nil {
		return ErrTicketNotFound
	}

	attachment, err := s.Repos.Attachment.GetAttachment(attachmentID, ticketID)
	if err != nil {
		return ErrAttachmentNotFound
	}

	if attachment.UploadedBy != actorID {
		link, err := s.Repos.Membership.GetProjectUser(actorID, projectID)
		if err != nil || link.Role != string(models.ProjectRoleAdmin) {
			return ErrNotPermitted
		}
	}

	if err := utils.DeleteObject(c.Request.Context(), attachment.ObjectKey); err != nil {
		return err
	}
	if err := s.Repos.Attachment.DeleteAttachment(attachment.ID); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete_attachment", "ticket",
		fmt.Sprintf("%d", ticketID), attachment, nil, "", s.Repos.Audit)
	return nil
}
