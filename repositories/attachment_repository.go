package repositories

import (
	"github.com/linskybing/ticketdesk/db"
	"github.com/linskybing/ticketdesk/models"
)

type AttachmentRepo interface {
	CreateAttachment(attachment *models.TicketAttachment) error
	GetAttachment(id, ticketID uint) (models.TicketAttachment, error)
	ListAttachmentsByTicket(ticketID uint) ([]models.TicketAttachment, error)
	DeleteAttachment(id uint) error
}

type DBAttachmentRepo struct{}

func (r *DBAttachmentRepo) CreateAttachment(attachment *models.TicketAttachment) error {
	return db.DB.Create(attachment).Error
}

func (r *DBAttachmentRepo) GetAttachment(id, ticketID uint) (models.TicketAttachment, error) {
	var attachment models.TicketAttachment
	err := db.DB.First(&attachment, "id = ? AND ticket_id = ?", id, ticketID).Error
	return attachment, err
}

func (r *DBAttachmentRepo) ListAttachmentsByTicket(ticketID uint) ([]models.TicketAttachment, error) {
	var attachments []models.TicketAttachment
	err := db.DB.Where("ticket_id = ?", ticketID).Order("id").Find(&attachments).Error
	return attachments, err
}

func (r *DBAttachmentRepo) DeleteAttachment(id uint) error {
	return db.DB.Delete(&models.TicketAttachment{}, id).Error
}
