package repositories

import (
	"github.com/linskybing/ticketdesk/db"
	"github.com/linskybing/ticketdesk/models"
)

type TicketRepo interface {
	CreateTicket(ticket *models.Ticket) error
	GetTicket(id, projectID uint) (models.Ticket, error)
	GetTicketDetail(id uint) (models.Ticket, error)
	ListTickets(projectID uint) ([]models.Ticket, error)
	ListTicketsCreatedBy(uid, projectID uint) ([]models.Ticket, error)
	ListOpenTicketsAssignedTo(uid, projectID uint) ([]models.Ticket, error)
	SaveTicket(ticket *models.Ticket) error
	SetTicketAssignee(id, assigneeID uint) error
	DeleteTicket(id uint) error
}

type DBTicketRepo struct{}

func (r *DBTicketRepo) CreateTicket(ticket *models.Ticket) error {
	return db.DB.Create(ticket).Error
}

// GetTicket fetches a bare row scoped to a project, for mutation paths.
func (r *DBTicketRepo) GetTicket(id, projectID uint) (models.Ticket, error) {
	var ticket models.Ticket
	err := db.DB.First(&ticket, "id = ? AND project_id = ?", id, projectID).Error
	return ticket, err
}

// GetTicketDetail re-reads a ticket with its creator, assignee and worker
// team resolved. Mutating operations return this instead of the in-memory
// row so server-side defaults surface.
func (r *DBTicketRepo) GetTicketDetail(id uint) (models.Ticket, error) {
	var ticket models.Ticket
	err := db.DB.
		Preload("Creator").
		Preload("Assignee").
		Preload("WorkerTeam").
		First(&ticket, id).Error
	return ticket, err
}

func (r *DBTicketRepo) ListTickets(projectID uint) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := db.DB.
		Preload("Creator").
		Preload("Assignee").
		Preload("WorkerTeam").
		Where("project_id = ?", projectID).
		Order("created_at desc").
		Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListTicketsCreatedBy(uid, projectID uint) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := db.DB.
		Preload("Creator").
		Preload("Assignee").
		Preload("WorkerTeam").
		Where("created_by = ? AND project_id = ?", uid, projectID).
		Order("created_at desc").
		Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListOpenTicketsAssignedTo(uid, projectID uint) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := db.DB.
		Preload("Creator").
		Preload("Assignee").
		Preload("WorkerTeam").
		Where("assigned_to = ? AND project_id = ? AND status IN ?",
			uid, projectID,
			[]string{string(models.TicketStatusOpen), string(models.TicketStatusInProgress)}).
		Order("created_at desc").
		Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) SaveTicket(ticket *models.Ticket) error {
	return db.DB.Save(ticket).Error
}

// SetTicketAssignee writes the assignee column alone. UpdateColumn skips the
// autoUpdateTime hook: reassignment historically does not stamp updated_at.
func (r *DBTicketRepo) SetTicketAssignee(id, assigneeID uint) error {
	return db.DB.Model(&models.Ticket{}).Where("id = ?", id).
		UpdateColumn("assigned_to", assigneeID).Error
}

func (r *DBTicketRepo) DeleteTicket(id uint) error {
	return db.DB.Delete(&models.Ticket{}, id).Error
}
