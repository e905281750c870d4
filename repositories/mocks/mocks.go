// Package mocks provides hand-rolled testify mocks for the repository
// interfaces used by the service tests.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/linskybing/ticketdesk/models"
	"github.com/linskybing/ticketdesk/repositories"
)

type UserRepo struct{ mock.Mock }

func (m *UserRepo) GetUserByID(id uint) (models.User, error) {
	args := m.Called(id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *UserRepo) GetUserByUsername(username string) (models.User, error) {
	args := m.Called(username)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *UserRepo) CreateUser(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *UserRepo) SetAvailability(id uint, isAvailable bool) error {
	return m.Called(id, isAvailable).Error(0)
}

func (m *UserRepo) FindProjectMemberByName(projectID uint, name string) (models.User, error) {
	args := m.Called(projectID, name)
	return args.Get(0).(models.User), args.Error(1)
}

type TeamRepo struct{ mock.Mock }

func (m *TeamRepo) GetAllTeams() ([]models.Team, error) {
	args := m.Called()
	teams, _ := args.Get(0).([]models.Team)
	return teams, args.Error(1)
}

func (m *TeamRepo) GetTeamByID(id uint) (models.Team, error) {
	args := m.Called(id)
	return args.Get(0).(models.Team), args.Error(1)
}

func (m *TeamRepo) CreateTeam(team *models.Team) error {
	return m.Called(team).Error(0)
}

func (m *TeamRepo) UpdateTeam(team *models.Team) error {
	return m.Called(team).Error(0)
}

func (m *TeamRepo) DeleteTeam(id uint) error {
	return m.Called(id).Error(0)
}

type ProjectRepo struct{ mock.Mock }

func (m *ProjectRepo) GetAllProjects() ([]models.Project, error) {
	args := m.Called()
	projects, _ := args.Get(0).([]models.Project)
	return projects, args.Error(1)
}

func (m *ProjectRepo) GetProjectByID(id uint) (models.Project, error) {
	args := m.Called(id)
	return args.Get(0).(models.Project), args.Error(1)
}

func (m *ProjectRepo) CreateProject(project *models.Project) error {
	return m.Called(project).Error(0)
}

func (m *ProjectRepo) UpdateProject(project *models.Project) error {
	return m.Called(project).Error(0)
}

func (m *ProjectRepo) DeleteProject(id uint) error {
	return m.Called(id).Error(0)
}

type MembershipRepo struct{ mock.Mock }

func (m *MembershipRepo) GetUserTeam(uid, tid uint) (models.UserTeam, error) {
	args := m.Called(uid, tid)
	return args.Get(0).(models.UserTeam), args.Error(1)
}

func (m *MembershipRepo) CreateUserTeam(membership *models.UserTeam) error {
	return m.Called(membership).Error(0)
}

func (m *MembershipRepo) DeleteUserTeam(uid, tid uint) (int64, error) {
	args := m.Called(uid, tid)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MembershipRepo) ListUserTeams(uid uint) ([]models.UserTeam, error) {
	args := m.Called(uid)
	memberships, _ := args.Get(0).([]models.UserTeam)
	return memberships, args.Error(1)
}

func (m *MembershipRepo) ListTeamMembers(tid uint) ([]models.TeamMemberView, error) {
	args := m.Called(tid)
	members, _ := args.Get(0).([]models.TeamMemberView)
	return members, args.Error(1)
}

func (m *MembershipRepo) ListAvailableTeamMembersByRole(tid uint, role string) ([]models.TeamMemberView, error) {
	args := m.Called(tid, role)
	members, _ := args.Get(0).([]models.TeamMemberView)
	return members, args.Error(1)
}

func (m *MembershipRepo) GetProjectUser(uid, pid uint) (models.ProjectUser, error) {
	args := m.Called(uid, pid)
	return args.Get(0).(models.ProjectUser), args.Error(1)
}

func (m *MembershipRepo) CreateProjectUser(membership *models.ProjectUser) error {
	return m.Called(membership).Error(0)
}

func (m *MembershipRepo) DeleteProjectUser(uid, pid uint) (int64, error) {
	args := m.Called(uid, pid)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MembershipRepo) ListProjectMembershipsForTeam(uid, tid uint) ([]models.ProjectMembershipView, error) {
	args := m.Called(uid, tid)
	memberships, _ := args.Get(0).([]models.ProjectMembershipView)
	return memberships, args.Error(1)
}

type TicketRepo struct{ mock.Mock }

func (m *TicketRepo) CreateTicket(ticket *models.Ticket) error {
	return m.Called(ticket).Error(0)
}

func (m *TicketRepo) GetTicket(id, projectID uint) (models.Ticket, error) {
	args := m.Called(id, projectID)
	return args.Get(0).(models.Ticket), args.Error(1)
}

func (m *TicketRepo) GetTicketDetail(id uint) (models.Ticket, error) {
	args := m.Called(id)
	return args.Get(0).(models.Ticket), args.Error(1)
}

func (m *TicketRepo) ListTickets(projectID uint) ([]models.Ticket, error) {
	args := m.Called(projectID)
	tickets, _ := args.Get(0).([]models.Ticket)
	return tickets, args.Error(1)
}

func (m *TicketRepo) ListTicketsCreatedBy(uid, projectID uint) ([]models.Ticket, error) {
	args := m.Called(uid, projectID)
	tickets, _ := args.Get(0).([]models.Ticket)
	return tickets, args.Error(1)
}

func (m *TicketRepo) ListOpenTicketsAssignedTo(uid, projectID uint) ([]models.Ticket, error) {
	args := m.Called(uid, projectID)
	tickets, _ := args.Get(0).([]models.Ticket)
	return tickets, args.Error(1)
}

func (m *TicketRepo) SaveTicket(ticket *models.Ticket) error {
	return m.Called(ticket).Error(0)
}

func (m *TicketRepo) SetTicketAssignee(id, assigneeID uint) error {
	return m.Called(id, assigneeID).Error(0)
}

func (m *TicketRepo) DeleteTicket(id uint) error {
	return m.Called(id).Error(0)
}

type AttachmentRepo struct{ mock.Mock }

func (m *AttachmentRepo) CreateAttachment(attachment *models.TicketAttachment) error {
	return m.Called(attachment).Error(0)
}

func (m *AttachmentRepo) GetAttachment(id, ticketID uint) (models.TicketAttachment, error) {
	args := m.Called(id, ticketID)
	return args.Get(0).(models.TicketAttachment), args.Error(1)
}

func (m *AttachmentRepo) ListAttachmentsByTicket(ticketID uint) ([]models.TicketAttachment, error) {
	args := m.Called(ticketID)
	attachments, _ := args.Get(0).([]models.TicketAttachment)
	return attachments, args.Error(1)
}

func (m *AttachmentRepo) DeleteAttachment(id uint) error {
	return m.Called(id).Error(0)
}

type AuditRepo struct{ mock.Mock }

func (m *AuditRepo) GetAuditLogs(params repositories.AuditQueryParams) ([]models.AuditLog, error) {
	args := m.Called(params)
	logs, _ := args.Get(0).([]models.AuditLog)
	return logs, args.Error(1)
}

func (m *AuditRepo) CreateAuditLog(audit *models.AuditLog) error {
	return m.Called(audit).Error(0)
}
