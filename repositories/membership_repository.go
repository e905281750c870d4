package repositories

import (
	"github.com/linskybing/ticketdesk/db"
	"github.com/linskybing/ticketdesk/models"
)

type MembershipRepo interface {
	// team memberships
	GetUserTeam(uid, tid uint) (models.UserTeam, error)
	CreateUserTeam(membership *models.UserTeam) error
	DeleteUserTeam(uid, tid uint) (int64, error)
	ListUserTeams(uid uint) ([]models.UserTeam, error)
	ListTeamMembers(tid uint) ([]models.TeamMemberView, error)
	ListAvailableTeamMembersByRole(tid uint, role string) ([]models.TeamMemberView, error)

	// project memberships
	GetProjectUser(uid, pid uint) (models.ProjectUser, error)
	CreateProjectUser(membership *models.ProjectUser) error
	DeleteProjectUser(uid, pid uint) (int64, error)
	ListProjectMembershipsForTeam(uid, tid uint) ([]models.ProjectMembershipView, error)
}

type DBMembershipRepo struct{}

func (r *DBMembershipRepo) GetUserTeam(uid, tid uint) (models.UserTeam, error) {
	var membership models.UserTeam
	err := db.DB.First(&membership, "u_id = ? AND t_id = ?", uid, tid).Error
	return membership, err
}

func (r *DBMembershipRepo) CreateUserTeam(membership *models.UserTeam) error {
	return db.DB.Create(membership).Error
}

func (r *DBMembershipRepo) DeleteUserTeam(uid, tid uint) (int64, error) {
	res := db.DB.Where("u_id = ? AND t_id = ?", uid, tid).Delete(&models.UserTeam{})
	return res.RowsAffected, res.Error
}

// ListUserTeams returns the user's team memberships ordered by join date so
// "first team" is well defined.
func (r *DBMembershipRepo) ListUserTeams(uid uint) ([]models.UserTeam, error) {
	var memberships []models.UserTeam
	err := db.DB.
		Where("u_id = ?", uid).
		Order("joined_at, t_id").
		Find(&memberships).Error
	return memberships, err
}

func (r *DBMembershipRepo) ListTeamMembers(tid uint) ([]models.TeamMemberView, error) {
	var members []models.TeamMemberView
	err := db.DB.Model(&models.UserTeam{}).
		Select("user_teams.u_id AS uid, users.username, user_teams.role, user_teams.joined_at, users.is_available").
		Joins("JOIN users ON users.u_id = user_teams.u_id").
		Where("user_teams.t_id = ?", tid).
		Order("user_teams.u_id").
		Scan(&members).Error
	return members, err
}

func (r *DBMembershipRepo) ListAvailableTeamMembersByRole(tid uint, role string) ([]models.TeamMemberView, error) {
	var members []models.TeamMemberView
	err := db.DB.Model(&models.UserTeam{}).
		Select("user_teams.u_id AS uid, users.username, user_teams.role, user_teams.joined_at, users.is_available").
		Joins("JOIN users ON users.u_id = user_teams.u_id").
		Where("user_teams.t_id = ? AND user_teams.role = ? AND users.is_available", tid, role).
		Order("user_teams.u_id").
		Scan(&members).Error
	return members, err
}

func (r *DBMembershipRepo) GetProjectUser(uid, pid uint) (models.ProjectUser, error) {
	var membership models.ProjectUser
	err := db.DB.First(&membership, "u_id = ? AND p_id = ?", uid, pid).Error
	return membership, err
}

func (r *DBMembershipRepo) CreateProjectUser(membership *models.ProjectUser) error {
	return db.DB.Create(membership).Error
}

func (r *DBMembershipRepo) DeleteProjectUser(uid, pid uint) (int64, error) {
	res := db.DB.Where("u_id = ? AND p_id = ?", uid, pid).Delete(&models.ProjectUser{})
	return res.RowsAffected, res.Error
}

// ListProjectMembershipsForTeam returns the user's project memberships
// confined to projects that designate the team as their worker team.
func (r *DBMembershipRepo) ListProjectMembershipsForTeam(uid, tid uint) ([]models.ProjectMembershipView, error) {
	var memberships []models.ProjectMembershipView
	err := db.DB.Model(&models.ProjectUser{}).
		Select("project_users.p_id AS pid, projects.project_name, project_users.role").
		Joins("JOIN projects ON projects.p_id = project_users.p_id").
		Where("project_users.u_id = ? AND projects.worker_team_id = ?", uid, tid).
		Order("project_users.p_id").
		Scan(&memberships).Error
	return memberships, err
}
