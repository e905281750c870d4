package repositories

import (
	"github.com/linskybing/ticketdesk/db"
	"github.com/linskybing/ticketdesk/models"
)

type TeamRepo interface {
	GetAllTeams() ([]models.Team, error)
	GetTeamByID(id uint) (models.Team, error)
	CreateTeam(team *models.Team) error
	UpdateTeam(team *models.Team) error
	DeleteTeam(id uint) error
}

type DBTeamRepo struct{}

func (r *DBTeamRepo) GetAllTeams() ([]models.Team, error) {
	var teams []models.Team
	err := db.DB.Find(&teams).Error
	return teams, err
}

func (r *DBTeamRepo) GetTeamByID(id uint) (models.Team, error) {
	var team models.Team
	err := db.DB.First(&team, id).Error
	return team, err
}

func (r *DBTeamRepo) CreateTeam(team *models.Team) error {
	return db.DB.Create(team).Error
}

func (r *DBTeamRepo) UpdateTeam(team *models.Team) error {
	return db.DB.Save(team).Error
}

func (r *DBTeamRepo) DeleteTeam(id uint) error {
	return db.DB.Delete(&models.Team{}, id).Error
}
