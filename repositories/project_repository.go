package repositories

import (
	"github.com/linskybing/ticketdesk/db"
	"github.com/linskybing/ticketdesk/models"
)

type ProjectRepo interface {
	GetAllProjects() ([]models.Project, error)
	GetProjectByID(id uint) (models.Project, error)
	CreateProject(project *models.Project) error
	UpdateProject(project *models.Project) error
	DeleteProject(id uint) error
}

type DBProjectRepo struct{}

func (r *DBProjectRepo) GetAllProjects() ([]models.Project, error) {
	var projects []models.Project
	err := db.DB.Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) GetProjectByID(id uint) (models.Project, error) {
	var project models.Project
	err := db.DB.First(&project, id).Error
	return project, err
}

func (r *DBProjectRepo) CreateProject(project *models.Project) error {
	return db.DB.Create(project).Error
}

func (r *DBProjectRepo) UpdateProject(project *models.Project) error {
	return db.DB.Save(project).Error
}

func (r *DBProjectRepo) DeleteProject(id uint) error {
	return db.DB.Delete(&models.Project{}, id).Error
}
