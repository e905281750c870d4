package repositories

import (
	"github.com/linskybing/ticketdesk/db"
	"github.com/linskybing/ticketdesk/models"
)

type UserRepo interface {
	GetUserByID(id uint) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
	CreateUser(user *models.User) error
	SetAvailability(id uint, isAvailable bool) error
	FindProjectMemberByName(projectID uint, name string) (models.User, error)
}

type DBUserRepo struct{}

func (r *DBUserRepo) GetUserByID(id uint) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, id).Error
	return user, err
}

func (r *DBUserRepo) GetUserByUsername(username string) (models.User, error) {
	var user models.User
	err := db.DB.Where("username = ?", username).First(&user).Error
	return user, err
}

func (r *DBUserRepo) CreateUser(user *models.User) error {
	return db.DB.Create(user).Error
}

func (r *DBUserRepo) SetAvailability(id uint, isAvailable bool) error {
	return db.DB.Model(&models.User{}).Where("u_id = ?", id).
		Update("is_available", isAvailable).Error
}

// FindProjectMemberByName resolves a project member by case-insensitive
// substring match on username. Ties are broken by ascending user id so the
// result is deterministic.
func (r *DBUserRepo) FindProjectMemberByName(projectID uint, name string) (models.User, error) {
	var user models.User
	err := db.DB.
		Joins("JOIN project_users pu ON pu.u_id = users.u_id").
		Where("pu.p_id = ? AND users.username ILIKE ?", projectID, "%"+name+"%").
		Order("users.u_id").
		First(&user).Error
	return user, err
}
