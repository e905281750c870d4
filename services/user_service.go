package services

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketdesk/dto"
	"github.com/linskybing/ticketdesk/middleware"
	"github.com/linskybing/ticketdesk/models"
	"github.com/linskybing/ticketdesk/repositories"
	"github.com/linskybing/ticketdesk/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) Register(input dto.CreateUserInput) error {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Username:    input.Username,
		Password:    string(hashed),
		FullName:    input.FullName,
		IsAvailable: true,
	}
	return s.Repos.User.CreateUser(&user)
}

func (s *UserService) Login(username, password string) (models.User, string, error) {
	user, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user.UID, user.Username, 24*time.Hour)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// SetAvailability is self-service: the actor toggles their own flag, which
// gates reassignment eligibility.
func (s *UserService) SetAvailability(c *gin.Context, actorID uint, isAvailable bool) (dto.AvailabilityOut, error) {
	user, err := s.Repos.User.GetUserByID(actorID)
	if err != nil {
		return dto.AvailabilityOut{}, ErrUserNotFound
	}

	if err := s.Repos.User.SetAvailability(actorID, isAvailable); err != nil {
		return dto.AvailabilityOut{}, err
	}

	utils.LogAuditWithConsole(c, "set_availability", "user",
		user.Username, user.IsAvailable, isAvailable, "", s.Repos.Audit)

	return dto.AvailabilityOut{UID: actorID, IsAvailable: isAvailable}, nil
}
