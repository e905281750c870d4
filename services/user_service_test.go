package services

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/linskybing/ticketdesk/dto"
	"github.com/linskybing/ticketdesk/middleware"
	"github.com/linskybing/ticketdesk/models"
	"github.com/linskybing/ticketdesk/repositories"
	"github.com/linskybing/ticketdesk/repositories/mocks"
	"github.com/linskybing/ticketdesk/utils"
)

func setupUserMocks(t *testing.T) (*UserService, *mocks.UserRepo, *gin.Context) {
	userRepo := &mocks.UserRepo{}
	repos := &repositories.Repos{
		User:  userRepo,
		Audit: &mocks.AuditRepo{},
	}

	svc := NewUserService(repos)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	origLog := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string,
		oldData, newData interface{}, msg string, repo repositories.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = origLog })

	return svc, userRepo, ctx
}

func TestRegister_HashesPassword(t *testing.T) {
	svc, userRepo, _ := setupUserMocks(t)

	userRepo.On("GetUserByUsername", "alice").
		Return(models.User{}, gorm.ErrRecordNotFound)
	userRepo.On("CreateUser", mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(0).(*models.User)
			assert.NotEqual(t, "123456", user.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("123456")))
			assert.True(t, user.IsAvailable)
		}).Return(nil)

	err := svc.Register(dto.CreateUserInput{Username: "alice", Password: "123456"})

	assert.NoError(t, err)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, userRepo, _ := setupUserMocks(t)

	userRepo.On("GetUserByUsername", "alice").
		Return(models.User{UID: 1, Username: "alice"}, nil)

	err := svc.Register(dto.CreateUserInput{Username: "alice", Password: "123456"})

	assert.ErrorIs(t, err, ErrUsernameTaken)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, userRepo, _ := setupUserMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	userRepo.On("GetUserByUsername", "alice").
		Return(models.User{UID: 1, Username: "alice", Password: string(hashed)}, nil)

	_, _, err := svc.Login("alice", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Success(t *testing.T) {
	svc, userRepo, _ := setupUserMocks(t)

	origGenerate := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, username string, expireDuration time.Duration) (string, error) {
		return "test-token", nil
	}
	t.Cleanup(func() { middleware.GenerateToken = origGenerate })

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	userRepo.On("GetUserByUsername", "alice").
		Return(models.User{UID: 1, Username: "alice", Password: string(hashed)}, nil)

	user, token, err := svc.Login("alice", "123456")

	assert.NoError(t, err)
	assert.Equal(t, "test-token", token)
	assert.Equal(t, uint(1), user.UID)
}

func TestSetAvailability(t *testing.T) {
	svc, userRepo, ctx := setupUserMocks(t)

	userRepo.On("GetUserByID", uint(1)).
		Return(models.User{UID: 1, Username: "alice", IsAvailable: true}, nil)
	userRepo.On("SetAvailability", uint(1), false).Return(nil)

	out, err := svc.SetAvailability(ctx, 1, false)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), out.UID)
	assert.False(t, out.IsAvailable)
}
