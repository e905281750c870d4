package services

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/linskybing/ticketdesk/dto"
	"github.com/linskybing/ticketdesk/models"
	"github.com/linskybing/ticketdesk/repositories"
	"github.com/linskybing/ticketdesk/repositories/mocks"
	"github.com/linskybing/ticketdesk/utils"
)

func setupTeamMocks(t *testing.T) (*TeamService, *mocks.TeamRepo, *mocks.UserRepo, *mocks.MembershipRepo, *gin.Context) {
	teamRepo := &mocks.TeamRepo{}
	userRepo := &mocks.UserRepo{}
	membershipRepo := &mocks.MembershipRepo{}

	repos := &repositories.Repos{
		Team:       teamRepo,
		User:       userRepo,
		Membership: membershipRepo,
		Audit:      &mocks.AuditRepo{},
	}

	svc := NewTeamService(repos)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	origLog := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string,
		oldData, newData interface{}, msg string, repo repositories.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = origLog })

	return svc, teamRepo, userRepo, membershipRepo, ctx
}

func TestCreateTeam_EnrollsCreatorAsAdmin(t *testing.T) {
	svc, teamRepo, _, membershipRepo, ctx := setupTeamMocks(t)

	teamRepo.On("CreateTeam", mock.AnythingOfType("*models.Team")).
		Run(func(args mock.Arguments) { args.Get(0).(*models.Team).TID = 5 }).
		Return(nil)
	membershipRepo.On("CreateUserTeam", mock.AnythingOfType("*models.UserTeam")).
		Run(func(args mock.Arguments) {
			membership := args.Get(0).(*models.UserTeam)
			assert.Equal(t, uint(10), membership.UID)
			assert.Equal(t, uint(5), membership.TID)
			assert.Equal(t, string(models.TeamRoleAdmin), membership.Role)
		}).Return(nil)

	team, err := svc.CreateTeam(ctx, 10, dto.TeamCreateDTO{TeamName: "infra"})

	assert.NoError(t, err)
	assert.Equal(t, uint(5), team.TID)
}

func TestAddMember_Success_DefaultsToMemberRole(t *testing.T) {
	svc, teamRepo, userRepo, membershipRepo, ctx := setupTeamMocks(t)

	teamRepo.On("GetTeamByID", uint(5)).Return(models.Team{TID: 5}, nil)
	membershipRepo.On("GetUserTeam", uint(10), uint(5)).
		Return(models.UserTeam{UID: 10, TID: 5, Role: "admin"}, nil)
	userRepo.On("GetUserByID", uint(42)).Return(models.User{UID: 42}, nil)
	membershipRepo.On("GetUserTeam", uint(42), uint(5)).
		Return(models.UserTeam{}, gorm.ErrRecordNotFound)
	membershipRepo.On("CreateUserTeam", mock.AnythingOfType("*models.UserTeam")).
		Run(func(args mock.Arguments) {
			membership := args.Get(0).(*models.UserTeam)
			assert.Equal(t, string(models.TeamRoleMember), membership.Role)
			assert.WithinDuration(t, time.Now(), membership.JoinedAt, 5*time.Second)
		}).Return(nil)

	out, err := svc.AddMember(ctx, 10, 5, 42, "")

	assert.NoError(t, err)
	assert.Equal(t, uint(42), out.UID)
}

func TestAddMember_Duplicate_BadRequest(t *testing.T) {
	svc, teamRepo, userRepo, membershipRepo, ctx := setupTeamMocks(t)

	teamRepo.On("GetTeamByID", uint(5)).Return(models.Team{TID: 5}, nil)
	membershipRepo.On("GetUserTeam", uint(10), uint(5)).
		Return(models.UserTeam{Role: "admin"}, nil)
	userRepo.On("GetUserByID", uint(42)).Return(models.User{UID: 42}, nil)
	membershipRepo.On("GetUserTeam", uint(42), uint(5)).
		Return(models.UserTeam{UID: 42, TID: 5}, nil)

	_, err := svc.AddMember(ctx, 10, 5, 42, "")

	assert.ErrorIs(t, err, ErrDuplicateMembership)
	assert.True(t, IsBadRequest(err))
	membershipRepo.AssertNotCalled(t, "CreateUserTeam", mock.Anything)
}

func TestAddMember_UnknownRole_BadRequest(t *testing.T) {
	svc, teamRepo, userRepo, membershipRepo, ctx := setupTeamMocks(t)

	teamRepo.On("GetTeamByID", uint(5)).Return(models.Team{TID: 5}, nil)
	membershipRepo.On("GetUserTeam", uint(10), uint(5)).
		Return(models.UserTeam{Role: "admin"}, nil)
	userRepo.On("GetUserByID", uint(42)).Return(models.User{UID: 42}, nil)
	membershipRepo.On("GetUserTeam", uint(42), uint(5)).
		Return(models.UserTeam{}, gorm.ErrRecordNotFound)

	_, err := svc.AddMember(ctx, 10, 5, 42, "owner")

	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.True(t, IsBadRequest(err))
	membershipRepo.AssertNotCalled(t, "CreateUserTeam", mock.Anything)
}

func TestAddMember_CallerNotAdmin_Forbidden(t *testing.T) {
	svc, teamRepo, _, membershipRepo, ctx := setupTeamMocks(t)

	teamRepo.On("GetTeamByID", uint(5)).Return(models.Team{TID: 5}, nil)
	membershipRepo.On("GetUserTeam", uint(10), uint(5)).
		Return(models.UserTeam{Role: "member"}, nil)

	_, err := svc.AddMember(ctx, 10, 5, 42, "")

	assert.ErrorIs(t, err, ErrNotTeamAdmin)
}

func TestRemoveMember_Success(t *testing.T) {
	svc, _, _, membershipRepo, ctx := setupTeamMocks(t)

	membershipRepo.On("GetUserTeam", uint(10), uint(5)).
		Return(models.UserTeam{Role: "admin"}, nil)
	membershipRepo.On("DeleteUserTeam", uint(42), uint(5)).Return(int64(1), nil)

	err := svc.RemoveMember(ctx, 10, 5, 42)

	assert.NoError(t, err)
}

func TestRemoveMember_Absent_NotFound(t *testing.T) {
	svc, _, _, membershipRepo, ctx := setupTeamMocks(t)

	membershipRepo.On("GetUserTeam", uint(10), uint(5)).
		Return(models.UserTeam{Role: "admin"}, nil)
	membershipRepo.On("DeleteUserTeam", uint(42), uint(5)).Return(int64(0), nil)

	err := svc.RemoveMember(ctx, 10, 5, 42)

	assert.ErrorIs(t, err, ErrMembershipNotFound)
	assert.True(t, IsNotFound(err))
}

func TestGetUserInTeam(t *testing.T) {
	svc, _, userRepo, membershipRepo, _ := setupTeamMocks(t)

	joined := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	membershipRepo.On("GetUserTeam", uint(42), uint(5)).
		Return(models.UserTeam{UID: 42, TID: 5, Role: "member", JoinedAt: joined}, nil)
	userRepo.On("GetUserByID", uint(42)).
		Return(models.User{UID: 42, Username: "alice"}, nil)
	membershipRepo.On("ListProjectMembershipsForTeam", uint(42), uint(5)).
		Return([]models.ProjectMembershipView{
			{PID: 100, ProjectName: "cooling", Role: "worker"},
		}, nil)

	out, err := svc.GetUserInTeam(5, 42)

	assert.NoError(t, err)
	assert.Equal(t, "alice", out.User.Name)
	assert.Equal(t, "member", out.Role)
	assert.Equal(t, joined, out.JoinedAt)
	assert.Len(t, out.Projects, 1)
	assert.Equal(t, uint(100), out.Projects[0].ProjectID)
}

func TestListAvailableAdmins_UsesRoleFilter(t *testing.T) {
	svc, _, _, membershipRepo, _ := setupTeamMocks(t)

	membershipRepo.On("ListAvailableTeamMembersByRole", uint(5), "admin").
		Return([]models.TeamMemberView{{UID: 1, Username: "root"}}, nil)

	briefs, err := svc.ListAvailableAdmins(5)

	assert.NoError(t, err)
	assert.Equal(t, []dto.UserBrief{{ID: 1, Name: "root"}}, briefs)
}

func TestRequireTeamMember(t *testing.T) {
	svc, _, _, membershipRepo, _ := setupTeamMocks(t)

	membershipRepo.On("GetUserTeam", uint(10), uint(5)).
		Return(models.UserTeam{}, gorm.ErrRecordNotFound)

	err := svc.RequireTeamMember(10, 5)

	assert.ErrorIs(t, err, ErrNotTeamMember)
}
