package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/linskybing/ticketdesk/dto"
	"github.com/linskybing/ticketdesk/models"
	"github.com/linskybing/ticketdesk/repositories"
	"github.com/linskybing/ticketdesk/repositories/mocks"
	"github.com/linskybing/ticketdesk/services"
	"github.com/linskybing/ticketdesk/types"
	"github.com/linskybing/ticketdesk/utils"
)

func setupTeamUserRouter(t *testing.T, callerID uint) (*gin.Engine, *mocks.UserRepo, *mocks.MembershipRepo) {
	gin.SetMode(gin.TestMode)

	userRepo := &mocks.UserRepo{}
	membershipRepo := &mocks.MembershipRepo{}
	repos := &repositories.Repos{
		User:       userRepo,
		Membership: membershipRepo,
		Audit:      &mocks.AuditRepo{},
	}

	origLog := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string,
		oldData, newData interface{}, msg string, repo repositories.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = origLog })

	h := &TeamUserHandler{
		Teams: services.NewTeamService(repos),
		Users: services.NewUserService(repos),
	}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("claims", &types.Claims{UserID: callerID})
	})
	r.PUT("/teams/:team_id/availability", h.SetAvailability)
	return r, userRepo, membershipRepo
}

// Availability is self-service: updating it through a team-scoped URL must
// succeed even when the caller does not belong to that team.
func TestSetAvailability_NonMemberOfPathTeam_OK(t *testing.T) {
	r, userRepo, membershipRepo := setupTeamUserRouter(t, 42)

	membershipRepo.On("GetUserTeam", uint(42), uint(5)).
		Return(models.UserTeam{}, gorm.ErrRecordNotFound).Maybe()
	userRepo.On("GetUserByID", uint(42)).
		Return(models.User{UID: 42, Username: "alice", IsAvailable: true}, nil)
	userRepo.On("SetAvailability", uint(42), false).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/teams/5/availability?is_available=false", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out dto.AvailabilityOut
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, uint(42), out.UID)
	assert.False(t, out.IsAvailable)
}

func TestSetAvailability_InvalidFlag_BadRequest(t *testing.T) {
	r, _, _ := setupTeamUserRouter(t, 42)

	req := httptest.NewRequest(http.MethodPut, "/teams/5/availability?is_available=maybe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
