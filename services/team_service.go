package services

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketdesk/dto"
	"github.com/linskybing/ticketdesk/models"
	"github.com/linskybing/ticketdesk/repositories"
	"github.com/linskybing/ticketdesk/utils"
)

type TeamService struct {
	Repos *repositories.Repos
}

func NewTeamService(repos *repositories.Repos) *TeamService {
	return &TeamService{Repos: repos}
}

// RequireTeamMember gates the read-only team projections.
func (s *TeamService) RequireTeamMember(uid, tid uint) error {
	if _, err := s.Repos.Membership.GetUserTeam(uid, tid); err != nil {
		return ErrNotTeamMember
	}
	return nil
}

func (s *TeamService) requireTeamAdmin(uid, tid uint) error {
	membership, err := s.Repos.Membership.GetUserTeam(uid, tid)
	if err != nil || membership.Role != string(models.TeamRoleAdmin) {
		return ErrNotTeamAdmin
	}
	return nil
}

func (s *TeamService) ListTeams() ([]models.Team, error) {
	return s.Repos.Team.GetAllTeams()
}

func (s *TeamService) GetTeam(id uint) (models.Team, error) {
	team, err := s.Repos.Team.GetTeamByID(id)
	if err != nil {
		return models.Team{}, ErrTeamNotFound
	}
	return team, nil
}

// CreateTeam also enrolls the creator as team admin so the team is
// manageable from the start.
func (s *TeamService) CreateTeam(c *gin.Context, actorID uint, input dto.TeamCreateDTO) (models.Team, error) {
	team := models.Team{TeamName: input.TeamName}
	if input.Description != nil {
		team.Description = *input.Description
	}
	if err := s.Repos.Team.CreateTeam(&team); err != nil {
		return models.Team{}, err
	}

	membership := models.UserTeam{
		UID:      actorID,
		TID:      team.TID,
		Role:     string(models.TeamRoleAdmin),
		JoinedAt: time.Now(),
	}
	if err := s.Repos.Membership.CreateUserTeam(&membership); err != nil {
		return models.Team{}, err
	}

	utils.LogAuditWithConsole(c, "create", "team",
		fmt.Sprintf("%d", team.TID), nil, team, "", s.Repos.Audit)
	return team, nil
}

func (s *TeamService) UpdateTeam(c *gin.Context, actorID, id uint, input dto.TeamUpdateDTO) (models.Team, error) {
	team, err := s.Repos.Team.GetTeamByID(id)
	if err != nil {
		return models.Team{}, ErrTeamNotFound
	}
	if err := s.requireTeamAdmin(actorID, id); err != nil {
		return models.Team{}, err
	}

	oldTeam := team
	if input.TeamName != nil {
		team.TeamName = *input.TeamName
	}
	if input.Description != nil {
		team.Description = *input.Description
	}
	if err := s.Repos.Team.UpdateTeam(&team); err != nil {
		return models.Team{}, err
	}

	utils.LogAuditWithConsole(c, "update", "team",
		fmt.Sprintf("%d", team.TID), oldTeam, team, "", s.Repos.Audit)
	return team, nil
}

func (s *TeamService) DeleteTeam(c *gin.Context, actorID, id uint) error {
	team, err := s.Repos.Team.GetTeamByID(id)
	if err != nil {
		return ErrTeamNotFound
	}
	if err := s.requireTeamAdmin(actorID, id); err != nil {
		return err
	}

	if err := s.Repos.Team.DeleteTeam(id); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "team",
		fmt.Sprintf("%d", team.TID), team, nil, "", s.Repos.Audit)
	return nil
}

func (s *TeamService) ListMemberBriefs(tid uint) ([]dto.UserBrief, error) {
	members, err := s.Repos.Membership.ListTeamMembers(tid)
	if err != nil {
		return nil, err
	}
	return memberBriefs(members), nil
}

func (s *TeamService) ListAvailableAdmins(tid uint) ([]dto.UserBrief, error) {
	members, err := s.Repos.Membership.ListAvailableTeamMembersByRole(tid, string(models.TeamRoleAdmin))
	if err != nil {
		return nil, err
	}
	return memberBriefs(members), nil
}

func (s *TeamService) ListAvailableMembers(tid uint) ([]dto.UserBrief, error) {
	members, err := s.Repos.Membership.ListAvailableTeamMembersByRole(tid, string(models.TeamRoleMember))
	if err != nil {
		return nil, err
	}
	return memberBriefs(members), nil
}

// GetUserInTeam returns the user's team role and join date plus their
// project memberships confined to projects associated with the team.
func (s *TeamService) GetUserInTeam(tid, uid uint) (dto.UserInTeamOut, error) {
	membership, err := s.Repos.Membership.GetUserTeam(uid, tid)
	if err != nil {
		return dto.UserInTeamOut{}, ErrMembershipNotFound
	}
	user, err := s.Repos.User.GetUserByID(uid)
	if err != nil {
		return dto.UserInTeamOut{}, ErrUserNotFound
	}

	projectLinks, err := s.Repos.Membership.ListProjectMembershipsForTeam(uid, tid)
	if err != nil {
		return dto.UserInTeamOut{}, err
	}

	projects := make([]dto.ProjectMembershipOut, 0, len(projectLinks))
	for _, link := range projectLinks {
		projects = append(projects, dto.ProjectMembershipOut{
			ProjectID:   link.PID,
			ProjectName: link.ProjectName,
			Role:        link.Role,
		})
	}

	return dto.UserInTeamOut{
		User:     dto.UserBrief{ID: user.UID, Name: user.Username},
		Role:     membership.Role,
		JoinedAt: membership.JoinedAt,
		Projects: projects,
	}, nil
}

func (s *TeamService) AddMember(c *gin.Context, actorID, tid, targetID uint, role string) (dto.TeamMembershipOut, error) {
	if _, err := s.Repos.Team.GetTeamByID(tid); err != nil {
		return dto.TeamMembershipOut{}, ErrTeamNotFound
	}
	if err := s.requireTeamAdmin(actorID, tid); err != nil {
		return dto.TeamMembershipOut{}, err
	}
	if _, err := s.Repos.User.GetUserByID(targetID); err != nil {
		return dto.TeamMembershipOut{}, ErrUserNotFound
	}
	if _, err := s.Repos.Membership.GetUserTeam(targetID, tid); err == nil {
		return dto.TeamMembershipOut{}, ErrDuplicateMembership
	}

	if role == "" {
		role = string(models.TeamRoleMember)
	}
	switch models.TeamRole(role) {
	case models.TeamRoleAdmin, models.TeamRoleMember:
	default:
		return dto.TeamMembershipOut{}, ErrInvalidRole
	}
	membership := models.UserTeam{
		UID:      targetID,
		TID:      tid,
		Role:     role,
		JoinedAt: time.Now(),
	}
	if err := s.Repos.Membership.CreateUserTeam(&membership); err != nil {
		return dto.TeamMembershipOut{}, err
	}

	utils.LogAuditWithConsole(c, "add_member", "team",
		fmt.Sprintf("t_id=%d,u_id=%d", tid, targetID), nil, membership, "", s.Repos.Audit)

	return dto.TeamMembershipOut{
		UID:      membership.UID,
		TID:      membership.TID,
		Role:     membership.Role,
		JoinedAt: membership.JoinedAt,
	}, nil
}

func (s *TeamService) RemoveMember(c *gin.Context, actorID, tid, targetID uint) error {
	if err := s.requireTeamAdmin(actorID, tid); err != nil {
		return err
	}

	deleted, err := s.Repos.Membership.DeleteUserTeam(targetID, tid)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrMembershipNotFound
	}

	utils.LogAuditWithConsole(c, "remove_member", "team",
		fmt.Sprintf("t_id=%d,u_id=%d", tid, targetID), nil, nil, "", s.Repos.Audit)
	return nil
}

func memberBriefs(members []models.TeamMemberView) []dto.UserBrief {
	briefs := make([]dto.UserBrief, 0, len(members))
	for _, m := range members {
		briefs = append(briefs, dto.UserBrief{ID: m.UID, Name: m.Username})
	}
	return briefs
}
