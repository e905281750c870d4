package services

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketdesk/dto"
	"github.com/linskybing/ticketdesk/models"
	"github.com/linskybing/ticketdesk/repositories"
	"github.com/linskybing/ticketdesk/utils"
)

type ProjectService struct {
	Repos *repositories.Repos
}

func NewProjectService(repos *repositories.Repos) *ProjectService {
	return &ProjectService{Repos: repos}
}

func (s *ProjectService) requireProjectAdmin(uid, pid uint) error {
	link, err := s.Repos.Membership.GetProjectUser(uid, pid)
	if err != nil || link.Role != string(models.ProjectRoleAdmin) {
		return ErrNotProjectAdmin
	}
	return nil
}

func (s *ProjectService) ListProjects() ([]models.Project, error) {
	return s.Repos.Project.GetAllProjects()
}

func (s *ProjectService) GetProject(id uint) (models.Project, error) {
	project, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return models.Project{}, ErrProjectNotFound
	}
	return project, nil
}

// CreateProject validates the optional worker team designation and enrolls
// the creator as project admin.
func (s *ProjectService) CreateProject(c *gin.Context, actorID uint, input dto.CreateProjectDTO) (models.Project, error) {
	if input.WorkerTeamID != nil {
		if _, err := s.Repos.Team.GetTeamByID(*input.WorkerTeamID); err != nil {
			return models.Project{}, ErrTeamNotFound
		}
	}

	project := models.Project{
		ProjectName:  input.ProjectName,
		WorkerTeamID: input.WorkerTeamID,
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if err := s.Repos.Project.CreateProject(&project); err != nil {
		return models.Project{}, err
	}

	membership := models.ProjectUser{
		UID:  actorID,
		PID:  project.PID,
		Role: string(models.ProjectRoleAdmin),
	}
	if err := s.Repos.Membership.CreateProjectUser(&membership); err != nil {
		return models.Project{}, err
	}

	utils.LogAuditWithConsole(c, "create", "project",
		fmt.Sprintf("%d", project.PID), nil, project, "", s.Repos.Audit)
	return project, nil
}

func (s *ProjectService) UpdateProject(c *gin.Context, actorID, id uint, input dto.UpdateProjectDTO) (models.Project, error) {
	project, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return models.Project{}, ErrProjectNotFound
	}
	if err := s.requireProjectAdmin(actorID, id); err != nil {
		return models.Project{}, err
	}

	oldProject := project
	if input.ProjectName != nil {
		project.ProjectName = *input.ProjectName
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.WorkerTeamID != nil {
		if _, err := s.Repos.Team.GetTeamByID(*input.WorkerTeamID); err != nil {
			return models.Project{}, ErrTeamNotFound
		}
		project.WorkerTeamID = input.WorkerTeamID
	}
	if err := s.Repos.Project.UpdateProject(&project); err != nil {
		return models.Project{}, err
	}

	utils.LogAuditWithConsole(c, "update", "project",
		fmt.Sprintf("%d", project.PID), oldProject, project, "", s.Repos.Audit)
	return project, nil
}

func (s *ProjectService) DeleteProject(c *gin.Context, actorID, id uint) error {
	project, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return ErrProjectNotFound
	}
	if err := s.requireProjectAdmin(actorID, id); err != nil {
		return err
	}

	if err := s.Repos.Project.DeleteProject(id); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "project",
		fmt.Sprintf("%d", project.PID), project, nil, "", s.Repos.Audit)
	return nil
}

func (s *ProjectService) AddMember(c *gin.Context, actorID, pid, targetID uint, role string) (models.ProjectUser, error) {
	if _, err := s.Repos.Project.GetProjectByID(pid); err != nil {
		return models.ProjectUser{}, ErrProjectNotFound
	}
	if err := s.requireProjectAdmin(actorID, pid); err != nil {
		return models.ProjectUser{}, err
	}
	if _, err := s.Repos.User.GetUserByID(targetID); err != nil {
		return models.ProjectUser{}, ErrUserNotFound
	}
	if _, err := s.Repos.Membership.GetProjectUser(targetID, pid); err == nil {
		return models.ProjectUser{}, ErrDuplicateMembership
	}

	if role == "" {
		role = string(models.ProjectRoleMember)
	}
	switch models.ProjectRole(role) {
	case models.ProjectRoleAdmin, models.ProjectRoleMember, models.ProjectRoleWorker:
	default:
		return models.ProjectUser{}, ErrInvalidRole
	}
	membership := models.ProjectUser{UID: targetID, PID: pid, Role: role}
	if err := s.Repos.Membership.CreateProjectUser(&membership); err != nil {
		return models.ProjectUser{}, err
	}

	utils.LogAuditWithConsole(c, "add_member", "project",
		fmt.Sprintf("p_id=%d,u_id=%d", pid, targetID), nil, membership, "", s.Repos.Audit)
	return membership, nil
}

func (s *ProjectService) RemoveMember(c *gin.Context, actorID, pid, targetID uint) error {
	if err := s.requireProjectAdmin(actorID, pid); err != nil {
		return err
	}

	deleted, err := s.Repos.Membership.DeleteProjectUser(targetID, pid)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrMembershipNotFound
	}

	utils.LogAuditWithConsole(c, "remove_member", "project",
		fmt.Sprintf("p_id=%d,u_id=%d", pid, targetID), nil, nil, "", s.Repos.Audit)
	return nil
}
