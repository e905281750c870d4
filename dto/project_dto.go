package dto

type CreateProjectDTO struct {
	ProjectName  string  `json:"project_name" form:"project_name" binding:"required"`
	Description  *string `json:"description" form:"description"`
	WorkerTeamID *uint   `json:"worker_team_id" form:"worker_team_id"`
}

type UpdateProjectDTO struct {
	ProjectName  *string `json:"project_name" form:"project_name"`
	Description  *string `json:"description" form:"description"`
	WorkerTeamID *uint   `json:"worker_team_id" form:"worker_team_id"`
}

type ProjectMembershipOut struct {
	ProjectID   uint   `json:"project_id"`
	ProjectName string `json:"project_name"`
	Role        string `json:"role"`
}
