package models

import "time"

type Project struct {
	PID          uint      `gorm:"primaryKey;column:p_id" json:"p_id"`
	ProjectName  string    `gorm:"size:100;not null" json:"project_name"`
	Description  string    `gorm:"type:text" json:"description"`
	WorkerTeamID *uint     `gorm:"column:worker_team_id" json:"worker_team_id"` // foreign key: teams.t_id
	CreatedAt    time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt    time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
