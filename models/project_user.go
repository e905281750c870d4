package models

type ProjectRole string

const (
	ProjectRoleAdmin  ProjectRole = "admin"
	ProjectRoleMember ProjectRole = "member"
	ProjectRoleWorker ProjectRole = "worker"
)

type ProjectUser struct {
	UID  uint   `gorm:"primaryKey;column:u_id" json:"u_id"`
	PID  uint   `gorm:"primaryKey;column:p_id" json:"p_id"`
	Role string `gorm:"type:project_role;default:'member';not null" json:"role"` // ENUM
}
