package models

import "time"

type TeamRole string

const (
	TeamRoleAdmin  TeamRole = "admin"
	TeamRoleMember TeamRole = "member"
)

type UserTeam struct {
	UID      uint      `gorm:"primaryKey;column:u_id" json:"u_id"`
	TID      uint      `gorm:"primaryKey;column:t_id" json:"t_id"`
	Role     string    `gorm:"type:team_role;default:'member';not null" json:"role"` // ENUM
	JoinedAt time.Time `gorm:"column:joined_at" json:"joined_at"`
}
