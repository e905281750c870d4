package dto

import "time"

type TeamCreateDTO struct {
	TeamName    string  `json:"team_name" form:"team_name" binding:"required"`
	Description *string `json:"description" form:"description"`
}

type TeamUpdateDTO struct {
	TeamName    *string `json:"team_name" form:"team_name"`
	Description *string `json:"description" form:"description"`
}

type TeamBrief struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type TeamMembershipOut struct {
	UID      uint      `json:"u_id"`
	TID      uint      `json:"t_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}
