package dto

import "time"

type CreateUserInput struct {
	Username string  `json:"username" form:"username" binding:"required" example:"johndoe"`
	Password string  `json:"password" form:"password" binding:"required" example:"password123"`
	FullName *string `json:"full_name" form:"full_name" example:"John Doe"`
}

// UserBrief is the minimal user projection used in lists and nested ticket
// responses.
type UserBrief struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type UserInTeamOut struct {
	User     UserBrief              `json:"user"`
	Role     string                 `json:"role"`
	JoinedAt time.Time              `json:"joined_at"`
	Projects []ProjectMembershipOut `json:"projects"`
}

type AvailabilityOut struct {
	UID         uint `json:"u_id"`
	IsAvailable bool `json:"is_available"`
}
