package models

import "time"

// TeamMemberView is the join projection of users and user_teams used by the
// team membership queries.
type TeamMemberView struct {
	UID         uint
	Username    string
	Role        string
	JoinedAt    time.Time
	IsAvailable bool
}

// ProjectMembershipView is the join projection of project_users and projects.
type ProjectMembershipView struct {
	PID         uint
	ProjectName string
	Role        string
}
