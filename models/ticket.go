package models

import "time"

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusClosed     TicketStatus = "closed"
)

type TicketType string

const (
	TicketTypeWorker  TicketType = "worker"
	TicketTypeGeneral TicketType = "general"
)

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

type Ticket struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"size:200;not null" json:"title"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	Type         string     `gorm:"type:ticket_type;default:'worker';not null" json:"type"`          // ENUM
	Priority     string     `gorm:"type:ticket_priority;default:'medium';not null" json:"priority"`  // ENUM
	Status       string     `gorm:"type:ticket_status;default:'open';not null" json:"status"`        // ENUM
	CreatedBy    uint       `gorm:"not null" json:"created_by"`
	AssignedTo   *uint      `json:"assigned_to"`
	WorkerTeamID *uint      `json:"worker_team_id"`
	TeamID       uint       `gorm:"not null" json:"team_id"`
	ProjectID    uint       `gorm:"not null" json:"project_id"`
	Feedback     *string    `gorm:"type:text" json:"feedback"`
	Confirmed    bool       `gorm:"default:false;not null" json:"confirmed"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	ClosedAt     *time.Time `json:"closed_at"`

	Creator    User  `gorm:"foreignKey:CreatedBy;references:UID" json:"-"`
	Assignee   *User `gorm:"foreignKey:AssignedTo;references:UID" json:"-"`
	WorkerTeam *Team `gorm:"foreignKey:WorkerTeamID;references:TID" json:"-"`
}
