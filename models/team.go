package models

import "time"

type Team struct {
	TID         uint      `gorm:"primaryKey;column:t_id" json:"t_id"`
	TeamName    string    `gorm:"size:100;not null" json:"team_name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
