package models

import "time"

type User struct {
	UID         uint      `gorm:"primaryKey;column:u_id" json:"u_id"`
	Username    string    `gorm:"size:50;not null;unique" json:"username"`
	Password    string    `gorm:"size:255;not null" json:"-"`
	FullName    *string   `gorm:"size:100" json:"full_name"`
	IsAvailable bool      `gorm:"default:true;not null" json:"is_available"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}
