package models

import (
	"time"
)

type User struct {
	UserID   uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Name     string    `gorm:"column:name;size:100;not null" json:"name"`
	Email    string    `gorm:"column:email;size:100;not null;unique" json:"email"`
	Password string    `gorm:"column:password;size:255;not null" json:"-"` // Don't expose password hash in JSON
	Phone    string    `gorm:"column:phone;size:20" json:"phone"`
	Address  string    `gorm:"column:address;size:255" json:"address"`
	Role     string    `gorm:"column:role;size:20;default:user" json:"role"` // user, volunteer, admin
	JoinedOn time.Time `gorm:"column:joined_on;autoCreateTime" json:"joined_on"`
	Status   string    `gorm:"column:status;size:20;default:active" json:"status"` // active, inactive, banned
}

func (User) TableName() string {
	return "users"
}
