package models

import "time"

// User roles. Admin-marked operations (field writes, preference writes)
// require RoleAdmin.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// UserModel represents a staff account.
type UserModel struct {
	Base
	Username      string     `json:"username" gorm:"uniqueIndex;not null"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Password      string     `json:"-"        gorm:"not null"`
	Role          string     `json:"role"     gorm:"default:'user'"`
	LastLoginTime *time.Time `json:"last_login_time"`
	LastLoginIP   string     `json:"last_login_ip"`
}

func (UserModel) TableName() string { return "users" }
