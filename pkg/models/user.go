package models

import (
	"time"
)

// Staff roles accepted on registration.
const (
	RoleChef   = "chef"
	RoleWaiter = "waiter"
	RoleAdmin  = "admin"
	RoleUser   = "user"
)

func KnownRole(role string) bool {
	switch role {
	case RoleChef, RoleWaiter, RoleAdmin, RoleUser:
		return true
	}
	return false
}

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(100);not null" json:"-"`
	FullName     string    `gorm:"type:varchar(100);not null" json:"full_name"`
	Role         string    `gorm:"type:varchar(20);not null" json:"role"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
