package models

import (
	"time"
)

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleReporter UserRole = "reporter"
	RoleUser     UserRole = "user"
)

type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusActive   UserStatus = "active"
	UserStatusRejected UserStatus = "rejected"
)

type User struct {
	ID        uint       `json:"id" gorm:"primarykey"`
	Name      string     `json:"name" gorm:"not null"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null"`
	Phone     string     `json:"phone,omitempty"`
	Password  string     `json:"-" gorm:"not null"`
	Role      UserRole   `json:"role" gorm:"default:'reporter'"`
	Status    UserStatus `json:"status" gorm:"default:'pending'"`
	IsBlocked bool       `json:"is_blocked" gorm:"default:false"`
	CanPost   bool       `json:"can_post" gorm:"default:false"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleReporter, RoleUser:
		return true
	}
	return false
}
