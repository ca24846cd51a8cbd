package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserRole string

const (
	RolePublisher UserRole = "publisher"
	RoleUser      UserRole = "user"
)

type User struct {
	ID        uint              `json:"id" gorm:"primarykey"`
	Username  string            `json:"username" gorm:"not null"`
	Email     string            `json:"email" gorm:"uniqueIndex;not null"`
	Password  string            `json:"-" gorm:"not null"`
	Role      UserRole          `json:"role" gorm:"default:'user'"`
	Profile   datatypes.JSONMap `json:"profile"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt gorm.DeletedAt    `json:"-" gorm:"index"`
}
