package models

import "gorm.io/gorm"

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an account that can authenticate against the API.
type User struct {
	gorm.Model
	Name     string `gorm:"size:255;not null"              json:"name"`
	Email    string `gorm:"uniqueIndex;size:255;not null"  json:"email"`
	Password string `gorm:"size:255;not null"              json:"-"` // bcrypt hash, never serialised
	Role     string `gorm:"size:50;default:user"           json:"role"`
}
