package db

import "gorm.io/gorm"

// User is an administrator account for the dashboard.
type User struct {
	gorm.Model
	Username string `gorm:"size:100;uniqueIndex"`
	Password string // bcrypt hash
}
