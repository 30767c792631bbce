package db

import "gorm.io/gorm"

// Volunteer appears in the volunteer wall alongside founders.
type Volunteer struct {
	gorm.Model
	Name         string `gorm:"size:100"`
	Role         string `gorm:"size:100"`
	Quote        string `gorm:"type:text"`
	ImageURL     string
	DisplayOrder int  `gorm:"default:0"`
	IsActive     bool `gorm:"default:true"`
}
