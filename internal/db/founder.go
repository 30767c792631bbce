package db

import "gorm.io/gorm"

// Founder appears on the founders page.
type Founder struct {
	gorm.Model
	Name         string `gorm:"size:100"`
	Role         string `gorm:"size:100"`
	Bio          string `gorm:"type:text"`
	ImageURL     string
	DisplayOrder int  `gorm:"default:0"`
	IsActive     bool `gorm:"default:true"`
}
