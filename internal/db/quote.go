package db

import "gorm.io/gorm"

// Quote rotates on the home page.
type Quote struct {
	gorm.Model
	Text     string `gorm:"type:text"`
	Author   string `gorm:"size:100"`
	IsActive bool   `gorm:"default:true"`
}
