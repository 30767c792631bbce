package db

import "gorm.io/gorm"

// Post is an announcement or notice authored in markdown.
type Post struct {
	gorm.Model
	Title    string
	Content  string `gorm:"type:text"`
	Type     string `gorm:"size:50;default:announcement"`
	IsActive bool   `gorm:"default:true"`
}
