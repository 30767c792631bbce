package db

import "gorm.io/gorm"

// Faq is a question/answer pair shown on the FAQ page.
type Faq struct {
	gorm.Model
	Question     string `gorm:"type:text"`
	Answer       string `gorm:"type:text"`
	DisplayOrder int    `gorm:"default:0"`
	IsActive     bool   `gorm:"default:true"`
}
