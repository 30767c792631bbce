package db

import "gorm.io/gorm"

// Setting is a free-form key/value pair for site-wide configuration
// (site name, social links, footer text).
type Setting struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex"`
	Value string `gorm:"type:text"`
}

// ContactInfo is the single row backing the contact page details.
type ContactInfo struct {
	gorm.Model
	Email        string `gorm:"size:255"`
	Phone        string `gorm:"size:50"`
	Address      string `gorm:"type:text"`
	InstagramURL string
	LinkedinURL  string
}
