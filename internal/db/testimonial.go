package db

import "gorm.io/gorm"

// Testimonial is a member video testimonial.
type Testimonial struct {
	gorm.Model
	Name         string `gorm:"size:100"`
	Role         string `gorm:"size:100"`
	VideoURL     string
	ThumbnailURL string
}
