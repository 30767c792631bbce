package db

import "gorm.io/gorm"

// GalleryImage is one photo in the memory-lane gallery.
type GalleryImage struct {
	gorm.Model
	Caption      string
	ImageURL     string
	ImageWidth   int
	ImageHeight  int
	DisplayOrder int  `gorm:"default:0"`
	IsActive     bool `gorm:"default:true"`
}
