package db

import "gorm.io/gorm"

// BannerSlide is one slide of the home hero banner.
type BannerSlide struct {
	gorm.Model
	Title        string
	Subtitle     string
	Description  string `gorm:"type:text"`
	IconType     string `gorm:"size:50"`
	CTAText      string `gorm:"column:cta_text"`
	CTALink      string `gorm:"column:cta_link"`
	ImageURL     string
	DisplayOrder int  `gorm:"default:0"`
	IsActive     bool `gorm:"default:true"`
}
