package db

import "gorm.io/gorm"

// ServiceItem is one offering on the services page. WhatsappMessage is the
// prefilled text used by the page's enquiry button.
type ServiceItem struct {
	gorm.Model
	Name            string `gorm:"size:100"`
	Description     string `gorm:"type:text"`
	BannerImageURL  string
	WhatsappMessage string `gorm:"type:text"`
	DisplayOrder    int    `gorm:"default:0"`
	IsActive        bool   `gorm:"default:true"`
}
