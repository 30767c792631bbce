package db

import "gorm.io/gorm"

// Event is a community gathering announced on the events page.
// Date and Time stay free-form text because organisers publish entries like
// "First Sunday of the month" alongside concrete dates.
type Event struct {
	gorm.Model
	Name          string
	Description   string `gorm:"type:text"`
	Date          string `gorm:"size:100"`
	Time          string `gorm:"size:100"`
	Location      string
	MapLink       string
	SlotsStatus   string `gorm:"default:available"` // available, filling_fast, full
	IsBookingOpen bool   `gorm:"default:true"`
}
