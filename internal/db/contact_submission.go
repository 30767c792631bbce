package db

import "time"

// ContactSubmission is one accepted contact-form entry. Rows are created by
// the public ingestion endpoint and never updated afterwards; the admin
// surface may only read, export or delete them. IPHash is a short
// non-reversible hash of the submitter address used purely for rate-limit
// bucketing.
type ContactSubmission struct {
	ID         uint   `gorm:"primarykey"`
	Name       string `gorm:"size:100"`
	Phone      string `gorm:"size:20"`
	Age        int
	Profession string    `gorm:"size:100"`
	City       string    `gorm:"size:100"`
	IPHash     string    `gorm:"column:ip_hash;size:16;index:idx_submissions_ip_window,priority:1"`
	CreatedAt  time.Time `gorm:"index:idx_submissions_ip_window,priority:2"`
}
