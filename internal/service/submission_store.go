package service

import (
	"context"
	"time"

	"github.com/listeningclub/internal/db"
	"gorm.io/gorm"
)

// SubmissionStore is the slice of the datastore the contact pipeline needs.
// Keeping it an interface lets handler and service tests run against an
// in-memory fake instead of a live database.
type SubmissionStore interface {
	// CountRecent returns how many submissions share ipHash with a
	// created_at at or after since.
	CountRecent(ctx context.Context, ipHash string, since time.Time) (int64, error)

	// Insert persists exactly one submission row.
	Insert(ctx context.Context, submission *db.ContactSubmission) error
}

type gormSubmissionStore struct {
	db *gorm.DB
}

// NewSubmissionStore wraps a gorm connection as a SubmissionStore.
func NewSubmissionStore(gdb *gorm.DB) SubmissionStore {
	return &gormSubmissionStore{db: gdb}
}

func (s *gormSubmissionStore) CountRecent(ctx context.Context, ipHash string, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&db.ContactSubmission{}).
		Where("ip_hash = ? AND created_at >= ?", ipHash, since).
		Count(&count).Error
	return count, err
}

func (s *gormSubmissionStore) Insert(ctx context.Context, submission *db.ContactSubmission) error {
	return s.db.WithContext(ctx).Create(submission).Error
}
