package service

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/listeningclub/internal/db"
	"gorm.io/gorm"
)

var ErrSubmissionNotFound = errors.New("submission not found")

// SubmissionAdminService exposes the read/export/delete surface over contact
// submissions. Rows are never updated here: the ingestion endpoint is the
// only writer.
type SubmissionAdminService struct {
	db *gorm.DB
}

// SubmissionListResult aggregates paginated submissions.
type SubmissionListResult struct {
	Items      []db.ContactSubmission
	Total      int64
	TotalPages int
	Page       int
	PerPage    int
}

// NewSubmissionAdminService creates a SubmissionAdminService instance.
func NewSubmissionAdminService(gdb *gorm.DB) *SubmissionAdminService {
	return &SubmissionAdminService{db: gdb}
}

// List returns submissions newest first with pagination.
func (s *SubmissionAdminService) List(page, perPage int) (SubmissionListResult, error) {
	result := SubmissionListResult{
		Page:    normalizePage(page),
		PerPage: normalizePerPage(perPage, 25),
	}

	query := s.db.Model(&db.ContactSubmission{})
	if err := query.Count(&result.Total).Error; err != nil {
		return result, err
	}

	result.TotalPages = calculateTotalPages(result.Total, result.PerPage)
	offset := (result.Page - 1) * result.PerPage

	if err := query.Order("created_at desc").
		Limit(result.PerPage).
		Offset(offset).
		Find(&result.Items).Error; err != nil {
		return result, err
	}

	return result, nil
}

// ExportCSV streams every submission as CSV, newest first.
func (s *SubmissionAdminService) ExportCSV(w io.Writer) error {
	var items []db.ContactSubmission
	if err := s.db.Order("created_at desc").Find(&items).Error; err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"id", "name", "phone", "age", "profession", "city", "created_at"}); err != nil {
		return err
	}
	for _, item := range items {
		record := []string{
			strconv.FormatUint(uint64(item.ID), 10),
			item.Name,
			item.Phone,
			strconv.Itoa(item.Age),
			item.Profession,
			item.City,
			item.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Delete removes one submission.
func (s *SubmissionAdminService) Delete(id uint) error {
	var item db.ContactSubmission
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubmissionNotFound
		}
		return err
	}
	return s.db.Delete(&item).Error
}
