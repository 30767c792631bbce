package service

import (
	"errors"
	"strings"

	"github.com/listeningclub/internal/db"
	"gorm.io/gorm"
)

var (
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrQuoteTextMissing = errors.New("quote text is required")
)

// QuoteService handles home-page quote CRUD.
type QuoteService struct {
	db *gorm.DB
}

// QuoteInput represents fields accepted when creating or updating a quote.
type QuoteInput struct {
	Text     string
	Author   string
	IsActive *bool
}

// NewQuoteService creates a QuoteService instance.
func NewQuoteService(gdb *gorm.DB) *QuoteService {
	return &QuoteService{db: gdb}
}

// ListAll returns every quote, newest first.
func (s *QuoteService) ListAll() ([]db.Quote, error) {
	var items []db.Quote
	if err := s.db.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListActive returns active quotes for the home page rotation.
func (s *QuoteService) ListActive() ([]db.Quote, error) {
	var items []db.Quote
	if err := s.db.Where("is_active = ?", true).Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new quote.
func (s *QuoteService) Create(input QuoteInput) (*db.Quote, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrQuoteTextMissing
	}

	item := db.Quote{
		Text:     strings.TrimSpace(input.Text),
		Author:   strings.TrimSpace(input.Author),
		IsActive: boolOrDefault(input.IsActive, true),
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing quote.
func (s *QuoteService) Update(id uint, input QuoteInput) (*db.Quote, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrQuoteTextMissing
	}

	var item db.Quote
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}

	item.Text = strings.TrimSpace(input.Text)
	item.Author = strings.TrimSpace(input.Author)
	item.IsActive = boolOrDefault(input.IsActive, item.IsActive)

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a quote.
func (s *QuoteService) Delete(id uint) error {
	var item db.Quote
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuoteNotFound
		}
		return err
	}
	return s.db.Delete(&item).Error
}
