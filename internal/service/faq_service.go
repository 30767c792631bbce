package service

import (
	"errors"
	"strings"

	"github.com/listeningclub/internal/db"
	"gorm.io/gorm"
)

var (
	ErrFaqNotFound      = errors.New("faq not found")
	ErrFaqFieldsMissing = errors.New("faq question and answer are required")
)

// FaqService handles FAQ CRUD.
type FaqService struct {
	db *gorm.DB
}

// FaqInput represents fields accepted when creating or updating a FAQ.
type FaqInput struct {
	Question     string
	Answer       string
	DisplayOrder int
	IsActive     *bool
}

// NewFaqService creates a FaqService instance.
func NewFaqService(gdb *gorm.DB) *FaqService {
	return &FaqService{db: gdb}
}

// ListAll returns every FAQ in display order.
func (s *FaqService) ListAll() ([]db.Faq, error) {
	var items []db.Faq
	if err := s.db.Order("display_order asc").Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListActive returns active FAQs in display order for the public page.
func (s *FaqService) ListActive() ([]db.Faq, error) {
	var items []db.Faq
	if err := s.db.Where("is_active = ?", true).
		Order("display_order asc").Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new FAQ.
func (s *FaqService) Create(input FaqInput) (*db.Faq, error) {
	if strings.TrimSpace(input.Question) == "" || strings.TrimSpace(input.Answer) == "" {
		return nil, ErrFaqFieldsMissing
	}

	item := db.Faq{
		Question:     strings.TrimSpace(input.Question),
		Answer:       strings.TrimSpace(input.Answer),
		DisplayOrder: input.DisplayOrder,
		IsActive:     boolOrDefault(input.IsActive, true),
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing FAQ.
func (s *FaqService) Update(id uint, input FaqInput) (*db.Faq, error) {
	if strings.TrimSpace(input.Question) == "" || strings.TrimSpace(input.Answer) == "" {
		return nil, ErrFaqFieldsMissing
	}

	var item db.Faq
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFaqNotFound
		}
		return nil, err
	}

	item.Question = strings.TrimSpace(input.Question)
	item.Answer = strings.TrimSpace(input.Answer)
	item.DisplayOrder = input.DisplayOrder
	item.IsActive = boolOrDefault(input.IsActive, item.IsActive)

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a FAQ.
func (s *FaqService) Delete(id uint) error {
	var item db.Faq
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFaqNotFound
		}
		return err
	}
	return s.db.Delete(&item).Error
}
