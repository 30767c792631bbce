package service

import (
	"errors"
	"strings"

	"github.com/listeningclub/internal/db"
	"gorm.io/gorm"
)

var (
	ErrTestimonialNotFound      = errors.New("testimonial not found")
	ErrTestimonialFieldsMissing = errors.New("testimonial name, role and video are required")
)

// TestimonialService handles testimonial CRUD.
type TestimonialService struct {
	db *gorm.DB
}

// TestimonialInput represents fields accepted when creating or updating a
// testimonial.
type TestimonialInput struct {
	Name         string
	Role         string
	VideoURL     string
	ThumbnailURL string
}

// NewTestimonialService creates a TestimonialService instance.
func NewTestimonialService(gdb *gorm.DB) *TestimonialService {
	return &TestimonialService{db: gdb}
}

// ListAll returns every testimonial, newest first.
func (s *TestimonialService) ListAll() ([]db.Testimonial, error) {
	var items []db.Testimonial
	if err := s.db.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new testimonial.
func (s *TestimonialService) Create(input TestimonialInput) (*db.Testimonial, error) {
	if err := validateTestimonialInput(input); err != nil {
		return nil, err
	}

	item := db.Testimonial{
		Name:         strings.TrimSpace(input.Name),
		Role:         strings.TrimSpace(input.Role),
		VideoURL:     strings.TrimSpace(input.VideoURL),
		ThumbnailURL: strings.TrimSpace(input.ThumbnailURL),
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing testimonial.
func (s *TestimonialService) Update(id uint, input TestimonialInput) (*db.Testimonial, error) {
	if err := validateTestimonialInput(input); err != nil {
		return nil, err
	}

	var item db.Testimonial
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Role = strings.TrimSpace(input.Role)
	item.VideoURL = strings.TrimSpace(input.VideoURL)
	item.ThumbnailURL = strings.TrimSpace(input.ThumbnailURL)

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a testimonial.
func (s *TestimonialService) Delete(id uint) error {
	var item db.Testimonial
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTestimonialNotFound
		}
		return err
	}
	return s.db.Delete(&item).Error
}

func validateTestimonialInput(input TestimonialInput) error {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Role) == "" ||
		strings.TrimSpace(input.VideoURL) == "" {
		return ErrTestimonialFieldsMissing
	}
	return nil
}
