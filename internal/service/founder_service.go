package service

import (
	"errors"
	"strings"

	"github.com/listeningclub/internal/db"
	"gorm.io/gorm"
)

var (
	ErrFounderNotFound      = errors.New("founder not found")
	ErrFounderFieldsMissing = errors.New("founder name, bio and image are required")
)

// FounderService handles founder CRUD.
type FounderService struct {
	db *gorm.DB
}

// FounderInput represents fields accepted when creating or updating a founder.
type FounderInput struct {
	Name         string
	Role         string
	Bio          string
	ImageURL     string
	DisplayOrder int
	IsActive     *bool
}

// NewFounderService creates a FounderService instance.
func NewFounderService(gdb *gorm.DB) *FounderService {
	return &FounderService{db: gdb}
}

// ListAll returns every founder in display order.
func (s *FounderService) ListAll() ([]db.Founder, error) {
	var items []db.Founder
	if err := s.db.Order("display_order asc").Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListActive returns active founders in display order for the public page.
func (s *FounderService) ListActive() ([]db.Founder, error) {
	var items []db.Founder
	if err := s.db.Where("is_active = ?", true).
		Order("display_order asc").Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new founder.
func (s *FounderService) Create(input FounderInput) (*db.Founder, error) {
	if err := validateFounderInput(input); err != nil {
		return nil, err
	}

	item := db.Founder{
		Name:         strings.TrimSpace(input.Name),
		Role:         strings.TrimSpace(input.Role),
		Bio:          strings.TrimSpace(input.Bio),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		DisplayOrder: input.DisplayOrder,
		IsActive:     boolOrDefault(input.IsActive, true),
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing founder.
func (s *FounderService) Update(id uint, input FounderInput) (*db.Founder, error) {
	if err := validateFounderInput(input); err != nil {
		return nil, err
	}

	var item db.Founder
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFounderNotFound
		}
		return nil, err
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Role = strings.TrimSpace(input.Role)
	item.Bio = strings.TrimSpace(input.Bio)
	item.ImageURL = strings.TrimSpace(input.ImageURL)
	item.DisplayOrder = input.DisplayOrder
	item.IsActive = boolOrDefault(input.IsActive, item.IsActive)

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a founder.
func (s *FounderService) Delete(id uint) error {
	var item db.Founder
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFounderNotFound
		}
		return err
	}
	return s.db.Delete(&item).Error
}

func validateFounderInput(input FounderInput) error {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Bio) == "" ||
		strings.TrimSpace(input.ImageURL) == "" {
		return ErrFounderFieldsMissing
	}
	return nil
}
