package service

import (
	"errors"
	"strings"

	"github.com/listeningclub/internal/db"
	"gorm.io/gorm"
)

var (
	ErrVolunteerNotFound      = errors.New("volunteer not found")
	ErrVolunteerFieldsMissing = errors.New("volunteer name, role, quote and image are required")
)

// VolunteerService handles volunteer CRUD.
type VolunteerService struct {
	db *gorm.DB
}

// VolunteerInput represents fields accepted when creating or updating a
// volunteer.
type VolunteerInput struct {
	Name         string
	Role         string
	Quote        string
	ImageURL     string
	DisplayOrder int
	IsActive     *bool
}

// NewVolunteerService creates a VolunteerService instance.
func NewVolunteerService(gdb *gorm.DB) *VolunteerService {
	return &VolunteerService{db: gdb}
}

// ListAll returns every volunteer in display order.
func (s *VolunteerService) ListAll() ([]db.Volunteer, error) {
	var items []db.Volunteer
	if err := s.db.Order("display_order asc").Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListActive returns active volunteers in display order for the public page.
func (s *VolunteerService) ListActive() ([]db.Volunteer, error) {
	var items []db.Volunteer
	if err := s.db.Where("is_active = ?", true).
		Order("display_order asc").Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new volunteer.
func (s *VolunteerService) Create(input VolunteerInput) (*db.Volunteer, error) {
	if err := validateVolunteerInput(input); err != nil {
		return nil, err
	}

	item := db.Volunteer{
		Name:         strings.TrimSpace(input.Name),
		Role:         strings.TrimSpace(input.Role),
		Quote:        strings.TrimSpace(input.Quote),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		DisplayOrder: input.DisplayOrder,
		IsActive:     boolOrDefault(input.IsActive, true),
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing volunteer.
func (s *VolunteerService) Update(id uint, input VolunteerInput) (*db.Volunteer, error) {
	if err := validateVolunteerInput(input); err != nil {
		return nil, err
	}

	var item db.Volunteer
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVolunteerNotFound
		}
		return nil, err
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Role = strings.TrimSpace(input.Role)
	item.Quote = strings.TrimSpace(input.Quote)
	item.ImageURL = strings.TrimSpace(input.ImageURL)
	item.DisplayOrder = input.DisplayOrder
	item.IsActive = boolOrDefault(input.IsActive, item.IsActive)

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a volunteer.
func (s *VolunteerService) Delete(id uint) error {
	var item db.Volunteer
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVolunteerNotFound
		}
		return err
	}
	return s.db.Delete(&item).Error
}

func validateVolunteerInput(input VolunteerInput) error {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Role) == "" ||
		strings.TrimSpace(input.Quote) == "" ||
		strings.TrimSpace(input.ImageURL) == "" {
		return ErrVolunteerFieldsMissing
	}
	return nil
}
