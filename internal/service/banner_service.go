package service

import (
	"errors"
	"strings"

	"github.com/listeningclub/internal/db"
	"gorm.io/gorm"
)

var (
	ErrBannerNotFound      = errors.New("banner slide not found")
	ErrBannerFieldsMissing = errors.New("banner title, subtitle and description are required")
)

// BannerService handles hero banner slide CRUD.
type BannerService struct {
	db *gorm.DB
}

// BannerInput represents fields accepted when creating or updating a slide.
type BannerInput struct {
	Title        string
	Subtitle     string
	Description  string
	IconType     string
	CTAText      string
	CTALink      string
	ImageURL     string
	DisplayOrder int
	IsActive     *bool
}

// NewBannerService creates a BannerService instance.
func NewBannerService(gdb *gorm.DB) *BannerService {
	return &BannerService{db: gdb}
}

// ListAll returns every slide in display order.
func (s *BannerService) ListAll() ([]db.BannerSlide, error) {
	var items []db.BannerSlide
	if err := s.db.Order("display_order asc").Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListActive returns active slides in display order for the home hero.
func (s *BannerService) ListActive() ([]db.BannerSlide, error) {
	var items []db.BannerSlide
	if err := s.db.Where("is_active = ?", true).
		Order("display_order asc").Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new slide.
func (s *BannerService) Create(input BannerInput) (*db.BannerSlide, error) {
	if err := validateBannerInput(input); err != nil {
		return nil, err
	}

	item := db.BannerSlide{
		Title:        strings.TrimSpace(input.Title),
		Subtitle:     strings.TrimSpace(input.Subtitle),
		Description:  strings.TrimSpace(input.Description),
		IconType:     strings.TrimSpace(input.IconType),
		CTAText:      strings.TrimSpace(input.CTAText),
		CTALink:      strings.TrimSpace(input.CTALink),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		DisplayOrder: input.DisplayOrder,
		IsActive:     boolOrDefault(input.IsActive, true),
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing slide.
func (s *BannerService) Update(id uint, input BannerInput) (*db.BannerSlide, error) {
	if err := validateBannerInput(input); err != nil {
		return nil, err
	}

	var item db.BannerSlide
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBannerNotFound
		}
		return nil, err
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Subtitle = strings.TrimSpace(input.Subtitle)
	item.Description = strings.TrimSpace(input.Description)
	item.IconType = strings.TrimSpace(input.IconType)
	item.CTAText = strings.TrimSpace(input.CTAText)
	item.CTALink = strings.TrimSpace(input.CTALink)
	item.ImageURL = strings.TrimSpace(input.ImageURL)
	item.DisplayOrder = input.DisplayOrder
	item.IsActive = boolOrDefault(input.IsActive, item.IsActive)

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a slide.
func (s *BannerService) Delete(id uint) error {
	var item db.BannerSlide
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBannerNotFound
		}
		return err
	}
	return s.db.Delete(&item).Error
}

func validateBannerInput(input BannerInput) error {
	if strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.Subtitle) == "" ||
		strings.TrimSpace(input.Description) == "" {
		return ErrBannerFieldsMissing
	}
	return nil
}
