package service

import (
	"errors"
	"strings"

	"github.com/listeningclub/internal/db"
	"gorm.io/gorm"
)

var (
	ErrGalleryNotFound     = errors.New("gallery image not found")
	ErrGalleryImageMissing = errors.New("gallery image is required")
)

// GalleryService handles memory-lane gallery CRUD.
type GalleryService struct {
	db *gorm.DB
}

// GalleryListResult aggregates paginated gallery results.
type GalleryListResult struct {
	Items      []db.GalleryImage
	Total      int64
	TotalPages int
	Page       int
	PerPage    int
}

// GalleryInput represents fields accepted when creating or updating a
// gallery image.
type GalleryInput struct {
	Caption      string
	ImageURL     string
	ImageWidth   int
	ImageHeight  int
	DisplayOrder int
	IsActive     *bool
}

// NewGalleryService creates a GalleryService instance.
func NewGalleryService(gdb *gorm.DB) *GalleryService {
	return &GalleryService{db: gdb}
}

// ListAll returns every gallery image for the admin surface.
func (s *GalleryService) ListAll() ([]db.GalleryImage, error) {
	var items []db.GalleryImage
	if err := s.db.Order("display_order asc").Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListActive returns active gallery images with pagination for the public
// gallery page.
func (s *GalleryService) ListActive(page, perPage int) (GalleryListResult, error) {
	result := GalleryListResult{
		Page:    normalizePage(page),
		PerPage: normalizePerPage(perPage, 12),
	}

	query := s.db.Model(&db.GalleryImage{}).Where("is_active = ?", true)
	if err := query.Count(&result.Total).Error; err != nil {
		return result, err
	}

	result.TotalPages = calculateTotalPages(result.Total, result.PerPage)
	offset := (result.Page - 1) * result.PerPage

	if err := query.Order("display_order asc").Order("created_at desc").
		Limit(result.PerPage).
		Offset(offset).
		Find(&result.Items).Error; err != nil {
		return result, err
	}

	return result, nil
}

// Get fetches a gallery image by id.
func (s *GalleryService) Get(id uint) (*db.GalleryImage, error) {
	var item db.GalleryImage
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new gallery image.
func (s *GalleryService) Create(input GalleryInput) (*db.GalleryImage, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, ErrGalleryImageMissing
	}

	item := db.GalleryImage{
		Caption:      strings.TrimSpace(input.Caption),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		ImageWidth:   input.ImageWidth,
		ImageHeight:  input.ImageHeight,
		DisplayOrder: input.DisplayOrder,
		IsActive:     boolOrDefault(input.IsActive, true),
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing gallery image.
func (s *GalleryService) Update(id uint, input GalleryInput) (*db.GalleryImage, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, ErrGalleryImageMissing
	}

	var item db.GalleryImage
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, err
	}

	item.Caption = strings.TrimSpace(input.Caption)
	item.ImageURL = strings.TrimSpace(input.ImageURL)
	item.ImageWidth = input.ImageWidth
	item.ImageHeight = input.ImageHeight
	item.DisplayOrder = input.DisplayOrder
	item.IsActive = boolOrDefault(input.IsActive, item.IsActive)

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a gallery image and reports its stored URL so the caller
// can clean up the underlying file.
func (s *GalleryService) Delete(id uint) (string, error) {
	var item db.GalleryImage
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrGalleryNotFound
		}
		return "", err
	}
	if err := s.db.Delete(&item).Error; err != nil {
		return "", err
	}
	return item.ImageURL, nil
}

func boolOrDefault(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
