package service

import (
	"errors"
	"strings"

	"github.com/listeningclub/internal/db"
	"gorm.io/gorm"
)

var (
	ErrServiceItemNotFound      = errors.New("service not found")
	ErrServiceItemFieldsMissing = errors.New("service name and description are required")
)

// ServiceItemService handles CRUD for the offerings on the services page.
type ServiceItemService struct {
	db *gorm.DB
}

// ServiceItemInput represents fields accepted when creating or updating an
// offering.
type ServiceItemInput struct {
	Name            string
	Description     string
	BannerImageURL  string
	WhatsappMessage string
	DisplayOrder    int
	IsActive        *bool
}

// NewServiceItemService creates a ServiceItemService instance.
func NewServiceItemService(gdb *gorm.DB) *ServiceItemService {
	return &ServiceItemService{db: gdb}
}

// ListAll returns every offering in display order.
func (s *ServiceItemService) ListAll() ([]db.ServiceItem, error) {
	var items []db.ServiceItem
	if err := s.db.Order("display_order asc").Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListActive returns active offerings in display order for the public page.
func (s *ServiceItemService) ListActive() ([]db.ServiceItem, error) {
	var items []db.ServiceItem
	if err := s.db.Where("is_active = ?", true).
		Order("display_order asc").Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new offering.
func (s *ServiceItemService) Create(input ServiceItemInput) (*db.ServiceItem, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, ErrServiceItemFieldsMissing
	}

	item := db.ServiceItem{
		Name:            strings.TrimSpace(input.Name),
		Description:     strings.TrimSpace(input.Description),
		BannerImageURL:  strings.TrimSpace(input.BannerImageURL),
		WhatsappMessage: strings.TrimSpace(input.WhatsappMessage),
		DisplayOrder:    input.DisplayOrder,
		IsActive:        boolOrDefault(input.IsActive, true),
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing offering.
func (s *ServiceItemService) Update(id uint, input ServiceItemInput) (*db.ServiceItem, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, ErrServiceItemFieldsMissing
	}

	var item db.ServiceItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceItemNotFound
		}
		return nil, err
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Description = strings.TrimSpace(input.Description)
	item.BannerImageURL = strings.TrimSpace(input.BannerImageURL)
	item.WhatsappMessage = strings.TrimSpace(input.WhatsappMessage)
	item.DisplayOrder = input.DisplayOrder
	item.IsActive = boolOrDefault(input.IsActive, item.IsActive)

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes an offering.
func (s *ServiceItemService) Delete(id uint) error {
	var item db.ServiceItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrServiceItemNotFound
		}
		return err
	}
	return s.db.Delete(&item).Error
}
