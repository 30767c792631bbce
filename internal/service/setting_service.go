package service

import (
	"errors"
	"strings"

	"github.com/listeningclub/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSettingKeyMissing = errors.New("setting key is required")

// ContactInfoInput updates the contact page details.
type ContactInfoInput struct {
	Email        string
	Phone        string
	Address      string
	InstagramURL string
	LinkedinURL  string
}

// SettingService provides site-wide key/value settings and the contact info
// singleton.
type SettingService struct {
	db *gorm.DB
}

// NewSettingService creates a SettingService instance.
func NewSettingService(gdb *gorm.DB) *SettingService {
	return &SettingService{db: gdb}
}

// ListAll returns every setting pair.
func (s *SettingService) ListAll() ([]db.Setting, error) {
	var items []db.Setting
	if err := s.db.Order("key asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get returns the value for key, or "" when unset.
func (s *SettingService) Get(key string) (string, error) {
	var item db.Setting
	err := s.db.Where("key = ?", strings.TrimSpace(key)).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return item.Value, nil
}

// Set upserts one setting pair.
func (s *SettingService) Set(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrSettingKeyMissing
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&db.Setting{Key: key, Value: value}).Error
}

// GetContactInfo returns the contact page details, creating the singleton
// row on first access.
func (s *SettingService) GetContactInfo() (*db.ContactInfo, error) {
	var info db.ContactInfo
	err := s.db.First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := s.db.Create(&info).Error; err != nil {
			return nil, err
		}
		return &info, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// UpdateContactInfo overwrites the contact page details.
func (s *SettingService) UpdateContactInfo(input ContactInfoInput) (*db.ContactInfo, error) {
	info, err := s.GetContactInfo()
	if err != nil {
		return nil, err
	}

	info.Email = strings.TrimSpace(input.Email)
	info.Phone = strings.TrimSpace(input.Phone)
	info.Address = strings.TrimSpace(input.Address)
	info.InstagramURL = strings.TrimSpace(input.InstagramURL)
	info.LinkedinURL = strings.TrimSpace(input.LinkedinURL)

	if err := s.db.Save(info).Error; err != nil {
		return nil, err
	}
	return info, nil
}
