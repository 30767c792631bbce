package service

import (
	"errors"
	"strings"

	"github.com/listeningclub/internal/db"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrEventFieldsMissing = errors.New("event name, date, time and location are required")
	ErrEventSlotsInvalid  = errors.New("event slots status is invalid")
)

// Slots statuses shown on the events page.
const (
	SlotsAvailable   = "available"
	SlotsFillingFast = "filling_fast"
	SlotsFull        = "full"
)

// EventService handles event CRUD.
type EventService struct {
	db *gorm.DB
}

// EventInput represents fields accepted when creating or updating an event.
type EventInput struct {
	Name          string
	Description   string
	Date          string
	Time          string
	Location      string
	MapLink       string
	SlotsStatus   string
	IsBookingOpen *bool
}

// NewEventService creates an EventService instance.
func NewEventService(gdb *gorm.DB) *EventService {
	return &EventService{db: gdb}
}

// ListAll returns every event, newest first.
func (s *EventService) ListAll() ([]db.Event, error) {
	var items []db.Event
	if err := s.db.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches an event by id.
func (s *EventService) Get(id uint) (*db.Event, error) {
	var item db.Event
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new event.
func (s *EventService) Create(input EventInput) (*db.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	item := db.Event{
		Name:          strings.TrimSpace(input.Name),
		Description:   strings.TrimSpace(input.Description),
		Date:          strings.TrimSpace(input.Date),
		Time:          strings.TrimSpace(input.Time),
		Location:      strings.TrimSpace(input.Location),
		MapLink:       strings.TrimSpace(input.MapLink),
		SlotsStatus:   normalizeSlotsStatus(input.SlotsStatus),
		IsBookingOpen: boolOrDefault(input.IsBookingOpen, true),
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing event.
func (s *EventService) Update(id uint, input EventInput) (*db.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	var item db.Event
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Description = strings.TrimSpace(input.Description)
	item.Date = strings.TrimSpace(input.Date)
	item.Time = strings.TrimSpace(input.Time)
	item.Location = strings.TrimSpace(input.Location)
	item.MapLink = strings.TrimSpace(input.MapLink)
	item.SlotsStatus = normalizeSlotsStatus(input.SlotsStatus)
	item.IsBookingOpen = boolOrDefault(input.IsBookingOpen, item.IsBookingOpen)

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes an event.
func (s *EventService) Delete(id uint) error {
	var item db.Event
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	return s.db.Delete(&item).Error
}

func validateEventInput(input EventInput) error {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Date) == "" ||
		strings.TrimSpace(input.Time) == "" ||
		strings.TrimSpace(input.Location) == "" {
		return ErrEventFieldsMissing
	}
	switch normalizeSlotsStatus(input.SlotsStatus) {
	case SlotsAvailable, SlotsFillingFast, SlotsFull:
		return nil
	default:
		return ErrEventSlotsInvalid
	}
}

func normalizeSlotsStatus(status string) string {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		return SlotsAvailable
	}
	return status
}
