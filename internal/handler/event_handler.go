package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listeningclub/internal/service"
)

type eventPayload struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Location      string `json:"location"`
	MapLink       string `json:"map_link"`
	SlotsStatus   string `json:"slots_status"`
	IsBookingOpen *bool  `json:"is_booking_open"`
}

func (p eventPayload) toInput() service.EventInput {
	return service.EventInput{
		Name:          p.Name,
		Description:   p.Description,
		Date:          p.Date,
		Time:          p.Time,
		Location:      p.Location,
		MapLink:       p.MapLink,
		SlotsStatus:   p.SlotsStatus,
		IsBookingOpen: p.IsBookingOpen,
	}
}

// ListEvents returns all events for the admin surface.
func (a *API) ListEvents(c *gin.Context) {
	items, err := a.events.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load events")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateEvent creates a new event.
func (a *API) CreateEvent(c *gin.Context) {
	var payload eventPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.events.Create(payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventFieldsMissing), errors.Is(err, service.ErrEventSlotsInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create event")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// UpdateEvent updates an existing event.
func (a *API) UpdateEvent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid event id")
		return
	}

	var payload eventPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.events.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			respondError(c, http.StatusNotFound, "event not found")
		case errors.Is(err, service.ErrEventFieldsMissing), errors.Is(err, service.ErrEventSlotsInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update event")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteEvent removes an event.
func (a *API) DeleteEvent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid event id")
		return
	}

	if err := a.events.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			respondError(c, http.StatusNotFound, "event not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to delete event")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}
