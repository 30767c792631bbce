package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listeningclub/internal/service"
)

type volunteerPayload struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Quote        string `json:"quote"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

func (p volunteerPayload) toInput() service.VolunteerInput {
	return service.VolunteerInput{
		Name:         p.Name,
		Role:         p.Role,
		Quote:        p.Quote,
		ImageURL:     p.ImageURL,
		DisplayOrder: p.DisplayOrder,
		IsActive:     p.IsActive,
	}
}

// ListVolunteers returns all volunteers for the admin surface.
func (a *API) ListVolunteers(c *gin.Context) {
	items, err := a.volunteers.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load volunteers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateVolunteer creates a new volunteer.
func (a *API) CreateVolunteer(c *gin.Context) {
	var payload volunteerPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.volunteers.Create(payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVolunteerFieldsMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create volunteer")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// UpdateVolunteer updates an existing volunteer.
func (a *API) UpdateVolunteer(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid volunteer id")
		return
	}

	var payload volunteerPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.volunteers.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVolunteerNotFound):
			respondError(c, http.StatusNotFound, "volunteer not found")
		case errors.Is(err, service.ErrVolunteerFieldsMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update volunteer")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteVolunteer removes a volunteer.
func (a *API) DeleteVolunteer(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid volunteer id")
		return
	}

	if err := a.volunteers.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrVolunteerNotFound):
			respondError(c, http.StatusNotFound, "volunteer not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to delete volunteer")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "volunteer deleted"})
}
