package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listeningclub/internal/service"
)

type serviceItemPayload struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	BannerImageURL  string `json:"banner_image_url"`
	WhatsappMessage string `json:"whatsapp_message"`
	DisplayOrder    int    `json:"display_order"`
	IsActive        *bool  `json:"is_active"`
}

func (p serviceItemPayload) toInput() service.ServiceItemInput {
	return service.ServiceItemInput{
		Name:            p.Name,
		Description:     p.Description,
		BannerImageURL:  p.BannerImageURL,
		WhatsappMessage: p.WhatsappMessage,
		DisplayOrder:    p.DisplayOrder,
		IsActive:        p.IsActive,
	}
}

// ListServiceItems returns all offerings for the admin surface.
func (a *API) ListServiceItems(c *gin.Context) {
	items, err := a.serviceItems.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load services")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateServiceItem creates a new offering.
func (a *API) CreateServiceItem(c *gin.Context) {
	var payload serviceItemPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.serviceItems.Create(payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrServiceItemFieldsMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create service")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// UpdateServiceItem updates an existing offering.
func (a *API) UpdateServiceItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid service id")
		return
	}

	var payload serviceItemPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.serviceItems.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrServiceItemNotFound):
			respondError(c, http.StatusNotFound, "service not found")
		case errors.Is(err, service.ErrServiceItemFieldsMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update service")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteServiceItem removes an offering.
func (a *API) DeleteServiceItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid service id")
		return
	}

	if err := a.serviceItems.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrServiceItemNotFound):
			respondError(c, http.StatusNotFound, "service not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to delete service")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}
