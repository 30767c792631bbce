package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listeningclub/internal/service"
)

type founderPayload struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Bio          string `json:"bio"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

func (p founderPayload) toInput() service.FounderInput {
	return service.FounderInput{
		Name:         p.Name,
		Role:         p.Role,
		Bio:          p.Bio,
		ImageURL:     p.ImageURL,
		DisplayOrder: p.DisplayOrder,
		IsActive:     p.IsActive,
	}
}

// ListFounders returns all founders for the admin surface.
func (a *API) ListFounders(c *gin.Context) {
	items, err := a.founders.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load founders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateFounder creates a new founder.
func (a *API) CreateFounder(c *gin.Context) {
	var payload founderPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.founders.Create(payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFounderFieldsMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create founder")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// UpdateFounder updates an existing founder.
func (a *API) UpdateFounder(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid founder id")
		return
	}

	var payload founderPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.founders.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFounderNotFound):
			respondError(c, http.StatusNotFound, "founder not found")
		case errors.Is(err, service.ErrFounderFieldsMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update founder")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteFounder removes a founder.
func (a *API) DeleteFounder(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid founder id")
		return
	}

	if err := a.founders.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrFounderNotFound):
			respondError(c, http.StatusNotFound, "founder not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to delete founder")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "founder deleted"})
}
