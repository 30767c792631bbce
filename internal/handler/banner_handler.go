package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listeningclub/internal/service"
)

type bannerPayload struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Description  string `json:"description"`
	IconType     string `json:"icon_type"`
	CTAText      string `json:"cta_text"`
	CTALink      string `json:"cta_link"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

func (p bannerPayload) toInput() service.BannerInput {
	return service.BannerInput{
		Title:        p.Title,
		Subtitle:     p.Subtitle,
		Description:  p.Description,
		IconType:     p.IconType,
		CTAText:      p.CTAText,
		CTALink:      p.CTALink,
		ImageURL:     p.ImageURL,
		DisplayOrder: p.DisplayOrder,
		IsActive:     p.IsActive,
	}
}

// ListBannerSlides returns all slides for the admin surface.
func (a *API) ListBannerSlides(c *gin.Context) {
	items, err := a.banners.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load banner slides")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateBannerSlide creates a new slide.
func (a *API) CreateBannerSlide(c *gin.Context) {
	var payload bannerPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.banners.Create(payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBannerFieldsMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create banner slide")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// UpdateBannerSlide updates an existing slide.
func (a *API) UpdateBannerSlide(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid banner slide id")
		return
	}

	var payload bannerPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.banners.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBannerNotFound):
			respondError(c, http.StatusNotFound, "banner slide not found")
		case errors.Is(err, service.ErrBannerFieldsMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update banner slide")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteBannerSlide removes a slide.
func (a *API) DeleteBannerSlide(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid banner slide id")
		return
	}

	if err := a.banners.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrBannerNotFound):
			respondError(c, http.StatusNotFound, "banner slide not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to delete banner slide")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "banner slide deleted"})
}
