package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listeningclub/internal/service"
)

type testimonialPayload struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	VideoURL     string `json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

func (p testimonialPayload) toInput() service.TestimonialInput {
	return service.TestimonialInput{
		Name:         p.Name,
		Role:         p.Role,
		VideoURL:     p.VideoURL,
		ThumbnailURL: p.ThumbnailURL,
	}
}

// ListTestimonials returns all testimonials for the admin surface.
func (a *API) ListTestimonials(c *gin.Context) {
	items, err := a.testimonials.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load testimonials")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateTestimonial creates a new testimonial.
func (a *API) CreateTestimonial(c *gin.Context) {
	var payload testimonialPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.testimonials.Create(payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTestimonialFieldsMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create testimonial")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// UpdateTestimonial updates an existing testimonial.
func (a *API) UpdateTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid testimonial id")
		return
	}

	var payload testimonialPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.testimonials.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTestimonialNotFound):
			respondError(c, http.StatusNotFound, "testimonial not found")
		case errors.Is(err, service.ErrTestimonialFieldsMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update testimonial")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteTestimonial removes a testimonial.
func (a *API) DeleteTestimonial(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid testimonial id")
		return
	}

	if err := a.testimonials.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrTestimonialNotFound):
			respondError(c, http.StatusNotFound, "testimonial not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to delete testimonial")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "testimonial deleted"})
}
