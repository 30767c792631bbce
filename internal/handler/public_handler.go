package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Public read endpoints. Each returns only active rows in display order; the
// frontend owns all presentation.

// PublicBannerSlides returns active hero slides.
func (a *API) PublicBannerSlides(c *gin.Context) {
	items, err := a.banners.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load banner slides")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// PublicQuotes returns active home-page quotes.
func (a *API) PublicQuotes(c *gin.Context) {
	items, err := a.quotes.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load quotes")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// PublicEvents returns all events, newest first.
func (a *API) PublicEvents(c *gin.Context) {
	items, err := a.events.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load events")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// PublicFaqs returns active FAQs.
func (a *API) PublicFaqs(c *gin.Context) {
	items, err := a.faqs.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load faqs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// PublicFounders returns active founders.
func (a *API) PublicFounders(c *gin.Context) {
	items, err := a.founders.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load founders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// PublicVolunteers returns active volunteers.
func (a *API) PublicVolunteers(c *gin.Context) {
	items, err := a.volunteers.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load volunteers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// PublicGallery returns active gallery images with pagination.
func (a *API) PublicGallery(c *gin.Context) {
	page := parsePositiveInt(c.DefaultQuery("page", "1"), 1)
	result, err := a.galleries.ListActive(page, 12)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load gallery")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items":       result.Items,
		"page":        result.Page,
		"total_pages": result.TotalPages,
	})
}

// PublicServices returns active offerings.
func (a *API) PublicServices(c *gin.Context) {
	items, err := a.serviceItems.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load services")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// PublicTestimonials returns all testimonials.
func (a *API) PublicTestimonials(c *gin.Context) {
	items, err := a.testimonials.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load testimonials")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// PublicPosts returns active posts rendered to sanitized HTML.
func (a *API) PublicPosts(c *gin.Context) {
	items, err := a.posts.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// PublicContactInfo returns the contact page details.
func (a *API) PublicContactInfo(c *gin.Context) {
	info, err := a.settings.GetContactInfo()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load contact info")
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": info})
}
