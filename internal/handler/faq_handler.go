package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listeningclub/internal/service"
)

type faqPayload struct {
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

func (p faqPayload) toInput() service.FaqInput {
	return service.FaqInput{
		Question:     p.Question,
		Answer:       p.Answer,
		DisplayOrder: p.DisplayOrder,
		IsActive:     p.IsActive,
	}
}

// ListFaqs returns all FAQs for the admin surface.
func (a *API) ListFaqs(c *gin.Context) {
	items, err := a.faqs.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load faqs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateFaq creates a new FAQ.
func (a *API) CreateFaq(c *gin.Context) {
	var payload faqPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.faqs.Create(payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFaqFieldsMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create faq")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// UpdateFaq updates an existing FAQ.
func (a *API) UpdateFaq(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid faq id")
		return
	}

	var payload faqPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.faqs.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFaqNotFound):
			respondError(c, http.StatusNotFound, "faq not found")
		case errors.Is(err, service.ErrFaqFieldsMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update faq")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteFaq removes a FAQ.
func (a *API) DeleteFaq(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid faq id")
		return
	}

	if err := a.faqs.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrFaqNotFound):
			respondError(c, http.StatusNotFound, "faq not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to delete faq")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "faq deleted"})
}
