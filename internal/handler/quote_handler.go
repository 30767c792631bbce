package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listeningclub/internal/service"
)

type quotePayload struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	IsActive *bool  `json:"is_active"`
}

func (p quotePayload) toInput() service.QuoteInput {
	return service.QuoteInput{
		Text:     p.Text,
		Author:   p.Author,
		IsActive: p.IsActive,
	}
}

// ListQuotes returns all quotes for the admin surface.
func (a *API) ListQuotes(c *gin.Context) {
	items, err := a.quotes.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load quotes")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateQuote creates a new quote.
func (a *API) CreateQuote(c *gin.Context) {
	var payload quotePayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.quotes.Create(payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuoteTextMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create quote")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// UpdateQuote updates an existing quote.
func (a *API) UpdateQuote(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid quote id")
		return
	}

	var payload quotePayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.quotes.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuoteNotFound):
			respondError(c, http.StatusNotFound, "quote not found")
		case errors.Is(err, service.ErrQuoteTextMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update quote")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteQuote removes a quote.
func (a *API) DeleteQuote(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid quote id")
		return
	}

	if err := a.quotes.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrQuoteNotFound):
			respondError(c, http.StatusNotFound, "quote not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to delete quote")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "quote deleted"})
}
