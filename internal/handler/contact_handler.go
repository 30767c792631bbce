package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/listeningclub/internal/service"
)

const (
	msgRateLimited      = "Too many submissions. Please try again later."
	msgMethodNotAllowed = "Method not allowed"
	msgSubmitFailed     = "Failed to submit. Please try again."
	msgUnexpected       = "An unexpected error occurred. Please try again."
	msgSubmitSuccess    = "Your information has been submitted successfully!"
)

// flexString accepts a JSON string or number; browsers send age either way.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	return fmt.Errorf("value must be a string or number")
}

type contactPayload struct {
	Name       string     `json:"name"`
	Phone      string     `json:"phone"`
	Age        flexString `json:"age"`
	Profession string     `json:"profession"`
	City       string     `json:"city"`
}

func (p contactPayload) toInput() service.ContactInput {
	return service.ContactInput{
		Name:       p.Name,
		Phone:      p.Phone,
		Age:        string(p.Age),
		Profession: p.Profession,
		City:       p.City,
	}
}

// applyContactCORS sets the permissive headers every response of the public
// submission endpoint carries, preflight and errors included.
func applyContactCORS(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
}

// clientIP derives the caller address: first forwarded-for entry if present,
// else the real-ip header, else a literal "unknown" sentinel.
func clientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}
	if realIP := strings.TrimSpace(c.GetHeader("X-Real-IP")); realIP != "" {
		return realIP
	}
	return "unknown"
}

// SubmitContact is the public contact-form ingestion endpoint. It answers
// CORS preflight, rejects non-POST verbs, rate limits by hashed caller
// address before any validation work, then validates, sanitizes and persists
// exactly one row. Every rejection is terminal; the endpoint never retries.
func (a *API) SubmitContact(c *gin.Context) {
	applyContactCORS(c)

	switch c.Request.Method {
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
		return
	case http.MethodPost:
		// fallthrough to the pipeline below
	default:
		respondError(c, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	ctx := c.Request.Context()
	ipHash := service.HashClientIP(clientIP(c))

	if err := a.contacts.CheckQuota(ctx, ipHash); err != nil {
		respondError(c, http.StatusTooManyRequests, msgRateLimited)
		return
	}

	var payload contactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusInternalServerError, msgUnexpected)
		return
	}

	if _, err := a.contacts.Submit(ctx, ipHash, payload.toInput()); err != nil {
		var validation *service.ValidationError
		switch {
		case errors.As(err, &validation):
			respondError(c, http.StatusBadRequest, validation.Reason)
		case errors.Is(err, service.ErrRateLimited):
			respondError(c, http.StatusTooManyRequests, msgRateLimited)
		default:
			respondError(c, http.StatusInternalServerError, msgSubmitFailed)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": msgSubmitSuccess})
}
