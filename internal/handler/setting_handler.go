package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listeningclub/internal/service"
)

type settingPayload struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type contactInfoPayload struct {
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	InstagramURL string `json:"instagram_url"`
	LinkedinURL  string `json:"linkedin_url"`
}

// ListSettings returns every setting pair for the admin surface.
func (a *API) ListSettings(c *gin.Context) {
	items, err := a.settings.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// UpsertSetting creates or updates one setting pair.
func (a *API) UpsertSetting(c *gin.Context) {
	var payload settingPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	if err := a.settings.Set(payload.Key, payload.Value); err != nil {
		switch {
		case errors.Is(err, service.ErrSettingKeyMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to save setting")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "setting saved"})
}

// GetContactInfo returns the contact page details.
func (a *API) GetContactInfo(c *gin.Context) {
	info, err := a.settings.GetContactInfo()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load contact info")
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": info})
}

// UpdateContactInfo overwrites the contact page details.
func (a *API) UpdateContactInfo(c *gin.Context) {
	var payload contactInfoPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	info, err := a.settings.UpdateContactInfo(service.ContactInfoInput{
		Email:        payload.Email,
		Phone:        payload.Phone,
		Address:      payload.Address,
		InstagramURL: payload.InstagramURL,
		LinkedinURL:  payload.LinkedinURL,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save contact info")
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": info})
}
