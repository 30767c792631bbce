package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listeningclub/internal/service"
	"github.com/listeningclub/internal/storage"
)

type galleryPayload struct {
	Caption      string `json:"caption"`
	ImageURL     string `json:"image_url"`
	ImageWidth   int    `json:"image_width"`
	ImageHeight  int    `json:"image_height"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

func (p galleryPayload) toInput() service.GalleryInput {
	return service.GalleryInput{
		Caption:      p.Caption,
		ImageURL:     p.ImageURL,
		ImageWidth:   p.ImageWidth,
		ImageHeight:  p.ImageHeight,
		DisplayOrder: p.DisplayOrder,
		IsActive:     p.IsActive,
	}
}

// ListGalleryImages returns all gallery images for the admin surface.
func (a *API) ListGalleryImages(c *gin.Context) {
	items, err := a.galleries.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load gallery")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateGalleryImage creates a new gallery image.
func (a *API) CreateGalleryImage(c *gin.Context) {
	var payload galleryPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.galleries.Create(payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryImageMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create gallery image")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// UpdateGalleryImage updates an existing gallery image.
func (a *API) UpdateGalleryImage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid gallery image id")
		return
	}

	var payload galleryPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.galleries.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryNotFound):
			respondError(c, http.StatusNotFound, "gallery image not found")
		case errors.Is(err, service.ErrGalleryImageMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update gallery image")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteGalleryImage removes a gallery image and its stored file.
func (a *API) DeleteGalleryImage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid gallery image id")
		return
	}

	imageURL, err := a.galleries.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryNotFound):
			respondError(c, http.StatusNotFound, "gallery image not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to delete gallery image")
		}
		return
	}

	// Best effort: the row is gone either way, an orphaned file only wastes
	// disk.
	if local, ok := a.store.(*storage.LocalStorage); ok {
		if key := local.KeyFromURL(imageURL); key != "" {
			if err := a.store.Delete(c.Request.Context(), key); err != nil {
				slog.Warn("gallery: file cleanup failed", "error", err, "key", key)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "gallery image deleted"})
}
