package handler

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// UploadImage stores an uploaded image and returns its public URL together
// with the decoded pixel dimensions for gallery records.
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "no image in request")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "only image uploads are allowed")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to read upload")
		return
	}
	defer src.Close()

	width, height := 0, 0
	if cfg, _, err := image.DecodeConfig(src); err == nil {
		width, height = cfg.Width, cfg.Height
	}
	if _, err := src.Seek(0, 0); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to read upload")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)

	url, err := a.store.Save(c.Request.Context(), key, src, contentType)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to store upload")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":    url,
		"width":  width,
		"height": height,
	})
}
