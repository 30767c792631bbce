package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/listeningclub/internal/service"
)

// ListSubmissions returns contact submissions newest first with pagination.
func (a *API) ListSubmissions(c *gin.Context) {
	page := parsePositiveInt(c.DefaultQuery("page", "1"), 1)
	perPage := parsePositiveInt(c.DefaultQuery("per_page", "25"), 25)

	result, err := a.submissions.List(page, perPage)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load submissions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":       result.Items,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// ExportSubmissions streams every submission as a CSV download.
func (a *API) ExportSubmissions(c *gin.Context) {
	filename := fmt.Sprintf("contact-submissions-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := a.submissions.ExportCSV(c.Writer); err != nil {
		// Headers may already be out; just abort the stream.
		c.Abort()
	}
}

// DeleteSubmission removes one contact submission.
func (a *API) DeleteSubmission(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid submission id")
		return
	}

	if err := a.submissions.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrSubmissionNotFound):
			respondError(c, http.StatusNotFound, "submission not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to delete submission")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "submission deleted"})
}
