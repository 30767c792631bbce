package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listeningclub/internal/service"
)

type postPayload struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Type     string `json:"type"`
	IsActive *bool  `json:"is_active"`
}

func (p postPayload) toInput() service.PostInput {
	return service.PostInput{
		Title:    p.Title,
		Content:  p.Content,
		Type:     p.Type,
		IsActive: p.IsActive,
	}
}

// ListPosts returns all posts for the admin surface, raw markdown included.
func (a *API) ListPosts(c *gin.Context) {
	items, err := a.posts.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetPost fetches a single post.
func (a *API) GetPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid post id")
		return
	}

	item, err := a.posts.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			respondError(c, http.StatusNotFound, "post not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to load post")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// CreatePost creates a new post.
func (a *API) CreatePost(c *gin.Context) {
	var payload postPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.posts.Create(payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostFieldsMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create post")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// UpdatePost updates an existing post.
func (a *API) UpdatePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid post id")
		return
	}

	var payload postPayload
	if !bindJSON(c, &payload, "invalid request body") {
		return
	}

	item, err := a.posts.Update(id, payload.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			respondError(c, http.StatusNotFound, "post not found")
		case errors.Is(err, service.ErrPostFieldsMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update post")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeletePost removes a post.
func (a *API) DeletePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := a.posts.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			respondError(c, http.StatusNotFound, "post not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to delete post")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
