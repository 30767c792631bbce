package service

import (
	"bytes"
	"errors"
	"strings"

	"github.com/listeningclub/internal/db"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound      = errors.New("post not found")
	ErrPostFieldsMissing = errors.New("post title and content are required")
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	htmlSanitizer = bluemonday.UGCPolicy()
)

// PostService handles announcements authored in markdown.
type PostService struct {
	db *gorm.DB
}

// PostInput represents fields accepted when creating or updating a post.
type PostInput struct {
	Title    string
	Content  string
	Type     string
	IsActive *bool
}

// PostView is a post with its content rendered to sanitized HTML for the
// public surface.
type PostView struct {
	db.Post
	RenderedHTML string
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// ListAll returns every post, newest first, raw markdown included.
func (s *PostService) ListAll() ([]db.Post, error) {
	var items []db.Post
	if err := s.db.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListActive returns active posts rendered to sanitized HTML, newest first.
func (s *PostService) ListActive() ([]PostView, error) {
	var items []db.Post
	if err := s.db.Where("is_active = ?", true).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}

	views := make([]PostView, 0, len(items))
	for _, item := range items {
		rendered, err := renderMarkdown(item.Content)
		if err != nil {
			return nil, err
		}
		views = append(views, PostView{Post: item, RenderedHTML: rendered})
	}
	return views, nil
}

// Get fetches a post by id.
func (s *PostService) Get(id uint) (*db.Post, error) {
	var item db.Post
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new post.
func (s *PostService) Create(input PostInput) (*db.Post, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, ErrPostFieldsMissing
	}

	item := db.Post{
		Title:    strings.TrimSpace(input.Title),
		Content:  input.Content,
		Type:     normalizePostType(input.Type),
		IsActive: boolOrDefault(input.IsActive, true),
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing post.
func (s *PostService) Update(id uint, input PostInput) (*db.Post, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, ErrPostFieldsMissing
	}

	var item db.Post
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Content = input.Content
	item.Type = normalizePostType(input.Type)
	item.IsActive = boolOrDefault(input.IsActive, item.IsActive)

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a post.
func (s *PostService) Delete(id uint) error {
	var item db.Post
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return s.db.Delete(&item).Error
}

func renderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return htmlSanitizer.Sanitize(buf.String()), nil
}

func normalizePostType(postType string) string {
	postType = strings.ToLower(strings.TrimSpace(postType))
	if postType == "" {
		return "announcement"
	}
	return postType
}
