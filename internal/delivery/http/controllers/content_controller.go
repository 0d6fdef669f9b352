package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"communityroots/internal/delivery/http/helpers"
	"communityroots/internal/domain"
)

// ContentController serves the blog and vlog read models from the CMS.
type ContentController struct {
	Logger  *slog.Logger
	Content domain.ContentRepository
}

// NewContentController creates a ContentController.
func NewContentController(logger *slog.Logger, content domain.ContentRepository) *ContentController {
	return &ContentController{
		Logger:  logger,
		Content: content,
	}
}

// BlogListResponse is the success envelope for GET /api/blog.
type BlogListResponse struct {
	Success bool               `json:"success"`
	Posts   []*domain.BlogPost `json:"posts"`
}

// BlogPostResponse is the success envelope for GET /api/blog/{slug}.
type BlogPostResponse struct {
	Success bool             `json:"success"`
	Post    *domain.BlogPost `json:"post"`
}

// VlogListResponse is the success envelope for GET /api/vlogs.
type VlogListResponse struct {
	Success bool           `json:"success"`
	Vlogs   []*domain.Vlog `json:"vlogs"`
}

// ListPosts godoc
// @Summary List blog posts
// @Tags content
// @Produce json
// @Success 200 {object} controllers.BlogListResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/blog [get]
func (c *ContentController) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := c.Content.BlogPosts(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list blog posts failed", "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to load posts")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, BlogListResponse{Success: true, Posts: posts})
}

// GetPost godoc
// @Summary Get one blog post by slug
// @Tags content
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} controllers.BlogPostResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/blog/{slug} [get]
func (c *ContentController) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	post, err := c.Content.BlogPostBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "Post not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "get blog post failed", "slug", slug, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to load post")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, BlogPostResponse{Success: true, Post: post})
}

// ListVlogs godoc
// @Summary List vlogs
// @Tags content
// @Produce json
// @Success 200 {object} controllers.VlogListResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/vlogs [get]
func (c *ContentController) ListVlogs(w http.ResponseWriter, r *http.Request) {
	vlogs, err := c.Content.Vlogs(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list vlogs failed", "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to load vlogs")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, VlogListResponse{Success: true, Vlogs: vlogs})
}
