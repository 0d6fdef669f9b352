package domain

import (
	"context"
	"time"
)

// Author is the byline on a blog post or vlog.
type Author struct {
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// BlogPost is a blog article as published in the CMS.
// swagger:model BlogPost
type BlogPost struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Body        string    `json:"body,omitempty"`
	Author      *Author   `json:"author,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// Vlog is a video post as published in the CMS.
// swagger:model Vlog
type Vlog struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	VideoURL    string    `json:"video_url"`
	Duration    string    `json:"duration,omitempty"`
	Author      *Author   `json:"author,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// ContentRepository is the read-only port onto the CMS editorial content.
type ContentRepository interface {
	// BlogPosts returns published posts, newest first.
	BlogPosts(ctx context.Context) ([]*BlogPost, error)
	// BlogPostBySlug returns the post with the given slug or ErrNotFound.
	BlogPostBySlug(ctx context.Context, slug string) (*BlogPost, error)
	// Vlogs returns published vlogs, newest first.
	Vlogs(ctx context.Context) ([]*Vlog, error)
}
