package domain

import (
	"context"
	"time"
)

// Event statuses as maintained by CMS operators.
const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusCancelled = "cancelled"
	EventStatusCompleted = "completed"
)

// Event is a community event as published in the CMS. Events are created and
// edited by CMS operators; this system only reads them.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Location    string    `json:"location"`
	Address     string    `json:"address,omitempty"`
	Capacity    int       `json:"capacity"`
	Tags        []string  `json:"tags,omitempty"`
	Status      string    `json:"status"`
}

// EventCatalog is the read-only port onto the CMS event content.
type EventCatalog interface {
	// PublishedEvents returns published events that have not yet started,
	// ascending by start time.
	PublishedEvents(ctx context.Context) ([]*Event, error)
	// EventBySlug returns the event with the given slug or ErrNotFound.
	EventBySlug(ctx context.Context, slug string) (*Event, error)
}
