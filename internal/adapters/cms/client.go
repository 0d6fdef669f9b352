// Package cms implements the read-only content ports against the headless
// CMS HTTP query API. Queries are GROQ; the dataset schema is owned by the
// CMS operators and this client never mutates it.
package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"communityroots/config"
	"communityroots/internal/domain"
)

// Client queries the CMS content API. It implements domain.EventCatalog and
// domain.ContentRepository.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
}

// NewClient returns a CMS client for the given config.
func NewClient(httpClient *http.Client, cfg config.CMSConfig) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		apiToken:   cfg.APIToken,
	}
}

// eventDoc mirrors the event document shape in the CMS dataset.
type eventDoc struct {
	ID          string    `json:"_id"`
	Slug        slugField `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Location    string    `json:"location"`
	Address     string    `json:"address"`
	Capacity    int       `json:"capacity"`
	Tags        []string  `json:"tags"`
	Status      string    `json:"status"`
}

type slugField struct {
	Current string `json:"current"`
}

type authorDoc struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	ImageURL string `json:"imageUrl"`
}

type blogPostDoc struct {
	ID          string     `json:"_id"`
	Slug        slugField  `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Body        string     `json:"body"`
	Author      *authorDoc `json:"author"`
	Tags        []string   `json:"tags"`
	PublishedAt time.Time  `json:"publishedAt"`
}

type vlogDoc struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	VideoURL    string     `json:"videoUrl"`
	Duration    string     `json:"duration"`
	Author      *authorDoc `json:"author"`
	PublishedAt time.Time  `json:"publishedAt"`
}

const eventFields = `{_id, slug, title, description, startDate, endDate, location, address, capacity, tags, status}`
const blogPostFields = `{_id, slug, title, excerpt, body, author->{name, role, imageUrl}, tags, publishedAt}`
const vlogFields = `{_id, title, description, videoUrl, duration, author->{name, role, imageUrl}, publishedAt}`

// PublishedEvents returns published events that have not yet started,
// ascending by start time.
func (c *Client) PublishedEvents(ctx context.Context) ([]*domain.Event, error) {
	query := `*[_type == "event" && status == "published" && startDate >= now()] | order(startDate asc) ` + eventFields
	var docs []eventDoc
	if err := c.query(ctx, query, nil, &docs); err != nil {
		return nil, fmt.Errorf("fetch published events: %w", err)
	}
	events := make([]*domain.Event, 0, len(docs))
	for i := range docs {
		events = append(events, docs[i].toDomain())
	}
	return events, nil
}

// EventBySlug returns the event with the given slug or domain.ErrNotFound.
func (c *Client) EventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := `*[_type == "event" && slug.current == $slug][0] ` + eventFields
	var doc *eventDoc
	if err := c.query(ctx, query, map[string]string{"slug": slug}, &doc); err != nil {
		return nil, fmt.Errorf("fetch event %q: %w", slug, err)
	}
	if doc == nil || doc.ID == "" {
		return nil, domain.ErrNotFound
	}
	return doc.toDomain(), nil
}

// BlogPosts returns published posts, newest first.
func (c *Client) BlogPosts(ctx context.Context) ([]*domain.BlogPost, error) {
	query := `*[_type == "post" && defined(publishedAt)] | order(publishedAt desc) ` + blogPostFields
	var docs []blogPostDoc
	if err := c.query(ctx, query, nil, &docs); err != nil {
		return nil, fmt.Errorf("fetch blog posts: %w", err)
	}
	posts := make([]*domain.BlogPost, 0, len(docs))
	for i := range docs {
		posts = append(posts, docs[i].toDomain())
	}
	return posts, nil
}

// BlogPostBySlug returns the post with the given slug or domain.ErrNotFound.
func (c *Client) BlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	query := `*[_type == "post" && slug.current == $slug][0] ` + blogPostFields
	var doc *blogPostDoc
	if err := c.query(ctx, query, map[string]string{"slug": slug}, &doc); err != nil {
		return nil, fmt.Errorf("fetch blog post %q: %w", slug, err)
	}
	if doc == nil || doc.ID == "" {
		return nil, domain.ErrNotFound
	}
	return doc.toDomain(), nil
}

// Vlogs returns published vlogs, newest first.
func (c *Client) Vlogs(ctx context.Context) ([]*domain.Vlog, error) {
	query := `*[_type == "vlog" && defined(publishedAt)] | order(publishedAt desc) ` + vlogFields
	var docs []vlogDoc
	if err := c.query(ctx, query, nil, &docs); err != nil {
		return nil, fmt.Errorf("fetch vlogs: %w", err)
	}
	vlogs := make([]*domain.Vlog, 0, len(docs))
	for i := range docs {
		vlogs = append(vlogs, docs[i].toDomain())
	}
	return vlogs, nil
}

// Ping issues a minimal query to verify the content API is reachable.
func (c *Client) Ping(ctx context.Context) error {
	var n int
	return c.query(ctx, `count(*[_type == "event"][0...1])`, nil, &n)
}

// query runs a GROQ query against the content API and decodes the "result"
// field of the response into out. Params are passed as $-prefixed JSON-encoded
// query parameters, matching the CMS query API contract.
func (c *Client) query(ctx context.Context, groq string, params map[string]string, out any) error {
	values := url.Values{}
	values.Set("query", groq)
	for k, v := range params {
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode query param %q: %w", k, err)
		}
		values.Set("$"+k, string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data/query/production?"+values.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach content api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("content api returned status: %d", resp.StatusCode)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode content api response: %w", err)
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("failed to decode query result: %w", err)
	}
	return nil
}

func (d *eventDoc) toDomain() *domain.Event {
	return &domain.Event{
		ID:          d.ID,
		Slug:        d.Slug.Current,
		Title:       d.Title,
		Description: d.Description,
		StartsAt:    d.StartDate,
		EndsAt:      d.EndDate,
		Location:    d.Location,
		Address:     d.Address,
		Capacity:    d.Capacity,
		Tags:        d.Tags,
		Status:      d.Status,
	}
}

func (d *blogPostDoc) toDomain() *domain.BlogPost {
	post := &domain.BlogPost{
		ID:          d.ID,
		Slug:        d.Slug.Current,
		Title:       d.Title,
		Excerpt:     d.Excerpt,
		Body:        d.Body,
		Tags:        d.Tags,
		PublishedAt: d.PublishedAt,
	}
	if d.Author != nil {
		post.Author = &domain.Author{Name: d.Author.Name, Role: d.Author.Role, ImageURL: d.Author.ImageURL}
	}
	return post
}

func (d *vlogDoc) toDomain() *domain.Vlog {
	vlog := &domain.Vlog{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		VideoURL:    d.VideoURL,
		Duration:    d.Duration,
		PublishedAt: d.PublishedAt,
	}
	if d.Author != nil {
		vlog.Author = &domain.Author{Name: d.Author.Name, Role: d.Author.Role, ImageURL: d.Author.ImageURL}
	}
	return vlog
}
