// Package crm implements domain.CRMClient against the CRM's contacts API.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"communityroots/config"
	"communityroots/internal/domain"
)

// Client upserts contacts in the external CRM. Contacts are keyed by email:
// create first, and on conflict look the contact up by email and patch it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient returns a CRM client for the given config.
func NewClient(httpClient *http.Client, cfg config.CRMConfig) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

type contactProperties struct {
	Email     string `json:"email"`
	FirstName string `json:"firstname,omitempty"`
	LastName  string `json:"lastname,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Tags      string `json:"tags,omitempty"`
}

type contactObject struct {
	ID         string            `json:"id"`
	Properties contactProperties `json:"properties"`
}

// UpsertContact creates the contact, or on an email conflict finds the
// existing contact and patches it with the merged tag set.
func (c *Client) UpsertContact(ctx context.Context, contact domain.ContactUpsert) (string, error) {
	props := contactProperties{
		Email:     contact.Email,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Phone:     contact.Phone,
		Tags:      strings.Join(contact.Tags, ";"),
	}

	created, status, err := c.createContact(ctx, props)
	if err != nil {
		return "", err
	}
	if status != http.StatusConflict {
		return created.ID, nil
	}

	existing, err := c.searchByEmail(ctx, contact.Email)
	if err != nil {
		return "", fmt.Errorf("resolve contact conflict: %w", err)
	}
	props.Tags = mergeTags(existing.Properties.Tags, contact.Tags)
	if err := c.patchContact(ctx, existing.ID, props); err != nil {
		return "", err
	}
	return existing.ID, nil
}

func (c *Client) createContact(ctx context.Context, props contactProperties) (*contactObject, int, error) {
	body, err := json.Marshal(map[string]any{"properties": props})
	if err != nil {
		return nil, 0, fmt.Errorf("encode contact: %w", err)
	}
	resp, err := c.do(ctx, http.MethodPost, "/crm/v3/objects/contacts", body)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		var obj contactObject
		if err := json.NewDecoder(resp.Body).Decode(&obj); err != nil {
			return nil, 0, fmt.Errorf("decode contact response: %w", err)
		}
		return &obj, resp.StatusCode, nil
	case http.StatusConflict:
		return nil, http.StatusConflict, nil
	default:
		return nil, 0, fmt.Errorf("crm create contact returned status: %d", resp.StatusCode)
	}
}

func (c *Client) searchByEmail(ctx context.Context, email string) (*contactObject, error) {
	body, err := json.Marshal(map[string]any{
		"filterGroups": []any{
			map[string]any{
				"filters": []any{
					map[string]string{
						"propertyName": "email",
						"operator":     "EQ",
						"value":        email,
					},
				},
			},
		},
		"properties": []string{"email", "firstname", "lastname", "phone", "tags"},
		"limit":      1,
	})
	if err != nil {
		return nil, fmt.Errorf("encode search: %w", err)
	}
	resp, err := c.do(ctx, http.MethodPost, "/crm/v3/objects/contacts/search", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("crm search returned status: %d", resp.StatusCode)
	}
	var result struct {
		Results []contactObject `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	if len(result.Results) == 0 {
		return nil, domain.ErrNotFound
	}
	return &result.Results[0], nil
}

func (c *Client) patchContact(ctx context.Context, id string, props contactProperties) error {
	body, err := json.Marshal(map[string]any{"properties": props})
	if err != nil {
		return fmt.Errorf("encode contact patch: %w", err)
	}
	resp, err := c.do(ctx, http.MethodPatch, "/crm/v3/objects/contacts/"+id, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("crm patch contact returned status: %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach crm: %w", err)
	}
	return resp, nil
}

// mergeTags unions the semicolon-separated existing tag list with the new
// tags, preserving first-seen order.
func mergeTags(existing string, tags []string) string {
	seen := make(map[string]struct{})
	var merged []string
	for _, t := range strings.Split(existing, ";") {
		if t = strings.TrimSpace(t); t != "" {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				merged = append(merged, t)
			}
		}
	}
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				merged = append(merged, t)
			}
		}
	}
	return strings.Join(merged, ";")
}
