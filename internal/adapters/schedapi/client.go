// Package schedapi is the HTTP client for the scheduling REST API, used by
// the booking flow core and the authoring URL checker. It normalizes the
// API's response envelope and maps conflict and not-found statuses onto the
// domain sentinels at the boundary.
package schedapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"schedlink/internal/domain"
)

type Client struct {
	baseURL string
	client  *http.Client
}

// New returns a client for the API at baseURL (no trailing slash needed).
func New(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{baseURL: baseURL, client: client}
}

// envelope is the API's standard {data, error} response wrapper.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// FetchEventType retrieves event type details by id. A missing event is
// reported as domain.ErrNotFound.
func (c *Client) FetchEventType(ctx context.Context, id int64) (*domain.EventType, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/events/%d", c.baseURL, id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event type: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api returned status: %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	var et domain.EventType
	if err := json.Unmarshal(env.Data, &et); err != nil {
		return nil, fmt.Errorf("failed to decode event type: %w", err)
	}
	return &et, nil
}

// CreateContact submits the invitee's details. A duplicate email (409) is
// reported as domain.ErrDuplicateEmail.
func (c *Client) CreateContact(ctx context.Context, name, email string) (*domain.Contact, error) {
	body, err := json.Marshal(map[string]string{"name": name, "email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/contacts", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		return nil, domain.ErrDuplicateEmail
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api returned status: %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	var contact domain.Contact
	if err := json.Unmarshal(env.Data, &contact); err != nil {
		return nil, fmt.Errorf("failed to decode contact: %w", err)
	}
	return &contact, nil
}

// ValidateURL checks availability of a candidate custom URL. The caller's
// bearer token authorizes the request.
func (c *Client) ValidateURL(ctx context.Context, token, customURL string) (*domain.URLValidation, error) {
	u := fmt.Sprintf("%s/api/events/validate-url?url=%s", c.baseURL, url.QueryEscape(customURL))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to validate url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api returned status: %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	var v domain.URLValidation
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return nil, fmt.Errorf("failed to decode validation: %w", err)
	}
	return &v, nil
}
