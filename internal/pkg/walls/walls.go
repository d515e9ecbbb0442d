// Package walls is the client for the upstream wall API that owns comments.
package walls

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Comment is one wall comment as the upstream API reports it.
type Comment struct {
	ID         int     `json:"id"`
	Body       string  `json:"body"`
	Feedback   string  `json:"feedback"` // "confirmation" | "report"
	ReportType *string `json:"report_type"`
	CreatedAt  string  `json:"created_at"`
}

// Wall is the upstream wall object with its comment collection.
type Wall struct {
	ID       int       `json:"id"`
	Comments []Comment `json:"comments"`
}

// Client calls the wall API with a bearer token. Timeouts are left to the
// hosting platform's execution deadline.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{},
	}
}

// LoadWall fetches a wall by id. A 404 or null payload means the wall does
// not exist and yields (nil, nil); other non-2xx statuses are errors.
func (c *Client) LoadWall(ctx context.Context, id int) (*Wall, error) {
	if c.token == "" {
		return nil, errors.New("wall API token is not configured")
	}

	url := fmt.Sprintf("%s/walls/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("wall API request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, nil
	}

	var wall Wall
	if err := json.Unmarshal(trimmed, &wall); err != nil {
		return nil, fmt.Errorf("decode wall %d: %w", id, err)
	}
	return &wall, nil
}
