// Package api provides the HTTP client for remote station lists.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	requestTimeout = 30 * time.Second
	userAgent      = "radio-cli"
)

// ErrNotFound is returned when the server reports the list does not exist.
var ErrNotFound = errors.New("station list not found")

// ListClient downloads station list documents over HTTP.
type ListClient struct {
	client *resty.Client
}

// NewListClient creates a new client with sensible defaults.
func NewListClient() *ListClient {
	return &ListClient{
		client: resty.New().
			SetTimeout(requestTimeout).
			SetHeader("User-Agent", userAgent).
			SetHeader("Accept", "application/json"),
	}
}

// FetchList returns the raw body served at url. The body is not parsed here
// so callers can cache exactly what the server sent.
func (c *ListClient) FetchList(url string) ([]byte, error) {
	resp, err := c.client.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch station list: %w", err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("server returned status %d: %s", resp.StatusCode(), resp.Status())
	}

	return resp.Body(), nil
}
