// Package client provides a REST client for the photo gallery service.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTitle is used for photo records that carry no title field.
const DefaultTitle = "(untitled)"

// Client is a REST client for the photo gallery service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new gallery client with the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Photo is a single gallery photo. URL and Size come straight from the
// service; Title falls back to DefaultTitle when the record has none.
type Photo struct {
	URL   string
	Size  int // KB
	Title string
}

// photoRecord mirrors the wire format. Pointer fields distinguish
// absent from zero-valued.
type photoRecord struct {
	URL   *string `json:"url"`
	Size  *int    `json:"size"`
	Title *string `json:"title"`
}

// UnmarshalJSON decodes a photo record. The url and size fields are
// required; a missing or mistyped field fails the decode.
func (p *Photo) UnmarshalJSON(data []byte) error {
	var rec photoRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	if rec.URL == nil {
		return fmt.Errorf("photo record missing required field %q", "url")
	}
	if rec.Size == nil {
		return fmt.Errorf("photo record missing required field %q", "size")
	}

	p.URL = *rec.URL
	p.Size = *rec.Size
	if rec.Title != nil {
		p.Title = *rec.Title
	} else {
		p.Title = DefaultTitle
	}
	return nil
}

// DecodePhotos decodes a JSON array of photo records. The decode is
// atomic: if any element fails, no photos are returned.
func DecodePhotos(data []byte) ([]Photo, error) {
	var photos []Photo
	if err := json.Unmarshal(data, &photos); err != nil {
		return nil, fmt.Errorf("failed to decode photo list: %w", err)
	}
	return photos, nil
}

// APIError represents an error response from the gallery service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gallery api error (status %d): %s", e.StatusCode, e.Message)
}

// doRequest performs an HTTP GET and hands the response body to decode.
func (c *Client) doRequest(path string, decode func([]byte) error) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := string(respBody)
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    message,
		}
	}

	return decode(respBody)
}

// ListPhotos fetches the photo list from the service.
func (c *Client) ListPhotos() ([]Photo, error) {
	var photos []Photo
	err := c.doRequest("/photos/list.json", func(body []byte) error {
		decoded, err := DecodePhotos(body)
		if err != nil {
			return err
		}
		photos = decoded
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}

// URLPrefix returns the base URL all photo assets hang off of,
// including the trailing slash.
func (c *Client) URLPrefix() string {
	return c.baseURL + "/photos/"
}

// ThumbURL returns the URL of a photo's thumbnail asset.
func (c *Client) ThumbURL(name string) string {
	return c.URLPrefix() + name
}

// LargeURL returns the URL of a photo's full-size asset, the variant
// the canvas renderer draws from.
func (c *Client) LargeURL(name string) string {
	return c.URLPrefix() + "large/" + name
}
