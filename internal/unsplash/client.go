// Package unsplash provides a client for the Unsplash photo search API.
package unsplash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/picsearch/internal/gallery"
)

var (
	// ErrUnauthorized is returned when the API rejects the access key.
	ErrUnauthorized = errors.New("access key rejected")

	// ErrNotFound is returned when an image URL does not exist.
	ErrNotFound = errors.New("image not found")

	// ErrImageTooLarge is returned when a download exceeds the size limit.
	ErrImageTooLarge = errors.New("image too large")
)

const (
	DefaultBaseURL = "https://api.unsplash.com"
	userAgent      = "picsearch/0.1 (https://github.com/llehouerou/picsearch)"
	apiVersion     = "v1"

	// maxImageBytes bounds a single image download.
	maxImageBytes = 32 << 20
)

// Client is an Unsplash API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
	perPage    int
	maxImage   int64
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used by tests and proxies).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithPerPage sets the number of results requested per page.
func WithPerPage(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.perPage = n
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a new client using accessKey as the client_id credential.
func New(accessKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:   DefaultBaseURL,
		accessKey: accessKey,
		perPage:   10,
		maxImage:  maxImageBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchPage is one page of search results.
type SearchPage struct {
	Photos     []Photo
	Total      int
	TotalPages int
}

// Search fetches one page of photos matching query. Pages are 1-based.
func (c *Client) Search(ctx context.Context, query string, page int) (*SearchPage, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(c.perPage))
	params.Set("client_id", c.accessKey)

	reqURL := fmt.Sprintf("%s/search/photos?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &SearchPage{
		Photos:     result.Results,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	}, nil
}

// SearchImages fetches one page and returns its normalized records together
// with the total page count reported by the API.
func (c *Client) SearchImages(ctx context.Context, query string, page int) ([]gallery.Image, int, error) {
	p, err := c.Search(ctx, query, page)
	if err != nil {
		return nil, 0, err
	}
	images := make([]gallery.Image, 0, len(p.Photos))
	for i := range p.Photos {
		images = append(images, p.Photos[i].Normalize())
	}
	return images, p.TotalPages, nil
}

// Download fetches the raw bytes of an image URL.
func (c *Client) Download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxImage+1))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if int64(len(data)) > c.maxImage {
		return nil, fmt.Errorf("%w: over %s", ErrImageTooLarge, humanize.IBytes(uint64(c.maxImage)))
	}

	return data, nil
}

// statusError builds an error from a non-2xx response, including the API's
// error messages when the body carries them.
func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && len(apiErr.Errors) > 0 {
		return fmt.Errorf("unexpected status: %s: %s", resp.Status, strings.Join(apiErr.Errors, "; "))
	}
	return fmt.Errorf("unexpected status: %s", resp.Status)
}
