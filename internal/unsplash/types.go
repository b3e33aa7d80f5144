package unsplash

import (
	"strings"

	"github.com/llehouerou/picsearch/internal/gallery"
)

// searchResponse is the /search/photos response body.
type searchResponse struct {
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	Results    []Photo `json:"results"`
}

// errorResponse is returned by the API alongside non-2xx statuses.
type errorResponse struct {
	Errors []string `json:"errors"`
}

// Photo is a single search result.
type Photo struct {
	ID             string `json:"id"`
	Description    string `json:"description"`
	AltDescription string `json:"alt_description"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Color          string `json:"color"`
	User           User   `json:"user"`
	URLs           URLs   `json:"urls"`
}

// User is the photographer.
type User struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// URLs holds the rendition links for a photo.
type URLs struct {
	Raw     string `json:"raw"`
	Full    string `json:"full"`
	Regular string `json:"regular"`
	Small   string `json:"small"`
	Thumb   string `json:"thumb"`
}

// Normalize converts the API record into a gallery image.
// The regular rendition is used as the thumbnail and full as the viewer image.
func (p *Photo) Normalize() gallery.Image {
	desc := strings.TrimSpace(p.Description)
	if desc == "" {
		desc = strings.TrimSpace(p.AltDescription)
	}
	author := p.User.Name
	if author == "" {
		author = p.User.Username
	}
	return gallery.Image{
		ID:          p.ID,
		ThumbURL:    p.URLs.Regular,
		FullURL:     p.URLs.Full,
		Description: desc,
		Author:      author,
		Width:       p.Width,
		Height:      p.Height,
		Color:       p.Color,
	}
}
