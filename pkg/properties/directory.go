// Package properties serves the static property directory used by the
// hotel-search and preview endpoints. The dataset is fixed; search is a
// case-insensitive substring match over name, city and hotel id with
// simple offset pagination.
package properties

import (
	"errors"
	"strings"

	"github.com/extramock/extramock/pkg/rooms"
)

// Pagination bounds.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ErrNotFound is returned when a hotel id has no detail record.
var ErrNotFound = errors.New("property not found")

// Location is a property address.
type Location struct {
	City      string  `json:"city"`
	State     string  `json:"state"`
	Country   string  `json:"country"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Pincode   string  `json:"pincode,omitempty"`
}

// Property is a search-result summary.
type Property struct {
	HotelID          string   `json:"hotel_id"`
	Name             string   `json:"name"`
	ChainName        string   `json:"chain_name"`
	StarRating       int      `json:"star_rating"`
	Location         Location `json:"location"`
	Images           []string `json:"images"`
	OnboardingStatus string   `json:"onboarding_status"`
}

// ImageGroup is a category of property photos.
type ImageGroup struct {
	Category string   `json:"category"`
	Images   []string `json:"images"`
}

// Detail is the full preview record for one property, including the demo
// room inventory that seeds room imports.
type Detail struct {
	HotelID    string          `json:"hotel_id"`
	Name       string          `json:"name"`
	ChainName  string          `json:"chain_name"`
	StarRating int             `json:"star_rating"`
	Location   Location        `json:"location"`
	Images     []ImageGroup    `json:"images"`
	Amenities  []rooms.Amenity `json:"amenities"`
	Rooms      []rooms.Room    `json:"rooms"`
}

// Pagination describes one page of search results.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

// SearchResult is the hotel-search response payload.
type SearchResult struct {
	Properties  []Property `json:"properties"`
	Pagination  Pagination `json:"pagination"`
	SearchQuery *string    `json:"search_query"`
}

// Directory resolves searches and previews against the static dataset.
// It is read-only after construction, so no locking is needed.
type Directory struct {
	list    []Property
	details map[string]*Detail
}

// NewDirectory builds the directory over the built-in demo dataset.
func NewDirectory() *Directory {
	return &Directory{list: demoProperties, details: demoDetails}
}

// Search filters the directory by a lowercase substring over name, city
// and hotel id, then paginates. Page is floored at 1; limit is clamped to
// [1, 100] with a default of 20.
func (d *Directory) Search(query string, page, limit int) SearchResult {
	if page < 1 {
		page = 1
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	filtered := d.list
	if needle != "" {
		filtered = nil
		for _, p := range d.list {
			if strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Location.City), needle) ||
				strings.Contains(strings.ToLower(p.HotelID), needle) {
				filtered = append(filtered, p)
			}
		}
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	paged := filtered[start:end]
	if paged == nil {
		paged = []Property{}
	}

	result := SearchResult{
		Properties: paged,
		Pagination: Pagination{Total: total, Page: page, Limit: limit, TotalPages: totalPages},
	}
	if needle != "" {
		result.SearchQuery = &needle
	}
	return result
}

// Preview returns the full detail record for a hotel id.
func (d *Directory) Preview(hotelID string) (*Detail, error) {
	detail, ok := d.details[hotelID]
	if !ok {
		return nil, ErrNotFound
	}
	return detail, nil
}
