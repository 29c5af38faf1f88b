package mapview

import (
	"net/url"
	"strconv"

	"medtrack/config"
	"medtrack/internal/domain/entity"
)

const (
	PlaceholderUnavailable   = "Map preview unavailable."
	PlaceholderNoDestination = "Map preview will appear once we have a destination."

	openInMapsBaseURL = "https://www.google.com/maps/search/"
	staticMarkerStyle = "lightblue1"
)

// Fallback is shown instead of a live map
type Fallback struct {
	StaticMapURL  string `json:"static_map_url,omitempty"`
	OpenInMapsURL string `json:"open_in_maps_url,omitempty"`
	Placeholder   string `json:"placeholder,omitempty"`
}

// NewFallback builds the static fallback for a destination. Without a
// destination only a placeholder is available.
func NewFallback(cfg config.StaticMapConfig, destination *entity.Coordinate) Fallback {
	if destination == nil {
		return Fallback{Placeholder: PlaceholderNoDestination}
	}

	out := Fallback{
		StaticMapURL:  StaticMapURL(cfg, *destination),
		OpenInMapsURL: OpenInMapsURL(*destination),
	}
	if out.StaticMapURL == "" {
		out.Placeholder = PlaceholderUnavailable
	}

	return out
}

// StaticMapURL renders an OpenStreetMap static image centered on destination
// with a single marker
func StaticMapURL(cfg config.StaticMapConfig, destination entity.Coordinate) string {
	if cfg.BaseURL == "" {
		return ""
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return ""
	}

	center := destination.String()
	q := u.Query()
	q.Set("center", center)
	q.Set("zoom", strconv.Itoa(cfg.Zoom))
	q.Set("size", cfg.Size)
	q.Set("maptype", "mapnik")
	q.Set("markers", center+","+staticMarkerStyle)
	u.RawQuery = q.Encode()

	return u.String()
}

// OpenInMapsURL links to the destination in Google Maps
func OpenInMapsURL(destination entity.Coordinate) string {
	return openInMapsBaseURL + "?" + url.Values{
		"api":   {"1"},
		"query": {destination.String()},
	}.Encode()
}
