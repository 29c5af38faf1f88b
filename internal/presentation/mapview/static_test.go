package mapview

import (
	"net/url"
	"testing"

	"medtrack/config"
	"medtrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticMapURL(t *testing.T) {
	cfg := config.StaticMapConfig{
		BaseURL: "https://staticmap.openstreetmap.de/staticmap.php",
		Zoom:    15,
		Size:    "640x300",
	}

	raw := StaticMapURL(cfg, entity.Coordinate{Lat: 12.9352, Lng: 77.6146})

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "staticmap.openstreetmap.de", u.Host)
	assert.Equal(t, "12.9352,77.6146", u.Query().Get("center"))
	assert.Equal(t, "15", u.Query().Get("zoom"))
	assert.Equal(t, "640x300", u.Query().Get("size"))
	assert.Equal(t, "mapnik", u.Query().Get("maptype"))
	assert.Equal(t, "12.9352,77.6146,lightblue1", u.Query().Get("markers"))
}

func TestOpenInMapsURL(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/maps/search/?api=1&query=12.9352%2C77.6146",
		OpenInMapsURL(entity.Coordinate{Lat: 12.9352, Lng: 77.6146}),
	)
}

func TestNewFallback(t *testing.T) {
	noDestination := NewFallback(config.StaticMapConfig{}, nil)
	assert.Equal(t, PlaceholderNoDestination, noDestination.Placeholder)
	assert.Empty(t, noDestination.StaticMapURL)

	noBase := NewFallback(config.StaticMapConfig{}, &entity.Coordinate{Lat: 1, Lng: 2})
	assert.Equal(t, PlaceholderUnavailable, noBase.Placeholder)
	assert.NotEmpty(t, noBase.OpenInMapsURL)
}
