// Package osrm is a route provider for OSRM-compatible HTTP routing services.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"medtrack/internal/domain/entity"
	domainerrors "medtrack/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// DefaultBaseURL is the public OSRM demo server
const DefaultBaseURL = "https://router.project-osrm.org"

// Client requests driving routes from an OSRM server
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an OSRM client. Request timeouts come from the caller's context.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) Name() string {
	return entity.ProviderOSRM
}

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64           `json:"distance"`
		Duration float64           `json:"duration"`
		Geometry *geojson.Geometry `json:"geometry"`
	} `json:"routes"`
}

// Route fetches the full-overview GeoJSON route between two coordinates
func (c *Client) Route(ctx context.Context, from, to entity.Coordinate) (*entity.Route, error) {
	url := fmt.Sprintf("%s/route/v1/driving/%s;%s?overview=full&geometries=geojson&alternatives=false&steps=false",
		c.baseURL, from.LngLat(), to.LngLat())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domainerrors.NewRoutingError(0, "request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil, domainerrors.NewRoutingError(resp.StatusCode, "", nil)
	}

	var body routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		return nil, domainerrors.NewRoutingError(0, "bad response", err)
	}

	if len(body.Routes) == 0 || body.Routes[0].Geometry == nil {
		return nil, domainerrors.NewRoutingError(0, "bad response", nil)
	}

	first := body.Routes[0]
	line, ok := first.Geometry.Coordinates.(orb.LineString)
	if !ok {
		return nil, domainerrors.NewRoutingError(0, "bad response", nil)
	}

	polyline := make([]entity.Coordinate, 0, len(line))
	for _, p := range line {
		if c, ok := entity.NewCoordinate(p.Lat(), p.Lon()); ok {
			polyline = append(polyline, c)
		}
	}

	return &entity.Route{
		Provider:        entity.ProviderOSRM,
		DistanceMeters:  first.Distance,
		DurationSeconds: first.Duration,
		Polyline:        polyline,
	}, nil
}
