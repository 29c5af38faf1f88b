// Package google is a route provider backed by the Google Directions API.
package google

import (
	"context"

	"medtrack/internal/domain/entity"
	domainerrors "medtrack/internal/domain/errors"
	"medtrack/internal/errors"

	"googlemaps.github.io/maps"
)

// Client requests driving directions from Google
type Client struct {
	client *maps.Client
}

// NewClient creates a Directions client. Extra options are passed to maps.NewClient.
func NewClient(apiKey string, opts ...maps.ClientOption) (*Client, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create maps client")
	}

	return &Client{client: client}, nil
}

func (c *Client) Name() string {
	return entity.ProviderGoogle
}

// Route fetches the first driving route and decodes its overview polyline
func (c *Client) Route(ctx context.Context, from, to entity.Coordinate) (*entity.Route, error) {
	req := &maps.DirectionsRequest{
		Origin:       from.String(),
		Destination:  to.String(),
		Mode:         maps.TravelModeDriving,
		Alternatives: false,
	}

	routes, _, err := c.client.Directions(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		return nil, domainerrors.NewRoutingError(0, "directions", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, domainerrors.NewRoutingError(0, "bad response", nil)
	}

	first := routes[0]
	points, err := first.OverviewPolyline.Decode()
	if err != nil {
		return nil, domainerrors.NewRoutingError(0, "bad response", err)
	}

	route := &entity.Route{
		Provider: entity.ProviderGoogle,
		Polyline: make([]entity.Coordinate, 0, len(points)),
	}
	for _, p := range points {
		if c, ok := entity.NewCoordinate(p.Lat, p.Lng); ok {
			route.Polyline = append(route.Polyline, c)
		}
	}
	for _, leg := range first.Legs {
		route.DistanceMeters += float64(leg.Distance.Meters)
		route.DurationSeconds += leg.Duration.Seconds()
	}

	return route, nil
}
