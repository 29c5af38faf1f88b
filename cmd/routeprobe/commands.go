package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"medtrack/config"
	"medtrack/internal/domain/entity"
	"medtrack/internal/errors"
	"medtrack/internal/geometry"
	"medtrack/internal/infra/routing"
	"medtrack/internal/presentation/mapview"
	"medtrack/internal/util"
)

type routeFlags struct {
	cmd       *flag.FlagSet
	from      *string
	to        *string
	provider  *string
	osrmURL   *string
	googleKey *string
	timeout   *time.Duration
	points    *bool
}

type snapFlags struct {
	cmd   *flag.FlagSet
	rider *string
	to    *string
	max   *float64
}

type staticFlags struct {
	cmd  *flag.FlagSet
	dest *string
	zoom *int
}

func handleRoute(ctx context.Context, flags *probeFlags) error {
	f := flags.Route
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse route flags")
	}

	from, err := parseCoordinate(*f.from)
	if err != nil {
		return errors.Wrap(err, "--from")
	}
	to, err := parseCoordinate(*f.to)
	if err != nil {
		return errors.Wrap(err, "--to")
	}

	cfg := probeConfig(f)
	route, err := fetchRoute(ctx, cfg, from, to)
	if err != nil {
		return err
	}

	display := geometry.NewReconciler(cfg.Geometry).SimplifyRoute(route)
	eta, _ := route.ETAMinutes()

	fmt.Printf("Provider:  %s\n", route.Provider)
	fmt.Printf("Distance:  %s\n", util.FormatDistance(route.DistanceMeters))
	fmt.Printf("Duration:  %s (ETA %d min)\n", util.FormatDuration(time.Duration(route.DurationSeconds*float64(time.Second))), eta)
	fmt.Printf("Polyline:  %d points, %d after simplification\n", len(route.Polyline), len(display.Polyline))

	if *f.points {
		for _, p := range display.Polyline {
			fmt.Println(p.String())
		}
	}

	return nil
}

func handleSnap(ctx context.Context, flags *probeFlags) error {
	f := flags.Snap
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse snap flags")
	}

	rider, err := parseCoordinate(*f.rider)
	if err != nil {
		return errors.Wrap(err, "--rider")
	}
	to, err := parseCoordinate(*f.to)
	if err != nil {
		return errors.Wrap(err, "--to")
	}

	cfg := probeConfig(flags.Route)
	cfg.Geometry.SnapMaxMeters = *f.max
	cfg.ApplyDefaults()

	route, err := fetchRoute(ctx, cfg, rider, to)
	if err != nil {
		return err
	}

	result := geometry.NewReconciler(cfg.Geometry).Reconcile(rider, route.Polyline)

	fmt.Printf("Raw:       %s\n", result.Raw)
	fmt.Printf("Display:   %s\n", result.Display)
	fmt.Printf("Snapped:   %t (%s off route)\n", result.Snapped, util.FormatDistance(result.OffsetMeters))

	return nil
}

func handleStatic(flags *probeFlags) error {
	f := flags.Static
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse static flags")
	}

	dest, err := parseCoordinate(*f.dest)
	if err != nil {
		return errors.Wrap(err, "--dest")
	}

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	if *f.zoom > 0 {
		cfg.Map.StaticMap.Zoom = *f.zoom
	}

	fallback := mapview.NewFallback(cfg.Map.StaticMap, &dest)

	fmt.Printf("Static map:   %s\n", fallback.StaticMapURL)
	fmt.Printf("Open in maps: %s\n", fallback.OpenInMapsURL)

	return nil
}

// probeConfig applies the route flags over the service defaults
func probeConfig(f routeFlags) *config.Config {
	cfg := &config.Config{}
	cfg.Routing = &config.RoutingConfig{
		Provider:     *f.provider,
		OSRMBaseURL:  *f.osrmURL,
		GoogleAPIKey: *f.googleKey,
		Timeout:      *f.timeout,
	}
	cfg.ApplyDefaults()

	return cfg
}

func fetchRoute(ctx context.Context, cfg *config.Config, from, to entity.Coordinate) (*entity.Route, error) {
	provider, err := routing.NewProvider(cfg)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	fetcher := routing.NewFetcher(provider, nil, cfg.Routing, logger)

	route, err := fetcher.Fetch(ctx, from, to)
	if err != nil {
		return nil, errors.Wrapf(err, "%s route %s -> %s", provider.Name(), from, to)
	}

	return route, nil
}

// parseCoordinate reads "lat,lng"
func parseCoordinate(s string) (entity.Coordinate, error) {
	latStr, lngStr, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return entity.Coordinate{}, errors.Errorf("expected lat,lng, got %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "latitude")
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "longitude")
	}

	c, ok := entity.NewCoordinate(lat, lng)
	if !ok {
		return entity.Coordinate{}, errors.Errorf("coordinate %q is not finite", s)
	}

	return c, nil
}
