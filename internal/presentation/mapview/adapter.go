// Package mapview turns tracking geometry into render-ready map frames.
//
// An Adapter is owned by one tracking session. It decides per render pass
// whether a live map can be shown at all, and otherwise follows the rider
// until the user pans the map away, after which it waits for an explicit
// recenter.
package mapview

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"medtrack/config"
	"medtrack/internal/domain/entity"
	"medtrack/internal/domain/service"

	"github.com/paulmach/orb"
)

// State is the adapter's presentation state
type State string

const (
	StateUnavailable State = "unavailable"
	StateNoData      State = "no_data"
	StateFollowing   State = "following"
	StateManual      State = "manual"
)

// Line kinds
const (
	LinePolyline = "polyline"
	LineStraight = "straight"
)

const (
	MarkerDestination = "Delivery"
	MarkerRider       = "Rider"

	RouteColor          = "#168E6A"
	PolylineWidth       = 4
	StraightLineWidth   = 3
	EasingEaseOut       = "ease-out"
	DefaultEdgePadding  = 42
	DefaultAnimationDur = 650 * time.Millisecond

	minRegionDelta   = 0.01
	regionSpanFactor = 1.8
)

// Options configures rendering
type Options struct {
	EdgePadding       int
	AnimationDuration time.Duration
}

// OptionsFromConfig reads rendering options, keeping defaults for unset values
func OptionsFromConfig(cfg *config.MapConfig) Options {
	opts := Options{EdgePadding: DefaultEdgePadding, AnimationDuration: DefaultAnimationDur}
	if cfg == nil {
		return opts
	}
	if cfg.EdgePadding > 0 {
		opts.EdgePadding = cfg.EdgePadding
	}
	if cfg.AnimationMs > 0 {
		opts.AnimationDuration = time.Duration(cfg.AnimationMs) * time.Millisecond
	}

	return opts
}

// Input is what one render pass draws. Rider is the display position, after
// snapping. Route is the simplified polyline.
type Input struct {
	Rider       *entity.Coordinate
	Destination *entity.Coordinate
	Route       []entity.Coordinate
}

func (in Input) equal(other Input) bool {
	return equalCoord(in.Rider, other.Rider) &&
		equalCoord(in.Destination, other.Destination) &&
		slices.Equal(in.Route, other.Route)
}

func equalCoord(a, b *entity.Coordinate) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

// Animation moves a marker from its previous displayed position
type Animation struct {
	From       entity.Coordinate `json:"from"`
	To         entity.Coordinate `json:"to"`
	DurationMs int64             `json:"duration_ms"`
	Easing     string            `json:"easing"`
}

type Marker struct {
	Title     string            `json:"title"`
	Position  entity.Coordinate `json:"position"`
	Animation *Animation        `json:"animation,omitempty"`
}

type Line struct {
	Kind   string              `json:"kind"`
	Points []entity.Coordinate `json:"points"`
	Width  int                 `json:"width"`
	Color  string              `json:"color"`
}

// Region is a camera region centered on Center
type Region struct {
	Center         entity.Coordinate `json:"center"`
	LatitudeDelta  float64           `json:"latitude_delta"`
	LongitudeDelta float64           `json:"longitude_delta"`
}

// Viewport asks the client to fit the camera around Points
type Viewport struct {
	Points      []entity.Coordinate `json:"points"`
	SouthWest   entity.Coordinate   `json:"south_west"`
	NorthEast   entity.Coordinate   `json:"north_east"`
	EdgePadding int                 `json:"edge_padding"`
	Animated    bool                `json:"animated"`
}

// Frame is the output of a render pass. Only Unavailable frames are empty.
type Frame struct {
	State         State     `json:"state"`
	InitialRegion *Region   `json:"initial_region,omitempty"`
	Destination   *Marker   `json:"destination,omitempty"`
	Rider         *Marker   `json:"rider,omitempty"`
	Route         *Line     `json:"route,omitempty"`
	Fit           *Viewport `json:"fit,omitempty"`

	// Refit is set when this pass asks the client to apply Fit now.
	// FitRevision increases with every such pass.
	Refit       bool `json:"refit"`
	FitRevision int  `json:"fit_revision"`

	ShowRecenter bool `json:"show_recenter"`
}

// Adapter is the per-session presentation state machine
type Adapter struct {
	mu sync.Mutex

	live     bool
	animated bool
	opts     Options

	manual      bool
	last        Input
	rendered    bool
	lastState   State
	lastRider   *entity.Coordinate
	fitRevision int
}

// NewAdapter evaluates capability once. A capability that panics is treated
// as unavailable.
func NewAdapter(capability service.MapCapability, opts Options, logger *slog.Logger) *Adapter {
	a := &Adapter{opts: opts, lastState: StateNoData}
	a.live, a.animated = evaluate(capability, logger)
	if !a.live {
		a.lastState = StateUnavailable
	}

	return a
}

func evaluate(capability service.MapCapability, logger *slog.Logger) (live, animated bool) {
	defer func() {
		if r := recover(); r != nil {
			live, animated = false, false
			if logger != nil {
				logger.Warn("map capability check panicked", slog.Any("panic", r))
			}
		}
	}()

	if capability == nil {
		return false, false
	}

	live = capability.LiveMapAvailable()

	return live, live && capability.AnimatedMarkers()
}

// State returns the state of the most recent render pass
func (a *Adapter) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.lastState
}

// Render draws in. The viewport is re-fitted when following and in differs
// from the previous pass.
func (a *Adapter) Render(in Input) Frame {
	a.mu.Lock()
	defer a.mu.Unlock()

	changed := !a.rendered || !in.equal(a.last)

	return a.renderLocked(in, changed)
}

// Pan records a user pan gesture. It only leaves Following.
func (a *Adapter) Pan() State {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.lastState == StateFollowing {
		a.manual = true
		a.lastState = StateManual
	}

	return a.lastState
}

// Recenter returns to Following and re-fits immediately
func (a *Adapter) Recenter() Frame {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.manual = false

	return a.renderLocked(a.last, true)
}

func (a *Adapter) renderLocked(in Input, refit bool) Frame {
	a.last = cloneInput(in)
	a.rendered = true

	state := a.stateFor(in)
	a.lastState = state

	frame := Frame{State: state, FitRevision: a.fitRevision}
	if state == StateUnavailable || state == StateNoData {
		a.lastRider = nil

		return frame
	}

	frame.InitialRegion = initialRegion(in.Rider, in.Destination)

	if in.Destination != nil {
		frame.Destination = &Marker{Title: MarkerDestination, Position: *in.Destination}
	}
	if in.Rider != nil {
		frame.Rider = &Marker{Title: MarkerRider, Position: *in.Rider}
		if a.animated && a.lastRider != nil && *a.lastRider != *in.Rider {
			frame.Rider.Animation = &Animation{
				From:       *a.lastRider,
				To:         *in.Rider,
				DurationMs: a.opts.AnimationDuration.Milliseconds(),
				Easing:     EasingEaseOut,
			}
		}
		rider := *in.Rider
		a.lastRider = &rider
	} else {
		a.lastRider = nil
	}

	frame.Route = routeLine(in)

	if state == StateManual {
		frame.ShowRecenter = true

		return frame
	}

	frame.Fit = a.viewport(in)
	if frame.Fit != nil && refit {
		a.fitRevision++
		frame.Refit = true
		frame.FitRevision = a.fitRevision
	}

	return frame
}

func (a *Adapter) stateFor(in Input) State {
	switch {
	case !a.live:
		return StateUnavailable
	case in.Rider == nil && in.Destination == nil:
		return StateNoData
	case a.manual:
		return StateManual
	default:
		return StateFollowing
	}
}

func routeLine(in Input) *Line {
	if len(in.Route) >= 2 {
		return &Line{Kind: LinePolyline, Points: in.Route, Width: PolylineWidth, Color: RouteColor}
	}
	if in.Rider != nil && in.Destination != nil {
		return &Line{
			Kind:   LineStraight,
			Points: []entity.Coordinate{*in.Rider, *in.Destination},
			Width:  StraightLineWidth,
			Color:  RouteColor,
		}
	}

	return nil
}

// viewport fits the route when renderable, else rider and destination.
// A single point has no extent to fit.
func (a *Adapter) viewport(in Input) *Viewport {
	var points []entity.Coordinate
	switch {
	case len(in.Route) >= 2:
		points = in.Route
	case in.Rider != nil && in.Destination != nil:
		points = []entity.Coordinate{*in.Rider, *in.Destination}
	default:
		return nil
	}

	mp := make(orb.MultiPoint, len(points))
	for i, p := range points {
		mp[i] = p.Point()
	}
	bound := mp.Bound()

	return &Viewport{
		Points:      points,
		SouthWest:   entity.CoordinateFromPoint(bound.Min),
		NorthEast:   entity.CoordinateFromPoint(bound.Max),
		EdgePadding: a.opts.EdgePadding,
		Animated:    true,
	}
}

// initialRegion centers on the present points with a span-proportional zoom
func initialRegion(rider, destination *entity.Coordinate) *Region {
	mp := make(orb.MultiPoint, 0, 2)
	for _, c := range []*entity.Coordinate{rider, destination} {
		if c != nil {
			mp = append(mp, c.Point())
		}
	}
	if len(mp) == 0 {
		return nil
	}

	var sumLat, sumLng float64
	for _, p := range mp {
		sumLat += p.Lat()
		sumLng += p.Lon()
	}
	n := float64(len(mp))
	bound := mp.Bound()

	return &Region{
		Center:         entity.Coordinate{Lat: sumLat / n, Lng: sumLng / n},
		LatitudeDelta:  max(minRegionDelta, (bound.Max.Lat()-bound.Min.Lat())*regionSpanFactor),
		LongitudeDelta: max(minRegionDelta, (bound.Max.Lon()-bound.Min.Lon())*regionSpanFactor),
	}
}

func cloneInput(in Input) Input {
	out := Input{Route: slices.Clone(in.Route)}
	if in.Rider != nil {
		rider := *in.Rider
		out.Rider = &rider
	}
	if in.Destination != nil {
		destination := *in.Destination
		out.Destination = &destination
	}

	return out
}
