package mapview

import (
	"log/slog"
	"testing"
	"time"

	"medtrack/config"
	"medtrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCapability struct {
	live     bool
	animated bool
	panics   bool
}

func (s stubCapability) Name() string { return "stub" }

func (s stubCapability) LiveMapAvailable() bool {
	if s.panics {
		panic("native view manager missing")
	}

	return s.live
}

func (s stubCapability) AnimatedMarkers() bool { return s.animated }

var (
	rider       = entity.Coordinate{Lat: 12.9716, Lng: 77.5946}
	destination = entity.Coordinate{Lat: 12.9352, Lng: 77.6146}
	route       = []entity.Coordinate{rider, {Lat: 12.96, Lng: 77.60}, destination}
)

func ptr(c entity.Coordinate) *entity.Coordinate {
	return &c
}

func liveAdapter(animated bool) *Adapter {
	return NewAdapter(stubCapability{live: true, animated: animated}, OptionsFromConfig(nil), slog.Default())
}

func TestAdapter_Unavailable(t *testing.T) {
	tests := []struct {
		name       string
		capability stubCapability
	}{
		{name: "capability negative", capability: stubCapability{live: false}},
		{name: "capability panics", capability: stubCapability{panics: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a *Adapter
			require.NotPanics(t, func() {
				a = NewAdapter(tt.capability, OptionsFromConfig(nil), slog.Default())
			})

			frame := a.Render(Input{Rider: ptr(rider), Destination: ptr(destination), Route: route})

			assert.Equal(t, StateUnavailable, frame.State)
			assert.Nil(t, frame.Rider)
			assert.Nil(t, frame.Destination)
			assert.Nil(t, frame.Route)
			assert.Nil(t, frame.Fit)
		})
	}
}

func TestAdapter_NilCapabilityIsUnavailable(t *testing.T) {
	a := NewAdapter(nil, OptionsFromConfig(nil), nil)

	assert.Equal(t, StateUnavailable, a.Render(Input{Destination: ptr(destination)}).State)
}

func TestAdapter_NoData(t *testing.T) {
	a := liveAdapter(true)

	frame := a.Render(Input{})

	assert.Equal(t, StateNoData, frame.State)
	assert.Nil(t, frame.InitialRegion)
	assert.Nil(t, frame.Route)
}

func TestAdapter_FollowingFitsRoute(t *testing.T) {
	a := liveAdapter(true)

	frame := a.Render(Input{Rider: ptr(rider), Destination: ptr(destination), Route: route})

	assert.Equal(t, StateFollowing, frame.State)
	require.NotNil(t, frame.Destination)
	assert.Equal(t, MarkerDestination, frame.Destination.Title)
	require.NotNil(t, frame.Rider)
	assert.Equal(t, MarkerRider, frame.Rider.Title)
	assert.Nil(t, frame.Rider.Animation, "first render has nothing to animate from")

	require.NotNil(t, frame.Route)
	assert.Equal(t, LinePolyline, frame.Route.Kind)
	assert.Equal(t, PolylineWidth, frame.Route.Width)
	assert.Equal(t, RouteColor, frame.Route.Color)

	require.NotNil(t, frame.Fit)
	assert.True(t, frame.Refit)
	assert.Equal(t, 1, frame.FitRevision)
	assert.Equal(t, route, frame.Fit.Points)
	assert.Equal(t, DefaultEdgePadding, frame.Fit.EdgePadding)
	assert.InDelta(t, 12.9352, frame.Fit.SouthWest.Lat, 1e-9)
	assert.InDelta(t, 77.5946, frame.Fit.SouthWest.Lng, 1e-9)
	assert.InDelta(t, 12.9716, frame.Fit.NorthEast.Lat, 1e-9)
	assert.InDelta(t, 77.6146, frame.Fit.NorthEast.Lng, 1e-9)
	assert.False(t, frame.ShowRecenter)
}

func TestAdapter_StraightLineFallback(t *testing.T) {
	a := liveAdapter(false)

	frame := a.Render(Input{Rider: ptr(rider), Destination: ptr(destination), Route: route[:1]})

	require.NotNil(t, frame.Route)
	assert.Equal(t, LineStraight, frame.Route.Kind)
	assert.Equal(t, StraightLineWidth, frame.Route.Width)
	assert.Equal(t, []entity.Coordinate{rider, destination}, frame.Route.Points)
	require.NotNil(t, frame.Fit)
	assert.Equal(t, []entity.Coordinate{rider, destination}, frame.Fit.Points)
}

func TestAdapter_DestinationOnly(t *testing.T) {
	a := liveAdapter(true)

	frame := a.Render(Input{Destination: ptr(destination)})

	assert.Equal(t, StateFollowing, frame.State)
	assert.Nil(t, frame.Rider)
	assert.Nil(t, frame.Route)
	assert.Nil(t, frame.Fit)
	require.NotNil(t, frame.InitialRegion)
	assert.Equal(t, destination, frame.InitialRegion.Center)
	assert.Equal(t, 0.01, frame.InitialRegion.LatitudeDelta)
}

func TestAdapter_InitialRegionSpan(t *testing.T) {
	a := liveAdapter(true)

	frame := a.Render(Input{Rider: ptr(rider), Destination: ptr(destination)})

	require.NotNil(t, frame.InitialRegion)
	assert.InDelta(t, (12.9716+12.9352)/2, frame.InitialRegion.Center.Lat, 1e-9)
	assert.InDelta(t, (12.9716-12.9352)*1.8, frame.InitialRegion.LatitudeDelta, 1e-9)
	assert.InDelta(t, (77.6146-77.5946)*1.8, frame.InitialRegion.LongitudeDelta, 1e-9)
}

func TestAdapter_RefitsOnlyWhenInputsChange(t *testing.T) {
	a := liveAdapter(true)
	in := Input{Rider: ptr(rider), Destination: ptr(destination), Route: route}

	first := a.Render(in)
	again := a.Render(in)

	assert.True(t, first.Refit)
	assert.False(t, again.Refit)
	assert.Equal(t, first.FitRevision, again.FitRevision)
	assert.NotNil(t, again.Fit)

	moved := ptr(entity.Coordinate{Lat: 12.9650, Lng: 77.5980})
	next := a.Render(Input{Rider: moved, Destination: ptr(destination), Route: route})

	assert.True(t, next.Refit)
	assert.Equal(t, first.FitRevision+1, next.FitRevision)
}

func TestAdapter_AnimatesRider(t *testing.T) {
	a := NewAdapter(stubCapability{live: true, animated: true},
		OptionsFromConfig(&config.MapConfig{AnimationMs: 800}), slog.Default())

	a.Render(Input{Rider: ptr(rider), Destination: ptr(destination)})

	moved := entity.Coordinate{Lat: 12.9650, Lng: 77.5980}
	frame := a.Render(Input{Rider: &moved, Destination: ptr(destination)})

	require.NotNil(t, frame.Rider.Animation)
	assert.Equal(t, rider, frame.Rider.Animation.From)
	assert.Equal(t, moved, frame.Rider.Animation.To)
	assert.Equal(t, (800 * time.Millisecond).Milliseconds(), frame.Rider.Animation.DurationMs)
	assert.Equal(t, EasingEaseOut, frame.Rider.Animation.Easing)
	assert.Equal(t, moved, frame.Rider.Position)
}

func TestAdapter_StaticRiderWithoutAnimationSupport(t *testing.T) {
	a := liveAdapter(false)

	a.Render(Input{Rider: ptr(rider), Destination: ptr(destination)})
	frame := a.Render(Input{Rider: ptr(entity.Coordinate{Lat: 12.9650, Lng: 77.5980}), Destination: ptr(destination)})

	require.NotNil(t, frame.Rider)
	assert.Nil(t, frame.Rider.Animation)
}

func TestAdapter_PanAndRecenter(t *testing.T) {
	a := liveAdapter(true)
	in := Input{Rider: ptr(rider), Destination: ptr(destination), Route: route}

	first := a.Render(in)
	require.Equal(t, StateFollowing, first.State)

	assert.Equal(t, StateManual, a.Pan())
	assert.Equal(t, StateManual, a.State())

	// new positions while manual never move the camera
	moved := ptr(entity.Coordinate{Lat: 12.9650, Lng: 77.5980})
	manual := a.Render(Input{Rider: moved, Destination: ptr(destination), Route: route})

	assert.Equal(t, StateManual, manual.State)
	assert.True(t, manual.ShowRecenter)
	assert.Nil(t, manual.Fit)
	assert.False(t, manual.Refit)
	require.NotNil(t, manual.Rider)
	assert.Equal(t, *moved, manual.Rider.Position)

	recentered := a.Recenter()

	assert.Equal(t, StateFollowing, recentered.State)
	assert.True(t, recentered.Refit)
	assert.Greater(t, recentered.FitRevision, first.FitRevision)
	assert.False(t, recentered.ShowRecenter)
	require.NotNil(t, recentered.Rider)
	assert.Equal(t, *moved, recentered.Rider.Position)
	assert.Nil(t, recentered.Rider.Animation)
}

func TestAdapter_PanIgnoredOutsideFollowing(t *testing.T) {
	a := liveAdapter(true)

	a.Render(Input{})
	assert.Equal(t, StateNoData, a.Pan())

	frame := a.Render(Input{Destination: ptr(destination)})
	assert.Equal(t, StateFollowing, frame.State)
}
