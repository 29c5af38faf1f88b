package impl

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"medtrack/config"
	"medtrack/internal/domain/entity"
	domainerrors "medtrack/internal/domain/errors"
	"medtrack/internal/domain/service"
	"medtrack/internal/errors"
	"medtrack/internal/geometry"
	mockService "medtrack/internal/mocks/service"
	"medtrack/internal/presentation/mapview"
	"medtrack/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const orderID = "order-1"

var (
	mgRoad      = entity.Coordinate{Lat: 12.9716, Lng: 77.5946}
	koramangala = entity.Coordinate{Lat: 12.9352, Lng: 77.6146}
	nearRoute   = entity.Coordinate{Lat: 12.9601, Lng: 77.6001}
)

type liveCapability struct{}

func (liveCapability) Name() string           { return "test" }
func (liveCapability) LiveMapAvailable() bool { return true }
func (liveCapability) AnimatedMarkers() bool  { return true }

type noTokens struct{}

func (noTokens) NewTokenSource(string, string) service.TokenSource { return nil }

type singleFetcher struct {
	fetcher service.RouteFetcher
}

func (f singleFetcher) New(string) service.RouteFetcher { return f.fetcher }

// trackingServiceFixtures holds all test dependencies for tracking service tests.
type trackingServiceFixtures struct {
	service *trackingService
	source  *mockService.MockTrackingSource
	fetcher *mockService.MockRouteFetcher
}

func createTestTrackingService(t *testing.T, pollInterval time.Duration) trackingServiceFixtures {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Tracking.PollInterval = pollInterval

	source := mockService.NewMockTrackingSource(t)
	fetcher := mockService.NewMockRouteFetcher(t)

	svc := newTrackingService(TrackingServiceParams{
		Config:     cfg,
		Logger:     slog.Default(),
		Source:     source,
		Tokens:     noTokens{},
		Fetchers:   singleFetcher{fetcher: fetcher},
		Reconciler: geometry.NewReconciler(cfg.Geometry),
		Capability: liveCapability{},
	})
	t.Cleanup(func() {
		_ = svc.Shutdown(context.Background())
	})

	return trackingServiceFixtures{
		service: svc,
		source:  source,
		fetcher: fetcher,
	}
}

func testRoute(distance, duration float64) *entity.Route {
	return &entity.Route{
		Provider:        entity.ProviderOSRM,
		DistanceMeters:  distance,
		DurationSeconds: duration,
		Polyline: []entity.Coordinate{
			mgRoad,
			{Lat: 12.9600, Lng: 77.6000},
			koramangala,
		},
	}
}

func snapshotWith(status entity.OrderStatus, rider *entity.Coordinate) *entity.TrackingSnapshot {
	destination := koramangala

	return &entity.TrackingSnapshot{
		Status:      status,
		RiderName:   "Ravi",
		Rider:       rider,
		Destination: &destination,
	}
}

func ptr(c entity.Coordinate) *entity.Coordinate {
	return &c
}

func (fx trackingServiceFixtures) expectOrder(status entity.OrderStatus) {
	fx.source.EXPECT().
		GetOrder(mock.Anything, orderID, mock.Anything).
		Return(&entity.Order{ID: orderID, Status: status}, nil)
}

func TestTrackingService_OpenSession(t *testing.T) {
	fx := createTestTrackingService(t, time.Hour)
	ctx := context.Background()

	fx.expectOrder(entity.OrderStatusOutForDelivery)
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		Return(snapshotWith(entity.OrderStatusOutForDelivery, ptr(nearRoute)), nil)
	fx.fetcher.EXPECT().
		Fetch(mock.Anything, nearRoute, koramangala).
		Return(testRoute(5200, 780), nil).
		Once()

	view, err := fx.service.OpenSession(ctx, orderID, &usecase.OpenSessionInput{AccessToken: "token"})
	require.NoError(t, err)

	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, entity.OrderStatusOutForDelivery, view.Status)
	assert.True(t, view.Polling)
	assert.Empty(t, view.TrackingError)

	require.NotNil(t, view.Route)
	assert.Equal(t, entity.ProviderOSRM, view.Route.Provider)
	assert.False(t, view.Route.Stale)
	require.NotNil(t, view.ETAMinutes)
	assert.Equal(t, 13, *view.ETAMinutes)
	require.NotNil(t, view.DistanceKm)
	assert.InDelta(t, 5.2, *view.DistanceKm, 1e-9)

	require.NotNil(t, view.Rider)
	assert.True(t, view.Rider.Snapped)
	assert.Equal(t, "Ravi", view.Rider.Name)
	assert.Equal(t, nearRoute, view.Rider.Raw)

	assert.Equal(t, mapview.StateFollowing, view.Map.State)
	assert.True(t, view.Map.Refit)
	require.NotNil(t, view.Map.Rider)
	assert.Equal(t, view.Rider.Display, view.Map.Rider.Position)
	require.NotNil(t, view.Map.Route)
	assert.Equal(t, mapview.LinePolyline, view.Map.Route.Kind)
	assert.Nil(t, view.Fallback)
}

func TestTrackingService_OpenSession_InactiveStatusDoesNotPoll(t *testing.T) {
	fx := createTestTrackingService(t, time.Millisecond)
	ctx := context.Background()

	eta := 7.4
	snapshot := snapshotWith(entity.OrderStatusDelivered, nil)
	snapshot.ETAMinutes = &eta

	fx.expectOrder(entity.OrderStatusDelivered)
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		Return(snapshot, nil).
		Once()

	view, err := fx.service.OpenSession(ctx, orderID, nil)
	require.NoError(t, err)

	assert.False(t, view.Polling)
	assert.Nil(t, view.Route)
	require.NotNil(t, view.ETAMinutes)
	assert.Equal(t, 7, *view.ETAMinutes)

	assert.Equal(t, mapview.StateFollowing, view.Map.State)
	assert.Nil(t, view.Map.Route)
	fx.fetcher.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything, mock.Anything)
}

func TestTrackingService_OpenSession_BackendErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "order not found",
			err:     domainerrors.NewUpstreamError(http.StatusNotFound, "Order not found"),
			wantErr: nil,
		},
		{
			name:    "unauthorized",
			err:     domainerrors.ErrUnauthorized,
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:    "transport failure",
			err:     errors.New("dial tcp: network is unreachable"),
			wantErr: domainerrors.ErrBackendOffline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTrackingService(t, time.Hour)

			fx.source.EXPECT().
				GetOrder(mock.Anything, orderID, mock.Anything).
				Return(nil, tt.err)

			view, err := fx.service.OpenSession(context.Background(), orderID, nil)

			assert.Nil(t, view)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.Equal(t, tt.err, err)
			}

			_, err = fx.service.GetView(context.Background(), orderID)
			assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
		})
	}
}

func TestTrackingService_LiveMapOptOut(t *testing.T) {
	fx := createTestTrackingService(t, time.Hour)

	fx.expectOrder(entity.OrderStatusDelivered)
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		Return(snapshotWith(entity.OrderStatusDelivered, nil), nil)

	liveMap := false
	view, err := fx.service.OpenSession(context.Background(), orderID, &usecase.OpenSessionInput{LiveMap: &liveMap})
	require.NoError(t, err)

	assert.Equal(t, mapview.StateUnavailable, view.Map.State)
	assert.Nil(t, view.Map.Destination)
	require.NotNil(t, view.Fallback)
	assert.Contains(t, view.Fallback.StaticMapURL, "staticmap.openstreetmap.de")
	assert.Contains(t, view.Fallback.OpenInMapsURL, "query=12.9352%2C77.6146")
	assert.Empty(t, view.Fallback.Placeholder)
}

func TestTrackingService_NoDestinationPlaceholder(t *testing.T) {
	fx := createTestTrackingService(t, time.Hour)

	fx.expectOrder(entity.OrderStatusAccepted)
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		Return(&entity.TrackingSnapshot{Status: entity.OrderStatusAccepted}, nil)

	view, err := fx.service.OpenSession(context.Background(), orderID, nil)
	require.NoError(t, err)

	assert.Equal(t, mapview.StateNoData, view.Map.State)
	require.NotNil(t, view.Fallback)
	assert.Equal(t, mapview.PlaceholderNoDestination, view.Fallback.Placeholder)
}

func TestTrackingService_RefreshFailureKeepsLastKnown(t *testing.T) {
	fx := createTestTrackingService(t, time.Hour)
	ctx := context.Background()

	snapshot := snapshotWith(entity.OrderStatusRiderAssigned, nil)

	fx.expectOrder(entity.OrderStatusRiderAssigned)
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		Return(snapshot, nil).
		Once()
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		Return(nil, errors.New("Network request failed")).
		Once()
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		Return(nil, domainerrors.NewUpstreamError(http.StatusInternalServerError, "Tracking unavailable")).
		Once()
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		Return(snapshot, nil).
		Once()

	_, err := fx.service.OpenSession(ctx, orderID, nil)
	require.NoError(t, err)

	view, err := fx.service.Refresh(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, usecase.TrackingErrorOffline, view.TrackingError)
	assert.Same(t, snapshot, view.Tracking)

	view, err = fx.service.Refresh(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, "Tracking unavailable", view.TrackingError)
	assert.Same(t, snapshot, view.Tracking)

	view, err = fx.service.Refresh(ctx, orderID)
	require.NoError(t, err)
	assert.Empty(t, view.TrackingError)
}

func TestTrackingService_PollingStopsWhenDelivered(t *testing.T) {
	fx := createTestTrackingService(t, 5*time.Millisecond)

	var calls atomic.Int32
	fx.expectOrder(entity.OrderStatusOutForDelivery)
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		RunAndReturn(func(context.Context, string, service.TokenSource) (*entity.TrackingSnapshot, error) {
			if calls.Add(1) < 3 {
				return snapshotWith(entity.OrderStatusOutForDelivery, nil), nil
			}

			return snapshotWith(entity.OrderStatusDelivered, nil), nil
		})

	view, err := fx.service.OpenSession(context.Background(), orderID, nil)
	require.NoError(t, err)
	require.True(t, view.Polling)

	assert.Eventually(t, func() bool {
		view, err := fx.service.GetView(context.Background(), orderID)

		return err == nil && !view.Polling
	}, time.Second, 5*time.Millisecond)

	settled := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, calls.Load())

	view, err = fx.service.GetView(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, view.Status)
}

func TestTrackingService_CloseStopsPolling(t *testing.T) {
	fx := createTestTrackingService(t, 5*time.Millisecond)

	var calls atomic.Int32
	fx.expectOrder(entity.OrderStatusOutForDelivery)
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		RunAndReturn(func(context.Context, string, service.TokenSource) (*entity.TrackingSnapshot, error) {
			calls.Add(1)

			return snapshotWith(entity.OrderStatusOutForDelivery, nil), nil
		})

	_, err := fx.service.OpenSession(context.Background(), orderID, nil)
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	require.NoError(t, fx.service.CloseSession(context.Background(), orderID))

	stopped := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load())

	_, err = fx.service.GetView(context.Background(), orderID)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
	assert.ErrorIs(t, fx.service.CloseSession(context.Background(), orderID), domainerrors.ErrSessionNotFound)
}

func TestTrackingService_CloseCancelsRouteFetch(t *testing.T) {
	fx := createTestTrackingService(t, time.Hour)

	fx.expectOrder(entity.OrderStatusOutForDelivery)
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		Return(snapshotWith(entity.OrderStatusOutForDelivery, ptr(nearRoute)), nil)

	started := make(chan struct{})
	cancelled := make(chan struct{})
	fx.fetcher.EXPECT().
		Fetch(mock.Anything, nearRoute, koramangala).
		RunAndReturn(func(ctx context.Context, _, _ entity.Coordinate) (*entity.Route, error) {
			close(started)
			<-ctx.Done()
			close(cancelled)

			return nil, domainerrors.NewRoutingAborted(ctx.Err())
		})

	openCtx, cancelOpen := context.WithCancel(context.Background())
	go func() {
		<-started
		cancelOpen()
	}()

	// the open request stops waiting for the route when its caller goes away
	_, err := fx.service.OpenSession(openCtx, orderID, nil)
	require.NoError(t, err)

	require.NoError(t, fx.service.CloseSession(context.Background(), orderID))

	select {
	case <-cancelled:
	default:
		t.Fatal("route fetch still running after close")
	}
}

func TestTrackingService_SupersedesStaleRoute(t *testing.T) {
	fx := createTestTrackingService(t, time.Hour)
	ctx := context.Background()

	var current atomic.Pointer[entity.TrackingSnapshot]
	current.Store(&entity.TrackingSnapshot{Status: entity.OrderStatusOutForDelivery})

	fx.expectOrder(entity.OrderStatusOutForDelivery)
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		RunAndReturn(func(context.Context, string, service.TokenSource) (*entity.TrackingSnapshot, error) {
			return current.Load(), nil
		})

	first := entity.Coordinate{Lat: 12.9700, Lng: 77.5950}
	second := entity.Coordinate{Lat: 12.9650, Lng: 77.5980}

	started := make(chan struct{})
	release := make(chan struct{})
	fx.fetcher.EXPECT().
		Fetch(mock.Anything, first, koramangala).
		RunAndReturn(func(context.Context, entity.Coordinate, entity.Coordinate) (*entity.Route, error) {
			close(started)
			<-release

			// ignores cancellation and answers late
			return testRoute(9999, 999), nil
		}).
		Once()
	fx.fetcher.EXPECT().
		Fetch(mock.Anything, second, koramangala).
		Return(testRoute(4000, 600), nil).
		Once()

	_, err := fx.service.OpenSession(ctx, orderID, nil)
	require.NoError(t, err)

	current.Store(snapshotWith(entity.OrderStatusOutForDelivery, &first))
	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		_, _ = fx.service.Refresh(ctx, orderID)
	}()
	<-started

	current.Store(snapshotWith(entity.OrderStatusOutForDelivery, &second))
	view, err := fx.service.Refresh(ctx, orderID)
	require.NoError(t, err)
	require.NotNil(t, view.Route)
	assert.Equal(t, 4000.0, view.Route.DistanceMeters)

	close(release)
	<-firstDone

	view, err = fx.service.GetView(ctx, orderID)
	require.NoError(t, err)
	require.NotNil(t, view.Route)
	assert.Equal(t, 4000.0, view.Route.DistanceMeters, "late result of a superseded fetch is discarded")
}

func TestTrackingService_RouteFailureKeepsStaleRoute(t *testing.T) {
	fx := createTestTrackingService(t, time.Hour)
	ctx := context.Background()

	moved := entity.Coordinate{Lat: 12.9650, Lng: 77.5980}

	fx.expectOrder(entity.OrderStatusOutForDelivery)
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		Return(snapshotWith(entity.OrderStatusOutForDelivery, ptr(nearRoute)), nil).
		Once()
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		Return(snapshotWith(entity.OrderStatusOutForDelivery, &moved), nil).
		Once()
	fx.fetcher.EXPECT().
		Fetch(mock.Anything, nearRoute, koramangala).
		Return(testRoute(5200, 780), nil).
		Once()
	fx.fetcher.EXPECT().
		Fetch(mock.Anything, moved, koramangala).
		Return(nil, domainerrors.NewRoutingError(http.StatusServiceUnavailable, "", nil)).
		Once()

	_, err := fx.service.OpenSession(ctx, orderID, nil)
	require.NoError(t, err)

	view, err := fx.service.Refresh(ctx, orderID)
	require.NoError(t, err)

	require.NotNil(t, view.Route)
	assert.Equal(t, 5200.0, view.Route.DistanceMeters)
	assert.True(t, view.Route.Stale)
	assert.Equal(t, "Routing failed (503)", view.Route.Error)
	assert.Equal(t, moved, view.Rider.Raw)
}

func TestTrackingService_AbortedRouteIsSilent(t *testing.T) {
	fx := createTestTrackingService(t, time.Hour)

	fx.expectOrder(entity.OrderStatusOutForDelivery)
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		Return(snapshotWith(entity.OrderStatusOutForDelivery, ptr(nearRoute)), nil)
	fx.fetcher.EXPECT().
		Fetch(mock.Anything, nearRoute, koramangala).
		Return(nil, domainerrors.NewRoutingAborted(context.Canceled)).
		Once()

	view, err := fx.service.OpenSession(context.Background(), orderID, nil)
	require.NoError(t, err)

	assert.Nil(t, view.Route)
	require.NotNil(t, view.Map.Route)
	assert.Equal(t, mapview.LineStraight, view.Map.Route.Kind)
}

func TestTrackingService_JitterSkipsRefetch(t *testing.T) {
	fx := createTestTrackingService(t, time.Hour)
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	fx.service.now = func() time.Time { return now }

	// roughly 11 m north of the first fix
	jittered := entity.Coordinate{Lat: nearRoute.Lat + 0.0001, Lng: nearRoute.Lng}

	fx.expectOrder(entity.OrderStatusOutForDelivery)
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		Return(snapshotWith(entity.OrderStatusOutForDelivery, ptr(nearRoute)), nil).
		Once()
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		Return(snapshotWith(entity.OrderStatusOutForDelivery, &jittered), nil)
	fx.fetcher.EXPECT().
		Fetch(mock.Anything, mock.Anything, koramangala).
		Return(testRoute(5200, 780), nil).
		Twice()

	_, err := fx.service.OpenSession(ctx, orderID, nil)
	require.NoError(t, err)

	now = now.Add(5 * time.Second)
	_, err = fx.service.Refresh(ctx, orderID)
	require.NoError(t, err)
	fx.fetcher.AssertNumberOfCalls(t, "Fetch", 1)

	now = now.Add(10 * time.Second)
	view, err := fx.service.Refresh(ctx, orderID)
	require.NoError(t, err)
	fx.fetcher.AssertNumberOfCalls(t, "Fetch", 2)
	assert.Equal(t, jittered, view.Rider.Raw)
}

func TestTrackingService_PanAndRecenter(t *testing.T) {
	fx := createTestTrackingService(t, time.Hour)
	ctx := context.Background()

	fx.expectOrder(entity.OrderStatusOutForDelivery)
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		Return(snapshotWith(entity.OrderStatusOutForDelivery, ptr(nearRoute)), nil)
	fx.fetcher.EXPECT().
		Fetch(mock.Anything, nearRoute, koramangala).
		Return(testRoute(5200, 780), nil)

	opened, err := fx.service.OpenSession(ctx, orderID, nil)
	require.NoError(t, err)

	view, err := fx.service.Pan(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, mapview.StateManual, view.Map.State)
	assert.True(t, view.Map.ShowRecenter)
	assert.Nil(t, view.Map.Fit)

	view, err = fx.service.Recenter(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, mapview.StateFollowing, view.Map.State)
	assert.True(t, view.Map.Refit)
	assert.Greater(t, view.Map.FitRevision, opened.Map.FitRevision)
}

func TestTrackingService_ReopenReplacesSession(t *testing.T) {
	fx := createTestTrackingService(t, time.Hour)
	ctx := context.Background()

	fx.expectOrder(entity.OrderStatusDelivered)
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		Return(snapshotWith(entity.OrderStatusDelivered, nil), nil)

	first, err := fx.service.OpenSession(ctx, orderID, nil)
	require.NoError(t, err)
	second, err := fx.service.OpenSession(ctx, orderID, nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)

	view, err := fx.service.GetView(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, second.SessionID, view.SessionID)
}

func TestTrackingService_SessionBelongsToOpener(t *testing.T) {
	fx := createTestTrackingService(t, time.Hour)

	fx.expectOrder(entity.OrderStatusDelivered)
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		Return(snapshotWith(entity.OrderStatusDelivered, nil), nil)

	owner := usecase.WithCaller(context.Background(), "token-a")
	stranger := usecase.WithCaller(context.Background(), "token-b")

	opened, err := fx.service.OpenSession(owner, orderID, &usecase.OpenSessionInput{AccessToken: "token-a"})
	require.NoError(t, err)

	_, err = fx.service.GetView(stranger, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrSessionForbidden)
	_, err = fx.service.Refresh(stranger, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrSessionForbidden)
	_, err = fx.service.Pan(stranger, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrSessionForbidden)
	_, err = fx.service.Recenter(stranger, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrSessionForbidden)
	assert.ErrorIs(t, fx.service.CloseSession(stranger, orderID), domainerrors.ErrSessionForbidden)
	_, err = fx.service.GetView(context.Background(), orderID)
	assert.ErrorIs(t, err, domainerrors.ErrSessionForbidden)

	view, err := fx.service.GetView(owner, orderID)
	require.NoError(t, err)
	assert.Equal(t, opened.SessionID, view.SessionID)
	assert.NoError(t, fx.service.CloseSession(owner, orderID))
}

func TestTrackingService_FailedOpenKeepsPreviousSession(t *testing.T) {
	fx := createTestTrackingService(t, time.Hour)

	var calls atomic.Int32
	openCtx, cancelOpen := context.WithCancel(context.Background())
	defer cancelOpen()

	fx.expectOrder(entity.OrderStatusOutForDelivery)
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _ service.TokenSource) (*entity.TrackingSnapshot, error) {
			if calls.Add(1) == 1 {
				return snapshotWith(entity.OrderStatusOutForDelivery, nil), nil
			}

			// the second open's caller goes away mid-request
			cancelOpen()

			return nil, ctx.Err()
		})

	first, err := fx.service.OpenSession(context.Background(), orderID, nil)
	require.NoError(t, err)

	_, err = fx.service.OpenSession(openCtx, orderID, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	view, err := fx.service.GetView(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, view.SessionID)
	assert.True(t, view.Polling)
}

func TestTrackingService_FailedFirstOpenRegistersNothing(t *testing.T) {
	fx := createTestTrackingService(t, time.Hour)

	openCtx, cancelOpen := context.WithCancel(context.Background())
	defer cancelOpen()

	fx.expectOrder(entity.OrderStatusOutForDelivery)
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _ service.TokenSource) (*entity.TrackingSnapshot, error) {
			cancelOpen()

			return nil, ctx.Err()
		})

	_, err := fx.service.OpenSession(openCtx, orderID, nil)
	require.Error(t, err)

	_, err = fx.service.GetView(context.Background(), orderID)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestTrackingService_LateTrackingResponseIsDiscarded(t *testing.T) {
	fx := createTestTrackingService(t, time.Hour)
	ctx := context.Background()

	older := entity.Coordinate{Lat: 12.9700, Lng: 77.5950}
	newer := entity.Coordinate{Lat: 12.9650, Lng: 77.5980}

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	fx.expectOrder(entity.OrderStatusOutForDelivery)
	fx.source.EXPECT().
		GetTracking(mock.Anything, orderID, mock.Anything).
		RunAndReturn(func(context.Context, string, service.TokenSource) (*entity.TrackingSnapshot, error) {
			switch calls.Add(1) {
			case 1:
				return snapshotWith(entity.OrderStatusOutForDelivery, nil), nil
			case 2:
				close(started)
				<-release

				return snapshotWith(entity.OrderStatusOutForDelivery, &older), nil
			default:
				return snapshotWith(entity.OrderStatusOutForDelivery, &newer), nil
			}
		})
	fx.fetcher.EXPECT().
		Fetch(mock.Anything, mock.Anything, koramangala).
		Return(testRoute(4000, 600), nil).
		Maybe()

	_, err := fx.service.OpenSession(ctx, orderID, nil)
	require.NoError(t, err)

	slowDone := make(chan struct{})
	go func() {
		defer close(slowDone)
		_, _ = fx.service.Refresh(ctx, orderID)
	}()
	<-started

	view, err := fx.service.Refresh(ctx, orderID)
	require.NoError(t, err)
	require.NotNil(t, view.Tracking)
	assert.Equal(t, newer, *view.Tracking.Rider)

	close(release)
	<-slowDone

	view, err = fx.service.GetView(ctx, orderID)
	require.NoError(t, err)
	require.NotNil(t, view.Tracking)
	assert.Equal(t, newer, *view.Tracking.Rider, "response to an earlier request does not overwrite a newer one")
}
