package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"medtrack/internal/domain/entity"
	domainerrors "medtrack/internal/domain/errors"
	"medtrack/internal/domain/service"
	"medtrack/internal/errors"
	"medtrack/internal/geometry"
	"medtrack/internal/presentation/mapview"
	"medtrack/internal/usecase"

	"github.com/google/uuid"
)

type routeRequest struct {
	at   time.Time
	from entity.Coordinate
	to   entity.Coordinate
}

// trackingSession is one mounted order screen. It owns a poller, at most
// one in-flight route fetch, a map adapter and a route cache slot.
type trackingSession struct {
	id      string
	orderID string
	svc     *trackingService
	tokens  service.TokenSource
	fetcher service.RouteFetcher
	adapter *mapview.Adapter
	logger  *slog.Logger

	// owner is the credential the session was opened with
	owner usecase.CallerDigest

	// ctx ends when the session closes
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu          sync.Mutex
	closed      bool
	polling     bool
	status      entity.OrderStatus
	tracking    *entity.TrackingSnapshot
	trackingErr string

	// trackingSeq numbers tracking requests; trackingSeen is the newest
	// one whose response has been applied
	trackingSeq  uint64
	trackingSeen uint64

	route        *entity.Route
	displayRoute *entity.Route
	routeErr     string
	routeGen     uint64
	routeCancel  context.CancelFunc
	routeDone    chan struct{}
	lastRequest  *routeRequest

	rider *usecase.RiderView
	frame mapview.Frame
}

func newTrackingSession(svc *trackingService, orderID string, status entity.OrderStatus,
	tokens service.TokenSource, capability service.MapCapability) *trackingSession {
	id := uuid.NewString()
	logger := svc.logger.With(slog.String("order_id", orderID), slog.String("session_id", id))
	ctx, cancel := context.WithCancel(context.Background())

	session := &trackingSession{
		id:      id,
		orderID: orderID,
		svc:     svc,
		tokens:  tokens,
		fetcher: svc.fetchers.New(id),
		adapter: mapview.NewAdapter(capability, svc.mapOptions, logger),
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		status:  status,
	}
	session.frame = session.adapter.Render(mapview.Input{})

	return session
}

// refresh reloads the tracking snapshot and waits for the route fetch it
// starts. A failed reload keeps the last-known snapshot.
func (s *trackingSession) refresh(ctx context.Context) error {
	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()

	s.mu.Lock()
	s.trackingSeq++
	seq := s.trackingSeq
	s.mu.Unlock()

	snapshot, err := s.svc.source.GetTracking(callCtx, s.orderID, s.tokens)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return domainerrors.ErrSessionClosed
	}

	if seq < s.trackingSeen {
		// a request issued later already answered
		done := s.routeDone
		s.mu.Unlock()
		s.wait(ctx, done)

		return nil
	}
	s.trackingSeen = seq

	if err != nil {
		if callCtx.Err() != nil {
			s.mu.Unlock()

			return errors.Wrap(callCtx.Err(), "tracking refresh canceled")
		}
		s.trackingErr = trackingErrorMessage(err)
		s.logger.Warn("tracking refresh failed", slog.Any("error", err))
	} else {
		s.tracking = snapshot
		s.trackingErr = ""
		if snapshot.Status != "" {
			s.status = snapshot.Status
		}
	}

	done := s.updateRouteLocked()
	s.renderLocked()
	s.mu.Unlock()
	s.wait(ctx, done)

	return nil
}

// wait blocks until done closes, ctx ends or the session closes
func (s *trackingSession) wait(ctx context.Context, done <-chan struct{}) {
	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	case <-s.ctx.Done():
	}
}

// updateRouteLocked starts a route fetch for the current snapshot, cancelling
// any earlier one, and returns a channel closed when the fetch settles.
// Small movements within the jitter window reuse the current route.
func (s *trackingSession) updateRouteLocked() <-chan struct{} {
	var from, to *entity.Coordinate
	if s.tracking != nil {
		from, to = s.tracking.Rider, s.tracking.Destination
	}

	if from == nil || to == nil {
		s.cancelRouteLocked()
		s.route, s.displayRoute, s.routeErr = nil, nil, ""

		return nil
	}

	now := s.svc.now()
	if prev := s.lastRequest; prev != nil && now.Sub(prev.at) < s.svc.jitterWindow &&
		geometry.DistanceMeters(prev.from, *from) < s.svc.riderMove &&
		geometry.DistanceMeters(prev.to, *to) < s.svc.destMove {
		return s.routeDone
	}
	s.lastRequest = &routeRequest{at: now, from: *from, to: *to}

	s.cancelRouteLocked()
	gen := s.routeGen
	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan struct{})
	s.routeCancel = cancel
	s.routeDone = done

	origin, destination := *from, *to
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(done)
		defer cancel()

		route, err := s.fetcher.Fetch(ctx, origin, destination)
		s.applyRoute(gen, route, err)
	}()

	return done
}

// cancelRouteLocked supersedes the in-flight fetch, if any
func (s *trackingSession) cancelRouteLocked() {
	if s.routeCancel != nil {
		s.routeCancel()
		s.routeCancel = nil
	}
	s.routeGen++
}

func (s *trackingSession) applyRoute(gen uint64, route *entity.Route, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || gen != s.routeGen {
		return
	}

	if err != nil {
		if domainerrors.IsAborted(err) {
			return
		}
		s.routeErr = err.Error()
		s.logger.Warn("route fetch failed", slog.Any("error", err))

		return
	}

	s.route = route
	s.displayRoute = s.svc.reconciler.SimplifyRoute(route)
	s.routeErr = ""
	s.renderLocked()
}

func (s *trackingSession) renderLocked() {
	var in mapview.Input
	s.rider = nil

	if s.tracking != nil {
		in.Destination = s.tracking.Destination

		if raw := s.tracking.Rider; raw != nil {
			var polyline []entity.Coordinate
			if s.route != nil {
				polyline = s.route.Polyline
			}

			reconciled := s.svc.reconciler.Reconcile(*raw, polyline)
			s.rider = &usecase.RiderView{
				Name:           s.tracking.RiderName,
				Phone:          s.tracking.RiderPhone,
				Reconciliation: reconciled,
			}
			display := reconciled.Display
			in.Rider = &display
		}
	}
	if s.displayRoute != nil {
		in.Route = s.displayRoute.Polyline
	}

	s.frame = s.adapter.Render(in)
}

func (s *trackingSession) ensurePolling() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.polling || !s.svc.activeStatuses.Contains(s.status) {
		return
	}

	s.polling = true
	s.wg.Add(1)
	go s.poll()
}

func (s *trackingSession) poll() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.svc.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
		}

		if err := s.refresh(s.ctx); err != nil {
			return
		}

		s.mu.Lock()
		if !s.svc.activeStatuses.Contains(s.status) {
			s.polling = false
			s.mu.Unlock()
			s.logger.Info("Tracking polling stopped", slog.String("status", string(s.status)))

			return
		}
		s.mu.Unlock()
	}
}

func (s *trackingSession) pan() {
	s.adapter.Pan()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderLocked()
}

func (s *trackingSession) recenter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = s.adapter.Recenter()
}

// close stops the poller and any route fetch and waits for both
func (s *trackingSession) close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}
	s.closed = true
	s.cancelRouteLocked()
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

func (s *trackingSession) view() *usecase.TrackingView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := &usecase.TrackingView{
		SessionID:     s.id,
		OrderID:       s.orderID,
		Status:        s.status,
		Polling:       s.polling,
		Tracking:      s.tracking,
		TrackingError: s.trackingErr,
		Rider:         s.rider,
		Map:           s.frame,
		RenderedAt:    s.svc.now(),
	}
	if s.tracking != nil {
		view.Destination = s.tracking.Destination
	}

	if route := newRouteView(s.route, s.displayRoute); route != nil {
		route.Error = s.routeErr
		route.Stale = s.routeErr != ""
		view.Route = route
		view.ETAMinutes = route.ETAMinutes
		view.DistanceKm = route.DistanceKm
	} else if s.routeErr != "" {
		view.Route = &usecase.RouteView{Error: s.routeErr}
	}

	if s.tracking != nil {
		if view.ETAMinutes == nil {
			view.ETAMinutes = backendETA(s.tracking.ETAMinutes)
		}
		if view.DistanceKm == nil {
			view.DistanceKm = s.tracking.DistanceKm
		}
	}

	if s.frame.State == mapview.StateUnavailable || s.frame.State == mapview.StateNoData {
		fallback := mapview.NewFallback(s.svc.staticMap, view.Destination)
		view.Fallback = &fallback
	}

	return view
}
