package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"medtrack/config"
	"medtrack/internal/domain/entity"
	domainerrors "medtrack/internal/domain/errors"
	"medtrack/internal/domain/service"
	"medtrack/internal/errors"
	"medtrack/internal/geometry"
	"medtrack/internal/presentation/mapview"
	"medtrack/internal/usecase"

	"go.uber.org/fx"
)

// TrackingServiceParams holds dependencies for the tracking service
type TrackingServiceParams struct {
	fx.In

	Lifecycle  fx.Lifecycle `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
	Source     service.TrackingSource
	Tokens     service.TokenIssuer
	Fetchers   service.RouteFetcherFactory
	Reconciler *geometry.Reconciler
	Capability service.MapCapability
}

type trackingService struct {
	source     service.TrackingSource
	tokens     service.TokenIssuer
	fetchers   service.RouteFetcherFactory
	reconciler *geometry.Reconciler
	capability service.MapCapability
	logger     *slog.Logger

	pollInterval   time.Duration
	activeStatuses entity.StatusSet
	jitterWindow   time.Duration
	riderMove      float64
	destMove       float64
	mapOptions     mapview.Options
	staticMap      config.StaticMapConfig

	now func() time.Time

	mu       sync.Mutex
	closed   bool
	sessions map[string]*trackingSession
}

// NewTrackingService creates a new tracking service instance. Open sessions
// are closed when the application stops.
func NewTrackingService(params TrackingServiceParams) usecase.TrackingUsecase {
	s := newTrackingService(params)

	if params.Lifecycle != nil {
		params.Lifecycle.Append(fx.Hook{
			OnStop: s.Shutdown,
		})
	}

	return s
}

func newTrackingService(params TrackingServiceParams) *trackingService {
	cfg := params.Config

	return &trackingService{
		source:         params.Source,
		tokens:         params.Tokens,
		fetchers:       params.Fetchers,
		reconciler:     params.Reconciler,
		capability:     params.Capability,
		logger:         params.Logger,
		pollInterval:   cfg.Tracking.PollInterval,
		activeStatuses: entity.NewStatusSet(cfg.Tracking.ActiveStatuses),
		jitterWindow:   cfg.Routing.JitterWindow,
		riderMove:      cfg.Routing.RiderMoveMeters,
		destMove:       cfg.Routing.DestinationMoveMeters,
		mapOptions:     mapview.OptionsFromConfig(cfg.Map),
		staticMap:      cfg.Map.StaticMap,
		now:            time.Now,
		sessions:       make(map[string]*trackingSession),
	}
}

// OpenSession loads the order, mounts a session and returns its first view
func (s *trackingService) OpenSession(ctx context.Context, orderID string, input *usecase.OpenSessionInput) (*usecase.TrackingView, error) {
	if input == nil {
		input = &usecase.OpenSessionInput{}
	}

	tokens := s.tokens.NewTokenSource(input.AccessToken, input.RefreshToken)

	order, err := s.source.GetOrder(ctx, orderID, tokens)
	if err != nil {
		return nil, backendError(err)
	}

	capability := s.capability
	if input.LiveMap != nil && !*input.LiveMap {
		capability = nil
	}

	session := newTrackingSession(s, orderID, order.Status, tokens, capability)
	session.owner = usecase.NewCallerDigest(input.AccessToken)

	// The session is only registered once its first load went through; a
	// failed open leaves any previous session in place.
	if err := session.refresh(ctx); err != nil {
		session.close()

		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		session.close()

		return nil, domainerrors.ErrSessionClosed
	}
	previous := s.sessions[orderID]
	s.sessions[orderID] = session
	s.mu.Unlock()

	if previous != nil {
		previous.close()
	}

	session.logger.Info("Tracking session opened", slog.String("status", string(order.Status)))
	session.ensurePolling()

	return session.view(), nil
}

func (s *trackingService) GetView(ctx context.Context, orderID string) (*usecase.TrackingView, error) {
	session, err := s.session(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return session.view(), nil
}

func (s *trackingService) Refresh(ctx context.Context, orderID string) (*usecase.TrackingView, error) {
	session, err := s.session(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := session.refresh(ctx); err != nil {
		return nil, err
	}
	session.ensurePolling()

	return session.view(), nil
}

func (s *trackingService) Pan(ctx context.Context, orderID string) (*usecase.TrackingView, error) {
	session, err := s.session(ctx, orderID)
	if err != nil {
		return nil, err
	}
	session.pan()

	return session.view(), nil
}

func (s *trackingService) Recenter(ctx context.Context, orderID string) (*usecase.TrackingView, error) {
	session, err := s.session(ctx, orderID)
	if err != nil {
		return nil, err
	}
	session.recenter()

	return session.view(), nil
}

func (s *trackingService) CloseSession(ctx context.Context, orderID string) error {
	s.mu.Lock()
	session, ok := s.sessions[orderID]
	if !ok {
		s.mu.Unlock()

		return domainerrors.ErrSessionNotFound
	}
	if !session.owner.Matches(usecase.CallerFromContext(ctx)) {
		s.mu.Unlock()

		return domainerrors.ErrSessionForbidden
	}
	delete(s.sessions, orderID)
	s.mu.Unlock()

	session.close()
	session.logger.Info("Tracking session closed")

	return nil
}

// Shutdown closes every session, giving up when ctx ends
func (s *trackingService) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	sessions := make([]*trackingSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	s.sessions = make(map[string]*trackingSession)
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)

		var wg sync.WaitGroup
		for _, session := range sessions {
			wg.Add(1)
			go func() {
				defer wg.Done()
				session.close()
			}()
		}
		wg.Wait()
	}()

	select {
	case <-done:
		s.logger.Info("Tracking sessions closed", slog.Int("count", len(sessions)))

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "close tracking sessions")
	}
}

// session looks up the order's session on behalf of the caller in ctx, who
// must present the credential the session was opened with
func (s *trackingService) session(ctx context.Context, orderID string) (*trackingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[orderID]
	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}
	if !session.owner.Matches(usecase.CallerFromContext(ctx)) {
		return nil, domainerrors.ErrSessionForbidden
	}

	return session, nil
}

// backendError keeps application errors and reports transport failures as offline
func backendError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) || errors.IsContextDone(err) {
		return err
	}

	return domainerrors.ErrBackendOffline.WithDetails(err.Error())
}

// trackingErrorMessage is the text shown when a tracking refresh fails
func trackingErrorMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && !errors.Is(err, domainerrors.ErrBackendOffline) {
		return appErr.Message()
	}

	return usecase.TrackingErrorOffline
}
