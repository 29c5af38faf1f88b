// Package backend is the REST client for the commerce backend that owns
// orders and tracking snapshots.
package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"medtrack/config"
	"medtrack/internal/domain/entity"
	domainerrors "medtrack/internal/domain/errors"
	"medtrack/internal/domain/service"
	"medtrack/internal/errors"

	"go.uber.org/fx"
)

// ClientParams holds dependencies for the backend client
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates the backend tracking source
func NewClient(params ClientParams) service.TrackingSource {
	cfg := params.Config.Backend

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     params.Logger,
	}
}

type orderPayload struct {
	Status string `json:"status"`
}

type riderPayload struct {
	entity.RawCoordinate

	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type trackingPayload struct {
	Status      string                `json:"status"`
	UpdatedAt   string                `json:"updatedAt"`
	ETAMinutes  entity.FlexFloat      `json:"etaMinutes"`
	DistanceKm  entity.FlexFloat      `json:"distanceKm"`
	Rider       *riderPayload         `json:"rider"`
	Destination *entity.RawCoordinate `json:"destination"`
}

func (c *client) GetOrder(ctx context.Context, orderID string, tokens service.TokenSource) (*entity.Order, error) {
	var payload orderPayload
	if err := c.getJSON(ctx, "/orders/"+url.PathEscape(orderID), tokens, &payload); err != nil {
		return nil, err
	}

	return &entity.Order{
		ID:     orderID,
		Status: entity.NormalizeStatus(payload.Status),
	}, nil
}

func (c *client) GetTracking(ctx context.Context, orderID string, tokens service.TokenSource) (*entity.TrackingSnapshot, error) {
	var payload *trackingPayload
	if err := c.getJSON(ctx, "/orders/"+url.PathEscape(orderID)+"/tracking", tokens, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return &entity.TrackingSnapshot{}, nil
	}

	snapshot := &entity.TrackingSnapshot{
		Status:      entity.NormalizeStatus(payload.Status),
		ETAMinutes:  payload.ETAMinutes.Ptr(),
		DistanceKm:  payload.DistanceKm.Ptr(),
		Destination: payload.Destination.Normalize(),
	}

	if payload.UpdatedAt != "" {
		if at, err := time.Parse(time.RFC3339, payload.UpdatedAt); err == nil {
			snapshot.UpdatedAt = &at
		}
	}

	if payload.Rider != nil {
		snapshot.RiderName = payload.Rider.Name
		snapshot.RiderPhone = payload.Rider.Phone
		snapshot.Rider = payload.Rider.Normalize()
	}

	return snapshot, nil
}

// getJSON performs an authenticated GET. A 401 triggers one token refresh
// and one retry; a second 401 is reported as ErrUnauthorized.
func (c *client) getJSON(ctx context.Context, path string, tokens service.TokenSource, out any) error {
	var token string
	if tokens != nil {
		t, err := tokens.Token(ctx)
		if err != nil {
			return err
		}
		token = t
	}

	resp, err := c.get(ctx, path, token)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && tokens != nil {
		drain(resp)

		token, err = tokens.Refresh(ctx)
		if err != nil {
			c.logger.Info("backend token refresh failed", slog.String("path", path), slog.Any("error", err))

			return domainerrors.ErrUnauthorized
		}

		resp, err = c.get(ctx, path, token)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return domainerrors.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeUpstreamError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(err, "decode %s", path)
	}

	return nil
}

func (c *client) get(ctx context.Context, path, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build backend request")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", path)
	}

	return resp, nil
}

// decodeUpstreamError reads the backend's {message} error body
func decodeUpstreamError(resp *http.Response) *domainerrors.UpstreamError {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body)

	return domainerrors.NewUpstreamError(resp.StatusCode, body.Message)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
