package handler

import (
	"context"
	"log/slog"
	"net/http"

	"medtrack/internal/delivery/api/middleware"
	"medtrack/internal/delivery/api/response"
	"medtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	Logger     *slog.Logger
}

// TrackingHandler serves the per-order tracking session endpoints
type TrackingHandler struct {
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: params.TrackingUC,
		logger:     params.Logger,
	}
}

// OrderPath identifies the order in every tracking route
type OrderPath struct {
	OrderID string `param:"id" validate:"required,max=128"`
}

// OpenSessionRequest is the optional body of the open-session call
type OpenSessionRequest struct {
	OrderID string `param:"id" validate:"required,max=128"`

	RefreshToken string `json:"refresh_token"`

	// LiveMap=false forces the static map fallback for this session
	LiveMap *bool `json:"live_map"`
}

// OpenSession mounts a tracking session for the order
func (h *TrackingHandler) OpenSession(c echo.Context) error {
	var req OpenSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tracking session input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.trackingUC.OpenSession(c.Request().Context(), req.OrderID, &usecase.OpenSessionInput{
		AccessToken:  middleware.GetAccessToken(c),
		RefreshToken: req.RefreshToken,
		LiveMap:      req.LiveMap,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view)
}

// GetView returns the session's current view without contacting the backend
func (h *TrackingHandler) GetView(c echo.Context) error {
	return h.withOrder(c, h.trackingUC.GetView)
}

// Refresh reloads tracking on demand
func (h *TrackingHandler) Refresh(c echo.Context) error {
	return h.withOrder(c, h.trackingUC.Refresh)
}

// Pan records that the user moved the map and stops auto-following
func (h *TrackingHandler) Pan(c echo.Context) error {
	return h.withOrder(c, h.trackingUC.Pan)
}

// Recenter resumes following and re-fits the viewport
func (h *TrackingHandler) Recenter(c echo.Context) error {
	return h.withOrder(c, h.trackingUC.Recenter)
}

// CloseSession unmounts the session
func (h *TrackingHandler) CloseSession(c echo.Context) error {
	path := OrderPath{OrderID: c.Param("id")}
	if err := c.Validate(&path); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.trackingUC.CloseSession(callerContext(c), path.OrderID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

type viewCall func(ctx context.Context, orderID string) (*usecase.TrackingView, error)

func (h *TrackingHandler) withOrder(c echo.Context, call viewCall) error {
	path := OrderPath{OrderID: c.Param("id")}
	if err := c.Validate(&path); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := call(callerContext(c), path.OrderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// callerContext carries the client's token so the usecase can check the
// session belongs to it
func callerContext(c echo.Context) context.Context {
	return usecase.WithCaller(c.Request().Context(), middleware.GetAccessToken(c))
}
