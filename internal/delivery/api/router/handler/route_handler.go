package handler

import (
	"log/slog"
	"net/http"

	"medtrack/internal/delivery/api/response"
	"medtrack/internal/domain/entity"
	"medtrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RouteUC usecase.RouteUsecase
	Logger  *slog.Logger
}

// RouteHandler serves one-shot route lookups
type RouteHandler struct {
	routeUC usecase.RouteUsecase
	logger  *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routeUC: params.RouteUC,
		logger:  params.Logger,
	}
}

// GetRoute handles GET /routes?from_lat&from_lng&to_lat&to_lng
func (h *RouteHandler) GetRoute(c echo.Context) error {
	var from, to entity.Coordinate
	err := echo.QueryParamsBinder(c).
		MustFloat64("from_lat", &from.Lat).
		MustFloat64("from_lng", &from.Lng).
		MustFloat64("to_lat", &to.Lat).
		MustFloat64("to_lng", &to.Lng).
		BindError()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "from_lat, from_lng, to_lat and to_lng must be numbers")
	}

	route, err := h.routeUC.FetchRoute(c.Request().Context(), from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, route)
}
