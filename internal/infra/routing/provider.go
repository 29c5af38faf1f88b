// Package routing fetches driving routes from an external routing service.
package routing

import (
	"net/http"

	"medtrack/config"
	"medtrack/internal/domain/service"
	"medtrack/internal/errors"
	"medtrack/internal/infra/routing/google"
	"medtrack/internal/infra/routing/osrm"
)

// NewProvider creates the route provider selected by routing.provider
func NewProvider(cfg *config.Config) (service.RouteProvider, error) {
	routingCfg := cfg.Routing
	if routingCfg == nil {
		return nil, errors.New("routing config is required")
	}

	switch routingCfg.Provider {
	case config.ProviderOSRM, "":
		return osrm.NewClient(routingCfg.OSRMBaseURL, &http.Client{}), nil
	case config.ProviderGoogle:
		client, err := google.NewClient(routingCfg.GoogleAPIKey)
		if err != nil {
			return nil, errors.Wrap(err, "create google directions client")
		}

		return client, nil
	default:
		return nil, errors.Errorf("unknown routing provider: %s", routingCfg.Provider)
	}
}
