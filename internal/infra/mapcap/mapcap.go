// Package mapcap decides whether clients get a live interactive map.
package mapcap

import (
	"fmt"
	"log/slog"
	"slices"

	"medtrack/config"
	"medtrack/internal/domain/service"

	"go.uber.org/fx"
)

// Probe reports whether the named renderer is usable. Probes may fail or
// panic; both count as unavailable.
type Probe func(renderer string) (bool, error)

// RegistryProbe returns a probe that looks renderers up by name
func RegistryProbe(registered []string) Probe {
	return func(renderer string) (bool, error) {
		return slices.Contains(registered, renderer), nil
	}
}

// Native is backed by a platform map renderer discovered by probing
type Native struct {
	renderer string
	animated bool
}

// NewNative probes each renderer once, in order, and keeps the first usable one
func NewNative(renderers []string, probe Probe, animated bool, logger *slog.Logger) *Native {
	n := &Native{animated: animated}

	for _, renderer := range renderers {
		ok, err := safeProbe(probe, renderer)
		if err != nil {
			logger.Warn("map renderer probe failed", slog.String("renderer", renderer), slog.Any("error", err))

			continue
		}
		if ok {
			n.renderer = renderer

			break
		}
	}

	return n
}

func safeProbe(probe Probe, renderer string) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok, err = false, fmt.Errorf("probe panicked: %v", r)
		}
	}()

	if probe == nil {
		return false, nil
	}

	return probe(renderer)
}

func (n *Native) Name() string {
	if n.renderer == "" {
		return config.CapabilityNative
	}

	return config.CapabilityNative + ":" + n.renderer
}

func (n *Native) LiveMapAvailable() bool {
	return n.renderer != ""
}

func (n *Native) AnimatedMarkers() bool {
	return n.LiveMapAvailable() && n.animated
}

// Fallback never offers a live map; clients render the static image
type Fallback struct{}

func (Fallback) Name() string           { return config.CapabilityFallback }
func (Fallback) LiveMapAvailable() bool { return false }
func (Fallback) AnimatedMarkers() bool  { return false }

// Params holds dependencies for selecting the capability
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New selects the capability configured under map.capability
func New(params Params) service.MapCapability {
	cfg := params.Config.Map

	if cfg.Capability == config.CapabilityFallback {
		params.Logger.Info("Live map disabled, serving static map fallback")

		return Fallback{}
	}

	native := NewNative(cfg.NativeRenderers, RegistryProbe(cfg.RegisteredRenderers), cfg.AnimatedMarkers, params.Logger)
	params.Logger.Info("Map capability selected",
		slog.String("capability", native.Name()),
		slog.Bool("live", native.LiveMapAvailable()),
	)

	return native
}
