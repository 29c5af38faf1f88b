package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultRoutingTimeout        = 6 * time.Second
	defaultRouteCacheTTL         = 15 * time.Second
	defaultJitterWindow          = 12 * time.Second
	defaultRiderMoveMeters       = 30.0
	defaultDestinationMoveMeters = 5.0
	defaultOSRMBaseURL           = "https://router.project-osrm.org"

	defaultSimplifyMinMeters = 6.0
	defaultSnapMaxMeters     = 40.0

	defaultPollInterval   = 10 * time.Second
	defaultBackendTimeout = 10 * time.Second
	defaultRefreshSkew    = 30 * time.Second

	defaultEdgePadding = 42
	defaultAnimationMs = 650

	defaultMaxRequestBodySize = "64K"

	defaultStaticBaseURL = "https://staticmap.openstreetmap.de/staticmap.php"
	defaultStaticZoom    = 15
	defaultStaticSize    = "640x300"
)

// Routing providers and cache backends.
const (
	ProviderOSRM   = "osrm"
	ProviderGoogle = "google"

	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"

	CapabilityNative   = "native"
	CapabilityFallback = "fallback"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`

		// MaxRequestBodySize uses echo's BodyLimit format, e.g. "64K"
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Backend is the commerce API that owns orders and tracking snapshots
	Backend *BackendConfig `json:"backend" yaml:"backend"`

	// Routing configures the route fetcher and its provider
	Routing *RoutingConfig `json:"routing" yaml:"routing"`

	// Redis is only dialed when routing.cacheBackend is "redis"
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Geometry *GeometryConfig `json:"geometry" yaml:"geometry"`

	Tracking *TrackingConfig `json:"tracking" yaml:"tracking"`

	Map *MapConfig `json:"map" yaml:"map"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// BackendConfig defines how the service reaches the commerce backend
type BackendConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Service credentials used when a client does not forward its own bearer token
	AccessToken  string `json:"accessToken" yaml:"accessToken"`
	RefreshToken string `json:"refreshToken" yaml:"refreshToken"`

	// Access tokens expiring within this window are refreshed before use
	RefreshSkew time.Duration `json:"refreshSkew" yaml:"refreshSkew"`
}

// RoutingConfig defines the route fetcher configuration
type RoutingConfig struct {
	// Provider type: "osrm" or "google"
	Provider     string `json:"provider" yaml:"provider"`
	OSRMBaseURL  string `json:"osrmBaseUrl" yaml:"osrmBaseUrl"`
	GoogleAPIKey string `json:"googleApiKey" yaml:"googleApiKey"`

	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
	CacheTTL time.Duration `json:"cacheTtl" yaml:"cacheTtl"`

	// Cache backend type: "memory" or "redis"
	CacheBackend string `json:"cacheBackend" yaml:"cacheBackend"`

	// Requests within JitterWindow are skipped while rider and destination
	// stay inside the move thresholds
	JitterWindow          time.Duration `json:"jitterWindow" yaml:"jitterWindow"`
	RiderMoveMeters       float64       `json:"riderMoveMeters" yaml:"riderMoveMeters"`
	DestinationMoveMeters float64       `json:"destinationMoveMeters" yaml:"destinationMoveMeters"`
}

// RedisConfig defines the Redis connection used by the route cache
type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// GeometryConfig holds the reconciler thresholds
type GeometryConfig struct {
	SimplifyMinMeters float64 `json:"simplifyMinMeters" yaml:"simplifyMinMeters"`
	SnapMaxMeters     float64 `json:"snapMaxMeters" yaml:"snapMaxMeters"`
}

// TrackingConfig defines tracking session behaviour
type TrackingConfig struct {
	PollInterval   time.Duration `json:"pollInterval" yaml:"pollInterval"`
	ActiveStatuses []string      `json:"activeStatuses" yaml:"activeStatuses"`
}

// MapConfig defines the map presentation adapter
type MapConfig struct {
	// Capability type: "native" or "fallback"
	Capability string `json:"capability" yaml:"capability"`

	// Renderer names probed by the native capability
	NativeRenderers []string `json:"nativeRenderers" yaml:"nativeRenderers"`

	// Renderers registered on the client fleet
	RegisteredRenderers []string `json:"registeredRenderers" yaml:"registeredRenderers"`

	AnimatedMarkers bool `json:"animatedMarkers" yaml:"animatedMarkers"`
	EdgePadding     int  `json:"edgePadding" yaml:"edgePadding"`
	AnimationMs     int  `json:"animationMs" yaml:"animationMs"`

	StaticMap StaticMapConfig `json:"staticMap" yaml:"staticMap"`
}

// StaticMapConfig defines the static image fallback
type StaticMapConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	Zoom    int    `json:"zoom" yaml:"zoom"`
	Size    string `json:"size" yaml:"size"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: ROUTING_CACHETTL -> routing.cacheTtl (not routing.cachettl)
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every optional section so consumers never see nil sections
func (c *Config) ApplyDefaults() {
	if c.HTTP.MaxRequestBodySize == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Backend == nil {
		c.Backend = &BackendConfig{}
	}
	if c.Backend.Timeout <= 0 {
		c.Backend.Timeout = defaultBackendTimeout
	}
	if c.Backend.RefreshSkew <= 0 {
		c.Backend.RefreshSkew = defaultRefreshSkew
	}

	if c.Routing == nil {
		c.Routing = &RoutingConfig{}
	}
	c.Routing.applyDefaults()

	if c.Redis == nil {
		c.Redis = &RedisConfig{}
	}
	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = "medtrack:"
	}

	if c.Geometry == nil {
		c.Geometry = &GeometryConfig{}
	}
	c.Geometry.applyDefaults()

	if c.Tracking == nil {
		c.Tracking = &TrackingConfig{}
	}
	if c.Tracking.PollInterval <= 0 {
		c.Tracking.PollInterval = defaultPollInterval
	}

	if c.Map == nil {
		c.Map = &MapConfig{}
	}
	c.Map.applyDefaults()
}

func (r *RoutingConfig) applyDefaults() {
	if r.Provider == "" {
		r.Provider = ProviderOSRM
	}
	if r.OSRMBaseURL == "" {
		r.OSRMBaseURL = defaultOSRMBaseURL
	}
	if r.Timeout <= 0 {
		r.Timeout = defaultRoutingTimeout
	}
	if r.CacheTTL <= 0 {
		r.CacheTTL = defaultRouteCacheTTL
	}
	if r.CacheBackend == "" {
		r.CacheBackend = CacheBackendMemory
	}
	if r.JitterWindow <= 0 {
		r.JitterWindow = defaultJitterWindow
	}
	if r.RiderMoveMeters <= 0 {
		r.RiderMoveMeters = defaultRiderMoveMeters
	}
	if r.DestinationMoveMeters <= 0 {
		r.DestinationMoveMeters = defaultDestinationMoveMeters
	}
}

func (g *GeometryConfig) applyDefaults() {
	if g.SimplifyMinMeters <= 0 {
		g.SimplifyMinMeters = defaultSimplifyMinMeters
	}
	if g.SnapMaxMeters <= 0 {
		g.SnapMaxMeters = defaultSnapMaxMeters
	}
}

func (m *MapConfig) applyDefaults() {
	if m.Capability == "" {
		m.Capability = CapabilityNative
	}
	if len(m.NativeRenderers) == 0 {
		m.NativeRenderers = []string{"AIRMap", "AIRGoogleMap"}
	}
	if m.EdgePadding <= 0 {
		m.EdgePadding = defaultEdgePadding
	}
	if m.AnimationMs <= 0 {
		m.AnimationMs = defaultAnimationMs
	}
	if m.StaticMap.BaseURL == "" {
		m.StaticMap.BaseURL = defaultStaticBaseURL
	}
	if m.StaticMap.Zoom <= 0 {
		m.StaticMap.Zoom = defaultStaticZoom
	}
	if m.StaticMap.Size == "" {
		m.StaticMap.Size = defaultStaticSize
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
