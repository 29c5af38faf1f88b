package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"medtrack/config"
	domainerrors "medtrack/internal/domain/errors"
	"medtrack/internal/domain/service"
	"medtrack/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/fx"
)

// TokenIssuerParams holds dependencies for the token issuer
type TokenIssuerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type tokenIssuer struct {
	baseURL      string
	httpClient   *http.Client
	skew         time.Duration
	accessToken  string
	refreshToken string
	logger       *slog.Logger
	now          func() time.Time
}

// NewTokenIssuer creates token sources that refresh through POST /auth/refresh
func NewTokenIssuer(params TokenIssuerParams) service.TokenIssuer {
	cfg := params.Config.Backend

	return &tokenIssuer{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		skew:         cfg.RefreshSkew,
		accessToken:  cfg.AccessToken,
		refreshToken: cfg.RefreshToken,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (i *tokenIssuer) NewTokenSource(accessToken, refreshToken string) service.TokenSource {
	if accessToken == "" && refreshToken == "" {
		accessToken, refreshToken = i.accessToken, i.refreshToken
	}

	return &refreshingTokenSource{
		issuer:       i,
		accessToken:  accessToken,
		refreshToken: refreshToken,
	}
}

type refreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (i *tokenIssuer) refresh(ctx context.Context, refreshToken string) (*refreshResponse, error) {
	body, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return nil, errors.Wrap(err, "encode refresh request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.baseURL+"/auth/refresh", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build refresh request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "refresh session")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstream := decodeUpstreamError(resp)
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden ||
			resp.StatusCode == http.StatusBadRequest {
			return nil, domainerrors.ErrUnauthorized.WithDetails(upstream.Message())
		}

		return nil, upstream
	}

	var out refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "decode refresh response")
	}
	if out.AccessToken == "" {
		return nil, domainerrors.ErrUnauthorized.WithDetails("refresh response carried no access token")
	}

	return &out, nil
}

// expiresWithin reports whether a JWT access token expires inside the skew
// window. Opaque tokens and tokens without exp never count as expiring.
func (i *tokenIssuer) expiresWithin(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return !i.now().Add(i.skew).Before(exp.Time)
}

// refreshingTokenSource holds one access/refresh token pair. Refreshes are
// serialized so concurrent callers share the rotated pair.
type refreshingTokenSource struct {
	issuer *tokenIssuer

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func (s *refreshingTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accessToken != "" && !s.issuer.expiresWithin(s.accessToken) {
		return s.accessToken, nil
	}
	if s.refreshToken == "" {
		// Let the backend decide; it answers 401 when the token is unusable
		return s.accessToken, nil
	}

	return s.refreshLocked(ctx)
}

func (s *refreshingTokenSource) Refresh(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.refreshLocked(ctx)
}

func (s *refreshingTokenSource) refreshLocked(ctx context.Context) (string, error) {
	if s.refreshToken == "" {
		return "", domainerrors.ErrUnauthorized
	}

	out, err := s.issuer.refresh(ctx, s.refreshToken)
	if err != nil {
		return "", err
	}

	s.accessToken = out.AccessToken
	if out.RefreshToken != "" {
		s.refreshToken = out.RefreshToken
	}
	s.issuer.logger.Debug("backend session refreshed")

	return s.accessToken, nil
}
