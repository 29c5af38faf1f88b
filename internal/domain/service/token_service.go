package service

import (
	"context"
)

// TokenSource supplies bearer tokens for backend calls
type TokenSource interface {
	// Token returns a usable access token, refreshing it first when it is about to expire
	Token(ctx context.Context) (string, error)

	// Refresh discards the current access token and obtains a new one
	Refresh(ctx context.Context) (string, error)
}

// TokenIssuer builds token sources for backend calls. Empty credentials fall
// back to the service's own credentials, which may be absent.
type TokenIssuer interface {
	NewTokenSource(accessToken, refreshToken string) TokenSource
}
