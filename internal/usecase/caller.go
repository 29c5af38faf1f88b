package usecase

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
)

type callerKey struct{}

// WithCaller stores the credential the client presented with the request
func WithCaller(ctx context.Context, accessToken string) context.Context {
	return context.WithValue(ctx, callerKey{}, accessToken)
}

// CallerFromContext returns the credential stored by WithCaller, or "" for anonymous calls
func CallerFromContext(ctx context.Context) string {
	token, _ := ctx.Value(callerKey{}).(string)

	return token
}

// CallerDigest identifies a caller without keeping its raw token around
type CallerDigest [sha256.Size]byte

func NewCallerDigest(accessToken string) CallerDigest {
	return sha256.Sum256([]byte(accessToken))
}

// Matches reports whether the token hashes to d
func (d CallerDigest) Matches(accessToken string) bool {
	other := NewCallerDigest(accessToken)

	return subtle.ConstantTimeCompare(d[:], other[:]) == 1
}
