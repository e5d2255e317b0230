package veld

import (
	"context"
	"errors"
)

// ErrServiceNotProvided is returned by RequireService when the requested
// capability was not injected into the call's context.
var ErrServiceNotProvided = errors.New("veld: service not provided")

// serviceKey is a unique context key per type parameter T.
type serviceKey[T any] struct{}

// WithService injects a typed capability handle (repository, lookup client,
// ...) into the context for use by context factories and refinement rules.
// The handle is assumed safe for concurrent read-only use.
func WithService[T any](ctx context.Context, svc T) context.Context {
	return context.WithValue(ctx, serviceKey[T]{}, svc)
}

// Service retrieves a typed capability handle injected with WithService.
func Service[T any](ctx context.Context) (T, bool) {
	if v, ok := ctx.Value(serviceKey[T]{}).(T); ok {
		return v, true
	}
	var zero T
	return zero, false
}

// RequireService returns the handle or an error suitable for aborting the
// call from a context factory.
func RequireService[T any](ctx context.Context) (T, error) {
	if v, ok := Service[T](ctx); ok {
		return v, nil
	}
	var zero T
	return zero, ErrServiceNotProvided
}
