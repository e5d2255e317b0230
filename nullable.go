package veld

import (
	"context"

	"github.com/veldhq/veld/i18n"
)

// NullableSchema wraps a schema so that absent values pass. A nil pointer
// succeeds unless Required was set; a non-nil pointer is dereferenced and
// delegated to the wrapped schema.
type NullableSchema[T any] struct {
	inner    Schema[T]
	required bool
}

// Nullable wraps inner for optional *T values.
func Nullable[T any](inner Schema[T]) *NullableSchema[T] {
	return &NullableSchema[T]{inner: inner}
}

// Required makes a nil value a violation instead of a success.
func (s *NullableSchema[T]) Required() *NullableSchema[T] {
	c := *s
	c.required = true
	return &c
}

func (s *NullableSchema[T]) Eval(vc *Context, v *T) Errors {
	if v == nil {
		if s.required {
			return Errors{vc.violation(CodeRequired, i18n.T(CodeRequired, nil), nil)}
		}
		return nil
	}
	if s.inner == nil {
		return nil
	}
	return s.inner.Eval(vc, *v)
}

// Validate executes the schema against v. See the package-level Validate.
func (s *NullableSchema[T]) Validate(ctx context.Context, v *T, opts ...Option) (*Result, error) {
	return Validate[*T](ctx, s, v, opts...)
}
