package veld

import (
	"context"

	"github.com/veldhq/veld/i18n"
)

// Numeric is the constraint union accepted by number schemas.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NumberSchema validates numeric values of type T.
type NumberSchema[T Numeric] struct {
	node node[T]
}

// Number returns an empty number schema for T.
func Number[T Numeric]() *NumberSchema[T] { return &NumberSchema[T]{} }

func (s *NumberSchema[T]) Eval(vc *Context, v T) Errors {
	restore, ok := s.node.enter(vc, v)
	if !ok {
		return nil
	}
	defer restore()
	return s.node.chain.run(vc, v)
}

// Validate executes the schema against v. See the package-level Validate.
func (s *NumberSchema[T]) Validate(ctx context.Context, v T, opts ...Option) (*Result, error) {
	return Validate[T](ctx, s, v, opts...)
}

func (s *NumberSchema[T]) with(r Rule[T]) *NumberSchema[T] {
	c := *s
	c.node = s.node.withRule(r)
	return &c
}

// Min requires v >= min.
func (s *NumberSchema[T]) Min(min T) *NumberSchema[T] {
	return s.with(minRule[T]{min: min})
}

// Max requires v <= max.
func (s *NumberSchema[T]) Max(max T) *NumberSchema[T] {
	return s.with(maxRule[T]{max: max})
}

// Positive requires v > 0.
func (s *NumberSchema[T]) Positive() *NumberSchema[T] {
	return s.with(positiveRule[T]{})
}

// Refine appends a predicate rule with the given violation code.
func (s *NumberSchema[T]) Refine(code string, pred func(T) bool) *NumberSchema[T] {
	return s.with(refineRule[T]{code: code, fn: pred})
}

// RefineWith appends a named refinement with full control over violations.
func (s *NumberSchema[T]) RefineWith(name string, fn func(DomainCtx, T) Errors) *NumberSchema[T] {
	return s.with(refineWithRule[T]{name: name, fn: fn})
}

// If runs then only when pred holds.
func (s *NumberSchema[T]) If(pred func(T) bool, then Schema[T]) *NumberSchema[T] {
	return s.with(ifRule[T]{pred: pred, then: then})
}

// IfElse runs exactly one of the two branches.
func (s *NumberSchema[T]) IfElse(pred func(T) bool, then, els Schema[T]) *NumberSchema[T] {
	return s.with(ifRule[T]{pred: pred, then: then, els: els})
}

// Switch runs the first matching case's branch exclusively.
func (s *NumberSchema[T]) Switch(cases ...SwitchCase[T]) *NumberSchema[T] {
	return s.with(switchRule[T]{cases: cases})
}

// Using attaches a context factory resolved once per call for this node.
func (s *NumberSchema[T]) Using(factory func(ctx context.Context, v T) (any, error)) *NumberSchema[T] {
	c := *s
	c.node = s.node.withFactory(factory)
	return &c
}

// ---- numeric rule variants ----

type minRule[T Numeric] struct{ min T }

func (r minRule[T]) Check(vc *Context, v T) (Errors, bool) {
	if v >= r.min {
		return nil, false
	}
	params := map[string]any{"min": r.min, "got": v}
	return Errors{vc.violation(CodeMinValue, i18n.T(CodeMinValue, params), params)}, false
}

type maxRule[T Numeric] struct{ max T }

func (r maxRule[T]) Check(vc *Context, v T) (Errors, bool) {
	if v <= r.max {
		return nil, false
	}
	params := map[string]any{"max": r.max, "got": v}
	return Errors{vc.violation(CodeMaxValue, i18n.T(CodeMaxValue, params), params)}, false
}

type positiveRule[T Numeric] struct{}

func (positiveRule[T]) Check(vc *Context, v T) (Errors, bool) {
	if v > 0 {
		return nil, false
	}
	params := map[string]any{"min": 1, "got": v}
	return Errors{vc.violation(CodeMinValue, i18n.T(CodeMinValue, params), params)}, false
}
