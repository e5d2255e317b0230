package veld

import (
	"context"
	"time"

	"github.com/veldhq/veld/i18n"
)

// TimeSchema validates time.Time values. Past and Future judge against the
// per-call clock, which tests replace via WithClock.
type TimeSchema struct {
	node node[time.Time]
}

// Time returns an empty time schema.
func Time() *TimeSchema { return &TimeSchema{} }

func (s *TimeSchema) Eval(vc *Context, v time.Time) Errors {
	restore, ok := s.node.enter(vc, v)
	if !ok {
		return nil
	}
	defer restore()
	return s.node.chain.run(vc, v)
}

// Validate executes the schema against v. See the package-level Validate.
func (s *TimeSchema) Validate(ctx context.Context, v time.Time, opts ...Option) (*Result, error) {
	return Validate[time.Time](ctx, s, v, opts...)
}

func (s *TimeSchema) with(r Rule[time.Time]) *TimeSchema {
	c := *s
	c.node = s.node.withRule(r)
	return &c
}

// Before requires v to be strictly before limit.
func (s *TimeSchema) Before(limit time.Time) *TimeSchema {
	return s.with(beforeRule{limit: limit})
}

// After requires v to be strictly after limit.
func (s *TimeSchema) After(limit time.Time) *TimeSchema {
	return s.with(afterRule{limit: limit})
}

// Past requires v to be before the call's current time.
func (s *TimeSchema) Past() *TimeSchema { return s.with(pastRule{}) }

// Future requires v to be after the call's current time.
func (s *TimeSchema) Future() *TimeSchema { return s.with(futureRule{}) }

// Refine appends a predicate rule with the given violation code.
func (s *TimeSchema) Refine(code string, pred func(time.Time) bool) *TimeSchema {
	return s.with(refineRule[time.Time]{code: code, fn: pred})
}

// RefineWith appends a named refinement with full control over violations.
func (s *TimeSchema) RefineWith(name string, fn func(DomainCtx, time.Time) Errors) *TimeSchema {
	return s.with(refineWithRule[time.Time]{name: name, fn: fn})
}

// Using attaches a context factory resolved once per call for this node.
func (s *TimeSchema) Using(factory func(ctx context.Context, v time.Time) (any, error)) *TimeSchema {
	c := *s
	c.node = s.node.withFactory(factory)
	return &c
}

// ---- time rule variants ----

type beforeRule struct{ limit time.Time }

func (r beforeRule) Check(vc *Context, v time.Time) (Errors, bool) {
	if v.Before(r.limit) {
		return nil, false
	}
	params := map[string]any{"limit": r.limit}
	return Errors{vc.violation(CodeBefore, i18n.T(CodeBefore, params), params)}, false
}

type afterRule struct{ limit time.Time }

func (r afterRule) Check(vc *Context, v time.Time) (Errors, bool) {
	if v.After(r.limit) {
		return nil, false
	}
	params := map[string]any{"limit": r.limit}
	return Errors{vc.violation(CodeAfter, i18n.T(CodeAfter, params), params)}, false
}

type pastRule struct{}

func (pastRule) Check(vc *Context, v time.Time) (Errors, bool) {
	if v.Before(vc.Now()) {
		return nil, false
	}
	return Errors{vc.violation(CodePast, i18n.T(CodePast, nil), nil)}, false
}

type futureRule struct{}

func (futureRule) Check(vc *Context, v time.Time) (Errors, bool) {
	if v.After(vc.Now()) {
		return nil, false
	}
	return Errors{vc.violation(CodeFuture, i18n.T(CodeFuture, nil), nil)}, false
}
