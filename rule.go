package veld

import (
	"github.com/veldhq/veld/i18n"
)

// Rule is one atomic check in a schema's chain. Check returns the rule's
// violations (at most one for value rules) and a halt flag. Halt is true
// only when the rest of the node's chain must be skipped; of the built-in
// rules only a failed type assertion halts.
type Rule[T any] interface {
	Check(vc *Context, v T) (Errors, bool)
}

// refineRule is a plain-predicate refinement carrying its own code.
type refineRule[T any] struct {
	code string
	fn   func(T) bool
}

func (r refineRule[T]) Check(vc *Context, v T) (Errors, bool) {
	if r.fn(v) {
		return nil, false
	}
	return Errors{vc.violation(r.code, i18n.T(r.code, nil), nil)}, false
}

// refineWithRule is a full-control refinement: it receives the DomainCtx
// (resolved context payload, clock, path builder) and reports any number of
// violations itself.
type refineWithRule[T any] struct {
	name string
	fn   func(DomainCtx, T) Errors
}

func (r refineWithRule[T]) Check(vc *Context, v T) (Errors, bool) {
	out := r.fn(vc.domainCtx(), v)
	if len(out) == 0 {
		return nil, false
	}
	stamped := make(Errors, len(out))
	for i, e := range out {
		if e.Path == nil {
			e.Path = vc.snapshot()
		}
		if e.Rule == "" {
			e.Rule = r.name
		}
		stamped[i] = e
	}
	return stamped, false
}

// refineERule is a refinement that may additionally fail fatally, e.g. when
// an external lookup it performs is unavailable. A returned error aborts the
// whole call instead of becoming a violation.
type refineERule[T any] struct {
	name string
	fn   func(DomainCtx, T) (Errors, error)
}

func (r refineERule[T]) Check(vc *Context, v T) (Errors, bool) {
	out, err := r.fn(vc.domainCtx(), v)
	if err != nil {
		vc.abortWith(err)
		return nil, true
	}
	if len(out) == 0 {
		return nil, false
	}
	stamped := make(Errors, len(out))
	for i, e := range out {
		if e.Path == nil {
			e.Path = vc.snapshot()
		}
		if e.Rule == "" {
			e.Rule = r.name
		}
		stamped[i] = e
	}
	return stamped, false
}
