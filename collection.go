package veld

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/veldhq/veld/i18n"
)

// CollectionSchema validates a slice: collection-level rules run against
// the whole slice first, then each element is validated by the element
// schema under an index segment, in iteration order. Concurrent() opts into
// parallel element validation with declaration-order merge.
type CollectionSchema[E any] struct {
	node     node[[]E]
	elem     Schema[E]
	parallel bool
}

// Collection returns an empty collection schema over []E.
func Collection[E any]() *CollectionSchema[E] { return &CollectionSchema[E]{} }

func (s *CollectionSchema[E]) Eval(vc *Context, v []E) Errors {
	restore, ok := s.node.enter(vc, v)
	if !ok {
		return nil
	}
	defer restore()
	errs := s.node.chain.run(vc, v)
	if s.elem == nil || vc.aborted() != nil {
		return errs
	}
	if s.parallel && len(v) > 1 {
		return AppendErrors(errs, s.evalElementsConcurrent(vc, v))
	}
	for i := range v {
		if vc.aborted() != nil {
			return errs
		}
		vc.within(Index(i), func() {
			errs = AppendErrors(errs, s.elem.Eval(vc, v[i]))
		})
	}
	return errs
}

// evalElementsConcurrent validates elements in parallel. Each branch gets a
// path-scoped Context fork; per-element violations are merged back in
// iteration order after all branches complete, so the result is identical
// to a sequential run. An abort in any branch cancels the siblings.
func (s *CollectionSchema[E]) evalElementsConcurrent(vc *Context, v []E) Errors {
	g, gctx := errgroup.WithContext(vc.ctx)
	results := make([]Errors, len(v))
	for i := range v {
		i := i
		fv := vc.fork(gctx)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fv.within(Index(i), func() {
				results[i] = s.elem.Eval(fv, v[i])
			})
			return fv.aborted()
		})
	}
	if err := g.Wait(); err != nil {
		vc.abortWith(err)
		return nil
	}
	var errs Errors
	for _, r := range results {
		errs = AppendErrors(errs, r)
	}
	return errs
}

// Validate executes the schema against v. See the package-level Validate.
func (s *CollectionSchema[E]) Validate(ctx context.Context, v []E, opts ...Option) (*Result, error) {
	return Validate[[]E](ctx, s, v, opts...)
}

func (s *CollectionSchema[E]) with(r Rule[[]E]) *CollectionSchema[E] {
	c := *s
	c.node = s.node.withRule(r)
	return &c
}

// Each sets the schema every element is validated against.
func (s *CollectionSchema[E]) Each(elem Schema[E]) *CollectionSchema[E] {
	c := *s
	c.elem = elem
	return &c
}

// Concurrent opts into parallel element validation. Violation order is
// unchanged from the sequential run.
func (s *CollectionSchema[E]) Concurrent() *CollectionSchema[E] {
	c := *s
	c.parallel = true
	return &c
}

// MinLength requires at least min elements.
func (s *CollectionSchema[E]) MinLength(min int) *CollectionSchema[E] {
	return s.with(colMinRule[E]{min: min})
}

// MaxLength requires at most max elements.
func (s *CollectionSchema[E]) MaxLength(max int) *CollectionSchema[E] {
	return s.with(colMaxRule[E]{max: max})
}

// Length requires exactly n elements.
func (s *CollectionSchema[E]) Length(n int) *CollectionSchema[E] {
	return s.with(colLenRule[E]{n: n})
}

// NotEmpty requires at least one element.
func (s *CollectionSchema[E]) NotEmpty() *CollectionSchema[E] {
	return s.with(colNotEmptyRule[E]{})
}

// Refine appends a whole-collection predicate rule.
func (s *CollectionSchema[E]) Refine(code string, pred func([]E) bool) *CollectionSchema[E] {
	return s.with(refineRule[[]E]{code: code, fn: pred})
}

// RefineWith appends a named whole-collection refinement.
func (s *CollectionSchema[E]) RefineWith(name string, fn func(DomainCtx, []E) Errors) *CollectionSchema[E] {
	return s.with(refineWithRule[[]E]{name: name, fn: fn})
}

// Using attaches a context factory resolved once per call for this node.
func (s *CollectionSchema[E]) Using(factory func(ctx context.Context, v []E) (any, error)) *CollectionSchema[E] {
	c := *s
	c.node = s.node.withFactory(factory)
	return &c
}

// ---- collection rule variants ----

type colMinRule[E any] struct{ min int }

func (r colMinRule[E]) Check(vc *Context, v []E) (Errors, bool) {
	if len(v) >= r.min {
		return nil, false
	}
	params := map[string]any{"min": r.min, "got": len(v)}
	return Errors{vc.violation(CodeMinLength, i18n.T(CodeMinLength, params), params)}, false
}

type colMaxRule[E any] struct{ max int }

func (r colMaxRule[E]) Check(vc *Context, v []E) (Errors, bool) {
	if len(v) <= r.max {
		return nil, false
	}
	params := map[string]any{"max": r.max, "got": len(v)}
	return Errors{vc.violation(CodeMaxLength, i18n.T(CodeMaxLength, params), params)}, false
}

type colLenRule[E any] struct{ n int }

func (r colLenRule[E]) Check(vc *Context, v []E) (Errors, bool) {
	if len(v) == r.n {
		return nil, false
	}
	params := map[string]any{"len": r.n, "got": len(v)}
	return Errors{vc.violation(CodeLength, i18n.T(CodeLength, params), params)}, false
}

type colNotEmptyRule[E any] struct{}

func (colNotEmptyRule[E]) Check(vc *Context, v []E) (Errors, bool) {
	if len(v) > 0 {
		return nil, false
	}
	return Errors{vc.violation(CodeNotEmpty, i18n.T(CodeNotEmpty, nil), nil)}, false
}
