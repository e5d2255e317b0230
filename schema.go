package veld

import "context"

// Schema describes how to validate a typed value. Implementations are
// immutable: Eval never mutates the schema, so one schema may serve any
// number of concurrent Validate calls without locking.
type Schema[T any] interface {
	// Eval walks the schema against v using the call's shared state and
	// returns all violations in traversal order. Implementations record
	// cancellation or resolution failures on vc instead of returning them.
	Eval(vc *Context, v T) Errors
}

// Validate executes s against v. The returned error is non-nil only for
// abrupt termination (cancellation, failed context resolution); it is never
// a violation. Otherwise the Result carries all violations in a stable
// order: fields depth-first in declaration order, collection elements in
// iteration order.
func Validate[T any](ctx context.Context, s Schema[T], v T, opts ...Option) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	vc := newContext(ctx, opts...)
	errs := s.Eval(vc, v)
	if err := vc.aborted(); err != nil {
		return nil, err
	}
	return newResult(errs), nil
}

// Ok reports whether v conforms to s. Abrupt termination counts as false.
func Ok[T any](ctx context.Context, s Schema[T], v T) bool {
	res, err := Validate(ctx, s, v)
	return err == nil && res.OK()
}

// node is the state every schema variant owns: its rule chain and an
// optional context factory.
type node[T any] struct {
	chain   ruleChain[T]
	factory func(ctx context.Context, v T) (any, error)
}

func (n node[T]) withRule(r Rule[T]) node[T] {
	n.chain = n.chain.append(r)
	return n
}

func (n node[T]) withFactory(f func(ctx context.Context, v T) (any, error)) node[T] {
	n.factory = f
	return n
}

// enter resolves the node's context factory, once per call for this node,
// before any of its rules or children run. The returned restore func undoes
// the payload scoping; ok is false when the call aborted.
func (n node[T]) enter(vc *Context, v T) (restore func(), ok bool) {
	if err := vc.ctx.Err(); err != nil {
		vc.abortWith(err)
		return nil, false
	}
	if vc.aborted() != nil {
		return nil, false
	}
	if n.factory == nil {
		return func() {}, true
	}
	data, err := n.factory(vc.ctx, v)
	if err != nil {
		vc.abortWith(err)
		return nil, false
	}
	prev := vc.data
	vc.data = data
	return func() { vc.data = prev }, true
}
