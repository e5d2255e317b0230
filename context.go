package veld

import (
	"context"
	"sync"
	"time"
)

// Context carries the per-call state of one Validate invocation: the
// cancellation signal and injected services (context.Context), the path
// stack, the time source, and the context payload resolved by the nearest
// enclosing Using node. It is created fresh per call and never shared
// across calls; concurrent branches work on forks.
type Context struct {
	ctx   context.Context
	clock func() time.Time
	path  Path
	data  any
	abort *abortState
}

// abortState is shared across forks of one call so that a cancellation or
// resolution failure seen by any branch aborts the whole call.
type abortState struct {
	mu  sync.Mutex
	err error
}

func (a *abortState) set(err error) {
	if err == nil {
		return
	}
	a.mu.Lock()
	if a.err == nil {
		a.err = err
	}
	a.mu.Unlock()
}

func (a *abortState) get() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

func newContext(ctx context.Context, opts ...Option) *Context {
	vc := &Context{
		ctx:   ctx,
		clock: time.Now,
		abort: &abortState{},
	}
	for _, opt := range opts {
		opt(vc)
	}
	return vc
}

// Option configures the per-call Context built by Validate.
type Option func(*Context)

// WithClock replaces the time source used by time-based rules.
func WithClock(now func() time.Time) Option {
	return func(vc *Context) {
		if now != nil {
			vc.clock = now
		}
	}
}

// Ctx returns the call's context.Context (cancellation and services).
func (vc *Context) Ctx() context.Context { return vc.ctx }

// Now returns the current time from the call's time source.
func (vc *Context) Now() time.Time { return vc.clock() }

// Data returns the context payload resolved by the nearest enclosing Using
// node, or nil when no factory is in scope.
func (vc *Context) Data() any { return vc.data }

// At returns a PathRef anchored at the current position in the traversal.
func (vc *Context) At() PathRef { return PathRef{base: vc.snapshot()} }

// abortWith records the first abrupt-termination error of the call.
func (vc *Context) abortWith(err error) { vc.abort.set(err) }

// aborted returns the call's abort error, if any branch recorded one.
func (vc *Context) aborted() error { return vc.abort.get() }

// snapshot copies the current path stack for embedding into a violation.
func (vc *Context) snapshot() Path {
	if len(vc.path) == 0 {
		return nil
	}
	out := make(Path, len(vc.path))
	copy(out, vc.path)
	return out
}

// within runs fn with the path stack extended by seg. The segment is popped
// on every exit path, panics included.
func (vc *Context) within(seg Segment, fn func()) {
	vc.path = append(vc.path, seg)
	defer func() { vc.path = vc.path[:len(vc.path)-1] }()
	fn()
}

// fork derives a Context for a concurrent branch: its own path stack seeded
// with the current position, sharing the abort state with its siblings.
func (vc *Context) fork(ctx context.Context) *Context {
	return &Context{
		ctx:   ctx,
		clock: vc.clock,
		path:  vc.snapshot(),
		data:  vc.data,
		abort: vc.abort,
	}
}

// violation creates a ValidationError at the current path.
func (vc *Context) violation(code, msg string, params map[string]any) ValidationError {
	return ValidationError{Path: vc.snapshot(), Code: code, Message: msg, Params: params}
}

// DomainCtx is handed to refinement rules and context-aware predicates. It
// exposes the call's context.Context, the resolved context payload of the
// owning node, the time source, and a PathRef for addressing violations.
type DomainCtx struct {
	Ctx  context.Context
	Data any
	Now  func() time.Time
	At   PathRef
}

func (vc *Context) domainCtx() DomainCtx {
	return DomainCtx{Ctx: vc.ctx, Data: vc.data, Now: vc.clock, At: vc.At()}
}

// ResolvedAs retrieves the resolved context payload as C.
func ResolvedAs[C any](dc DomainCtx) (C, bool) {
	c, ok := dc.Data.(C)
	return c, ok
}
