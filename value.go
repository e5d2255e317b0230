package veld

import (
	"context"
	"fmt"
	"reflect"
)

// ValueSchema validates one value of type T with a persistent rule chain.
// Every fluent call returns a new schema sharing the old chain as a suffix;
// the receiver is never mutated.
type ValueSchema[T any] struct {
	node node[T]
}

// Value returns an empty value schema. T is typically an interface type
// when the schema will narrow with As, or a concrete domain type.
func Value[T any]() *ValueSchema[T] { return &ValueSchema[T]{} }

func (s *ValueSchema[T]) Eval(vc *Context, v T) Errors {
	restore, ok := s.node.enter(vc, v)
	if !ok {
		return nil
	}
	defer restore()
	return s.node.chain.run(vc, v)
}

// Validate executes the schema against v. See the package-level Validate.
func (s *ValueSchema[T]) Validate(ctx context.Context, v T, opts ...Option) (*Result, error) {
	return Validate[T](ctx, s, v, opts...)
}

func (s *ValueSchema[T]) with(r Rule[T]) *ValueSchema[T] {
	c := *s
	c.node = s.node.withRule(r)
	return &c
}

// Refine appends a predicate rule; a false predicate reports one violation
// with the given code.
func (s *ValueSchema[T]) Refine(code string, pred func(T) bool) *ValueSchema[T] {
	return s.with(refineRule[T]{code: code, fn: pred})
}

// RefineWith appends a named refinement with full control over the reported
// violations. Violations with a zero path are addressed to the current node.
func (s *ValueSchema[T]) RefineWith(name string, fn func(DomainCtx, T) Errors) *ValueSchema[T] {
	return s.with(refineWithRule[T]{name: name, fn: fn})
}

// RefineE appends a refinement that may fail fatally; a returned error
// aborts the whole call.
func (s *ValueSchema[T]) RefineE(name string, fn func(DomainCtx, T) (Errors, error)) *ValueSchema[T] {
	return s.with(refineERule[T]{name: name, fn: fn})
}

// If runs then only when pred holds; otherwise this node is a no-op.
func (s *ValueSchema[T]) If(pred func(T) bool, then Schema[T]) *ValueSchema[T] {
	return s.with(ifRule[T]{pred: pred, then: then})
}

// IfElse runs exactly one of the two branches.
func (s *ValueSchema[T]) IfElse(pred func(T) bool, then, els Schema[T]) *ValueSchema[T] {
	return s.with(ifRule[T]{pred: pred, then: then, els: els})
}

// IfWith is If with a context-aware predicate.
func (s *ValueSchema[T]) IfWith(pred func(DomainCtx, T) bool, then Schema[T]) *ValueSchema[T] {
	return s.with(ifRule[T]{predWith: pred, then: then})
}

// Switch runs the first matching case's branch exclusively.
func (s *ValueSchema[T]) Switch(cases ...SwitchCase[T]) *ValueSchema[T] {
	return s.with(switchRule[T]{cases: cases})
}

// Using attaches a context factory resolved once per Validate call for this
// node, before its rules run. The payload is visible to every rule and
// branch under the node through DomainCtx.Data. A factory error aborts the
// call.
func (s *ValueSchema[T]) Using(factory func(ctx context.Context, v T) (any, error)) *ValueSchema[T] {
	c := *s
	c.node = s.node.withFactory(factory)
	return &c
}

// assertRule is a checked dynamic cast. On mismatch it reports exactly one
// type_mismatch violation and halts the rest of this node's chain; sibling
// nodes are unaffected.
type assertRule[T any] struct {
	typeName string
	check    func(vc *Context, v T) (Errors, bool)
}

func (r assertRule[T]) Check(vc *Context, v T) (Errors, bool) {
	return r.check(vc, v)
}

// As appends a runtime type assertion narrowing T to U. On success the
// narrowed schema runs against the U view of the value; rules appended
// after As still run against the original T.
func As[T, U any](s *ValueSchema[T], narrowed Schema[U]) *ValueSchema[T] {
	name := typeName[U]()
	return s.with(assertRule[T]{
		typeName: name,
		check: func(vc *Context, v T) (Errors, bool) {
			u, ok := any(v).(U)
			if !ok {
				msg := fmt.Sprintf("Expected value to be of type '%s' but was '%s'", name, actualTypeName(v))
				params := map[string]any{"expected": name, "actual": actualTypeName(v)}
				return Errors{vc.violation(CodeTypeMismatch, msg, params)}, true
			}
			if narrowed == nil {
				return nil, false
			}
			return narrowed.Eval(vc, u), false
		},
	})
}

func typeName[U any]() string {
	t := reflect.TypeOf((*U)(nil)).Elem()
	return t.String()
}

func actualTypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
