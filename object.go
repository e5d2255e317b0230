package veld

import "context"

// Property binds a named field of T to its child schema. The field type is
// erased here so ObjectSchema methods stay free of extra type parameters.
type Property[T any] struct {
	name string
	eval func(vc *Context, v T) Errors
}

// Prop adapts a field accessor and the field's schema into a Property.
func Prop[T, F any](get func(T) F, s Schema[F]) Property[T] {
	return Property[T]{eval: func(vc *Context, v T) Errors {
		return s.Eval(vc, get(v))
	}}
}

// ObjectSchema validates a struct-like value field by field, in declaration
// order, then runs its whole-object chain (cross-field refinements,
// conditionals) at the object's own path. A failing field never prevents
// evaluation of subsequent fields.
type ObjectSchema[T any] struct {
	fields []Property[T]
	node   node[T]
}

// Object returns an empty object schema for T.
func Object[T any]() *ObjectSchema[T] { return &ObjectSchema[T]{} }

func (o *ObjectSchema[T]) Eval(vc *Context, v T) Errors {
	restore, ok := o.node.enter(vc, v)
	if !ok {
		return nil
	}
	defer restore()
	var errs Errors
	for _, f := range o.fields {
		if vc.aborted() != nil {
			return errs
		}
		vc.within(Key(f.name), func() {
			errs = AppendErrors(errs, f.eval(vc, v))
		})
	}
	return AppendErrors(errs, o.node.chain.run(vc, v))
}

// Validate executes the schema against v. See the package-level Validate.
func (o *ObjectSchema[T]) Validate(ctx context.Context, v T, opts ...Option) (*Result, error) {
	return Validate[T](ctx, o, v, opts...)
}

// Field registers a field with its bound property. Field order is the
// declaration order violations are reported in.
func (o *ObjectSchema[T]) Field(name string, p Property[T]) *ObjectSchema[T] {
	c := *o
	fs := make([]Property[T], len(o.fields), len(o.fields)+1)
	copy(fs, o.fields)
	p.name = name
	c.fields = append(fs, p)
	return &c
}

func (o *ObjectSchema[T]) with(r Rule[T]) *ObjectSchema[T] {
	c := *o
	c.node = o.node.withRule(r)
	return &c
}

// Refine appends a whole-object predicate rule, run after all fields.
func (o *ObjectSchema[T]) Refine(code string, pred func(T) bool) *ObjectSchema[T] {
	return o.with(refineRule[T]{code: code, fn: pred})
}

// RefineWith appends a named whole-object refinement. Use dc.At to address
// violations to individual fields.
func (o *ObjectSchema[T]) RefineWith(name string, fn func(DomainCtx, T) Errors) *ObjectSchema[T] {
	return o.with(refineWithRule[T]{name: name, fn: fn})
}

// RefineE appends a whole-object refinement that may fail fatally; a
// returned error aborts the whole call.
func (o *ObjectSchema[T]) RefineE(name string, fn func(DomainCtx, T) (Errors, error)) *ObjectSchema[T] {
	return o.with(refineERule[T]{name: name, fn: fn})
}

// If runs then only when pred holds.
func (o *ObjectSchema[T]) If(pred func(T) bool, then Schema[T]) *ObjectSchema[T] {
	return o.with(ifRule[T]{pred: pred, then: then})
}

// IfElse runs exactly one of the two branches.
func (o *ObjectSchema[T]) IfElse(pred func(T) bool, then, els Schema[T]) *ObjectSchema[T] {
	return o.with(ifRule[T]{pred: pred, then: then, els: els})
}

// IfWith is If with a context-aware predicate.
func (o *ObjectSchema[T]) IfWith(pred func(DomainCtx, T) bool, then Schema[T]) *ObjectSchema[T] {
	return o.with(ifRule[T]{predWith: pred, then: then})
}

// Switch runs the first matching case's branch exclusively.
func (o *ObjectSchema[T]) Switch(cases ...SwitchCase[T]) *ObjectSchema[T] {
	return o.with(switchRule[T]{cases: cases})
}

// Using attaches a context factory resolved once per Validate call for this
// node, before any field or whole-object rule runs.
func (o *ObjectSchema[T]) Using(factory func(ctx context.Context, v T) (any, error)) *ObjectSchema[T] {
	c := *o
	c.node = o.node.withFactory(factory)
	return &c
}
