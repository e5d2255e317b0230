package veld

// ifRule selects exactly one branch. A false predicate with no else branch
// runs nothing and counts as success for this node.
type ifRule[T any] struct {
	pred     func(T) bool
	predWith func(DomainCtx, T) bool
	then     Schema[T]
	els      Schema[T]
}

func (r ifRule[T]) Check(vc *Context, v T) (Errors, bool) {
	match := false
	switch {
	case r.pred != nil:
		match = r.pred(v)
	case r.predWith != nil:
		match = r.predWith(vc.domainCtx(), v)
	}
	branch := r.els
	if match {
		branch = r.then
	}
	if branch == nil {
		return nil, false
	}
	return branch.Eval(vc, v), false
}

// SwitchCase pairs a predicate with the branch schema it guards.
type SwitchCase[T any] struct {
	pred   func(T) bool
	schema Schema[T]
	def    bool
}

// Case constructs a guarded switch branch.
func Case[T any](pred func(T) bool, s Schema[T]) SwitchCase[T] {
	return SwitchCase[T]{pred: pred, schema: s}
}

// Default constructs the fallback branch taken when no case matches.
func Default[T any](s Schema[T]) SwitchCase[T] {
	return SwitchCase[T]{schema: s, def: true}
}

// switchRule evaluates cases in declaration order and runs the first branch
// whose predicate holds, exclusively. With no match it runs the default
// branch if present, otherwise nothing: an unmatched switch is an explicit
// no-op for this node.
type switchRule[T any] struct {
	cases []SwitchCase[T]
}

func (r switchRule[T]) Check(vc *Context, v T) (Errors, bool) {
	for _, c := range r.cases {
		if c.def || c.pred == nil {
			continue
		}
		if c.pred(v) {
			if c.schema == nil {
				return nil, false
			}
			return c.schema.Eval(vc, v), false
		}
	}
	for _, c := range r.cases {
		if c.def && c.schema != nil {
			return c.schema.Eval(vc, v), false
		}
	}
	return nil, false
}
