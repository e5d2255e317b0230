package veld

// ruleNode is one link of a persistent rule chain. Nodes are never mutated
// after creation; any number of schemas may share any suffix of links.
type ruleNode[T any] struct {
	rule Rule[T]
	prev *ruleNode[T]
}

// ruleChain is identified by its head node. Appending is O(1): the new head
// links to the old chain as its tail and no existing node is copied.
type ruleChain[T any] struct {
	head *ruleNode[T]
}

func (c ruleChain[T]) append(r Rule[T]) ruleChain[T] {
	return ruleChain[T]{head: &ruleNode[T]{rule: r, prev: c.head}}
}

// run executes the chain in declaration order. Links point from newest to
// oldest, so traversal recurses to the tail before checking each rule on
// the way back. A halting rule (failed type assertion) or a recorded abort
// skips the remainder of the chain; ordinary failures do not, every rule in
// the chain still runs and reports.
func (c ruleChain[T]) run(vc *Context, v T) Errors {
	var errs Errors
	runNode(c.head, vc, v, &errs)
	return errs
}

func runNode[T any](n *ruleNode[T], vc *Context, v T, errs *Errors) (halt bool) {
	if n == nil {
		return false
	}
	if runNode(n.prev, vc, v, errs) {
		return true
	}
	if err := vc.ctx.Err(); err != nil {
		vc.abortWith(err)
		return true
	}
	if vc.aborted() != nil {
		return true
	}
	out, halt := n.rule.Check(vc, v)
	*errs = AppendErrors(*errs, out)
	return halt
}
