package veld

// Result is the outcome of one Validate call: either success or an ordered,
// non-empty list of violations.
type Result struct {
	errs Errors
}

// The zero-violation Result is shared; success never allocates per call.
var okResult = &Result{}

func newResult(errs Errors) *Result {
	if len(errs) == 0 {
		return okResult
	}
	return &Result{errs: errs}
}

// OK reports whether the traversal produced zero violations.
func (r *Result) OK() bool { return len(r.errs) == 0 }

// Errors returns all violations in traversal order, or nil on success.
func (r *Result) Errors() Errors { return r.errs }

// Err returns nil on success, otherwise the violations as an error value.
func (r *Result) Err() error {
	if len(r.errs) == 0 {
		return nil
	}
	return r.errs
}
