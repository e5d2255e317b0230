package veld

import (
	"errors"
	"fmt"
	"strings"
)

// Violation codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMinLength    = "min_length"
	CodeMaxLength    = "max_length"
	CodeLength       = "length"
	CodeNotEmpty     = "not_empty"
	CodePattern      = "pattern"
	CodeEmail        = "email"
	CodeMinValue     = "min_value"
	CodeMaxValue     = "max_value"
	CodeRequired     = "required"
	CodeTypeMismatch = "type_mismatch"
	// Time rules judged against the per-call clock.
	CodeBefore = "before"
	CodeAfter  = "after"
	CodePast   = "past"
	CodeFuture = "future"
)

// ValidationError represents a single violation.
type ValidationError struct {
	Path    Path   `json:"path"`
	Code    string `json:"code"` // One of the codes above, or a refinement's own code.
	Message string `json:"message"`
	// Rule optionally records the name of the refinement that produced this violation.
	Rule string `json:"rule,omitempty"`
	// Params carries structured parameters (e.g. {"min":1, "got":42})
	// for i18n and observability.
	Params map[string]any `json:"params,omitempty"`
}

// Errors is an ordered collection of violations that implements error.
type Errors []ValidationError

// Error summarizes the first few violations.
func (e Errors) Error() string {
	if len(e) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(e)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		v := e[i]
		// e.g. min_length at items[2].name
		fmt.Fprintf(b, "%s at %s", v.Code, v.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendErrors appends violations to the destination, initializing the
// slice when needed.
func AppendErrors(dst Errors, more ...Errors) Errors {
	for _, m := range more {
		if len(m) == 0 {
			continue
		}
		if dst == nil {
			dst = Errors{}
		}
		dst = append(dst, m...)
	}
	return dst
}

// AsErrors extracts Errors from an error using errors.As internally.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var e Errors
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
