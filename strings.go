package veld

import (
	"context"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/veldhq/veld/i18n"
)

// StringSchema validates strings. Lengths are counted in runes.
type StringSchema struct {
	node node[string]
}

// String returns an empty string schema.
func String() *StringSchema { return &StringSchema{} }

func (s *StringSchema) Eval(vc *Context, v string) Errors {
	restore, ok := s.node.enter(vc, v)
	if !ok {
		return nil
	}
	defer restore()
	return s.node.chain.run(vc, v)
}

// Validate executes the schema against v. See the package-level Validate.
func (s *StringSchema) Validate(ctx context.Context, v string, opts ...Option) (*Result, error) {
	return Validate[string](ctx, s, v, opts...)
}

func (s *StringSchema) with(r Rule[string]) *StringSchema {
	c := *s
	c.node = s.node.withRule(r)
	return &c
}

// MinLength requires at least min runes.
func (s *StringSchema) MinLength(min int) *StringSchema {
	return s.with(minLengthRule{min: min})
}

// MaxLength requires at most max runes.
func (s *StringSchema) MaxLength(max int) *StringSchema {
	return s.with(maxLengthRule{max: max})
}

// Length requires exactly n runes.
func (s *StringSchema) Length(n int) *StringSchema {
	return s.with(lengthRule{n: n})
}

// NotEmpty rejects strings that are empty after trimming whitespace.
func (s *StringSchema) NotEmpty() *StringSchema {
	return s.with(notEmptyRule{})
}

// Pattern requires the value to match expr. It panics at schema-build time
// when expr is not a valid regular expression.
func (s *StringSchema) Pattern(expr string) *StringSchema {
	return s.with(patternRule{re: regexp.MustCompile(expr)})
}

// Email requires an RFC 5322 address with a dotted domain.
func (s *StringSchema) Email() *StringSchema {
	return s.with(emailRule{})
}

// Refine appends a predicate rule with the given violation code.
func (s *StringSchema) Refine(code string, pred func(string) bool) *StringSchema {
	return s.with(refineRule[string]{code: code, fn: pred})
}

// RefineWith appends a named refinement with full control over violations.
func (s *StringSchema) RefineWith(name string, fn func(DomainCtx, string) Errors) *StringSchema {
	return s.with(refineWithRule[string]{name: name, fn: fn})
}

// If runs then only when pred holds.
func (s *StringSchema) If(pred func(string) bool, then Schema[string]) *StringSchema {
	return s.with(ifRule[string]{pred: pred, then: then})
}

// IfElse runs exactly one of the two branches.
func (s *StringSchema) IfElse(pred func(string) bool, then, els Schema[string]) *StringSchema {
	return s.with(ifRule[string]{pred: pred, then: then, els: els})
}

// Switch runs the first matching case's branch exclusively.
func (s *StringSchema) Switch(cases ...SwitchCase[string]) *StringSchema {
	return s.with(switchRule[string]{cases: cases})
}

// Using attaches a context factory resolved once per call for this node.
func (s *StringSchema) Using(factory func(ctx context.Context, v string) (any, error)) *StringSchema {
	c := *s
	c.node = s.node.withFactory(factory)
	return &c
}

// ---- string rule variants ----

type minLengthRule struct{ min int }

func (r minLengthRule) Check(vc *Context, v string) (Errors, bool) {
	n := utf8.RuneCountInString(v)
	if n >= r.min {
		return nil, false
	}
	params := map[string]any{"min": r.min, "got": n}
	return Errors{vc.violation(CodeMinLength, i18n.T(CodeMinLength, params), params)}, false
}

type maxLengthRule struct{ max int }

func (r maxLengthRule) Check(vc *Context, v string) (Errors, bool) {
	n := utf8.RuneCountInString(v)
	if n <= r.max {
		return nil, false
	}
	params := map[string]any{"max": r.max, "got": n}
	return Errors{vc.violation(CodeMaxLength, i18n.T(CodeMaxLength, params), params)}, false
}

type lengthRule struct{ n int }

func (r lengthRule) Check(vc *Context, v string) (Errors, bool) {
	n := utf8.RuneCountInString(v)
	if n == r.n {
		return nil, false
	}
	params := map[string]any{"len": r.n, "got": n}
	return Errors{vc.violation(CodeLength, i18n.T(CodeLength, params), params)}, false
}

type notEmptyRule struct{}

func (notEmptyRule) Check(vc *Context, v string) (Errors, bool) {
	if strings.TrimSpace(v) != "" {
		return nil, false
	}
	return Errors{vc.violation(CodeNotEmpty, i18n.T(CodeNotEmpty, nil), nil)}, false
}

type patternRule struct{ re *regexp.Regexp }

func (r patternRule) Check(vc *Context, v string) (Errors, bool) {
	if r.re.MatchString(v) {
		return nil, false
	}
	params := map[string]any{"pattern": r.re.String()}
	return Errors{vc.violation(CodePattern, i18n.T(CodePattern, params), params)}, false
}

type emailRule struct{}

func (emailRule) Check(vc *Context, v string) (Errors, bool) {
	if validEmail(v) {
		return nil, false
	}
	return Errors{vc.violation(CodeEmail, i18n.T(CodeEmail, nil), nil)}, false
}

// validEmail accepts bare RFC 5322 addresses with a dotted domain and
// rejects display-name forms.
func validEmail(v string) bool {
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return false
	}
	at := strings.LastIndex(addr.Address, "@")
	if at <= 0 {
		return false
	}
	domain := addr.Address[at+1:]
	return strings.Contains(domain, ".")
}
