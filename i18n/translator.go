// Package i18n supplies default violation messages and a swap point for
// localized or domain-specific wording.
package i18n

import (
	"fmt"
	"strings"
)

// Translator retrieves the message for a violation code. params carries the
// rule's structured parameters (for example "min" or "got").
type Translator interface {
	Message(code string, params map[string]any) string
}

// dictTranslator is the built-in dictionary-based Translator. Placeholders
// of the form {name} are replaced from params.
type dictTranslator struct{}

var defaultMessages = map[string]string{
	"min_length":    "must be at least {min} characters",
	"max_length":    "must be at most {max} characters",
	"length":        "must be exactly {len} characters",
	"not_empty":     "must not be empty",
	"pattern":       "does not match the required pattern",
	"email":         "must be a valid email address",
	"min_value":     "must be at least {min}",
	"max_value":     "must be at most {max}",
	"required":      "is required",
	"type_mismatch": "unexpected runtime type",
	"before":        "must be before {limit}",
	"after":         "must be after {limit}",
	"past":          "must be in the past",
	"future":        "must be in the future",
}

func (dictTranslator) Message(code string, params map[string]any) string {
	tmpl, ok := defaultMessages[code]
	if !ok {
		// Unknown codes (user refinements without a dictionary entry)
		// humanize to "some code" form.
		return strings.ReplaceAll(code, "_", " ")
	}
	return interpolate(tmpl, params)
}

// interpolate replaces {name} placeholders with fmt.Sprint of the matching
// param. Placeholders without a param are left as-is.
func interpolate(tmpl string, params map[string]any) string {
	if len(params) == 0 || !strings.ContainsRune(tmpl, '{') {
		return tmpl
	}
	b := &strings.Builder{}
	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		end := strings.IndexByte(tmpl[open:], '}')
		if end < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		end += open
		b.WriteString(tmpl[:open])
		name := tmpl[open+1 : end]
		if v, ok := params[name]; ok {
			b.WriteString(fmt.Sprint(v))
		} else {
			b.WriteString(tmpl[open : end+1])
		}
		tmpl = tmpl[end+1:]
	}
}

var current Translator = dictTranslator{}

// SetTranslator replaces the Translator implementation. Passing nil
// restores the built-in dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		current = dictTranslator{}
		return
	}
	current = tr
}

// T fetches the message for code using the current Translator.
func T(code string, params map[string]any) string {
	return current.Message(code, params)
}
