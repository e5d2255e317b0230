package veld

import (
	gojson "github.com/goccy/go-json"
)

// ErrorPayload shapes violations for JSON responses. Hosting pipelines map
// this to their client-facing format.
func ErrorPayload(errs Errors) map[string]any {
	return map[string]any{"errors": errs}
}

// EncodeErrors renders the ordered violation list as JSON. Each entry
// carries {path, code, message} with the path in dotted/bracketed form;
// this shape is a stable contract for collaborators.
func EncodeErrors(errs Errors) ([]byte, error) {
	return gojson.Marshal(errs)
}
