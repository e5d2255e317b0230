package veld_test

import (
	"context"
	"testing"

	veld "github.com/veldhq/veld"
)

// TestEncodeErrors pins the wire shape: an array of {path, code, message}
// objects with dotted/bracketed paths.
func TestEncodeErrors(t *testing.T) {
	errs := veld.Errors{
		veld.Root().Field("name").Violation("min_length", "too short"),
		veld.Root().Field("items").Index(0).Violation("min_value", "too small"),
	}

	out, err := veld.EncodeErrors(errs)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := `[{"path":"name","code":"min_length","message":"too short"},` +
		`{"path":"items[0]","code":"min_value","message":"too small"}]`
	if string(out) != want {
		t.Fatalf("wire shape changed:\nwant %s\ngot  %s", want, out)
	}
}

// TestEncodeErrors_FromValidate encodes a real validation outcome.
func TestEncodeErrors_FromValidate(t *testing.T) {
	ctx := context.Background()
	res, err := userSchema().Validate(ctx, user{Name: "Jo", Email: "invalid-email"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	out, err := veld.EncodeErrors(res.Errors())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := `[{"path":"name","code":"min_length","message":"must be at least 3 characters","params":{"got":2,"min":3}},` +
		`{"path":"email","code":"email","message":"must be a valid email address"}]`
	if string(out) != want {
		t.Fatalf("wire shape changed:\nwant %s\ngot  %s", want, out)
	}
}

// TestErrorPayload wraps the list for response bodies.
func TestErrorPayload(t *testing.T) {
	errs := veld.Errors{veld.Root().Violation("required", "is required")}
	payload := veld.ErrorPayload(errs)
	got, ok := payload["errors"].(veld.Errors)
	if !ok || len(got) != 1 || got[0].Code != "required" {
		t.Fatalf("unexpected payload: %v", payload)
	}
}
