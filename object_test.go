package veld_test

import (
	"context"
	"testing"

	veld "github.com/veldhq/veld"
)

type user struct {
	Name  string
	Email string
	Age   int
}

func userSchema() *veld.ObjectSchema[user] {
	return veld.Object[user]().
		Field("name", veld.Prop(func(u user) string { return u.Name }, veld.String().MinLength(3))).
		Field("email", veld.Prop(func(u user) string { return u.Email }, veld.String().Email()))
}

// TestObject_FieldScenario pins the canonical two-field failure: both
// violations surface, path-prefixed by field name, in declaration order.
func TestObject_FieldScenario(t *testing.T) {
	ctx := context.Background()
	res, err := userSchema().Validate(ctx, user{Name: "Jo", Email: "invalid-email"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	errs := res.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 violations, got %v", errs)
	}
	if errs[0].Path.String() != "name" || errs[0].Code != "min_length" {
		t.Fatalf("unexpected first violation: %+v", errs[0])
	}
	if errs[1].Path.String() != "email" || errs[1].Code != "email" {
		t.Fatalf("unexpected second violation: %+v", errs[1])
	}
}

// TestObject_IndependentFields: N independently failing fields yield
// exactly N violations ordered by field declaration order.
func TestObject_IndependentFields(t *testing.T) {
	ctx := context.Background()
	s := veld.Object[user]().
		Field("name", veld.Prop(func(u user) string { return u.Name }, veld.String().MinLength(3))).
		Field("email", veld.Prop(func(u user) string { return u.Email }, veld.String().Email())).
		Field("age", veld.Prop(func(u user) int { return u.Age }, veld.Number[int]().Min(18)))

	res, err := s.Validate(ctx, user{Name: "x", Email: "nope", Age: 3})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	errs := res.Errors()
	if len(errs) != 3 {
		t.Fatalf("expected 3 violations, got %v", errs)
	}
	wantPaths := []string{"name", "email", "age"}
	for i, p := range wantPaths {
		if errs[i].Path.String() != p {
			t.Fatalf("violation %d: want path %q, got %q", i, p, errs[i].Path)
		}
	}
}

// TestObject_WholeObjectRefine runs cross-field rules after all fields, at
// the object's own path.
func TestObject_WholeObjectRefine(t *testing.T) {
	ctx := context.Background()
	s := userSchema().
		Refine("name_not_email", func(u user) bool { return u.Name != u.Email })

	res, err := s.Validate(ctx, user{Name: "no", Email: "no"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	errs := res.Errors()
	if len(errs) != 3 {
		t.Fatalf("expected field violations plus cross-field one, got %v", errs)
	}
	last := errs[len(errs)-1]
	if last.Code != "name_not_email" || last.Path.String() != "" {
		t.Fatalf("cross-field violation must come last at object path, got %+v", last)
	}
}

// TestObject_RefineWith addresses a cross-field violation to one field via
// the DomainCtx path builder, and records the rule name.
func TestObject_RefineWith(t *testing.T) {
	ctx := context.Background()
	s := veld.Object[user]().
		Field("name", veld.Prop(func(u user) string { return u.Name }, veld.String().NotEmpty())).
		RefineWith("email_matches_name", func(dc veld.DomainCtx, u user) veld.Errors {
			if u.Email == u.Name {
				return nil
			}
			return veld.Errors{dc.At.Field("email").Violation("mismatch", "email must equal name", "name", u.Name)}
		})

	res, err := s.Validate(ctx, user{Name: "a", Email: "b"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	errs := res.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 violation, got %v", errs)
	}
	if errs[0].Path.String() != "email" || errs[0].Code != "mismatch" || errs[0].Rule != "email_matches_name" {
		t.Fatalf("unexpected violation: %+v", errs[0])
	}
}

// TestObject_Nested prefixes child paths with every enclosing field.
func TestObject_Nested(t *testing.T) {
	type address struct{ City string }
	type account struct {
		Owner user
		Addr  address
	}
	ctx := context.Background()

	s := veld.Object[account]().
		Field("owner", veld.Prop(func(a account) user { return a.Owner }, userSchema())).
		Field("addr", veld.Prop(func(a account) address { return a.Addr },
			veld.Object[address]().
				Field("city", veld.Prop(func(ad address) string { return ad.City }, veld.String().NotEmpty()))))

	res, err := s.Validate(ctx, account{Owner: user{Name: "Jo", Email: "reo@example.com"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	errs := res.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 violations, got %v", errs)
	}
	if errs[0].Path.String() != "owner.name" {
		t.Fatalf("expected owner.name, got %q", errs[0].Path)
	}
	if errs[1].Path.String() != "addr.city" {
		t.Fatalf("expected addr.city, got %q", errs[1].Path)
	}
}

// TestObject_SuccessIsEmpty: a value accepted by every rule yields the
// shared success with an empty error list.
func TestObject_SuccessIsEmpty(t *testing.T) {
	ctx := context.Background()
	res, err := userSchema().Validate(ctx, user{Name: "Reo", Email: "reo@example.com"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.OK() || len(res.Errors()) != 0 {
		t.Fatalf("expected success, got %v", res.Errors())
	}
}
