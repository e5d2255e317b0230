package veld_test

import (
	"context"
	"reflect"
	"testing"

	veld "github.com/veldhq/veld"
)

// TestCollection_MinLength: an empty slice reports one size violation at the
// collection's own path, and no element violations.
func TestCollection_MinLength(t *testing.T) {
	ctx := context.Background()
	s := veld.Collection[int]().MinLength(1).Each(veld.Number[int]().Min(1))

	res, err := s.Validate(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	errs := res.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 violation, got %v", errs)
	}
	if errs[0].Code != "min_length" || errs[0].Path.String() != "" {
		t.Fatalf("unexpected violation: %+v", errs[0])
	}
}

// TestCollection_ElementPaths addresses element violations by index.
func TestCollection_ElementPaths(t *testing.T) {
	ctx := context.Background()
	s := veld.Collection[int]().Each(veld.Number[int]().Min(1))

	res, err := s.Validate(ctx, []int{0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	errs := res.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 violation, got %v", errs)
	}
	if errs[0].Path.String() != "[0]" || errs[0].Code != "min_value" {
		t.Fatalf("unexpected violation: %+v", errs[0])
	}
}

// TestCollection_CollectionRulesBeforeElements: whole-collection rules report
// ahead of element rules, and both report on one call.
func TestCollection_CollectionRulesBeforeElements(t *testing.T) {
	ctx := context.Background()
	s := veld.Collection[int]().MinLength(3).Each(veld.Number[int]().Min(1))

	res, err := s.Validate(ctx, []int{0, 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	errs := res.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 violations, got %v", errs)
	}
	if errs[0].Code != "min_length" || errs[0].Path.String() != "" {
		t.Fatalf("collection rule should come first, got %+v", errs[0])
	}
	if errs[1].Code != "min_value" || errs[1].Path.String() != "[0]" {
		t.Fatalf("element rule should follow, got %+v", errs[1])
	}
}

// TestCollection_NestedObjects renders "items[i].field" paths.
func TestCollection_NestedObjects(t *testing.T) {
	type item struct{ Price int }
	type order struct{ Items []item }
	ctx := context.Background()

	s := veld.Object[order]().
		Field("items", veld.Prop(func(o order) []item { return o.Items },
			veld.Collection[item]().Each(
				veld.Object[item]().
					Field("price", veld.Prop(func(i item) int { return i.Price }, veld.Number[int]().Min(1))))))

	res, err := s.Validate(ctx, order{Items: []item{{Price: 3}, {Price: 5}, {Price: 0}}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	errs := res.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 violation, got %v", errs)
	}
	if errs[0].Path.String() != "items[2].price" {
		t.Fatalf("expected items[2].price, got %q", errs[0].Path)
	}
}

// TestCollection_ConcurrentMatchesSequential: Concurrent() must produce the
// same violations in the same order as the sequential run.
func TestCollection_ConcurrentMatchesSequential(t *testing.T) {
	ctx := context.Background()
	elem := veld.Number[int]().Min(0).Max(100)

	input := []int{-5, 50, 300, 7, -1, 200}
	seq, err := veld.Collection[int]().Each(elem).Validate(ctx, input)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	par, err := veld.Collection[int]().Each(elem).Concurrent().Validate(ctx, input)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(seq.Errors(), par.Errors()) {
		t.Fatalf("concurrent run diverged:\nseq=%v\npar=%v", seq.Errors(), par.Errors())
	}
	if len(par.Errors()) != 4 {
		t.Fatalf("expected 4 violations, got %v", par.Errors())
	}
}

// TestCollection_ConcurrentCancellation: a cancelled context aborts the
// parallel run with the cancellation error, not a partial Result.
func TestCollection_ConcurrentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := veld.Collection[int]().Each(veld.Number[int]().Min(0)).Concurrent()
	res, err := s.Validate(ctx, []int{1, 2, 3})
	if err == nil {
		t.Fatalf("expected cancellation error, got result %v", res)
	}
	if res != nil {
		t.Fatalf("aborted call must not return a Result, got %v", res)
	}
}
