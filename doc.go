// Package veld provides:
//
// - Immutable, composable validation schemas over typed values (Value/Object/Collection)
// - A stable error model via Errors (dotted/bracketed path, code, message)
// - Non-short-circuit rule chains: every rule in a chain reports its violation
// - Conditional branching (If/Switch), runtime type narrowing (As), and
//   once-per-call external context resolution (Using)
//
// Design policy:
// - Keep only public APIs in the root package; message dictionaries live under i18n/.
// - Every fluent call returns a new schema value; rule chains share unmodified
//   suffixes, so built schemas are safe to branch, reuse, and validate concurrently.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	name := veld.String().MinLength(3)
//	email := veld.String().Email()
//	user := veld.Object[User]().
//		Field("name", veld.Prop(func(u User) string { return u.Name }, name)).
//		Field("email", veld.Prop(func(u User) string { return u.Email }, email))
//
//	res, err := veld.Validate(ctx, user, u)
package veld
