package guard

// Package guard provides:
//
// - Fluent precondition checks over scalars, strings, and collections
// - A stable error model via Issues (argument path, code, message)
// - Collection checks (Empty/MinCount/Contains/ContainsNil and friends) that
//   work against arbitrary collection types, including ones never seen at
//   compile time, by discovering and caching a specialized accessor per
//   concrete runtime type
// - Bounded counting: size-threshold checks never enumerate further than the
//   threshold requires
//
// Design policy:
// - Keep only public APIs in the root package; put the reflective accessor
//   machinery under internal/enumerable.
// - Checks report guard.Issues; message text comes from i18n and stays out of
//   control flow.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	if err := guard.NotEmpty(ids, "ids"); err != nil { ... }
//
//	err := guard.Coll(items, "items").
//		MinCount(1).
//		MaxCount(100).
//		DoesNotContainNil().
//		Err()
//
//	err := guard.Contains(users, "users", target, func(a, b User) bool {
//		return a.ID == b.ID
//	})
