package guard

import (
	"cmp"
	"reflect"
)

// NotNil reports an issue when v is nil. Values of types that cannot hold
// nil always pass.
func NotNil[T any](v T, name string) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return Issues{issueFor(name, CodeNilValue, nil)}
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return Issues{issueFor(name, CodeNilValue, nil)}
		}
	}
	return nil
}

// NotZero reports an issue when v is its type's zero value.
func NotZero[T any](v T, name string) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.IsZero() {
		return Issues{issueFor(name, CodeZeroValue, nil)}
	}
	return nil
}

// OneOf reports an issue unless v equals one of the allowed values.
func OneOf[T any](v T, name string, allowed ...T) error {
	for _, a := range allowed {
		if equalValues(v, a) {
			return nil
		}
	}
	return Issues{issueFor(name, CodeInvalidEnum, map[string]any{"allowed": allowed})}
}

// InRange reports an issue unless min <= v <= max.
func InRange[T cmp.Ordered](v T, name string, min, max T) error {
	if v < min || v > max {
		return Issues{issueFor(name, CodeOutOfRange, map[string]any{"min": min, "max": max, "got": v})}
	}
	return nil
}

// Min reports an issue unless v >= min.
func Min[T cmp.Ordered](v T, name string, min T) error {
	if v < min {
		return Issues{issueFor(name, CodeOutOfRange, map[string]any{"min": min, "got": v})}
	}
	return nil
}

// Max reports an issue unless v <= max.
func Max[T cmp.Ordered](v T, name string, max T) error {
	if v > max {
		return Issues{issueFor(name, CodeOutOfRange, map[string]any{"max": max, "got": v})}
	}
	return nil
}

func equalValues(a, b any) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if !av.IsValid() || !bv.IsValid() {
		return av.IsValid() == bv.IsValid()
	}
	if av.Type() != bv.Type() {
		return false
	}
	if av.Comparable() {
		return av.Equal(bv)
	}
	return reflect.DeepEqual(a, b)
}

// Guard accumulates scalar check failures for one argument. Ordered and
// string-shape checks need extra type information and live as package-level
// functions instead.
type Guard[T any] struct {
	value T
	name  string
	iss   Issues
}

// For wraps a value for fluent checks. Failures accumulate and Err reports
// them all at once.
func For[T any](v T, name string) *Guard[T] {
	return &Guard[T]{value: v, name: name}
}

func (g *Guard[T]) add(err error) *Guard[T] {
	if iss, ok := AsIssues(err); ok {
		g.iss = AppendIssues(g.iss, iss...)
	}
	return g
}

func (g *Guard[T]) NotNil() *Guard[T]  { return g.add(NotNil(g.value, g.name)) }
func (g *Guard[T]) NotZero() *Guard[T] { return g.add(NotZero(g.value, g.name)) }

func (g *Guard[T]) OneOf(allowed ...T) *Guard[T] {
	return g.add(OneOf(g.value, g.name, allowed...))
}

// Err returns the accumulated Issues, or nil when every check passed.
func (g *Guard[T]) Err() error {
	if len(g.iss) == 0 {
		return nil
	}
	return g.iss
}

// Value returns the wrapped value unchanged.
func (g *Guard[T]) Value() T { return g.value }
