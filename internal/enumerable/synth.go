package enumerable

import (
	"fmt"
	"reflect"
)

// Accessors compiled once per concrete runtime type. After synthesis every
// invocation is a direct call; no member discovery runs again.
type (
	countAccessor       func(rv reflect.Value, max int) int
	containsNilAccessor func(rv reflect.Value) bool
	containsAccessor    func(rv, item reflect.Value, eq Equal) (bool, error)
)

// synthCount compiles the count accessor for concrete type t: a clamped
// native size read when one exists, otherwise bounded enumeration.
func synthCount(t reflect.Type) (countAccessor, error) {
	if native, ok := locateCount(t); ok {
		return func(rv reflect.Value, max int) int {
			if max <= 0 {
				return 0
			}
			if n := native(rv); n < max {
				return n
			}
			return max
		}, nil
	}
	enum, _, ok := locateEnumerator(t)
	if !ok {
		return nil, notEnumerable(t)
	}
	return func(rv reflect.Value, max int) int {
		return countBounded(enum, rv, max)
	}, nil
}

// countBounded counts elements and stops the moment max is reached. It never
// advances the iterator past max elements and touches nothing when max <= 0.
func countBounded(enum enumerator, rv reflect.Value, max int) int {
	if max <= 0 {
		return 0
	}
	n := 0
	enum(rv, func(reflect.Value) bool {
		n++
		return n < max
	})
	return n
}

// synthContainsNil compiles the nil-containment accessor for t. A Contains
// method accepting a nil-capable type is called with nil; a Contains method
// that cannot accept nil, or a non-nilable element type, proves the answer is
// false with no enumeration at all.
func synthContainsNil(t reflect.Type) (containsNilAccessor, error) {
	mm, probe := locateContainsNil(t)
	switch probe {
	case nilProbeNative:
		nilArg := reflect.Zero(mm.param)
		return func(rv reflect.Value) bool {
			return mm.invoke(rv, nilArg)[0].Bool()
		}, nil
	case nilProbeImpossible:
		return func(reflect.Value) bool { return false }, nil
	}
	enum, elem, ok := locateEnumerator(t)
	if !ok {
		return nil, notEnumerable(t)
	}
	if elem != nil && elem.Kind() != reflect.Interface && !nilable(elem) {
		return func(reflect.Value) bool { return false }, nil
	}
	return func(rv reflect.Value) bool {
		found := false
		enum(rv, func(e reflect.Value) bool {
			if isNilElem(e) {
				found = true
				return false
			}
			return true
		})
		return found
	}, nil
}

// isNilElem reports whether an enumerated element is nil, looking through
// interface boxing.
func isNilElem(e reflect.Value) bool {
	if e.Kind() == reflect.Interface {
		if e.IsNil() {
			return true
		}
		e = e.Elem()
	}
	if !e.IsValid() {
		return true
	}
	return nilable(e.Type()) && e.IsNil()
}

// synthContains compiles the item-containment accessor for collection type t
// and item type itemT (nil itemT means the searched item is untyped nil).
// The compiled accessor holds both the native member call and the
// enumeration fallback: a caller-supplied comparer always takes the fallback,
// because a native Contains compares with its own notion of equality.
func synthContains(t, itemT reflect.Type) (containsAccessor, error) {
	native, hasNative := locateContains(t, itemT)
	enum, _, hasEnum := locateEnumerator(t)
	if !hasNative && !hasEnum {
		return nil, notEnumerable(t)
	}
	return func(rv, item reflect.Value, eq Equal) (bool, error) {
		if eq == nil && hasNative && item.IsValid() && item.Type().AssignableTo(native.param) {
			return native.invoke(rv, item)[0].Bool(), nil
		}
		if !hasEnum {
			if eq != nil {
				return false, fmt.Errorf("%w: %v", ErrComparerUnsupported, t)
			}
			return false, notEnumerable(t)
		}
		found := false
		enum(rv, func(e reflect.Value) bool {
			if matchElem(e, item, eq) {
				found = true
				return false
			}
			return true
		})
		return found, nil
	}, nil
}

// matchElem compares one enumerated element against the searched item.
// Elements coming from untyped enumerations are checked against the item's
// type before any comparison, so foreign-typed elements never match and
// never panic.
func matchElem(e, item reflect.Value, eq Equal) bool {
	if e.Kind() == reflect.Interface {
		e = e.Elem()
	}
	if eq != nil {
		return eq(valueAny(e), valueAny(item))
	}
	if !item.IsValid() {
		return !e.IsValid() || (nilable(e.Type()) && e.IsNil())
	}
	if !e.IsValid() {
		return nilable(item.Type()) && item.IsNil()
	}
	if e.Type() != item.Type() {
		if !e.Type().AssignableTo(item.Type()) {
			return false
		}
		e = e.Convert(item.Type())
	}
	if item.Comparable() {
		return item.Equal(e)
	}
	return reflect.DeepEqual(e.Interface(), item.Interface())
}

func valueAny(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}
