// Package enumerable answers three bounded questions about arbitrary
// collection values: how many elements (up to a cap), whether a nil element
// is present, and whether a given item is present.
//
// The package never requires the caller's declared type to expose those
// operations. For each concrete runtime type it locates the best native
// member (a Count/Len method, a Contains method, the built-in len) and
// compiles a specialized accessor around it, falling back to element-wise
// enumeration when no native member exists. The accessor is cached, so every
// later call for the same type pays no reflection discovery cost.
package enumerable

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotEnumerable reports that a type offers neither a native operation nor
// any supported way to visit its elements.
var ErrNotEnumerable = errors.New("enumerable: unsupported collection type")

// ErrComparerUnsupported reports that a caller-supplied comparer cannot be
// honored because the type has no enumerable elements to compare against.
var ErrComparerUnsupported = errors.New("enumerable: type supports no element enumeration for a custom comparer")

// Equal compares an element against the searched item. Both values arrive as
// raw element/item values (interface elements are unwrapped first).
type Equal func(elem, item any) bool

// Count returns min(element count of c, max), enumerating at most max
// elements. Natively countable types (a Count/Len/Length member, or a kind
// the runtime measures with len) are answered without touching any iterator.
// A nil c counts as zero. The error reports a first-use synthesis failure for
// an unsupported type; it is never returned again once an accessor exists.
func Count[C any](c C, max int) (int, error) {
	f, err := declaredCount(reflect.TypeOf((*C)(nil)).Elem())
	if err != nil {
		return 0, err
	}
	return f(c, max)
}

// ContainsNil reports whether c holds a nil element. Collections whose
// element type cannot hold nil answer false without enumerating, as do types
// whose only Contains method rejects nil by construction.
func ContainsNil[C any](c C) (bool, error) {
	f, err := declaredContainsNil(reflect.TypeOf((*C)(nil)).Elem())
	if err != nil {
		return false, err
	}
	return f(c)
}

// Contains reports whether c holds item. When eq is nil the item type's
// default equality applies and a native Contains method is used when one
// matches; a non-nil eq always forces element-wise enumeration, because a
// native Contains cannot honor a caller-supplied comparer.
func Contains[C, I any](c C, item I, eq func(I, I) bool) (bool, error) {
	f, err := declaredContains(reflect.TypeOf((*C)(nil)).Elem(), reflect.TypeOf((*I)(nil)).Elem())
	if err != nil {
		return false, err
	}
	return f(c, item, wrapEqual(eq))
}

// wrapEqual adapts a typed comparer to the untyped Equal used by accessors.
// Elements from untyped enumerations are type-checked before the comparer
// runs; foreign-typed elements simply do not match.
func wrapEqual[I any](eq func(I, I) bool) Equal {
	if eq == nil {
		return nil
	}
	return func(elem, item any) bool {
		e, ok := elem.(I)
		if !ok {
			return false
		}
		i, ok := item.(I)
		if !ok {
			return false
		}
		return eq(e, i)
	}
}

func notEnumerable(t reflect.Type) error {
	return fmt.Errorf("%w: %v", ErrNotEnumerable, t)
}
