package guard

import (
	"github.com/guardhouse/guard/internal/enumerable"
)

// Collection checks work against any collection shape: slices, arrays, maps
// (which count and search their values), push iterators, and custom types
// exposing Count/Len/Length or Contains members or an All()/Values()
// iterator. Native members are preferred over enumeration, and every
// size-threshold check enumerates only as far as its threshold requires.
//
// A nil collection vacuously satisfies Empty, MaxCount, DoesNotContain, and
// DoesNotContainNil, and fails their counterparts.

// Empty reports an issue unless c has no elements.
func Empty[C any](c C, name string) error {
	n, err := enumerable.Count(c, 1)
	if err != nil {
		return unsupported(name, err)
	}
	if n != 0 {
		return Issues{issueFor(name, CodeNotEmpty, nil)}
	}
	return nil
}

// NotEmpty reports an issue unless c has at least one element.
func NotEmpty[C any](c C, name string) error {
	n, err := enumerable.Count(c, 1)
	if err != nil {
		return unsupported(name, err)
	}
	if n == 0 {
		return Issues{issueFor(name, CodeEmpty, nil)}
	}
	return nil
}

// MinCount reports an issue unless c has at least min elements. At most min
// elements are ever enumerated.
func MinCount[C any](c C, name string, min int) error {
	n, err := enumerable.Count(c, min)
	if err != nil {
		return unsupported(name, err)
	}
	if n < min {
		return Issues{issueFor(name, CodeTooFewItems, map[string]any{"min": min, "got": n})}
	}
	return nil
}

// MaxCount reports an issue unless c has at most max elements. At most
// max+1 elements are ever enumerated.
func MaxCount[C any](c C, name string, max int) error {
	n, err := enumerable.Count(c, max+1)
	if err != nil {
		return unsupported(name, err)
	}
	if n > max {
		return Issues{issueFor(name, CodeTooManyItems, map[string]any{"max": max})}
	}
	return nil
}

// CountInRange reports an issue unless c has between min and max elements
// inclusive. At most max+1 elements are ever enumerated.
func CountInRange[C any](c C, name string, min, max int) error {
	n, err := enumerable.Count(c, max+1)
	if err != nil {
		return unsupported(name, err)
	}
	if n < min {
		return Issues{issueFor(name, CodeTooFewItems, map[string]any{"min": min, "got": n})}
	}
	if n > max {
		return Issues{issueFor(name, CodeTooManyItems, map[string]any{"max": max})}
	}
	return nil
}

// Contains reports an issue unless item is present in c. An optional
// comparer replaces the item type's default equality; supplying one always
// forces element-wise comparison, even when c has a native Contains method.
func Contains[C, I any](c C, name string, item I, eq ...func(I, I) bool) error {
	ok, err := enumerable.Contains(c, item, firstComparer(eq))
	if err != nil {
		return unsupported(name, err)
	}
	if !ok {
		return Issues{issueFor(name, CodeMissingItem, map[string]any{"item": item})}
	}
	return nil
}

// DoesNotContain reports an issue when item is present in c. The optional
// comparer behaves as in Contains.
func DoesNotContain[C, I any](c C, name string, item I, eq ...func(I, I) bool) error {
	ok, err := enumerable.Contains(c, item, firstComparer(eq))
	if err != nil {
		return unsupported(name, err)
	}
	if ok {
		return Issues{issueFor(name, CodeForbiddenItem, map[string]any{"item": item})}
	}
	return nil
}

// ContainsNil reports an issue unless c holds a nil element. Collections of
// types that cannot hold nil fail without being enumerated.
func ContainsNil[C any](c C, name string) error {
	ok, err := enumerable.ContainsNil(c)
	if err != nil {
		return unsupported(name, err)
	}
	if !ok {
		return Issues{issueFor(name, CodeMissingNil, nil)}
	}
	return nil
}

// DoesNotContainNil reports an issue when c holds a nil element.
func DoesNotContainNil[C any](c C, name string) error {
	ok, err := enumerable.ContainsNil(c)
	if err != nil {
		return unsupported(name, err)
	}
	if ok {
		return Issues{issueFor(name, CodeForbiddenNil, nil)}
	}
	return nil
}

func firstComparer[I any](eq []func(I, I) bool) func(I, I) bool {
	if len(eq) > 0 {
		return eq[0]
	}
	return nil
}

func unsupported(name string, cause error) error {
	iss := issueFor(name, CodeUnsupportedCollection, nil)
	iss.Cause = cause
	return Issues{iss}
}

// CollectionGuard accumulates collection check failures for one argument.
type CollectionGuard[C any] struct {
	value C
	name  string
	iss   Issues
}

// Coll wraps a collection value for fluent checks. Failures accumulate and
// Err reports them all at once.
func Coll[C any](c C, name string) *CollectionGuard[C] {
	return &CollectionGuard[C]{value: c, name: name}
}

func (g *CollectionGuard[C]) add(err error) *CollectionGuard[C] {
	if iss, ok := AsIssues(err); ok {
		g.iss = AppendIssues(g.iss, iss...)
	}
	return g
}

func (g *CollectionGuard[C]) Empty() *CollectionGuard[C]    { return g.add(Empty(g.value, g.name)) }
func (g *CollectionGuard[C]) NotEmpty() *CollectionGuard[C] { return g.add(NotEmpty(g.value, g.name)) }

func (g *CollectionGuard[C]) MinCount(min int) *CollectionGuard[C] {
	return g.add(MinCount(g.value, g.name, min))
}

func (g *CollectionGuard[C]) MaxCount(max int) *CollectionGuard[C] {
	return g.add(MaxCount(g.value, g.name, max))
}

func (g *CollectionGuard[C]) CountInRange(min, max int) *CollectionGuard[C] {
	return g.add(CountInRange(g.value, g.name, min, max))
}

// Contains checks membership of an item whose type is only known at run
// time. Use the package-level Contains for a statically typed item or a
// typed comparer.
func (g *CollectionGuard[C]) Contains(item any) *CollectionGuard[C] {
	return g.add(Contains(g.value, g.name, item))
}

func (g *CollectionGuard[C]) DoesNotContain(item any) *CollectionGuard[C] {
	return g.add(DoesNotContain(g.value, g.name, item))
}

func (g *CollectionGuard[C]) ContainsNil() *CollectionGuard[C] {
	return g.add(ContainsNil(g.value, g.name))
}

func (g *CollectionGuard[C]) DoesNotContainNil() *CollectionGuard[C] {
	return g.add(DoesNotContainNil(g.value, g.name))
}

// Err returns the accumulated Issues, or nil when every check passed.
func (g *CollectionGuard[C]) Err() error {
	if len(g.iss) == 0 {
		return nil
	}
	return g.iss
}

// Value returns the wrapped collection unchanged.
func (g *CollectionGuard[C]) Value() C { return g.value }
