package enumerable

import (
	"reflect"
	"sync"
)

// Accessor shapes stored in the declared-type caches. Each carries the
// runtime-type mismatch redirect: a value whose concrete type differs from
// the declared type the accessor was compiled for is routed through the
// cross-type dynamic cache instead of the compiled member call.
type (
	// CountFunc reports min(element count, max) for one declared type.
	CountFunc func(c any, max int) (int, error)
	// ContainsNilFunc reports nil-element presence for one declared type.
	ContainsNilFunc func(c any) (bool, error)
	// ContainsFunc reports item presence for one declared (collection, item)
	// type pair.
	ContainsFunc func(c, item any, eq Equal) (bool, error)
)

// Declared-type caches: one accessor per statically declared collection type,
// process-wide, never evicted. sync.Map keeps the hit path lock-free; racing
// first users may both synthesize, but LoadOrStore keeps a single winner that
// every later caller observes.
var (
	declaredCounts      sync.Map // reflect.Type -> CountFunc
	declaredNilChecks   sync.Map // reflect.Type -> ContainsNilFunc
	declaredContainsFns sync.Map // containsKey -> ContainsFunc
)

// containsKey keys containment accessors: the comparison is generic over the
// item type independent of the collection's own element type.
type containsKey struct{ coll, item reflect.Type }

// dynCache is the cross-type dynamic cache: accessors keyed by concrete
// runtime type behind a reader-writer lock. Hits share the read lock; a miss
// takes the write lock, re-checks, synthesizes, and inserts, so at most one
// caller synthesizes a given key. Failed synthesis inserts nothing and a
// later call retries cleanly.
type dynCache[K comparable, A any] struct {
	mu sync.RWMutex
	m  map[K]A
}

func (dc *dynCache[K, A]) lookup(k K, synth func(K) (A, error)) (A, error) {
	dc.mu.RLock()
	a, ok := dc.m[k]
	dc.mu.RUnlock()
	if ok {
		return a, nil
	}
	dc.mu.Lock()
	defer dc.mu.Unlock()
	if a, ok := dc.m[k]; ok {
		return a, nil
	}
	a, err := synth(k)
	if err != nil {
		var zero A
		return zero, err
	}
	if dc.m == nil {
		dc.m = make(map[K]A)
	}
	dc.m[k] = a
	return a, nil
}

var (
	dynCounts    dynCache[reflect.Type, countAccessor]
	dynNilChecks dynCache[reflect.Type, containsNilAccessor]
	dynContains  dynCache[containsKey, containsAccessor]
)

func declaredCount(t reflect.Type) (CountFunc, error) {
	if f, ok := declaredCounts.Load(t); ok {
		return f.(CountFunc), nil
	}
	f, err := boundCount(t)
	if err != nil {
		return nil, err
	}
	got, _ := declaredCounts.LoadOrStore(t, f)
	return got.(CountFunc), nil
}

// boundCount compiles the declared-type count accessor. An interface
// declared type resolves through the concrete runtime type on every call; a
// concrete declared type runs its compiled accessor directly, with the
// mismatch redirect as a guard.
func boundCount(t reflect.Type) (CountFunc, error) {
	if t.Kind() == reflect.Interface {
		return dynamicCount, nil
	}
	direct, err := synthCount(t)
	if err != nil {
		return nil, err
	}
	return func(c any, max int) (int, error) {
		rv := reflect.ValueOf(c)
		if !rv.IsValid() {
			return 0, nil
		}
		if rv.Type() != t {
			return dynamicCount(c, max)
		}
		return direct(rv, max), nil
	}, nil
}

func dynamicCount(c any, max int) (int, error) {
	rv := reflect.ValueOf(c)
	if !rv.IsValid() {
		return 0, nil
	}
	acc, err := dynCounts.lookup(rv.Type(), synthCount)
	if err != nil {
		return 0, err
	}
	return acc(rv, max), nil
}

func declaredContainsNil(t reflect.Type) (ContainsNilFunc, error) {
	if f, ok := declaredNilChecks.Load(t); ok {
		return f.(ContainsNilFunc), nil
	}
	f, err := boundContainsNil(t)
	if err != nil {
		return nil, err
	}
	got, _ := declaredNilChecks.LoadOrStore(t, f)
	return got.(ContainsNilFunc), nil
}

func boundContainsNil(t reflect.Type) (ContainsNilFunc, error) {
	if t.Kind() == reflect.Interface {
		return dynamicContainsNil, nil
	}
	direct, err := synthContainsNil(t)
	if err != nil {
		return nil, err
	}
	return func(c any) (bool, error) {
		rv := reflect.ValueOf(c)
		if !rv.IsValid() {
			return false, nil
		}
		if rv.Type() != t {
			return dynamicContainsNil(c)
		}
		return direct(rv), nil
	}, nil
}

func dynamicContainsNil(c any) (bool, error) {
	rv := reflect.ValueOf(c)
	if !rv.IsValid() {
		return false, nil
	}
	acc, err := dynNilChecks.lookup(rv.Type(), synthContainsNil)
	if err != nil {
		return false, err
	}
	return acc(rv), nil
}

func declaredContains(ct, it reflect.Type) (ContainsFunc, error) {
	k := containsKey{coll: ct, item: it}
	if f, ok := declaredContainsFns.Load(k); ok {
		return f.(ContainsFunc), nil
	}
	f, err := boundContains(ct, it)
	if err != nil {
		return nil, err
	}
	got, _ := declaredContainsFns.LoadOrStore(k, f)
	return got.(ContainsFunc), nil
}

// boundContains compiles the declared-pair containment accessor. When either
// side is declared as an interface the concrete types are only known per
// call, so the accessor is a pure redirect.
func boundContains(ct, it reflect.Type) (ContainsFunc, error) {
	if ct.Kind() == reflect.Interface || it == nil || it.Kind() == reflect.Interface {
		return dynamicContains, nil
	}
	direct, err := synthContains(ct, it)
	if err != nil {
		return nil, err
	}
	return func(c, item any, eq Equal) (bool, error) {
		rv := reflect.ValueOf(c)
		if !rv.IsValid() {
			return false, nil
		}
		if rv.Type() != ct || reflect.TypeOf(item) != it {
			return dynamicContains(c, item, eq)
		}
		return direct(rv, reflect.ValueOf(item), eq)
	}, nil
}

func dynamicContains(c, item any, eq Equal) (bool, error) {
	rv := reflect.ValueOf(c)
	if !rv.IsValid() {
		return false, nil
	}
	k := containsKey{coll: rv.Type(), item: reflect.TypeOf(item)}
	acc, err := dynContains.lookup(k, func(k containsKey) (containsAccessor, error) {
		return synthContains(k.coll, k.item)
	})
	if err != nil {
		return false, err
	}
	return acc(rv, reflect.ValueOf(item), eq)
}
