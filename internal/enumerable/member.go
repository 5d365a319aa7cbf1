package enumerable

import (
	"reflect"
	"sync/atomic"
)

// locatorProbes counts member-discovery passes. Tests read it to prove that
// repeated queries for an already-seen type never re-run discovery.
var locatorProbes atomic.Int64

// member is a native method located on a concrete collection type. viaPtr
// marks a pointer-receiver method reached from a value type: invocations go
// through an addressable copy of the receiver.
type member struct {
	m      reflect.Method
	viaPtr bool
}

func (mm member) invoke(rv reflect.Value, args ...reflect.Value) []reflect.Value {
	recv := rv
	if mm.viaPtr {
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		recv = p
	}
	in := make([]reflect.Value, 0, len(args)+1)
	in = append(in, recv)
	in = append(in, args...)
	return mm.m.Func.Call(in)
}

// findMethod looks up an exported method by name on t, falling back to *t for
// pointer-receiver methods when t is a value type. match inspects the full
// method type (receiver included).
func findMethod(t reflect.Type, name string, match func(mt reflect.Type) bool) (member, bool) {
	if m, ok := t.MethodByName(name); ok && match(m.Type) {
		return member{m: m}, true
	}
	if t.Kind() != reflect.Pointer {
		if m, ok := reflect.PointerTo(t).MethodByName(name); ok && match(m.Type) {
			return member{m: m, viaPtr: true}, true
		}
	}
	return member{}, false
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// intResult reads a signed or unsigned integer result as int.
func intResult(v reflect.Value) int {
	if v.CanInt() {
		return int(v.Int())
	}
	return int(v.Uint())
}

// nilable reports whether a value of type t can hold nil.
func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

func isZeroArgIntMethod(mt reflect.Type) bool {
	return mt.NumIn() == 1 && mt.NumOut() == 1 && isIntKind(mt.Out(0).Kind())
}

func isOneArgBoolMethod(mt reflect.Type) bool {
	return mt.NumIn() == 2 && mt.NumOut() == 1 && mt.Out(0).Kind() == reflect.Bool
}

// locateCount finds the cheapest native size operation on t: a Count/Len/
// Length method returning an integer, then an exported integer Count/Length
// field, then the built-in len for kinds the runtime measures directly.
func locateCount(t reflect.Type) (func(reflect.Value) int, bool) {
	locatorProbes.Add(1)
	for _, name := range []string{"Count", "Len", "Length"} {
		if mm, ok := findMethod(t, name, isZeroArgIntMethod); ok {
			return func(rv reflect.Value) int { return intResult(mm.invoke(rv)[0]) }, true
		}
	}
	st := t
	deref := false
	if st.Kind() == reflect.Pointer {
		st = st.Elem()
		deref = true
	}
	if st.Kind() == reflect.Struct {
		for _, name := range []string{"Count", "Length"} {
			f, ok := st.FieldByName(name)
			if !ok || !f.IsExported() || !isIntKind(f.Type.Kind()) {
				continue
			}
			idx := f.Index
			return func(rv reflect.Value) int {
				if deref {
					if rv.IsNil() {
						return 0
					}
					rv = rv.Elem()
				}
				return intResult(rv.FieldByIndex(idx))
			}, true
		}
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return reflect.Value.Len, true
	}
	return nil, false
}

// containsMember is a located Contains method together with its parameter
// type, needed for assignability checks at call time.
type containsMember struct {
	member
	param reflect.Type
}

// locateContains finds a Contains method on t whose single parameter accepts
// itemT, exactly or by assignability. Methods promoted from embedded types
// are part of t's method set, so the lookup already spans the ancestry.
func locateContains(t, itemT reflect.Type) (containsMember, bool) {
	locatorProbes.Add(1)
	mm, ok := findMethod(t, "Contains", isOneArgBoolMethod)
	if !ok {
		return containsMember{}, false
	}
	p := mm.m.Type.In(1)
	if itemT != nil && (itemT == p || itemT.AssignableTo(p)) {
		return containsMember{member: mm, param: p}, true
	}
	return containsMember{}, false
}

type nilProbe int

const (
	// No usable Contains method; enumeration has to decide.
	nilProbeNone nilProbe = iota
	// Contains accepts a nil-capable parameter; call it with nil.
	nilProbeNative
	// Contains only accepts a type that cannot hold nil, so a nil element
	// is impossible by construction.
	nilProbeImpossible
)

// locateContainsNil classifies how t can answer "does a nil element exist".
func locateContainsNil(t reflect.Type) (containsMember, nilProbe) {
	locatorProbes.Add(1)
	mm, ok := findMethod(t, "Contains", isOneArgBoolMethod)
	if !ok {
		return containsMember{}, nilProbeNone
	}
	p := mm.m.Type.In(1)
	if nilable(p) {
		return containsMember{member: mm, param: p}, nilProbeNative
	}
	return containsMember{}, nilProbeImpossible
}
