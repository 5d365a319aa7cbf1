package enumerable

import "reflect"

// enumerator visits a collection's elements in the order the collection
// itself provides, stopping when yield returns false. Push iterators run
// their own deferred cleanup when yield stops them, so early exit releases
// whatever the iterator holds on every path.
type enumerator func(rv reflect.Value, yield func(reflect.Value) bool)

// isSeq reports whether ft is a push iterator: func(func(E) bool).
func isSeq(ft reflect.Type) bool {
	if ft.Kind() != reflect.Func || ft.NumIn() != 1 || ft.NumOut() != 0 {
		return false
	}
	y := ft.In(0)
	return y.Kind() == reflect.Func && y.NumIn() == 1 && y.NumOut() == 1 &&
		y.Out(0).Kind() == reflect.Bool
}

// seqElem returns E for a func(func(E) bool) type.
func seqElem(ft reflect.Type) reflect.Type { return ft.In(0).In(0) }

// invokeSeq drives a reflected push iterator with yield.
func invokeSeq(seq reflect.Value, yield func(reflect.Value) bool) {
	y := reflect.MakeFunc(seq.Type().In(0), func(args []reflect.Value) []reflect.Value {
		return []reflect.Value{reflect.ValueOf(yield(args[0]))}
	})
	seq.Call([]reflect.Value{y})
}

// locateEnumerator finds a way to visit t's elements: built-in traversal for
// slices, arrays, and maps (a map enumerates its values), an All() or
// Values() method returning a push iterator, a value that is itself a push
// iterator, or a pointer to any of those. The second result is the static
// element type, nil when unknown. Channels are excluded: counting or
// searching one would consume it.
func locateEnumerator(t reflect.Type) (enumerator, reflect.Type, bool) {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return func(rv reflect.Value, yield func(reflect.Value) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !yield(rv.Index(i)) {
					return
				}
			}
		}, t.Elem(), true
	case reflect.Map:
		return func(rv reflect.Value, yield func(reflect.Value) bool) {
			it := rv.MapRange()
			for it.Next() {
				if !yield(it.Value()) {
					return
				}
			}
		}, t.Elem(), true
	case reflect.Func:
		if isSeq(t) {
			return invokeSeq, seqElem(t), true
		}
	}
	for _, name := range []string{"All", "Values"} {
		mm, ok := findMethod(t, name, func(mt reflect.Type) bool {
			return mt.NumIn() == 1 && mt.NumOut() == 1 && isSeq(mt.Out(0))
		})
		if !ok {
			continue
		}
		elem := seqElem(mm.m.Type.Out(0))
		return func(rv reflect.Value, yield func(reflect.Value) bool) {
			invokeSeq(mm.invoke(rv)[0], yield)
		}, elem, true
	}
	if t.Kind() == reflect.Pointer {
		inner, elem, ok := locateEnumerator(t.Elem())
		if !ok {
			return nil, nil, false
		}
		return func(rv reflect.Value, yield func(reflect.Value) bool) {
			if rv.IsNil() {
				return
			}
			inner(rv.Elem(), yield)
		}, elem, true
	}
	return nil, nil, false
}
