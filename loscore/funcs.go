package loscore

import "reflect"

// This file contains the collection operations. All of them iterate through
// [Each], directly or through another operation, so a Seq is always walked by
// index and an Object always in key insertion order:
//
//	Map, Filter, Reduce, ReduceFirst, Uniq, Extend → Each
//	Reject → Filter
//	Every, EveryFunc → Reduce

// Predicate reports whether a value passes a test.
type Predicate[V any] func(V) bool

// Reducer folds value into memo and returns the new memo.
type Reducer[A, V any] func(memo A, value V) A

// Identity returns v unchanged. It is the default iteratee wherever one is
// optional.
func Identity[T any](v T) T { return v }

// Map applies fn to every element and returns the results as a new Seq.
//
//	loscore.Map(loscore.Seq[int]{1, 2, 3}, func(n int) int { return n + 2 })
//	// → [3 4 5]
func Map[V, R any](c Collection[V], fn func(V) R) Seq[R] {
	enter("map")
	out := make(Seq[R], 0, lenOf(c))
	Each(c, func(v V, _ Key, _ Collection[V]) {
		out = append(out, fn(v))
	})
	return out
}

// Filter returns a new Seq of the elements for which pred returns true.
//
//	loscore.Filter(loscore.Seq[int]{1, 2, 3, 4}, isEven) // → [2 4]
func Filter[V any](c Collection[V], pred Predicate[V]) Seq[V] {
	enter("filter")
	out := make(Seq[V], 0, lenOf(c))
	Each(c, func(v V, _ Key, _ Collection[V]) {
		if pred(v) {
			out = append(out, v)
		}
	})
	return out
}

// Reject returns a new Seq of the elements for which pred returns false.
// It is exactly the complement of [Filter] over the same input.
func Reject[V any](c Collection[V], pred Predicate[V]) Seq[V] {
	enter("reject")
	return Filter(c, func(v V) bool { return !pred(v) })
}

// Reduce folds c into a single value, left to right, starting from memo.
//
// Whatever fn returns becomes the memo for the next element, zero values and
// nil included. A zero-valued memo (0, "", false, nil) is a real starting
// value, not a missing one.
//
//	loscore.Reduce(loscore.Seq[int]{1, 2, 3}, func(m, n int) int { return m - n }, 10)
//	// → 4
func Reduce[V, A any](c Collection[V], fn Reducer[A, V], memo A) A {
	enter("reduce")
	Each(c, func(v V, _ Key, _ Collection[V]) {
		memo = fn(memo, v)
	})
	return memo
}

// ReduceFirst folds c the way [Reduce] does, but seeds the memo with the
// first element and folds only the remaining ones.
//
// It returns [ErrEmptyCollection] when c has no elements.
//
//	loscore.ReduceFirst(loscore.Seq[int]{3, 2, 1}, func(m, n int) int { return m - n })
//	// → 0, nil
func ReduceFirst[V any](c Collection[V], fn Reducer[V, V]) (V, error) {
	enter("reduce")
	var memo V
	seeded := false
	Each(c, func(v V, _ Key, _ Collection[V]) {
		if !seeded {
			memo, seeded = v, true
			return
		}
		memo = fn(memo, v)
	})
	if !seeded {
		return memo, ErrEmptyCollection
	}
	return memo, nil
}

// Every reports whether every element is [Truthy]. An empty collection
// passes.
//
//	loscore.Every(loscore.Seq[any]{true, map[string]any{}, 1}) // → true
//	loscore.Every(loscore.Seq[any]{nil, 0, nil})             // → false
func Every[V any](c Collection[V]) bool {
	enter("every")
	return every(c, func(v V) bool { return Truthy(v) })
}

// EveryFunc reports whether pred holds for every element. An empty
// collection passes. A nil pred behaves like [Every].
//
// It is a fold seeded with true, so pred sees every element even after a
// failure.
func EveryFunc[V any](c Collection[V], pred Predicate[V]) bool {
	enter("every")
	if pred == nil {
		pred = func(v V) bool { return Truthy(v) }
	}
	return every(c, pred)
}

func every[V any](c Collection[V], pred Predicate[V]) bool {
	return Reduce(c, func(ok bool, v V) bool {
		passed := pred(v)
		return ok && passed
	}, true)
}

// Uniq returns a new Seq holding each distinct element of c once, in order
// of first occurrence.
//
// Comparable values are compared with ==, so pointers are equal only when
// they point at the same value. Values that == cannot compare, such as a
// slice or map held in a Seq[any], are compared by identity: a slice equals
// another with the same backing array and length, a map equals only itself.
// Funcs and other uncomparable values are always kept.
//
//	loscore.Uniq(loscore.Seq[int]{5, 3, 2, 1, 5, 6, 1, 3}) // → [5 3 2 1 6]
func Uniq[V any](c Collection[V]) Seq[V] {
	enter("uniq")
	out := make(Seq[V], 0, lenOf(c))
	seen := make(map[any]struct{}, lenOf(c))
	Each(c, func(v V, _ Key, _ Collection[V]) {
		k, ok := uniqKey(v)
		if !ok {
			out = append(out, v)
			return
		}
		if _, dup := seen[k]; dup {
			return
		}
		seen[k] = struct{}{}
		out = append(out, v)
	})
	return out
}

// refKey identifies a slice or map by where its data lives.
type refKey struct {
	typ reflect.Type
	ptr uintptr
	len int
}

// uniqKey returns a map key standing for v, or false when v has no usable
// notion of equality.
func uniqKey(v any) (any, bool) {
	if v == nil {
		return nil, true
	}
	rv := reflect.ValueOf(v)
	if rv.Comparable() {
		return v, true
	}
	switch rv.Kind() {
	case reflect.Slice:
		return refKey{typ: rv.Type(), ptr: rv.Pointer(), len: rv.Len()}, true
	case reflect.Map:
		return refKey{typ: rv.Type(), ptr: rv.Pointer(), len: -1}, true
	default:
		return nil, false
	}
}

// Extend copies every entry of each source onto target, in source order, and
// returns target itself. Later sources win on shared keys. Values are copied
// as-is, so slices, maps and pointers end up shared with the source.
//
// A [Seq] source contributes its elements under their decimal index ("0",
// "1", ...). Nil sources are skipped. target must not be nil.
//
//	moe := loscore.NewObject(loscore.Entry[any]{Key: "name", Value: "moe"})
//	loscore.Extend(moe, loscore.NewObject(loscore.Entry[any]{Key: "age", Value: 50}))
//	// → {name: moe, age: 50}
func Extend[V any](target *Object[V], sources ...Collection[V]) *Object[V] {
	enter("extend")
	for _, src := range sources {
		if src == nil {
			continue
		}
		Each(src, func(v V, k Key, _ Collection[V]) {
			target.Set(k.Name(), v)
		})
	}
	return target
}

func lenOf[V any](c Collection[V]) int {
	if c == nil {
		return 0
	}
	return c.Len()
}
