// Package loscore is a small underscore-style toolkit: generic iteration,
// mapping, filtering, reduction, uniqueness and object extension over two
// collection shapes, plus the function wrappers [Once], [Memoize] and
// [Invoke].
//
// # Collections
//
// Every operation accepts a [Collection], which is either a [Seq] (an
// ordered sequence, any []V converts to it) or an *[Object] (a string-keyed
// mapping that remembers insertion order):
//
//	nums := loscore.Seq[int]{1, 2, 3, 4, 5, 6}
//	evens := loscore.Filter(nums, func(n int) bool { return n%2 == 0 }) // → [2 4 6]
//
//	user := loscore.NewObject(
//	    loscore.Entry[any]{Key: "name", Value: "moe"},
//	    loscore.Entry[any]{Key: "age", Value: 50},
//	)
//	loscore.Each(user, func(v any, k loscore.Key, _ loscore.Collection[any]) {
//	    fmt.Println(k, v) // name moe, then age 50
//	})
//
// [Each] is the only place that walks a collection. [Map], [Filter],
// [Reduce], [Uniq], [Extend] and [Invoke] iterate through it, [Reject] is
// [Filter] with the predicate negated, and [Every] and [EveryFunc] are folds
// over [Reduce]. All of them agree on iteration order.
//
// # Immutability
//
// No operation modifies its input collection. Map, Filter, Reject, Uniq and
// Invoke always return a newly allocated Seq, even when it is empty. [Extend]
// is the one operation that writes, and it writes only to its target.
//
// # Function wrappers
//
// [Once] and [Memoize] return values that own their state; nothing is shared
// between two wrappers and there is no package-level cache:
//
//	var fib *loscore.Memoized[int]
//	fib = loscore.Memoize(func(args ...any) int {
//	    n := args[0].(int)
//	    if n < 2 {
//	        return n
//	    }
//	    return fib.Call(n-1) + fib.Call(n-2)
//	})
//
// Each wrapper counts its calls in its own metricz registry, available from
// Metrics().
//
// # Errors
//
// Only two operations can fail. [ReduceFirst] on an empty collection returns
// [ErrEmptyCollection], and [Invoke] returns [ErrMethodNotFound] or
// [ErrInvalidMethod] when an element cannot answer the named method.
package loscore
