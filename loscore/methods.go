package loscore

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"
)

// BuiltinFunc is a named method available to [Invoke] for Go values that
// have no methods of their own, such as strings and slices. It reports false
// when it does not apply to the receiver's type.
type BuiltinFunc func(recv any) (result any, ok bool)

// builtinMethods is fixed at init and never written afterwards.
var builtinMethods = map[string]BuiltinFunc{
	"sort":        sortInPlace,
	"reverse":     reverseInPlace,
	"toUpperCase": stringMethod(strings.ToUpper),
	"toLowerCase": stringMethod(strings.ToLower),
	"trim":        stringMethod(strings.TrimSpace),
	"toString":    func(recv any) (any, bool) { return fmt.Sprint(recv), true },
	"length":      length,
}

// BuiltinMethods returns the names [Invoke] resolves when an element has no
// Go method of the requested name, in sorted order.
//
//   - sort: sorts a slice in place (numbers numerically, strings and
//     anything else by their printed form) and returns it.
//   - reverse: reverses a slice in place and returns it.
//   - toUpperCase, toLowerCase, trim: string case mapping and space trimming.
//   - toString: the value as printed by fmt.Sprint.
//   - length: len of a string, slice, array or map.
func BuiltinMethods() []string {
	names := make([]string, 0, len(builtinMethods))
	for name := range builtinMethods {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func stringMethod(fn func(string) string) BuiltinFunc {
	return func(recv any) (any, bool) {
		rv := reflect.ValueOf(recv)
		if rv.Kind() != reflect.String {
			return nil, false
		}
		return fn(rv.String()), true
	}
}

func sortInPlace(recv any) (any, bool) {
	rv := reflect.ValueOf(recv)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	less := lessFor(rv.Type().Elem().Kind())
	sort.SliceStable(recv, func(i, j int) bool {
		return less(rv.Index(i), rv.Index(j))
	})
	return recv, true
}

func lessFor(k reflect.Kind) func(a, b reflect.Value) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b reflect.Value) bool { return a.Int() < b.Int() }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b reflect.Value) bool { return a.Uint() < b.Uint() }
	case reflect.Float32, reflect.Float64:
		return func(a, b reflect.Value) bool { return cmp.Less(a.Float(), b.Float()) }
	case reflect.String:
		return func(a, b reflect.Value) bool { return a.String() < b.String() }
	default:
		return func(a, b reflect.Value) bool {
			return fmt.Sprint(a.Interface()) < fmt.Sprint(b.Interface())
		}
	}
}

func reverseInPlace(recv any) (any, bool) {
	rv := reflect.ValueOf(recv)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	swap := reflect.Swapper(recv)
	for i, j := 0, rv.Len()-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
	return recv, true
}

func length(recv any) (any, bool) {
	rv := reflect.ValueOf(recv)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return nil, false
	}
}
