package loscore

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeFor[error]()

// Invoke calls the method called name on every element and returns the
// results, in order, as a new Seq.
//
// The method is resolved per element: first an exported Go method of that
// name on the element's dynamic type, then one of the built-in methods for
// plain Go values (see [BuiltinMethods]). The method must take no arguments
// and return nothing, a value, an error, or a value and an error.
//
// Invoke stops at the first element that fails and returns a nil Seq with an
// error wrapping [ErrMethodNotFound], [ErrInvalidMethod] or the error the
// method itself returned. Methods that modify their receiver, such as "sort",
// modify the element; the collection itself is not changed.
//
//	sorted, _ := loscore.Invoke(loscore.Seq[[]int]{{5, 1, 7}, {3, 2, 1}}, "sort")
//	// → [[1 5 7] [1 2 3]]
//	upper, _ := loscore.Invoke(loscore.Seq[string]{"yan", "kani"}, "toUpperCase")
//	// → [YAN KANI]
func Invoke[V any](c Collection[V], name string) (Seq[any], error) {
	enter("invoke")
	out := make(Seq[any], 0, lenOf(c))
	var err error
	Each(c, func(v V, k Key, _ Collection[V]) {
		if err != nil {
			return
		}
		r, callErr := callMethod(any(v), name)
		if callErr != nil {
			err = fmt.Errorf("invoke %q on element %s: %w", name, k, callErr)
			return
		}
		out = append(out, r)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InvokeFunc calls fn with every element as its receiver and returns the
// results, in order, as a new Seq. Method expressions fit directly:
//
//	loscore.InvokeFunc(stacks, (*Stack).Pop)
//	loscore.InvokeFunc(loscore.Seq[string]{"yan"}, strings.ToUpper)
func InvokeFunc[V, R any](c Collection[V], fn func(V) R) Seq[R] {
	enter("invoke")
	out := make(Seq[R], 0, lenOf(c))
	Each(c, func(v V, _ Key, _ Collection[V]) {
		out = append(out, fn(v))
	})
	return out
}

func callMethod(recv any, name string) (any, error) {
	if recv != nil {
		if m := reflect.ValueOf(recv).MethodByName(name); m.IsValid() {
			return callReflect(m, name, recv)
		}
	}
	if fn, ok := builtinMethods[name]; ok {
		if r, applies := fn(recv); applies {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %q on %T", ErrMethodNotFound, name, recv)
}

func callReflect(m reflect.Value, name string, recv any) (any, error) {
	t := m.Type()
	if t.NumIn() > 1 || (t.NumIn() == 1 && !t.IsVariadic()) {
		return nil, fmt.Errorf("%w: %T.%s takes %d arguments", ErrInvalidMethod, recv, name, t.NumIn())
	}

	out := m.Call(nil)
	switch {
	case len(out) == 0:
		return nil, nil
	case len(out) == 1 && t.Out(0) == errorType:
		return nil, asError(out[0])
	case len(out) == 1:
		return out[0].Interface(), nil
	case len(out) == 2 && t.Out(1) == errorType:
		return out[0].Interface(), asError(out[1])
	default:
		return nil, fmt.Errorf("%w: %T.%s returns %d values", ErrInvalidMethod, recv, name, len(out))
	}
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}
