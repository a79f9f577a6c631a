package loscore

import "errors"

// Sentinel errors returned by loscore operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := loscore.Invoke(items, "close")
//	if errors.Is(err, loscore.ErrMethodNotFound) {
//	    // some element has no such method
//	}
var (
	// ErrEmptyCollection is returned by [ReduceFirst] when there is no
	// element to seed the accumulator with.
	ErrEmptyCollection = errors.New("loscore: reduce of empty collection with no initial value")

	// ErrMethodNotFound is returned by [Invoke] when an element has neither a
	// Go method nor a built-in method of the requested name.
	ErrMethodNotFound = errors.New("loscore: method not found")

	// ErrInvalidMethod is returned by [Invoke] when a method of the requested
	// name exists but cannot be called without arguments, or returns more
	// values than Invoke can collect.
	ErrInvalidMethod = errors.New("loscore: method cannot be invoked without arguments")
)
