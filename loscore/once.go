package loscore

import (
	"sync"

	"github.com/zoobzio/metricz"
)

// Metric keys recorded by [Onced].
const (
	OnceCallsTotal      = metricz.Key("once.calls.total")
	OnceExecutionsTotal = metricz.Key("once.executions.total")
)

// Func is the function shape wrapped by [Once] and [Memoize].
type Func[R any] func(args ...any) R

// Onced wraps a function so that it runs at most once. Create one with
// [Once].
//
// It is safe for concurrent use. The wrapped function must not call its own
// Onced, which would deadlock in the same way [sync.Once] does.
type Onced[R any] struct {
	mu     sync.Mutex
	fn     Func[R]
	done   bool
	result R

	metrics *metricz.Registry
}

// Once returns a wrapper around fn. The first [Onced.Call] runs fn with its
// arguments and stores the result; every later call returns that result
// without running fn again, whatever arguments it is given.
//
//	initOnce := loscore.Once(func(...any) *Config { return loadConfig() })
//	cfg := initOnce.Call()
func Once[R any](fn Func[R]) *Onced[R] {
	registry := metricz.New()
	registry.Counter(OnceCallsTotal)
	registry.Counter(OnceExecutionsTotal)

	return &Onced[R]{fn: fn, metrics: registry}
}

// Call runs the wrapped function on the first call and returns its cached
// result on every call.
func (o *Onced[R]) Call(args ...any) R {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.metrics.Counter(OnceCallsTotal).Inc()
	if !o.done {
		o.metrics.Counter(OnceExecutionsTotal).Inc()
		o.result = o.fn(args...)
		o.done = true
	}
	return o.result
}

// Func returns Call as a plain function value.
func (o *Onced[R]) Func() Func[R] { return o.Call }

// Done reports whether the wrapped function has run.
func (o *Onced[R]) Done() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.done
}

// Metrics returns the registry holding this wrapper's call counters.
func (o *Onced[R]) Metrics() *metricz.Registry {
	return o.metrics
}
