package loscore

import (
	"encoding/hex"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"sync"

	"github.com/zoobzio/metricz"
	"golang.org/x/crypto/blake2b"
)

// Metric keys recorded by [Memoized].
const (
	MemoizeCallsTotal  = metricz.Key("memoize.calls.total")
	MemoizeHitsTotal   = metricz.Key("memoize.hits.total")
	MemoizeMissesTotal = metricz.Key("memoize.misses.total")
)

// KeyFunc derives a cache key from a call's argument list.
type KeyFunc func(args ...any) string

// MemoizeOptions configures a [Memoized] wrapper.
type MemoizeOptions struct {
	// Key derives the cache key. Defaults to [ArgsKey].
	Key KeyFunc

	// Metrics receives the wrapper's counters. When nil the wrapper creates
	// its own registry.
	Metrics *metricz.Registry
}

// DefaultMemoizeOptions returns MemoizeOptions using [ArgsKey] and a private
// metrics registry.
func DefaultMemoizeOptions() MemoizeOptions {
	return MemoizeOptions{Key: ArgsKey}
}

// Memoized caches the results of a function by argument list. Create one with
// [Memoize] or [MemoizeWith].
//
// The cache belongs to this value alone and lives as long as it does. It is
// safe for concurrent use; the lock is released while the wrapped function
// runs, so a memoized function may call itself recursively. Two concurrent
// misses on the same key both run the function and the later result wins.
type Memoized[R any] struct {
	mu    sync.Mutex
	fn    Func[R]
	key   KeyFunc
	cache map[string]R

	metrics *metricz.Registry
}

// Memoize returns a caching wrapper around fn keyed by the full argument list.
//
//	var fib *loscore.Memoized[int]
//	fib = loscore.Memoize(func(args ...any) int {
//	    n := args[0].(int)
//	    if n < 2 {
//	        return n
//	    }
//	    return fib.Call(n-1) + fib.Call(n-2)
//	})
//	fib.Call(80)
func Memoize[R any](fn Func[R]) *Memoized[R] {
	return MemoizeWith(fn, DefaultMemoizeOptions())
}

// MemoizeWith is [Memoize] with explicit options.
func MemoizeWith[R any](fn Func[R], opts MemoizeOptions) *Memoized[R] {
	if opts.Key == nil {
		opts.Key = ArgsKey
	}
	registry := opts.Metrics
	if registry == nil {
		registry = metricz.New()
	}
	registry.Counter(MemoizeCallsTotal)
	registry.Counter(MemoizeHitsTotal)
	registry.Counter(MemoizeMissesTotal)

	return &Memoized[R]{
		fn:      fn,
		key:     opts.Key,
		cache:   make(map[string]R),
		metrics: registry,
	}
}

// Call returns the cached result for args, running the wrapped function and
// caching its result on a miss.
func (m *Memoized[R]) Call(args ...any) R {
	k := m.key(args...)

	m.mu.Lock()
	m.metrics.Counter(MemoizeCallsTotal).Inc()
	if v, ok := m.cache[k]; ok {
		m.metrics.Counter(MemoizeHitsTotal).Inc()
		m.mu.Unlock()
		return v
	}
	m.metrics.Counter(MemoizeMissesTotal).Inc()
	m.mu.Unlock()

	v := m.fn(args...)

	m.mu.Lock()
	m.cache[k] = v
	m.mu.Unlock()
	return v
}

// Func returns Call as a plain function value.
func (m *Memoized[R]) Func() Func[R] { return m.Call }

// Len returns the number of cached results.
func (m *Memoized[R]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cache)
}

// Forget drops every cached result.
func (m *Memoized[R]) Forget() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.cache)
}

// Metrics returns the registry holding this wrapper's counters.
func (m *Memoized[R]) Metrics() *metricz.Registry {
	return m.metrics
}

// ArgsKey is the default [KeyFunc]. It encodes every argument as its Go type
// followed by its Go-syntax value, length-prefixed so that argument
// boundaries cannot shift, and returns the hex BLAKE2b-256 digest of the
// encoding.
//
// Distinct argument lists get distinct keys: (1, 2) and (2, 1) differ, as do
// 1, int64(1) and "1". Map arguments are encoded in sorted key order.
// Pointers, channels and funcs are keyed by address, never by what they point
// to, so mutating a value behind a pointer does not change its key.
func ArgsKey(args ...any) string {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err) // only possible with an oversized MAC key
	}
	_, _ = io.WriteString(h, strconv.Itoa(len(args)))
	for _, a := range args {
		enc := encodeArg(a)
		_, _ = io.WriteString(h, "|"+strconv.Itoa(len(enc))+":")
		_, _ = io.WriteString(h, enc)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func encodeArg(a any) string {
	// %#v prints a top-level pointer to a struct, slice, array or map as
	// &{...}; only nested pointers come out as addresses.
	if rv := reflect.ValueOf(a); rv.Kind() == reflect.Pointer || rv.Kind() == reflect.UnsafePointer {
		return fmt.Sprintf("%T|%#x", a, rv.Pointer())
	}
	return fmt.Sprintf("%T|%#v", a, a)
}
