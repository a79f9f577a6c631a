package loscore

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Shape identifies which of the two collection layouts a value has.
type Shape int

const (
	// ShapeSequence is an ordered, zero-indexed sequence ([Seq]).
	ShapeSequence Shape = iota
	// ShapeMapping is a string-keyed mapping ([Object]).
	ShapeMapping
)

// String returns "sequence" or "mapping".
func (s Shape) String() string {
	switch s {
	case ShapeSequence:
		return "sequence"
	case ShapeMapping:
		return "mapping"
	default:
		return "Shape(" + strconv.Itoa(int(s)) + ")"
	}
}

// Collection is the input accepted by every collection operation.
//
// It is satisfied by exactly two types: [Seq], an ordered sequence, and
// *[Object], an insertion-ordered mapping. [Each] branches on the concrete
// type, so every operation built on it shares the same iteration order.
//
// Portability note: this is the array / plain-object split of JavaScript, or
// list / dict in Python.
type Collection[V any] interface {
	// Len returns the number of elements.
	Len() int

	// Shape reports whether the collection is a sequence or a mapping.
	Shape() Shape

	// Values returns the elements, in iteration order, as a new Seq.
	Values() Seq[V]

	// sealed keeps the set of shapes closed.
	sealed()
}

// ─────────────────────────────────────────────────────────────────────────────
// Seq
// ─────────────────────────────────────────────────────────────────────────────

// Seq is an ordered sequence of V. Any []V converts to it directly:
//
//	loscore.Map(loscore.Seq[int]{1, 2, 3}, double)
//	loscore.Map(loscore.Seq[int](ints), double)
type Seq[V any] []V

// Len returns len(s).
func (s Seq[V]) Len() int { return len(s) }

// Shape returns [ShapeSequence].
func (Seq[V]) Shape() Shape { return ShapeSequence }

// Values returns a copy of s.
func (s Seq[V]) Values() Seq[V] { return slices.Clone(s) }

func (Seq[V]) sealed() {}

// ─────────────────────────────────────────────────────────────────────────────
// Object
// ─────────────────────────────────────────────────────────────────────────────

// Entry is a single key/value pair of an [Object].
type Entry[V any] struct {
	Key   string
	Value V
}

// String returns a human-readable representation: "key: value".
func (e Entry[V]) String() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Value)
}

// Object is a mapping from string keys to values that remembers the order in
// which keys were first set. Iteration visits keys in that order; overwriting
// an existing key keeps its original position.
//
// The zero value is an empty Object ready to use. A nil *Object reads as
// empty and ignores [Object.Delete]. An Object is not safe for concurrent mutation.
type Object[V any] struct {
	keys   []string
	values map[string]V
}

// NewObject creates an Object holding entries in the given order. Later
// entries overwrite earlier ones with the same key.
func NewObject[V any](entries ...Entry[V]) *Object[V] {
	o := &Object[V]{
		keys:   make([]string, 0, len(entries)),
		values: make(map[string]V, len(entries)),
	}
	for _, e := range entries {
		o.Set(e.Key, e.Value)
	}
	return o
}

// FromMap creates an Object from a Go map. Go maps carry no order, so keys
// are inserted in ascending lexical order.
func FromMap[V any](m map[string]V) *Object[V] {
	o := &Object[V]{
		keys:   slices.Sorted(maps.Keys(m)),
		values: make(map[string]V, len(m)),
	}
	maps.Copy(o.values, m)
	return o
}

// Len returns the number of keys.
func (o *Object[V]) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Shape returns [ShapeMapping].
func (*Object[V]) Shape() Shape { return ShapeMapping }

func (*Object[V]) sealed() {}

// Set stores value under key and returns o for chaining.
func (o *Object[V]) Set(key string, value V) *Object[V] {
	if o.values == nil {
		o.values = make(map[string]V)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Get returns the value stored under key together with a presence flag.
func (o *Object[V]) Get(key string) (V, bool) {
	if o == nil {
		var zero V
		return zero, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object[V]) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Delete removes key. Removing a missing key is a no-op.
func (o *Object[V]) Delete(key string) {
	if o == nil {
		return
	}
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
}

// Keys returns a copy of the keys in iteration order.
func (o *Object[V]) Keys() []string {
	if o == nil {
		return []string{}
	}
	return slices.Clone(o.keys)
}

// Values returns the values in iteration order.
func (o *Object[V]) Values() Seq[V] {
	out := make(Seq[V], 0, o.Len())
	for _, k := range o.Keys() {
		out = append(out, o.values[k])
	}
	return out
}

// Entries returns the key/value pairs in iteration order.
func (o *Object[V]) Entries() []Entry[V] {
	out := make([]Entry[V], 0, o.Len())
	for _, k := range o.Keys() {
		out = append(out, Entry[V]{Key: k, Value: o.values[k]})
	}
	return out
}

// ToMap returns the contents as a plain Go map (order is lost).
func (o *Object[V]) ToMap() map[string]V {
	out := make(map[string]V, o.Len())
	if o != nil {
		maps.Copy(out, o.values)
	}
	return out
}

// Clone returns a shallow copy of o.
func (o *Object[V]) Clone() *Object[V] {
	return NewObject(o.Entries()...)
}

// String renders the object as {k: v, ...} in iteration order.
func (o *Object[V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range o.Entries() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte('}')
	return b.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Key
// ─────────────────────────────────────────────────────────────────────────────

// Key is the position passed to an [Iterator]: a numeric index for a [Seq]
// element, or a key name for an [Object] entry.
type Key struct {
	index int
	name  string
	named bool
}

// IndexKey returns the Key for sequence position i.
func IndexKey(i int) Key { return Key{index: i} }

// NameKey returns the Key for mapping key name.
func NameKey(name string) Key { return Key{index: -1, name: name, named: true} }

// IsIndex reports whether k is a sequence index.
func (k Key) IsIndex() bool { return !k.named }

// Index returns the sequence index, or -1 for a mapping key.
func (k Key) Index() int { return k.index }

// Name returns the mapping key. For a sequence index it returns the index in
// decimal, which is the key [Extend] copies a Seq element under.
func (k Key) Name() string {
	if k.named {
		return k.name
	}
	return strconv.Itoa(k.index)
}

// String implements [fmt.Stringer].
func (k Key) String() string { return k.Name() }
