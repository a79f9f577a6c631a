package loscore

// Iterator is called once per element by [Each] with the element, its
// position and the collection being iterated.
type Iterator[V any] func(value V, key Key, c Collection[V])

// Each calls fn for every element of c, in order, and returns nothing.
//
// A [Seq] is visited by index from 0 to Len()-1. An *[Object] is visited in
// key insertion order, with [Key.Name] holding the key. A nil collection is
// treated as empty.
//
// Every other collection operation in this package iterates through Each.
//
//	loscore.Each(loscore.Seq[string]{"a", "b"}, func(v string, k loscore.Key, _ loscore.Collection[string]) {
//	    fmt.Println(k.Index(), v)
//	})
func Each[V any](c Collection[V], fn Iterator[V]) {
	enter("each")
	switch c := c.(type) {
	case Seq[V]:
		for i := 0; i < len(c); i++ {
			fn(c[i], IndexKey(i), c)
		}
	case *Object[V]:
		if c == nil {
			return
		}
		// Keys added by fn are not visited; keys deleted by fn are skipped.
		for _, k := range c.Keys() {
			v, ok := c.values[k]
			if !ok {
				continue
			}
			fn(v, NameKey(k), c)
		}
	}
}

// testHookEnter observes operation entry. It is nil outside tests.
var testHookEnter func(op string)

func enter(op string) {
	if testHookEnter != nil {
		testHookEnter(op)
	}
}
