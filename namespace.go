package argparse

import (
	"reflect"

	omap "github.com/wk8/go-ordered-map"
)

// Namespace is the flat attribute bag a parse produces: one entry per
// argument destination that was written (defaults, then matched values).
// Keys preserve the order attributes were first set, which keeps
// Keys()/Values() deterministic for tests and for any caller that prints a
// Namespace back out.
type Namespace struct {
	store *omap.OrderedMap
}

// NewNamespace returns an empty Namespace.
func NewNamespace() *Namespace {
	return &Namespace{store: omap.New()}
}

// Set writes a value, materializing a new key in insertion order or
// overwriting an existing one in place.
func (n *Namespace) Set(key string, value any) {
	n.store.Set(key, value)
}

// Get returns the value at key and whether it was present.
func (n *Namespace) Get(key string) (any, bool) {
	v, ok := n.store.Get(key)
	return v, ok
}

// Unset removes key, if present. Suppress destinations are never written in
// the first place, so this is mostly used by tests and by callers rebuilding
// a Namespace incrementally.
func (n *Namespace) Unset(key string) {
	n.store.Delete(key)
}

// Has reports whether key has been written.
func (n *Namespace) Has(key string) bool {
	_, ok := n.store.Get(key)
	return ok
}

// Keys returns every written destination in insertion order.
func (n *Namespace) Keys() []string {
	keys := make([]string, 0, n.store.Len())
	for pair := n.store.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key.(string))
	}
	return keys
}

// Values returns every written value, in the same order as Keys.
func (n *Namespace) Values() []any {
	values := make([]any, 0, n.store.Len())
	for pair := n.store.Oldest(); pair != nil; pair = pair.Next() {
		values = append(values, pair.Value)
	}
	return values
}

// Len reports how many destinations have been written.
func (n *Namespace) Len() int {
	return n.store.Len()
}

// Equal reports deep equality over attributes; insertion order does not
// affect equality, only the key/value set does.
func (n *Namespace) Equal(other *Namespace) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Len() != other.Len() {
		return false
	}
	for pair := n.store.Oldest(); pair != nil; pair = pair.Next() {
		key := pair.Key.(string)
		ov, ok := other.Get(key)
		if !ok || !reflect.DeepEqual(pair.Value, ov) {
			return false
		}
	}
	return true
}

// AsMap materializes the Namespace as a plain map, discarding order. Useful
// for callers that only want membership/value access.
func (n *Namespace) AsMap() map[string]any {
	out := make(map[string]any, n.store.Len())
	for pair := n.store.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key.(string)] = pair.Value
	}
	return out
}
