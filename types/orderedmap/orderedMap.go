// Package orderedmap backs the matching engine's insertion-ordered lookups:
// an ActionContainer's option-string index keeps option strings in
// declaration order, so iterating it is deterministic rather than following
// map iteration order.
package orderedmap

import (
	"container/list"
)

// OrderedMap stores key/value pairs in insertion order with O(1) lookup,
// insert, and delete.
type OrderedMap[K comparable, V any] struct {
	store map[K]*list.Element
	order *list.List
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates an empty OrderedMap.
func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*list.Element{},
		order: list.New(),
	}
}

// Set stores key/value, overwriting the value in place if the key already
// exists (its position in the order is unchanged).
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if e, exists := o.store[key]; exists {
		e.Value = entry[K, V]{key: key, value: val}
		return
	}
	o.store[key] = o.order.PushBack(entry[K, V]{key: key, value: val})
}

// Get returns the value for key and whether it was present.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	e, exists := o.store[key]
	if !exists {
		var zero V
		return zero, false
	}
	return e.Value.(entry[K, V]).value, true
}

// Delete removes key, if present.
func (o *OrderedMap[K, V]) Delete(key K) {
	e, exists := o.store[key]
	if !exists {
		return
	}
	o.order.Remove(e)
	delete(o.store, key)
}

// Len reports the number of stored keys.
func (o *OrderedMap[K, V]) Len() int {
	return o.order.Len()
}

// Keys returns all keys in insertion order.
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.order.Len())
	for e := o.order.Front(); e != nil; e = e.Next() {
		keys = append(keys, e.Value.(entry[K, V]).key)
	}
	return keys
}

// Range calls fn for every key/value pair in insertion order, stopping early
// if fn returns false.
func (o *OrderedMap[K, V]) Range(fn func(key K, val V) bool) {
	for e := o.order.Front(); e != nil; e = e.Next() {
		kv := e.Value.(entry[K, V])
		if !fn(kv.key, kv.value) {
			return
		}
	}
}
