// Package collections converts the []any a repetition parser produces
// into a keyed or ordered collection: HashMap, HashSet, BTreeMap,
// BTreeSet, and VecDeque each wrap a slice-producing parser with a
// collecting mapping. Go has no generic collect-into-container mechanism
// to dispatch on, so each function here is a small generic wrapper over
// Map instead, explicit about the element and key/value types it expects.
package collections

import (
	"cmp"
	"container/list"
	"sort"

	"github.com/jorendorff/aocparse"
)

// HashMap converts parser's []any output, expected to hold two-element
// tuples (as sequence(k, v) produces), into a map[K]V.
func HashMap[K comparable, V any](parser aocparse.Parser) aocparse.Parser {
	return aocparse.Map(parser, func(v any) any {
		items := v.([]any)
		m := make(map[K]V, len(items))
		for _, item := range items {
			k, val := keyValue[K, V](item)
			m[k] = val
		}
		return m
	})
}

// HashSet converts parser's []any output into a map[V]struct{} (Go's
// idiomatic set representation).
func HashSet[V comparable](parser aocparse.Parser) aocparse.Parser {
	return aocparse.Map(parser, func(v any) any {
		items := v.([]any)
		s := make(map[V]struct{}, len(items))
		for _, item := range items {
			s[item.(V)] = struct{}{}
		}
		return s
	})
}

// OrderedMap is an ordered K->V map, as produced by BTreeMap(parser):
// iteration and Keys() visit keys in sorted order, unlike Go's native
// map. Go has no standard ordered-map type; this is the sort-backed
// equivalent of Rust's std::collections::BTreeMap.
type OrderedMap[K cmp.Ordered, V any] struct {
	keys   []K
	values map[K]V
}

// Get looks up k, reporting whether it was present.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

// Keys returns the map's keys in ascending order.
func (m *OrderedMap[K, V]) Keys() []K { return m.keys }

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int { return len(m.keys) }

// Range calls fn for each entry in ascending key order, stopping early if
// fn returns false.
func (m *OrderedMap[K, V]) Range(fn func(K, V) bool) {
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

func keyValue[K comparable, V any](item any) (K, V) {
	pair := item.([]any)
	return pair[0].(K), pair[1].(V)
}

// BTreeMap converts parser's []any output of two-element tuples into an
// OrderedMap[K, V].
func BTreeMap[K cmp.Ordered, V any](parser aocparse.Parser) aocparse.Parser {
	return aocparse.Map(parser, func(v any) any {
		items := v.([]any)
		m := &OrderedMap[K, V]{values: make(map[K]V, len(items))}
		for _, item := range items {
			k, val := keyValue[K, V](item)
			if _, exists := m.values[k]; !exists {
				m.keys = append(m.keys, k)
			}
			m.values[k] = val
		}
		sort.Slice(m.keys, func(i, j int) bool { return m.keys[i] < m.keys[j] })
		return m
	})
}

// OrderedSet is a sorted, deduplicated set of comparable, ordered values.
type OrderedSet[V cmp.Ordered] struct {
	values []V
}

// Contains reports whether v is in the set.
func (s *OrderedSet[V]) Contains(v V) bool {
	i := sort.Search(len(s.values), func(i int) bool { return s.values[i] >= v })
	return i < len(s.values) && s.values[i] == v
}

// Values returns the set's members in ascending order.
func (s *OrderedSet[V]) Values() []V { return s.values }

// Len returns the number of distinct members.
func (s *OrderedSet[V]) Len() int { return len(s.values) }

// BTreeSet converts parser's []any output into an OrderedSet[V].
func BTreeSet[V cmp.Ordered](parser aocparse.Parser) aocparse.Parser {
	return aocparse.Map(parser, func(v any) any {
		items := v.([]any)
		seen := make(map[V]struct{}, len(items))
		values := make([]V, 0, len(items))
		for _, item := range items {
			x := item.(V)
			if _, dup := seen[x]; !dup {
				seen[x] = struct{}{}
				values = append(values, x)
			}
		}
		sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
		return &OrderedSet[V]{values: values}
	})
}

// Deque is a double-ended queue, backed by container/list the way a
// VecDeque-producing parser needs push/pop access at both ends rather
// than just the slice indexing a plain []T gives.
type Deque[T any] struct {
	*list.List
}

// Values returns the deque's elements from front to back.
func (d *Deque[T]) Values() []T {
	out := make([]T, 0, d.Len())
	for e := d.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(T))
	}
	return out
}

// VecDeque converts parser's []any output into a *Deque[T].
func VecDeque[T any](parser aocparse.Parser) aocparse.Parser {
	return aocparse.Map(parser, func(v any) any {
		items := v.([]any)
		dq := &Deque[T]{List: list.New()}
		for _, item := range items {
			dq.PushBack(item.(T))
		}
		return dq
	})
}
