package freeze

import (
	"fmt"
	"iter"
	"maps"
)

// Map is a read-only view of a map. Like Slice it wraps without copying.
type Map[K comparable, V any] struct {
	m map[K]V
}

// NewMap wraps m without copying it.
func NewMap[K comparable, V any](m map[K]V) Map[K, V] {
	return Map[K, V]{m: m}
}

// FreezeMap turns a frozen map into a Map view of the same entries.
func FreezeMap[K comparable, V any](f Freeze[map[K]V]) Map[K, V] {
	return NewMap(f.value)
}

// Len returns the number of entries.
func (m Map[K, V]) Len() int {
	return len(m.m)
}

// Get returns the value stored under k and whether it was present.
func (m Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.m[k]
	return v, ok
}

// Has reports whether k is present.
func (m Map[K, V]) Has(k K) bool {
	_, ok := m.m[k]
	return ok
}

// All iterates over the entries in unspecified order.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return maps.All(m.m)
}

// Keys iterates over the keys in unspecified order.
func (m Map[K, V]) Keys() iter.Seq[K] {
	return maps.Keys(m.m)
}

// Values iterates over the values in unspecified order.
func (m Map[K, V]) Values() iter.Seq[V] {
	return maps.Values(m.m)
}

// Clone returns a fresh copy of the entries that the caller may modify.
// A nil map clones to nil.
func (m Map[K, V]) Clone() map[K]V {
	return maps.Clone(m.m)
}

// Defrost returns the wrapped map itself.
func (m Map[K, V]) Defrost() map[K]V {
	return m.m
}

func (m Map[K, V]) String() string {
	return fmt.Sprint(m.m)
}

func (m Map[K, V]) Format(st fmt.State, verb rune) {
	fmt.Fprintf(st, fmt.FormatString(st, verb), m.m)
}

// MapEqual reports whether a and b contain the same entries.
func MapEqual[K, V comparable](a, b Map[K, V]) bool {
	return maps.Equal(a.m, b.m)
}
