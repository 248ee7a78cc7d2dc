package freeze

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// Slice is a read-only view of a slice. It does not copy: writes made to the
// original slice through another alias remain visible.
//
// Elements are returned by value, so element types holding pointers, maps or
// slices are frozen only one level deep.
type Slice[E any] struct {
	s []E
}

// NewSlice wraps s without copying it.
func NewSlice[E any](s []E) Slice[E] {
	return Slice[E]{s: s}
}

// FreezeSlice turns a frozen slice into a Slice view of the same elements.
func FreezeSlice[E any](f Freeze[[]E]) Slice[E] {
	return NewSlice(f.value)
}

// Len returns the number of elements.
func (s Slice[E]) Len() int {
	return len(s.s)
}

// At returns element i. It panics if i is out of range.
func (s Slice[E]) At(i int) E {
	return s.s[i]
}

// Sub returns the view of elements [i, j). The result cannot reach elements
// beyond j, even through its capacity.
func (s Slice[E]) Sub(i, j int) Slice[E] {
	return Slice[E]{s: s.s[i:j:j]}
}

// All iterates over index-element pairs in order.
func (s Slice[E]) All() iter.Seq2[int, E] {
	return slices.All(s.s)
}

// Values iterates over the elements in order.
func (s Slice[E]) Values() iter.Seq[E] {
	return slices.Values(s.s)
}

// Backward iterates over index-element pairs from the last element down.
func (s Slice[E]) Backward() iter.Seq2[int, E] {
	return slices.Backward(s.s)
}

// IndexFunc returns the first index i satisfying fn(s.At(i)), or -1.
func (s Slice[E]) IndexFunc(fn func(E) bool) int {
	return slices.IndexFunc(s.s, fn)
}

// ContainsFunc reports whether some element satisfies fn.
func (s Slice[E]) ContainsFunc(fn func(E) bool) bool {
	return slices.ContainsFunc(s.s, fn)
}

// Clone returns a fresh copy of the elements that the caller may modify.
func (s Slice[E]) Clone() []E {
	return slices.Clone(s.s)
}

// Defrost returns the wrapped slice itself.
func (s Slice[E]) Defrost() []E {
	return s.s
}

func (s Slice[E]) String() string {
	return fmt.Sprint(s.s)
}

func (s Slice[E]) Format(st fmt.State, verb rune) {
	fmt.Fprintf(st, fmt.FormatString(st, verb), s.s)
}

// SliceEqual reports whether a and b hold the same elements in the same order.
func SliceEqual[E comparable](a, b Slice[E]) bool {
	return slices.Equal(a.s, b.s)
}

// SliceCompare compares a and b lexicographically, as slices.Compare does.
func SliceCompare[E cmp.Ordered](a, b Slice[E]) int {
	return slices.Compare(a.s, b.s)
}

// SliceIndex returns the index of the first occurrence of v in s, or -1.
func SliceIndex[E comparable](s Slice[E], v E) int {
	return slices.Index(s.s, v)
}

// SliceContains reports whether v is an element of s.
func SliceContains[E comparable](s Slice[E], v E) bool {
	return slices.Contains(s.s, v)
}
