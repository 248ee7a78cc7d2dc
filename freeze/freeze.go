// Package freeze provides Freeze, a zero-cost wrapper that owns a value and
// only hands out copies of it.
//
// Mutation through a Freeze is a compile error: the value lives in an
// unexported field and every accessor returns it by value, so the result of
// Get is never addressable.
//
//	v := freeze.Of(point{X: 1})
//	v.Get().X = 2 // compile error: cannot assign to v.Get().X
//
// Freezing is shallow. Slices, maps and pointers stored inside the value keep
// their aliases; use Slice and Map for read-only views of Go containers.
package freeze

import (
	"fmt"
	"hash/maphash"
	"reflect"
)

// Freeze holds exactly one value of type T and exposes it read-only.
//
// The zero value wraps the zero value of T. A Freeze is copied by assignment;
// when T is comparable, Freeze[T] is comparable too and can be used as a map
// key, comparing and hashing exactly as T does.
type Freeze[T any] struct {
	value T
}

// New takes ownership of v and returns it frozen.
func New[T any](v T) Freeze[T] {
	return Freeze[T]{value: v}
}

// Of is the conversion affordance for any value: Of(v) is New(v).
// Types that want method syntax can add their own:
//
//	func (c Config) Freeze() freeze.Freeze[Config] { return freeze.Of(c) }
func Of[T any](v T) Freeze[T] {
	return New(v)
}

// Default returns T's zero value frozen.
func Default[T any]() Freeze[T] {
	var zero T
	return New(zero)
}

// Get returns a copy of the frozen value.
func (f Freeze[T]) Get() T {
	return f.value
}

// Defrost gives up the wrapper and returns the owned value, which the caller
// is then free to mutate.
func (f Freeze[T]) Defrost() T {
	return f.value
}

// Clone returns a new Freeze holding a duplicate of the value. T's Clone
// method is used when it implements Cloner. Otherwise a slice or map gets a
// fresh backing store holding the same elements, and any other value is
// copied by assignment, so references nested inside it stay shared.
func (f Freeze[T]) Clone() Freeze[T] {
	if c, ok := any(f.value).(Cloner[T]); ok {
		return New(c.Clone())
	}

	v := reflect.ValueOf(&f.value).Elem()
	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return f
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(out, v)
		return New(out.Interface().(T))
	case reflect.Map:
		if v.IsNil() {
			return f
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		return New(out.Interface().(T))
	}
	return f
}

// Equal reports whether both wrappers hold equal values. T's Equal method is
// used when it implements Equatable, otherwise reflect.DeepEqual.
func (f Freeze[T]) Equal(other Freeze[T]) bool {
	if e, ok := any(f.value).(Equatable[T]); ok {
		return e.Equal(other.value)
	}
	return reflect.DeepEqual(f.value, other.value)
}

// Hash returns the hash of the frozen value under seed. It equals
// maphash.Comparable(seed, f.Get()).
func Hash[T comparable](seed maphash.Seed, f Freeze[T]) uint64 {
	return maphash.Comparable(seed, f.value)
}

// String formats the value with %v.
func (f Freeze[T]) String() string {
	return fmt.Sprint(f.value)
}

// GoString formats the value with %#v.
func (f Freeze[T]) GoString() string {
	return fmt.Sprintf("%#v", f.value)
}

// Format prints the value as if the wrapper were not there.
func (f Freeze[T]) Format(s fmt.State, verb rune) {
	fmt.Fprintf(s, fmt.FormatString(s, verb), f.value)
}

var (
	_ fmt.Formatter          = Freeze[int]{}
	_ fmt.Stringer           = Freeze[int]{}
	_ fmt.GoStringer         = Freeze[int]{}
	_ Equatable[Freeze[int]] = Freeze[int]{}
	_ Cloner[Freeze[int]]    = Freeze[int]{}
)
