package freeze

import "cmp"

// Compare orders a and b exactly as cmp.Compare orders their values.
func Compare[T cmp.Ordered](a, b Freeze[T]) int {
	return cmp.Compare(a.value, b.value)
}

// Less reports whether a's value sorts before b's, as cmp.Less does.
func Less[T cmp.Ordered](a, b Freeze[T]) bool {
	return cmp.Less(a.value, b.value)
}

// CompareFunc orders a and b by applying fn to their values.
func CompareFunc[T any](a, b Freeze[T], fn func(T, T) int) int {
	return fn(a.value, b.value)
}

// CompareMethod orders a and b by T's own Compare method.
func CompareMethod[T Comparable[T]](a, b Freeze[T]) int {
	return a.value.Compare(b.value)
}

// Min returns whichever of a and b holds the smaller value, preferring a on
// ties.
func Min[T cmp.Ordered](a, b Freeze[T]) Freeze[T] {
	if Less(b, a) {
		return b
	}
	return a
}

// Max returns whichever of a and b holds the larger value, preferring a on
// ties.
func Max[T cmp.Ordered](a, b Freeze[T]) Freeze[T] {
	if Less(a, b) {
		return b
	}
	return a
}
