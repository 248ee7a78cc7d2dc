package freeze

// Cloner is implemented by types that know how to duplicate themselves.
// Clone must return a value that shares no mutable state with the receiver.
type Cloner[T any] interface {
	Clone() T
}

// Equatable is implemented by types with their own notion of equality.
type Equatable[T any] interface {
	Equal(other T) bool
}

// Comparable is implemented by types with their own total order.
// Compare returns a negative number, zero or a positive number when the
// receiver sorts before, equal to or after other.
type Comparable[T any] interface {
	Compare(other T) int
}
