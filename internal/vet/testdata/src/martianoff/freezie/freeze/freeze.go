package freeze

type Freeze[T any] struct {
	value T
}

func New[T any](v T) Freeze[T] {
	return Freeze[T]{value: v}
}

func (f Freeze[T]) Get() T {
	return f.value
}

func (f Freeze[T]) Defrost() T {
	return f.value
}
