package environment

type defaultKind int

const (
	required defaultKind = iota
	literal
	producer
)

// Default is the fallback used when a variable is absent from the source.
// The zero Default marks the variable as required, which keeps it distinct
// from every real value of T, including T's zero value.
type Default[T any] struct {
	kind    defaultKind
	value   T
	produce func() T
}

// Required marks a variable that has no fallback.
func Required[T any]() Default[T] {
	return Default[T]{}
}

// Value uses v as is. A function value passed here is returned as the
// default, it is not called.
func Value[T any](v T) Default[T] {
	return Default[T]{kind: literal, value: v}
}

// Producer defers computing the fallback until the variable turns out to be
// absent. f runs at most once per declaration.
func Producer[T any](f func() T) Default[T] {
	if f == nil {
		return Required[T]()
	}
	return Default[T]{kind: producer, produce: f}
}

// IsRequired reports whether d is the required marker.
func (d Default[T]) IsRequired() bool {
	return d.kind == required
}
