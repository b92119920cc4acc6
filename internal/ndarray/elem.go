package ndarray

import "golang.org/x/exp/constraints"

// Elem is the constraint for supported array element types.
type Elem interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~bool
}

// Numeric covers the Elem types that support arithmetic.
type Numeric interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// Integer covers the Elem types that support bitwise operations.
type Integer interface {
	~int32 | ~int64 | ~uint8
}

// Float covers the floating-point Elem types.
type Float interface {
	constraints.Float
}

// truthy reports whether v differs from its type's zero value.
func truthy[T Elem](v T) bool {
	var zero T
	return v != zero
}
