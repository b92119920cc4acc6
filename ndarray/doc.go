// Package ndarray provides the public API for the oc-array library: a
// dense, strided, in-memory N-dimensional array of a generic element
// type, together with the slicing, reshaping and traversal machinery
// that lets any rectangular sub-array act as a first-class array
// sharing storage with its parent.
//
// # Overview
//
// The package offers:
//   - Array[T]: a generic array handle over a shared element buffer
//   - Interval slicing producing zero-copy views
//   - Shape transformations (Reshape, Resize, Transpose, Append,
//     Insert, Remove, Copy, Set)
//   - Traversal-driven operators (Transform, Reduce, Filter, Find,
//     comparisons, arithmetic, bitwise and logical families)
//   - Cursors exposing the underlying flat-position iteration
//
// # Basic Usage
//
//	a := ndarray.Arange[int32](1, 7)
//	a3, _ := ndarray.Reshape(a, ndarray.Shape{3, 1, 2})
//
//	v := a3.Slice(ndarray.NewInterval(1, 2), ndarray.Index(0))
//	v.Fill(0) // writes through to a3
//
//	sum := ndarray.Reduce(a3, func(acc, v int32) int32 { return acc + v })
//
// # Views
//
// Slicing never copies: the view holds its own layout over the parent's
// reference-counted buffer, and mutation through a view is visible to
// every alias. Assigning a shape-equal array into a view copies
// element-wise into the shared buffer instead of rebinding the handle.
//
// # Element Types
//
// Array is parameterised over the Elem constraint: float32, float64,
// int32, int64, uint8 and bool. Operations whose result type differs
// from the input (comparisons, Transform with a converting function)
// return an array of the result type.
//
// # Shapes and Indexing
//
// Element access is 0-indexed and row-major. Negative subscripts wrap
// into range via Euclidean modulo; a subscript tuple shorter than the
// rank addresses the trailing axes.
//
// # Errors
//
// Fallible operations return an error wrapping ErrShapeMismatch or
// ErrOutOfRange; use errors.Is to distinguish them. Degenerate slices
// and transforms are not errors: they produce empty arrays, detected
// with IsEmpty.
//
// # Concurrency
//
// The library is single-threaded: no operation spawns goroutines or
// synchronises access. Concurrent reads of shared buffers are safe;
// concurrent writes are the caller's responsibility.
package ndarray
