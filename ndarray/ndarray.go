package ndarray

import (
	"github.com/oren12321/oc-array/internal/ndarray"
)

// Type aliases for the public API.

// Elem is the constraint for supported array element types:
// float32, float64, int32, int64, uint8 and bool.
type Elem = ndarray.Elem

// Numeric covers the Elem types that support arithmetic.
type Numeric = ndarray.Numeric

// Integer covers the Elem types that support bitwise operations.
type Integer = ndarray.Integer

// Float covers the floating-point Elem types.
type Float = ndarray.Float

// Shape represents the dimensions of an array, outermost axis first.
// Example: Shape{3, 1, 2} is a 3-D array with dimensions 3×1×2.
type Shape = ndarray.Shape

// Interval is an inclusive index range along one axis, with an optional
// step. Negative endpoints wrap into the axis range during slicing.
type Interval = ndarray.Interval

// Layout is the descriptor mapping N-dimensional subscripts to flat
// buffer positions: dims, strides, offset, count and the view flag.
type Layout = ndarray.Layout

// Cursor walks a layout and yields flat buffer positions in a
// well-defined order.
type Cursor = ndarray.Cursor

// FlatCursor iterates a contiguous non-view layout by flat position
// directly.
type FlatCursor = ndarray.FlatCursor

// Array is a generic N-dimensional array handle: a layout paired with a
// shared reference-counted element buffer.
//
// Example:
//
//	a := ndarray.Full[float64](ndarray.Shape{2, 3}, 1.5)
//	v := a.Slice(ndarray.Index(0)) // view of the first row
type Array[T Elem] = ndarray.Array[T]

// Default tolerances for close comparisons.
const (
	DefaultAtol = ndarray.DefaultAtol
	DefaultRtol = ndarray.DefaultRtol
)

// Error kinds. Distinguish with errors.Is.
var (
	ErrShapeMismatch = ndarray.ErrShapeMismatch
	ErrOutOfRange    = ndarray.ErrOutOfRange
)

// Interval constructors.

// NewInterval returns the interval [start, stop] with step 1.
func NewInterval(start, stop int) Interval { return ndarray.NewInterval(start, stop) }

// Index returns the single-element interval at i.
func Index(i int) Interval { return ndarray.Index(i) }

// Stepped returns the interval [start, stop] with the given step.
func Stepped(start, stop, step int) Interval { return ndarray.Stepped(start, stop, step) }

// Numeric helpers.

// Modulo wraps v into [0, n) using Euclidean modulo.
func Modulo(v, n int) int { return ndarray.Modulo(v, n) }

// CloseEnough reports whether a and b are equal within atol + rtol*|b|.
func CloseEnough[T Numeric](a, b T, atol, rtol float64) bool {
	return ndarray.CloseEnough(a, b, atol, rtol)
}

// Layout construction.

// NewLayout builds a row-major layout over shape.
func NewLayout(shape Shape) Layout { return ndarray.NewLayout(shape) }

// Creation functions.

// Zeros creates an array of the given shape filled with the zero value.
//
// Example:
//
//	a := ndarray.Zeros[float32](ndarray.Shape{3, 4})
func Zeros[T Elem](shape Shape) *Array[T] { return ndarray.Zeros[T](shape) }

// Full creates an array of the given shape with every element set to
// value.
func Full[T Elem](shape Shape, value T) *Array[T] { return ndarray.Full(shape, value) }

// FromSlice creates an array of the given shape from row-major source
// data. The data is copied.
//
// Example:
//
//	a, err := ndarray.FromSlice([]int32{1, 2, 3, 4, 5, 6}, ndarray.Shape{3, 1, 2})
func FromSlice[T Elem](data []T, shape Shape) (*Array[T], error) {
	return ndarray.FromSlice(data, shape)
}

// FromSliceOf creates an Array[T] from foreign-typed source data,
// converting each element.
//
// Example:
//
//	a, err := ndarray.FromSliceOf[float64]([]int32{1, 2, 3}, ndarray.Shape{3})
func FromSliceOf[T, U Numeric](data []U, shape Shape) (*Array[T], error) {
	return ndarray.FromSliceOf[T](data, shape)
}

// Arange creates a 1-D array with values from start to end (exclusive).
func Arange[T Numeric](start, end T) *Array[T] { return ndarray.Arange(start, end) }

// Clone returns a deep copy sharing no buffer with the source.
func Clone[T Elem](a *Array[T]) *Array[T] { return ndarray.Clone(a) }

// Empty reports whether the array holds no elements.
func Empty[T Elem](a *Array[T]) bool { return ndarray.Empty(a) }

// Shape transformations.

// Reshape returns an array of the new shape over the same elements.
// Reshaping a view copies; reshaping a non-view aliases the buffer.
func Reshape[T Elem](a *Array[T], shape Shape) (*Array[T], error) {
	return ndarray.Reshape(a, shape)
}

// Resize returns a fresh array of the new shape filled from the source
// in lock-step until either is exhausted.
func Resize[T Elem](a *Array[T], shape Shape) *Array[T] { return ndarray.Resize(a, shape) }

// Transpose returns a fresh array with the axes permuted by order.
//
// Example:
//
//	tr := ndarray.Transpose(a, 2, 0, 1, 3)
func Transpose[T Elem](a *Array[T], order ...int) *Array[T] {
	return ndarray.Transpose(a, order...)
}

// Append concatenates the elements of b after those of a, flattening
// both to one dimension.
func Append[T Elem](a, b *Array[T]) *Array[T] { return ndarray.Append(a, b) }

// AppendAxis concatenates b after a along the given axis.
func AppendAxis[T Elem](a, b *Array[T], axis int) (*Array[T], error) {
	return ndarray.AppendAxis(a, b, axis)
}

// Insert inserts the elements of b at a flat position of a.
func Insert[T Elem](a, b *Array[T], position int) (*Array[T], error) {
	return ndarray.Insert(a, b, position)
}

// InsertAxis inserts b into a at the given position along an axis.
func InsertAxis[T Elem](a, b *Array[T], position, axis int) (*Array[T], error) {
	return ndarray.InsertAxis(a, b, position, axis)
}

// Remove removes count elements at a flat position, clamping the count
// to the remaining length.
func Remove[T Elem](a *Array[T], position, count int) *Array[T] {
	return ndarray.Remove(a, position, count)
}

// RemoveAxis removes count positions along an axis, clamping the count
// to the axis end.
func RemoveAxis[T Elem](a *Array[T], position, count, axis int) *Array[T] {
	return ndarray.RemoveAxis(a, position, count, axis)
}

// Copy copies src into dst in lock-step until either is exhausted,
// keeping dst's identity.
func Copy[T Elem](src, dst *Array[T]) { ndarray.Copy(src, dst) }

// Set copies src into dst, first rebinding a non-view dst to src's
// shape over a fresh buffer.
func Set[T Elem](src, dst *Array[T]) *Array[T] { return ndarray.Set(src, dst) }

// Traversal-driven operators.

// Transform applies f to every element, producing an array of f's
// result type.
//
// Example:
//
//	mask := ndarray.Transform(a, func(v int32) bool { return v > 0 })
func Transform[T, U Elem](a *Array[T], f func(T) U) *Array[U] { return ndarray.Transform(a, f) }

// Transform2 applies f element-wise over two shape-equal arrays.
func Transform2[T1, T2, U Elem](a *Array[T1], b *Array[T2], f func(T1, T2) U) (*Array[U], error) {
	return ndarray.Transform2(a, b, f)
}

// Reduce folds the elements left to right in row-major order, starting
// from the first element.
func Reduce[T Elem](a *Array[T], f func(acc, v T) T) T { return ndarray.Reduce(a, f) }

// ReduceWith folds into an explicit initial accumulator.
func ReduceWith[T Elem, U any](a *Array[T], init U, f func(acc U, v T) U) U {
	return ndarray.ReduceWith(a, init, f)
}

// ReduceAxis folds along an axis; the output shape drops that axis.
//
// Example:
//
//	sums := ndarray.ReduceAxis(a, func(acc, v int32) int32 { return acc + v }, 0)
func ReduceAxis[T Elem](a *Array[T], f func(acc, v T) T, axis int) *Array[T] {
	return ndarray.ReduceAxis(a, f, axis)
}

// ReduceAxisWith folds along an axis from an explicit initial
// accumulator per output cell.
func ReduceAxisWith[T, U Elem](a *Array[T], init U, f func(acc U, v T) U, axis int) *Array[U] {
	return ndarray.ReduceAxisWith(a, init, f, axis)
}

// Filter returns a 1-D array of the elements matching pred.
func Filter[T Elem](a *Array[T], pred func(T) bool) *Array[T] { return ndarray.Filter(a, pred) }

// FilterMask returns a 1-D array of the elements whose mask entry is
// true.
func FilterMask[T Elem](a *Array[T], mask *Array[bool]) (*Array[T], error) {
	return ndarray.FilterMask(a, mask)
}

// Find returns the flat positions of the elements matching pred.
func Find[T Elem](a *Array[T], pred func(T) bool) *Array[int64] { return ndarray.Find(a, pred) }

// FindMask returns the flat positions of the elements whose mask entry
// is true.
func FindMask[T Elem](a *Array[T], mask *Array[bool]) (*Array[int64], error) {
	return ndarray.FindMask(a, mask)
}

// All reports whether every element is truthy.
func All[T Elem](a *Array[T]) bool { return ndarray.All(a) }

// Any reports whether at least one element is truthy.
func Any[T Elem](a *Array[T]) bool { return ndarray.Any(a) }

// AllAxis reduces truthiness with logical AND along an axis.
func AllAxis[T Elem](a *Array[T], axis int) *Array[bool] { return ndarray.AllAxis(a, axis) }

// AnyAxis reduces truthiness with logical OR along an axis.
func AnyAxis[T Elem](a *Array[T], axis int) *Array[bool] { return ndarray.AnyAxis(a, axis) }

// AllMatch reports whether pred holds for every element pair of a
// lock-step walk. Two empty arrays match; unequal shapes do not.
func AllMatch[T1, T2 Elem](a *Array[T1], b *Array[T2], pred func(T1, T2) bool) bool {
	return ndarray.AllMatch(a, b, pred)
}

// AnyMatch reports whether pred holds for at least one element pair.
func AnyMatch[T1, T2 Elem](a *Array[T1], b *Array[T2], pred func(T1, T2) bool) bool {
	return ndarray.AnyMatch(a, b, pred)
}

// AllEqual reports whether a and b are shape-equal and element-equal.
func AllEqual[T Elem](a, b *Array[T]) bool { return ndarray.AllEqual(a, b) }

// AllEqualValue reports whether every element equals v.
func AllEqualValue[T Elem](a *Array[T], v T) bool { return ndarray.AllEqualValue(a, v) }

// Close compares two arrays element-wise within the default tolerances.
func Close[T Numeric](a, b *Array[T]) (*Array[bool], error) { return ndarray.Close(a, b) }

// CloseTol compares two arrays element-wise within the given
// tolerances. Zero tolerances mean exact equality.
func CloseTol[T Numeric](a, b *Array[T], atol, rtol float64) (*Array[bool], error) {
	return ndarray.CloseTol(a, b, atol, rtol)
}

// CloseValue compares every element against v within the default
// tolerances.
func CloseValue[T Numeric](a *Array[T], v T) *Array[bool] { return ndarray.CloseValue(a, v) }

// CloseValueTol compares every element against v within the given
// tolerances.
func CloseValueTol[T Numeric](a *Array[T], v T, atol, rtol float64) *Array[bool] {
	return ndarray.CloseValueTol(a, v, atol, rtol)
}

// AllClose reports whether a and b are element-wise close within the
// default tolerances.
func AllClose[T Numeric](a, b *Array[T]) bool { return ndarray.AllClose(a, b) }

// AllCloseTol reports whether a and b are element-wise close within
// the given tolerances.
func AllCloseTol[T Numeric](a, b *Array[T], atol, rtol float64) bool {
	return ndarray.AllCloseTol(a, b, atol, rtol)
}
