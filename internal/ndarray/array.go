package ndarray

import (
	"fmt"

	"github.com/pkg/errors"
)

// Array is a dense, strided N-dimensional array handle: a layout paired
// with a shared reference-counted element buffer. Slicing an array
// yields a view sharing the same buffer; mutation through a view is
// visible to every alias.
//
// The zero value is the empty array.
type Array[T Elem] struct {
	layout Layout
	buf    *buffer[T]
}

// Zeros creates an array of the given shape filled with the element
// type's zero value. An invalid shape yields the empty array.
func Zeros[T Elem](shape Shape) *Array[T] {
	l := NewLayout(shape)
	if l.IsEmpty() {
		return &Array[T]{}
	}
	return &Array[T]{layout: l, buf: newBuffer[T](l.Count())}
}

// Full creates an array of the given shape with every element set to
// value.
//
// Example:
//
//	a := ndarray.Full[float64](ndarray.Shape{3, 3}, 3.14)
func Full[T Elem](shape Shape, value T) *Array[T] {
	a := Zeros[T](shape)
	if a.IsEmpty() {
		return a
	}
	d := a.buf.data()
	for i := range d {
		d[i] = value
	}
	return a
}

// FromSlice creates an array of the given shape from source data laid
// out row-major. The data is copied.
func FromSlice[T Elem](data []T, shape Shape) (*Array[T], error) {
	l := NewLayout(shape)
	if l.IsEmpty() {
		return &Array[T]{}, nil
	}
	if l.Count() != len(data) {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v requires %d elements, got %d", shape, l.Count(), len(data))
	}
	a := &Array[T]{layout: l, buf: newBuffer[T](l.Count())}
	copy(a.buf.data(), data)
	return a, nil
}

// FromSliceOf creates an Array[T] from foreign-typed source data,
// converting each element.
func FromSliceOf[T, U Numeric](data []U, shape Shape) (*Array[T], error) {
	l := NewLayout(shape)
	if l.IsEmpty() {
		return &Array[T]{}, nil
	}
	if l.Count() != len(data) {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v requires %d elements, got %d", shape, l.Count(), len(data))
	}
	a := &Array[T]{layout: l, buf: newBuffer[T](l.Count())}
	d := a.buf.data()
	for i, v := range data {
		d[i] = T(v)
	}
	return a, nil
}

// Arange creates a 1-D array with values from start to end (exclusive),
// stepping by one. Panics if end is not greater than start.
func Arange[T Numeric](start, end T) *Array[T] {
	n := int(end - start)
	if n <= 0 {
		panic("ndarray: Arange requires end > start")
	}
	a := Zeros[T](Shape{n})
	d := a.buf.data()
	for i := range d {
		d[i] = start + T(i)
	}
	return a
}

// Shape returns the array's dimensions. The slice aliases the layout
// and must not be modified.
func (a *Array[T]) Shape() Shape {
	return Shape(a.layout.Dims())
}

// Strides returns the array's memory strides.
func (a *Array[T]) Strides() []int {
	return a.layout.Strides()
}

// NumElements returns the total number of elements.
func (a *Array[T]) NumElements() int {
	return a.layout.Count()
}

// Offset returns the flat position of the array's first element.
func (a *Array[T]) Offset() int {
	return a.layout.offset
}

// IsView reports whether the array shares a parent's storage through a
// sliced layout.
func (a *Array[T]) IsView() bool {
	return a.layout.view
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.buf == nil || a.layout.IsEmpty()
}

// Layout returns the array's layout descriptor.
func (a *Array[T]) Layout() *Layout {
	return &a.layout
}

// Data returns the full underlying buffer, including elements outside a
// view's range. Modifications are visible to every alias.
func (a *Array[T]) Data() []T {
	if a.buf == nil {
		return nil
	}
	return a.buf.data()
}

// Shared reports whether the array's buffer is aliased by another
// handle.
func (a *Array[T]) Shared() bool {
	return a.buf != nil && a.buf.shared()
}

// Release drops the array's reference to its buffer. The storage is
// freed when the last holder releases.
func (a *Array[T]) Release() {
	if a.buf != nil {
		a.buf.release()
		a.buf = nil
	}
	a.layout = Layout{}
}

// At returns the element at the given subscripts. Subscripts wrap into
// range via Euclidean modulo; fewer subscripts than axes address the
// trailing axes. Panics on an empty array.
func (a *Array[T]) At(subs ...int) T {
	return a.buf.data()[a.layout.FlatIndex(subs...)]
}

// SetAt stores value at the given subscripts, with the same subscript
// rules as At.
func (a *Array[T]) SetAt(value T, subs ...int) {
	a.buf.data()[a.layout.FlatIndex(subs...)] = value
}

// Slice returns a view over the given intervals, sharing this array's
// buffer. No intervals returns the array itself; a degenerate interval
// returns the empty array.
//
// Example:
//
//	v := a.Slice(ndarray.NewInterval(1, 2), ndarray.Index(0))
//	v.SetAt(100, 0, 0) // writes through to a
func (a *Array[T]) Slice(intervals ...Interval) *Array[T] {
	if len(intervals) == 0 || a.IsEmpty() {
		return a
	}
	l := SliceLayout(&a.layout, intervals)
	if l.IsEmpty() {
		return &Array[T]{}
	}
	a.buf.retain()
	return &Array[T]{layout: l, buf: a.buf}
}

// Take gathers the elements at the given flat positions. The result has
// the index array's shape and owns fresh storage.
func (a *Array[T]) Take(indices *Array[int64]) *Array[T] {
	if a.IsEmpty() || indices.IsEmpty() {
		return &Array[T]{}
	}
	res := Zeros[T](indices.Shape())
	d, id, rd := a.buf.data(), indices.buf.data(), res.buf.data()
	i := 0
	for c := indices.layout.Cursor(); c.Valid(); c.Next() {
		rd[i] = d[id[c.Pos()]]
		i++
	}
	return res
}

// Assign implements handle assignment with the view-preservation rule:
// when the receiver is a view whose shape equals src's, the elements
// are copied into the receiver's buffer, writing through to every
// alias. Otherwise the receiver is rebound to share src's buffer.
func (a *Array[T]) Assign(src *Array[T]) *Array[T] {
	if a == src {
		return a
	}
	if a.layout.view && a.Shape().Equal(src.Shape()) {
		Copy(src, a)
		return a
	}

	if src.buf != nil {
		src.buf.retain()
	}
	if a.buf != nil {
		a.buf.release()
	}
	a.layout = src.layout
	a.buf = src.buf
	return a
}

// Fill broadcasts value to every element of the array, including
// through a view.
func (a *Array[T]) Fill(value T) *Array[T] {
	if a.IsEmpty() {
		return a
	}
	d := a.buf.data()
	if a.layout.contiguous() {
		for c := a.layout.FlatCursor(); c.Valid(); c.Next() {
			d[c.Pos()] = value
		}
		return a
	}
	for c := a.layout.Cursor(); c.Valid(); c.Next() {
		d[c.Pos()] = value
	}
	return a
}

// Clone returns a deep copy: shape-equal, element-equal, and sharing no
// buffer with the source. The result is never a view.
func Clone[T Elem](a *Array[T]) *Array[T] {
	if a.IsEmpty() {
		return &Array[T]{}
	}
	res := Zeros[T](a.Shape())
	d, rd := a.buf.data(), res.buf.data()
	i := 0
	for c := a.layout.Cursor(); c.Valid(); c.Next() {
		rd[i] = d[c.Pos()]
		i++
	}
	return res
}

// Empty reports whether the array holds no elements.
func Empty[T Elem](a *Array[T]) bool {
	return a.IsEmpty()
}

// String returns a human-readable description of the array.
func (a *Array[T]) String() string {
	var zero T
	return fmt.Sprintf("Array[%T]%v", zero, a.Shape())
}
