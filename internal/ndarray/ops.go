package ndarray

import "github.com/pkg/errors"

// axisOrLast wraps a negative axis into range and falls back to the
// last axis when the given axis is at or beyond the rank.
func axisOrLast(axis, ndims int) int {
	if axis >= ndims {
		return ndims - 1
	}
	return Modulo(axis, ndims)
}

// Transform applies f to every element of a, producing an array of the
// same shape with f's result type. An empty input yields an empty
// result.
func Transform[T, U Elem](a *Array[T], f func(T) U) *Array[U] {
	if a.IsEmpty() {
		return &Array[U]{}
	}
	res := Zeros[U](a.Shape())
	d, rd := a.buf.data(), res.buf.data()
	i := 0
	if a.layout.contiguous() {
		for c := a.layout.FlatCursor(); c.Valid(); c.Next() {
			rd[i] = f(d[c.Pos()])
			i++
		}
		return res
	}
	for c := a.layout.Cursor(); c.Valid(); c.Next() {
		rd[i] = f(d[c.Pos()])
		i++
	}
	return res
}

// Transform2 applies f element-wise over a and b, which must have equal
// shapes; no broadcasting takes place.
func Transform2[T1, T2, U Elem](a *Array[T1], b *Array[T2], f func(T1, T2) U) (*Array[U], error) {
	if !a.Shape().Equal(b.Shape()) {
		return nil, errors.Wrapf(ErrShapeMismatch, "transform over %v and %v", a.Shape(), b.Shape())
	}
	if a.IsEmpty() {
		return &Array[U]{}, nil
	}

	res := Zeros[U](a.Shape())
	ad, bd, rd := a.buf.data(), b.buf.data(), res.buf.data()
	ac, bc := a.layout.Cursor(), b.layout.Cursor()
	i := 0
	for ac.Valid() && bc.Valid() {
		rd[i] = f(ad[ac.Pos()], bd[bc.Pos()])
		i++
		ac.Next()
		bc.Next()
	}
	return res, nil
}

// Reduce folds the elements of a left to right in default row-major
// order, starting from the first element. An empty array yields the
// zero value.
func Reduce[T Elem](a *Array[T], f func(acc, v T) T) T {
	var res T
	if a.IsEmpty() {
		return res
	}
	d := a.buf.data()
	c := a.layout.Cursor()
	res = d[c.Pos()]
	c.Next()
	for ; c.Valid(); c.Next() {
		res = f(res, d[c.Pos()])
	}
	return res
}

// ReduceWith folds the elements of a into an explicit initial
// accumulator, which may have a different type.
func ReduceWith[T Elem, U any](a *Array[T], init U, f func(acc U, v T) U) U {
	res := init
	if a.IsEmpty() {
		return res
	}
	d := a.buf.data()
	for c := a.layout.Cursor(); c.Valid(); c.Next() {
		res = f(res, d[c.Pos()])
	}
	return res
}

// ReduceAxis folds along the given axis; the output shape is a's shape
// with the axis removed, or {1} for a 1-D input. An axis at or beyond
// the rank reduces along the last axis.
func ReduceAxis[T Elem](a *Array[T], f func(acc, v T) T, axis int) *Array[T] {
	if a.IsEmpty() {
		return &Array[T]{}
	}

	axis = axisOrLast(axis, a.layout.ndims)
	l := DropAxisLayout(&a.layout, axis)
	if l.IsEmpty() {
		return &Array[T]{}
	}
	res := &Array[T]{layout: l, buf: newBuffer[T](l.Count())}

	// With the reduction axis varying fastest, each output cell's
	// inputs are consecutive.
	src := a.layout.CursorAxis(axis)
	cycle := a.layout.Dims()[axis]
	d, rd := a.buf.data(), res.buf.data()
	for ri := range rd {
		acc := d[src.Pos()]
		src.Next()
		for i := 1; i < cycle; i++ {
			acc = f(acc, d[src.Pos()])
			src.Next()
		}
		rd[ri] = acc
	}
	return res
}

// ReduceAxisWith folds along the given axis starting each cell from an
// explicit initial accumulator.
func ReduceAxisWith[T, U Elem](a *Array[T], init U, f func(acc U, v T) U, axis int) *Array[U] {
	if a.IsEmpty() {
		return &Array[U]{}
	}

	axis = axisOrLast(axis, a.layout.ndims)
	l := DropAxisLayout(&a.layout, axis)
	if l.IsEmpty() {
		return &Array[U]{}
	}
	res := &Array[U]{layout: l, buf: newBuffer[U](l.Count())}

	src := a.layout.CursorAxis(axis)
	cycle := a.layout.Dims()[axis]
	d, rd := a.buf.data(), res.buf.data()
	for ri := range rd {
		acc := init
		for i := 0; i < cycle; i++ {
			acc = f(acc, d[src.Pos()])
			src.Next()
		}
		rd[ri] = acc
	}
	return res
}

// Filter returns a 1-D array of the elements matching pred, in default
// walk order. No matches, or an empty input, yield the empty array.
func Filter[T Elem](a *Array[T], pred func(T) bool) *Array[T] {
	if a.IsEmpty() {
		return &Array[T]{}
	}

	res := Zeros[T](Shape{a.NumElements()})
	d, rd := a.buf.data(), res.buf.data()
	n := 0
	for c := a.layout.Cursor(); c.Valid(); c.Next() {
		if v := d[c.Pos()]; pred(v) {
			rd[n] = v
			n++
		}
	}
	return shrinkTo(res, n)
}

// FilterMask returns a 1-D array of the elements of a whose mask entry
// is true. The mask must have a's shape.
func FilterMask[T Elem](a *Array[T], mask *Array[bool]) (*Array[T], error) {
	if a.IsEmpty() {
		return &Array[T]{}, nil
	}
	if !a.Shape().Equal(mask.Shape()) {
		return nil, errors.Wrapf(ErrShapeMismatch, "filter %v with mask %v", a.Shape(), mask.Shape())
	}

	res := Zeros[T](Shape{a.NumElements()})
	d, md, rd := a.buf.data(), mask.buf.data(), res.buf.data()
	ac, mc := a.layout.Cursor(), mask.layout.Cursor()
	n := 0
	for ac.Valid() && mc.Valid() {
		if md[mc.Pos()] {
			rd[n] = d[ac.Pos()]
			n++
		}
		ac.Next()
		mc.Next()
	}
	return shrinkTo(res, n), nil
}

// Find returns the flat positions of the elements matching pred, in
// default walk order. The positions index the array's buffer, so they
// can gather from any array sharing its root shape via Take.
func Find[T Elem](a *Array[T], pred func(T) bool) *Array[int64] {
	if a.IsEmpty() {
		return &Array[int64]{}
	}

	res := Zeros[int64](Shape{a.NumElements()})
	d, rd := a.buf.data(), res.buf.data()
	n := 0
	for c := a.layout.Cursor(); c.Valid(); c.Next() {
		if pred(d[c.Pos()]) {
			rd[n] = int64(c.Pos())
			n++
		}
	}
	return shrinkTo(res, n)
}

// FindMask returns the flat positions of the elements of a whose mask
// entry is true. The mask must have a's shape.
func FindMask[T Elem](a *Array[T], mask *Array[bool]) (*Array[int64], error) {
	if a.IsEmpty() {
		return &Array[int64]{}, nil
	}
	if !a.Shape().Equal(mask.Shape()) {
		return nil, errors.Wrapf(ErrShapeMismatch, "find in %v with mask %v", a.Shape(), mask.Shape())
	}

	res := Zeros[int64](Shape{a.NumElements()})
	md, rd := mask.buf.data(), res.buf.data()
	ac, mc := a.layout.Cursor(), mask.layout.Cursor()
	n := 0
	for ac.Valid() && mc.Valid() {
		if md[mc.Pos()] {
			rd[n] = int64(ac.Pos())
			n++
		}
		ac.Next()
		mc.Next()
	}
	return shrinkTo(res, n), nil
}

// shrinkTo trims a capacity-sized 1-D result down to its used length.
func shrinkTo[T Elem](res *Array[T], n int) *Array[T] {
	if n == 0 {
		return &Array[T]{}
	}
	if n < res.NumElements() {
		return Resize(res, Shape{n})
	}
	return res
}

// All reports whether every element is truthy. An empty array yields
// false, matching a whole-array reduction's zero value.
func All[T Elem](a *Array[T]) bool {
	if a.IsEmpty() {
		return false
	}
	d := a.buf.data()
	for c := a.layout.Cursor(); c.Valid(); c.Next() {
		if !truthy(d[c.Pos()]) {
			return false
		}
	}
	return true
}

// Any reports whether at least one element is truthy. An empty array
// yields false.
func Any[T Elem](a *Array[T]) bool {
	if a.IsEmpty() {
		return false
	}
	d := a.buf.data()
	for c := a.layout.Cursor(); c.Valid(); c.Next() {
		if truthy(d[c.Pos()]) {
			return true
		}
	}
	return false
}

// AllAxis reduces truthiness with logical AND along the given axis.
func AllAxis[T Elem](a *Array[T], axis int) *Array[bool] {
	return ReduceAxisWith(a, true, func(acc bool, v T) bool { return acc && truthy(v) }, axis)
}

// AnyAxis reduces truthiness with logical OR along the given axis.
func AnyAxis[T Elem](a *Array[T], axis int) *Array[bool] {
	return ReduceAxisWith(a, false, func(acc bool, v T) bool { return acc || truthy(v) }, axis)
}

// AllMatch reports whether pred holds for every element pair of a
// lock-step walk. Two empty arrays match; unequal shapes do not. The
// walk short-circuits on the first failure.
func AllMatch[T1, T2 Elem](a *Array[T1], b *Array[T2], pred func(T1, T2) bool) bool {
	if a.IsEmpty() && b.IsEmpty() {
		return true
	}
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	if !a.Shape().Equal(b.Shape()) {
		return false
	}

	ad, bd := a.buf.data(), b.buf.data()
	ac, bc := a.layout.Cursor(), b.layout.Cursor()
	for ac.Valid() && bc.Valid() {
		if !pred(ad[ac.Pos()], bd[bc.Pos()]) {
			return false
		}
		ac.Next()
		bc.Next()
	}
	return true
}

// AnyMatch reports whether pred holds for at least one element pair.
// Two empty arrays match; unequal shapes do not.
func AnyMatch[T1, T2 Elem](a *Array[T1], b *Array[T2], pred func(T1, T2) bool) bool {
	if a.IsEmpty() && b.IsEmpty() {
		return true
	}
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	if !a.Shape().Equal(b.Shape()) {
		return false
	}

	ad, bd := a.buf.data(), b.buf.data()
	ac, bc := a.layout.Cursor(), b.layout.Cursor()
	for ac.Valid() && bc.Valid() {
		if pred(ad[ac.Pos()], bd[bc.Pos()]) {
			return true
		}
		ac.Next()
		bc.Next()
	}
	return false
}

// AllEqual reports whether a and b are shape-equal and element-equal.
func AllEqual[T Elem](a, b *Array[T]) bool {
	return AllMatch(a, b, func(x, y T) bool { return x == y })
}

// AllEqualValue reports whether every element of a equals v. An empty
// array yields true.
func AllEqualValue[T Elem](a *Array[T], v T) bool {
	if a.IsEmpty() {
		return true
	}
	d := a.buf.data()
	for c := a.layout.Cursor(); c.Valid(); c.Next() {
		if d[c.Pos()] != v {
			return false
		}
	}
	return true
}

// Close compares a and b element-wise within the default tolerances,
// returning a boolean array.
func Close[T Numeric](a, b *Array[T]) (*Array[bool], error) {
	return CloseTol(a, b, DefaultAtol, DefaultRtol)
}

// CloseTol compares a and b element-wise within the given tolerances.
func CloseTol[T Numeric](a, b *Array[T], atol, rtol float64) (*Array[bool], error) {
	return Transform2(a, b, func(x, y T) bool { return CloseEnough(x, y, atol, rtol) })
}

// CloseValue compares every element of a against v within the default
// tolerances.
func CloseValue[T Numeric](a *Array[T], v T) *Array[bool] {
	return CloseValueTol(a, v, DefaultAtol, DefaultRtol)
}

// CloseValueTol compares every element of a against v within the given
// tolerances.
func CloseValueTol[T Numeric](a *Array[T], v T, atol, rtol float64) *Array[bool] {
	return Transform(a, func(x T) bool { return CloseEnough(x, v, atol, rtol) })
}

// AllClose reports whether a and b are shape-equal and element-wise
// close within the default tolerances.
func AllClose[T Numeric](a, b *Array[T]) bool {
	return AllCloseTol(a, b, DefaultAtol, DefaultRtol)
}

// AllCloseTol reports whether a and b are shape-equal and element-wise
// close within the given tolerances.
func AllCloseTol[T Numeric](a, b *Array[T], atol, rtol float64) bool {
	return AllMatch(a, b, func(x, y T) bool { return CloseEnough(x, y, atol, rtol) })
}
