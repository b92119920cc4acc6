package ndarray

import "github.com/pkg/errors"

// Reshape returns an array of the new shape over the same elements. The
// element count must be unchanged. Reshaping to the same shape returns
// the array itself; reshaping a view allocates and copies, because a
// view's strides cannot in general describe the new shape; reshaping a
// non-view returns a new handle over the same buffer.
func Reshape[T Elem](a *Array[T], shape Shape) (*Array[T], error) {
	if a.IsEmpty() {
		return &Array[T]{}, nil
	}
	if a.NumElements() != shape.NumElements() {
		return nil, errors.Wrapf(ErrShapeMismatch, "cannot reshape %v into %v", a.Shape(), shape)
	}
	if a.Shape().Equal(shape) {
		return a, nil
	}

	if a.layout.view {
		res := Zeros[T](shape)
		d, rd := a.buf.data(), res.buf.data()
		i := 0
		for c := a.layout.Cursor(); c.Valid() && i < len(rd); c.Next() {
			rd[i] = d[c.Pos()]
			i++
		}
		return res, nil
	}

	l := NewLayout(shape)
	a.buf.retain()
	return &Array[T]{layout: l, buf: a.buf}, nil
}

// Resize returns a freshly allocated array of the new shape, filled by
// walking the source and destination layouts in lock-step until either
// is exhausted. The result never aliases the source.
func Resize[T Elem](a *Array[T], shape Shape) *Array[T] {
	if len(shape) == 0 {
		return &Array[T]{}
	}
	if a.IsEmpty() {
		return Zeros[T](shape)
	}
	if a.Shape().Equal(shape) {
		return Clone(a)
	}

	res := Zeros[T](shape)
	if res.IsEmpty() {
		return res
	}
	d, rd := a.buf.data(), res.buf.data()
	i := 0
	for c := a.layout.Cursor(); c.Valid() && i < len(rd); c.Next() {
		rd[i] = d[c.Pos()]
		i++
	}
	return res
}

// Transpose returns a freshly allocated array with the axes permuted by
// order. Order entries wrap into [0, N) and must then form a
// permutation of [0, N); anything else yields the empty array. The source is walked in the permuted axis
// order while the destination fills row-major, so the result is
// contiguous.
func Transpose[T Elem](a *Array[T], order ...int) *Array[T] {
	if a.IsEmpty() {
		return &Array[T]{}
	}
	l := PermuteLayout(&a.layout, order)
	if l.IsEmpty() {
		return &Array[T]{}
	}

	res := &Array[T]{layout: l, buf: newBuffer[T](l.Count())}
	d, rd := a.buf.data(), res.buf.data()
	i := 0
	for c := a.layout.CursorOrder(order...); c.Valid() && i < len(rd); c.Next() {
		rd[i] = d[c.Pos()]
		i++
	}
	return res
}

// AppendAxis concatenates b after a along the given axis. The shapes
// must agree on every other axis. Appending to an empty operand clones
// the other.
func AppendAxis[T Elem](a, b *Array[T], axis int) (*Array[T], error) {
	if a.IsEmpty() {
		return Clone(b), nil
	}
	if b.IsEmpty() {
		return Clone(a), nil
	}
	if a.layout.ndims != b.layout.ndims {
		return nil, errors.Wrapf(ErrShapeMismatch, "append %v to %v: different ranks", b.Shape(), a.Shape())
	}

	axis = Modulo(axis, a.layout.ndims)
	adims, bdims := a.layout.Dims(), b.layout.Dims()
	for i := range adims {
		if i != axis && adims[i] != bdims[i] {
			return nil, errors.Wrapf(ErrShapeMismatch, "append %v to %v along axis %d", b.Shape(), a.Shape(), axis)
		}
	}

	l := GrowAxisLayout(&a.layout, bdims[axis], axis)
	if l.IsEmpty() {
		return &Array[T]{}, nil
	}
	res := &Array[T]{layout: l, buf: newBuffer[T](l.Count())}

	ac, bc := a.layout.Cursor(), b.layout.Cursor()
	ad, bd, rd := a.buf.data(), b.buf.data(), res.buf.data()
	asize := adims[axis]
	for rc := res.layout.Cursor(); rc.Valid(); rc.Next() {
		if s := rc.Subs()[axis]; s < asize {
			rd[rc.Pos()] = ad[ac.Pos()]
			ac.Next()
		} else {
			rd[rc.Pos()] = bd[bc.Pos()]
			bc.Next()
		}
	}
	return res, nil
}

// Append concatenates the elements of b after those of a, flattening
// both to one dimension. The result shape is {a.count + b.count}.
func Append[T Elem](a, b *Array[T]) *Array[T] {
	if a.IsEmpty() {
		return Clone(b)
	}
	if b.IsEmpty() {
		return Clone(a)
	}

	res := Zeros[T](Shape{a.NumElements() + b.NumElements()})
	rd := res.buf.data()
	i := 0
	for c, d := a.layout.Cursor(), a.buf.data(); c.Valid(); c.Next() {
		rd[i] = d[c.Pos()]
		i++
	}
	for c, d := b.layout.Cursor(), b.buf.data(); c.Valid(); c.Next() {
		rd[i] = d[c.Pos()]
		i++
	}
	return res
}

// InsertAxis inserts b into a along the given axis, so that b's
// elements occupy [position, position+b.dims[axis]) on that axis. The
// position wraps into the axis range. The shapes must agree on every
// other axis.
func InsertAxis[T Elem](a, b *Array[T], position, axis int) (*Array[T], error) {
	if a.IsEmpty() {
		return Clone(b), nil
	}
	if b.IsEmpty() {
		return Clone(a), nil
	}
	if a.layout.ndims != b.layout.ndims {
		return nil, errors.Wrapf(ErrShapeMismatch, "insert %v into %v: different ranks", b.Shape(), a.Shape())
	}

	axis = Modulo(axis, a.layout.ndims)
	adims, bdims := a.layout.Dims(), b.layout.Dims()
	for i := range adims {
		if i != axis && adims[i] != bdims[i] {
			return nil, errors.Wrapf(ErrShapeMismatch, "insert %v into %v along axis %d", b.Shape(), a.Shape(), axis)
		}
	}
	position = Modulo(position, adims[axis])

	l := GrowAxisLayout(&a.layout, bdims[axis], axis)
	if l.IsEmpty() {
		return &Array[T]{}, nil
	}
	res := &Array[T]{layout: l, buf: newBuffer[T](l.Count())}

	ac, bc := a.layout.Cursor(), b.layout.Cursor()
	ad, bd, rd := a.buf.data(), b.buf.data(), res.buf.data()
	bsize := bdims[axis]
	for rc := res.layout.Cursor(); rc.Valid(); rc.Next() {
		if s := rc.Subs()[axis]; s >= position && s < position+bsize {
			rd[rc.Pos()] = bd[bc.Pos()]
			bc.Next()
		} else {
			rd[rc.Pos()] = ad[ac.Pos()]
			ac.Next()
		}
	}
	return res, nil
}

// Insert inserts the elements of b at the given flat position of a,
// flattening both to one dimension. A position beyond a's element count
// is out of range.
func Insert[T Elem](a, b *Array[T], position int) (*Array[T], error) {
	if a.IsEmpty() {
		return Clone(b), nil
	}
	if b.IsEmpty() {
		return Clone(a), nil
	}
	if position < 0 || position > a.NumElements() {
		return nil, errors.Wrapf(ErrOutOfRange, "insert at %d into %d elements", position, a.NumElements())
	}

	res := Zeros[T](Shape{a.NumElements() + b.NumElements()})
	rd := res.buf.data()
	i := 0
	ac, ad := a.layout.Cursor(), a.buf.data()
	for ; i < position; i++ {
		rd[i] = ad[ac.Pos()]
		ac.Next()
	}
	for c, d := b.layout.Cursor(), b.buf.data(); c.Valid(); c.Next() {
		rd[i] = d[c.Pos()]
		i++
	}
	for ; ac.Valid(); ac.Next() {
		rd[i] = ad[ac.Pos()]
		i++
	}
	return res, nil
}

// RemoveAxis removes count positions starting at position along the
// given axis. The position wraps into the axis range and the count is
// clamped so the removed band stays inside the axis. Removing the whole
// axis yields the empty array.
func RemoveAxis[T Elem](a *Array[T], position, count, axis int) *Array[T] {
	if a.IsEmpty() {
		return &Array[T]{}
	}

	axis = Modulo(axis, a.layout.ndims)
	dims := a.layout.Dims()
	position = Modulo(position, dims[axis])
	if count < 0 {
		count = 0
	}
	if position+count > dims[axis] {
		count = dims[axis] - position
	}

	l := GrowAxisLayout(&a.layout, -count, axis)
	if l.IsEmpty() {
		return &Array[T]{}
	}
	res := &Array[T]{layout: l, buf: newBuffer[T](l.Count())}

	rc := res.layout.Cursor()
	ad, rd := a.buf.data(), res.buf.data()
	for ac := a.layout.Cursor(); ac.Valid(); ac.Next() {
		if s := ac.Subs()[axis]; s >= position && s < position+count {
			continue
		}
		rd[rc.Pos()] = ad[ac.Pos()]
		rc.Next()
	}
	return res
}

// Remove removes count elements starting at the given flat position,
// flattening the array to one dimension. The position wraps into the
// element range and the count is clamped to the remaining length.
func Remove[T Elem](a *Array[T], position, count int) *Array[T] {
	if a.IsEmpty() {
		return &Array[T]{}
	}

	n := a.NumElements()
	position = Modulo(position, n)
	if count < 0 {
		count = 0
	}
	if position+count > n {
		count = n - position
	}
	if count >= n {
		return &Array[T]{}
	}

	res := Zeros[T](Shape{n - count})
	rd := res.buf.data()
	d := a.buf.data()
	i, ri := 0, 0
	for c := a.layout.Cursor(); c.Valid(); c.Next() {
		if i < position || i >= position+count {
			rd[ri] = d[c.Pos()]
			ri++
		}
		i++
	}
	return res
}

// Copy copies elements from src into dst, walking both default cursors
// in lock-step until either is exhausted. No reshape takes place; dst
// keeps its identity, so copying into a view writes through.
func Copy[T Elem](src, dst *Array[T]) {
	if src.IsEmpty() || dst.IsEmpty() {
		return
	}
	sd, dd := src.buf.data(), dst.buf.data()
	sc, dc := src.layout.Cursor(), dst.layout.Cursor()
	for sc.Valid() && dc.Valid() {
		dd[dc.Pos()] = sd[sc.Pos()]
		sc.Next()
		dc.Next()
	}
}

// Set copies src into dst like Copy, but a dst that is not a view is
// first rebound to src's shape over a fresh buffer. Callers that need
// copy semantics regardless of view-ness use Copy.
func Set[T Elem](src, dst *Array[T]) *Array[T] {
	if !dst.layout.view {
		fresh := Zeros[T](src.Shape())
		if dst.buf != nil {
			dst.buf.release()
		}
		dst.layout = fresh.layout
		dst.buf = fresh.buf
	}
	Copy(src, dst)
	return dst
}
