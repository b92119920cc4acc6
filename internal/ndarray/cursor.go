package ndarray

// Cursor walks a layout's subscript space and yields the flat buffer
// position of each visited element. It supports forward, backward and
// ±k stepping, a caller-chosen axis order, and independent per-axis
// exclusive bounds. Stepping past a bound leaves the cursor out of
// range; the inverse step re-enters range.
//
// A cursor holds no reference to any element buffer and does not extend
// its lifetime.
type Cursor struct {
	dims    []int
	strides []int
	offset  int

	// buf holds subs | start | minExcluded | maxExcluded | order?,
	// each a block of n ints.
	buf      intsBuf
	n        int
	axis     int // fastest-varying axis when no order is set
	major    int // axis whose bounds decide validity
	hasOrder bool
}

// Cursor returns the default row-major cursor over the full layout.
func (l *Layout) Cursor() *Cursor {
	return newCursor(l, nil, nil, nil, l.ndims-1, nil)
}

// CursorAxis returns a cursor in which the given axis varies fastest
// and the remaining axes are walked row-major. Along-axis reduction
// relies on this: consecutive positions cover dims[axis] values of one
// output cell.
func (l *Layout) CursorAxis(axis int) *Cursor {
	if l.ndims > 0 {
		axis = Modulo(axis, l.ndims)
	}
	return newCursor(l, nil, nil, nil, axis, nil)
}

// CursorOrder returns a cursor walking the axes in the given order,
// slowest first: the axis at the last position of the order varies
// fastest, and carries propagate right to left through the order.
// An order shorter than the rank falls back to the row-major default.
func (l *Layout) CursorOrder(order ...int) *Cursor {
	return newCursor(l, nil, nil, nil, l.ndims-1, order)
}

// CursorAt returns a row-major cursor with an explicit start subscript
// and per-axis exclusive bounds. A nil start means the origin; nil
// minExcluded defaults to one below the start on each axis; nil
// maxExcluded defaults to the layout dims.
func (l *Layout) CursorAt(start, minExcluded, maxExcluded []int) *Cursor {
	return newCursor(l, start, minExcluded, maxExcluded, l.ndims-1, nil)
}

func newCursor(l *Layout, start, minExcluded, maxExcluded []int, axis int, order []int) *Cursor {
	n := l.ndims
	c := &Cursor{
		dims:    l.Dims(),
		strides: l.Strides(),
		offset:  l.offset,
		n:       n,
		axis:    axis,
	}
	if n == 0 {
		return c
	}

	c.hasOrder = len(order) >= n
	if c.hasOrder {
		c.buf = makeIntsBuf(5 * n)
	} else {
		c.buf = makeIntsBuf(4 * n)
	}

	subs, startv := c.subs(), c.start()
	if start != nil {
		copy(subs, start)
		copy(startv, start)
	}

	minExcl := c.minExcluded()
	switch {
	case minExcluded != nil:
		copy(minExcl, minExcluded)
	case start != nil:
		for i := range minExcl {
			minExcl[i] = start[i] - 1
		}
	default:
		for i := range minExcl {
			minExcl[i] = -1
		}
	}

	maxExcl := c.maxExcluded()
	if maxExcluded != nil {
		copy(maxExcl, maxExcluded)
	} else {
		copy(maxExcl, c.dims)
	}

	if c.hasOrder {
		ord := c.order()
		for i := range ord {
			ord[i] = Modulo(order[i], n)
		}
	}

	c.major = c.findMajorAxis()
	return c
}

func (c *Cursor) subs() []int        { return c.buf.ints()[:c.n] }
func (c *Cursor) start() []int       { return c.buf.ints()[c.n : 2*c.n] }
func (c *Cursor) minExcluded() []int { return c.buf.ints()[2*c.n : 3*c.n] }
func (c *Cursor) maxExcluded() []int { return c.buf.ints()[3*c.n : 4*c.n] }

func (c *Cursor) order() []int {
	if !c.hasOrder {
		return nil
	}
	return c.buf.ints()[4*c.n : 5*c.n]
}

// findMajorAxis picks the axis that is last to receive carries, whose
// bounds decide when iteration ends. Without an order that is axis 0,
// unless axis 0 itself varies fastest, in which case it is axis 1.
func (c *Cursor) findMajorAxis() int {
	if c.hasOrder {
		return c.order()[0]
	}

	major := 0
	if c.axis == 0 && c.n > 1 {
		major = 1
	}
	minExcl, maxExcl := c.minExcluded(), c.maxExcluded()
	if minExcl[major] == -1 && maxExcl[major] == 0 {
		for i := major + 1; i < c.n; i++ {
			if maxExcl[i] != 0 {
				return i
			}
		}
		return 0
	}
	return major
}

// Subs returns the cursor's current subscript tuple. The slice aliases
// the cursor's state and must not be modified.
func (c *Cursor) Subs() []int {
	return c.subs()
}

// Pos returns the flat position of the current subscripts.
func (c *Cursor) Pos() int {
	pos := c.offset
	subs := c.subs()
	for i, s := range c.strides {
		pos += s * subs[i]
	}
	return pos
}

// Valid reports whether the cursor is in range: the slowest subscript is
// strictly within its exclusive bounds.
func (c *Cursor) Valid() bool {
	if c.n == 0 {
		return false
	}
	v := c.major
	subs, minExcl, maxExcl := c.subs(), c.minExcluded(), c.maxExcluded()
	return subs[v] < maxExcl[v] && subs[v] > minExcl[v]
}

// Reset returns the cursor to its start subscripts.
func (c *Cursor) Reset() {
	copy(c.subs(), c.start())
}

// Next advances the cursor by one step in its traversal order.
func (c *Cursor) Next() {
	if c.n == 0 {
		return
	}
	if ord := c.order(); ord != nil {
		carry := true
		for i := len(ord) - 1; i >= 0 && carry; i-- {
			carry = c.incAxis(ord[i], ord[0])
		}
		return
	}

	carry := c.incAxis(c.axis, c.major)
	for i := c.n - 1; i > c.axis && carry; i-- {
		carry = c.incAxis(i, c.major)
	}
	for i := c.axis - 1; i >= 0 && carry; i-- {
		carry = c.incAxis(i, c.major)
	}
}

// Prev steps the cursor backward by one, with carries going the
// opposite direction.
func (c *Cursor) Prev() {
	if c.n == 0 {
		return
	}
	if ord := c.order(); ord != nil {
		carry := true
		for i := len(ord) - 1; i >= 0 && carry; i-- {
			carry = c.decAxis(ord[i], ord[0])
		}
		return
	}

	carry := c.decAxis(c.axis, c.major)
	for i := c.n - 1; i > c.axis && carry; i-- {
		carry = c.decAxis(i, c.major)
	}
	for i := c.axis - 1; i >= 0 && carry; i-- {
		carry = c.decAxis(i, c.major)
	}
}

// Advance moves the cursor by k unit steps, backward when k is negative.
func (c *Cursor) Advance(k int) {
	for ; k > 0; k-- {
		c.Next()
	}
	for ; k < 0; k++ {
		c.Prev()
	}
}

// incAxis bumps the subscript at axis i, wrapping non-major axes back to
// their lower bound. It reports whether the carry continues.
func (c *Cursor) incAxis(i, major int) bool {
	subs, minExcl, maxExcl := c.subs(), c.minExcluded(), c.maxExcluded()
	if subs[i] < maxExcl[i] {
		subs[i]++
	}
	if subs[i] != maxExcl[i] {
		return false
	}
	if i != major {
		subs[i] = minExcl[i] + 1
	}
	return true
}

func (c *Cursor) decAxis(i, major int) bool {
	subs, minExcl, maxExcl := c.subs(), c.minExcluded(), c.maxExcluded()
	if subs[i] > minExcl[i] {
		subs[i]--
	}
	if subs[i] != minExcl[i] {
		return false
	}
	if i != major {
		if maxExcl[i] != 0 {
			subs[i] = maxExcl[i] - 1
		} else {
			subs[i] = 0
		}
	}
	return true
}

// FlatCursor iterates a contiguous non-view layout by flat position
// directly, bypassing subscript bookkeeping. On such layouts it yields
// the same position sequence as the general cursor.
type FlatCursor struct {
	pos  int
	stop int
	step int
}

// FlatCursor returns a flat cursor over the whole layout. It must only
// be used when the layout is contiguous and not a view.
func (l *Layout) FlatCursor() FlatCursor {
	return FlatCursor{pos: l.offset, stop: l.offset + l.count, step: 1}
}

// FlatCursorAxis returns a flat cursor stepping along the given axis by
// its stride, covering one line of dims[axis] elements.
func (l *Layout) FlatCursorAxis(axis int) FlatCursor {
	axis = Modulo(axis, l.ndims)
	step := l.Strides()[axis]
	return FlatCursor{pos: l.offset, stop: l.offset + step*l.Dims()[axis], step: step}
}

// Pos returns the current flat position.
func (fc *FlatCursor) Pos() int {
	return fc.pos
}

// Valid reports whether the cursor is still in range.
func (fc *FlatCursor) Valid() bool {
	return fc.pos < fc.stop
}

// Next advances to the next flat position.
func (fc *FlatCursor) Next() {
	fc.pos += fc.step
}
