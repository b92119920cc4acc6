package ndarray

import "testing"

// collect drains the cursor into its flat position sequence.
func collect(c *Cursor, limit int) []int {
	var out []int
	for ; c.Valid() && len(out) < limit; c.Next() {
		out = append(out, c.Pos())
	}
	return out
}

func TestCursorRowMajor(t *testing.T) {
	l := NewLayout(Shape{2, 3})
	got := collect(l.Cursor(), 10)
	want := []int{0, 1, 2, 3, 4, 5}
	if !intsEqual(got, want) {
		t.Errorf("positions = %v, want %v", got, want)
	}
}

func TestCursorOverView(t *testing.T) {
	parent := NewLayout(Shape{3, 1, 2})
	l := SliceLayout(&parent, []Interval{{1, 2, 1}, {0, 0, 1}, {0, 1, 1}})
	got := collect(l.Cursor(), 10)
	want := []int{2, 3, 4, 5}
	if !intsEqual(got, want) {
		t.Errorf("positions = %v, want %v", got, want)
	}
}

func TestCursorAxisFastest(t *testing.T) {
	// With a single axis given, that axis varies fastest and the rest
	// are walked row-major.
	l := NewLayout(Shape{3, 1, 2})
	got := collect(l.CursorAxis(0), 10)
	want := []int{0, 2, 4, 1, 3, 5}
	if !intsEqual(got, want) {
		t.Errorf("axis 0 positions = %v, want %v", got, want)
	}

	got = collect(l.CursorAxis(1), 10)
	want = []int{0, 1, 2, 3, 4, 5}
	if !intsEqual(got, want) {
		t.Errorf("axis 1 positions = %v, want %v", got, want)
	}

	got = collect(l.CursorAxis(2), 10)
	want = []int{0, 1, 2, 3, 4, 5}
	if !intsEqual(got, want) {
		t.Errorf("axis 2 positions = %v, want %v", got, want)
	}
}

func TestCursorOrder(t *testing.T) {
	// The last axis of the order is innermost; carries propagate right
	// to left through the order.
	l := NewLayout(Shape{4, 2, 3, 2})
	got := collect(l.CursorOrder(2, 0, 1, 3), 8)
	want := []int{0, 1, 6, 7, 12, 13, 18, 19}
	if !intsEqual(got, want) {
		t.Errorf("ordered positions = %v, want %v", got, want)
	}

	// A full walk visits every element exactly once.
	all := collect(l.CursorOrder(2, 0, 1, 3), 100)
	if len(all) != 48 {
		t.Fatalf("walk visited %d positions, want 48", len(all))
	}
	seen := make(map[int]bool, 48)
	for _, p := range all {
		if seen[p] {
			t.Fatalf("position %d visited twice", p)
		}
		seen[p] = true
	}
}

func TestCursorBackward(t *testing.T) {
	l := NewLayout(Shape{2, 3})
	c := l.Cursor()
	c.Advance(5)
	if !c.Valid() || c.Pos() != 5 {
		t.Fatalf("after Advance(5): pos = %d, valid = %v", c.Pos(), c.Valid())
	}

	var got []int
	for ; c.Valid(); c.Prev() {
		got = append(got, c.Pos())
	}
	want := []int{5, 4, 3, 2, 1, 0}
	if !intsEqual(got, want) {
		t.Errorf("backward positions = %v, want %v", got, want)
	}
}

func TestCursorOutOfRangeReentry(t *testing.T) {
	l := NewLayout(Shape{2, 2})
	c := l.Cursor()
	c.Advance(4)
	if c.Valid() {
		t.Fatal("cursor should be out of range past the end")
	}
	c.Prev()
	if !c.Valid() || c.Pos() != 3 {
		t.Errorf("inverse step should re-enter range at the last element, pos = %d", c.Pos())
	}

	c.Reset()
	c.Prev()
	if c.Valid() {
		t.Fatal("cursor should be out of range before the start")
	}
	c.Next()
	if !c.Valid() || c.Pos() != 0 {
		t.Errorf("inverse step should re-enter range at the first element, pos = %d", c.Pos())
	}
}

func TestCursorReset(t *testing.T) {
	l := NewLayout(Shape{2, 3})
	c := l.Cursor()
	c.Advance(4)
	c.Reset()
	if c.Pos() != 0 {
		t.Errorf("after Reset: pos = %d, want 0", c.Pos())
	}
}

func TestCursorStartAndBounds(t *testing.T) {
	// A start subscript narrows the default lower bounds to one below
	// the start on every axis, walking the trailing sub-grid.
	l := NewLayout(Shape{3, 3})
	c := l.CursorAt([]int{1, 1}, nil, nil)
	got := collect(c, 10)
	want := []int{4, 5, 7, 8}
	if !intsEqual(got, want) {
		t.Errorf("sub-grid positions = %v, want %v", got, want)
	}

	// Explicit exclusive bounds restrict the walk on both sides.
	c = l.CursorAt([]int{0, 0}, []int{-1, -1}, []int{2, 2})
	got = collect(c, 10)
	want = []int{0, 1, 3, 4}
	if !intsEqual(got, want) {
		t.Errorf("bounded positions = %v, want %v", got, want)
	}
}

func TestCursorSubs(t *testing.T) {
	l := NewLayout(Shape{2, 3})
	c := l.Cursor()
	c.Advance(4)
	if !intsEqual(c.Subs(), []int{1, 1}) {
		t.Errorf("subs = %v, want [1 1]", c.Subs())
	}
}

func TestCursorEmptyLayout(t *testing.T) {
	l := Layout{}
	c := l.Cursor()
	if c.Valid() {
		t.Error("cursor over empty layout must start out of range")
	}
	c.Next() // must not panic
}

func TestFlatCursorMatchesGeneral(t *testing.T) {
	l := NewLayout(Shape{2, 3, 2})
	general := collect(l.Cursor(), 100)

	var flat []int
	for fc := l.FlatCursor(); fc.Valid(); fc.Next() {
		flat = append(flat, fc.Pos())
	}
	if !intsEqual(flat, general) {
		t.Errorf("flat = %v, general = %v", flat, general)
	}
}

func TestFlatCursorAxis(t *testing.T) {
	l := NewLayout(Shape{3, 4})
	var got []int
	for fc := l.FlatCursorAxis(0); fc.Valid(); fc.Next() {
		got = append(got, fc.Pos())
	}
	want := []int{0, 4, 8}
	if !intsEqual(got, want) {
		t.Errorf("axis line positions = %v, want %v", got, want)
	}
}
