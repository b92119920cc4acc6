package ndarray_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oren12321/oc-array/ndarray"
)

// TestSliceWriteThrough exercises the defining property of views:
// mutation through a slice is visible in the parent.
func TestSliceWriteThrough(t *testing.T) {
	a, err := ndarray.Reshape(ndarray.Arange[int32](1, 7), ndarray.Shape{3, 1, 2})
	require.NoError(t, err)

	v := a.Slice(ndarray.NewInterval(1, 2), ndarray.Index(0), ndarray.Stepped(1, 1, 2))
	require.True(t, v.IsView())

	v.SetAt(100, 0, 0, 0)

	flat, err := ndarray.Reshape(a, ndarray.Shape{6})
	require.NoError(t, err)
	want, err := ndarray.FromSlice([]int32{1, 2, 3, 100, 5, 6}, ndarray.Shape{6})
	require.NoError(t, err)
	assert.True(t, ndarray.AllEqual(flat, want))
}

// TestReduceAlongEachAxis pins the along-axis reduction shapes and
// values for a rank-3 array.
func TestReduceAlongEachAxis(t *testing.T) {
	a, err := ndarray.FromSlice([]int32{1, 2, 3, 4, 5, 6}, ndarray.Shape{3, 1, 2})
	require.NoError(t, err)
	sum := func(acc, v int32) int32 { return acc + v }

	tests := []struct {
		axis      int
		wantShape ndarray.Shape
		wantData  []int32
	}{
		{0, ndarray.Shape{1, 2}, []int32{9, 12}},
		{1, ndarray.Shape{3, 2}, []int32{1, 2, 3, 4, 5, 6}},
		{2, ndarray.Shape{3, 1}, []int32{3, 7, 11}},
	}
	for _, tt := range tests {
		got := ndarray.ReduceAxis(a, sum, tt.axis)
		require.True(t, got.Shape().Equal(tt.wantShape), "axis %d shape = %v", tt.axis, got.Shape())
		want, err := ndarray.FromSlice(tt.wantData, tt.wantShape)
		require.NoError(t, err)
		assert.True(t, ndarray.AllEqual(got, want), "axis %d", tt.axis)
	}
}

// TestTransposeOrder pins the element order of a rank-4 transpose.
func TestTransposeOrder(t *testing.T) {
	a, err := ndarray.Reshape(ndarray.Arange[int32](1, 49), ndarray.Shape{4, 2, 3, 2})
	require.NoError(t, err)

	tr := ndarray.Transpose(a, 2, 0, 1, 3)
	require.True(t, tr.Shape().Equal(ndarray.Shape{3, 4, 2, 2}))

	want := []int32{1, 2, 7, 8, 13, 14, 19, 20}
	for i, w := range want {
		assert.Equal(t, w, tr.Data()[i], "element %d", i)
	}
}

// TestAppendFlattens checks axis-less append of mismatched-rank
// operands.
func TestAppendFlattens(t *testing.T) {
	a, err := ndarray.FromSlice([]int32{1, 2, 3, 4, 5, 6}, ndarray.Shape{3, 1, 2})
	require.NoError(t, err)
	b := ndarray.Arange[int32](7, 12)

	res := ndarray.Append(a, b)
	require.True(t, res.Shape().Equal(ndarray.Shape{11}))
	assert.True(t, ndarray.AllEqual(res, ndarray.Arange[int32](1, 12)))
}

// TestInsertAlongAxis checks the banded insert of one array into
// another.
func TestInsertAlongAxis(t *testing.T) {
	a, err := ndarray.Reshape(ndarray.Arange[int32](1, 13), ndarray.Shape{2, 2, 3})
	require.NoError(t, err)
	b, err := ndarray.Reshape(ndarray.Arange[int32](13, 25), ndarray.Shape{2, 2, 3})
	require.NoError(t, err)

	res, err := ndarray.InsertAxis(a, b, 1, 1)
	require.NoError(t, err)
	require.True(t, res.Shape().Equal(ndarray.Shape{2, 4, 3}))
	for j := 0; j < 3; j++ {
		assert.Equal(t, b.At(0, 0, j), res.At(0, 1, j), "plane 0")
		assert.Equal(t, b.At(1, 0, j), res.At(1, 1, j), "plane 1")
	}
}

// TestFindGather chains a slice, a predicate search and a gather from
// an unrelated array.
func TestFindGather(t *testing.T) {
	a, err := ndarray.FromSlice([]int32{1, 2, 3, 0, 5, 6}, ndarray.Shape{3, 1, 2})
	require.NoError(t, err)

	s := a.Slice(ndarray.NewInterval(1, 2), ndarray.Index(0), ndarray.NewInterval(0, 1))
	inds := ndarray.Find(s, func(v int32) bool { return v != 0 })

	wantInds, err := ndarray.FromSlice([]int64{2, 4, 5}, ndarray.Shape{3})
	require.NoError(t, err)
	require.True(t, ndarray.AllEqual(inds, wantInds))

	other, err := ndarray.FromSlice([]int32{10, 11, 12, 13, 14, 15}, ndarray.Shape{3, 1, 2})
	require.NoError(t, err)
	got := other.Take(inds)
	want, err := ndarray.FromSlice([]int32{12, 14, 15}, ndarray.Shape{3})
	require.NoError(t, err)
	assert.True(t, ndarray.AllEqual(got, want))
}

// TestCloneIndependence checks the clone invariants.
func TestCloneIndependence(t *testing.T) {
	a, err := ndarray.FromSlice([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2})
	require.NoError(t, err)

	c := ndarray.Clone(a)
	require.True(t, ndarray.AllEqual(a, c))
	require.True(t, c.Shape().Equal(a.Shape()))

	c.SetAt(99, 0, 0)
	assert.Equal(t, 1.0, a.At(0, 0), "clone shares no buffer")
}

// TestErrorKinds checks that failure kinds are distinguishable.
func TestErrorKinds(t *testing.T) {
	a := ndarray.Zeros[int32](ndarray.Shape{2, 2})
	b := ndarray.Zeros[int32](ndarray.Shape{3})

	_, err := ndarray.Add(a, b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ndarray.ErrShapeMismatch))
	assert.False(t, errors.Is(err, ndarray.ErrOutOfRange))

	_, err = ndarray.Insert(a, b, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ndarray.ErrOutOfRange))
}

// TestScalarBroadcastOps checks scalar forms of elementwise operators.
func TestScalarBroadcastOps(t *testing.T) {
	a := ndarray.Arange[float64](0, 4)

	assert.True(t, ndarray.AllEqualValue(ndarray.MulScalar(ndarray.Zeros[float64](ndarray.Shape{4}), 5), 0.0))

	incremented := ndarray.AddScalar(a, 1)
	want := ndarray.Arange[float64](1, 5)
	assert.True(t, ndarray.AllEqual(incremented, want))

	mask := ndarray.GtScalar(a, 1.5)
	wantMask, err := ndarray.FromSlice([]bool{false, false, true, true}, ndarray.Shape{4})
	require.NoError(t, err)
	assert.True(t, ndarray.AllEqual(mask, wantMask))
}

// TestViewAssignmentSemantics checks the view-preservation rule from
// outside the package.
func TestViewAssignmentSemantics(t *testing.T) {
	a, err := ndarray.Reshape(ndarray.Arange[int32](1, 7), ndarray.Shape{3, 2})
	require.NoError(t, err)

	v := a.Slice(ndarray.Index(1)) // shape [1,2]: {3, 4}
	src, err := ndarray.FromSlice([]int32{30, 40}, ndarray.Shape{1, 2})
	require.NoError(t, err)

	v.Assign(src)
	assert.Equal(t, int32(30), a.At(1, 0))
	assert.Equal(t, int32(40), a.At(1, 1))

	scalarTarget := a.Slice(ndarray.Index(0))
	scalarTarget.Fill(7)
	assert.Equal(t, int32(7), a.At(0, 0))
	assert.Equal(t, int32(7), a.At(0, 1))
}

// TestCursorSurface drives the public cursor API over a layout.
func TestCursorSurface(t *testing.T) {
	l := ndarray.NewLayout(ndarray.Shape{2, 3})

	var forward []int
	for c := l.Cursor(); c.Valid(); c.Next() {
		forward = append(forward, c.Pos())
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, forward)

	c := l.CursorAxis(0)
	var byAxis []int
	for ; c.Valid(); c.Next() {
		byAxis = append(byAxis, c.Pos())
	}
	assert.Equal(t, []int{0, 3, 1, 4, 2, 5}, byAxis)
}
