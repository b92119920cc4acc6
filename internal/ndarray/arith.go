package ndarray

// Element-wise operators. The arithmetic, bitwise, comparison and
// logical functions are thin compositions of Transform or Transform2
// with the corresponding scalar operation; the compound assignments
// build on them, and the Incr/Decr family walks the array with a cursor
// and mutates it in place. Binary array forms require equal shapes;
// scalar forms broadcast the scalar and cannot fail.

// Add returns a + b element-wise.
func Add[T Numeric](a, b *Array[T]) (*Array[T], error) {
	return Transform2(a, b, func(x, y T) T { return x + y })
}

// AddScalar returns a + v element-wise.
func AddScalar[T Numeric](a *Array[T], v T) *Array[T] {
	return Transform(a, func(x T) T { return x + v })
}

// Sub returns a - b element-wise.
func Sub[T Numeric](a, b *Array[T]) (*Array[T], error) {
	return Transform2(a, b, func(x, y T) T { return x - y })
}

// SubScalar returns a - v element-wise.
func SubScalar[T Numeric](a *Array[T], v T) *Array[T] {
	return Transform(a, func(x T) T { return x - v })
}

// ScalarSub returns v - a element-wise.
func ScalarSub[T Numeric](v T, a *Array[T]) *Array[T] {
	return Transform(a, func(x T) T { return v - x })
}

// Mul returns a * b element-wise.
func Mul[T Numeric](a, b *Array[T]) (*Array[T], error) {
	return Transform2(a, b, func(x, y T) T { return x * y })
}

// MulScalar returns a * v element-wise.
func MulScalar[T Numeric](a *Array[T], v T) *Array[T] {
	return Transform(a, func(x T) T { return x * v })
}

// Div returns a / b element-wise.
func Div[T Numeric](a, b *Array[T]) (*Array[T], error) {
	return Transform2(a, b, func(x, y T) T { return x / y })
}

// DivScalar returns a / v element-wise.
func DivScalar[T Numeric](a *Array[T], v T) *Array[T] {
	return Transform(a, func(x T) T { return x / v })
}

// ScalarDiv returns v / a element-wise.
func ScalarDiv[T Numeric](v T, a *Array[T]) *Array[T] {
	return Transform(a, func(x T) T { return v / x })
}

// Rem returns a % b element-wise.
func Rem[T Integer](a, b *Array[T]) (*Array[T], error) {
	return Transform2(a, b, func(x, y T) T { return x % y })
}

// RemScalar returns a % v element-wise.
func RemScalar[T Integer](a *Array[T], v T) *Array[T] {
	return Transform(a, func(x T) T { return x % v })
}

// Neg returns -a element-wise.
func Neg[T Numeric](a *Array[T]) *Array[T] {
	return Transform(a, func(x T) T { return -x })
}

// BitAnd returns a & b element-wise.
func BitAnd[T Integer](a, b *Array[T]) (*Array[T], error) {
	return Transform2(a, b, func(x, y T) T { return x & y })
}

// BitOr returns a | b element-wise.
func BitOr[T Integer](a, b *Array[T]) (*Array[T], error) {
	return Transform2(a, b, func(x, y T) T { return x | y })
}

// BitXor returns a ^ b element-wise.
func BitXor[T Integer](a, b *Array[T]) (*Array[T], error) {
	return Transform2(a, b, func(x, y T) T { return x ^ y })
}

// BitNot returns ^a element-wise.
func BitNot[T Integer](a *Array[T]) *Array[T] {
	return Transform(a, func(x T) T { return ^x })
}

// Shl returns a << b element-wise.
func Shl[T Integer](a, b *Array[T]) (*Array[T], error) {
	return Transform2(a, b, func(x, y T) T { return x << y })
}

// ShlScalar returns a << v element-wise.
func ShlScalar[T Integer](a *Array[T], v T) *Array[T] {
	return Transform(a, func(x T) T { return x << v })
}

// Shr returns a >> b element-wise.
func Shr[T Integer](a, b *Array[T]) (*Array[T], error) {
	return Transform2(a, b, func(x, y T) T { return x >> y })
}

// ShrScalar returns a >> v element-wise.
func ShrScalar[T Integer](a *Array[T], v T) *Array[T] {
	return Transform(a, func(x T) T { return x >> v })
}

// Eq returns a == b element-wise as a boolean array.
func Eq[T Elem](a, b *Array[T]) (*Array[bool], error) {
	return Transform2(a, b, func(x, y T) bool { return x == y })
}

// EqScalar returns a == v element-wise.
func EqScalar[T Elem](a *Array[T], v T) *Array[bool] {
	return Transform(a, func(x T) bool { return x == v })
}

// Ne returns a != b element-wise as a boolean array.
func Ne[T Elem](a, b *Array[T]) (*Array[bool], error) {
	return Transform2(a, b, func(x, y T) bool { return x != y })
}

// NeScalar returns a != v element-wise.
func NeScalar[T Elem](a *Array[T], v T) *Array[bool] {
	return Transform(a, func(x T) bool { return x != v })
}

// Gt returns a > b element-wise as a boolean array.
func Gt[T Numeric](a, b *Array[T]) (*Array[bool], error) {
	return Transform2(a, b, func(x, y T) bool { return x > y })
}

// GtScalar returns a > v element-wise.
func GtScalar[T Numeric](a *Array[T], v T) *Array[bool] {
	return Transform(a, func(x T) bool { return x > v })
}

// Ge returns a >= b element-wise as a boolean array.
func Ge[T Numeric](a, b *Array[T]) (*Array[bool], error) {
	return Transform2(a, b, func(x, y T) bool { return x >= y })
}

// GeScalar returns a >= v element-wise.
func GeScalar[T Numeric](a *Array[T], v T) *Array[bool] {
	return Transform(a, func(x T) bool { return x >= v })
}

// Lt returns a < b element-wise as a boolean array.
func Lt[T Numeric](a, b *Array[T]) (*Array[bool], error) {
	return Transform2(a, b, func(x, y T) bool { return x < y })
}

// LtScalar returns a < v element-wise.
func LtScalar[T Numeric](a *Array[T], v T) *Array[bool] {
	return Transform(a, func(x T) bool { return x < v })
}

// Le returns a <= b element-wise as a boolean array.
func Le[T Numeric](a, b *Array[T]) (*Array[bool], error) {
	return Transform2(a, b, func(x, y T) bool { return x <= y })
}

// LeScalar returns a <= v element-wise.
func LeScalar[T Numeric](a *Array[T], v T) *Array[bool] {
	return Transform(a, func(x T) bool { return x <= v })
}

// And returns the element-wise logical AND of the operands'
// truthiness.
func And[T1, T2 Elem](a *Array[T1], b *Array[T2]) (*Array[bool], error) {
	return Transform2(a, b, func(x T1, y T2) bool { return truthy(x) && truthy(y) })
}

// Or returns the element-wise logical OR of the operands' truthiness.
func Or[T1, T2 Elem](a *Array[T1], b *Array[T2]) (*Array[bool], error) {
	return Transform2(a, b, func(x T1, y T2) bool { return truthy(x) || truthy(y) })
}

// Not returns the element-wise logical negation of a's truthiness.
func Not[T Elem](a *Array[T]) *Array[bool] {
	return Transform(a, func(x T) bool { return !truthy(x) })
}

// AddAssign replaces a's contents with a + b, honoring the
// view-preservation rule: a view receives the result element-wise.
func AddAssign[T Numeric](a, b *Array[T]) error {
	r, err := Add(a, b)
	if err != nil {
		return err
	}
	a.Assign(r)
	return nil
}

// SubAssign replaces a's contents with a - b.
func SubAssign[T Numeric](a, b *Array[T]) error {
	r, err := Sub(a, b)
	if err != nil {
		return err
	}
	a.Assign(r)
	return nil
}

// MulAssign replaces a's contents with a * b.
func MulAssign[T Numeric](a, b *Array[T]) error {
	r, err := Mul(a, b)
	if err != nil {
		return err
	}
	a.Assign(r)
	return nil
}

// DivAssign replaces a's contents with a / b.
func DivAssign[T Numeric](a, b *Array[T]) error {
	r, err := Div(a, b)
	if err != nil {
		return err
	}
	a.Assign(r)
	return nil
}

// Incr increments every element in place, writing through views, and
// returns a.
func Incr[T Numeric](a *Array[T]) *Array[T] {
	if a.IsEmpty() {
		return a
	}
	d := a.buf.data()
	for c := a.layout.Cursor(); c.Valid(); c.Next() {
		d[c.Pos()]++
	}
	return a
}

// PostIncr increments every element in place and returns a clone of the
// prior state.
func PostIncr[T Numeric](a *Array[T]) *Array[T] {
	old := Clone(a)
	Incr(a)
	return old
}

// Decr decrements every element in place and returns a.
func Decr[T Numeric](a *Array[T]) *Array[T] {
	if a.IsEmpty() {
		return a
	}
	d := a.buf.data()
	for c := a.layout.Cursor(); c.Valid(); c.Next() {
		d[c.Pos()]--
	}
	return a
}

// PostDecr decrements every element in place and returns a clone of the
// prior state.
func PostDecr[T Numeric](a *Array[T]) *Array[T] {
	old := Clone(a)
	Decr(a)
	return old
}
