package ndarray

import (
	"github.com/oren12321/oc-array/internal/ndarray"
)

// Arithmetic operators. Array forms require equal shapes; scalar forms
// broadcast the scalar.

// Add returns a + b element-wise.
func Add[T Numeric](a, b *Array[T]) (*Array[T], error) { return ndarray.Add(a, b) }

// AddScalar returns a + v element-wise.
func AddScalar[T Numeric](a *Array[T], v T) *Array[T] { return ndarray.AddScalar(a, v) }

// Sub returns a - b element-wise.
func Sub[T Numeric](a, b *Array[T]) (*Array[T], error) { return ndarray.Sub(a, b) }

// SubScalar returns a - v element-wise.
func SubScalar[T Numeric](a *Array[T], v T) *Array[T] { return ndarray.SubScalar(a, v) }

// ScalarSub returns v - a element-wise.
func ScalarSub[T Numeric](v T, a *Array[T]) *Array[T] { return ndarray.ScalarSub(v, a) }

// Mul returns a * b element-wise.
func Mul[T Numeric](a, b *Array[T]) (*Array[T], error) { return ndarray.Mul(a, b) }

// MulScalar returns a * v element-wise.
func MulScalar[T Numeric](a *Array[T], v T) *Array[T] { return ndarray.MulScalar(a, v) }

// Div returns a / b element-wise.
func Div[T Numeric](a, b *Array[T]) (*Array[T], error) { return ndarray.Div(a, b) }

// DivScalar returns a / v element-wise.
func DivScalar[T Numeric](a *Array[T], v T) *Array[T] { return ndarray.DivScalar(a, v) }

// ScalarDiv returns v / a element-wise.
func ScalarDiv[T Numeric](v T, a *Array[T]) *Array[T] { return ndarray.ScalarDiv(v, a) }

// Rem returns a % b element-wise.
func Rem[T Integer](a, b *Array[T]) (*Array[T], error) { return ndarray.Rem(a, b) }

// RemScalar returns a % v element-wise.
func RemScalar[T Integer](a *Array[T], v T) *Array[T] { return ndarray.RemScalar(a, v) }

// Neg returns -a element-wise.
func Neg[T Numeric](a *Array[T]) *Array[T] { return ndarray.Neg(a) }

// Bitwise operators.

// BitAnd returns a & b element-wise.
func BitAnd[T Integer](a, b *Array[T]) (*Array[T], error) { return ndarray.BitAnd(a, b) }

// BitOr returns a | b element-wise.
func BitOr[T Integer](a, b *Array[T]) (*Array[T], error) { return ndarray.BitOr(a, b) }

// BitXor returns a ^ b element-wise.
func BitXor[T Integer](a, b *Array[T]) (*Array[T], error) { return ndarray.BitXor(a, b) }

// BitNot returns ^a element-wise.
func BitNot[T Integer](a *Array[T]) *Array[T] { return ndarray.BitNot(a) }

// Shl returns a << b element-wise.
func Shl[T Integer](a, b *Array[T]) (*Array[T], error) { return ndarray.Shl(a, b) }

// ShlScalar returns a << v element-wise.
func ShlScalar[T Integer](a *Array[T], v T) *Array[T] { return ndarray.ShlScalar(a, v) }

// Shr returns a >> b element-wise.
func Shr[T Integer](a, b *Array[T]) (*Array[T], error) { return ndarray.Shr(a, b) }

// ShrScalar returns a >> v element-wise.
func ShrScalar[T Integer](a *Array[T], v T) *Array[T] { return ndarray.ShrScalar(a, v) }

// Comparison operators, returning boolean arrays.

// Eq returns a == b element-wise.
func Eq[T Elem](a, b *Array[T]) (*Array[bool], error) { return ndarray.Eq(a, b) }

// EqScalar returns a == v element-wise.
func EqScalar[T Elem](a *Array[T], v T) *Array[bool] { return ndarray.EqScalar(a, v) }

// Ne returns a != b element-wise.
func Ne[T Elem](a, b *Array[T]) (*Array[bool], error) { return ndarray.Ne(a, b) }

// NeScalar returns a != v element-wise.
func NeScalar[T Elem](a *Array[T], v T) *Array[bool] { return ndarray.NeScalar(a, v) }

// Gt returns a > b element-wise.
func Gt[T Numeric](a, b *Array[T]) (*Array[bool], error) { return ndarray.Gt(a, b) }

// GtScalar returns a > v element-wise.
func GtScalar[T Numeric](a *Array[T], v T) *Array[bool] { return ndarray.GtScalar(a, v) }

// Ge returns a >= b element-wise.
func Ge[T Numeric](a, b *Array[T]) (*Array[bool], error) { return ndarray.Ge(a, b) }

// GeScalar returns a >= v element-wise.
func GeScalar[T Numeric](a *Array[T], v T) *Array[bool] { return ndarray.GeScalar(a, v) }

// Lt returns a < b element-wise.
func Lt[T Numeric](a, b *Array[T]) (*Array[bool], error) { return ndarray.Lt(a, b) }

// LtScalar returns a < v element-wise.
func LtScalar[T Numeric](a *Array[T], v T) *Array[bool] { return ndarray.LtScalar(a, v) }

// Le returns a <= b element-wise.
func Le[T Numeric](a, b *Array[T]) (*Array[bool], error) { return ndarray.Le(a, b) }

// LeScalar returns a <= v element-wise.
func LeScalar[T Numeric](a *Array[T], v T) *Array[bool] { return ndarray.LeScalar(a, v) }

// Logical operators over element truthiness.

// And returns the element-wise logical AND.
func And[T1, T2 Elem](a *Array[T1], b *Array[T2]) (*Array[bool], error) { return ndarray.And(a, b) }

// Or returns the element-wise logical OR.
func Or[T1, T2 Elem](a *Array[T1], b *Array[T2]) (*Array[bool], error) { return ndarray.Or(a, b) }

// Not returns the element-wise logical negation.
func Not[T Elem](a *Array[T]) *Array[bool] { return ndarray.Not(a) }

// Compound assignment and in-place stepping.

// AddAssign replaces a's contents with a + b, writing through views.
func AddAssign[T Numeric](a, b *Array[T]) error { return ndarray.AddAssign(a, b) }

// SubAssign replaces a's contents with a - b.
func SubAssign[T Numeric](a, b *Array[T]) error { return ndarray.SubAssign(a, b) }

// MulAssign replaces a's contents with a * b.
func MulAssign[T Numeric](a, b *Array[T]) error { return ndarray.MulAssign(a, b) }

// DivAssign replaces a's contents with a / b.
func DivAssign[T Numeric](a, b *Array[T]) error { return ndarray.DivAssign(a, b) }

// Incr increments every element in place and returns a.
func Incr[T Numeric](a *Array[T]) *Array[T] { return ndarray.Incr(a) }

// PostIncr increments in place and returns a clone of the prior state.
func PostIncr[T Numeric](a *Array[T]) *Array[T] { return ndarray.PostIncr(a) }

// Decr decrements every element in place and returns a.
func Decr[T Numeric](a *Array[T]) *Array[T] { return ndarray.Decr(a) }

// PostDecr decrements in place and returns a clone of the prior state.
func PostDecr[T Numeric](a *Array[T]) *Array[T] { return ndarray.PostDecr(a) }

// Elementwise math family, delegating to the standard math package.

// Abs returns |a| element-wise.
func Abs[T Numeric](a *Array[T]) *Array[T] { return ndarray.Abs(a) }

// Acos returns the arccosine of each element.
func Acos[T Float](a *Array[T]) *Array[T] { return ndarray.Acos(a) }

// Acosh returns the inverse hyperbolic cosine of each element.
func Acosh[T Float](a *Array[T]) *Array[T] { return ndarray.Acosh(a) }

// Asin returns the arcsine of each element.
func Asin[T Float](a *Array[T]) *Array[T] { return ndarray.Asin(a) }

// Asinh returns the inverse hyperbolic sine of each element.
func Asinh[T Float](a *Array[T]) *Array[T] { return ndarray.Asinh(a) }

// Atan returns the arctangent of each element.
func Atan[T Float](a *Array[T]) *Array[T] { return ndarray.Atan(a) }

// Atanh returns the inverse hyperbolic tangent of each element.
func Atanh[T Float](a *Array[T]) *Array[T] { return ndarray.Atanh(a) }

// Cos returns the cosine of each element.
func Cos[T Float](a *Array[T]) *Array[T] { return ndarray.Cos(a) }

// Cosh returns the hyperbolic cosine of each element.
func Cosh[T Float](a *Array[T]) *Array[T] { return ndarray.Cosh(a) }

// Exp returns e**x for each element.
func Exp[T Float](a *Array[T]) *Array[T] { return ndarray.Exp(a) }

// Log returns the natural logarithm of each element.
func Log[T Float](a *Array[T]) *Array[T] { return ndarray.Log(a) }

// Log10 returns the decimal logarithm of each element.
func Log10[T Float](a *Array[T]) *Array[T] { return ndarray.Log10(a) }

// Pow returns a**b element-wise.
func Pow[T Float](a, b *Array[T]) (*Array[T], error) { return ndarray.Pow(a, b) }

// PowScalar returns a**v element-wise.
func PowScalar[T Float](a *Array[T], v T) *Array[T] { return ndarray.PowScalar(a, v) }

// Sin returns the sine of each element.
func Sin[T Float](a *Array[T]) *Array[T] { return ndarray.Sin(a) }

// Sinh returns the hyperbolic sine of each element.
func Sinh[T Float](a *Array[T]) *Array[T] { return ndarray.Sinh(a) }

// Sqrt returns the square root of each element.
func Sqrt[T Float](a *Array[T]) *Array[T] { return ndarray.Sqrt(a) }

// Tan returns the tangent of each element.
func Tan[T Float](a *Array[T]) *Array[T] { return ndarray.Tan(a) }

// Tanh returns the hyperbolic tangent of each element.
func Tanh[T Float](a *Array[T]) *Array[T] { return ndarray.Tanh(a) }
