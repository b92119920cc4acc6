package ndarray

import "math"

// Elementwise math family. The Float functions delegate to the standard
// math package and round-trip values through float64; Abs works on the
// element type directly.

// Abs returns |a| element-wise.
func Abs[T Numeric](a *Array[T]) *Array[T] {
	return Transform(a, func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

func mapFloat[T Float](a *Array[T], f func(float64) float64) *Array[T] {
	return Transform(a, func(x T) T { return T(f(float64(x))) })
}

// Acos returns the arccosine of each element.
func Acos[T Float](a *Array[T]) *Array[T] { return mapFloat(a, math.Acos) }

// Acosh returns the inverse hyperbolic cosine of each element.
func Acosh[T Float](a *Array[T]) *Array[T] { return mapFloat(a, math.Acosh) }

// Asin returns the arcsine of each element.
func Asin[T Float](a *Array[T]) *Array[T] { return mapFloat(a, math.Asin) }

// Asinh returns the inverse hyperbolic sine of each element.
func Asinh[T Float](a *Array[T]) *Array[T] { return mapFloat(a, math.Asinh) }

// Atan returns the arctangent of each element.
func Atan[T Float](a *Array[T]) *Array[T] { return mapFloat(a, math.Atan) }

// Atanh returns the inverse hyperbolic tangent of each element.
func Atanh[T Float](a *Array[T]) *Array[T] { return mapFloat(a, math.Atanh) }

// Cos returns the cosine of each element.
func Cos[T Float](a *Array[T]) *Array[T] { return mapFloat(a, math.Cos) }

// Cosh returns the hyperbolic cosine of each element.
func Cosh[T Float](a *Array[T]) *Array[T] { return mapFloat(a, math.Cosh) }

// Exp returns e**x for each element.
func Exp[T Float](a *Array[T]) *Array[T] { return mapFloat(a, math.Exp) }

// Log returns the natural logarithm of each element.
func Log[T Float](a *Array[T]) *Array[T] { return mapFloat(a, math.Log) }

// Log10 returns the decimal logarithm of each element.
func Log10[T Float](a *Array[T]) *Array[T] { return mapFloat(a, math.Log10) }

// Sin returns the sine of each element.
func Sin[T Float](a *Array[T]) *Array[T] { return mapFloat(a, math.Sin) }

// Sinh returns the hyperbolic sine of each element.
func Sinh[T Float](a *Array[T]) *Array[T] { return mapFloat(a, math.Sinh) }

// Sqrt returns the square root of each element.
func Sqrt[T Float](a *Array[T]) *Array[T] { return mapFloat(a, math.Sqrt) }

// Tan returns the tangent of each element.
func Tan[T Float](a *Array[T]) *Array[T] { return mapFloat(a, math.Tan) }

// Tanh returns the hyperbolic tangent of each element.
func Tanh[T Float](a *Array[T]) *Array[T] { return mapFloat(a, math.Tanh) }

// Pow returns a**b element-wise.
func Pow[T Float](a, b *Array[T]) (*Array[T], error) {
	return Transform2(a, b, func(x, y T) T { return T(math.Pow(float64(x), float64(y))) })
}

// PowScalar returns a**v element-wise.
func PowScalar[T Float](a *Array[T], v T) *Array[T] {
	return mapFloat(a, func(x float64) float64 { return math.Pow(x, float64(v)) })
}
