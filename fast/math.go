// Copyright 2026 fast-floats Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fast

import "math"

// Forwarded math methods. Each delegates to the stdlib math function on the
// underlying value and re-wraps the result, so the fast marking survives
// call chains without manual re-wrapping. Domain errors are not intercepted:
// Sqrt of a negative, Log of zero, and friends produce the same NaN or ±Inf
// the stdlib produces.
//
// float32 instantiations forward through float64. The conversion is exact on
// the way in, and the float64 result rounds to the correctly rounded float32
// for every function here whose stdlib implementation is correctly rounded.

// Floor returns the greatest integer value less than or equal to x.
func (x Float[F]) Floor() Float[F] {
	return Float[F]{F(math.Floor(float64(x.v)))}
}

// Ceil returns the least integer value greater than or equal to x.
func (x Float[F]) Ceil() Float[F] {
	return Float[F]{F(math.Ceil(float64(x.v)))}
}

// Round returns the nearest integer, rounding half away from zero.
func (x Float[F]) Round() Float[F] {
	return Float[F]{F(math.Round(float64(x.v)))}
}

// RoundToEven returns the nearest integer, rounding ties to even.
func (x Float[F]) RoundToEven() Float[F] {
	return Float[F]{F(math.RoundToEven(float64(x.v)))}
}

// Trunc returns the integer part of x, rounding toward zero.
func (x Float[F]) Trunc() Float[F] {
	return Float[F]{F(math.Trunc(float64(x.v)))}
}

// Fract returns the fractional part of x, x - Trunc(x).
func (x Float[F]) Fract() Float[F] {
	return Float[F]{x.v - F(math.Trunc(float64(x.v)))}
}

// Abs returns the absolute value of x.
func (x Float[F]) Abs() Float[F] {
	return Float[F]{F(math.Abs(float64(x.v)))}
}

// Signum returns 1 for positive x (including +0 and +Inf), -1 for negative x
// (including -0 and -Inf), and NaN for NaN.
func (x Float[F]) Signum() Float[F] {
	if x.v != x.v {
		return x
	}
	return Float[F]{F(math.Copysign(1, float64(x.v)))}
}

// Copysign returns a value with the magnitude of x and the sign of y.
func (x Float[F]) Copysign(y Float[F]) Float[F] {
	return Float[F]{F(math.Copysign(float64(x.v), float64(y.v)))}
}

// MulAdd returns x*y + z. On hardware with a fused multiply-add instruction
// it computes the fused result with a single rounding; elsewhere it computes
// the unfused product and sum. The fast marking is what makes the two
// interchangeable here: callers relying on exactly one rounding should use
// math.FMA on raw values instead.
func (x Float[F]) MulAdd(y, z Float[F]) Float[F] {
	if hasFMA {
		return Float[F]{F(math.FMA(float64(x.v), float64(y.v), float64(z.v)))}
	}
	return Float[F]{x.v*y.v + z.v}
}

// Sqrt returns the square root of x.
func (x Float[F]) Sqrt() Float[F] {
	return Float[F]{F(math.Sqrt(float64(x.v)))}
}

// Cbrt returns the cube root of x.
func (x Float[F]) Cbrt() Float[F] {
	return Float[F]{F(math.Cbrt(float64(x.v)))}
}

// Pow returns x raised to the power y.
func (x Float[F]) Pow(y Float[F]) Float[F] {
	return Float[F]{F(math.Pow(float64(x.v), float64(y.v)))}
}

// PowRaw returns x raised to a raw power y.
func (x Float[F]) PowRaw(y F) Float[F] {
	return Float[F]{F(math.Pow(float64(x.v), float64(y)))}
}

// PowInt returns x raised to an integer power n.
func (x Float[F]) PowInt(n int) Float[F] {
	return Float[F]{F(math.Pow(float64(x.v), float64(n)))}
}

// Exp returns e**x.
func (x Float[F]) Exp() Float[F] {
	return Float[F]{F(math.Exp(float64(x.v)))}
}

// Exp2 returns 2**x.
func (x Float[F]) Exp2() Float[F] {
	return Float[F]{F(math.Exp2(float64(x.v)))}
}

// Expm1 returns e**x - 1, accurate for x near zero.
func (x Float[F]) Expm1() Float[F] {
	return Float[F]{F(math.Expm1(float64(x.v)))}
}

// Log returns the natural logarithm of x.
func (x Float[F]) Log() Float[F] {
	return Float[F]{F(math.Log(float64(x.v)))}
}

// LogBase returns the logarithm of x in the given base, computed as
// Log(x) / Log(base).
func (x Float[F]) LogBase(base Float[F]) Float[F] {
	return Float[F]{F(math.Log(float64(x.v)) / math.Log(float64(base.v)))}
}

// Log2 returns the base-2 logarithm of x.
func (x Float[F]) Log2() Float[F] {
	return Float[F]{F(math.Log2(float64(x.v)))}
}

// Log10 returns the base-10 logarithm of x.
func (x Float[F]) Log10() Float[F] {
	return Float[F]{F(math.Log10(float64(x.v)))}
}

// Log1p returns the natural logarithm of 1 + x, accurate for x near zero.
func (x Float[F]) Log1p() Float[F] {
	return Float[F]{F(math.Log1p(float64(x.v)))}
}

// Sin returns the sine of x (in radians).
func (x Float[F]) Sin() Float[F] {
	return Float[F]{F(math.Sin(float64(x.v)))}
}

// Cos returns the cosine of x (in radians).
func (x Float[F]) Cos() Float[F] {
	return Float[F]{F(math.Cos(float64(x.v)))}
}

// Tan returns the tangent of x (in radians).
func (x Float[F]) Tan() Float[F] {
	return Float[F]{F(math.Tan(float64(x.v)))}
}

// SinCos returns the sine and cosine of x in a single call.
func (x Float[F]) SinCos() (Float[F], Float[F]) {
	s, c := math.Sincos(float64(x.v))
	return Float[F]{F(s)}, Float[F]{F(c)}
}

// Asin returns the arcsine of x, in radians.
func (x Float[F]) Asin() Float[F] {
	return Float[F]{F(math.Asin(float64(x.v)))}
}

// Acos returns the arccosine of x, in radians.
func (x Float[F]) Acos() Float[F] {
	return Float[F]{F(math.Acos(float64(x.v)))}
}

// Atan returns the arctangent of x, in radians.
func (x Float[F]) Atan() Float[F] {
	return Float[F]{F(math.Atan(float64(x.v)))}
}

// Atan2 returns the arctangent of x/y, using the signs of both to determine
// the quadrant.
func (x Float[F]) Atan2(y Float[F]) Float[F] {
	return Float[F]{F(math.Atan2(float64(x.v), float64(y.v)))}
}

// Sinh returns the hyperbolic sine of x.
func (x Float[F]) Sinh() Float[F] {
	return Float[F]{F(math.Sinh(float64(x.v)))}
}

// Cosh returns the hyperbolic cosine of x.
func (x Float[F]) Cosh() Float[F] {
	return Float[F]{F(math.Cosh(float64(x.v)))}
}

// Tanh returns the hyperbolic tangent of x.
func (x Float[F]) Tanh() Float[F] {
	return Float[F]{F(math.Tanh(float64(x.v)))}
}

// Asinh returns the inverse hyperbolic sine of x.
func (x Float[F]) Asinh() Float[F] {
	return Float[F]{F(math.Asinh(float64(x.v)))}
}

// Acosh returns the inverse hyperbolic cosine of x. NaN for x < 1.
func (x Float[F]) Acosh() Float[F] {
	return Float[F]{F(math.Acosh(float64(x.v)))}
}

// Atanh returns the inverse hyperbolic tangent of x. NaN for |x| > 1.
func (x Float[F]) Atanh() Float[F] {
	return Float[F]{F(math.Atanh(float64(x.v)))}
}

// Hypot returns Sqrt(x*x + y*y), avoiding intermediate overflow.
func (x Float[F]) Hypot(y Float[F]) Float[F] {
	return Float[F]{F(math.Hypot(float64(x.v), float64(y.v)))}
}
