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

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Each binary operation exists in three operand combinations:
//
//	fast ∘ fast: methods Add, Sub, Mul, Div, Mod
//	fast ∘ raw:  methods AddRaw, SubRaw, MulRaw, DivRaw, ModRaw
//	raw ∘ fast:  package functions Add, Sub, Mul, Div, Mod
//
// Every combination returns a Float: the fast marking is idempotent and
// propagates through chains regardless of which side was wrapped.

// Add returns x + y.
func (x Float[F]) Add(y Float[F]) Float[F] {
	return Float[F]{x.v + y.v}
}

// Sub returns x - y.
func (x Float[F]) Sub(y Float[F]) Float[F] {
	return Float[F]{x.v - y.v}
}

// Mul returns x * y.
func (x Float[F]) Mul(y Float[F]) Float[F] {
	return Float[F]{x.v * y.v}
}

// Div returns x / y. Division by zero yields ±Inf or NaN per IEEE 754,
// passed through unchecked.
func (x Float[F]) Div(y Float[F]) Float[F] {
	return Float[F]{x.v / y.v}
}

// Mod returns the floating-point remainder of x / y, with math.Mod semantics.
func (x Float[F]) Mod(y Float[F]) Float[F] {
	return Float[F]{F(math.Mod(float64(x.v), float64(y.v)))}
}

// AddRaw returns x + y for a raw right operand.
func (x Float[F]) AddRaw(y F) Float[F] {
	return Float[F]{x.v + y}
}

// SubRaw returns x - y for a raw right operand.
func (x Float[F]) SubRaw(y F) Float[F] {
	return Float[F]{x.v - y}
}

// MulRaw returns x * y for a raw right operand.
func (x Float[F]) MulRaw(y F) Float[F] {
	return Float[F]{x.v * y}
}

// DivRaw returns x / y for a raw right operand.
func (x Float[F]) DivRaw(y F) Float[F] {
	return Float[F]{x.v / y}
}

// ModRaw returns the floating-point remainder of x / y for a raw right operand.
func (x Float[F]) ModRaw(y F) Float[F] {
	return Float[F]{F(math.Mod(float64(x.v), float64(y)))}
}

// Add returns x + y for a raw left operand, equivalent to Wrap(x).Add(y).
func Add[F constraints.Float](x F, y Float[F]) Float[F] {
	return Float[F]{x + y.v}
}

// Sub returns x - y for a raw left operand, equivalent to Wrap(x).Sub(y).
func Sub[F constraints.Float](x F, y Float[F]) Float[F] {
	return Float[F]{x - y.v}
}

// Mul returns x * y for a raw left operand, equivalent to Wrap(x).Mul(y).
func Mul[F constraints.Float](x F, y Float[F]) Float[F] {
	return Float[F]{x * y.v}
}

// Div returns x / y for a raw left operand, equivalent to Wrap(x).Div(y).
func Div[F constraints.Float](x F, y Float[F]) Float[F] {
	return Float[F]{x / y.v}
}

// Mod returns the remainder of x / y for a raw left operand.
func Mod[F constraints.Float](x F, y Float[F]) Float[F] {
	return Float[F]{F(math.Mod(float64(x), float64(y.v)))}
}

// Compound assignment. Each operator computes its own operation and stores
// the result back into the receiver; none of them share a code path.

// AddAssign sets x to x + y.
func (x *Float[F]) AddAssign(y Float[F]) {
	x.v += y.v
}

// SubAssign sets x to x - y.
func (x *Float[F]) SubAssign(y Float[F]) {
	x.v -= y.v
}

// MulAssign sets x to x * y.
func (x *Float[F]) MulAssign(y Float[F]) {
	x.v *= y.v
}

// DivAssign sets x to x / y.
func (x *Float[F]) DivAssign(y Float[F]) {
	x.v /= y.v
}

// ModAssign sets x to the floating-point remainder of x / y.
func (x *Float[F]) ModAssign(y Float[F]) {
	x.v = F(math.Mod(float64(x.v), float64(y.v)))
}

// AddAssignRaw sets x to x + y for a raw operand.
func (x *Float[F]) AddAssignRaw(y F) {
	x.v += y
}

// SubAssignRaw sets x to x - y for a raw operand.
func (x *Float[F]) SubAssignRaw(y F) {
	x.v -= y
}

// MulAssignRaw sets x to x * y for a raw operand.
func (x *Float[F]) MulAssignRaw(y F) {
	x.v *= y
}

// DivAssignRaw sets x to x / y for a raw operand.
func (x *Float[F]) DivAssignRaw(y F) {
	x.v /= y
}

// ModAssignRaw sets x to the floating-point remainder of x / y for a raw operand.
func (x *Float[F]) ModAssignRaw(y F) {
	x.v = F(math.Mod(float64(x.v), float64(y)))
}

// Neg returns x with the sign inverted. The sign bit flips for ±0 and NaN
// as well; NaN payload bits are untouched.
func (x Float[F]) Neg() Float[F] {
	return Float[F]{-x.v}
}

// Comparisons use ordinary IEEE semantics: every comparison involving a NaN
// operand is false except NotEqual, which is true.

// Equal returns x == y.
func (x Float[F]) Equal(y Float[F]) bool { return x.v == y.v }

// NotEqual returns x != y.
func (x Float[F]) NotEqual(y Float[F]) bool { return x.v != y.v }

// LessThan returns x < y.
func (x Float[F]) LessThan(y Float[F]) bool { return x.v < y.v }

// LessEqual returns x <= y.
func (x Float[F]) LessEqual(y Float[F]) bool { return x.v <= y.v }

// GreaterThan returns x > y.
func (x Float[F]) GreaterThan(y Float[F]) bool { return x.v > y.v }

// GreaterEqual returns x >= y.
func (x Float[F]) GreaterEqual(y Float[F]) bool { return x.v >= y.v }

// EqualRaw returns x == y for a raw operand.
func (x Float[F]) EqualRaw(y F) bool { return x.v == y }

// NotEqualRaw returns x != y for a raw operand.
func (x Float[F]) NotEqualRaw(y F) bool { return x.v != y }

// LessThanRaw returns x < y for a raw operand.
func (x Float[F]) LessThanRaw(y F) bool { return x.v < y }

// LessEqualRaw returns x <= y for a raw operand.
func (x Float[F]) LessEqualRaw(y F) bool { return x.v <= y }

// GreaterThanRaw returns x > y for a raw operand.
func (x Float[F]) GreaterThanRaw(y F) bool { return x.v > y }

// GreaterEqualRaw returns x >= y for a raw operand.
func (x Float[F]) GreaterEqualRaw(y F) bool { return x.v >= y }

// Min returns the smaller of x and y with IEEE 754 minNum semantics: a NaN
// operand loses to the non-NaN operand. If both operands are NaN, the second
// is returned. When x and y are zeros of opposite sign, which zero is
// returned is unspecified.
//
// Note this differs from math.Min, which propagates NaN from either operand.
func (x Float[F]) Min(y Float[F]) Float[F] {
	switch {
	case x.v != x.v:
		return y
	case y.v != y.v:
		return x
	case x.v < y.v:
		return x
	}
	return y
}

// Max returns the larger of x and y with IEEE 754 maxNum semantics: a NaN
// operand loses to the non-NaN operand. If both operands are NaN, the second
// is returned. When x and y are zeros of opposite sign, which zero is
// returned is unspecified.
func (x Float[F]) Max(y Float[F]) Float[F] {
	switch {
	case x.v != x.v:
		return y
	case y.v != y.v:
		return x
	case x.v > y.v:
		return x
	}
	return y
}
