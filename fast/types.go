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
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is a fast-math-marked floating-point value.
//
// It holds a single field of the underlying float type and is layout-identical
// to it: same size, same alignment, no tag. The wrapper enforces no invariant;
// the contained value may be NaN, ±Inf, or ±0 and is never normalized or
// rejected. See the package documentation for what the marking means.
type Float[F constraints.Float] struct {
	v F
}

// Convenience aliases for the two instantiations.
type (
	F32 = Float[float32]
	F64 = Float[float64]
)

// Layout check: the wrapper must add nothing on top of the raw float.
// These fail to compile if the struct ever grows a second field or padding.
var (
	_ [4]byte = [unsafe.Sizeof(Float[float32]{})]byte{}
	_ [8]byte = [unsafe.Sizeof(Float[float64]{})]byte{}
)

// Wrap marks a raw float value as fast. Total; no validation is performed.
func Wrap[F constraints.Float](v F) Float[F] {
	return Float[F]{v}
}

// Raw returns the contained value unchanged.
func (x Float[F]) Raw() F {
	return x.v
}

// IsNaN returns true if x is a NaN value.
func (x Float[F]) IsNaN() bool {
	return x.v != x.v
}

// IsInf returns true if x is positive or negative infinity.
func (x Float[F]) IsInf() bool {
	return math.IsInf(float64(x.v), 0)
}

// IsZero returns true if x is positive or negative zero.
func (x Float[F]) IsZero() bool {
	return x.v == 0
}

// IsNegative returns true if the sign bit is set. Note that this is true
// for -0 and negative NaN, unlike a comparison against zero.
func (x Float[F]) IsNegative() bool {
	return math.Signbit(float64(x.v))
}

// String formats the contained value with the shortest representation that
// round-trips at the wrapped type's own precision.
func (x Float[F]) String() string {
	return strconv.FormatFloat(float64(x.v), 'g', -1, int(unsafe.Sizeof(x.v))*8)
}
