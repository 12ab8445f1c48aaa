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

import "golang.org/x/exp/constraints"

// Reductions over raw slices. These are the package's own use of the
// relaxation the wrapper documents: they accumulate into four independent
// partial sums, which reorders the additions relative to a sequential loop.
// The Go compiler may not perform this rewrite on raw float code because it
// changes rounding (and NaN/Inf interaction); callers of this package have
// declared they do not care.
//
// Results can therefore differ from a sequential reduction in the low bits.
// They are exact whenever every partial sum is exactly representable, e.g.
// for reasonably small integral inputs.

// Sum returns the sum of xs. Sum of an empty slice is 0.
func Sum[F constraints.Float](xs []F) F {
	var s0, s1, s2, s3 F
	i := 0
	for ; i+4 <= len(xs); i += 4 {
		s0 += xs[i]
		s1 += xs[i+1]
		s2 += xs[i+2]
		s3 += xs[i+3]
	}
	for ; i < len(xs); i++ {
		s0 += xs[i]
	}
	return (s0 + s1) + (s2 + s3)
}

// Dot returns the dot product of xs and ys over the first
// min(len(xs), len(ys)) elements. Dot of empty slices is 0.
func Dot[F constraints.Float](xs, ys []F) F {
	n := min(len(xs), len(ys))
	var s0, s1, s2, s3 F
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += xs[i] * ys[i]
		s1 += xs[i+1] * ys[i+1]
		s2 += xs[i+2] * ys[i+2]
		s3 += xs[i+3] * ys[i+3]
	}
	for ; i < n; i++ {
		s0 += xs[i] * ys[i]
	}
	return (s0 + s1) + (s2 + s3)
}
