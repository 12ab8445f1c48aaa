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

// Package fast provides a transparent wrapper for float32 and float64 values
// that marks them as safe for fast-math transformations.
//
// A Float[F] carries exactly the bits of its underlying float and nothing
// else. Wrapping a value is a statement by the caller, not a check by the
// package: it says the surrounding computation does not depend on
//
//   - NaN propagation,
//   - the sign of zero, or
//   - the exact order in which intermediate results are rounded,
//
// which licenses reassociation, multiply-add contraction, and unrolled
// reductions that are invalid for arbitrary floats. Nothing is validated:
// NaN, infinities, and signed zeros pass through every operation unchanged,
// exactly as the raw operation would produce them.
//
// Go exposes no per-operation fast-math attribute, so the wrapper cannot
// hand the relaxation to the compiler the way LLVM intrinsics can. Instead
// the package applies the relaxations the contract permits where Go lets it:
// MulAdd freely contracts (or un-contracts, on hardware without fused
// multiply-add), and Sum and Dot reassociate across multiple accumulators.
// Everywhere else the wrapper is a zero-cost contract marker that keeps the
// marking attached through chains of arithmetic.
//
// Basic usage:
//
//	import "github.com/AugmentedFifth/fast-floats/fast"
//
//	x := fast.Wrap(2.0)
//	y := x.Mul(x).AddRaw(1.0) // (2*2) + 1, still marked fast
//	_ = y.Sqrt().Raw()        // unwrap when done
//
// Comparisons are the exception to the relaxation: they use ordinary IEEE
// semantics and return plain bools, since no rewriting of comparison results
// is implied by the fast marking.
package fast
