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
	"testing"
	"unsafe"
)

// TestLayout verifies the wrapper is layout-identical to the raw float.
func TestLayout(t *testing.T) {
	if got, want := unsafe.Sizeof(Float[float32]{}), unsafe.Sizeof(float32(0)); got != want {
		t.Errorf("Sizeof(Float[float32]): got %d, want %d", got, want)
	}
	if got, want := unsafe.Sizeof(Float[float64]{}), unsafe.Sizeof(float64(0)); got != want {
		t.Errorf("Sizeof(Float[float64]): got %d, want %d", got, want)
	}
	if got, want := unsafe.Alignof(Float[float32]{}), unsafe.Alignof(float32(0)); got != want {
		t.Errorf("Alignof(Float[float32]): got %d, want %d", got, want)
	}
	if got, want := unsafe.Alignof(Float[float64]{}), unsafe.Alignof(float64(0)); got != want {
		t.Errorf("Alignof(Float[float64]): got %d, want %d", got, want)
	}
}

// TestRoundTrip64 verifies wrap/unwrap is a bit-for-bit identity, including
// NaN payloads, infinities, and the sign of zero.
func TestRoundTrip64(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"Zero", 0},
		{"NegZero", math.Copysign(0, -1)},
		{"One", 1},
		{"NegOneAndHalf", -1.5},
		{"Tenth", 0.1},
		{"MaxFloat", math.MaxFloat64},
		{"SmallestDenormal", math.SmallestNonzeroFloat64},
		{"Inf", math.Inf(1)},
		{"NegInf", math.Inf(-1)},
		{"NaN", math.NaN()},
		{"NaNPayload", math.Float64frombits(0x7FF800000000BEEF)},
		{"NegNaN", math.Float64frombits(0xFFF8000000000000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.value).Raw()
			if math.Float64bits(got) != math.Float64bits(tt.value) {
				t.Errorf("round trip: got bits %016x, want %016x",
					math.Float64bits(got), math.Float64bits(tt.value))
			}
		})
	}
}

// TestRoundTrip32 is the float32 counterpart of TestRoundTrip64.
func TestRoundTrip32(t *testing.T) {
	tests := []struct {
		name  string
		value float32
	}{
		{"Zero", 0},
		{"NegZero", float32(math.Copysign(0, -1))},
		{"One", 1},
		{"Tenth", 0.1},
		{"MaxFloat", math.MaxFloat32},
		{"SmallestDenormal", math.SmallestNonzeroFloat32},
		{"Inf", float32(math.Inf(1))},
		{"NegInf", float32(math.Inf(-1))},
		{"NaNPayload", math.Float32frombits(0x7FC0BEEF)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.value).Raw()
			if math.Float32bits(got) != math.Float32bits(tt.value) {
				t.Errorf("round trip: got bits %08x, want %08x",
					math.Float32bits(got), math.Float32bits(tt.value))
			}
		})
	}
}

// TestPredicates verifies IsNaN/IsInf/IsZero/IsNegative classification.
func TestPredicates(t *testing.T) {
	tests := []struct {
		name                     string
		value                    float64
		nan, inf, zero, negative bool
	}{
		{"Zero", 0, false, false, true, false},
		{"NegZero", math.Copysign(0, -1), false, false, true, true},
		{"One", 1, false, false, false, false},
		{"NegOne", -1, false, false, false, true},
		{"Inf", math.Inf(1), false, true, false, false},
		{"NegInf", math.Inf(-1), false, true, false, true},
		{"NaN", math.NaN(), true, false, false, false},
		{"NegNaN", math.Float64frombits(0xFFF8000000000000), true, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := Wrap(tt.value)
			if got := x.IsNaN(); got != tt.nan {
				t.Errorf("IsNaN: got %v, want %v", got, tt.nan)
			}
			if got := x.IsInf(); got != tt.inf {
				t.Errorf("IsInf: got %v, want %v", got, tt.inf)
			}
			if got := x.IsZero(); got != tt.zero {
				t.Errorf("IsZero: got %v, want %v", got, tt.zero)
			}
			if got := x.IsNegative(); got != tt.negative {
				t.Errorf("IsNegative: got %v, want %v", got, tt.negative)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := Wrap(1.5).String(); got != "1.5" {
		t.Errorf("String: got %q, want %q", got, "1.5")
	}
	// float32 formats at its own precision: 0.1 round-trips as "0.1",
	// not the float64 expansion of the float32 value.
	if got := Wrap(float32(0.1)).String(); got != "0.1" {
		t.Errorf("String (float32): got %q, want %q", got, "0.1")
	}
	if got := Wrap(math.Inf(-1)).String(); got != "-Inf" {
		t.Errorf("String (-Inf): got %q, want %q", got, "-Inf")
	}
}

// TestAliases makes sure the F32/F64 aliases are interchangeable with the
// generic instantiations.
func TestAliases(t *testing.T) {
	var x F64 = Wrap(2.0)
	var y Float[float64] = x
	if y.Raw() != 2.0 {
		t.Errorf("F64 alias: got %v, want 2", y.Raw())
	}

	var a F32 = Wrap(float32(3.0))
	var b Float[float32] = a
	if b.Raw() != 3.0 {
		t.Errorf("F32 alias: got %v, want 3", b.Raw())
	}
}
