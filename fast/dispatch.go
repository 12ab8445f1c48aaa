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
	"os"
	"strconv"
)

// hasFMA reports whether the CPU can fuse multiply-add in hardware.
// Set by init() in dispatch_*.go files.
var hasFMA bool

// HasFMA reports whether MulAdd computes the fused (single-rounding) result.
// When false, MulAdd falls back to the unfused x*y + z instead of math.FMA's
// software emulation.
func HasFMA() bool {
	return hasFMA
}

// NoFMAEnv checks if the FASTFLOATS_NO_FMA environment variable is set.
// When set, MulAdd uses the unfused path regardless of CPU capabilities.
// This is useful for testing and for pinning down rounding differences.
func NoFMAEnv() bool {
	val := os.Getenv("FASTFLOATS_NO_FMA")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
