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

//go:build !amd64 && !arm64

package fast

func init() {
	// Other architectures take the unfused path. Hardware FMA exists on
	// some of them (ppc64, riscv64 with the F extension), but math.FMA is
	// only guaranteed to lower to a single instruction where the compiler
	// has an intrinsic, so we stay conservative.
	hasFMA = false
}
