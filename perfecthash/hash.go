// Copyright 2025 The Rivaas Authors
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

package perfecthash

// FNV-1a 32-bit constants, inlined rather than going through hash/fnv:
// the interface-based API forces a []byte copy per key and blocks
// inlining. The arithmetic is identical.
const (
	offsetBasis32 = 2166136261 // FNV-1a 32-bit offset basis
	prime32       = 16777619   // FNV-1a 32-bit prime
)

// Hash computes the 32-bit FNV-1a hash of key.
//
// This is the hash function used for slot assignment; it is exported so
// consumers rendering a table into generated code can reproduce the exact
// slot computation: slot = (Hash(key) + offset) mod size.
func Hash(key string) uint32 {
	hash := uint32(offsetBasis32)
	for i := range len(key) {
		hash ^= uint32(key[i])
		hash *= prime32
	}

	return hash
}
