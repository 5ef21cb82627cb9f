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

// Package perfecthash builds collision-free hash tables for fixed string
// key sets.
//
// A perfect hash table assigns every key in a known set a unique slot.
// Construction happens once, at build time; the resulting table is
// immutable and safe for unsynchronized concurrent reads.
//
// # Algorithm
//
// Keys are hashed with 32-bit FNV-1a. For each candidate table size from
// N up to the size bound (2N by default), the builder attempts to place
// every key:
//
//  1. Compute hash = FNV-1a(key).
//  2. Try offsets 0, 1, 2, ... up to size-1 in order.
//  3. Accept the first slot (hash + offset) mod size not claimed by
//     another key, and record offsets[hash] = offset.
//
// If any key cannot be placed, the attempt is discarded and the next
// larger size is tried. The first size where every key places wins, so
// construction always targets a 100% load factor and degrades one slot
// at a time.
//
// Construction cost is roughly quadratic in the key count but runs once
// per build, never per request.
//
// # Usage
//
//	table, err := perfecthash.Build([]string{"/", "/users", "/users/:id"})
//	if err != nil {
//	    return err
//	}
//
//	slot, ok := table.SlotOf("/users")
//	// ok == true, slot unique among all keys
//
// # Determinism
//
// Building twice from the same ordered key list yields identical tables:
// candidate sizes are tried in ascending order, keys are placed in input
// order, and offsets are probed in ascending order. No map iteration
// participates in placement.
package perfecthash
