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

// Build constructs a perfect hash table for keys, trying table sizes from
// len(keys) up to 2*len(keys) inclusive. Keys must be unique; a duplicate
// is reported as *DuplicateKeyError.
//
// An empty key set builds a size-0 table and succeeds trivially.
// If no candidate size yields a collision-free placement, Build returns
// ErrNoPerfectTable; callers may widen the search with BuildBounded.
func Build(keys []string) (*Table, error) {
	return BuildBounded(keys, 2*len(keys))
}

// BuildBounded is Build with an explicit upper size bound. Candidate
// sizes run from len(keys) to maxSize inclusive, smallest first, so the
// result always has the highest achievable load factor.
func BuildBounded(keys []string, maxSize int) (*Table, error) {
	n := len(keys)
	if n == 0 {
		return &Table{offsets: map[uint32]int{}}, nil
	}
	if maxSize < n {
		return nil, ErrSizeBoundTooSmall
	}

	// Hash once up front; hashes are reused across size attempts.
	hashes := make([]uint32, n)
	for i, key := range keys {
		hashes[i] = Hash(key)
	}

	for size := n; size <= maxSize; size++ {
		table, err := place(keys, hashes, size)
		if err != nil {
			return nil, err
		}
		if table != nil {
			return table, nil
		}
	}

	return nil, ErrNoPerfectTable
}

// place attempts a single table size. It returns (nil, nil) when the size
// cannot hold all keys collision-free, and a terminal error for
// conditions no larger size can repair.
func place(keys []string, hashes []uint32, size int) (*Table, error) {
	offsets := make(map[uint32]int, len(keys))
	slots := make([]int, size)
	for i := range slots {
		slots[i] = -1
	}

	for i, key := range keys {
		hash := hashes[i]

		if prev, seen := offsets[hash]; seen {
			// The offset table keys by full hash, so a second key with an
			// already-recorded hash can never get its own assignment.
			//nolint:gosec // G115: prev < size, bounded by the size range
			slot := int((hash + uint32(prev)) % uint32(size))
			if occupant := slots[slot]; occupant >= 0 && keys[occupant] == key {
				// Identical key contents: the slot is already claimed by
				// this exact key. That is an input error, not a hashing
				// concern, and no table size resolves it.
				return nil, &DuplicateKeyError{Key: key, First: occupant, Second: i}
			}
			// Distinct keys sharing a full 32-bit hash. Growing the table
			// cannot separate them either, so fail the whole build.
			return nil, ErrNoPerfectTable
		}

		placed := false
		for offset := 0; offset < size; offset++ {
			//nolint:gosec // G115: offset < size, bounded by the size range
			slot := int((hash + uint32(offset)) % uint32(size))
			if slots[slot] == -1 {
				slots[slot] = i
				offsets[hash] = offset
				placed = true

				break
			}
		}

		if !placed {
			return nil, nil // table full under this size, try the next
		}
	}

	stored := make([]string, len(keys))
	copy(stored, keys)

	return &Table{
		size:    size,
		keys:    stored,
		offsets: offsets,
		slots:   slots,
	}, nil
}
