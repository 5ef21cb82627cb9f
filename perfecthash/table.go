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

import (
	"fmt"
	"maps"
)

// Table is a collision-free hash table over a fixed key set.
//
// A Table is immutable after construction and safe for unsynchronized
// concurrent reads. Every input key maps to a unique slot via
//
//	slot = (Hash(key) + offset[Hash(key)]) mod Size()
type Table struct {
	size    int
	keys    []string       // input keys, in original order
	offsets map[uint32]int // full hash → probe offset
	slots   []int          // slot → key index, -1 for empty slots
}

// Size returns the table size (number of slots).
func (t *Table) Size() int {
	return t.size
}

// Len returns the number of keys placed in the table.
func (t *Table) Len() int {
	return len(t.keys)
}

// LoadFactor returns occupied slots divided by total slots.
// Construction tries sizes from Len() upward, so this is 1.0 whenever a
// table of exactly Len() slots exists. The empty table has no unused
// capacity and reports 1.0.
func (t *Table) LoadFactor() float64 {
	if t.size == 0 {
		return 1.0
	}

	return float64(len(t.keys)) / float64(t.size)
}

// SlotOf returns the slot assigned to key, or false if key was not part
// of the construction set. A matching hash alone is not proof of
// membership; the occupant's key is compared before reporting a hit.
func (t *Table) SlotOf(key string) (int, bool) {
	if t.size == 0 {
		return 0, false
	}

	hash := Hash(key)
	offset, ok := t.offsets[hash]
	if !ok {
		return 0, false
	}

	//nolint:gosec // G115: offset < size, both bounded by 2x key count
	slot := int((hash + uint32(offset)) % uint32(t.size))
	idx := t.slots[slot]
	if idx < 0 || t.keys[idx] != key {
		return 0, false
	}

	return slot, true
}

// KeyIndex returns the index (into the original key list) of the key
// occupying slot, or -1 if the slot is empty.
func (t *Table) KeyIndex(slot int) int {
	if slot < 0 || slot >= t.size {
		return -1
	}

	return t.slots[slot]
}

// Slots returns a copy of the slot layout: slot → key index, -1 empty.
func (t *Table) Slots() []int {
	out := make([]int, len(t.slots))
	copy(out, t.slots)

	return out
}

// Offsets returns a copy of the hash → offset assignments.
func (t *Table) Offsets() map[uint32]int {
	return maps.Clone(t.offsets)
}

// Verify re-checks the perfect hash property: every key resolves through
// SlotOf to the slot recording its own index, and no two keys share a
// slot. Construction already guarantees this; Verify exists for tests
// and for builds that opt into a paranoia pass.
func (t *Table) Verify() error {
	seen := make(map[int]int, len(t.keys))

	for i, key := range t.keys {
		slot, ok := t.SlotOf(key)
		if !ok {
			return fmt.Errorf("%w: key %q has no slot", ErrTableCorrupt, key)
		}
		if t.slots[slot] != i {
			return fmt.Errorf("%w: key %q resolves to slot %d owned by key index %d",
				ErrTableCorrupt, key, slot, t.slots[slot])
		}
		if prev, dup := seen[slot]; dup {
			return fmt.Errorf("%w: keys %d and %d share slot %d", ErrTableCorrupt, prev, i, slot)
		}
		seen[slot] = i
	}

	return nil
}
