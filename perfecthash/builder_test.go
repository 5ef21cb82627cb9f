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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	t.Parallel()

	t.Run("known FNV-1a vectors", func(t *testing.T) {
		t.Parallel()

		// Offset basis for the empty string, standard published vector
		// for "a".
		assert.Equal(t, uint32(2166136261), Hash(""))
		assert.Equal(t, uint32(0xe40c292c), Hash("a"))
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		keys := []string{"GET:/users", "POST:/users", "GET:/users/:id"}
		for _, k := range keys {
			assert.Equal(t, Hash(k), Hash(k))
		}
	})

	t.Run("distinct inputs differ", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, Hash("GET:/users"), Hash("POST:/users"))
	})
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("places every key in a distinct slot", func(t *testing.T) {
		t.Parallel()

		keys := []string{
			"GET:/users",
			"GET:/users/:id",
			"POST:/users",
			"PUT:/users/:id",
			"DELETE:/users/:id",
			"GET:/health",
		}

		table, err := Build(keys)
		require.NoError(t, err)

		assert.Equal(t, len(keys), table.Len())
		assert.GreaterOrEqual(t, table.Size(), len(keys))
		assert.LessOrEqual(t, table.Size(), 2*len(keys))

		seen := make(map[int]string, len(keys))
		for _, key := range keys {
			slot, ok := table.SlotOf(key)
			require.True(t, ok, "key %q has no slot", key)
			require.Less(t, slot, table.Size())

			prev, dup := seen[slot]
			require.False(t, dup, "keys %q and %q share slot %d", prev, key, slot)
			seen[slot] = key
		}
	})

	t.Run("prefers the smallest size", func(t *testing.T) {
		t.Parallel()

		// Offset probing visits every slot of a candidate size, so any
		// collision-free key set packs into exactly len(keys) slots.
		keys := []string{"a", "b", "c", "d", "e"}

		table, err := Build(keys)
		require.NoError(t, err)

		assert.Equal(t, len(keys), table.Size())
		assert.InDelta(t, 1.0, table.LoadFactor(), 0.0001)
	})

	t.Run("single key", func(t *testing.T) {
		t.Parallel()

		table, err := Build([]string{"GET:/"})
		require.NoError(t, err)

		assert.Equal(t, 1, table.Size())
		slot, ok := table.SlotOf("GET:/")
		require.True(t, ok)
		assert.Equal(t, 0, slot)
	})

	t.Run("empty key set", func(t *testing.T) {
		t.Parallel()

		table, err := Build(nil)
		require.NoError(t, err)

		assert.Equal(t, 0, table.Size())
		assert.Equal(t, 0, table.Len())
		assert.InDelta(t, 1.0, table.LoadFactor(), 0.0001)

		_, ok := table.SlotOf("GET:/users")
		assert.False(t, ok)
	})

	t.Run("duplicate keys rejected", func(t *testing.T) {
		t.Parallel()

		_, err := Build([]string{"GET:/users", "POST:/users", "GET:/users"})

		var dup *DuplicateKeyError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "GET:/users", dup.Key)
		assert.Equal(t, 0, dup.First)
		assert.Equal(t, 2, dup.Second)
	})

	t.Run("deterministic layout", func(t *testing.T) {
		t.Parallel()

		keys := []string{"GET:/a", "GET:/b", "POST:/a", "PUT:/c"}

		first, err := Build(keys)
		require.NoError(t, err)
		second, err := Build(keys)
		require.NoError(t, err)

		assert.Equal(t, first.Size(), second.Size())
		assert.Equal(t, first.Slots(), second.Slots())
		assert.Equal(t, first.Offsets(), second.Offsets())
	})
}

func TestBuildBounded(t *testing.T) {
	t.Parallel()

	t.Run("bound below key count", func(t *testing.T) {
		t.Parallel()

		_, err := BuildBounded([]string{"a", "b", "c"}, 2)
		require.ErrorIs(t, err, ErrSizeBoundTooSmall)
	})

	t.Run("bound equal to key count", func(t *testing.T) {
		t.Parallel()

		keys := []string{"GET:/x", "GET:/y", "GET:/z"}
		table, err := BuildBounded(keys, len(keys))
		require.NoError(t, err)
		assert.Equal(t, len(keys), table.Size())
	})

	t.Run("zero bound with no keys", func(t *testing.T) {
		t.Parallel()

		table, err := BuildBounded(nil, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, table.Size())
	})
}

func TestTableLookup(t *testing.T) {
	t.Parallel()

	keys := []string{"GET:/users", "POST:/users", "GET:/orders"}
	table, err := Build(keys)
	require.NoError(t, err)

	t.Run("misses report false", func(t *testing.T) {
		t.Parallel()

		for _, absent := range []string{"GET:/missing", "get:/users", "GET:/users/"} {
			_, ok := table.SlotOf(absent)
			assert.False(t, ok, "unexpected hit for %q", absent)
		}
	})

	t.Run("slots round-trip through KeyIndex", func(t *testing.T) {
		t.Parallel()

		for i, key := range keys {
			slot, ok := table.SlotOf(key)
			require.True(t, ok)
			assert.Equal(t, i, table.KeyIndex(slot))
		}
	})

	t.Run("out of range KeyIndex", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, -1, table.KeyIndex(-1))
		assert.Equal(t, -1, table.KeyIndex(table.Size()))
	})

	t.Run("accessors return copies", func(t *testing.T) {
		t.Parallel()

		slots := table.Slots()
		require.NotEmpty(t, slots)
		slots[0] = 99
		assert.NotEqual(t, 99, table.Slots()[0])

		offsets := table.Offsets()
		for hash := range offsets {
			offsets[hash] = -42
		}
		for _, v := range table.Offsets() {
			assert.NotEqual(t, -42, v)
		}
	})
}

func TestVerify(t *testing.T) {
	t.Parallel()

	t.Run("valid table", func(t *testing.T) {
		t.Parallel()

		table, err := Build([]string{"GET:/a", "POST:/b", "PUT:/c"})
		require.NoError(t, err)
		require.NoError(t, table.Verify())
	})

	t.Run("corrupted slot detected", func(t *testing.T) {
		t.Parallel()

		table, err := Build([]string{"GET:/a", "POST:/b"})
		require.NoError(t, err)

		// Swap the slot layout underneath the offsets.
		table.slots[0], table.slots[1] = table.slots[1], table.slots[0]

		require.ErrorIs(t, table.Verify(), ErrTableCorrupt)
	})
}

func TestBuildScales(t *testing.T) {
	t.Parallel()

	// A route-table sized key set should place without widening past the
	// default bound.
	var keys []string
	for _, method := range []string{"GET", "POST", "PUT", "DELETE"} {
		for i := range 64 {
			keys = append(keys, fmt.Sprintf("%s:/api/v1/resource%d", method, i))
		}
	}

	table, err := Build(keys)
	require.NoError(t, err)
	require.NoError(t, table.Verify())
	assert.Equal(t, len(keys), table.Len())
}
