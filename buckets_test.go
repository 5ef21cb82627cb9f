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

package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/dispatch/route"
)

func TestBucketize(t *testing.T) {
	t.Parallel()

	t.Run("partitions by method in sorted order", func(t *testing.T) {
		t.Parallel()

		records := []route.Record{
			{Method: "POST", Path: "/users"},
			{Method: "GET", Path: "/users"},
			{Method: "GET", Path: "/orders"},
			{Method: "DELETE", Path: "/users/:id"},
			{Method: "GET", Path: "/health"},
		}

		buckets := bucketize(records)
		require.Len(t, buckets, 3)

		assert.Equal(t, "DELETE", buckets[0].Method)
		assert.Equal(t, []int{3}, buckets[0].Routes)

		assert.Equal(t, "GET", buckets[1].Method)
		assert.Equal(t, []int{1, 2, 4}, buckets[1].Routes, "input order preserved within bucket")

		assert.Equal(t, "POST", buckets[2].Method)
		assert.Equal(t, []int{0}, buckets[2].Routes)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, bucketize(nil))
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		t.Parallel()

		records := []route.Record{
			{Method: "PUT", Path: "/a"},
			{Method: "GET", Path: "/b"},
			{Method: "PATCH", Path: "/c"},
			{Method: "POST", Path: "/d"},
		}

		first := bucketize(records)
		for range 10 {
			assert.Equal(t, first, bucketize(records))
		}
	})
}

func TestBucketPaths(t *testing.T) {
	t.Parallel()

	records := []route.Record{
		{Method: "GET", Path: "/users"},
		{Method: "POST", Path: "/users"},
		{Method: "GET", Path: "/orders"},
	}

	buckets := bucketize(records)
	require.Len(t, buckets, 2)

	assert.Equal(t, []string{"/users", "/orders"}, bucketPaths(records, buckets[0]))
	assert.Equal(t, []string{"/users"}, bucketPaths(records, buckets[1]))
}
