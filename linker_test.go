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
)

func echoHandler(tag string) Handler {
	return func(any) any { return tag }
}

func TestExactStrategy(t *testing.T) {
	t.Parallel()

	catalog := Catalog{
		"listUsers":      echoHandler("exact"),
		"api.listUsers":  echoHandler("qualified"),
		"api.listOrders": echoHandler("orders"),
	}

	s := ExactStrategy()
	assert.Equal(t, "exact", s.Name())

	h, name, ok := s.Resolve("listUsers", catalog)
	require.True(t, ok)
	assert.Equal(t, "listUsers", name)
	assert.Equal(t, "exact", h(nil))

	_, _, ok = s.Resolve("ListUsers", catalog)
	assert.False(t, ok, "exact matching is case-sensitive")

	_, _, ok = s.Resolve("missing", catalog)
	assert.False(t, ok)
}

func TestSuffixStrategy(t *testing.T) {
	t.Parallel()

	s := SuffixStrategy()
	assert.Equal(t, "suffix", s.Name())

	t.Run("qualified identifier matches short catalog name", func(t *testing.T) {
		t.Parallel()

		catalog := Catalog{"listUsers": echoHandler("short")}

		for _, id := range []string{"api.listUsers", "pkg/api/listUsers", "svc:listUsers"} {
			h, name, ok := s.Resolve(id, catalog)
			require.True(t, ok, "identifier %q", id)
			assert.Equal(t, "listUsers", name)
			assert.Equal(t, "short", h(nil))
		}
	})

	t.Run("short identifier matches qualified catalog name", func(t *testing.T) {
		t.Parallel()

		catalog := Catalog{"main.createUser": echoHandler("qualified")}

		h, name, ok := s.Resolve("createUser", catalog)
		require.True(t, ok)
		assert.Equal(t, "main.createUser", name)
		assert.Equal(t, "qualified", h(nil))
	})

	t.Run("ambiguity resolves to lexicographically first", func(t *testing.T) {
		t.Parallel()

		catalog := Catalog{
			"zpkg.handler": echoHandler("z"),
			"apkg.handler": echoHandler("a"),
		}

		h, name, ok := s.Resolve("other.handler", catalog)
		require.True(t, ok)
		assert.Equal(t, "apkg.handler", name)
		assert.Equal(t, "a", h(nil))
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()

		catalog := Catalog{"listUsers": echoHandler("x")}

		_, _, ok := s.Resolve("api.deleteUser", catalog)
		assert.False(t, ok)
	})

	t.Run("empty short name never matches", func(t *testing.T) {
		t.Parallel()

		catalog := Catalog{"listUsers": echoHandler("x")}

		_, _, ok := s.Resolve("api.", catalog)
		assert.False(t, ok)
	})
}

func TestLinkerResolve(t *testing.T) {
	t.Parallel()

	t.Run("exact beats suffix", func(t *testing.T) {
		t.Parallel()

		catalog := Catalog{
			"api.listUsers": echoHandler("exact-qualified"),
			"listUsers":     echoHandler("short"),
		}

		b := NewLinker().Resolve("api.listUsers", catalog)
		require.True(t, b.Resolved)
		assert.Equal(t, "exact", b.Strategy)
		assert.Equal(t, "api.listUsers", b.CatalogName)
		assert.Equal(t, "exact-qualified", b.Handler(nil))
	})

	t.Run("falls through to suffix", func(t *testing.T) {
		t.Parallel()

		catalog := Catalog{"listUsers": echoHandler("short")}

		b := NewLinker().Resolve("api.listUsers", catalog)
		require.True(t, b.Resolved)
		assert.Equal(t, "suffix", b.Strategy)
		assert.Equal(t, "listUsers", b.CatalogName)
	})

	t.Run("unresolved keeps the identifier", func(t *testing.T) {
		t.Parallel()

		b := NewLinker().Resolve("ghost", Catalog{})
		assert.False(t, b.Resolved)
		assert.Equal(t, "ghost", b.HandlerID)
		assert.Nil(t, b.Handler)
		assert.Empty(t, b.Strategy)
	})

	t.Run("custom chain restricts matching", func(t *testing.T) {
		t.Parallel()

		catalog := Catalog{"listUsers": echoHandler("short")}

		b := NewLinker(ExactStrategy()).Resolve("api.listUsers", catalog)
		assert.False(t, b.Resolved, "suffix fallback disabled")
	})
}
