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

package route

import "strings"

// Record is one route binding: an HTTP method and a literal path pattern
// mapped to a symbolic handler identifier. The (Method, Path) pair must
// be unique within a build input; duplicates are a build error.
type Record struct {
	Method    string // HTTP method, uppercase after normalization
	Path      string // literal path pattern, e.g. "/users/:id"
	HandlerID string // symbolic handler name, resolved by the linker
}

// Key returns the combined hash key for this record: "METHOD:path".
// This is the key the compiler feeds to the perfect hash builder.
func (r Record) Key() string {
	return r.Method + ":" + r.Path
}

// NormalizeMethod trims whitespace and uppercases an HTTP method string.
// Method comparison during dispatch is exact and case-sensitive, so all
// records pass through this before compilation.
func NormalizeMethod(method string) string {
	return strings.ToUpper(strings.TrimSpace(method))
}

// Normalize returns a copy of records with methods uppercased and paths
// trimmed. An empty path becomes "/". The input slice is not modified.
func Normalize(records []Record) []Record {
	out := make([]Record, len(records))

	for i, r := range records {
		r.Method = NormalizeMethod(r.Method)
		r.Path = strings.TrimSpace(r.Path)
		if r.Path == "" {
			r.Path = "/"
		}
		out[i] = r
	}

	return out
}

// Duplicate identifies two records sharing one (method, path) key.
type Duplicate struct {
	Key    string // the shared "METHOD:path" key
	First  int    // index of the first record with this key
	Second int    // index of the repeated record
}

// FindDuplicates reports every repeated (method, path) key in records.
// Records are expected to be normalized first, so "get /x" and "GET /x"
// count as the same key. The result preserves input order and names each
// repeat against the first occurrence.
func FindDuplicates(records []Record) []Duplicate {
	seen := make(map[string]int, len(records))
	var dups []Duplicate

	for i, r := range records {
		key := r.Key()
		if first, ok := seen[key]; ok {
			dups = append(dups, Duplicate{Key: key, First: first, Second: i})

			continue
		}
		seen[key] = i
	}

	return dups
}
