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

// Report is the structured build record returned alongside every
// compiled plan: route counts, achieved table sizes, load factors, the
// slot layout, and any unresolved handler names. It exists as data, not
// printed text, so callers and tests can assert on it directly.
type Report struct {
	// Routes is the total number of input routes.
	Routes int

	// TableSize and LoadFactor describe the global perfect hash over the
	// combined "METHOD:path" keys.
	TableSize  int
	LoadFactor float64

	// Buckets describes each method bucket, in evaluation order.
	Buckets []BucketReport

	// Slots is the global table's layout: one entry per occupied slot,
	// ascending. Empty slots are implied by TableSize.
	Slots []SlotAssignment

	// Unresolved lists every route whose handler identifier found no
	// catalog match. Unresolved handlers are warnings, never build
	// failures.
	Unresolved []UnresolvedHandler
}

// BucketReport describes one method bucket's compiled state.
type BucketReport struct {
	Method     string
	Routes     int
	TableSize  int
	LoadFactor float64
}

// SlotAssignment records which route occupies a slot of the global
// perfect hash table.
type SlotAssignment struct {
	Slot      int
	Method    string
	Path      string
	HandlerID string
}

// UnresolvedHandler names a route whose handler identifier did not
// resolve.
type UnresolvedHandler struct {
	HandlerID string
	Method    string
	Path      string
}
