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

import "fmt"

// NotFoundMarker is the value Dispatch returns when no step matches the
// inbound (method, path) pair.
type NotFoundMarker struct{}

func (NotFoundMarker) String() string { return "not found" }

// NotFound is the default action's result: the sentinel returned for any
// (method, path) pair outside the compiled route set.
var NotFound = NotFoundMarker{}

// MissingHandler is the diagnostic value a matched route produces when
// its handler identifier never resolved against the catalog. The route
// still matches - resolution failure is a linking warning, not a routing
// change - but nothing is invoked.
type MissingHandler struct {
	HandlerID string
}

func (m MissingHandler) String() string {
	return fmt.Sprintf("handler missing: %s", m.HandlerID)
}

// Step describes one evaluation step of a plan, for introspection and
// for external dispatchers that render the plan into another form (for
// example a generated if/else chain). Steps appear in exact evaluation
// order: ascending slot order within each method bucket, buckets in
// method order.
type Step struct {
	Method    string
	Path      string
	HandlerID string
	Slot      int  // slot in the bucket's perfect hash table
	Resolved  bool // false when the step emits MissingHandler
}

// planStep is the internal, invocable form of a Step.
type planStep struct {
	path      string
	handlerID string
	handler   Handler // nil when unresolved
	slot      int
}

// planBucket holds the steps sharing one method, in ascending slot order.
// Grouping lets evaluation test the method once per bucket instead of
// once per step, which is what makes the K + N/K comparison bound hold.
type planBucket struct {
	method string
	steps  []planStep
}

// Plan is the compiled, ordered evaluation structure mapping an inbound
// (method, path) pair to a handler invocation or NotFound.
//
// A Plan is immutable after construction: it may be evaluated
// concurrently from any number of goroutines without synchronization.
//
// Evaluation order is externally observable and deterministic: method
// buckets in the bucketizer's order, steps within a bucket in ascending
// slot order, terminating in the not-found default. String comparison is
// exact (length then bytes): no case folding, no trailing-slash
// normalization, no parameter semantics. A pattern like "/users/:id"
// matches only the literal string "/users/:id"; parameter extraction
// belongs to a downstream layer that receives the matched pattern.
type Plan struct {
	buckets []planBucket
	steps   []Step // flattened evaluation order, for introspection
}

// DispatchStats reports how a single Dispatch call evaluated, so tests
// and benchmarks can assert on the comparison bound.
type DispatchStats struct {
	Comparisons int  // total method + path equality tests performed
	Matched     bool // whether any step matched
}

// Dispatch evaluates the plan for an inbound request.
//
// On a match it returns the handler's response (or a MissingHandler value
// for routes whose handler never resolved) and true. Otherwise it returns
// NotFound and false.
func (p *Plan) Dispatch(method, path string, req any) (any, bool) {
	result, _, matched := p.dispatch(method, path, req)

	return result, matched
}

// DispatchWithStats is Dispatch with evaluation statistics.
func (p *Plan) DispatchWithStats(method, path string, req any) (any, DispatchStats) {
	result, stats, _ := p.dispatch(method, path, req)

	return result, stats
}

func (p *Plan) dispatch(method, path string, req any) (any, DispatchStats, bool) {
	stats := DispatchStats{}

	for i := range p.buckets {
		b := &p.buckets[i]

		stats.Comparisons++
		if method != b.method {
			continue
		}

		for j := range b.steps {
			s := &b.steps[j]

			stats.Comparisons++
			if path != s.path {
				continue
			}

			stats.Matched = true
			if s.handler == nil {
				return MissingHandler{HandlerID: s.handlerID}, stats, true
			}

			return s.handler(req), stats, true
		}
	}

	return NotFound, stats, false
}

// Steps returns the plan's evaluation order as a copy.
func (p *Plan) Steps() []Step {
	out := make([]Step, len(p.steps))
	copy(out, p.steps)

	return out
}

// Len returns the number of evaluation steps (excluding the not-found
// default).
func (p *Plan) Len() int {
	return len(p.steps)
}
