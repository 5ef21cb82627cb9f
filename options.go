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
	"go.opentelemetry.io/otel/trace"

	"rivaas.dev/dispatch/metrics"
)

// Option defines functional options for Compiler configuration.
type Option func(*Compiler)

// WithDiagnostics sets a diagnostic handler for the compiler.
//
// Diagnostic events stream build progress and anomalies (unresolved
// handlers) to observability systems. The compiler functions correctly
// whether diagnostics are collected or not; the Report returned by
// Compile stays authoritative.
//
// Example:
//
//	c := dispatch.MustNew(dispatch.WithDiagnostics(
//	    dispatch.SlogDiagnostics(slog.Default()),
//	))
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(c *Compiler) {
		c.diagnostics = handler
	}
}

// WithTableGrowthLimit sets the perfect hash search bound as a multiple
// of the key count: a limit of g tries table sizes from N up to g*N.
//
// Default: 2 (the [N, 2N] range). Raising the limit is the recovery path
// when a build fails with *HashGenerationError. Must be >= 1 or New
// fails validation.
func WithTableGrowthLimit(limit int) Option {
	return func(c *Compiler) {
		c.growthLimit = limit
	}
}

// WithLinkStrategies replaces the handler linker's strategy chain.
// Strategies run in the given order; the first match wins.
//
// Default: ExactStrategy then SuffixStrategy. The default order is part
// of the linking contract - exact matches always beat short-name
// matches.
//
// Example (exact-only linking, no fuzzy fallback):
//
//	c := dispatch.MustNew(dispatch.WithLinkStrategies(dispatch.ExactStrategy()))
func WithLinkStrategies(strategies ...MatchStrategy) Option {
	return func(c *Compiler) {
		c.linker = NewLinker(strategies...)
		c.strategyCount = len(strategies)
	}
}

// WithMetrics attaches a build metrics recorder. After every successful
// compile, route counts, table sizes, load factors, and unresolved
// handler counts are recorded through it.
//
// Example:
//
//	rec := metrics.MustNew(metrics.WithStdout())
//	c := dispatch.MustNew(dispatch.WithMetrics(rec))
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(c *Compiler) {
		c.metrics = recorder
	}
}

// WithTracerProvider enables OpenTelemetry spans around compile phases
// (duplicate check, hashing, bucketizing, linking, plan generation).
// Without this option, span creation is a no-op.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *Compiler) {
		c.tracerProvider = provider
	}
}

// WithVerification enables a post-build paranoia pass: every perfect
// hash table is re-checked slot by slot before the plan is returned.
// Construction already guarantees the property; verification exists for
// builds where a corrupted table would be expensive to discover later.
//
// Default: disabled.
func WithVerification(enable bool) Option {
	return func(c *Compiler) {
		c.verify = enable
	}
}
