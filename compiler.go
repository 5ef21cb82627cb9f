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
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"rivaas.dev/dispatch/metrics"
	"rivaas.dev/dispatch/perfecthash"
	"rivaas.dev/dispatch/route"
)

// instrumentationName names the tracer for compile-phase spans.
const instrumentationName = "rivaas.dev/dispatch"

// defaultGrowthLimit bounds the perfect hash size search at 2x the key
// count, the [N, 2N] range.
const defaultGrowthLimit = 2

// Compiler builds dispatch plans from route records. A Compiler is
// configured once via functional options and may be reused across
// builds; each Compile call is independent and carries its own state,
// so there is no ambient accumulation between builds.
type Compiler struct {
	diagnostics    DiagnosticHandler
	linker         *Linker
	metrics        *metrics.Recorder
	tracerProvider trace.TracerProvider
	tracer         trace.Tracer
	growthLimit    int
	strategyCount  int
	verify         bool
}

// New creates a Compiler with the given options.
// Returns an error when the configuration is invalid.
// For a version that panics on error, use [MustNew].
func New(opts ...Option) (*Compiler, error) {
	c := &Compiler{
		linker:        NewLinker(),
		growthLimit:   defaultGrowthLimit,
		strategyCount: -1, // default chain, not user-supplied
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.growthLimit < 1 {
		return nil, ErrGrowthLimitInvalid
	}
	if c.strategyCount == 0 {
		return nil, ErrNoLinkStrategies
	}

	if c.tracerProvider == nil {
		c.tracerProvider = noop.NewTracerProvider()
	}
	c.tracer = c.tracerProvider.Tracer(instrumentationName)

	return c, nil
}

// MustNew is like New but panics on error. Intended for build tooling
// initialization where a bad configuration should fail loudly.
func MustNew(opts ...Option) *Compiler {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// Compile builds a dispatch plan from records and a handler catalog.
//
// The pipeline is a plain data flow with no shared mutable state:
// normalize, reject duplicate (method, path) keys, build the global
// perfect hash over combined keys, bucketize by method with a per-bucket
// perfect hash over paths, link handlers, and generate the ordered plan.
// All derived artifacts are immutable once Compile returns.
//
// Duplicate routes and hash generation failures abort the build with
// *DuplicateRouteError and *HashGenerationError respectively. Unresolved
// handler identifiers never abort: they are reported in the Report, and
// the matching plan leaves yield MissingHandler values.
//
// Zero records is a valid input: the plan matches nothing and every
// dispatch returns NotFound.
func (c *Compiler) Compile(ctx context.Context, records []route.Record, catalog Catalog) (*Plan, *Report, error) {
	ctx, span := c.tracer.Start(ctx, "dispatch.compile",
		trace.WithAttributes(attribute.Int("dispatch.routes", len(records))))
	defer span.End()

	records = route.Normalize(records)

	if err := c.checkDuplicates(ctx, records); err != nil {
		return nil, nil, err
	}

	global, err := c.buildGlobalTable(ctx, records)
	if err != nil {
		return nil, nil, err
	}

	buckets, err := c.buildBuckets(ctx, records)
	if err != nil {
		return nil, nil, err
	}

	bindings, unresolved := c.link(ctx, records, catalog)

	plan := c.generatePlan(ctx, records, buckets, bindings)
	report := c.buildReport(records, global, buckets, unresolved)

	c.emit(DiagPlanGenerated, "dispatch plan generated", map[string]any{
		"routes":     report.Routes,
		"buckets":    len(report.Buckets),
		"table_size": report.TableSize,
		"unresolved": len(report.Unresolved),
	})

	if c.metrics != nil {
		c.metrics.RecordBuild(ctx, buildStats(report))
	}

	return plan, report, nil
}

// Compile builds a dispatch plan with a default-configured Compiler.
// Shorthand for dispatch.MustNew().Compile(ctx, records, catalog).
func Compile(ctx context.Context, records []route.Record, catalog Catalog) (*Plan, *Report, error) {
	return MustNew().Compile(ctx, records, catalog)
}

// checkDuplicates rejects repeated (method, path) keys up front, naming
// both offending routes. The perfect hash builder would also trip over
// them during placement, but by then the record context is gone.
func (c *Compiler) checkDuplicates(ctx context.Context, records []route.Record) error {
	_, span := c.tracer.Start(ctx, "dispatch.check_duplicates")
	defer span.End()

	dups := route.FindDuplicates(records)
	if len(dups) == 0 {
		return nil
	}

	d := dups[0]

	return &DuplicateRouteError{
		Method: records[d.First].Method,
		Path:   records[d.First].Path,
		First:  records[d.First],
		Second: records[d.Second],
	}
}

// buildGlobalTable constructs the perfect hash over combined
// "METHOD:path" keys. This is the table whose size and load factor the
// Report advertises, and whose slot layout external code generators
// consume.
func (c *Compiler) buildGlobalTable(ctx context.Context, records []route.Record) (*perfecthash.Table, error) {
	_, span := c.tracer.Start(ctx, "dispatch.build_global_table")
	defer span.End()

	keys := make([]string, len(records))
	for i, r := range records {
		keys[i] = r.Key()
	}

	table, err := perfecthash.BuildBounded(keys, c.growthLimit*len(keys))
	if err != nil {
		return nil, c.wrapHashError("global", len(keys), records, err)
	}

	if c.verify {
		if err := table.Verify(); err != nil {
			return nil, fmt.Errorf("dispatch: global table: %w", err)
		}
	}

	c.emit(DiagTableBuilt, "global perfect hash table built", map[string]any{
		"scope":       "global",
		"keys":        table.Len(),
		"table_size":  table.Size(),
		"load_factor": table.LoadFactor(),
	})
	span.SetAttributes(
		attribute.Int("dispatch.table_size", table.Size()),
		attribute.Float64("dispatch.load_factor", table.LoadFactor()),
	)

	return table, nil
}

// buildBuckets partitions records by method and builds each bucket's
// perfect hash over its path strings.
func (c *Compiler) buildBuckets(ctx context.Context, records []route.Record) ([]Bucket, error) {
	_, span := c.tracer.Start(ctx, "dispatch.bucketize")
	defer span.End()

	buckets := bucketize(records)

	for i := range buckets {
		b := &buckets[i]
		paths := bucketPaths(records, *b)

		table, err := perfecthash.BuildBounded(paths, c.growthLimit*len(paths))
		if err != nil {
			return nil, c.wrapHashError(b.Method, len(paths), records, err)
		}
		if c.verify {
			if err := table.Verify(); err != nil {
				return nil, fmt.Errorf("dispatch: %s bucket table: %w", b.Method, err)
			}
		}
		b.Table = table

		c.emit(DiagBucketCompiled, "method bucket compiled", map[string]any{
			"method":      b.Method,
			"routes":      len(b.Routes),
			"table_size":  table.Size(),
			"load_factor": table.LoadFactor(),
		})
	}

	span.SetAttributes(attribute.Int("dispatch.buckets", len(buckets)))

	return buckets, nil
}

// wrapHashError converts perfecthash failures into build errors with
// route context.
func (c *Compiler) wrapHashError(scope string, keys int, records []route.Record, err error) error {
	var dup *perfecthash.DuplicateKeyError
	if errors.As(err, &dup) {
		// Should be unreachable behind checkDuplicates; kept so a caller
		// of the lower layers still gets a route-shaped error.
		return &DuplicateRouteError{
			Method: records[dup.First].Method,
			Path:   records[dup.First].Path,
			First:  records[dup.First],
			Second: records[dup.Second],
		}
	}

	return &HashGenerationError{Scope: scope, Keys: keys, err: err}
}

// link resolves every distinct handler identifier once and reports the
// unresolved ones.
func (c *Compiler) link(ctx context.Context, records []route.Record, catalog Catalog) (map[string]Binding, []UnresolvedHandler) {
	_, span := c.tracer.Start(ctx, "dispatch.link_handlers")
	defer span.End()

	bindings := make(map[string]Binding, len(records))
	var unresolved []UnresolvedHandler

	for _, r := range records {
		binding, done := bindings[r.HandlerID]
		if !done {
			binding = c.linker.Resolve(r.HandlerID, catalog)
			bindings[r.HandlerID] = binding
		}

		if !binding.Resolved {
			unresolved = append(unresolved, UnresolvedHandler{
				HandlerID: r.HandlerID,
				Method:    r.Method,
				Path:      r.Path,
			})
			c.emit(DiagHandlerUnresolved, "handler identifier not found in catalog", map[string]any{
				"handler": r.HandlerID,
				"method":  r.Method,
				"path":    r.Path,
			})
		}
	}

	span.SetAttributes(attribute.Int("dispatch.unresolved", len(unresolved)))

	return bindings, unresolved
}

// generatePlan renders the ordered evaluation structure: ascending slot
// order within each bucket, buckets in bucketizer order. The plan is an
// ordinary ordered list; no backward construction is needed to honor
// the evaluation contract.
func (c *Compiler) generatePlan(ctx context.Context, records []route.Record, buckets []Bucket, bindings map[string]Binding) *Plan {
	_, span := c.tracer.Start(ctx, "dispatch.generate_plan")
	defer span.End()

	plan := &Plan{
		buckets: make([]planBucket, 0, len(buckets)),
	}

	for _, b := range buckets {
		pb := planBucket{
			method: b.Method,
			steps:  make([]planStep, 0, len(b.Routes)),
		}

		for slot := range b.Table.Size() {
			local := b.Table.KeyIndex(slot)
			if local < 0 {
				continue
			}

			rec := records[b.Routes[local]]
			binding := bindings[rec.HandlerID]

			pb.steps = append(pb.steps, planStep{
				path:      rec.Path,
				handlerID: rec.HandlerID,
				handler:   binding.Handler, // nil when unresolved
				slot:      slot,
			})
			plan.steps = append(plan.steps, Step{
				Method:    b.Method,
				Path:      rec.Path,
				HandlerID: rec.HandlerID,
				Slot:      slot,
				Resolved:  binding.Resolved,
			})
		}

		plan.buckets = append(plan.buckets, pb)
	}

	return plan
}

// buildReport assembles the structured build record.
func (c *Compiler) buildReport(records []route.Record, global *perfecthash.Table, buckets []Bucket, unresolved []UnresolvedHandler) *Report {
	report := &Report{
		Routes:     len(records),
		TableSize:  global.Size(),
		LoadFactor: global.LoadFactor(),
		Unresolved: unresolved,
	}

	for slot := range global.Size() {
		idx := global.KeyIndex(slot)
		if idx < 0 {
			continue
		}
		rec := records[idx]
		report.Slots = append(report.Slots, SlotAssignment{
			Slot:      slot,
			Method:    rec.Method,
			Path:      rec.Path,
			HandlerID: rec.HandlerID,
		})
	}

	for _, b := range buckets {
		report.Buckets = append(report.Buckets, BucketReport{
			Method:     b.Method,
			Routes:     len(b.Routes),
			TableSize:  b.Table.Size(),
			LoadFactor: b.Table.LoadFactor(),
		})
	}

	return report
}

// buildStats converts a Report into the metrics package's measurement
// input.
func buildStats(r *Report) metrics.BuildStats {
	stats := metrics.BuildStats{
		Routes:     r.Routes,
		TableSize:  r.TableSize,
		LoadFactor: r.LoadFactor,
		Unresolved: len(r.Unresolved),
	}

	for _, b := range r.Buckets {
		stats.Buckets = append(stats.Buckets, metrics.BucketStats{
			Method:     b.Method,
			Routes:     b.Routes,
			TableSize:  b.TableSize,
			LoadFactor: b.LoadFactor,
		})
	}

	return stats
}
