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

package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys for build measurements. The "scope" attribute carries
// either a method bucket name (GET, POST, ...) or scopeGlobal for the
// combined method:path table.
const (
	attrScope   = "dispatch.table.scope"
	scopeGlobal = "global"
)

// BuildStats is the measurement input for one completed build. The
// dispatch package converts its Report into this shape; keeping a local
// type avoids a dependency back onto the compiler.
type BuildStats struct {
	Routes     int
	TableSize  int
	LoadFactor float64
	Unresolved int
	Buckets    []BucketStats
}

// BucketStats describes one method bucket's compiled table.
type BucketStats struct {
	Method     string
	Routes     int
	TableSize  int
	LoadFactor float64
}

// initializeInstruments creates the build instruments on the meter.
func (r *Recorder) initializeInstruments() error {
	var err error

	r.buildCount, err = r.meter.Int64Counter(
		"dispatch.build.count",
		metric.WithDescription("Completed dispatch plan builds"),
		metric.WithUnit("{build}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create build counter: %w", err)
	}

	r.buildRoutes, err = r.meter.Int64Histogram(
		"dispatch.build.routes",
		metric.WithDescription("Routes per build"),
		metric.WithUnit("{route}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create routes histogram: %w", err)
	}

	r.tableSize, err = r.meter.Int64Histogram(
		"dispatch.build.table_size",
		metric.WithDescription("Achieved perfect hash table size, per scope"),
		metric.WithUnit("{slot}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create table size histogram: %w", err)
	}

	r.loadFactor, err = r.meter.Float64Histogram(
		"dispatch.build.load_factor",
		metric.WithDescription("Achieved perfect hash load factor, per scope"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create load factor histogram: %w", err)
	}

	r.unresolvedHandlers, err = r.meter.Int64Counter(
		"dispatch.build.unresolved_handlers",
		metric.WithDescription("Handler identifiers with no catalog match"),
		metric.WithUnit("{handler}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create unresolved handlers counter: %w", err)
	}

	return nil
}

// RecordBuild records the measurements for one completed build.
// Safe for concurrent use.
func (r *Recorder) RecordBuild(ctx context.Context, stats BuildStats) {
	r.buildCount.Add(ctx, 1, metric.WithAttributes(r.serviceNameAttr))
	r.buildRoutes.Record(ctx, int64(stats.Routes), metric.WithAttributes(r.serviceNameAttr))

	globalAttrs := metric.WithAttributes(r.serviceNameAttr, attribute.String(attrScope, scopeGlobal))
	r.tableSize.Record(ctx, int64(stats.TableSize), globalAttrs)
	r.loadFactor.Record(ctx, stats.LoadFactor, globalAttrs)

	for _, b := range stats.Buckets {
		attrs := metric.WithAttributes(r.serviceNameAttr, attribute.String(attrScope, b.Method))
		r.tableSize.Record(ctx, int64(b.TableSize), attrs)
		r.loadFactor.Record(ctx, b.LoadFactor, attrs)
	}

	if stats.Unresolved > 0 {
		r.unresolvedHandlers.Add(ctx, int64(stats.Unresolved), metric.WithAttributes(r.serviceNameAttr))
	}
}
