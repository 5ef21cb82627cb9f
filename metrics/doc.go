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

// Package metrics records dispatch build statistics through
// OpenTelemetry.
//
// Builds happen once, at compile time, so the instruments here describe
// build outcomes rather than request traffic: builds completed, routes
// per build, achieved table sizes and load factors per method bucket,
// and unresolved handler counts.
//
// # Providers
//
// Three exporters are supported:
//
//   - Prometheus (default): metrics are registered on a private
//     Prometheus registry; mount Handler() wherever the hosting process
//     serves /metrics.
//   - OTLP HTTP: push to an OpenTelemetry collector.
//   - Stdout: periodic JSON dumps, for development and tests.
//
// # Usage
//
//	rec, err := metrics.New(metrics.WithStdout())
//	if err != nil {
//	    return err
//	}
//	defer rec.Shutdown(context.Background())
//
//	c := dispatch.MustNew(dispatch.WithMetrics(rec))
//
// By default this package does NOT set the global OpenTelemetry meter
// provider; use WithGlobalMeterProvider for that. Multiple Recorder
// instances can coexist in one process.
package metrics
