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

import "log/slog"

// DiagnosticEvent represents a build-time diagnostic from the compiler.
// These are informational events describing what the build produced and
// any anomalies it tolerated (such as unresolved handlers).
//
// Diagnostic events are optional - the compiler functions correctly
// whether they are collected or not. The structured Report returned by
// Compile remains the authoritative record; events exist for streaming
// visibility into observability systems.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any // Structured context
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// Build progress diagnostics
	DiagTableBuilt     DiagnosticKind = "perfect_table_built"
	DiagBucketCompiled DiagnosticKind = "method_bucket_compiled"
	DiagPlanGenerated  DiagnosticKind = "dispatch_plan_generated"

	// Anomaly diagnostics
	DiagHandlerUnresolved DiagnosticKind = "handler_unresolved"
)

// DiagnosticHandler receives diagnostic events from the compiler.
// Implementations may log, emit metrics, trace events, or ignore them.
//
// This interface is optional - if not provided, diagnostics are silently
// dropped. The build's behavior is unchanged either way.
//
// Example with logging:
//
//	import "log/slog"
//
//	handler := dispatch.DiagnosticHandlerFunc(func(e dispatch.DiagnosticEvent) {
//	    slog.Info(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	c := dispatch.MustNew(dispatch.WithDiagnostics(handler))
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc is a function adapter for DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) {
	f(e)
}

// SlogDiagnostics returns a DiagnosticHandler that logs events to the
// provided slog.Logger. Anomaly events log at Warn, build progress at
// Debug. A nil logger yields a no-op handler.
func SlogDiagnostics(logger *slog.Logger) DiagnosticHandler {
	if logger == nil {
		return DiagnosticHandlerFunc(func(DiagnosticEvent) {})
	}

	return DiagnosticHandlerFunc(func(e DiagnosticEvent) {
		args := make([]any, 0, 2+2*len(e.Fields))
		args = append(args, "kind", string(e.Kind))
		for k, v := range e.Fields {
			args = append(args, k, v)
		}

		if e.Kind == DiagHandlerUnresolved {
			logger.Warn(e.Message, args...)

			return
		}
		logger.Debug(e.Message, args...)
	})
}

// emit delivers a diagnostic event if a handler is configured.
func (c *Compiler) emit(kind DiagnosticKind, message string, fields map[string]any) {
	if c.diagnostics == nil {
		return
	}
	c.diagnostics.OnDiagnostic(DiagnosticEvent{Kind: kind, Message: message, Fields: fields})
}
