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
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	promclient "github.com/prometheus/client_golang/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Provider represents the available metrics providers.
type Provider string

const (
	// PrometheusProvider uses the Prometheus exporter (default).
	PrometheusProvider Provider = "prometheus"
	// OTLPProvider uses the OTLP HTTP exporter.
	OTLPProvider Provider = "otlp"
	// StdoutProvider uses the stdout exporter (development/testing).
	StdoutProvider Provider = "stdout"
)

// EventType represents the severity of an internal operational event.
type EventType int

const (
	// EventError indicates an error event (e.g., exporter failure).
	EventError EventType = iota
	// EventWarning indicates a warning event.
	EventWarning
	// EventInfo indicates an informational event.
	EventInfo
	// EventDebug indicates a debug event.
	EventDebug
)

// Event represents an internal operational event from the metrics
// package.
type Event struct {
	Type    EventType
	Message string
	Args    []any // slog-style key-value pairs
}

// EventHandler processes internal operational events. Implementations
// can log events, forward them to monitoring systems, or drop them.
type EventHandler func(Event)

// DefaultEventHandler returns an EventHandler that logs events to the
// provided slog.Logger. A nil logger yields a no-op handler.
func DefaultEventHandler(logger *slog.Logger) EventHandler {
	if logger == nil {
		return func(Event) {}
	}

	return func(e Event) {
		switch e.Type {
		case EventError:
			logger.Error(e.Message, e.Args...)
		case EventWarning:
			logger.Warn(e.Message, e.Args...)
		case EventInfo:
			logger.Info(e.Message, e.Args...)
		case EventDebug:
			logger.Debug(e.Message, e.Args...)
		}
	}
}

// Recorder holds OpenTelemetry build-metrics configuration and state.
// All methods are safe for concurrent use.
//
// By default the Recorder does NOT set the global OpenTelemetry meter
// provider; use WithGlobalMeterProvider for global registration.
type Recorder struct {
	meter              metric.Meter
	meterProvider      metric.MeterProvider
	ownedProvider      *sdkmetric.MeterProvider // set when the provider is built here
	prometheusRegistry *promclient.Registry
	prometheusHandler  http.Handler
	eventHandler       EventHandler

	// Build instruments
	buildCount         metric.Int64Counter
	buildRoutes        metric.Int64Histogram
	tableSize          metric.Int64Histogram
	loadFactor         metric.Float64Histogram
	unresolvedHandlers metric.Int64Counter

	serviceName     string
	serviceNameAttr attribute.KeyValue
	otlpEndpoint    string
	exportInterval  time.Duration

	provider            Provider
	providerSetCount    int
	customMeterProvider bool
	registerGlobal      bool
}

// New creates a new [Recorder] with the given options.
// Returns an error if the metrics provider fails to initialize.
// For a version that panics on error, use [MustNew].
func New(opts ...Option) (*Recorder, error) {
	r := newDefaultRecorder()

	for _, opt := range opts {
		opt(r)
	}

	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	r.serviceNameAttr = attribute.String("service.name", r.serviceName)

	if err := r.initializeProvider(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	return r, nil
}

// MustNew is like New but panics on error. Intended for initialization
// paths where a broken metrics configuration should stop the build tool
// outright.
func MustNew(opts ...Option) *Recorder {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return r
}

// newDefaultRecorder creates a Recorder with default values.
func newDefaultRecorder() *Recorder {
	return &Recorder{
		serviceName:    "rivaas-dispatch",
		provider:       PrometheusProvider,
		exportInterval: 30 * time.Second,
		eventHandler:   func(Event) {},
	}
}

// validate checks that the configuration is consistent.
func (r *Recorder) validate() error {
	if r.providerSetCount > 1 {
		return fmt.Errorf("conflicting provider options: only one of WithPrometheus, WithOTLP, or WithStdout can be used")
	}
	if r.serviceName == "" {
		return fmt.Errorf("service name cannot be empty")
	}
	if r.exportInterval <= 0 {
		return fmt.Errorf("export interval must be positive")
	}
	if r.customMeterProvider && r.meterProvider == nil {
		return fmt.Errorf("custom meter provider is nil")
	}

	return nil
}

// Handler returns the Prometheus scrape handler, or nil when the
// recorder does not use the Prometheus provider. The hosting process
// decides where (and whether) to mount it; this package never starts a
// server of its own.
func (r *Recorder) Handler() http.Handler {
	return r.prometheusHandler
}

// Shutdown flushes and stops the underlying meter provider if the
// Recorder created it. Providers supplied via WithMeterProvider belong
// to the caller and are left untouched.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r.ownedProvider == nil {
		return nil
	}

	return r.ownedProvider.Shutdown(ctx)
}

// emitDebug sends a debug event to the configured event handler.
func (r *Recorder) emitDebug(msg string, args ...any) {
	r.eventHandler(Event{Type: EventDebug, Message: msg, Args: args})
}
