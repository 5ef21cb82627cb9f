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
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Option defines functional options for Recorder configuration.
type Option func(*Recorder)

// WithMeterProvider supplies a custom OpenTelemetry [metric.MeterProvider].
// Provider options (WithPrometheus, WithOTLP, WithStdout) are ignored
// when set, since the caller manages the provider lifecycle. The global
// meter provider is not touched unless WithGlobalMeterProvider is also
// given.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(r *Recorder) {
		r.meterProvider = provider
		r.customMeterProvider = true
	}
}

// WithGlobalMeterProvider registers the meter provider as the global
// OpenTelemetry meter provider via otel.SetMeterProvider().
func WithGlobalMeterProvider() Option {
	return func(r *Recorder) {
		r.registerGlobal = true
	}
}

// WithPrometheus selects the Prometheus exporter (the default). Metrics
// land on a private registry exposed through [Recorder.Handler].
func WithPrometheus() Option {
	return func(r *Recorder) {
		r.provider = PrometheusProvider
		r.providerSetCount++
	}
}

// WithOTLP selects the OTLP HTTP exporter pushing to endpoint.
// An "http://" prefix switches the exporter to insecure transport;
// an empty endpoint defers to the OTEL_EXPORTER_OTLP_ENDPOINT
// environment variable.
func WithOTLP(endpoint string) Option {
	return func(r *Recorder) {
		r.provider = OTLPProvider
		r.otlpEndpoint = endpoint
		r.providerSetCount++
	}
}

// WithStdout selects the stdout exporter. Useful in development and in
// tests that want to observe exports without infrastructure.
func WithStdout() Option {
	return func(r *Recorder) {
		r.provider = StdoutProvider
		r.providerSetCount++
	}
}

// WithServiceName sets the service.name resource attribute recorded on
// every measurement.
func WithServiceName(name string) Option {
	return func(r *Recorder) {
		r.serviceName = name
	}
}

// WithExportInterval sets the export interval for the OTLP and stdout
// providers. Prometheus is pull-based and ignores it.
func WithExportInterval(interval time.Duration) Option {
	return func(r *Recorder) {
		r.exportInterval = interval
	}
}

// WithEventHandler sets a handler for internal operational events.
func WithEventHandler(handler EventHandler) Option {
	return func(r *Recorder) {
		if handler != nil {
			r.eventHandler = handler
		}
	}
}

// WithLogger routes internal operational events to a slog.Logger.
// Shorthand for WithEventHandler(DefaultEventHandler(logger)).
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) {
		r.eventHandler = DefaultEventHandler(logger)
	}
}
