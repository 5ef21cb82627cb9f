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
	"strings"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// instrumentationScope names the meter for all build instruments.
const instrumentationScope = "rivaas.dev/dispatch/metrics"

// initializeProvider initializes the metrics provider based on
// configuration.
func (r *Recorder) initializeProvider() error {
	if r.customMeterProvider {
		r.emitDebug("Using custom user-provided meter provider")
		r.meter = r.meterProvider.Meter(instrumentationScope)

		return r.initializeInstruments()
	}

	switch r.provider {
	case PrometheusProvider:
		return r.initPrometheusProvider()
	case OTLPProvider:
		return r.initOTLPProvider()
	case StdoutProvider:
		return r.initStdoutProvider()
	default:
		return fmt.Errorf("unsupported metrics provider: %s", r.provider)
	}
}

// initPrometheusProvider initializes the Prometheus metrics provider.
func (r *Recorder) initPrometheusProvider() error {
	// Private registry avoids conflicts with the global Prometheus
	// registry when several recorders coexist
	r.prometheusRegistry = promclient.NewRegistry()

	exporter, err := prometheus.New(
		prometheus.WithRegisterer(r.prometheusRegistry),
	)
	if err != nil {
		return fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}

	r.ownedProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	r.meterProvider = r.ownedProvider

	r.prometheusHandler = promhttp.HandlerFor(
		r.prometheusRegistry,
		promhttp.HandlerOpts{},
	)

	return r.finishProviderSetup("prometheus")
}

// initOTLPProvider initializes the OTLP HTTP metrics provider.
func (r *Recorder) initOTLPProvider() error {
	opts := []otlpmetrichttp.Option{}

	if r.otlpEndpoint != "" {
		endpoint := r.otlpEndpoint
		isHTTP := false

		if strings.HasPrefix(endpoint, "http://") {
			endpoint = strings.TrimPrefix(endpoint, "http://")
			isHTTP = true
		} else if strings.HasPrefix(endpoint, "https://") {
			endpoint = strings.TrimPrefix(endpoint, "https://")
		}

		if idx := strings.Index(endpoint, "/"); idx != -1 {
			endpoint = endpoint[:idx]
		}

		opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		if isHTTP {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
	}

	exporter, err := otlpmetrichttp.New(context.Background(), opts...)
	if err != nil {
		return fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	r.ownedProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(r.exportInterval),
		)),
	)
	r.meterProvider = r.ownedProvider

	return r.finishProviderSetup("otlp")
}

// initStdoutProvider initializes the stdout metrics provider.
func (r *Recorder) initStdoutProvider() error {
	exporter, err := stdoutmetric.New()
	if err != nil {
		return fmt.Errorf("failed to create stdout exporter: %w", err)
	}

	r.ownedProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(r.exportInterval),
		)),
	)
	r.meterProvider = r.ownedProvider

	return r.finishProviderSetup("stdout")
}

// finishProviderSetup applies the global registration policy, creates
// the meter, and initializes instruments.
func (r *Recorder) finishProviderSetup(name string) error {
	if r.registerGlobal {
		r.emitDebug("Setting global OpenTelemetry meter provider", "provider", name)
		otel.SetMeterProvider(r.meterProvider)
	} else {
		r.emitDebug("Skipping global meter provider registration", "provider", name)
	}

	r.meter = r.meterProvider.Meter(instrumentationScope)

	return r.initializeInstruments()
}
