/*
 * MIT License
 *
 * Copyright (c) 2022-2025  Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func TestTelemetry(t *testing.T) {
	t.Run("With global providers", func(t *testing.T) {
		tel := New()
		require.NotNil(t, tel)
		globalTracer := otel.GetTracerProvider()
		globalMeterProvider := otel.GetMeterProvider()

		assert.Equal(t, globalTracer, tel.TraceProvider())
		assert.Equal(t, globalTracer.Tracer(instrumentationName,
			trace.WithInstrumentationVersion(Version())), tel.Tracer())

		assert.Equal(t, globalMeterProvider, tel.MeterProvider())
		assert.Equal(t, globalMeterProvider.Meter(instrumentationName,
			metric.WithInstrumentationVersion(Version())), tel.Meter())
	})
	t.Run("With options", func(t *testing.T) {
		tracerProvider := tracenoop.NewTracerProvider()
		meterProvider := noop.NewMeterProvider()

		tel := New(WithTracerProvider(tracerProvider), WithMeterProvider(meterProvider))
		assert.Equal(t, tracerProvider, tel.TraceProvider())
		assert.Equal(t, meterProvider, tel.MeterProvider())
		assert.NotNil(t, tel.Tracer())
		assert.NotNil(t, tel.Meter())
	})
}

func TestDistributorMetrics(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })

	tel := New(WithMeterProvider(provider))
	metrics, err := NewDistributorMetrics(tel.Meter())
	require.NoError(t, err)
	require.NotNil(t, metrics)

	metrics.Tells.Add(ctx, 2)
	metrics.Asks.Add(ctx, 1)
	metrics.Unreachable.Add(ctx, 1)
	metrics.RequestTimeouts.Add(ctx, 1)
	metrics.RequestFailures.Add(ctx, 3)
	metrics.RequestDuration.Record(ctx, 12.5)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	names := make(map[string]metricdata.Aggregation)
	for _, m := range rm.ScopeMetrics[0].Metrics {
		names[m.Name] = m.Data
	}

	require.Contains(t, names, tellsCounterName)
	require.Contains(t, names, asksCounterName)
	require.Contains(t, names, unreachableCounterName)
	require.Contains(t, names, requestTimeoutsCounterName)
	require.Contains(t, names, requestFailuresCounterName)
	require.Contains(t, names, requestDurationHistogramName)

	tells, ok := names[tellsCounterName].(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, tells.DataPoints, 1)
	assert.EqualValues(t, 2, tells.DataPoints[0].Value)

	failures, ok := names[requestFailuresCounterName].(metricdata.Sum[int64])
	require.True(t, ok)
	assert.EqualValues(t, 3, failures.DataPoints[0].Value)
}
