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

package actor

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/tochemey/distributor/log"
	"github.com/tochemey/distributor/telemetry"
)

// distributorMetrics records the distributor instruments.
// A nil receiver or nil instruments record nothing.
type distributorMetrics struct {
	instruments *telemetry.DistributorMetrics
}

// newDistributorMetrics registers the distributor instruments.
// A registration failure is logged and disables the metrics.
func newDistributorMetrics(tel *telemetry.Telemetry, logger log.Logger) *distributorMetrics {
	instruments, err := telemetry.NewDistributorMetrics(tel.Meter())
	if err != nil {
		logger.Errorf("Failed to register distributor metrics: %v", err)
		return &distributorMetrics{}
	}
	return &distributorMetrics{instruments: instruments}
}

func (x *distributorMetrics) enabled() bool {
	return x != nil && x.instruments != nil
}

func attributes(name string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String(telemetry.DistributorAttributeKey, name))
}

func (x *distributorMetrics) tells(ctx context.Context, name string, count int) {
	if x.enabled() && count > 0 {
		x.instruments.Tells.Add(ctx, int64(count), attributes(name))
	}
}

func (x *distributorMetrics) asks(ctx context.Context, name string, count int) {
	if x.enabled() && count > 0 {
		x.instruments.Asks.Add(ctx, int64(count), attributes(name))
	}
}

func (x *distributorMetrics) unreachable(ctx context.Context, name string) {
	if x.enabled() {
		x.instruments.Unreachable.Add(ctx, 1, attributes(name))
	}
}

func (x *distributorMetrics) requestTimeout(ctx context.Context, name string) {
	if x.enabled() {
		x.instruments.RequestTimeouts.Add(ctx, 1, attributes(name))
	}
}

func (x *distributorMetrics) requestFailure(ctx context.Context, name string) {
	if x.enabled() {
		x.instruments.RequestFailures.Add(ctx, 1, attributes(name))
	}
}

func (x *distributorMetrics) requestDuration(ctx context.Context, name string, duration time.Duration) {
	if x.enabled() {
		x.instruments.RequestDuration.Record(ctx, float64(duration)/float64(time.Millisecond), attributes(name))
	}
}
