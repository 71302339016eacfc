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
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

const (
	tellsCounterName             = "distributor.tells"
	asksCounterName              = "distributor.asks"
	unreachableCounterName       = "distributor.unreachable"
	requestTimeoutsCounterName   = "distributor.request.timeouts"
	requestFailuresCounterName   = "distributor.request.failures"
	requestDurationHistogramName = "distributor.request.duration"

	// DistributorAttributeKey is the attribute key carrying the group name
	DistributorAttributeKey = "distributor.name"
)

// DistributorMetrics defines the instruments recorded by group operations
type DistributorMetrics struct {
	// Tells counts messages handed to members through tell operations
	Tells metric.Int64Counter
	// Asks counts reply slots created through ask operations
	Asks metric.Int64Counter
	// Unreachable counts operations addressed to empty groups
	Unreachable metric.Int64Counter
	// RequestTimeouts counts requests that timed out before a reply
	RequestTimeouts metric.Int64Counter
	// RequestFailures counts requests that failed for any reason
	RequestFailures metric.Int64Counter
	// RequestDuration records request latency in milliseconds
	RequestDuration metric.Float64Histogram
}

// NewDistributorMetrics creates the distributor instruments with the given meter
func NewDistributorMetrics(meter metric.Meter) (*DistributorMetrics, error) {
	metrics := new(DistributorMetrics)
	var err error

	if metrics.Tells, err = meter.Int64Counter(
		tellsCounterName,
		metric.WithDescription("The total number of messages delivered through tell"),
	); err != nil {
		return nil, fmt.Errorf("failed to create tells count instrument, %w", err)
	}

	if metrics.Asks, err = meter.Int64Counter(
		asksCounterName,
		metric.WithDescription("The total number of reply slots created through ask"),
	); err != nil {
		return nil, fmt.Errorf("failed to create asks count instrument, %w", err)
	}

	if metrics.Unreachable, err = meter.Int64Counter(
		unreachableCounterName,
		metric.WithDescription("The total number of operations addressed to an empty group"),
	); err != nil {
		return nil, fmt.Errorf("failed to create unreachable count instrument, %w", err)
	}

	if metrics.RequestTimeouts, err = meter.Int64Counter(
		requestTimeoutsCounterName,
		metric.WithDescription("The total number of requests that timed out"),
	); err != nil {
		return nil, fmt.Errorf("failed to create request timeouts instrument, %w", err)
	}

	if metrics.RequestFailures, err = meter.Int64Counter(
		requestFailuresCounterName,
		metric.WithDescription("The total number of failed requests"),
	); err != nil {
		return nil, fmt.Errorf("failed to create request failures instrument, %w", err)
	}

	if metrics.RequestDuration, err = meter.Float64Histogram(
		requestDurationHistogramName,
		metric.WithDescription("The latency of requests in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, fmt.Errorf("failed to create request latency instrument, %w", err)
	}

	return metrics, nil
}
