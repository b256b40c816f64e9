/*
Copyright IBM Corp. All Rights Reserved.
SPDX-License-Identifier: Apache-2.0
*/

package client

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc/codes"
)

const (
	metricsNamespace = "fabric"
	metricsSubsystem = "gateway_client"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// newMetrics creates request metrics and registers them with the supplied registerer, if any. Collectors already
// registered by another gateway sharing the registerer are reused.
func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "requests_total",
			Help:      "Number of requests made to the Gateway service, by method and gRPC status code.",
		},
		[]string{"method", "code"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "request_duration_seconds",
			Help:      "Duration of requests made to the Gateway service, by method.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	if registerer == nil {
		return &metrics{requests: requests, duration: duration}, nil
	}

	requests, err := register(registerer, requests)
	if err != nil {
		return nil, err
	}

	duration, err = register(registerer, duration)
	if err != nil {
		return nil, err
	}

	return &metrics{requests: requests, duration: duration}, nil
}

func register[T prometheus.Collector](registerer prometheus.Registerer, collector T) (T, error) {
	err := registerer.Register(collector)
	if err == nil {
		return collector, nil
	}

	var alreadyRegistered prometheus.AlreadyRegisteredError
	if errors.As(err, &alreadyRegistered) {
		if existing, ok := alreadyRegistered.ExistingCollector.(T); ok {
			return existing, nil
		}
	}

	var zero T
	return zero, err
}

func (m *metrics) observe(method string, code codes.Code, elapsed time.Duration) {
	m.requests.WithLabelValues(method, code.String()).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}
