// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	AzureAPIRequestFailCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "azure_api_request_fail_count",
			Help: "Number of failed Azure network API requests",
		},
		[]string{"operation", "subscription_id", "resource_group", "resource"},
	)

	AzureAPIRequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "azure_api_request_latency",
			Help:    "Latency of Azure network API requests",
			Buckets: []float64{0.1, 0.2, 0.5, 1, 5, 10, 15, 20, 30, 40, 50, 60, 100, 200, 300, 600, 1200}, // seconds
		},
		[]string{"operation", "subscription_id", "resource_group"},
	)
)

// Register adds the request metrics to reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{AzureAPIRequestFailCount, AzureAPIRequestLatency} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

type MetricsContext struct {
	start  time.Time
	labels []string
}

func NewMetricsContext(operation, subscriptionID, resourceGroup, resource string) *MetricsContext {
	return &MetricsContext{
		start:  time.Now(),
		labels: []string{operation, subscriptionID, resourceGroup, resource},
	}
}

func (mc *MetricsContext) ObserveRequest(succeeded bool) {
	if !succeeded {
		AzureAPIRequestFailCount.WithLabelValues(mc.labels...).Inc()
	}
	latency := time.Since(mc.start).Seconds()
	mc.observe(latency)
}

func (mc *MetricsContext) observe(latency float64) {
	// trim the last "resource" label
	AzureAPIRequestLatency.WithLabelValues(mc.labels[:3]...).Observe(latency)
}
