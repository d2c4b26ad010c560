// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetricsContext(t *testing.T) {
	operation := "operation"
	subscriptionID := "subscriptionID"
	resourceGroup := "resourceGroup"
	resource := "lb"
	mc := NewMetricsContext(operation, subscriptionID, resourceGroup, resource)
	assert.WithinDuration(t, mc.start, time.Now(), 2*time.Second)
	assert.Equal(t, []string{operation, subscriptionID, resourceGroup, resource}, mc.labels)
}

func TestObserveRequest(t *testing.T) {
	failCountMeta := `
		# HELP azure_api_request_fail_count Number of failed Azure network API requests
		# TYPE azure_api_request_fail_count counter
`
	tests := []struct {
		name                 string
		succeeded            bool
		expectedFailCount    int
		expectedLatencyCount int
		expectedCounter      string
	}{
		{
			name:                 "should only record latency for successful request",
			succeeded:            true,
			expectedFailCount:    0,
			expectedLatencyCount: 1,
			expectedCounter:      "",
		},
		{
			name:                 "should count failed request",
			succeeded:            false,
			expectedFailCount:    1,
			expectedLatencyCount: 1,
			expectedCounter: `
			azure_api_request_fail_count{operation="GetLoadBalancer",resource="lb",resource_group="rg",subscription_id="subID"} 1
`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mc := NewMetricsContext("GetLoadBalancer", "subID", "rg", "lb")
			mc.ObserveRequest(test.succeeded)

			assert.Equal(t, test.expectedFailCount, testutil.CollectAndCount(AzureAPIRequestFailCount))
			assert.Equal(t, test.expectedLatencyCount, testutil.CollectAndCount(AzureAPIRequestLatency))
			assert.Nil(t, testutil.CollectAndCompare(AzureAPIRequestFailCount, strings.NewReader(failCountMeta+test.expectedCounter)))

			AzureAPIRequestFailCount.Reset()
			AzureAPIRequestLatency.Reset()
		})
	}
}

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	assert.NoError(t, Register(reg))
	assert.Error(t, Register(reg), "registering twice should fail")
}
