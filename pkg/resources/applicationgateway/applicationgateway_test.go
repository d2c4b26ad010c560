// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package applicationgateway

import (
	"context"
	"errors"
	"reflect"
	"testing"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-network-fluent/pkg/azureclients/applicationgatewayclient/mockapplicationgatewayclient"
	"github.com/Azure/azure-network-fluent/pkg/enums"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

const (
	testAppGwID = "/subscriptions/testSub/resourceGroups/testRG/providers/Microsoft.Network/applicationGateways/appgw"
	testPoolID  = testAppGwID + "/backendAddressPools/pool"
)

func getTestAppGw() *network.ApplicationGateway {
	return &network.ApplicationGateway{
		ID:       to.Ptr(testAppGwID),
		Name:     to.Ptr("appgw"),
		Location: to.Ptr("eastus"),
		Properties: &network.ApplicationGatewayPropertiesFormat{
			SKU: &network.ApplicationGatewaySKU{
				Name:     to.Ptr(network.ApplicationGatewaySKUNameStandardV2),
				Tier:     to.Ptr(network.ApplicationGatewayTierStandardV2),
				Capacity: to.Ptr[int32](2),
			},
			OperationalState: to.Ptr(network.ApplicationGatewayOperationalStateRunning),
			BackendAddressPools: []*network.ApplicationGatewayBackendAddressPool{
				{Name: to.Ptr("pool"), ID: to.Ptr(testPoolID)},
			},
		},
	}
}

func getTestBackendHealth() *network.ApplicationGatewayBackendHealth {
	return &network.ApplicationGatewayBackendHealth{
		BackendAddressPools: []*network.ApplicationGatewayBackendHealthPool{
			{
				BackendAddressPool: &network.ApplicationGatewayBackendAddressPool{ID: to.Ptr(testPoolID)},
				BackendHTTPSettingsCollection: []*network.ApplicationGatewayBackendHealthHTTPSettings{
					{
						BackendHTTPSettings: &network.ApplicationGatewayBackendHTTPSettings{
							ID: to.Ptr(testAppGwID + "/backendHttpSettingsCollection/http"),
						},
						Servers: []*network.ApplicationGatewayBackendHealthServer{
							{Address: to.Ptr("10.0.0.4"), Health: to.Ptr(network.ApplicationGatewayBackendHealthServerHealthUp)},
							{Address: to.Ptr("10.0.0.5"), Health: to.Ptr(network.ApplicationGatewayBackendHealthServerHealth("Unhealthy")), HealthProbeLog: to.Ptr("timeout")},
						},
					},
				},
			},
		},
	}
}

func newTestEntry(t *testing.T) (*mockapplicationgatewayclient.MockInterface, ApplicationGateways) {
	ctrl := gomock.NewController(t)
	client := mockapplicationgatewayclient.NewMockInterface(ctrl)
	return client, New(client, "testSub")
}

func TestEntryPointCapabilities(t *testing.T) {
	_, ags := newTestEntry(t)
	entryType := reflect.TypeOf(ags)
	for _, method := range []string{"Define", "CreateAll"} {
		_, ok := entryType.MethodByName(method)
		assert.False(t, ok, method)
	}
	var entry any = ags
	_, ok := entry.(fluent.SupportsBatchDeletion)
	assert.True(t, ok)
}

func TestGetApplicationGateway(t *testing.T) {
	client, ags := newTestEntry(t)
	client.EXPECT().Get(gomock.Any(), "testRG", "appgw").Return(getTestAppGw(), nil)

	ag, err := ags.GetByID(context.Background(), testAppGwID)
	require.NoError(t, err)
	assert.Equal(t, "Standard_v2", ag.Sku())
	assert.Equal(t, "Standard_v2", ag.Tier())
	assert.Equal(t, int32(2), ag.Capacity())
	assert.Same(t, enums.ApplicationGatewayOperationalStateRunning, ag.OperationalState())
	assert.Equal(t, []string{"pool"}, ag.BackendPoolNames())
}

func TestCheckBackendHealth(t *testing.T) {
	client, ags := newTestEntry(t)
	client.EXPECT().Get(gomock.Any(), "testRG", "appgw").Return(getTestAppGw(), nil)
	client.EXPECT().BackendHealth(gomock.Any(), "testRG", "appgw").Return(getTestBackendHealth(), nil)

	ag, err := ags.GetByResourceGroup(context.Background(), "testRG", "appgw")
	require.NoError(t, err)
	health, err := ag.CheckBackendHealth(context.Background())
	require.NoError(t, err)

	require.Contains(t, health, "pool")
	pool := health["pool"]
	assert.Equal(t, "pool", pool.Name())
	assert.Equal(t, testPoolID, pool.BackendAddressPoolID())
	assert.Equal(t, ag, pool.Parent())

	configs := pool.HTTPConfigurationHealths()
	require.Contains(t, configs, "http")
	config := configs["http"]
	assert.Equal(t, pool, config.Parent())

	servers := config.ServerHealths()
	require.Len(t, servers, 2)
	up := servers["10.0.0.4"]
	assert.Equal(t, "10.0.0.4", up.IPAddress())
	assert.Same(t, enums.ApplicationGatewayBackendHealthStatusUp, up.Status())
	assert.Equal(t, config, up.Parent())

	unhealthy := servers["10.0.0.5"]
	assert.Equal(t, "timeout", unhealthy.HealthProbeLog())
	assert.Equal(t, "Unhealthy", unhealthy.Status().String())
	for _, known := range []enums.ApplicationGatewayBackendHealthStatus{
		enums.ApplicationGatewayBackendHealthStatusUp,
		enums.ApplicationGatewayBackendHealthStatusDown,
		enums.ApplicationGatewayBackendHealthStatusPartial,
		enums.ApplicationGatewayBackendHealthStatusDraining,
		enums.ApplicationGatewayBackendHealthStatusUnknown,
	} {
		assert.NotSame(t, known, unhealthy.Status())
	}
	assert.Same(t, enums.ApplicationGatewayBackendHealthStatusFromString("Unhealthy"), unhealthy.Status())
}

func TestStartStop(t *testing.T) {
	client, ags := newTestEntry(t)
	testErr := errors.New("test error")
	client.EXPECT().Get(gomock.Any(), "testRG", "appgw").Return(getTestAppGw(), nil)
	client.EXPECT().Start(gomock.Any(), "testRG", "appgw").Return(nil)
	client.EXPECT().Stop(gomock.Any(), "testRG", "appgw").Return(testErr)

	ag, err := ags.GetByResourceGroup(context.Background(), "testRG", "appgw")
	require.NoError(t, err)
	assert.NoError(t, ag.Start(context.Background()))
	assert.Equal(t, testErr, ag.Stop(context.Background()))
}

func TestListAndDeleteApplicationGateways(t *testing.T) {
	client, ags := newTestEntry(t)
	client.EXPECT().ListAll(gomock.Any()).Return([]*network.ApplicationGateway{getTestAppGw()}, nil)
	client.EXPECT().List(gomock.Any(), "testRG").Return(nil, nil)
	client.EXPECT().Delete(gomock.Any(), "testRG", "appgw").Return(nil)

	all, err := ags.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
	inGroup, err := ags.ListByResourceGroup(context.Background(), "testRG")
	require.NoError(t, err)
	assert.Empty(t, inGroup)
	assert.NoError(t, ags.DeleteByIDs(context.Background(), testAppGwID))
}
