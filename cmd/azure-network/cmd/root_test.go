// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-network-fluent/pkg/azureclients"
	"github.com/Azure/azure-network-fluent/pkg/config"
	"github.com/Azure/azure-network-fluent/pkg/networkmanager"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

const (
	testLBID   = "/subscriptions/testSub/resourceGroups/testRG/providers/Microsoft.Network/loadBalancers/lb"
	testNSGID  = "/subscriptions/testSub/resourceGroups/testRG/providers/Microsoft.Network/networkSecurityGroups/nsg"
	testVnetID = "/subscriptions/testSub/resourceGroups/testRG/providers/Microsoft.Network/virtualNetworks/vnet"
)

func runCommand(t *testing.T, args ...string) (*azureclients.MockAzureClientsFactory, func() (string, error)) {
	ctrl := gomock.NewController(t)
	factory := azureclients.NewMockAzureClientsFactory(ctrl)
	return factory, func() (string, error) {
		resourceGroupName, resourceID, resourceIDs = "", "", nil
		inspectResourceGroupName, usageRegion, outputFormat = "", "", "yaml"
		listAll, metricsFile = false, ""
		for _, c := range append(rootCmd.Commands(), rootCmd) {
			c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
		}
		newNetworkManager = func(cfg *config.CloudConfig) (*networkmanager.NetworkManager, error) {
			return networkmanager.CreateNetworkManager(cfg, factory)
		}
		buf := new(bytes.Buffer)
		rootCmd.SetOut(buf)
		rootCmd.SetErr(io.Discard)
		rootCmd.SetArgs(args)
		err := rootCmd.ExecuteContext(context.Background())
		return buf.String(), err
	}
}

func TestListCommand(t *testing.T) {
	factory, run := runCommand(t, "list", "vnet", "-g", "testRG", "-o", "json")
	factory.VirtualNetworks.EXPECT().List(gomock.Any(), "testRG").Return([]*network.VirtualNetwork{
		{ID: to.Ptr(testVnetID), Name: to.Ptr("vnet")},
	}, nil)
	out, err := run()
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "vnet"`)
}

func TestListCommandResourceGroupScope(t *testing.T) {
	tests := []struct {
		desc          string
		args          []string
		resourceGroup string
	}{
		{
			desc:          "configured resource group is the default",
			args:          []string{"list", "vnet"},
			resourceGroup: "configRG",
		},
		{
			desc:          "flag overrides the configured resource group",
			args:          []string{"list", "vnet", "-g", "testRG"},
			resourceGroup: "testRG",
		},
		{
			desc: "all lists the subscription",
			args: []string{"list", "vnet", "--all"},
		},
	}
	for i, test := range tests {
		t.Setenv("AZURE_NETWORK_RESOURCEGROUP", "configRG")
		factory, run := runCommand(t, test.args...)
		vnets := []*network.VirtualNetwork{{ID: to.Ptr(testVnetID), Name: to.Ptr("vnet")}}
		if test.resourceGroup != "" {
			factory.VirtualNetworks.EXPECT().List(gomock.Any(), test.resourceGroup).Return(vnets, nil)
		} else {
			factory.VirtualNetworks.EXPECT().ListAll(gomock.Any()).Return(vnets, nil)
		}
		out, err := run()
		require.NoError(t, err, "TestCase[%d]: %s", i, test.desc)
		assert.Contains(t, out, "name: vnet", "TestCase[%d]: %s", i, test.desc)
	}
}

func TestListCommandErrors(t *testing.T) {
	tests := []struct {
		desc        string
		args        []string
		expectedErr string
	}{
		{
			desc:        "unknown kind",
			args:        []string{"list", "disks"},
			expectedErr: `unknown resource kind "disks"`,
		},
		{
			desc:        "virtual network gateways need a resource group",
			args:        []string{"list", "vng"},
			expectedErr: "can only be listed by resource group",
		},
		{
			desc:        "all conflicts with an explicit resource group",
			args:        []string{"list", "vnet", "--all", "-g", "testRG"},
			expectedErr: "none of the others can be",
		},
		{
			desc:        "unsupported output format",
			args:        []string{"list", "lb", "-o", "table"},
			expectedErr: `unsupported output format "table"`,
		},
	}
	for i, test := range tests {
		_, run := runCommand(t, test.args...)
		_, err := run()
		require.Error(t, err, "TestCase[%d]: %s", i, test.desc)
		assert.Contains(t, err.Error(), test.expectedErr, "TestCase[%d]: %s", i, test.desc)
	}
}

func TestMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.prom")
	factory, run := runCommand(t, "get", "--id", testLBID, "--metrics-file", path)
	factory.LoadBalancers.EXPECT().Get(gomock.Any(), "testRG", "lb", gomock.Any()).Return(&network.LoadBalancer{
		ID:   to.Ptr(testLBID),
		Name: to.Ptr("lb"),
	}, nil)
	_, err := run()
	require.NoError(t, err)

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(out), "# TYPE azure_api_request_latency histogram")
	assert.Contains(t, string(out), `resource_group="testRG"`)
}

func TestGetCommand(t *testing.T) {
	factory, run := runCommand(t, "get", "--id", testLBID)
	factory.LoadBalancers.EXPECT().Get(gomock.Any(), "testRG", "lb", gomock.Any()).Return(&network.LoadBalancer{
		ID:   to.Ptr(testLBID),
		Name: to.Ptr("lb"),
	}, nil)
	out, err := run()
	require.NoError(t, err)
	assert.Contains(t, out, "name: lb")
}

func TestDeleteCommand(t *testing.T) {
	factory, run := runCommand(t, "delete", "--id", testLBID, "--id", testNSGID)
	factory.LoadBalancers.EXPECT().Delete(gomock.Any(), "testRG", "lb").Return(nil)
	factory.SecurityGroups.EXPECT().Delete(gomock.Any(), "testRG", "nsg").Return(nil)
	_, err := run()
	assert.NoError(t, err)
}

func TestUsagesCommand(t *testing.T) {
	factory, run := runCommand(t, "usages", "--region", "westus")
	factory.Usages.EXPECT().List(gomock.Any(), "westus").Return([]*network.Usage{
		{
			Name:         &network.UsageName{Value: to.Ptr("VirtualNetworks")},
			Unit:         to.Ptr(network.UsageUnitCount),
			CurrentValue: to.Ptr[int64](1),
			Limit:        to.Ptr[int64](50),
		},
	}, nil)
	out, err := run()
	require.NoError(t, err)
	assert.Contains(t, out, "name: VirtualNetworks")
	assert.Contains(t, out, "unit: Count")
	assert.Contains(t, out, "limit: 50")
}

func TestBackendHealthCommand(t *testing.T) {
	factory, run := runCommand(t, "backend-health", "-g", "testRG", "--name", "appgw")
	factory.ApplicationGateways.EXPECT().Get(gomock.Any(), "testRG", "appgw").Return(&network.ApplicationGateway{
		ID:   to.Ptr("/subscriptions/testSub/resourceGroups/testRG/providers/Microsoft.Network/applicationGateways/appgw"),
		Name: to.Ptr("appgw"),
	}, nil)
	factory.ApplicationGateways.EXPECT().BackendHealth(gomock.Any(), "testRG", "appgw").Return(&network.ApplicationGatewayBackendHealth{
		BackendAddressPools: []*network.ApplicationGatewayBackendHealthPool{
			{
				BackendAddressPool: &network.ApplicationGatewayBackendAddressPool{Name: to.Ptr("pool")},
				BackendHTTPSettingsCollection: []*network.ApplicationGatewayBackendHealthHTTPSettings{
					{
						BackendHTTPSettings: &network.ApplicationGatewayBackendHTTPSettings{Name: to.Ptr("http")},
						Servers: []*network.ApplicationGatewayBackendHealthServer{
							{Address: to.Ptr("10.0.0.4"), Health: to.Ptr(network.ApplicationGatewayBackendHealthServerHealthDown)},
						},
					},
				},
			},
		},
	}, nil)
	out, err := run()
	require.NoError(t, err)
	assert.Contains(t, out, "pool:")
	assert.Contains(t, out, "http:")
	assert.Contains(t, out, ": Down")
}
