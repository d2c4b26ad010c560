// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package azureclients

import (
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-network-fluent/pkg/azureclients/applicationgatewayclient"
	"github.com/Azure/azure-network-fluent/pkg/azureclients/applicationgatewayclient/mockapplicationgatewayclient"
	"github.com/Azure/azure-network-fluent/pkg/azureclients/loadbalancerclient"
	"github.com/Azure/azure-network-fluent/pkg/azureclients/loadbalancerclient/mockloadbalancerclient"
	"github.com/Azure/azure-network-fluent/pkg/azureclients/securitygroupclient"
	"github.com/Azure/azure-network-fluent/pkg/azureclients/securitygroupclient/mocksecuritygroupclient"
	"github.com/Azure/azure-network-fluent/pkg/azureclients/usageclient"
	"github.com/Azure/azure-network-fluent/pkg/azureclients/usageclient/mockusageclient"
	"github.com/Azure/azure-network-fluent/pkg/azureclients/virtualnetworkclient"
	"github.com/Azure/azure-network-fluent/pkg/azureclients/virtualnetworkclient/mockvirtualnetworkclient"
	"github.com/Azure/azure-network-fluent/pkg/azureclients/virtualnetworkgatewayclient"
	"github.com/Azure/azure-network-fluent/pkg/azureclients/virtualnetworkgatewayclient/mockvirtualnetworkgatewayclient"
	"github.com/Azure/azure-network-fluent/pkg/azureclients/watcherclient"
	"github.com/Azure/azure-network-fluent/pkg/azureclients/watcherclient/mockwatcherclient"
)

// MockAzureClientsFactory hands out one mock per client kind so that
// expectations set through the accessors reach the code under test.
type MockAzureClientsFactory struct {
	SubscriptionIDValue    string
	VirtualNetworks        *mockvirtualnetworkclient.MockInterface
	LoadBalancers          *mockloadbalancerclient.MockInterface
	SecurityGroups         *mocksecuritygroupclient.MockInterface
	Watchers               *mockwatcherclient.MockInterface
	ApplicationGateways    *mockapplicationgatewayclient.MockInterface
	VirtualNetworkGateways *mockvirtualnetworkgatewayclient.MockInterface
	Usages                 *mockusageclient.MockInterface
}

func NewMockAzureClientsFactory(ctrl *gomock.Controller) *MockAzureClientsFactory {
	return &MockAzureClientsFactory{
		SubscriptionIDValue:    "testSub",
		VirtualNetworks:        mockvirtualnetworkclient.NewMockInterface(ctrl),
		LoadBalancers:          mockloadbalancerclient.NewMockInterface(ctrl),
		SecurityGroups:         mocksecuritygroupclient.NewMockInterface(ctrl),
		Watchers:               mockwatcherclient.NewMockInterface(ctrl),
		ApplicationGateways:    mockapplicationgatewayclient.NewMockInterface(ctrl),
		VirtualNetworkGateways: mockvirtualnetworkgatewayclient.NewMockInterface(ctrl),
		Usages:                 mockusageclient.NewMockInterface(ctrl),
	}
}

var _ AzureClientsFactory = &MockAzureClientsFactory{}

func (factory *MockAzureClientsFactory) SubscriptionID() string {
	return factory.SubscriptionIDValue
}

func (factory *MockAzureClientsFactory) GetVirtualNetworksClient() (virtualnetworkclient.Interface, error) {
	return factory.VirtualNetworks, nil
}

func (factory *MockAzureClientsFactory) GetLoadBalancersClient() (loadbalancerclient.Interface, error) {
	return factory.LoadBalancers, nil
}

func (factory *MockAzureClientsFactory) GetSecurityGroupsClient() (securitygroupclient.Interface, error) {
	return factory.SecurityGroups, nil
}

func (factory *MockAzureClientsFactory) GetWatchersClient() (watcherclient.Interface, error) {
	return factory.Watchers, nil
}

func (factory *MockAzureClientsFactory) GetApplicationGatewaysClient() (applicationgatewayclient.Interface, error) {
	return factory.ApplicationGateways, nil
}

func (factory *MockAzureClientsFactory) GetVirtualNetworkGatewaysClient() (virtualnetworkgatewayclient.Interface, error) {
	return factory.VirtualNetworkGateways, nil
}

func (factory *MockAzureClientsFactory) GetUsagesClient() (usageclient.Interface, error) {
	return factory.Usages, nil
}
