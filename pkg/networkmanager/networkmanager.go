// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package networkmanager

import (
	"github.com/Azure/azure-network-fluent/pkg/azureclients"
	"github.com/Azure/azure-network-fluent/pkg/config"
	"github.com/Azure/azure-network-fluent/pkg/resources/applicationgateway"
	"github.com/Azure/azure-network-fluent/pkg/resources/loadbalancer"
	"github.com/Azure/azure-network-fluent/pkg/resources/networkwatcher"
	"github.com/Azure/azure-network-fluent/pkg/resources/securitygroup"
	"github.com/Azure/azure-network-fluent/pkg/resources/usage"
	"github.com/Azure/azure-network-fluent/pkg/resources/virtualnetwork"
	"github.com/Azure/azure-network-fluent/pkg/resources/virtualnetworkgateway"
)

// NetworkManager groups the network entry points of one subscription.
type NetworkManager struct {
	*config.CloudConfig

	networks               virtualnetwork.Networks
	loadBalancers          loadbalancer.LoadBalancers
	securityGroups         securitygroup.NetworkSecurityGroups
	watchers               networkwatcher.NetworkWatchers
	applicationGateways    applicationgateway.ApplicationGateways
	virtualNetworkGateways virtualnetworkgateway.VirtualNetworkGateways
	usages                 usage.NetworkUsages
}

// Authenticate builds a NetworkManager from a cloud config, creating the
// credential it describes.
func Authenticate(cloud *config.CloudConfig) (*NetworkManager, error) {
	factory, err := azureclients.NewAzureClientsFactory(cloud)
	if err != nil {
		return nil, err
	}
	return CreateNetworkManager(cloud, factory)
}

func CreateNetworkManager(cloud *config.CloudConfig, factory azureclients.AzureClientsFactory) (*NetworkManager, error) {
	m := NetworkManager{
		CloudConfig: cloud,
	}
	subscriptionID := factory.SubscriptionID()

	vnetClient, err := factory.GetVirtualNetworksClient()
	if err != nil {
		return nil, err
	}
	m.networks = virtualnetwork.New(vnetClient, subscriptionID)

	lbClient, err := factory.GetLoadBalancersClient()
	if err != nil {
		return nil, err
	}
	m.loadBalancers = loadbalancer.New(lbClient, subscriptionID)

	sgClient, err := factory.GetSecurityGroupsClient()
	if err != nil {
		return nil, err
	}
	m.securityGroups = securitygroup.New(sgClient, subscriptionID)

	watcherClient, err := factory.GetWatchersClient()
	if err != nil {
		return nil, err
	}
	m.watchers = networkwatcher.New(watcherClient, subscriptionID)

	appgwClient, err := factory.GetApplicationGatewaysClient()
	if err != nil {
		return nil, err
	}
	m.applicationGateways = applicationgateway.New(appgwClient, subscriptionID)

	vngClient, err := factory.GetVirtualNetworkGatewaysClient()
	if err != nil {
		return nil, err
	}
	m.virtualNetworkGateways = virtualnetworkgateway.New(vngClient, subscriptionID)

	usageClient, err := factory.GetUsagesClient()
	if err != nil {
		return nil, err
	}
	m.usages = usage.New(usageClient, subscriptionID)

	return &m, nil
}

func (m *NetworkManager) SubscriptionID() string {
	return m.CloudConfig.SubscriptionID
}

func (m *NetworkManager) Location() string {
	return m.CloudConfig.Location
}

// ResourceGroupOrDefault returns resourceGroupName, or the configured
// default resource group when it is empty.
func (m *NetworkManager) ResourceGroupOrDefault(resourceGroupName string) string {
	if resourceGroupName == "" {
		return m.CloudConfig.ResourceGroup
	}
	return resourceGroupName
}

func (m *NetworkManager) Networks() virtualnetwork.Networks {
	return m.networks
}

func (m *NetworkManager) LoadBalancers() loadbalancer.LoadBalancers {
	return m.loadBalancers
}

func (m *NetworkManager) NetworkWatchers() networkwatcher.NetworkWatchers {
	return m.watchers
}

func (m *NetworkManager) NetworkUsages() usage.NetworkUsages {
	return m.usages
}

func (m *NetworkManager) NetworkSecurityGroups() securitygroup.NetworkSecurityGroups {
	return m.securityGroups
}

func (m *NetworkManager) ApplicationGateways() applicationgateway.ApplicationGateways {
	return m.applicationGateways
}

func (m *NetworkManager) VirtualNetworkGateways() virtualnetworkgateway.VirtualNetworkGateways {
	return m.virtualNetworkGateways
}
