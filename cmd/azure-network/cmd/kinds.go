// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/consts"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/networkmanager"
	"github.com/Azure/azure-network-fluent/pkg/resources/applicationgateway"
	"github.com/Azure/azure-network-fluent/pkg/resources/loadbalancer"
	"github.com/Azure/azure-network-fluent/pkg/resources/networkwatcher"
	"github.com/Azure/azure-network-fluent/pkg/resources/securitygroup"
	"github.com/Azure/azure-network-fluent/pkg/resources/virtualnetwork"
	"github.com/Azure/azure-network-fluent/pkg/resources/virtualnetworkgateway"
)

// resourceKind adapts one entry point to the generic list/get/delete commands.
// Results are the wire representation of the models.
type resourceKind struct {
	resourceType        string
	list                func(ctx context.Context, m *networkmanager.NetworkManager) ([]any, error)
	listByResourceGroup func(ctx context.Context, m *networkmanager.NetworkManager, resourceGroupName string) ([]any, error)
	getByID             func(ctx context.Context, m *networkmanager.NetworkManager, id string) (any, error)
	deleteByIDs         func(ctx context.Context, m *networkmanager.NetworkManager, ids ...string) error
}

type entryPoint[T any] interface {
	fluent.SupportsListingByResourceGroup[T]
	fluent.SupportsGettingByID[T]
	fluent.SupportsBatchDeletion
}

func newResourceKind[T fluent.HasInner[I], I any](resourceType string, entry func(*networkmanager.NetworkManager) entryPoint[T]) *resourceKind {
	return &resourceKind{
		resourceType: resourceType,
		list: func(ctx context.Context, m *networkmanager.NetworkManager) ([]any, error) {
			lister, ok := entry(m).(fluent.SupportsListing[T])
			if !ok {
				return nil, fmt.Errorf("%s can only be listed by resource group", resourceType)
			}
			return inners[T, I](lister.List(ctx))
		},
		listByResourceGroup: func(ctx context.Context, m *networkmanager.NetworkManager, resourceGroupName string) ([]any, error) {
			return inners[T, I](entry(m).ListByResourceGroup(ctx, resourceGroupName))
		},
		getByID: func(ctx context.Context, m *networkmanager.NetworkManager, id string) (any, error) {
			item, err := entry(m).GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return item.Inner(), nil
		},
		deleteByIDs: func(ctx context.Context, m *networkmanager.NetworkManager, ids ...string) error {
			return entry(m).DeleteByIDs(ctx, ids...)
		},
	}
}

func inners[T fluent.HasInner[I], I any](items []T, err error) ([]any, error) {
	if err != nil {
		return nil, err
	}
	ret := make([]any, 0, len(items))
	for _, item := range items {
		ret = append(ret, item.Inner())
	}
	return ret, nil
}

var networksKind = newResourceKind[virtualnetwork.Network, network.VirtualNetwork](
	consts.ResourceTypeVirtualNetworks,
	func(m *networkmanager.NetworkManager) entryPoint[virtualnetwork.Network] {
		return m.Networks()
	})

var loadBalancersKind = newResourceKind[loadbalancer.LoadBalancer, network.LoadBalancer](
	consts.ResourceTypeLoadBalancers,
	func(m *networkmanager.NetworkManager) entryPoint[loadbalancer.LoadBalancer] {
		return m.LoadBalancers()
	})

var securityGroupsKind = newResourceKind[securitygroup.NetworkSecurityGroup, network.SecurityGroup](
	consts.ResourceTypeNetworkSecurityGroups,
	func(m *networkmanager.NetworkManager) entryPoint[securitygroup.NetworkSecurityGroup] {
		return m.NetworkSecurityGroups()
	})

var watchersKind = newResourceKind[networkwatcher.NetworkWatcher, network.Watcher](
	consts.ResourceTypeNetworkWatchers,
	func(m *networkmanager.NetworkManager) entryPoint[networkwatcher.NetworkWatcher] {
		return m.NetworkWatchers()
	})

var applicationGatewaysKind = newResourceKind[applicationgateway.ApplicationGateway, network.ApplicationGateway](
	consts.ResourceTypeApplicationGateways,
	func(m *networkmanager.NetworkManager) entryPoint[applicationgateway.ApplicationGateway] {
		return m.ApplicationGateways()
	})

var virtualNetworkGatewaysKind = newResourceKind[virtualnetworkgateway.VirtualNetworkGateway, network.VirtualNetworkGateway](
	consts.ResourceTypeVirtualNetworkGateways,
	func(m *networkmanager.NetworkManager) entryPoint[virtualnetworkgateway.VirtualNetworkGateway] {
		return m.VirtualNetworkGateways()
	})

var resourceKinds = map[string]*resourceKind{
	"networks":               networksKind,
	"loadbalancers":          loadBalancersKind,
	"networksecuritygroups":  securityGroupsKind,
	"networkwatchers":        watchersKind,
	"applicationgateways":    applicationGatewaysKind,
	"virtualnetworkgateways": virtualNetworkGatewaysKind,
}

var kindAliases = map[string]string{
	"vnet":  "networks",
	"vnets": "networks",
	"lb":    "loadbalancers",
	"nsg":   "networksecuritygroups",
	"nw":    "networkwatchers",
	"appgw": "applicationgateways",
	"vng":   "virtualnetworkgateways",
}

func kindNames() []string {
	names := make([]string, 0, len(resourceKinds))
	for name := range resourceKinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupKind(name string) (*resourceKind, error) {
	name = strings.ToLower(name)
	if alias, ok := kindAliases[name]; ok {
		name = alias
	}
	kind, ok := resourceKinds[name]
	if !ok {
		return nil, fmt.Errorf("unknown resource kind %q, expected one of %s", name, strings.Join(kindNames(), ", "))
	}
	return kind, nil
}

func lookupKindByID(id string) (*resourceKind, error) {
	rid, err := arm.ParseResourceID(id)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", fluent.ErrInvalidResourceID, id, err)
	}
	for _, kind := range resourceKinds {
		if strings.EqualFold(kind.resourceType, rid.ResourceType.String()) {
			return kind, nil
		}
	}
	return nil, fmt.Errorf("unsupported resource type %s", rid.ResourceType.String())
}
