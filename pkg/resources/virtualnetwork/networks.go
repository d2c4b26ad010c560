// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package virtualnetwork

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/azureclients/virtualnetworkclient"
	"github.com/Azure/azure-network-fluent/pkg/consts"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
)

// Networks is the entry point for virtual networks.
type Networks interface {
	fluent.SupportsCreating[DefinitionBlank]
	fluent.SupportsListing[Network]
	fluent.SupportsListingByResourceGroup[Network]
	fluent.SupportsGettingByID[Network]
	fluent.SupportsGettingByResourceGroup[Network]
	fluent.SupportsDeletingByID
	fluent.SupportsDeletingByResourceGroup
	fluent.SupportsBatchCreation[Network]
	fluent.SupportsBatchDeletion
}

type networks struct {
	fluent.GroupableResources[Network]

	client         virtualnetworkclient.Interface
	subscriptionID string
}

var _ Networks = &networks{}

func New(client virtualnetworkclient.Interface, subscriptionID string) Networks {
	n := &networks{
		client:         client,
		subscriptionID: subscriptionID,
	}
	n.GroupableResources = fluent.GroupableResources[Network]{
		ResourceType: consts.ResourceTypeVirtualNetworks,
		GetFunc:      n.GetByResourceGroup,
		DeleteFunc:   n.DeleteByResourceGroup,
	}
	return n
}

func (n *networks) operation(name, resourceGroupName, resourceName string) fluent.Operation {
	return fluent.Operation{
		Name:           name,
		SubscriptionID: n.subscriptionID,
		ResourceGroup:  resourceGroupName,
		Resource:       resourceName,
	}
}

func (n *networks) Define(name string) DefinitionBlank {
	return newDefinition(n, name)
}

func (n *networks) List(ctx context.Context) ([]Network, error) {
	return fluent.Call(ctx, n.operation("ListVirtualNetworks", "", ""), func(ctx context.Context) ([]Network, error) {
		vnets, err := n.client.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return n.wrapAll(vnets), nil
	})
}

func (n *networks) ListByResourceGroup(ctx context.Context, resourceGroupName string) ([]Network, error) {
	return fluent.Call(ctx, n.operation("ListVirtualNetworks", resourceGroupName, ""), func(ctx context.Context) ([]Network, error) {
		vnets, err := n.client.List(ctx, resourceGroupName)
		if err != nil {
			return nil, err
		}
		return n.wrapAll(vnets), nil
	})
}

func (n *networks) GetByResourceGroup(ctx context.Context, resourceGroupName, name string) (Network, error) {
	return fluent.Call(ctx, n.operation("GetVirtualNetwork", resourceGroupName, name), func(ctx context.Context) (Network, error) {
		vnet, err := n.client.Get(ctx, resourceGroupName, name, nil)
		if err != nil {
			return nil, err
		}
		return newNetwork(vnet, n), nil
	})
}

func (n *networks) DeleteByResourceGroup(ctx context.Context, resourceGroupName, name string) error {
	return fluent.Run(ctx, n.operation("DeleteVirtualNetwork", resourceGroupName, name), func(ctx context.Context) error {
		return n.client.Delete(ctx, resourceGroupName, name)
	})
}

func (n *networks) CreateAll(ctx context.Context, creatables ...fluent.Creatable[Network]) ([]Network, error) {
	return fluent.CreateAll(ctx, creatables...)
}

func (n *networks) createOrUpdate(ctx context.Context, operation, resourceGroupName, name string, inner network.VirtualNetwork) (Network, error) {
	return fluent.Call(ctx, n.operation(operation, resourceGroupName, name), func(ctx context.Context) (Network, error) {
		vnet, err := n.client.CreateOrUpdate(ctx, resourceGroupName, name, inner)
		if err != nil {
			return nil, err
		}
		return newNetwork(vnet, n), nil
	})
}

func (n *networks) wrapAll(vnets []*network.VirtualNetwork) []Network {
	ret := make([]Network, 0, len(vnets))
	for _, vnet := range vnets {
		ret = append(ret, newNetwork(vnet, n))
	}
	return ret
}
