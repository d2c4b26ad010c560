// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package virtualnetworkgateway

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/azureclients/virtualnetworkgatewayclient"
	"github.com/Azure/azure-network-fluent/pkg/consts"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
)

// VirtualNetworkGateways is the entry point for virtual network gateways.
// The service only lists gateways per resource group.
type VirtualNetworkGateways interface {
	fluent.SupportsCreating[DefinitionBlank]
	fluent.SupportsListingByResourceGroup[VirtualNetworkGateway]
	fluent.SupportsGettingByID[VirtualNetworkGateway]
	fluent.SupportsGettingByResourceGroup[VirtualNetworkGateway]
	fluent.SupportsDeletingByID
	fluent.SupportsDeletingByResourceGroup
	fluent.SupportsBatchCreation[VirtualNetworkGateway]
	fluent.SupportsBatchDeletion
}

type gateways struct {
	fluent.GroupableResources[VirtualNetworkGateway]

	client         virtualnetworkgatewayclient.Interface
	subscriptionID string
}

var _ VirtualNetworkGateways = &gateways{}

func New(client virtualnetworkgatewayclient.Interface, subscriptionID string) VirtualNetworkGateways {
	gs := &gateways{
		client:         client,
		subscriptionID: subscriptionID,
	}
	gs.GroupableResources = fluent.GroupableResources[VirtualNetworkGateway]{
		ResourceType: consts.ResourceTypeVirtualNetworkGateways,
		GetFunc:      gs.GetByResourceGroup,
		DeleteFunc:   gs.DeleteByResourceGroup,
	}
	return gs
}

func (gs *gateways) operation(name, resourceGroupName, resourceName string) fluent.Operation {
	return fluent.Operation{
		Name:           name,
		SubscriptionID: gs.subscriptionID,
		ResourceGroup:  resourceGroupName,
		Resource:       resourceName,
	}
}

func (gs *gateways) Define(name string) DefinitionBlank {
	return newDefinition(gs, name)
}

func (gs *gateways) ListByResourceGroup(ctx context.Context, resourceGroupName string) ([]VirtualNetworkGateway, error) {
	return fluent.Call(ctx, gs.operation("ListVirtualNetworkGateways", resourceGroupName, ""), func(ctx context.Context) ([]VirtualNetworkGateway, error) {
		ret, err := gs.client.List(ctx, resourceGroupName)
		if err != nil {
			return nil, err
		}
		gws := make([]VirtualNetworkGateway, 0, len(ret))
		for _, gw := range ret {
			gws = append(gws, newGateway(gw, gs))
		}
		return gws, nil
	})
}

func (gs *gateways) GetByResourceGroup(ctx context.Context, resourceGroupName, name string) (VirtualNetworkGateway, error) {
	return fluent.Call(ctx, gs.operation("GetVirtualNetworkGateway", resourceGroupName, name), func(ctx context.Context) (VirtualNetworkGateway, error) {
		gw, err := gs.client.Get(ctx, resourceGroupName, name)
		if err != nil {
			return nil, err
		}
		return newGateway(gw, gs), nil
	})
}

func (gs *gateways) DeleteByResourceGroup(ctx context.Context, resourceGroupName, name string) error {
	return fluent.Run(ctx, gs.operation("DeleteVirtualNetworkGateway", resourceGroupName, name), func(ctx context.Context) error {
		return gs.client.Delete(ctx, resourceGroupName, name)
	})
}

func (gs *gateways) CreateAll(ctx context.Context, creatables ...fluent.Creatable[VirtualNetworkGateway]) ([]VirtualNetworkGateway, error) {
	return fluent.CreateAll(ctx, creatables...)
}

func (gs *gateways) createOrUpdate(ctx context.Context, operation, resourceGroupName, name string, inner network.VirtualNetworkGateway) (VirtualNetworkGateway, error) {
	return fluent.Call(ctx, gs.operation(operation, resourceGroupName, name), func(ctx context.Context) (VirtualNetworkGateway, error) {
		gw, err := gs.client.CreateOrUpdate(ctx, resourceGroupName, name, inner)
		if err != nil {
			return nil, err
		}
		return newGateway(gw, gs), nil
	})
}
