// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.

package virtualnetworkgatewayclient

//go:generate mockgen -destination=./mockvirtualnetworkgatewayclient/interface.go -package=mockvirtualnetworkgatewayclient -source=interface.go

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
)

type Interface interface {
	// Get() gets a virtual network gateway object
	Get(ctx context.Context, resourceGroupName string, virtualNetworkGatewayName string) (*network.VirtualNetworkGateway, error)

	// List() lists the virtual network gateways in a resource group
	List(ctx context.Context, resourceGroupName string) ([]*network.VirtualNetworkGateway, error)

	// CreateOrUpdate() creates or updates a virtual network gateway object
	CreateOrUpdate(ctx context.Context, resourceGroupName string, virtualNetworkGatewayName string, gateway network.VirtualNetworkGateway) (*network.VirtualNetworkGateway, error)

	// Delete() deletes a virtual network gateway object
	Delete(ctx context.Context, resourceGroupName string, virtualNetworkGatewayName string) error

	// Reset() resets the primary instance of a virtual network gateway
	Reset(ctx context.Context, resourceGroupName string, virtualNetworkGatewayName string) (*network.VirtualNetworkGateway, error)
}
