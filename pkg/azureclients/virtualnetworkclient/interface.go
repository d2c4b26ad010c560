// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.

package virtualnetworkclient

//go:generate mockgen -destination=./mockvirtualnetworkclient/interface.go -package=mockvirtualnetworkclient -source=interface.go

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
)

type Interface interface {
	// Get() gets a virtual network object
	Get(ctx context.Context, resourceGroupName string, virtualNetworkName string, expand *string) (*network.VirtualNetwork, error)

	// List() lists the virtual networks in a resource group
	List(ctx context.Context, resourceGroupName string) ([]*network.VirtualNetwork, error)

	// ListAll() lists the virtual networks in the subscription
	ListAll(ctx context.Context) ([]*network.VirtualNetwork, error)

	// CreateOrUpdate() creates or updates a virtual network object
	CreateOrUpdate(ctx context.Context, resourceGroupName string, virtualNetworkName string, virtualNetwork network.VirtualNetwork) (*network.VirtualNetwork, error)

	// Delete() deletes a virtual network object
	Delete(ctx context.Context, resourceGroupName string, virtualNetworkName string) error
}
