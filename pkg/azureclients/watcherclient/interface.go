// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.

package watcherclient

//go:generate mockgen -destination=./mockwatcherclient/interface.go -package=mockwatcherclient -source=interface.go

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
)

type Interface interface {
	// Get() gets a network watcher object
	Get(ctx context.Context, resourceGroupName string, networkWatcherName string) (*network.Watcher, error)

	// List() lists the network watchers in a resource group
	List(ctx context.Context, resourceGroupName string) ([]*network.Watcher, error)

	// ListAll() lists the network watchers in the subscription
	ListAll(ctx context.Context) ([]*network.Watcher, error)

	// CreateOrUpdate() creates or updates a network watcher object
	CreateOrUpdate(ctx context.Context, resourceGroupName string, networkWatcherName string, watcher network.Watcher) (*network.Watcher, error)

	// Delete() deletes a network watcher object
	Delete(ctx context.Context, resourceGroupName string, networkWatcherName string) error

	// GetTopology() gets the network topology of a resource group
	GetTopology(ctx context.Context, resourceGroupName string, networkWatcherName string, targetResourceGroupName string) (*network.Topology, error)
}
