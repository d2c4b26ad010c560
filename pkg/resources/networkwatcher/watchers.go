// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package networkwatcher

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/azureclients/watcherclient"
	"github.com/Azure/azure-network-fluent/pkg/consts"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
)

// NetworkWatchers is the entry point for network watchers.
type NetworkWatchers interface {
	fluent.SupportsCreating[DefinitionBlank]
	fluent.SupportsListing[NetworkWatcher]
	fluent.SupportsListingByResourceGroup[NetworkWatcher]
	fluent.SupportsGettingByID[NetworkWatcher]
	fluent.SupportsGettingByResourceGroup[NetworkWatcher]
	fluent.SupportsDeletingByID
	fluent.SupportsDeletingByResourceGroup
	fluent.SupportsBatchCreation[NetworkWatcher]
	fluent.SupportsBatchDeletion
}

type watchers struct {
	fluent.GroupableResources[NetworkWatcher]

	client         watcherclient.Interface
	subscriptionID string
}

var _ NetworkWatchers = &watchers{}

func New(client watcherclient.Interface, subscriptionID string) NetworkWatchers {
	ws := &watchers{
		client:         client,
		subscriptionID: subscriptionID,
	}
	ws.GroupableResources = fluent.GroupableResources[NetworkWatcher]{
		ResourceType: consts.ResourceTypeNetworkWatchers,
		GetFunc:      ws.GetByResourceGroup,
		DeleteFunc:   ws.DeleteByResourceGroup,
	}
	return ws
}

func (ws *watchers) operation(name, resourceGroupName, resourceName string) fluent.Operation {
	return fluent.Operation{
		Name:           name,
		SubscriptionID: ws.subscriptionID,
		ResourceGroup:  resourceGroupName,
		Resource:       resourceName,
	}
}

func (ws *watchers) Define(name string) DefinitionBlank {
	return newDefinition(ws, name)
}

func (ws *watchers) List(ctx context.Context) ([]NetworkWatcher, error) {
	return fluent.Call(ctx, ws.operation("ListNetworkWatchers", "", ""), func(ctx context.Context) ([]NetworkWatcher, error) {
		ret, err := ws.client.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return ws.wrapAll(ret), nil
	})
}

func (ws *watchers) ListByResourceGroup(ctx context.Context, resourceGroupName string) ([]NetworkWatcher, error) {
	return fluent.Call(ctx, ws.operation("ListNetworkWatchers", resourceGroupName, ""), func(ctx context.Context) ([]NetworkWatcher, error) {
		ret, err := ws.client.List(ctx, resourceGroupName)
		if err != nil {
			return nil, err
		}
		return ws.wrapAll(ret), nil
	})
}

func (ws *watchers) GetByResourceGroup(ctx context.Context, resourceGroupName, name string) (NetworkWatcher, error) {
	return fluent.Call(ctx, ws.operation("GetNetworkWatcher", resourceGroupName, name), func(ctx context.Context) (NetworkWatcher, error) {
		w, err := ws.client.Get(ctx, resourceGroupName, name)
		if err != nil {
			return nil, err
		}
		return newWatcher(w, ws), nil
	})
}

func (ws *watchers) DeleteByResourceGroup(ctx context.Context, resourceGroupName, name string) error {
	return fluent.Run(ctx, ws.operation("DeleteNetworkWatcher", resourceGroupName, name), func(ctx context.Context) error {
		return ws.client.Delete(ctx, resourceGroupName, name)
	})
}

func (ws *watchers) CreateAll(ctx context.Context, creatables ...fluent.Creatable[NetworkWatcher]) ([]NetworkWatcher, error) {
	return fluent.CreateAll(ctx, creatables...)
}

func (ws *watchers) createOrUpdate(ctx context.Context, operation, resourceGroupName, name string, inner network.Watcher) (NetworkWatcher, error) {
	return fluent.Call(ctx, ws.operation(operation, resourceGroupName, name), func(ctx context.Context) (NetworkWatcher, error) {
		w, err := ws.client.CreateOrUpdate(ctx, resourceGroupName, name, inner)
		if err != nil {
			return nil, err
		}
		return newWatcher(w, ws), nil
	})
}

func (ws *watchers) wrapAll(list []*network.Watcher) []NetworkWatcher {
	ret := make([]NetworkWatcher, 0, len(list))
	for _, w := range list {
		ret = append(ret, newWatcher(w, ws))
	}
	return ret
}
