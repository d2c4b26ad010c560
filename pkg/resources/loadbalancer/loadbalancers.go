// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package loadbalancer

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/azureclients/loadbalancerclient"
	"github.com/Azure/azure-network-fluent/pkg/consts"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
)

// LoadBalancers is the entry point for load balancers.
type LoadBalancers interface {
	fluent.SupportsCreating[DefinitionBlank]
	fluent.SupportsListing[LoadBalancer]
	fluent.SupportsListingByResourceGroup[LoadBalancer]
	fluent.SupportsGettingByID[LoadBalancer]
	fluent.SupportsGettingByResourceGroup[LoadBalancer]
	fluent.SupportsDeletingByID
	fluent.SupportsDeletingByResourceGroup
	fluent.SupportsBatchCreation[LoadBalancer]
	fluent.SupportsBatchDeletion
}

type loadBalancers struct {
	fluent.GroupableResources[LoadBalancer]

	client         loadbalancerclient.Interface
	subscriptionID string
}

var _ LoadBalancers = &loadBalancers{}

func New(client loadbalancerclient.Interface, subscriptionID string) LoadBalancers {
	lbs := &loadBalancers{
		client:         client,
		subscriptionID: subscriptionID,
	}
	lbs.GroupableResources = fluent.GroupableResources[LoadBalancer]{
		ResourceType: consts.ResourceTypeLoadBalancers,
		GetFunc:      lbs.GetByResourceGroup,
		DeleteFunc:   lbs.DeleteByResourceGroup,
	}
	return lbs
}

func (lbs *loadBalancers) operation(name, resourceGroupName, resourceName string) fluent.Operation {
	return fluent.Operation{
		Name:           name,
		SubscriptionID: lbs.subscriptionID,
		ResourceGroup:  resourceGroupName,
		Resource:       resourceName,
	}
}

func (lbs *loadBalancers) Define(name string) DefinitionBlank {
	return newDefinition(lbs, name)
}

func (lbs *loadBalancers) List(ctx context.Context) ([]LoadBalancer, error) {
	return fluent.Call(ctx, lbs.operation("ListLoadBalancers", "", ""), func(ctx context.Context) ([]LoadBalancer, error) {
		ret, err := lbs.client.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return lbs.wrapAll(ret), nil
	})
}

func (lbs *loadBalancers) ListByResourceGroup(ctx context.Context, resourceGroupName string) ([]LoadBalancer, error) {
	return fluent.Call(ctx, lbs.operation("ListLoadBalancers", resourceGroupName, ""), func(ctx context.Context) ([]LoadBalancer, error) {
		ret, err := lbs.client.List(ctx, resourceGroupName)
		if err != nil {
			return nil, err
		}
		return lbs.wrapAll(ret), nil
	})
}

func (lbs *loadBalancers) GetByResourceGroup(ctx context.Context, resourceGroupName, name string) (LoadBalancer, error) {
	return fluent.Call(ctx, lbs.operation("GetLoadBalancer", resourceGroupName, name), func(ctx context.Context) (LoadBalancer, error) {
		lb, err := lbs.client.Get(ctx, resourceGroupName, name, nil)
		if err != nil {
			return nil, err
		}
		return newLoadBalancer(lb, lbs), nil
	})
}

func (lbs *loadBalancers) DeleteByResourceGroup(ctx context.Context, resourceGroupName, name string) error {
	return fluent.Run(ctx, lbs.operation("DeleteLoadBalancer", resourceGroupName, name), func(ctx context.Context) error {
		return lbs.client.Delete(ctx, resourceGroupName, name)
	})
}

func (lbs *loadBalancers) CreateAll(ctx context.Context, creatables ...fluent.Creatable[LoadBalancer]) ([]LoadBalancer, error) {
	return fluent.CreateAll(ctx, creatables...)
}

func (lbs *loadBalancers) createOrUpdate(ctx context.Context, operation, resourceGroupName, name string, inner network.LoadBalancer) (LoadBalancer, error) {
	return fluent.Call(ctx, lbs.operation(operation, resourceGroupName, name), func(ctx context.Context) (LoadBalancer, error) {
		lb, err := lbs.client.CreateOrUpdate(ctx, resourceGroupName, name, inner)
		if err != nil {
			return nil, err
		}
		return newLoadBalancer(lb, lbs), nil
	})
}

func (lbs *loadBalancers) wrapAll(list []*network.LoadBalancer) []LoadBalancer {
	ret := make([]LoadBalancer, 0, len(list))
	for _, lb := range list {
		ret = append(ret, newLoadBalancer(lb, lbs))
	}
	return ret
}
