// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package securitygroup

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/azureclients/securitygroupclient"
	"github.com/Azure/azure-network-fluent/pkg/consts"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
)

// NetworkSecurityGroups is the entry point for network security groups.
type NetworkSecurityGroups interface {
	fluent.SupportsCreating[DefinitionBlank]
	fluent.SupportsListing[NetworkSecurityGroup]
	fluent.SupportsListingByResourceGroup[NetworkSecurityGroup]
	fluent.SupportsGettingByID[NetworkSecurityGroup]
	fluent.SupportsGettingByResourceGroup[NetworkSecurityGroup]
	fluent.SupportsDeletingByID
	fluent.SupportsDeletingByResourceGroup
	fluent.SupportsBatchCreation[NetworkSecurityGroup]
	fluent.SupportsBatchDeletion
}

type securityGroups struct {
	fluent.GroupableResources[NetworkSecurityGroup]

	client         securitygroupclient.Interface
	subscriptionID string
}

var _ NetworkSecurityGroups = &securityGroups{}

func New(client securitygroupclient.Interface, subscriptionID string) NetworkSecurityGroups {
	sgs := &securityGroups{
		client:         client,
		subscriptionID: subscriptionID,
	}
	sgs.GroupableResources = fluent.GroupableResources[NetworkSecurityGroup]{
		ResourceType: consts.ResourceTypeNetworkSecurityGroups,
		GetFunc:      sgs.GetByResourceGroup,
		DeleteFunc:   sgs.DeleteByResourceGroup,
	}
	return sgs
}

func (sgs *securityGroups) operation(name, resourceGroupName, resourceName string) fluent.Operation {
	return fluent.Operation{
		Name:           name,
		SubscriptionID: sgs.subscriptionID,
		ResourceGroup:  resourceGroupName,
		Resource:       resourceName,
	}
}

func (sgs *securityGroups) Define(name string) DefinitionBlank {
	return newDefinition(sgs, name)
}

func (sgs *securityGroups) List(ctx context.Context) ([]NetworkSecurityGroup, error) {
	return fluent.Call(ctx, sgs.operation("ListNetworkSecurityGroups", "", ""), func(ctx context.Context) ([]NetworkSecurityGroup, error) {
		groups, err := sgs.client.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return sgs.wrapAll(groups), nil
	})
}

func (sgs *securityGroups) ListByResourceGroup(ctx context.Context, resourceGroupName string) ([]NetworkSecurityGroup, error) {
	return fluent.Call(ctx, sgs.operation("ListNetworkSecurityGroups", resourceGroupName, ""), func(ctx context.Context) ([]NetworkSecurityGroup, error) {
		groups, err := sgs.client.List(ctx, resourceGroupName)
		if err != nil {
			return nil, err
		}
		return sgs.wrapAll(groups), nil
	})
}

func (sgs *securityGroups) GetByResourceGroup(ctx context.Context, resourceGroupName, name string) (NetworkSecurityGroup, error) {
	return fluent.Call(ctx, sgs.operation("GetNetworkSecurityGroup", resourceGroupName, name), func(ctx context.Context) (NetworkSecurityGroup, error) {
		nsg, err := sgs.client.Get(ctx, resourceGroupName, name, nil)
		if err != nil {
			return nil, err
		}
		return newSecurityGroup(nsg, sgs), nil
	})
}

func (sgs *securityGroups) DeleteByResourceGroup(ctx context.Context, resourceGroupName, name string) error {
	return fluent.Run(ctx, sgs.operation("DeleteNetworkSecurityGroup", resourceGroupName, name), func(ctx context.Context) error {
		return sgs.client.Delete(ctx, resourceGroupName, name)
	})
}

func (sgs *securityGroups) CreateAll(ctx context.Context, creatables ...fluent.Creatable[NetworkSecurityGroup]) ([]NetworkSecurityGroup, error) {
	return fluent.CreateAll(ctx, creatables...)
}

func (sgs *securityGroups) createOrUpdate(ctx context.Context, operation, resourceGroupName, name string, inner network.SecurityGroup) (NetworkSecurityGroup, error) {
	return fluent.Call(ctx, sgs.operation(operation, resourceGroupName, name), func(ctx context.Context) (NetworkSecurityGroup, error) {
		nsg, err := sgs.client.CreateOrUpdate(ctx, resourceGroupName, name, inner)
		if err != nil {
			return nil, err
		}
		return newSecurityGroup(nsg, sgs), nil
	})
}

func (sgs *securityGroups) wrapAll(groups []*network.SecurityGroup) []NetworkSecurityGroup {
	ret := make([]NetworkSecurityGroup, 0, len(groups))
	for _, nsg := range groups {
		ret = append(ret, newSecurityGroup(nsg, sgs))
	}
	return ret
}
