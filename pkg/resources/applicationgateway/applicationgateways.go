// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package applicationgateway

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/azureclients/applicationgatewayclient"
	"github.com/Azure/azure-network-fluent/pkg/consts"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
)

// ApplicationGateways is the entry point for application gateways. It has
// no definitions, gateways are created with ARM templates or the portal.
type ApplicationGateways interface {
	fluent.SupportsListing[ApplicationGateway]
	fluent.SupportsListingByResourceGroup[ApplicationGateway]
	fluent.SupportsGettingByID[ApplicationGateway]
	fluent.SupportsGettingByResourceGroup[ApplicationGateway]
	fluent.SupportsDeletingByID
	fluent.SupportsDeletingByResourceGroup
	fluent.SupportsBatchDeletion
}

type applicationGateways struct {
	fluent.GroupableResources[ApplicationGateway]

	client         applicationgatewayclient.Interface
	subscriptionID string
}

var _ ApplicationGateways = &applicationGateways{}

func New(client applicationgatewayclient.Interface, subscriptionID string) ApplicationGateways {
	ags := &applicationGateways{
		client:         client,
		subscriptionID: subscriptionID,
	}
	ags.GroupableResources = fluent.GroupableResources[ApplicationGateway]{
		ResourceType: consts.ResourceTypeApplicationGateways,
		GetFunc:      ags.GetByResourceGroup,
		DeleteFunc:   ags.DeleteByResourceGroup,
	}
	return ags
}

func (ags *applicationGateways) operation(name, resourceGroupName, resourceName string) fluent.Operation {
	return fluent.Operation{
		Name:           name,
		SubscriptionID: ags.subscriptionID,
		ResourceGroup:  resourceGroupName,
		Resource:       resourceName,
	}
}

func (ags *applicationGateways) List(ctx context.Context) ([]ApplicationGateway, error) {
	return fluent.Call(ctx, ags.operation("ListApplicationGateways", "", ""), func(ctx context.Context) ([]ApplicationGateway, error) {
		ret, err := ags.client.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return ags.wrapAll(ret), nil
	})
}

func (ags *applicationGateways) ListByResourceGroup(ctx context.Context, resourceGroupName string) ([]ApplicationGateway, error) {
	return fluent.Call(ctx, ags.operation("ListApplicationGateways", resourceGroupName, ""), func(ctx context.Context) ([]ApplicationGateway, error) {
		ret, err := ags.client.List(ctx, resourceGroupName)
		if err != nil {
			return nil, err
		}
		return ags.wrapAll(ret), nil
	})
}

func (ags *applicationGateways) GetByResourceGroup(ctx context.Context, resourceGroupName, name string) (ApplicationGateway, error) {
	return fluent.Call(ctx, ags.operation("GetApplicationGateway", resourceGroupName, name), func(ctx context.Context) (ApplicationGateway, error) {
		ag, err := ags.client.Get(ctx, resourceGroupName, name)
		if err != nil {
			return nil, err
		}
		return newApplicationGateway(ag, ags), nil
	})
}

func (ags *applicationGateways) DeleteByResourceGroup(ctx context.Context, resourceGroupName, name string) error {
	return fluent.Run(ctx, ags.operation("DeleteApplicationGateway", resourceGroupName, name), func(ctx context.Context) error {
		return ags.client.Delete(ctx, resourceGroupName, name)
	})
}

func (ags *applicationGateways) wrapAll(list []*network.ApplicationGateway) []ApplicationGateway {
	ret := make([]ApplicationGateway, 0, len(list))
	for _, ag := range list {
		ret = append(ret, newApplicationGateway(ag, ags))
	}
	return ret
}
