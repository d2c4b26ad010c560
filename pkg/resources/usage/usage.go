// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package usage

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/azureclients/usageclient"
	"github.com/Azure/azure-network-fluent/pkg/enums"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

// NetworkUsages reports the network quota consumption of the subscription.
type NetworkUsages interface {
	ListByRegion(ctx context.Context, region string) ([]NetworkUsage, error)
}

// NetworkUsage is the consumption of one quota.
type NetworkUsage interface {
	fluent.HasInner[network.Usage]

	Unit() enums.NetworkUsageUnit
	CurrentValue() int64
	Limit() int64
	Name() UsageName
}

type UsageName struct {
	Value          string
	LocalizedValue string
}

type usages struct {
	client         usageclient.Interface
	subscriptionID string
}

var _ NetworkUsages = &usages{}

func New(client usageclient.Interface, subscriptionID string) NetworkUsages {
	return &usages{
		client:         client,
		subscriptionID: subscriptionID,
	}
}

func (us *usages) ListByRegion(ctx context.Context, region string) ([]NetworkUsage, error) {
	op := fluent.Operation{Name: "ListNetworkUsages", SubscriptionID: us.subscriptionID, Resource: region}
	return fluent.Call(ctx, op, func(ctx context.Context) ([]NetworkUsage, error) {
		list, err := us.client.List(ctx, region)
		if err != nil {
			return nil, err
		}
		ret := make([]NetworkUsage, 0, len(list))
		for _, u := range list {
			if u != nil {
				ret = append(ret, &networkUsage{inner: u})
			}
		}
		return ret, nil
	})
}

type networkUsage struct {
	inner *network.Usage
}

func (u *networkUsage) Inner() *network.Usage {
	return u.inner
}

func (u *networkUsage) CurrentValue() int64 {
	return to.Val(u.inner.CurrentValue)
}

func (u *networkUsage) Limit() int64 {
	return to.Val(u.inner.Limit)
}

func (u *networkUsage) Unit() enums.NetworkUsageUnit {
	if u.inner.Unit == nil {
		return nil
	}
	return enums.NetworkUsageUnitFromString(string(*u.inner.Unit))
}

func (u *networkUsage) Name() UsageName {
	if u.inner.Name == nil {
		return UsageName{}
	}
	return UsageName{
		Value:          to.Val(u.inner.Name.Value),
		LocalizedValue: to.Val(u.inner.Name.LocalizedValue),
	}
}
