// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package virtualnetworkgateway

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/enums"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

// Update resizes a gateway or changes its tags.
type Update interface {
	fluent.Appliable[VirtualNetworkGateway]

	WithSku(sku enums.VirtualNetworkGatewaySkuName) Update
	WithTag(key, value string) Update
	WithoutTag(key string) Update
}

type update struct {
	model *gateway
	inner *network.VirtualNetworkGateway
	err   error
}

func newUpdate(model *gateway) *update {
	inner, err := fluent.DeepCopy(model.inner)
	if err == nil && inner.Properties == nil {
		inner.Properties = &network.VirtualNetworkGatewayPropertiesFormat{}
	}
	return &update{model: model, inner: inner, err: err}
}

func (u *update) WithSku(sku enums.VirtualNetworkGatewaySkuName) Update {
	if u.err != nil {
		return u
	}
	setSku(u.inner.Properties, sku)
	return u
}

func (u *update) WithTag(key, value string) Update {
	if u.err != nil {
		return u
	}
	if u.inner.Tags == nil {
		u.inner.Tags = make(map[string]*string)
	}
	u.inner.Tags[key] = to.Ptr(value)
	return u
}

func (u *update) WithoutTag(key string) Update {
	if u.err != nil {
		return u
	}
	delete(u.inner.Tags, key)
	return u
}

func (u *update) Apply(ctx context.Context) (VirtualNetworkGateway, error) {
	if u.err != nil {
		return nil, u.err
	}
	return u.model.entry.createOrUpdate(ctx, "UpdateVirtualNetworkGateway", u.model.ResourceGroupName(), u.model.Name(), *u.inner)
}
