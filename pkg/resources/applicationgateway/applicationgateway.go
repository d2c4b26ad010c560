// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package applicationgateway

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/enums"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

// ApplicationGateway is an application gateway. Only its runtime state can
// be changed from here.
type ApplicationGateway interface {
	fluent.GroupableResource
	fluent.HasInner[network.ApplicationGateway]
	fluent.Refreshable[ApplicationGateway]

	Sku() string
	Tier() string
	Capacity() int32
	// OperationalState() is nil until the service reports one
	OperationalState() enums.ApplicationGatewayOperationalState
	BackendPoolNames() []string

	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	// CheckBackendHealth() returns the health of every backend pool keyed by pool name
	CheckBackendHealth(ctx context.Context) (map[string]ApplicationGatewayBackendHealth, error)
}

type applicationGateway struct {
	fluent.TrackedResource
	inner *network.ApplicationGateway
	entry *applicationGateways
}

var _ ApplicationGateway = &applicationGateway{}

func newApplicationGateway(inner *network.ApplicationGateway, entry *applicationGateways) *applicationGateway {
	return &applicationGateway{
		TrackedResource: fluent.NewTrackedResource(inner.ID, inner.Name, inner.Type, inner.Location, inner.Tags),
		inner:           inner,
		entry:           entry,
	}
}

func (g *applicationGateway) Inner() *network.ApplicationGateway {
	return g.inner
}

func (g *applicationGateway) properties() *network.ApplicationGatewayPropertiesFormat {
	if g.inner.Properties == nil {
		return &network.ApplicationGatewayPropertiesFormat{}
	}
	return g.inner.Properties
}

func (g *applicationGateway) sku() *network.ApplicationGatewaySKU {
	if g.properties().SKU == nil {
		return &network.ApplicationGatewaySKU{}
	}
	return g.properties().SKU
}

func (g *applicationGateway) Sku() string {
	return string(to.Val(g.sku().Name))
}

func (g *applicationGateway) Tier() string {
	return string(to.Val(g.sku().Tier))
}

func (g *applicationGateway) Capacity() int32 {
	return to.Val(g.sku().Capacity)
}

func (g *applicationGateway) OperationalState() enums.ApplicationGatewayOperationalState {
	if g.properties().OperationalState == nil {
		return nil
	}
	return enums.ApplicationGatewayOperationalStateFromString(string(*g.properties().OperationalState))
}

func (g *applicationGateway) BackendPoolNames() []string {
	ret := []string{}
	for _, p := range g.properties().BackendAddressPools {
		if p != nil && p.Name != nil {
			ret = append(ret, *p.Name)
		}
	}
	return ret
}

func (g *applicationGateway) Start(ctx context.Context) error {
	return fluent.Run(ctx, g.entry.operation("StartApplicationGateway", g.ResourceGroupName(), g.Name()), func(ctx context.Context) error {
		return g.entry.client.Start(ctx, g.ResourceGroupName(), g.Name())
	})
}

func (g *applicationGateway) Stop(ctx context.Context) error {
	return fluent.Run(ctx, g.entry.operation("StopApplicationGateway", g.ResourceGroupName(), g.Name()), func(ctx context.Context) error {
		return g.entry.client.Stop(ctx, g.ResourceGroupName(), g.Name())
	})
}

func (g *applicationGateway) CheckBackendHealth(ctx context.Context) (map[string]ApplicationGatewayBackendHealth, error) {
	op := g.entry.operation("CheckApplicationGatewayBackendHealth", g.ResourceGroupName(), g.Name())
	return fluent.Call(ctx, op, func(ctx context.Context) (map[string]ApplicationGatewayBackendHealth, error) {
		health, err := g.entry.client.BackendHealth(ctx, g.ResourceGroupName(), g.Name())
		if err != nil {
			return nil, err
		}
		ret := make(map[string]ApplicationGatewayBackendHealth)
		for _, pool := range health.BackendAddressPools {
			if pool == nil {
				continue
			}
			h := &backendHealth{inner: pool, parent: g}
			ret[h.Name()] = h
		}
		return ret, nil
	})
}

func (g *applicationGateway) Refresh(ctx context.Context) (ApplicationGateway, error) {
	return g.entry.GetByResourceGroup(ctx, g.ResourceGroupName(), g.Name())
}
