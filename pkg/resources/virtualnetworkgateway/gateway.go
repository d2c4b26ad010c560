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

// VirtualNetworkGateway is a VPN or ExpressRoute gateway attached to the
// GatewaySubnet of a virtual network.
type VirtualNetworkGateway interface {
	fluent.GroupableResource
	fluent.HasInner[network.VirtualNetworkGateway]
	fluent.Refreshable[VirtualNetworkGateway]
	fluent.Updatable[Update]

	GatewayType() enums.VirtualNetworkGatewayType
	VPNType() enums.VPNType
	Sku() enums.VirtualNetworkGatewaySkuName
	IsBGPEnabled() bool
	BGPSettings() (asn int64, peeringAddress string)
	// SubnetID() is the GatewaySubnet the gateway is attached to
	SubnetID() string
	PublicIPAddressID() string
	ProvisioningState() string

	// Reset() resets the primary instance of the gateway
	Reset(ctx context.Context) (VirtualNetworkGateway, error)
}

type gateway struct {
	fluent.TrackedResource
	inner *network.VirtualNetworkGateway
	entry *gateways
}

var _ VirtualNetworkGateway = &gateway{}

func newGateway(inner *network.VirtualNetworkGateway, entry *gateways) *gateway {
	return &gateway{
		TrackedResource: fluent.NewTrackedResource(inner.ID, inner.Name, inner.Type, inner.Location, inner.Tags),
		inner:           inner,
		entry:           entry,
	}
}

func (g *gateway) Inner() *network.VirtualNetworkGateway {
	return g.inner
}

func (g *gateway) properties() *network.VirtualNetworkGatewayPropertiesFormat {
	if g.inner.Properties == nil {
		return &network.VirtualNetworkGatewayPropertiesFormat{}
	}
	return g.inner.Properties
}

func (g *gateway) ipConfiguration() *network.VirtualNetworkGatewayIPConfigurationPropertiesFormat {
	for _, c := range g.properties().IPConfigurations {
		if c != nil && c.Properties != nil {
			return c.Properties
		}
	}
	return &network.VirtualNetworkGatewayIPConfigurationPropertiesFormat{}
}

func (g *gateway) GatewayType() enums.VirtualNetworkGatewayType {
	if g.properties().GatewayType == nil {
		return nil
	}
	return enums.VirtualNetworkGatewayTypeFromString(string(*g.properties().GatewayType))
}

func (g *gateway) VPNType() enums.VPNType {
	if g.properties().VPNType == nil {
		return nil
	}
	return enums.VPNTypeFromString(string(*g.properties().VPNType))
}

func (g *gateway) Sku() enums.VirtualNetworkGatewaySkuName {
	if g.properties().SKU == nil || g.properties().SKU.Name == nil {
		return nil
	}
	return enums.VirtualNetworkGatewaySkuNameFromString(string(*g.properties().SKU.Name))
}

func (g *gateway) IsBGPEnabled() bool {
	return to.Val(g.properties().EnableBgp)
}

func (g *gateway) BGPSettings() (int64, string) {
	bgp := g.properties().BgpSettings
	if bgp == nil {
		return 0, ""
	}
	return to.Val(bgp.Asn), to.Val(bgp.BgpPeeringAddress)
}

func (g *gateway) SubnetID() string {
	if g.ipConfiguration().Subnet == nil {
		return ""
	}
	return to.Val(g.ipConfiguration().Subnet.ID)
}

func (g *gateway) PublicIPAddressID() string {
	if g.ipConfiguration().PublicIPAddress == nil {
		return ""
	}
	return to.Val(g.ipConfiguration().PublicIPAddress.ID)
}

func (g *gateway) ProvisioningState() string {
	return string(to.Val(g.properties().ProvisioningState))
}

func (g *gateway) Reset(ctx context.Context) (VirtualNetworkGateway, error) {
	return fluent.Call(ctx, g.entry.operation("ResetVirtualNetworkGateway", g.ResourceGroupName(), g.Name()), func(ctx context.Context) (VirtualNetworkGateway, error) {
		ret, err := g.entry.client.Reset(ctx, g.ResourceGroupName(), g.Name())
		if err != nil {
			return nil, err
		}
		return newGateway(ret, g.entry), nil
	})
}

func (g *gateway) Refresh(ctx context.Context) (VirtualNetworkGateway, error) {
	return g.entry.GetByResourceGroup(ctx, g.ResourceGroupName(), g.Name())
}

func (g *gateway) Update() Update {
	return newUpdate(g)
}
