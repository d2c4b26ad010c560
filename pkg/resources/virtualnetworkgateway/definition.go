// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package virtualnetworkgateway

import (
	"context"
	"errors"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/consts"
	"github.com/Azure/azure-network-fluent/pkg/enums"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

const defaultIPConfigurationName = "default"

var errPolicyBasedBGP = errors.New("policy based VPN gateways do not support BGP")

type DefinitionBlank interface {
	WithRegion(region string) DefinitionWithGroup
}

type DefinitionWithGroup interface {
	WithExistingResourceGroup(resourceGroupName string) DefinitionWithNetwork
}

type DefinitionWithNetwork interface {
	// WithNetwork() attaches the gateway to the GatewaySubnet of the network
	WithNetwork(networkID string) DefinitionWithPublicIPAddress
}

type DefinitionWithPublicIPAddress interface {
	WithPublicIPAddress(publicIPAddressID string) DefinitionWithCreate
}

// DefinitionWithCreate defaults to a route based VPN gateway of the Basic sku.
type DefinitionWithCreate interface {
	fluent.Creatable[VirtualNetworkGateway]

	WithSku(sku enums.VirtualNetworkGatewaySkuName) DefinitionWithCreate
	WithRouteBasedVPN() DefinitionWithCreate
	WithPolicyBasedVPN() DefinitionWithCreate
	WithExpressRoute() DefinitionWithCreate
	WithBGP(asn int64, peeringAddress string) DefinitionWithCreate
	WithTag(key, value string) DefinitionWithCreate
}

type definition struct {
	entry             *gateways
	name              string
	resourceGroupName string
	inner             network.VirtualNetworkGateway
}

type definitionBlank struct{ d *definition }
type definitionWithGroup struct{ d *definition }
type definitionWithNetwork struct{ d *definition }
type definitionWithPublicIPAddress struct{ d *definition }
type definitionWithCreate struct{ d *definition }

func newDefinition(entry *gateways, name string) DefinitionBlank {
	return definitionBlank{d: &definition{
		entry: entry,
		name:  name,
		inner: network.VirtualNetworkGateway{
			Properties: &network.VirtualNetworkGatewayPropertiesFormat{
				GatewayType: to.Ptr(network.VirtualNetworkGatewayTypeVPN),
				VPNType:     to.Ptr(network.VPNTypeRouteBased),
				EnableBgp:   to.Ptr(false),
				IPConfigurations: []*network.VirtualNetworkGatewayIPConfiguration{
					{
						Name: to.Ptr(defaultIPConfigurationName),
						Properties: &network.VirtualNetworkGatewayIPConfigurationPropertiesFormat{
							PrivateIPAllocationMethod: to.Ptr(network.IPAllocationMethodDynamic),
						},
					},
				},
			},
		},
	}}
}

func (d *definition) ipConfiguration() *network.VirtualNetworkGatewayIPConfigurationPropertiesFormat {
	return d.inner.Properties.IPConfigurations[0].Properties
}

func (s definitionBlank) WithRegion(region string) DefinitionWithGroup {
	s.d.inner.Location = to.Ptr(region)
	return definitionWithGroup(s)
}

func (s definitionWithGroup) WithExistingResourceGroup(resourceGroupName string) DefinitionWithNetwork {
	s.d.resourceGroupName = resourceGroupName
	return definitionWithNetwork(s)
}

func (s definitionWithNetwork) WithNetwork(networkID string) DefinitionWithPublicIPAddress {
	subnetID := fluent.ChildResourceID(networkID, "subnets", consts.GatewaySubnetName)
	s.d.ipConfiguration().Subnet = &network.SubResource{ID: to.Ptr(subnetID)}
	return definitionWithPublicIPAddress(s)
}

func (s definitionWithPublicIPAddress) WithPublicIPAddress(publicIPAddressID string) DefinitionWithCreate {
	s.d.ipConfiguration().PublicIPAddress = &network.SubResource{ID: to.Ptr(publicIPAddressID)}
	return definitionWithCreate(s)
}

func (s definitionWithCreate) WithSku(sku enums.VirtualNetworkGatewaySkuName) DefinitionWithCreate {
	setSku(s.d.inner.Properties, sku)
	return s
}

func (s definitionWithCreate) WithRouteBasedVPN() DefinitionWithCreate {
	s.d.inner.Properties.GatewayType = to.Ptr(network.VirtualNetworkGatewayTypeVPN)
	s.d.inner.Properties.VPNType = to.Ptr(network.VPNTypeRouteBased)
	return s
}

func (s definitionWithCreate) WithPolicyBasedVPN() DefinitionWithCreate {
	s.d.inner.Properties.GatewayType = to.Ptr(network.VirtualNetworkGatewayTypeVPN)
	s.d.inner.Properties.VPNType = to.Ptr(network.VPNTypePolicyBased)
	return s
}

func (s definitionWithCreate) WithExpressRoute() DefinitionWithCreate {
	s.d.inner.Properties.GatewayType = to.Ptr(network.VirtualNetworkGatewayTypeExpressRoute)
	s.d.inner.Properties.VPNType = nil
	return s
}

func (s definitionWithCreate) WithBGP(asn int64, peeringAddress string) DefinitionWithCreate {
	s.d.inner.Properties.EnableBgp = to.Ptr(true)
	s.d.inner.Properties.BgpSettings = &network.BgpSettings{
		Asn:               to.Ptr(asn),
		BgpPeeringAddress: to.Ptr(peeringAddress),
	}
	return s
}

func (s definitionWithCreate) WithTag(key, value string) DefinitionWithCreate {
	if s.d.inner.Tags == nil {
		s.d.inner.Tags = make(map[string]*string)
	}
	s.d.inner.Tags[key] = to.Ptr(value)
	return s
}

func (s definitionWithCreate) Create(ctx context.Context) (VirtualNetworkGateway, error) {
	props := s.d.inner.Properties
	if props.SKU == nil {
		setSku(props, defaultSku(to.Val(props.GatewayType)))
	}
	if to.Val(props.EnableBgp) && to.Val(props.VPNType) == network.VPNTypePolicyBased {
		return nil, errPolicyBasedBGP
	}
	return s.d.entry.createOrUpdate(ctx, "CreateVirtualNetworkGateway", s.d.resourceGroupName, s.d.name, s.d.inner)
}

// defaultSku picks the smallest SKU the gateway type accepts; ExpressRoute
// gateways cannot use Basic.
func defaultSku(gatewayType network.VirtualNetworkGatewayType) enums.VirtualNetworkGatewaySkuName {
	if gatewayType == network.VirtualNetworkGatewayTypeExpressRoute {
		return enums.VirtualNetworkGatewaySkuNameErGw1AZ
	}
	return enums.VirtualNetworkGatewaySkuNameBasic
}

func setSku(props *network.VirtualNetworkGatewayPropertiesFormat, sku enums.VirtualNetworkGatewaySkuName) {
	props.SKU = &network.VirtualNetworkGatewaySKU{
		Name: to.Ptr(network.VirtualNetworkGatewaySKUName(sku.String())),
		Tier: to.Ptr(network.VirtualNetworkGatewaySKUTier(sku.String())),
	}
}
