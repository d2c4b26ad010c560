// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package virtualnetwork

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/consts"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

// DefinitionBlank is the first stage of a network definition.
type DefinitionBlank interface {
	WithRegion(region string) DefinitionWithGroup
}

type DefinitionWithGroup interface {
	WithExistingResourceGroup(resourceGroupName string) DefinitionWithCreate
}

// DefinitionWithCreate holds every optional setting. Without an address
// space the network gets 10.0.0.0/16, and without subnets a single
// "subnet1" covering the first address space.
type DefinitionWithCreate interface {
	fluent.Creatable[Network]

	WithAddressSpace(cidr string) DefinitionWithCreate
	WithSubnet(name, cidr string) DefinitionWithCreate
	WithDNSServer(ip string) DefinitionWithCreate
	WithTag(key, value string) DefinitionWithCreate
}

type definition struct {
	entry             *networks
	name              string
	resourceGroupName string
	inner             network.VirtualNetwork
}

type definitionBlank struct{ d *definition }
type definitionWithGroup struct{ d *definition }
type definitionWithCreate struct{ d *definition }

func newDefinition(entry *networks, name string) DefinitionBlank {
	return definitionBlank{d: &definition{
		entry: entry,
		name:  name,
		inner: network.VirtualNetwork{
			Properties: &network.VirtualNetworkPropertiesFormat{
				AddressSpace: &network.AddressSpace{},
			},
		},
	}}
}

func (s definitionBlank) WithRegion(region string) DefinitionWithGroup {
	s.d.inner.Location = to.Ptr(region)
	return definitionWithGroup(s)
}

func (s definitionWithGroup) WithExistingResourceGroup(resourceGroupName string) DefinitionWithCreate {
	s.d.resourceGroupName = resourceGroupName
	return definitionWithCreate(s)
}

func (s definitionWithCreate) WithAddressSpace(cidr string) DefinitionWithCreate {
	space := s.d.inner.Properties.AddressSpace
	space.AddressPrefixes = addUnique(space.AddressPrefixes, cidr)
	return s
}

func (s definitionWithCreate) WithSubnet(name, cidr string) DefinitionWithCreate {
	setSubnet(s.d.inner.Properties, name, cidr)
	return s
}

func (s definitionWithCreate) WithDNSServer(ip string) DefinitionWithCreate {
	props := s.d.inner.Properties
	if props.DhcpOptions == nil {
		props.DhcpOptions = &network.DhcpOptions{}
	}
	props.DhcpOptions.DNSServers = addUnique(props.DhcpOptions.DNSServers, ip)
	return s
}

func (s definitionWithCreate) WithTag(key, value string) DefinitionWithCreate {
	if s.d.inner.Tags == nil {
		s.d.inner.Tags = make(map[string]*string)
	}
	s.d.inner.Tags[key] = to.Ptr(value)
	return s
}

func (s definitionWithCreate) Create(ctx context.Context) (Network, error) {
	inner := s.d.inner
	props := *inner.Properties
	space := *props.AddressSpace
	if len(space.AddressPrefixes) == 0 {
		space.AddressPrefixes = []*string{to.Ptr(consts.DefaultAddressSpace)}
	}
	props.AddressSpace = &space
	if len(props.Subnets) == 0 {
		props.Subnets = []*network.Subnet{{
			Name: to.Ptr(consts.DefaultSubnetName),
			Properties: &network.SubnetPropertiesFormat{
				AddressPrefix: space.AddressPrefixes[0],
			},
		}}
	}
	inner.Properties = &props
	return s.d.entry.createOrUpdate(ctx, "CreateVirtualNetwork", s.d.resourceGroupName, s.d.name, inner)
}
