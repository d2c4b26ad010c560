// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package virtualnetwork

import (
	"context"
	"strings"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

// Network is a virtual network.
type Network interface {
	fluent.GroupableResource
	fluent.HasInner[network.VirtualNetwork]
	fluent.Refreshable[Network]
	fluent.Updatable[Update]

	// AddressSpaces() returns the CIDRs of the network address space
	AddressSpaces() []string
	// DNSServerIPs() returns the custom DNS servers, empty when Azure DNS is used
	DNSServerIPs() []string
	// Subnets() returns the subnets keyed by name
	Subnets() map[string]Subnet
}

// Subnet is a subnet of a virtual network.
type Subnet interface {
	fluent.ChildResource[Network]
	fluent.HasInner[network.Subnet]

	AddressPrefix() string
	NetworkSecurityGroupID() string
}

type vnet struct {
	fluent.TrackedResource
	inner *network.VirtualNetwork
	entry *networks
}

var _ Network = &vnet{}

func newNetwork(inner *network.VirtualNetwork, entry *networks) *vnet {
	return &vnet{
		TrackedResource: fluent.NewTrackedResource(inner.ID, inner.Name, inner.Type, inner.Location, inner.Tags),
		inner:           inner,
		entry:           entry,
	}
}

func (n *vnet) Inner() *network.VirtualNetwork {
	return n.inner
}

func (n *vnet) AddressSpaces() []string {
	if n.inner.Properties == nil || n.inner.Properties.AddressSpace == nil {
		return []string{}
	}
	return to.Values(n.inner.Properties.AddressSpace.AddressPrefixes)
}

func (n *vnet) DNSServerIPs() []string {
	if n.inner.Properties == nil || n.inner.Properties.DhcpOptions == nil {
		return []string{}
	}
	return to.Values(n.inner.Properties.DhcpOptions.DNSServers)
}

func (n *vnet) Subnets() map[string]Subnet {
	ret := make(map[string]Subnet)
	if n.inner.Properties == nil {
		return ret
	}
	for _, s := range n.inner.Properties.Subnets {
		if s == nil || s.Name == nil {
			continue
		}
		ret[*s.Name] = &subnet{inner: s, parent: n}
	}
	return ret
}

func (n *vnet) Refresh(ctx context.Context) (Network, error) {
	return n.entry.GetByResourceGroup(ctx, n.ResourceGroupName(), n.Name())
}

func (n *vnet) Update() Update {
	return newUpdate(n)
}

type subnet struct {
	inner  *network.Subnet
	parent *vnet
}

func (s *subnet) Name() string {
	return to.Val(s.inner.Name)
}

func (s *subnet) Parent() Network {
	return s.parent
}

func (s *subnet) Inner() *network.Subnet {
	return s.inner
}

// AddressPrefix falls back to the first of AddressPrefixes for dual stack subnets.
func (s *subnet) AddressPrefix() string {
	if s.inner.Properties == nil {
		return ""
	}
	if s.inner.Properties.AddressPrefix != nil {
		return *s.inner.Properties.AddressPrefix
	}
	if prefixes := to.Values(s.inner.Properties.AddressPrefixes); len(prefixes) > 0 {
		return prefixes[0]
	}
	return ""
}

func (s *subnet) NetworkSecurityGroupID() string {
	if s.inner.Properties == nil || s.inner.Properties.NetworkSecurityGroup == nil {
		return ""
	}
	return to.Val(s.inner.Properties.NetworkSecurityGroup.ID)
}

// setSubnet adds a subnet or replaces the prefix of an existing one.
func setSubnet(props *network.VirtualNetworkPropertiesFormat, name, cidr string) {
	for _, s := range props.Subnets {
		if s != nil && strings.EqualFold(to.Val(s.Name), name) {
			if s.Properties == nil {
				s.Properties = &network.SubnetPropertiesFormat{}
			}
			s.Properties.AddressPrefix = to.Ptr(cidr)
			s.Properties.AddressPrefixes = nil
			return
		}
	}
	props.Subnets = append(props.Subnets, &network.Subnet{
		Name: to.Ptr(name),
		Properties: &network.SubnetPropertiesFormat{
			AddressPrefix: to.Ptr(cidr),
		},
	})
}

func addUnique(list []*string, value string) []*string {
	for _, v := range list {
		if v != nil && *v == value {
			return list
		}
	}
	return append(list, to.Ptr(value))
}
