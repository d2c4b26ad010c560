// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package virtualnetwork

import (
	"context"
	"slices"
	"strings"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

// Update changes an existing network. Nothing is sent until Apply.
type Update interface {
	fluent.Appliable[Network]

	WithAddressSpace(cidr string) Update
	WithSubnet(name, cidr string) Update
	WithoutSubnet(name string) Update
	WithDNSServer(ip string) Update
	WithTag(key, value string) Update
	WithoutTag(key string) Update
}

type update struct {
	model *vnet
	inner *network.VirtualNetwork
	err   error
}

func newUpdate(model *vnet) *update {
	inner, err := fluent.DeepCopy(model.inner)
	if err == nil && inner.Properties == nil {
		inner.Properties = &network.VirtualNetworkPropertiesFormat{}
	}
	return &update{model: model, inner: inner, err: err}
}

func (u *update) WithAddressSpace(cidr string) Update {
	if u.err != nil {
		return u
	}
	if u.inner.Properties.AddressSpace == nil {
		u.inner.Properties.AddressSpace = &network.AddressSpace{}
	}
	space := u.inner.Properties.AddressSpace
	space.AddressPrefixes = addUnique(space.AddressPrefixes, cidr)
	return u
}

func (u *update) WithSubnet(name, cidr string) Update {
	if u.err != nil {
		return u
	}
	setSubnet(u.inner.Properties, name, cidr)
	return u
}

func (u *update) WithoutSubnet(name string) Update {
	if u.err != nil {
		return u
	}
	u.inner.Properties.Subnets = slices.DeleteFunc(u.inner.Properties.Subnets, func(s *network.Subnet) bool {
		return s == nil || strings.EqualFold(to.Val(s.Name), name)
	})
	return u
}

func (u *update) WithDNSServer(ip string) Update {
	if u.err != nil {
		return u
	}
	props := u.inner.Properties
	if props.DhcpOptions == nil {
		props.DhcpOptions = &network.DhcpOptions{}
	}
	props.DhcpOptions.DNSServers = addUnique(props.DhcpOptions.DNSServers, ip)
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

func (u *update) Apply(ctx context.Context) (Network, error) {
	if u.err != nil {
		return nil, u.err
	}
	return u.model.entry.createOrUpdate(ctx, "UpdateVirtualNetwork", u.model.ResourceGroupName(), u.model.Name(), *u.inner)
}
