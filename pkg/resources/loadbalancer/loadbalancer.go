// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package loadbalancer

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/enums"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

// LoadBalancer is an Azure load balancer.
type LoadBalancer interface {
	fluent.GroupableResource
	fluent.HasInner[network.LoadBalancer]
	fluent.Refreshable[LoadBalancer]
	fluent.Updatable[Update]

	// Sku() returns the SKU, nil when the service did not report one
	Sku() enums.LoadBalancerSkuType
	// Frontends() returns the frontend IP configurations keyed by name
	Frontends() map[string]Frontend
	// Backends() returns the backend address pools keyed by name
	Backends() map[string]Backend
	// Probes() returns every health probe keyed by name
	Probes() map[string]Probe
	// TCPProbes() returns the TCP health probes keyed by name
	TCPProbes() map[string]Probe
	// HTTPProbes() returns the HTTP and HTTPS health probes keyed by name
	HTTPProbes() map[string]Probe
	// LoadBalancingRules() returns the load balancing rules keyed by name
	LoadBalancingRules() map[string]LoadBalancingRule
	// PublicIPAddressIDs() returns the IDs of the public IPs of the public frontends
	PublicIPAddressIDs() []string
}

type loadBalancer struct {
	fluent.TrackedResource
	inner *network.LoadBalancer
	entry *loadBalancers
}

var _ LoadBalancer = &loadBalancer{}

func newLoadBalancer(inner *network.LoadBalancer, entry *loadBalancers) *loadBalancer {
	return &loadBalancer{
		TrackedResource: fluent.NewTrackedResource(inner.ID, inner.Name, inner.Type, inner.Location, inner.Tags),
		inner:           inner,
		entry:           entry,
	}
}

func (lb *loadBalancer) Inner() *network.LoadBalancer {
	return lb.inner
}

func (lb *loadBalancer) properties() *network.LoadBalancerPropertiesFormat {
	if lb.inner.Properties == nil {
		return &network.LoadBalancerPropertiesFormat{}
	}
	return lb.inner.Properties
}

func (lb *loadBalancer) Sku() enums.LoadBalancerSkuType {
	if lb.inner.SKU == nil || lb.inner.SKU.Name == nil {
		return nil
	}
	return enums.LoadBalancerSkuTypeFromString(string(*lb.inner.SKU.Name))
}

func (lb *loadBalancer) Frontends() map[string]Frontend {
	ret := make(map[string]Frontend)
	for _, f := range lb.properties().FrontendIPConfigurations {
		if f != nil && f.Name != nil {
			ret[*f.Name] = &frontend{inner: f, parent: lb}
		}
	}
	return ret
}

func (lb *loadBalancer) Backends() map[string]Backend {
	ret := make(map[string]Backend)
	for _, b := range lb.properties().BackendAddressPools {
		if b != nil && b.Name != nil {
			ret[*b.Name] = &backend{inner: b, parent: lb}
		}
	}
	return ret
}

func (lb *loadBalancer) probes(match func(Probe) bool) map[string]Probe {
	ret := make(map[string]Probe)
	for _, p := range lb.properties().Probes {
		if p == nil || p.Name == nil {
			continue
		}
		if wrapped := (&probe{inner: p, parent: lb}); match(wrapped) {
			ret[*p.Name] = wrapped
		}
	}
	return ret
}

func (lb *loadBalancer) Probes() map[string]Probe {
	return lb.probes(func(Probe) bool { return true })
}

func (lb *loadBalancer) TCPProbes() map[string]Probe {
	return lb.probes(func(p Probe) bool { return p.Protocol() == enums.ProbeProtocolTCP })
}

func (lb *loadBalancer) HTTPProbes() map[string]Probe {
	return lb.probes(func(p Probe) bool {
		return p.Protocol() == enums.ProbeProtocolHTTP || p.Protocol() == enums.ProbeProtocolHTTPS
	})
}

func (lb *loadBalancer) LoadBalancingRules() map[string]LoadBalancingRule {
	ret := make(map[string]LoadBalancingRule)
	for _, r := range lb.properties().LoadBalancingRules {
		if r != nil && r.Name != nil {
			ret[*r.Name] = &loadBalancingRule{inner: r, parent: lb}
		}
	}
	return ret
}

func (lb *loadBalancer) PublicIPAddressIDs() []string {
	ret := []string{}
	for _, f := range lb.properties().FrontendIPConfigurations {
		if f == nil {
			continue
		}
		if id := (&frontend{inner: f, parent: lb}).PublicIPAddressID(); id != "" {
			ret = append(ret, id)
		}
	}
	return ret
}

func (lb *loadBalancer) Refresh(ctx context.Context) (LoadBalancer, error) {
	return lb.entry.GetByResourceGroup(ctx, lb.ResourceGroupName(), lb.Name())
}

func (lb *loadBalancer) Update() Update {
	return newUpdate(lb)
}

func subResourceName(s *network.SubResource) string {
	if s == nil {
		return ""
	}
	return fluent.NameFromID(to.Val(s.ID))
}

func subResourceNames(list []*network.SubResource) []string {
	ret := make([]string, 0, len(list))
	for _, s := range list {
		if name := subResourceName(s); name != "" {
			ret = append(ret, name)
		}
	}
	return ret
}
