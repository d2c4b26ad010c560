// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package loadbalancer

import (
	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/enums"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

// Frontend is a frontend IP configuration. A public frontend references a
// public IP address, a private one a subnet.
type Frontend interface {
	fluent.ChildResource[LoadBalancer]
	fluent.HasInner[network.FrontendIPConfiguration]

	IsPublic() bool
	PublicIPAddressID() string
	SubnetID() string
	PrivateIPAddress() string
	PrivateIPAllocationMethod() enums.IPAllocationMethod
	LoadBalancingRuleNames() []string
}

// Backend is a backend address pool.
type Backend interface {
	fluent.ChildResource[LoadBalancer]
	fluent.HasInner[network.BackendAddressPool]

	LoadBalancingRuleNames() []string
	// BackendIPConfigurationIDs() returns the NIC IP configurations in the pool
	BackendIPConfigurationIDs() []string
}

// Probe is a TCP, HTTP or HTTPS health probe.
type Probe interface {
	fluent.ChildResource[LoadBalancer]
	fluent.HasInner[network.Probe]

	Protocol() enums.ProbeProtocol
	Port() int32
	IntervalInSeconds() int32
	NumberOfProbes() int32
	// RequestPath() is empty for TCP probes
	RequestPath() string
	LoadBalancingRuleNames() []string
}

// LoadBalancingRule maps a frontend port to a backend port.
type LoadBalancingRule interface {
	fluent.ChildResource[LoadBalancer]
	fluent.HasInner[network.LoadBalancingRule]

	Protocol() enums.Protocol
	FrontendPort() int32
	BackendPort() int32
	IdleTimeoutInMinutes() int32
	FloatingIPEnabled() bool
	FrontendName() string
	BackendName() string
	// ProbeName() is empty when the rule has no probe
	ProbeName() string
}

type frontend struct {
	inner  *network.FrontendIPConfiguration
	parent *loadBalancer
}

func (f *frontend) Name() string {
	return to.Val(f.inner.Name)
}

func (f *frontend) Parent() LoadBalancer {
	return f.parent
}

func (f *frontend) Inner() *network.FrontendIPConfiguration {
	return f.inner
}

func (f *frontend) props() *network.FrontendIPConfigurationPropertiesFormat {
	if f.inner.Properties == nil {
		return &network.FrontendIPConfigurationPropertiesFormat{}
	}
	return f.inner.Properties
}

func (f *frontend) IsPublic() bool {
	return f.props().PublicIPAddress != nil
}

func (f *frontend) PublicIPAddressID() string {
	if f.props().PublicIPAddress == nil {
		return ""
	}
	return to.Val(f.props().PublicIPAddress.ID)
}

func (f *frontend) SubnetID() string {
	if f.props().Subnet == nil {
		return ""
	}
	return to.Val(f.props().Subnet.ID)
}

func (f *frontend) PrivateIPAddress() string {
	return to.Val(f.props().PrivateIPAddress)
}

func (f *frontend) PrivateIPAllocationMethod() enums.IPAllocationMethod {
	if f.props().PrivateIPAllocationMethod == nil {
		return nil
	}
	return enums.IPAllocationMethodFromString(string(*f.props().PrivateIPAllocationMethod))
}

func (f *frontend) LoadBalancingRuleNames() []string {
	return subResourceNames(f.props().LoadBalancingRules)
}

type backend struct {
	inner  *network.BackendAddressPool
	parent *loadBalancer
}

func (b *backend) Name() string {
	return to.Val(b.inner.Name)
}

func (b *backend) Parent() LoadBalancer {
	return b.parent
}

func (b *backend) Inner() *network.BackendAddressPool {
	return b.inner
}

func (b *backend) LoadBalancingRuleNames() []string {
	if b.inner.Properties == nil {
		return []string{}
	}
	return subResourceNames(b.inner.Properties.LoadBalancingRules)
}

func (b *backend) BackendIPConfigurationIDs() []string {
	ret := []string{}
	if b.inner.Properties == nil {
		return ret
	}
	for _, c := range b.inner.Properties.BackendIPConfigurations {
		if c != nil && c.ID != nil {
			ret = append(ret, *c.ID)
		}
	}
	return ret
}

type probe struct {
	inner  *network.Probe
	parent *loadBalancer
}

func (p *probe) Name() string {
	return to.Val(p.inner.Name)
}

func (p *probe) Parent() LoadBalancer {
	return p.parent
}

func (p *probe) Inner() *network.Probe {
	return p.inner
}

func (p *probe) props() *network.ProbePropertiesFormat {
	if p.inner.Properties == nil {
		return &network.ProbePropertiesFormat{}
	}
	return p.inner.Properties
}

func (p *probe) Protocol() enums.ProbeProtocol {
	if p.props().Protocol == nil {
		return nil
	}
	return enums.ProbeProtocolFromString(string(*p.props().Protocol))
}

func (p *probe) Port() int32 {
	return to.Val(p.props().Port)
}

func (p *probe) IntervalInSeconds() int32 {
	return to.Val(p.props().IntervalInSeconds)
}

func (p *probe) NumberOfProbes() int32 {
	return to.Val(p.props().NumberOfProbes)
}

func (p *probe) RequestPath() string {
	return to.Val(p.props().RequestPath)
}

func (p *probe) LoadBalancingRuleNames() []string {
	return subResourceNames(p.props().LoadBalancingRules)
}

type loadBalancingRule struct {
	inner  *network.LoadBalancingRule
	parent *loadBalancer
}

func (r *loadBalancingRule) Name() string {
	return to.Val(r.inner.Name)
}

func (r *loadBalancingRule) Parent() LoadBalancer {
	return r.parent
}

func (r *loadBalancingRule) Inner() *network.LoadBalancingRule {
	return r.inner
}

func (r *loadBalancingRule) props() *network.LoadBalancingRulePropertiesFormat {
	if r.inner.Properties == nil {
		return &network.LoadBalancingRulePropertiesFormat{}
	}
	return r.inner.Properties
}

func (r *loadBalancingRule) Protocol() enums.Protocol {
	if r.props().Protocol == nil {
		return enums.ProtocolUnknown
	}
	p, _ := enums.ProtocolFromString(string(*r.props().Protocol))
	return p
}

func (r *loadBalancingRule) FrontendPort() int32 {
	return to.Val(r.props().FrontendPort)
}

func (r *loadBalancingRule) BackendPort() int32 {
	return to.Val(r.props().BackendPort)
}

func (r *loadBalancingRule) IdleTimeoutInMinutes() int32 {
	return to.Val(r.props().IdleTimeoutInMinutes)
}

func (r *loadBalancingRule) FloatingIPEnabled() bool {
	return to.Val(r.props().EnableFloatingIP)
}

func (r *loadBalancingRule) FrontendName() string {
	return subResourceName(r.props().FrontendIPConfiguration)
}

func (r *loadBalancingRule) BackendName() string {
	return subResourceName(r.props().BackendAddressPool)
}

func (r *loadBalancingRule) ProbeName() string {
	return subResourceName(r.props().Probe)
}
