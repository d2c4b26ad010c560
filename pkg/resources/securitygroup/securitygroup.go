// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package securitygroup

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/enums"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

// NetworkSecurityGroup is a network security group.
type NetworkSecurityGroup interface {
	fluent.GroupableResource
	fluent.HasInner[network.SecurityGroup]
	fluent.Refreshable[NetworkSecurityGroup]
	fluent.Updatable[Update]

	// SecurityRules() returns the user defined rules keyed by name
	SecurityRules() map[string]SecurityRule
	// DefaultSecurityRules() returns the rules Azure adds to every group
	DefaultSecurityRules() map[string]SecurityRule
	NetworkInterfaceIDs() []string
	SubnetIDs() []string
}

// SecurityRule is a rule of a network security group.
type SecurityRule interface {
	fluent.ChildResource[NetworkSecurityGroup]
	fluent.HasInner[network.SecurityRule]

	Direction() enums.SecurityRuleDirection
	Access() enums.SecurityRuleAccess
	Protocol() enums.Protocol
	SourceAddressPrefix() string
	SourcePortRange() string
	DestinationAddressPrefix() string
	DestinationPortRange() string
	Priority() int32
	Description() string
}

type securityGroup struct {
	fluent.TrackedResource
	inner *network.SecurityGroup
	entry *securityGroups
}

var _ NetworkSecurityGroup = &securityGroup{}

func newSecurityGroup(inner *network.SecurityGroup, entry *securityGroups) *securityGroup {
	return &securityGroup{
		TrackedResource: fluent.NewTrackedResource(inner.ID, inner.Name, inner.Type, inner.Location, inner.Tags),
		inner:           inner,
		entry:           entry,
	}
}

func (g *securityGroup) Inner() *network.SecurityGroup {
	return g.inner
}

func (g *securityGroup) properties() *network.SecurityGroupPropertiesFormat {
	if g.inner.Properties == nil {
		return &network.SecurityGroupPropertiesFormat{}
	}
	return g.inner.Properties
}

func (g *securityGroup) wrapRules(rules []*network.SecurityRule) map[string]SecurityRule {
	ret := make(map[string]SecurityRule)
	for _, r := range rules {
		if r != nil && r.Name != nil {
			ret[*r.Name] = &securityRule{inner: r, parent: g}
		}
	}
	return ret
}

func (g *securityGroup) SecurityRules() map[string]SecurityRule {
	return g.wrapRules(g.properties().SecurityRules)
}

func (g *securityGroup) DefaultSecurityRules() map[string]SecurityRule {
	return g.wrapRules(g.properties().DefaultSecurityRules)
}

func (g *securityGroup) NetworkInterfaceIDs() []string {
	ret := []string{}
	for _, nic := range g.properties().NetworkInterfaces {
		if nic != nil && nic.ID != nil {
			ret = append(ret, *nic.ID)
		}
	}
	return ret
}

func (g *securityGroup) SubnetIDs() []string {
	ret := []string{}
	for _, s := range g.properties().Subnets {
		if s != nil && s.ID != nil {
			ret = append(ret, *s.ID)
		}
	}
	return ret
}

func (g *securityGroup) Refresh(ctx context.Context) (NetworkSecurityGroup, error) {
	return g.entry.GetByResourceGroup(ctx, g.ResourceGroupName(), g.Name())
}

func (g *securityGroup) Update() Update {
	return newUpdate(g)
}

type securityRule struct {
	inner  *network.SecurityRule
	parent *securityGroup
}

func (r *securityRule) Name() string {
	return to.Val(r.inner.Name)
}

func (r *securityRule) Parent() NetworkSecurityGroup {
	return r.parent
}

func (r *securityRule) Inner() *network.SecurityRule {
	return r.inner
}

func (r *securityRule) props() *network.SecurityRulePropertiesFormat {
	if r.inner.Properties == nil {
		return &network.SecurityRulePropertiesFormat{}
	}
	return r.inner.Properties
}

func (r *securityRule) Direction() enums.SecurityRuleDirection {
	if r.props().Direction == nil {
		return nil
	}
	return enums.SecurityRuleDirectionFromString(string(*r.props().Direction))
}

func (r *securityRule) Access() enums.SecurityRuleAccess {
	if r.props().Access == nil {
		return nil
	}
	return enums.SecurityRuleAccessFromString(string(*r.props().Access))
}

func (r *securityRule) Protocol() enums.Protocol {
	if r.props().Protocol == nil {
		return enums.ProtocolUnknown
	}
	p, _ := enums.ProtocolFromString(string(*r.props().Protocol))
	return p
}

func (r *securityRule) SourceAddressPrefix() string {
	return to.Val(r.props().SourceAddressPrefix)
}

func (r *securityRule) SourcePortRange() string {
	return to.Val(r.props().SourcePortRange)
}

func (r *securityRule) DestinationAddressPrefix() string {
	return to.Val(r.props().DestinationAddressPrefix)
}

func (r *securityRule) DestinationPortRange() string {
	return to.Val(r.props().DestinationPortRange)
}

func (r *securityRule) Priority() int32 {
	return to.Val(r.props().Priority)
}

func (r *securityRule) Description() string {
	return to.Val(r.props().Description)
}
