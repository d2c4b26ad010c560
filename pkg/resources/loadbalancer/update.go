// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package loadbalancer

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"go.uber.org/multierr"

	"github.com/Azure/azure-network-fluent/pkg/enums"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
)

// Update changes an existing load balancer. Apply fails without a remote
// call when a rule is left referencing a removed backend or probe.
type Update interface {
	fluent.Appliable[LoadBalancer]

	WithTCPProbe(name string, port int32) Update
	WithHTTPProbe(name, requestPath string, port int32) Update
	WithoutProbe(name string) Update
	WithBackend(name string) Update
	WithoutBackend(name string) Update
	WithLoadBalancingRule(name string, opts RuleOptions) Update
	WithoutLoadBalancingRule(name string) Update
	WithTag(key, value string) Update
	WithoutTag(key string) Update
}

type update struct {
	model *loadBalancer
	ids   childIDs
	inner *network.LoadBalancer
	errs  error
}

func newUpdate(model *loadBalancer) *update {
	inner, err := fluent.DeepCopy(model.inner)
	return &update{
		model: model,
		ids: childIDs{
			subscriptionID:    model.entry.subscriptionID,
			resourceGroupName: model.ResourceGroupName(),
			loadBalancerName:  model.Name(),
		},
		inner: inner,
		errs:  err,
	}
}

func (u *update) WithTCPProbe(name string, port int32) Update {
	if u.inner != nil {
		setProbe(u.inner, name, enums.ProbeProtocolTCP, port, "")
	}
	return u
}

func (u *update) WithHTTPProbe(name, requestPath string, port int32) Update {
	if u.inner != nil {
		setProbe(u.inner, name, enums.ProbeProtocolHTTP, port, requestPath)
	}
	return u
}

func (u *update) WithoutProbe(name string) Update {
	if u.inner != nil {
		props := properties(u.inner)
		props.Probes = removeNamed(props.Probes, func(p *network.Probe) *string { return p.Name }, name)
	}
	return u
}

func (u *update) WithBackend(name string) Update {
	if u.inner != nil {
		setBackend(u.inner, name)
	}
	return u
}

func (u *update) WithoutBackend(name string) Update {
	if u.inner != nil {
		props := properties(u.inner)
		props.BackendAddressPools = removeNamed(props.BackendAddressPools, func(b *network.BackendAddressPool) *string { return b.Name }, name)
	}
	return u
}

func (u *update) WithLoadBalancingRule(name string, opts RuleOptions) Update {
	if u.inner != nil {
		u.errs = multierr.Append(u.errs, setRule(u.inner, u.ids, name, opts))
	}
	return u
}

func (u *update) WithoutLoadBalancingRule(name string) Update {
	if u.inner != nil {
		props := properties(u.inner)
		props.LoadBalancingRules = removeNamed(props.LoadBalancingRules, func(r *network.LoadBalancingRule) *string { return r.Name }, name)
	}
	return u
}

func (u *update) WithTag(key, value string) Update {
	if u.inner != nil {
		setTag(u.inner, key, value)
	}
	return u
}

func (u *update) WithoutTag(key string) Update {
	if u.inner != nil {
		delete(u.inner.Tags, key)
	}
	return u
}

func (u *update) Apply(ctx context.Context) (LoadBalancer, error) {
	if u.inner == nil {
		return nil, u.errs
	}
	if err := multierr.Append(u.errs, validateReferences(u.inner)); err != nil {
		return nil, err
	}
	return u.model.entry.createOrUpdate(ctx, "UpdateLoadBalancer", u.ids.resourceGroupName, u.ids.loadBalancerName, *u.inner)
}
