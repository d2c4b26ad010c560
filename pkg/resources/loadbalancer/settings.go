// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package loadbalancer

import (
	"fmt"
	"slices"
	"strings"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"go.uber.org/multierr"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/Azure/azure-network-fluent/pkg/consts"
	"github.com/Azure/azure-network-fluent/pkg/enums"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

// DefaultFrontendName names the frontend created by a definition.
const DefaultFrontendName = "frontend"

// RuleOptions describes a load balancing rule. Children are referenced by
// name and resolved into IDs of the same load balancer.
type RuleOptions struct {
	Protocol     enums.Protocol
	FrontendPort int32
	BackendPort  int32
	// Frontend defaults to the first frontend of the load balancer
	Frontend string
	Backend  string
	// Probe is optional
	Probe string
	// IdleTimeoutInMinutes defaults to 4
	IdleTimeoutInMinutes int32
	EnableFloatingIP     bool
}

type childIDs struct {
	subscriptionID    string
	resourceGroupName string
	loadBalancerName  string
}

func (c childIDs) frontend(name string) *string {
	return to.Ptr(fmt.Sprintf(consts.LBFrontendIPConfigTemplate, c.subscriptionID, c.resourceGroupName, c.loadBalancerName, name))
}

func (c childIDs) backend(name string) *string {
	return to.Ptr(fmt.Sprintf(consts.LBBackendPoolIDTemplate, c.subscriptionID, c.resourceGroupName, c.loadBalancerName, name))
}

func (c childIDs) probe(name string) *string {
	return to.Ptr(fmt.Sprintf(consts.LBProbeIDTemplate, c.subscriptionID, c.resourceGroupName, c.loadBalancerName, name))
}

func properties(inner *network.LoadBalancer) *network.LoadBalancerPropertiesFormat {
	if inner.Properties == nil {
		inner.Properties = &network.LoadBalancerPropertiesFormat{}
	}
	return inner.Properties
}

func setTag(inner *network.LoadBalancer, key, value string) {
	if inner.Tags == nil {
		inner.Tags = make(map[string]*string)
	}
	inner.Tags[key] = to.Ptr(value)
}

func setBackend(inner *network.LoadBalancer, name string) {
	props := properties(inner)
	for _, b := range props.BackendAddressPools {
		if b != nil && strings.EqualFold(to.Val(b.Name), name) {
			return
		}
	}
	props.BackendAddressPools = append(props.BackendAddressPools, &network.BackendAddressPool{Name: to.Ptr(name)})
}

func setProbe(inner *network.LoadBalancer, name string, protocol enums.ProbeProtocol, port int32, requestPath string) {
	p := &network.Probe{
		Name: to.Ptr(name),
		Properties: &network.ProbePropertiesFormat{
			Protocol:          to.Ptr(network.ProbeProtocol(protocol.String())),
			Port:              to.Ptr(port),
			IntervalInSeconds: to.Ptr(consts.DefaultProbeIntervalInSeconds),
			NumberOfProbes:    to.Ptr(consts.DefaultNumberOfProbes),
		},
	}
	if requestPath != "" {
		p.Properties.RequestPath = to.Ptr(requestPath)
	}
	props := properties(inner)
	for i, existing := range props.Probes {
		if existing != nil && strings.EqualFold(to.Val(existing.Name), name) {
			props.Probes[i] = p
			return
		}
	}
	props.Probes = append(props.Probes, p)
}

func setRule(inner *network.LoadBalancer, ids childIDs, name string, opts RuleOptions) error {
	if opts.Protocol == enums.ProtocolUnknown {
		return fmt.Errorf("load balancing rule %q: protocol is required", name)
	}
	if opts.Backend == "" {
		return fmt.Errorf("load balancing rule %q: backend is required", name)
	}
	props := properties(inner)
	frontendName := opts.Frontend
	if frontendName == "" && len(props.FrontendIPConfigurations) > 0 {
		frontendName = to.Val(props.FrontendIPConfigurations[0].Name)
	}
	idleTimeout := opts.IdleTimeoutInMinutes
	if idleTimeout == 0 {
		idleTimeout = consts.DefaultIdleTimeoutInMinutes
	}
	rule := &network.LoadBalancingRule{
		Name: to.Ptr(name),
		Properties: &network.LoadBalancingRulePropertiesFormat{
			Protocol:                to.Ptr(opts.Protocol.TransportProtocol()),
			FrontendPort:            to.Ptr(opts.FrontendPort),
			BackendPort:             to.Ptr(opts.BackendPort),
			IdleTimeoutInMinutes:    to.Ptr(idleTimeout),
			EnableFloatingIP:        to.Ptr(opts.EnableFloatingIP),
			FrontendIPConfiguration: &network.SubResource{ID: ids.frontend(frontendName)},
			BackendAddressPool:      &network.SubResource{ID: ids.backend(opts.Backend)},
		},
	}
	if opts.Probe != "" {
		rule.Properties.Probe = &network.SubResource{ID: ids.probe(opts.Probe)}
	}
	for i, existing := range props.LoadBalancingRules {
		if existing != nil && strings.EqualFold(to.Val(existing.Name), name) {
			props.LoadBalancingRules[i] = rule
			return nil
		}
	}
	props.LoadBalancingRules = append(props.LoadBalancingRules, rule)
	return nil
}

func removeNamed[T any](list []*T, nameOf func(*T) *string, name string) []*T {
	return slices.DeleteFunc(list, func(v *T) bool {
		return v == nil || strings.EqualFold(to.Val(nameOf(v)), name)
	})
}

func names[T any](list []*T, nameOf func(*T) *string) sets.Set[string] {
	ret := sets.New[string]()
	for _, v := range list {
		if v != nil {
			ret.Insert(strings.ToLower(to.Val(nameOf(v))))
		}
	}
	return ret
}

// validateReferences checks every rule references children that exist.
func validateReferences(inner *network.LoadBalancer) error {
	props := properties(inner)
	frontends := names(props.FrontendIPConfigurations, func(f *network.FrontendIPConfiguration) *string { return f.Name })
	backends := names(props.BackendAddressPools, func(b *network.BackendAddressPool) *string { return b.Name })
	probes := names(props.Probes, func(p *network.Probe) *string { return p.Name })

	var errs error
	for _, r := range props.LoadBalancingRules {
		if r == nil || r.Properties == nil {
			continue
		}
		ruleName := to.Val(r.Name)
		if name := subResourceName(r.Properties.FrontendIPConfiguration); !frontends.Has(strings.ToLower(name)) {
			errs = multierr.Append(errs, fmt.Errorf("load balancing rule %q references unknown frontend %q", ruleName, name))
		}
		if name := subResourceName(r.Properties.BackendAddressPool); !backends.Has(strings.ToLower(name)) {
			errs = multierr.Append(errs, fmt.Errorf("load balancing rule %q references unknown backend %q", ruleName, name))
		}
		if r.Properties.Probe == nil {
			continue
		}
		if name := subResourceName(r.Properties.Probe); !probes.Has(strings.ToLower(name)) {
			errs = multierr.Append(errs, fmt.Errorf("load balancing rule %q references unknown probe %q", ruleName, name))
		}
	}
	return errs
}
