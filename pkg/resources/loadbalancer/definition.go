// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package loadbalancer

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"go.uber.org/multierr"

	"github.com/Azure/azure-network-fluent/pkg/enums"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

type DefinitionBlank interface {
	WithRegion(region string) DefinitionWithGroup
}

type DefinitionWithGroup interface {
	WithExistingResourceGroup(resourceGroupName string) DefinitionWithFrontend
}

// DefinitionWithFrontend picks the single frontend of the new load
// balancer, private in a subnet or public on a public IP address.
type DefinitionWithFrontend interface {
	WithFrontendSubnet(subnetID string) DefinitionWithCreate
	WithFrontendPublicIPAddress(publicIPAddressID string) DefinitionWithCreate
}

type DefinitionWithCreate interface {
	fluent.Creatable[LoadBalancer]

	WithSku(sku enums.LoadBalancerSkuType) DefinitionWithCreate
	WithBackend(name string) DefinitionWithCreate
	WithTCPProbe(name string, port int32) DefinitionWithCreate
	WithHTTPProbe(name, requestPath string, port int32) DefinitionWithCreate
	WithLoadBalancingRule(name string, opts RuleOptions) DefinitionWithCreate
	WithTag(key, value string) DefinitionWithCreate
}

type definition struct {
	entry *loadBalancers
	ids   childIDs
	inner network.LoadBalancer
	errs  error
}

type definitionBlank struct{ d *definition }
type definitionWithGroup struct{ d *definition }
type definitionWithFrontend struct{ d *definition }
type definitionWithCreate struct{ d *definition }

func newDefinition(entry *loadBalancers, name string) DefinitionBlank {
	return definitionBlank{d: &definition{
		entry: entry,
		ids: childIDs{
			subscriptionID:   entry.subscriptionID,
			loadBalancerName: name,
		},
	}}
}

func (s definitionBlank) WithRegion(region string) DefinitionWithGroup {
	s.d.inner.Location = to.Ptr(region)
	return definitionWithGroup(s)
}

func (s definitionWithGroup) WithExistingResourceGroup(resourceGroupName string) DefinitionWithFrontend {
	s.d.ids.resourceGroupName = resourceGroupName
	return definitionWithFrontend(s)
}

func (s definitionWithFrontend) WithFrontendSubnet(subnetID string) DefinitionWithCreate {
	properties(&s.d.inner).FrontendIPConfigurations = []*network.FrontendIPConfiguration{{
		Name: to.Ptr(DefaultFrontendName),
		Properties: &network.FrontendIPConfigurationPropertiesFormat{
			Subnet:                    &network.Subnet{ID: to.Ptr(subnetID)},
			PrivateIPAllocationMethod: to.Ptr(network.IPAllocationMethodDynamic),
		},
	}}
	return definitionWithCreate(s)
}

func (s definitionWithFrontend) WithFrontendPublicIPAddress(publicIPAddressID string) DefinitionWithCreate {
	properties(&s.d.inner).FrontendIPConfigurations = []*network.FrontendIPConfiguration{{
		Name: to.Ptr(DefaultFrontendName),
		Properties: &network.FrontendIPConfigurationPropertiesFormat{
			PublicIPAddress: &network.PublicIPAddress{ID: to.Ptr(publicIPAddressID)},
		},
	}}
	return definitionWithCreate(s)
}

func (s definitionWithCreate) WithSku(sku enums.LoadBalancerSkuType) DefinitionWithCreate {
	if sku != nil {
		s.d.inner.SKU = &network.LoadBalancerSKU{Name: to.Ptr(network.LoadBalancerSKUName(sku.String()))}
	}
	return s
}

func (s definitionWithCreate) WithBackend(name string) DefinitionWithCreate {
	setBackend(&s.d.inner, name)
	return s
}

func (s definitionWithCreate) WithTCPProbe(name string, port int32) DefinitionWithCreate {
	setProbe(&s.d.inner, name, enums.ProbeProtocolTCP, port, "")
	return s
}

func (s definitionWithCreate) WithHTTPProbe(name, requestPath string, port int32) DefinitionWithCreate {
	setProbe(&s.d.inner, name, enums.ProbeProtocolHTTP, port, requestPath)
	return s
}

func (s definitionWithCreate) WithLoadBalancingRule(name string, opts RuleOptions) DefinitionWithCreate {
	s.d.errs = multierr.Append(s.d.errs, setRule(&s.d.inner, s.d.ids, name, opts))
	return s
}

func (s definitionWithCreate) WithTag(key, value string) DefinitionWithCreate {
	setTag(&s.d.inner, key, value)
	return s
}

func (s definitionWithCreate) Create(ctx context.Context) (LoadBalancer, error) {
	if err := multierr.Append(s.d.errs, validateReferences(&s.d.inner)); err != nil {
		return nil, err
	}
	return s.d.entry.createOrUpdate(ctx, "CreateLoadBalancer", s.d.ids.resourceGroupName, s.d.ids.loadBalancerName, s.d.inner)
}
