// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package securitygroup

import (
	"context"
	"strings"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

type DefinitionBlank interface {
	WithRegion(region string) DefinitionWithGroup
}

type DefinitionWithGroup interface {
	WithExistingResourceGroup(resourceGroupName string) DefinitionWithCreate
}

type DefinitionWithCreate interface {
	fluent.Creatable[NetworkSecurityGroup]

	// DefineRule() starts a rule definition, Attach returns to this stage
	DefineRule(name string) RuleBlank[DefinitionWithCreate]
	WithTag(key, value string) DefinitionWithCreate
}

type definition struct {
	entry             *securityGroups
	name              string
	resourceGroupName string
	inner             network.SecurityGroup
	autoPriority      sets.Set[string]
}

type definitionBlank struct{ d *definition }
type definitionWithGroup struct{ d *definition }
type definitionWithCreate struct{ d *definition }

func newDefinition(entry *securityGroups, name string) DefinitionBlank {
	return definitionBlank{d: &definition{
		entry: entry,
		name:  name,
		inner: network.SecurityGroup{
			Properties: &network.SecurityGroupPropertiesFormat{},
		},
		autoPriority: sets.New[string](),
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

func (s definitionWithCreate) DefineRule(name string) RuleBlank[DefinitionWithCreate] {
	return newRuleDefinition(name, func(rule *network.SecurityRule, hasPriority bool) DefinitionWithCreate {
		setRule(s.d.inner.Properties, rule)
		key := strings.ToLower(name)
		if hasPriority {
			s.d.autoPriority.Delete(key)
		} else {
			s.d.autoPriority.Insert(key)
		}
		return s
	})
}

func (s definitionWithCreate) WithTag(key, value string) DefinitionWithCreate {
	if s.d.inner.Tags == nil {
		s.d.inner.Tags = make(map[string]*string)
	}
	s.d.inner.Tags[key] = to.Ptr(value)
	return s
}

func (s definitionWithCreate) Create(ctx context.Context) (NetworkSecurityGroup, error) {
	if err := assignPriorities(s.d.inner.Properties.SecurityRules, s.d.autoPriority); err != nil {
		return nil, err
	}
	return s.d.entry.createOrUpdate(ctx, "CreateNetworkSecurityGroup", s.d.resourceGroupName, s.d.name, s.d.inner)
}
