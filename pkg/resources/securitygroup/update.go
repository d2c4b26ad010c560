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

// Update changes an existing network security group. Default rules are
// owned by Azure and cannot be changed.
type Update interface {
	fluent.Appliable[NetworkSecurityGroup]

	DefineRule(name string) RuleBlank[Update]
	WithoutRule(name string) Update
	WithTag(key, value string) Update
	WithoutTag(key string) Update
}

type update struct {
	model        *securityGroup
	inner        *network.SecurityGroup
	autoPriority sets.Set[string]
	err          error
}

func newUpdate(model *securityGroup) *update {
	inner, err := fluent.DeepCopy(model.inner)
	if err == nil && inner.Properties == nil {
		inner.Properties = &network.SecurityGroupPropertiesFormat{}
	}
	return &update{
		model:        model,
		inner:        inner,
		autoPriority: sets.New[string](),
		err:          err,
	}
}

func (u *update) DefineRule(name string) RuleBlank[Update] {
	return newRuleDefinition(name, func(rule *network.SecurityRule, hasPriority bool) Update {
		if u.err != nil {
			return u
		}
		setRule(u.inner.Properties, rule)
		key := strings.ToLower(name)
		if hasPriority {
			u.autoPriority.Delete(key)
		} else {
			u.autoPriority.Insert(key)
		}
		return u
	})
}

func (u *update) WithoutRule(name string) Update {
	if u.err != nil {
		return u
	}
	removeRule(u.inner.Properties, name)
	u.autoPriority.Delete(strings.ToLower(name))
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

func (u *update) Apply(ctx context.Context) (NetworkSecurityGroup, error) {
	if u.err != nil {
		return nil, u.err
	}
	if err := assignPriorities(u.inner.Properties.SecurityRules, u.autoPriority); err != nil {
		return nil, err
	}
	return u.model.entry.createOrUpdate(ctx, "UpdateNetworkSecurityGroup", u.model.ResourceGroupName(), u.model.Name(), *u.inner)
}
