// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package networkwatcher

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

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
	fluent.Creatable[NetworkWatcher]

	WithTag(key, value string) DefinitionWithCreate
}

type definition struct {
	entry             *watchers
	name              string
	resourceGroupName string
	inner             network.Watcher
}

type definitionBlank struct{ d *definition }
type definitionWithGroup struct{ d *definition }
type definitionWithCreate struct{ d *definition }

func newDefinition(entry *watchers, name string) DefinitionBlank {
	return definitionBlank{d: &definition{
		entry: entry,
		name:  name,
		inner: network.Watcher{Properties: &network.WatcherPropertiesFormat{}},
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

func (s definitionWithCreate) WithTag(key, value string) DefinitionWithCreate {
	if s.d.inner.Tags == nil {
		s.d.inner.Tags = make(map[string]*string)
	}
	s.d.inner.Tags[key] = to.Ptr(value)
	return s
}

func (s definitionWithCreate) Create(ctx context.Context) (NetworkWatcher, error) {
	return s.d.entry.createOrUpdate(ctx, "CreateNetworkWatcher", s.d.resourceGroupName, s.d.name, s.d.inner)
}

// Update changes the tags of an existing network watcher.
type Update interface {
	fluent.Appliable[NetworkWatcher]

	WithTag(key, value string) Update
	WithoutTag(key string) Update
}

type update struct {
	model *watcher
	inner *network.Watcher
	err   error
}

func newUpdate(model *watcher) *update {
	inner, err := fluent.DeepCopy(model.inner)
	return &update{model: model, inner: inner, err: err}
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

func (u *update) Apply(ctx context.Context) (NetworkWatcher, error) {
	if u.err != nil {
		return nil, u.err
	}
	return u.model.entry.createOrUpdate(ctx, "UpdateNetworkWatcher", u.model.ResourceGroupName(), u.model.Name(), *u.inner)
}
