// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package networkwatcher

import (
	"context"
	"time"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/enums"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

// NetworkWatcher is the network watcher of one region.
type NetworkWatcher interface {
	fluent.GroupableResource
	fluent.HasInner[network.Watcher]
	fluent.Refreshable[NetworkWatcher]
	fluent.Updatable[Update]

	ProvisioningState() string
	// Topology() gets the topology of the resources in targetResourceGroupName
	Topology(ctx context.Context, targetResourceGroupName string) (Topology, error)
}

// Topology is a snapshot of the network resources of a resource group and
// how they relate.
type Topology interface {
	fluent.HasInner[network.Topology]

	ID() string
	Parent() NetworkWatcher
	ResourceGroupName() string
	CreatedTime() time.Time
	LastModifiedTime() time.Time
	// Resources() returns the resources keyed by name
	Resources() map[string]TopologyResource
}

type TopologyResource interface {
	fluent.ChildResource[Topology]
	fluent.HasInner[network.TopologyResource]

	ID() string
	Location() string
	Associations() []TopologyAssociation
}

type TopologyAssociation interface {
	fluent.HasInner[network.TopologyAssociation]

	Name() string
	ResourceID() string
	AssociationType() enums.AssociationType
}

type watcher struct {
	fluent.TrackedResource
	inner *network.Watcher
	entry *watchers
}

var _ NetworkWatcher = &watcher{}

func newWatcher(inner *network.Watcher, entry *watchers) *watcher {
	return &watcher{
		TrackedResource: fluent.NewTrackedResource(inner.ID, inner.Name, inner.Type, inner.Location, inner.Tags),
		inner:           inner,
		entry:           entry,
	}
}

func (w *watcher) Inner() *network.Watcher {
	return w.inner
}

func (w *watcher) ProvisioningState() string {
	if w.inner.Properties == nil || w.inner.Properties.ProvisioningState == nil {
		return ""
	}
	return string(*w.inner.Properties.ProvisioningState)
}

func (w *watcher) Topology(ctx context.Context, targetResourceGroupName string) (Topology, error) {
	op := w.entry.operation("GetTopology", w.ResourceGroupName(), w.Name())
	return fluent.Call(ctx, op, func(ctx context.Context) (Topology, error) {
		inner, err := w.entry.client.GetTopology(ctx, w.ResourceGroupName(), w.Name(), targetResourceGroupName)
		if err != nil {
			return nil, err
		}
		return &topology{inner: inner, parent: w, resourceGroupName: targetResourceGroupName}, nil
	})
}

func (w *watcher) Refresh(ctx context.Context) (NetworkWatcher, error) {
	return w.entry.GetByResourceGroup(ctx, w.ResourceGroupName(), w.Name())
}

func (w *watcher) Update() Update {
	return newUpdate(w)
}

type topology struct {
	inner             *network.Topology
	parent            *watcher
	resourceGroupName string
}

func (t *topology) Inner() *network.Topology {
	return t.inner
}

func (t *topology) ID() string {
	return to.Val(t.inner.ID)
}

func (t *topology) Parent() NetworkWatcher {
	return t.parent
}

func (t *topology) ResourceGroupName() string {
	return t.resourceGroupName
}

func (t *topology) CreatedTime() time.Time {
	return to.Val(t.inner.CreatedDateTime)
}

func (t *topology) LastModifiedTime() time.Time {
	return to.Val(t.inner.LastModified)
}

func (t *topology) Resources() map[string]TopologyResource {
	ret := make(map[string]TopologyResource)
	for _, r := range t.inner.Resources {
		if r != nil && r.Name != nil {
			ret[*r.Name] = &topologyResource{inner: r, parent: t}
		}
	}
	return ret
}

type topologyResource struct {
	inner  *network.TopologyResource
	parent *topology
}

func (r *topologyResource) Name() string {
	return to.Val(r.inner.Name)
}

func (r *topologyResource) Parent() Topology {
	return r.parent
}

func (r *topologyResource) Inner() *network.TopologyResource {
	return r.inner
}

func (r *topologyResource) ID() string {
	return to.Val(r.inner.ID)
}

func (r *topologyResource) Location() string {
	return to.Val(r.inner.Location)
}

func (r *topologyResource) Associations() []TopologyAssociation {
	ret := make([]TopologyAssociation, 0, len(r.inner.Associations))
	for _, a := range r.inner.Associations {
		if a != nil {
			ret = append(ret, &topologyAssociation{inner: a})
		}
	}
	return ret
}

type topologyAssociation struct {
	inner *network.TopologyAssociation
}

func (a *topologyAssociation) Inner() *network.TopologyAssociation {
	return a.inner
}

func (a *topologyAssociation) Name() string {
	return to.Val(a.inner.Name)
}

func (a *topologyAssociation) ResourceID() string {
	return to.Val(a.inner.ResourceID)
}

func (a *topologyAssociation) AssociationType() enums.AssociationType {
	if a.inner.AssociationType == nil {
		return nil
	}
	return enums.AssociationTypeFromString(string(*a.inner.AssociationType))
}
