// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package fluent

import (
	"maps"
	"strings"

	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

// HasInner exposes the wire representation a model wraps. The returned value
// is the model's snapshot and must not be modified.
type HasInner[T any] interface {
	Inner() *T
}

// Indexable is anything addressable by an ARM ID.
type Indexable interface {
	ID() string
}

// Resource is a top-level (tracked) ARM resource.
type Resource interface {
	Indexable
	Name() string
	Type() string
	RegionName() string
	Tags() map[string]string
}

// GroupableResource is a resource living in a resource group.
type GroupableResource interface {
	Resource
	ResourceGroupName() string
}

// ChildResource is a resource owned by its parent, e.g. a load balancer probe.
type ChildResource[P any] interface {
	Name() string
	Parent() P
}

// TrackedResource implements GroupableResource over the common ARM
// envelope fields. Models embed it.
type TrackedResource struct {
	id       string
	name     string
	typ      string
	location string
	tags     map[string]string
}

func NewTrackedResource(id, name, typ, location *string, tags map[string]*string) TrackedResource {
	return TrackedResource{
		id:       to.Val(id),
		name:     to.Val(name),
		typ:      to.Val(typ),
		location: to.Val(location),
		tags:     to.StringMap(tags),
	}
}

func (r TrackedResource) ID() string {
	return r.id
}

func (r TrackedResource) Name() string {
	return r.name
}

func (r TrackedResource) Type() string {
	return r.typ
}

func (r TrackedResource) RegionName() string {
	return r.location
}

// Tags returns a copy of the resource tags.
func (r TrackedResource) Tags() map[string]string {
	return maps.Clone(r.tags)
}

// ResourceGroupName is derived from the ID, empty when the ID is not a
// resource group scoped ARM ID.
func (r TrackedResource) ResourceGroupName() string {
	return ResourceGroupFromID(r.id)
}

// ResourceGroupFromID extracts the resource group segment of an ARM ID
// without validating the rest of it.
func ResourceGroupFromID(id string) string {
	parts := strings.Split(id, "/")
	for i := 0; i+1 < len(parts); i++ {
		if strings.EqualFold(parts[i], "resourceGroups") {
			return parts[i+1]
		}
	}
	return ""
}
