// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package fluent

import "context"

// GroupableResources derives the by-ID capabilities of an entry point from
// its resource group scoped getter and deleter. Entry points embed it.
type GroupableResources[T any] struct {
	// ResourceType is the ARM type IDs must carry, e.g. "Microsoft.Network/loadBalancers"
	ResourceType string

	GetFunc    func(ctx context.Context, resourceGroupName, name string) (T, error)
	DeleteFunc func(ctx context.Context, resourceGroupName, name string) error
}

func (g GroupableResources[T]) GetByID(ctx context.Context, id string) (T, error) {
	rid, err := ParseResourceID(id, g.ResourceType)
	if err != nil {
		var zero T
		return zero, err
	}
	return g.GetFunc(ctx, rid.ResourceGroupName, rid.Name)
}

func (g GroupableResources[T]) DeleteByID(ctx context.Context, id string) error {
	rid, err := ParseResourceID(id, g.ResourceType)
	if err != nil {
		return err
	}
	return g.DeleteFunc(ctx, rid.ResourceGroupName, rid.Name)
}

func (g GroupableResources[T]) DeleteByIDs(ctx context.Context, ids ...string) error {
	return DeleteAll(ctx, g.DeleteByID, ids...)
}
