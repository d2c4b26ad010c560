// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package fluent

import "context"

// SupportsCreating starts a staged definition of a new resource.
type SupportsCreating[D any] interface {
	// Define() returns the first definition stage of a resource named name
	Define(name string) D
}

type SupportsListing[T any] interface {
	// List() lists the resources in the subscription
	List(ctx context.Context) ([]T, error)
}

type SupportsListingByResourceGroup[T any] interface {
	// ListByResourceGroup() lists the resources in a resource group
	ListByResourceGroup(ctx context.Context, resourceGroupName string) ([]T, error)
}

type SupportsGettingByID[T any] interface {
	// GetByID() gets a resource by its ARM ID
	GetByID(ctx context.Context, id string) (T, error)
}

type SupportsGettingByResourceGroup[T any] interface {
	// GetByResourceGroup() gets a resource by resource group and name
	GetByResourceGroup(ctx context.Context, resourceGroupName, name string) (T, error)
}

type SupportsDeletingByID interface {
	// DeleteByID() deletes a resource by its ARM ID
	DeleteByID(ctx context.Context, id string) error
}

type SupportsDeletingByResourceGroup interface {
	// DeleteByResourceGroup() deletes a resource by resource group and name
	DeleteByResourceGroup(ctx context.Context, resourceGroupName, name string) error
}

type SupportsBatchCreation[T any] interface {
	// CreateAll() creates every definition concurrently
	CreateAll(ctx context.Context, creatables ...Creatable[T]) ([]T, error)
}

type SupportsBatchDeletion interface {
	// DeleteByIDs() deletes every resource concurrently
	DeleteByIDs(ctx context.Context, ids ...string) error
}

// Creatable is the final stage of a definition.
type Creatable[T any] interface {
	// Create() issues the remote create call and returns the created resource
	Create(ctx context.Context) (T, error)
}

// Appliable is the final stage of an update.
type Appliable[T any] interface {
	// Apply() issues the remote update call and returns the updated resource
	Apply(ctx context.Context) (T, error)
}

type Updatable[U any] interface {
	// Update() starts an update of the resource
	Update() U
}

type Refreshable[T any] interface {
	// Refresh() fetches a fresh snapshot of the resource
	Refresh(ctx context.Context) (T, error)
}
