// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.

package securitygroupclient

//go:generate mockgen -destination=./mocksecuritygroupclient/interface.go -package=mocksecuritygroupclient -source=interface.go

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
)

type Interface interface {
	// Get() gets a network security group object
	Get(ctx context.Context, resourceGroupName string, networkSecurityGroupName string, expand *string) (*network.SecurityGroup, error)

	// List() lists the network security groups in a resource group
	List(ctx context.Context, resourceGroupName string) ([]*network.SecurityGroup, error)

	// ListAll() lists the network security groups in the subscription
	ListAll(ctx context.Context) ([]*network.SecurityGroup, error)

	// CreateOrUpdate() creates or updates a network security group object
	CreateOrUpdate(ctx context.Context, resourceGroupName string, networkSecurityGroupName string, securityGroup network.SecurityGroup) (*network.SecurityGroup, error)

	// Delete() deletes a network security group object
	Delete(ctx context.Context, resourceGroupName string, networkSecurityGroupName string) error
}
