// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.

package applicationgatewayclient

//go:generate mockgen -destination=./mockapplicationgatewayclient/interface.go -package=mockapplicationgatewayclient -source=interface.go

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
)

type Interface interface {
	// Get() gets an application gateway object
	Get(ctx context.Context, resourceGroupName string, applicationGatewayName string) (*network.ApplicationGateway, error)

	// List() lists the application gateways in a resource group
	List(ctx context.Context, resourceGroupName string) ([]*network.ApplicationGateway, error)

	// ListAll() lists the application gateways in the subscription
	ListAll(ctx context.Context) ([]*network.ApplicationGateway, error)

	// Delete() deletes an application gateway object
	Delete(ctx context.Context, resourceGroupName string, applicationGatewayName string) error

	// Start() starts an application gateway
	Start(ctx context.Context, resourceGroupName string, applicationGatewayName string) error

	// Stop() stops an application gateway
	Stop(ctx context.Context, resourceGroupName string, applicationGatewayName string) error

	// BackendHealth() gets the backend health of an application gateway
	BackendHealth(ctx context.Context, resourceGroupName string, applicationGatewayName string) (*network.ApplicationGatewayBackendHealth, error)
}
