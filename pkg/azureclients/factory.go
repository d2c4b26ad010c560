// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package azureclients

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"github.com/Azure/azure-network-fluent/pkg/azureclients/applicationgatewayclient"
	"github.com/Azure/azure-network-fluent/pkg/azureclients/loadbalancerclient"
	"github.com/Azure/azure-network-fluent/pkg/azureclients/securitygroupclient"
	"github.com/Azure/azure-network-fluent/pkg/azureclients/usageclient"
	"github.com/Azure/azure-network-fluent/pkg/azureclients/virtualnetworkclient"
	"github.com/Azure/azure-network-fluent/pkg/azureclients/virtualnetworkgatewayclient"
	"github.com/Azure/azure-network-fluent/pkg/azureclients/watcherclient"
	"github.com/Azure/azure-network-fluent/pkg/config"
)

type AzureClientsFactory interface {
	// get the subscription the clients operate on
	SubscriptionID() string

	// get virtual networks client
	GetVirtualNetworksClient() (virtualnetworkclient.Interface, error)

	// get load balancers client
	GetLoadBalancersClient() (loadbalancerclient.Interface, error)

	// get network security groups client
	GetSecurityGroupsClient() (securitygroupclient.Interface, error)

	// get network watchers client
	GetWatchersClient() (watcherclient.Interface, error)

	// get application gateways client
	GetApplicationGatewaysClient() (applicationgatewayclient.Interface, error)

	// get virtual network gateways client
	GetVirtualNetworkGatewaysClient() (virtualnetworkgatewayclient.Interface, error)

	// get network usages client
	GetUsagesClient() (usageclient.Interface, error)
}

type azureClientsFactory struct {
	credentials    azcore.TokenCredential
	subscriptionID string
	options        *arm.ClientOptions
}

// NewAzureClientsFactory picks the credential type described by cfg.
func NewAzureClientsFactory(cfg *config.CloudConfig) (AzureClientsFactory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	options, err := cfg.ClientOptions()
	if err != nil {
		return nil, err
	}
	switch {
	case cfg.UseUserAssignedIdentity:
		return NewAzureClientsFactoryWithManagedIdentity(cfg.SubscriptionID, cfg.UserAssignedIdentityID, options)
	case cfg.UseDefaultCredential:
		credentials, err := azidentity.NewDefaultAzureCredential(&azidentity.DefaultAzureCredentialOptions{
			ClientOptions: options.ClientOptions,
			TenantID:      cfg.TenantID,
		})
		if err != nil {
			return nil, err
		}
		return NewAzureClientsFactoryWithCredential(cfg.SubscriptionID, credentials, options)
	default:
		return NewAzureClientsFactoryWithClientSecret(cfg.SubscriptionID, cfg.TenantID, cfg.AADClientID, cfg.AADClientSecret, options)
	}
}

func NewAzureClientsFactoryWithClientSecret(subscriptionID, tenantID, aadClientID, aadClientSecret string, options *arm.ClientOptions) (AzureClientsFactory, error) {
	var credOptions *azidentity.ClientSecretCredentialOptions
	if options != nil {
		credOptions = &azidentity.ClientSecretCredentialOptions{ClientOptions: options.ClientOptions}
	}
	credentials, err := azidentity.NewClientSecretCredential(tenantID, aadClientID, aadClientSecret, credOptions)
	if err != nil {
		return nil, err
	}
	return NewAzureClientsFactoryWithCredential(subscriptionID, credentials, options)
}

func NewAzureClientsFactoryWithManagedIdentity(subscriptionID, managedIdentityID string, options *arm.ClientOptions) (AzureClientsFactory, error) {
	credOptions := &azidentity.ManagedIdentityCredentialOptions{ID: azidentity.ClientID(managedIdentityID)}
	if options != nil {
		credOptions.ClientOptions = options.ClientOptions
	}
	credentials, err := azidentity.NewManagedIdentityCredential(credOptions)
	if err != nil {
		return nil, err
	}
	return NewAzureClientsFactoryWithCredential(subscriptionID, credentials, options)
}

// NewAzureClientsFactoryWithCredential wraps an existing credential.
func NewAzureClientsFactoryWithCredential(subscriptionID string, credentials azcore.TokenCredential, options *arm.ClientOptions) (AzureClientsFactory, error) {
	if subscriptionID == "" {
		return nil, fmt.Errorf("subscription ID is empty")
	}
	if credentials == nil {
		return nil, fmt.Errorf("credential is nil")
	}
	return &azureClientsFactory{
		credentials:    credentials,
		subscriptionID: subscriptionID,
		options:        options,
	}, nil
}

func (factory *azureClientsFactory) SubscriptionID() string {
	return factory.subscriptionID
}

func (factory *azureClientsFactory) GetVirtualNetworksClient() (virtualnetworkclient.Interface, error) {
	client, err := virtualnetworkclient.New(factory.subscriptionID, factory.credentials, factory.options)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (factory *azureClientsFactory) GetLoadBalancersClient() (loadbalancerclient.Interface, error) {
	client, err := loadbalancerclient.NewLoadBalancersClient(factory.subscriptionID, factory.credentials, factory.options)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (factory *azureClientsFactory) GetSecurityGroupsClient() (securitygroupclient.Interface, error) {
	client, err := securitygroupclient.New(factory.subscriptionID, factory.credentials, factory.options)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (factory *azureClientsFactory) GetWatchersClient() (watcherclient.Interface, error) {
	client, err := watcherclient.New(factory.subscriptionID, factory.credentials, factory.options)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (factory *azureClientsFactory) GetApplicationGatewaysClient() (applicationgatewayclient.Interface, error) {
	client, err := applicationgatewayclient.New(factory.subscriptionID, factory.credentials, factory.options)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (factory *azureClientsFactory) GetVirtualNetworkGatewaysClient() (virtualnetworkgatewayclient.Interface, error) {
	client, err := virtualnetworkgatewayclient.New(factory.subscriptionID, factory.credentials, factory.options)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (factory *azureClientsFactory) GetUsagesClient() (usageclient.Interface, error) {
	client, err := usageclient.New(factory.subscriptionID, factory.credentials, factory.options)
	if err != nil {
		return nil, err
	}
	return client, nil
}
