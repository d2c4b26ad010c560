// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package applicationgatewayclient

import (
	"context"
	"errors"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/azureclients/utils"
)

// Client implements the Interface
type Client struct {
	client *network.ApplicationGatewaysClient
}

// New creates a new application gateway client
func New(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*Client, error) {
	client, err := network.NewApplicationGatewaysClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	return &Client{client: client}, nil
}

func validate(resourceGroupName, applicationGatewayName string) error {
	if resourceGroupName == "" {
		return errors.New("parameter resourceGroupName cannot be empty")
	}
	if applicationGatewayName == "" {
		return errors.New("parameter applicationGatewayName cannot be empty")
	}
	return nil
}

// Get gets an application gateway
func (c *Client) Get(ctx context.Context, resourceGroupName, applicationGatewayName string) (*network.ApplicationGateway, error) {
	if err := validate(resourceGroupName, applicationGatewayName); err != nil {
		return nil, err
	}
	resp, err := c.client.Get(ctx, resourceGroupName, applicationGatewayName, nil)
	if err != nil {
		return nil, err
	}
	return &resp.ApplicationGateway, nil
}

// List lists the application gateways in a resource group
func (c *Client) List(ctx context.Context, resourceGroupName string) ([]*network.ApplicationGateway, error) {
	if resourceGroupName == "" {
		return nil, errors.New("parameter resourceGroupName cannot be empty")
	}
	pager := c.client.NewListPager(resourceGroupName, nil)
	return utils.CollectPages(ctx, pager, func(page network.ApplicationGatewaysClientListResponse) []*network.ApplicationGateway {
		return page.Value
	})
}

// ListAll lists the application gateways in the subscription
func (c *Client) ListAll(ctx context.Context) ([]*network.ApplicationGateway, error) {
	pager := c.client.NewListAllPager(nil)
	return utils.CollectPages(ctx, pager, func(page network.ApplicationGatewaysClientListAllResponse) []*network.ApplicationGateway {
		return page.Value
	})
}

// Delete deletes an application gateway
func (c *Client) Delete(ctx context.Context, resourceGroupName, applicationGatewayName string) error {
	if err := validate(resourceGroupName, applicationGatewayName); err != nil {
		return err
	}
	_, err := utils.PollUntilDone(ctx, func() (*runtime.Poller[network.ApplicationGatewaysClientDeleteResponse], error) {
		return c.client.BeginDelete(ctx, resourceGroupName, applicationGatewayName, nil)
	})
	return err
}

// Start starts an application gateway
func (c *Client) Start(ctx context.Context, resourceGroupName, applicationGatewayName string) error {
	if err := validate(resourceGroupName, applicationGatewayName); err != nil {
		return err
	}
	_, err := utils.PollUntilDone(ctx, func() (*runtime.Poller[network.ApplicationGatewaysClientStartResponse], error) {
		return c.client.BeginStart(ctx, resourceGroupName, applicationGatewayName, nil)
	})
	return err
}

// Stop stops an application gateway
func (c *Client) Stop(ctx context.Context, resourceGroupName, applicationGatewayName string) error {
	if err := validate(resourceGroupName, applicationGatewayName); err != nil {
		return err
	}
	_, err := utils.PollUntilDone(ctx, func() (*runtime.Poller[network.ApplicationGatewaysClientStopResponse], error) {
		return c.client.BeginStop(ctx, resourceGroupName, applicationGatewayName, nil)
	})
	return err
}

// BackendHealth gets the backend health of an application gateway
func (c *Client) BackendHealth(ctx context.Context, resourceGroupName, applicationGatewayName string) (*network.ApplicationGatewayBackendHealth, error) {
	if err := validate(resourceGroupName, applicationGatewayName); err != nil {
		return nil, err
	}
	resp, err := utils.PollUntilDone(ctx, func() (*runtime.Poller[network.ApplicationGatewaysClientBackendHealthResponse], error) {
		return c.client.BeginBackendHealth(ctx, resourceGroupName, applicationGatewayName, nil)
	})
	if err != nil {
		return nil, err
	}
	return &resp.ApplicationGatewayBackendHealth, nil
}
