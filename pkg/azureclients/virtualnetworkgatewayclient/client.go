// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package virtualnetworkgatewayclient

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
	client *network.VirtualNetworkGatewaysClient
}

// New creates a new virtual network gateway client
func New(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*Client, error) {
	client, err := network.NewVirtualNetworkGatewaysClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	return &Client{client: client}, nil
}

func validate(resourceGroupName, virtualNetworkGatewayName string) error {
	if resourceGroupName == "" {
		return errors.New("parameter resourceGroupName cannot be empty")
	}
	if virtualNetworkGatewayName == "" {
		return errors.New("parameter virtualNetworkGatewayName cannot be empty")
	}
	return nil
}

// Get gets a virtual network gateway
func (c *Client) Get(ctx context.Context, resourceGroupName, virtualNetworkGatewayName string) (*network.VirtualNetworkGateway, error) {
	if err := validate(resourceGroupName, virtualNetworkGatewayName); err != nil {
		return nil, err
	}
	resp, err := c.client.Get(ctx, resourceGroupName, virtualNetworkGatewayName, nil)
	if err != nil {
		return nil, err
	}
	return &resp.VirtualNetworkGateway, nil
}

// List lists the virtual network gateways in a resource group. The service
// has no subscription wide listing for gateways.
func (c *Client) List(ctx context.Context, resourceGroupName string) ([]*network.VirtualNetworkGateway, error) {
	if resourceGroupName == "" {
		return nil, errors.New("parameter resourceGroupName cannot be empty")
	}
	pager := c.client.NewListPager(resourceGroupName, nil)
	return utils.CollectPages(ctx, pager, func(page network.VirtualNetworkGatewaysClientListResponse) []*network.VirtualNetworkGateway {
		return page.Value
	})
}

// CreateOrUpdate creates or updates a virtual network gateway
func (c *Client) CreateOrUpdate(ctx context.Context, resourceGroupName, virtualNetworkGatewayName string, gateway network.VirtualNetworkGateway) (*network.VirtualNetworkGateway, error) {
	if err := validate(resourceGroupName, virtualNetworkGatewayName); err != nil {
		return nil, err
	}
	resp, err := utils.PollUntilDone(ctx, func() (*runtime.Poller[network.VirtualNetworkGatewaysClientCreateOrUpdateResponse], error) {
		return c.client.BeginCreateOrUpdate(ctx, resourceGroupName, virtualNetworkGatewayName, gateway, nil)
	})
	if err != nil {
		return nil, err
	}
	return &resp.VirtualNetworkGateway, nil
}

// Delete deletes a virtual network gateway
func (c *Client) Delete(ctx context.Context, resourceGroupName, virtualNetworkGatewayName string) error {
	if err := validate(resourceGroupName, virtualNetworkGatewayName); err != nil {
		return err
	}
	_, err := utils.PollUntilDone(ctx, func() (*runtime.Poller[network.VirtualNetworkGatewaysClientDeleteResponse], error) {
		return c.client.BeginDelete(ctx, resourceGroupName, virtualNetworkGatewayName, nil)
	})
	return err
}

// Reset resets the primary instance of a virtual network gateway
func (c *Client) Reset(ctx context.Context, resourceGroupName, virtualNetworkGatewayName string) (*network.VirtualNetworkGateway, error) {
	if err := validate(resourceGroupName, virtualNetworkGatewayName); err != nil {
		return nil, err
	}
	resp, err := utils.PollUntilDone(ctx, func() (*runtime.Poller[network.VirtualNetworkGatewaysClientResetResponse], error) {
		return c.client.BeginReset(ctx, resourceGroupName, virtualNetworkGatewayName, nil)
	})
	if err != nil {
		return nil, err
	}
	return &resp.VirtualNetworkGateway, nil
}
