// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package virtualnetworkclient

import (
	"context"
	"errors"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/azureclients/utils"
)

// Client implements the Interface
type Client struct {
	client *network.VirtualNetworksClient
}

// New creates a new virtual network client
func New(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*Client, error) {
	client, err := network.NewVirtualNetworksClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	return &Client{client: client}, nil
}

// Get gets a virtual network
func (c *Client) Get(ctx context.Context, resourceGroupName, virtualNetworkName string, expand *string) (*network.VirtualNetwork, error) {
	if resourceGroupName == "" {
		return nil, errors.New("parameter resourceGroupName cannot be empty")
	}
	if virtualNetworkName == "" {
		return nil, errors.New("parameter virtualNetworkName cannot be empty")
	}
	var options *network.VirtualNetworksClientGetOptions
	if expand != nil && *expand != "" {
		options = &network.VirtualNetworksClientGetOptions{Expand: expand}
	}
	resp, err := c.client.Get(ctx, resourceGroupName, virtualNetworkName, options)
	if err != nil {
		return nil, err
	}
	return &resp.VirtualNetwork, nil
}

// List lists the virtual networks in a resource group
func (c *Client) List(ctx context.Context, resourceGroupName string) ([]*network.VirtualNetwork, error) {
	if resourceGroupName == "" {
		return nil, errors.New("parameter resourceGroupName cannot be empty")
	}
	pager := c.client.NewListPager(resourceGroupName, nil)
	return utils.CollectPages(ctx, pager, func(page network.VirtualNetworksClientListResponse) []*network.VirtualNetwork {
		return page.Value
	})
}

// ListAll lists the virtual networks in the subscription
func (c *Client) ListAll(ctx context.Context) ([]*network.VirtualNetwork, error) {
	pager := c.client.NewListAllPager(nil)
	return utils.CollectPages(ctx, pager, func(page network.VirtualNetworksClientListAllResponse) []*network.VirtualNetwork {
		return page.Value
	})
}

// CreateOrUpdate creates or updates a virtual network
func (c *Client) CreateOrUpdate(ctx context.Context, resourceGroupName, virtualNetworkName string, virtualNetwork network.VirtualNetwork) (*network.VirtualNetwork, error) {
	if resourceGroupName == "" {
		return nil, errors.New("parameter resourceGroupName cannot be empty")
	}
	if virtualNetworkName == "" {
		return nil, errors.New("parameter virtualNetworkName cannot be empty")
	}

	poller, err := c.client.BeginCreateOrUpdate(ctx, resourceGroupName, virtualNetworkName, virtualNetwork, nil)
	if err != nil {
		return nil, err
	}

	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &resp.VirtualNetwork, nil
}

// Delete deletes a virtual network
func (c *Client) Delete(ctx context.Context, resourceGroupName, virtualNetworkName string) error {
	if resourceGroupName == "" {
		return errors.New("parameter resourceGroupName cannot be empty")
	}
	if virtualNetworkName == "" {
		return errors.New("parameter virtualNetworkName cannot be empty")
	}

	poller, err := c.client.BeginDelete(ctx, resourceGroupName, virtualNetworkName, nil)
	if err != nil {
		return err
	}

	_, err = poller.PollUntilDone(ctx, nil)
	return err
}
