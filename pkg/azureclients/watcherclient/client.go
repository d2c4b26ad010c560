// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package watcherclient

import (
	"context"
	"errors"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/azureclients/utils"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

// Client implements the Interface
type Client struct {
	client *network.WatchersClient
}

// New creates a new network watcher client
func New(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*Client, error) {
	client, err := network.NewWatchersClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	return &Client{client: client}, nil
}

// Get gets a network watcher
func (c *Client) Get(ctx context.Context, resourceGroupName, networkWatcherName string) (*network.Watcher, error) {
	if resourceGroupName == "" {
		return nil, errors.New("parameter resourceGroupName cannot be empty")
	}
	if networkWatcherName == "" {
		return nil, errors.New("parameter networkWatcherName cannot be empty")
	}
	resp, err := c.client.Get(ctx, resourceGroupName, networkWatcherName, nil)
	if err != nil {
		return nil, err
	}
	return &resp.Watcher, nil
}

// List lists the network watchers in a resource group
func (c *Client) List(ctx context.Context, resourceGroupName string) ([]*network.Watcher, error) {
	if resourceGroupName == "" {
		return nil, errors.New("parameter resourceGroupName cannot be empty")
	}
	pager := c.client.NewListPager(resourceGroupName, nil)
	return utils.CollectPages(ctx, pager, func(page network.WatchersClientListResponse) []*network.Watcher {
		return page.Value
	})
}

// ListAll lists the network watchers in the subscription
func (c *Client) ListAll(ctx context.Context) ([]*network.Watcher, error) {
	pager := c.client.NewListAllPager(nil)
	return utils.CollectPages(ctx, pager, func(page network.WatchersClientListAllResponse) []*network.Watcher {
		return page.Value
	})
}

// CreateOrUpdate creates or updates a network watcher. The service completes
// this call synchronously.
func (c *Client) CreateOrUpdate(ctx context.Context, resourceGroupName, networkWatcherName string, watcher network.Watcher) (*network.Watcher, error) {
	if resourceGroupName == "" {
		return nil, errors.New("parameter resourceGroupName cannot be empty")
	}
	if networkWatcherName == "" {
		return nil, errors.New("parameter networkWatcherName cannot be empty")
	}
	resp, err := c.client.CreateOrUpdate(ctx, resourceGroupName, networkWatcherName, watcher, nil)
	if err != nil {
		return nil, err
	}
	return &resp.Watcher, nil
}

// Delete deletes a network watcher
func (c *Client) Delete(ctx context.Context, resourceGroupName, networkWatcherName string) error {
	if resourceGroupName == "" {
		return errors.New("parameter resourceGroupName cannot be empty")
	}
	if networkWatcherName == "" {
		return errors.New("parameter networkWatcherName cannot be empty")
	}
	_, err := utils.PollUntilDone(ctx, func() (*runtime.Poller[network.WatchersClientDeleteResponse], error) {
		return c.client.BeginDelete(ctx, resourceGroupName, networkWatcherName, nil)
	})
	return err
}

// GetTopology gets the topology of targetResourceGroupName as seen by the watcher
func (c *Client) GetTopology(ctx context.Context, resourceGroupName, networkWatcherName, targetResourceGroupName string) (*network.Topology, error) {
	if resourceGroupName == "" {
		return nil, errors.New("parameter resourceGroupName cannot be empty")
	}
	if networkWatcherName == "" {
		return nil, errors.New("parameter networkWatcherName cannot be empty")
	}
	if targetResourceGroupName == "" {
		return nil, errors.New("parameter targetResourceGroupName cannot be empty")
	}
	resp, err := c.client.GetTopology(ctx, resourceGroupName, networkWatcherName, network.TopologyParameters{
		TargetResourceGroupName: to.Ptr(targetResourceGroupName),
	}, nil)
	if err != nil {
		return nil, err
	}
	return &resp.Topology, nil
}
