// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package usageclient

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
	client *network.UsagesClient
}

// New creates a new usage client
func New(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*Client, error) {
	client, err := network.NewUsagesClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	return &Client{client: client}, nil
}

// List lists the network usages of a location
func (c *Client) List(ctx context.Context, location string) ([]*network.Usage, error) {
	if location == "" {
		return nil, errors.New("parameter location cannot be empty")
	}
	pager := c.client.NewListPager(location, nil)
	return utils.CollectPages(ctx, pager, func(page network.UsagesClientListResponse) []*network.Usage {
		return page.Value
	})
}
