// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package securitygroupclient

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
	client *network.SecurityGroupsClient
}

// New creates a new network security group client
func New(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*Client, error) {
	client, err := network.NewSecurityGroupsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	return &Client{client: client}, nil
}

// Get gets a network security group
func (c *Client) Get(ctx context.Context, resourceGroupName, networkSecurityGroupName string, expand *string) (*network.SecurityGroup, error) {
	if resourceGroupName == "" {
		return nil, errors.New("parameter resourceGroupName cannot be empty")
	}
	if networkSecurityGroupName == "" {
		return nil, errors.New("parameter networkSecurityGroupName cannot be empty")
	}
	var options *network.SecurityGroupsClientGetOptions
	if expand != nil && *expand != "" {
		options = &network.SecurityGroupsClientGetOptions{Expand: expand}
	}
	resp, err := c.client.Get(ctx, resourceGroupName, networkSecurityGroupName, options)
	if err != nil {
		return nil, err
	}
	return &resp.SecurityGroup, nil
}

// List lists the network security groups in a resource group
func (c *Client) List(ctx context.Context, resourceGroupName string) ([]*network.SecurityGroup, error) {
	if resourceGroupName == "" {
		return nil, errors.New("parameter resourceGroupName cannot be empty")
	}
	pager := c.client.NewListPager(resourceGroupName, nil)
	return utils.CollectPages(ctx, pager, func(page network.SecurityGroupsClientListResponse) []*network.SecurityGroup {
		return page.Value
	})
}

// ListAll lists the network security groups in the subscription
func (c *Client) ListAll(ctx context.Context) ([]*network.SecurityGroup, error) {
	pager := c.client.NewListAllPager(nil)
	return utils.CollectPages(ctx, pager, func(page network.SecurityGroupsClientListAllResponse) []*network.SecurityGroup {
		return page.Value
	})
}

// CreateOrUpdate creates or updates a network security group
func (c *Client) CreateOrUpdate(ctx context.Context, resourceGroupName, networkSecurityGroupName string, securityGroup network.SecurityGroup) (*network.SecurityGroup, error) {
	if resourceGroupName == "" {
		return nil, errors.New("parameter resourceGroupName cannot be empty")
	}
	if networkSecurityGroupName == "" {
		return nil, errors.New("parameter networkSecurityGroupName cannot be empty")
	}
	resp, err := utils.PollUntilDone(ctx, func() (*runtime.Poller[network.SecurityGroupsClientCreateOrUpdateResponse], error) {
		return c.client.BeginCreateOrUpdate(ctx, resourceGroupName, networkSecurityGroupName, securityGroup, nil)
	})
	if err != nil {
		return nil, err
	}
	return &resp.SecurityGroup, nil
}

// Delete deletes a network security group
func (c *Client) Delete(ctx context.Context, resourceGroupName, networkSecurityGroupName string) error {
	if resourceGroupName == "" {
		return errors.New("parameter resourceGroupName cannot be empty")
	}
	if networkSecurityGroupName == "" {
		return errors.New("parameter networkSecurityGroupName cannot be empty")
	}
	_, err := utils.PollUntilDone(ctx, func() (*runtime.Poller[network.SecurityGroupsClientDeleteResponse], error) {
		return c.client.BeginDelete(ctx, resourceGroupName, networkSecurityGroupName, nil)
	})
	return err
}
