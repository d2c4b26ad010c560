/*
   MIT License

   Copyright (c) Microsoft Corporation.

   Permission is hereby granted, free of charge, to any person obtaining a copy
   of this software and associated documentation files (the "Software"), to deal
   in the Software without restriction, including without limitation the rights
   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
   copies of the Software, and to permit persons to whom the Software is
   furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in all
   copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
   SOFTWARE
*/

package loadbalancerclient

import (
	"context"
	"errors"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/azureclients/utils"
)

type LoadBalancersClient struct {
	*network.LoadBalancersClient
}

var _ Interface = &LoadBalancersClient{}

func NewLoadBalancersClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*LoadBalancersClient, error) {
	client, err := network.NewLoadBalancersClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	return &LoadBalancersClient{client}, nil
}

func (client *LoadBalancersClient) Get(ctx context.Context, resourceGroupName string, loadBalancerName string, expand *string) (*network.LoadBalancer, error) {
	if resourceGroupName == "" {
		return nil, errors.New("parameter resourceGroupName cannot be empty")
	}
	if loadBalancerName == "" {
		return nil, errors.New("parameter loadBalancerName cannot be empty")
	}
	var options *network.LoadBalancersClientGetOptions
	if expand != nil && *expand != "" {
		options = &network.LoadBalancersClientGetOptions{Expand: expand}
	}
	resp, err := client.LoadBalancersClient.Get(ctx, resourceGroupName, loadBalancerName, options)
	if err != nil {
		return nil, err
	}
	return &resp.LoadBalancer, nil
}

func (client *LoadBalancersClient) List(ctx context.Context, resourceGroupName string) ([]*network.LoadBalancer, error) {
	if resourceGroupName == "" {
		return nil, errors.New("parameter resourceGroupName cannot be empty")
	}
	pager := client.LoadBalancersClient.NewListPager(resourceGroupName, nil)
	return utils.CollectPages(ctx, pager, func(page network.LoadBalancersClientListResponse) []*network.LoadBalancer {
		return page.Value
	})
}

func (client *LoadBalancersClient) ListAll(ctx context.Context) ([]*network.LoadBalancer, error) {
	pager := client.LoadBalancersClient.NewListAllPager(nil)
	return utils.CollectPages(ctx, pager, func(page network.LoadBalancersClientListAllResponse) []*network.LoadBalancer {
		return page.Value
	})
}

func (client *LoadBalancersClient) CreateOrUpdate(ctx context.Context, resourceGroupName, loadBalancerName string, loadBalancer network.LoadBalancer) (*network.LoadBalancer, error) {
	if resourceGroupName == "" {
		return nil, errors.New("parameter resourceGroupName cannot be empty")
	}
	if loadBalancerName == "" {
		return nil, errors.New("parameter loadBalancerName cannot be empty")
	}
	resp, err := utils.PollUntilDone(ctx, func() (*runtime.Poller[network.LoadBalancersClientCreateOrUpdateResponse], error) {
		return client.LoadBalancersClient.BeginCreateOrUpdate(ctx, resourceGroupName, loadBalancerName, loadBalancer, nil)
	})
	if err != nil {
		return nil, err
	}
	return &resp.LoadBalancer, nil
}

func (client *LoadBalancersClient) Delete(ctx context.Context, resourceGroupName, loadBalancerName string) error {
	if resourceGroupName == "" {
		return errors.New("parameter resourceGroupName cannot be empty")
	}
	if loadBalancerName == "" {
		return errors.New("parameter loadBalancerName cannot be empty")
	}
	_, err := utils.PollUntilDone(ctx, func() (*runtime.Poller[network.LoadBalancersClientDeleteResponse], error) {
		return client.LoadBalancersClient.BeginDelete(ctx, resourceGroupName, loadBalancerName, nil)
	})
	return err
}
