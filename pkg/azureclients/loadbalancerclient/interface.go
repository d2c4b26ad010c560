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

//go:generate mockgen -destination=./mockloadbalancerclient/interface.go -package=mockloadbalancerclient -source=interface.go

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
)

type Interface interface {
	// Get() gets a load balancer object
	Get(ctx context.Context, resourceGroupName string, loadBalancerName string, expand *string) (*network.LoadBalancer, error)

	// List() lists the load balancers in a resource group
	List(ctx context.Context, resourceGroupName string) ([]*network.LoadBalancer, error)

	// ListAll() lists the load balancers in the subscription
	ListAll(ctx context.Context) ([]*network.LoadBalancer, error)

	// CreateOrUpdate() creates or updates a load balancer object
	CreateOrUpdate(ctx context.Context, resourceGroupName string, loadBalancerName string, loadBalancer network.LoadBalancer) (*network.LoadBalancer, error)

	// Delete() deletes a load balancer object
	Delete(ctx context.Context, resourceGroupName string, loadBalancerName string) error
}
