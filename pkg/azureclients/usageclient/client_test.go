// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package usageclient

import (
	"context"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	azfake "github.com/Azure/azure-sdk-for-go/sdk/azcore/fake"
	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

func TestList(t *testing.T) {
	var gotLocation string
	srv := &fake.UsagesServer{
		NewListPager: func(location string, options *network.UsagesClientListOptions) (resp azfake.PagerResponder[network.UsagesClientListResponse]) {
			gotLocation = location
			resp.AddPage(http.StatusOK, network.UsagesClientListResponse{
				UsagesListResult: network.UsagesListResult{
					Value: []*network.Usage{
						{
							Name:         &network.UsageName{Value: to.Ptr("VirtualNetworks"), LocalizedValue: to.Ptr("Virtual Networks")},
							Unit:         to.Ptr(network.UsageUnitCount),
							CurrentValue: to.Ptr[int64](3),
							Limit:        to.Ptr[int64](1000),
						},
					},
				},
			}, nil)
			return
		},
	}
	client, err := New("subID", &azfake.TokenCredential{}, &arm.ClientOptions{
		ClientOptions: azcore.ClientOptions{Transport: fake.NewUsagesServerTransport(srv)},
	})
	require.NoError(t, err)

	usages, err := client.List(context.Background(), "westus")
	require.NoError(t, err)
	assert.Equal(t, "westus", gotLocation)
	require.Len(t, usages, 1)
	assert.Equal(t, "VirtualNetworks", to.Val(usages[0].Name.Value))
	assert.Equal(t, int64(1000), to.Val(usages[0].Limit))

	_, err = client.List(context.Background(), "")
	assert.EqualError(t, err, "parameter location cannot be empty")
}
