// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package loadbalancer

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/multierr"

	"github.com/Azure/azure-network-fluent/pkg/azureclients/loadbalancerclient/mockloadbalancerclient"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

func getTestLB(name string) *network.LoadBalancer {
	return &network.LoadBalancer{
		ID:       to.Ptr("/subscriptions/testSub/resourceGroups/testRG/providers/Microsoft.Network/loadBalancers/" + name),
		Name:     to.Ptr(name),
		Location: to.Ptr("eastus"),
	}
}

func TestGetByID(t *testing.T) {
	notFound := &azcore.ResponseError{StatusCode: http.StatusNotFound, ErrorCode: "ResourceNotFound"}
	tests := []struct {
		desc        string
		id          string
		expectGet   bool
		lb          *network.LoadBalancer
		testErr     error
		expectedErr error
	}{
		{
			desc:      "found",
			id:        testLBPrefix,
			expectGet: true,
			lb:        getTestLB("lb"),
		},
		{
			desc:        "not found is returned unchanged",
			id:          testLBPrefix,
			expectGet:   true,
			testErr:     notFound,
			expectedErr: notFound,
		},
		{
			desc:        "wrong resource type",
			id:          "/subscriptions/testSub/resourceGroups/testRG/providers/Microsoft.Network/virtualNetworks/lb",
			expectedErr: fluent.ErrInvalidResourceID,
		},
	}
	for i, test := range tests {
		ctrl := gomock.NewController(t)
		client := mockloadbalancerclient.NewMockInterface(ctrl)
		if test.expectGet {
			client.EXPECT().Get(gomock.Any(), "testRG", "lb", gomock.Any()).Return(test.lb, test.testErr)
		}
		lbs := New(client, "testSub")

		lb, err := lbs.GetByID(context.Background(), test.id)
		if test.expectedErr != nil {
			assert.ErrorIs(t, err, test.expectedErr, "TestCase[%d]: %s", i, test.desc)
			assert.Nil(t, lb, "TestCase[%d]: %s", i, test.desc)
		} else {
			require.NoError(t, err, "TestCase[%d]: %s", i, test.desc)
			assert.Equal(t, "lb", lb.Name(), "TestCase[%d]: %s", i, test.desc)
		}
		if test.testErr != nil {
			assert.True(t, fluent.IsNotFound(err), "TestCase[%d]: %s", i, test.desc)
		}
		ctrl.Finish()
	}
}

func TestListLoadBalancers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mockloadbalancerclient.NewMockInterface(ctrl)
	client.EXPECT().ListAll(gomock.Any()).Return([]*network.LoadBalancer{getTestLB("a"), getTestLB("b")}, nil)
	client.EXPECT().List(gomock.Any(), "testRG").Return(nil, errors.New("test error"))
	lbs := New(client, "testSub")

	all, err := lbs.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Name())
	assert.Equal(t, "testRG", all[1].ResourceGroupName())

	_, err = lbs.ListByResourceGroup(context.Background(), "testRG")
	assert.EqualError(t, err, "test error")
}

func TestDeleteLoadBalancers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mockloadbalancerclient.NewMockInterface(ctrl)
	client.EXPECT().Delete(gomock.Any(), "testRG", "lb").Return(nil)
	client.EXPECT().Delete(gomock.Any(), "testRG", "a").Return(nil)
	client.EXPECT().Delete(gomock.Any(), "testRG", "b").Return(errors.New("test error"))
	lbs := New(client, "testSub")

	require.NoError(t, lbs.DeleteByID(context.Background(), testLBPrefix))

	err := lbs.DeleteByIDs(context.Background(), *getTestLB("a").ID, *getTestLB("b").ID)
	errs := multierr.Errors(err)
	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "test error")
}

func TestRefreshLoadBalancer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mockloadbalancerclient.NewMockInterface(ctrl)
	fresh := getTestLB("lb")
	fresh.Tags = map[string]*string{"k": to.Ptr("v")}
	gomock.InOrder(
		client.EXPECT().Get(gomock.Any(), "testRG", "lb", gomock.Any()).Return(getTestLB("lb"), nil),
		client.EXPECT().Get(gomock.Any(), "testRG", "lb", gomock.Any()).Return(fresh, nil),
	)
	lbs := New(client, "testSub")

	lb, err := lbs.GetByResourceGroup(context.Background(), "testRG", "lb")
	require.NoError(t, err)
	refreshed, err := lb.Refresh(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lb.Tags())
	assert.Equal(t, map[string]string{"k": "v"}, refreshed.Tags())
}
