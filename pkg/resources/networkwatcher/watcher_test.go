// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package networkwatcher

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-network-fluent/pkg/azureclients/watcherclient/mockwatcherclient"
	"github.com/Azure/azure-network-fluent/pkg/enums"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

const testWatcherID = "/subscriptions/testSub/resourceGroups/NetworkWatcherRG/providers/Microsoft.Network/networkWatchers/NetworkWatcher_eastus"

func getTestWatcher() *network.Watcher {
	return &network.Watcher{
		ID:       to.Ptr(testWatcherID),
		Name:     to.Ptr("NetworkWatcher_eastus"),
		Location: to.Ptr("eastus"),
		Properties: &network.WatcherPropertiesFormat{
			ProvisioningState: to.Ptr(network.ProvisioningStateSucceeded),
		},
	}
}

func echoCreate(ctx context.Context, resourceGroupName, name string, w network.Watcher) (*network.Watcher, error) {
	w.ID = to.Ptr(fmt.Sprintf("/subscriptions/testSub/resourceGroups/%s/providers/Microsoft.Network/networkWatchers/%s", resourceGroupName, name))
	w.Name = to.Ptr(name)
	return &w, nil
}

func TestDefineAndUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockwatcherclient.NewMockInterface(ctrl)
	client.EXPECT().CreateOrUpdate(gomock.Any(), "rg", "nw", gomock.Any()).DoAndReturn(echoCreate).Times(2)
	watchers := New(client, "testSub")

	var stage any = watchers.Define("nw").WithRegion("eastus")
	_, ok := stage.(fluent.Creatable[NetworkWatcher])
	assert.False(t, ok)

	w, err := watchers.Define("nw").WithRegion("eastus").WithExistingResourceGroup("rg").WithTag("a", "1").Create(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "eastus", w.RegionName())
	assert.Equal(t, map[string]string{"a": "1"}, w.Tags())

	updated, err := w.Update().WithTag("b", "2").WithoutTag("a").Apply(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"b": "2"}, updated.Tags())
	assert.Equal(t, map[string]string{"a": "1"}, w.Tags())
}

func TestTopology(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	ctrl := gomock.NewController(t)
	client := mockwatcherclient.NewMockInterface(ctrl)
	client.EXPECT().Get(gomock.Any(), "NetworkWatcherRG", "NetworkWatcher_eastus").Return(getTestWatcher(), nil)
	client.EXPECT().GetTopology(gomock.Any(), "NetworkWatcherRG", "NetworkWatcher_eastus", "appRG").Return(&network.Topology{
		ID:              to.Ptr("topologyID"),
		CreatedDateTime: to.Ptr(created),
		Resources: []*network.TopologyResource{
			{
				Name:     to.Ptr("vnet"),
				ID:       to.Ptr("vnetID"),
				Location: to.Ptr("eastus"),
				Associations: []*network.TopologyAssociation{
					{Name: to.Ptr("subnet"), ResourceID: to.Ptr("subnetID"), AssociationType: to.Ptr(network.AssociationTypeContains)},
				},
			},
			{
				Name: to.Ptr("nic"),
				ID:   to.Ptr("nicID"),
				Associations: []*network.TopologyAssociation{
					{Name: to.Ptr("nsg"), ResourceID: to.Ptr("nsgID"), AssociationType: to.Ptr(network.AssociationTypeAssociated)},
				},
			},
		},
	}, nil)
	watchers := New(client, "testSub")

	w, err := watchers.GetByID(context.Background(), testWatcherID)
	require.NoError(t, err)
	assert.Equal(t, "Succeeded", w.ProvisioningState())

	topo, err := w.Topology(context.Background(), "appRG")
	require.NoError(t, err)
	assert.Equal(t, "topologyID", topo.ID())
	assert.Equal(t, "appRG", topo.ResourceGroupName())
	assert.Equal(t, created, topo.CreatedTime())
	assert.True(t, topo.LastModifiedTime().IsZero())
	assert.Equal(t, w, topo.Parent())

	resources := topo.Resources()
	require.Len(t, resources, 2)
	vnet := resources["vnet"]
	assert.Equal(t, "vnetID", vnet.ID())
	assert.Equal(t, "eastus", vnet.Location())
	assert.Equal(t, topo, vnet.Parent())
	require.Len(t, vnet.Associations(), 1)
	assert.Equal(t, "subnetID", vnet.Associations()[0].ResourceID())
	assert.Same(t, enums.AssociationTypeContains, vnet.Associations()[0].AssociationType())
	assert.Same(t, enums.AssociationTypeAssociated, resources["nic"].Associations()[0].AssociationType())
}

func TestTopologyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockwatcherclient.NewMockInterface(ctrl)
	testErr := errors.New("test error")
	client.EXPECT().Get(gomock.Any(), "NetworkWatcherRG", "NetworkWatcher_eastus").Return(getTestWatcher(), nil)
	client.EXPECT().GetTopology(gomock.Any(), "NetworkWatcherRG", "NetworkWatcher_eastus", "appRG").Return(nil, testErr)
	watchers := New(client, "testSub")

	w, err := watchers.GetByResourceGroup(context.Background(), "NetworkWatcherRG", "NetworkWatcher_eastus")
	require.NoError(t, err)
	topo, err := w.Topology(context.Background(), "appRG")
	assert.Nil(t, topo)
	assert.Equal(t, testErr, err)
}

func TestListAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockwatcherclient.NewMockInterface(ctrl)
	client.EXPECT().ListAll(gomock.Any()).Return([]*network.Watcher{getTestWatcher()}, nil)
	client.EXPECT().List(gomock.Any(), "NetworkWatcherRG").Return([]*network.Watcher{getTestWatcher()}, nil)
	client.EXPECT().Delete(gomock.Any(), "NetworkWatcherRG", "NetworkWatcher_eastus").Return(nil).Times(2)
	watchers := New(client, "testSub")

	all, err := watchers.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
	inGroup, err := watchers.ListByResourceGroup(context.Background(), "NetworkWatcherRG")
	require.NoError(t, err)
	assert.Len(t, inGroup, 1)

	require.NoError(t, watchers.DeleteByID(context.Background(), testWatcherID))
	require.NoError(t, watchers.DeleteByIDs(context.Background(), testWatcherID))
}
