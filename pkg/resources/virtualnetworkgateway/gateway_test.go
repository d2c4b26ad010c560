// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package virtualnetworkgateway

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-network-fluent/pkg/azureclients/virtualnetworkgatewayclient/mockvirtualnetworkgatewayclient"
	"github.com/Azure/azure-network-fluent/pkg/enums"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

const (
	testVnetID     = "/subscriptions/testSub/resourceGroups/rg/providers/Microsoft.Network/virtualNetworks/vnet"
	testPublicIPID = "/subscriptions/testSub/resourceGroups/rg/providers/Microsoft.Network/publicIPAddresses/gwip"
)

func echoCreate(ctx context.Context, resourceGroupName, name string, gw network.VirtualNetworkGateway) (*network.VirtualNetworkGateway, error) {
	gw.ID = to.Ptr(fmt.Sprintf("/subscriptions/testSub/resourceGroups/%s/providers/Microsoft.Network/virtualNetworkGateways/%s", resourceGroupName, name))
	gw.Name = to.Ptr(name)
	return &gw, nil
}

func newTestEntry(t *testing.T) (*mockvirtualnetworkgatewayclient.MockInterface, VirtualNetworkGateways) {
	ctrl := gomock.NewController(t)
	client := mockvirtualnetworkgatewayclient.NewMockInterface(ctrl)
	return client, New(client, "testSub")
}

func TestDefinitionStages(t *testing.T) {
	_, gws := newTestEntry(t)
	stages := []any{
		gws.Define("gw"),
		gws.Define("gw").WithRegion("eastus"),
		gws.Define("gw").WithRegion("eastus").WithExistingResourceGroup("rg"),
		gws.Define("gw").WithRegion("eastus").WithExistingResourceGroup("rg").WithNetwork(testVnetID),
	}
	for i, stage := range stages {
		_, ok := stage.(fluent.Creatable[VirtualNetworkGateway])
		assert.False(t, ok, "TestCase[%d]", i)
	}
	_, ok := stages[2].(DefinitionWithPublicIPAddress)
	assert.False(t, ok)

	_, hasList := reflect.TypeOf(gws).MethodByName("List")
	assert.False(t, hasList)
}

func TestCreate(t *testing.T) {
	tests := []struct {
		desc        string
		build       func(DefinitionWithCreate) DefinitionWithCreate
		gatewayType enums.VirtualNetworkGatewayType
		vpnType     enums.VPNType
		sku         enums.VirtualNetworkGatewaySkuName
		bgp         bool
		expectedErr error
	}{
		{
			desc:        "defaults to a basic route based VPN gateway",
			build:       func(d DefinitionWithCreate) DefinitionWithCreate { return d },
			gatewayType: enums.VirtualNetworkGatewayTypeVPN,
			vpnType:     enums.VPNTypeRouteBased,
			sku:         enums.VirtualNetworkGatewaySkuNameBasic,
		},
		{
			desc: "policy based VPN",
			build: func(d DefinitionWithCreate) DefinitionWithCreate {
				return d.WithPolicyBasedVPN().WithSku(enums.VirtualNetworkGatewaySkuNameVpnGw1)
			},
			gatewayType: enums.VirtualNetworkGatewayTypeVPN,
			vpnType:     enums.VPNTypePolicyBased,
			sku:         enums.VirtualNetworkGatewaySkuNameVpnGw1,
		},
		{
			desc: "express route with BGP",
			build: func(d DefinitionWithCreate) DefinitionWithCreate {
				return d.WithExpressRoute().WithSku(enums.VirtualNetworkGatewaySkuNameErGw1AZ).WithBGP(65515, "10.0.255.30")
			},
			gatewayType: enums.VirtualNetworkGatewayTypeExpressRoute,
			sku:         enums.VirtualNetworkGatewaySkuNameErGw1AZ,
			bgp:         true,
		},
		{
			desc: "express route defaults to ErGw1AZ",
			build: func(d DefinitionWithCreate) DefinitionWithCreate {
				return d.WithExpressRoute()
			},
			gatewayType: enums.VirtualNetworkGatewayTypeExpressRoute,
			sku:         enums.VirtualNetworkGatewaySkuNameErGw1AZ,
		},
		{
			desc: "policy based VPN rejects BGP",
			build: func(d DefinitionWithCreate) DefinitionWithCreate {
				return d.WithPolicyBasedVPN().WithBGP(65515, "10.0.255.30")
			},
			expectedErr: errPolicyBasedBGP,
		},
	}

	for i, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			client, gws := newTestEntry(t)
			if test.expectedErr == nil {
				client.EXPECT().CreateOrUpdate(gomock.Any(), "rg", "gw", gomock.Any()).DoAndReturn(echoCreate)
			}
			d := gws.Define("gw").WithRegion("eastus").WithExistingResourceGroup("rg").
				WithNetwork(testVnetID).WithPublicIPAddress(testPublicIPID)
			gw, err := test.build(d).Create(context.Background())
			if test.expectedErr != nil {
				assert.Equal(t, test.expectedErr, err, "TestCase[%d]: %s", i, test.desc)
				return
			}
			require.NoError(t, err, "TestCase[%d]: %s", i, test.desc)
			assert.Same(t, test.gatewayType, gw.GatewayType(), "TestCase[%d]: %s", i, test.desc)
			assert.Equal(t, test.vpnType, gw.VPNType(), "TestCase[%d]: %s", i, test.desc)
			assert.Same(t, test.sku, gw.Sku(), "TestCase[%d]: %s", i, test.desc)
			assert.Equal(t, test.bgp, gw.IsBGPEnabled(), "TestCase[%d]: %s", i, test.desc)
			assert.Equal(t, testVnetID+"/subnets/GatewaySubnet", gw.SubnetID(), "TestCase[%d]: %s", i, test.desc)
			assert.Equal(t, testPublicIPID, gw.PublicIPAddressID(), "TestCase[%d]: %s", i, test.desc)
		})
	}
}

func TestUpdateResetAndRefresh(t *testing.T) {
	client, gws := newTestEntry(t)
	client.EXPECT().CreateOrUpdate(gomock.Any(), "rg", "gw", gomock.Any()).DoAndReturn(echoCreate).Times(2)

	gw, err := gws.Define("gw").WithRegion("eastus").WithExistingResourceGroup("rg").
		WithNetwork(testVnetID).WithPublicIPAddress(testPublicIPID).WithTag("a", "1").
		Create(context.Background())
	require.NoError(t, err)

	updated, err := gw.Update().WithSku(enums.VirtualNetworkGatewaySkuNameVpnGw2).WithoutTag("a").Apply(context.Background())
	require.NoError(t, err)
	assert.Same(t, enums.VirtualNetworkGatewaySkuNameVpnGw2, updated.Sku())
	assert.Empty(t, updated.Tags())
	assert.Same(t, enums.VirtualNetworkGatewaySkuNameBasic, gw.Sku())
	assert.Equal(t, map[string]string{"a": "1"}, gw.Tags())

	testErr := errors.New("test error")
	client.EXPECT().Reset(gomock.Any(), "rg", "gw").Return(updated.Inner(), nil)
	client.EXPECT().Get(gomock.Any(), "rg", "gw").Return(nil, testErr)
	reset, err := gw.Reset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, updated.ID(), reset.ID())
	_, err = gw.Refresh(context.Background())
	assert.Equal(t, testErr, err)
}

func TestListAndDeleteGateways(t *testing.T) {
	client, gws := newTestEntry(t)
	client.EXPECT().List(gomock.Any(), "rg").Return([]*network.VirtualNetworkGateway{{Name: to.Ptr("gw")}}, nil)
	client.EXPECT().Delete(gomock.Any(), "rg", "gw").Return(nil)

	ret, err := gws.ListByResourceGroup(context.Background(), "rg")
	require.NoError(t, err)
	require.Len(t, ret, 1)
	assert.Equal(t, "gw", ret[0].Name())
	assert.NoError(t, gws.DeleteByID(context.Background(), "/subscriptions/testSub/resourceGroups/rg/providers/Microsoft.Network/virtualNetworkGateways/gw"))
}
