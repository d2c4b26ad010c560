// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package securitygroup

import (
	"context"
	"fmt"
	"testing"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/Azure/azure-network-fluent/pkg/azureclients/securitygroupclient/mocksecuritygroupclient"
	"github.com/Azure/azure-network-fluent/pkg/consts"
	"github.com/Azure/azure-network-fluent/pkg/enums"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

const testNSGID = "/subscriptions/testSub/resourceGroups/testRG/providers/Microsoft.Network/networkSecurityGroups/nsg"

func echoCreate(ctx context.Context, resourceGroupName, name string, nsg network.SecurityGroup) (*network.SecurityGroup, error) {
	nsg.ID = to.Ptr(fmt.Sprintf("/subscriptions/testSub/resourceGroups/%s/providers/Microsoft.Network/networkSecurityGroups/%s", resourceGroupName, name))
	nsg.Name = to.Ptr(name)
	return &nsg, nil
}

func newTestEntry(t *testing.T) (*mocksecuritygroupclient.MockInterface, NetworkSecurityGroups) {
	ctrl := gomock.NewController(t)
	client := mocksecuritygroupclient.NewMockInterface(ctrl)
	return client, New(client, "testSub")
}

func TestRuleStages(t *testing.T) {
	_, nsgs := newTestEntry(t)
	def := nsgs.Define("nsg").WithRegion("eastus").WithExistingResourceGroup("testRG")

	var stage any = nsgs.Define("nsg")
	_, ok := stage.(DefinitionWithCreate)
	assert.False(t, ok)

	stage = def.DefineRule("r")
	_, ok = stage.(RuleAttach[DefinitionWithCreate])
	assert.False(t, ok)
	_, ok = stage.(RuleWithSourcePort[DefinitionWithCreate])
	assert.False(t, ok)

	stage = def.DefineRule("r").AllowInbound().FromAnyAddress()
	_, ok = stage.(RuleWithSourcePort[DefinitionWithCreate])
	assert.True(t, ok)
	_, ok = stage.(RuleWithProtocol[DefinitionWithCreate])
	assert.False(t, ok)
}

func TestCreateWithRules(t *testing.T) {
	client, nsgs := newTestEntry(t)
	client.EXPECT().CreateOrUpdate(gomock.Any(), "testRG", "nsg", gomock.Any()).DoAndReturn(echoCreate)

	nsg, err := nsgs.Define("nsg").
		WithRegion("eastus").
		WithExistingResourceGroup("testRG").
		DefineRule("ssh").
		AllowInbound().
		FromAddress("10.0.0.0/8").
		FromAnyPort().
		ToAnyAddress().
		ToPort(22).
		WithProtocol(enums.ProtocolTCP).
		WithDescription("ssh from the corp network").
		Attach().
		DefineRule("web").
		AllowInbound().
		FromAnyAddress().
		FromAnyPort().
		ToAnyAddress().
		ToPortRange(80, 443).
		WithProtocol(enums.ProtocolTCP).
		Attach().
		DefineRule("deny-all-out").
		DenyOutbound().
		FromAnyAddress().
		FromPortRange(1000, 2000).
		ToAddress("Internet").
		ToAnyPort().
		WithAnyProtocol().
		WithPriority(4096).
		Attach().
		WithTag("env", "test").
		Create(context.Background())
	require.NoError(t, err)

	rules := nsg.SecurityRules()
	require.Len(t, rules, 3)

	ssh := rules["ssh"]
	assert.Equal(t, int32(100), ssh.Priority())
	assert.Equal(t, enums.SecurityRuleDirectionInbound, ssh.Direction())
	assert.Equal(t, enums.SecurityRuleAccessAllow, ssh.Access())
	assert.Equal(t, enums.ProtocolTCP, ssh.Protocol())
	assert.Equal(t, "10.0.0.0/8", ssh.SourceAddressPrefix())
	assert.Equal(t, "*", ssh.SourcePortRange())
	assert.Equal(t, "*", ssh.DestinationAddressPrefix())
	assert.Equal(t, "22", ssh.DestinationPortRange())
	assert.Equal(t, "ssh from the corp network", ssh.Description())
	assert.Equal(t, nsg, ssh.Parent())

	web := rules["web"]
	assert.Equal(t, int32(110), web.Priority())
	assert.Equal(t, "80-443", web.DestinationPortRange())

	deny := rules["deny-all-out"]
	assert.Equal(t, int32(4096), deny.Priority())
	assert.Equal(t, enums.SecurityRuleDirectionOutbound, deny.Direction())
	assert.Equal(t, enums.SecurityRuleAccessDeny, deny.Access())
	assert.Equal(t, enums.ProtocolAny, deny.Protocol())
	assert.Equal(t, "1000-2000", deny.SourcePortRange())
	assert.Equal(t, "Internet", deny.DestinationAddressPrefix())

	assert.Equal(t, map[string]string{"env": "test"}, nsg.Tags())
}

func TestCreateRejectsPriorityOutOfRange(t *testing.T) {
	for i, priority := range []int32{99, 4097, 0} {
		_, nsgs := newTestEntry(t)
		_, err := nsgs.Define("nsg").
			WithRegion("eastus").
			WithExistingResourceGroup("testRG").
			DefineRule("r").
			AllowInbound().
			FromAnyAddress().
			FromAnyPort().
			ToAnyAddress().
			ToAnyPort().
			WithAnyProtocol().
			WithPriority(priority).
			Attach().
			Create(context.Background())
		assert.ErrorContains(t, err, "outside [100, 4096]", "TestCase[%d]: priority %d", i, priority)
	}
}

func TestAssignPriorities(t *testing.T) {
	rule := func(name string, priority *int32) *network.SecurityRule {
		return &network.SecurityRule{Name: to.Ptr(name), Properties: &network.SecurityRulePropertiesFormat{Priority: priority}}
	}
	tests := []struct {
		desc      string
		rules     []*network.SecurityRule
		auto      []string
		expected  []int32
		expectErr bool
	}{
		{
			desc:     "positional defaults",
			rules:    []*network.SecurityRule{rule("a", nil), rule("b", nil), rule("c", nil)},
			auto:     []string{"a", "b", "c"},
			expected: []int32{100, 110, 120},
		},
		{
			desc:     "defaults skip explicit priorities",
			rules:    []*network.SecurityRule{rule("a", to.Ptr[int32](110)), rule("b", nil), rule("c", nil)},
			auto:     []string{"b", "c"},
			expected: []int32{110, 120, 130},
		},
		{
			desc:     "existing rules keep their priority",
			rules:    []*network.SecurityRule{rule("a", to.Ptr[int32](100)), rule("b", to.Ptr[int32](300)), rule("c", nil)},
			auto:     []string{"c"},
			expected: []int32{100, 300, 120},
		},
		{
			desc:      "duplicate explicit priorities",
			rules:     []*network.SecurityRule{rule("a", to.Ptr[int32](200)), rule("b", to.Ptr[int32](200))},
			expectErr: true,
		},
		{
			desc:      "missing priority",
			rules:     []*network.SecurityRule{rule("a", nil)},
			expectErr: true,
		},
	}
	for i, test := range tests {
		err := assignPriorities(test.rules, sets.New(test.auto...))
		if test.expectErr {
			assert.Error(t, err, "TestCase[%d]: %s", i, test.desc)
			continue
		}
		require.NoError(t, err, "TestCase[%d]: %s", i, test.desc)
		var got []int32
		for _, r := range test.rules {
			got = append(got, *r.Properties.Priority)
		}
		assert.Equal(t, test.expected, got, "TestCase[%d]: %s", i, test.desc)
	}
}

func TestAssignPrioritiesBeyondStepRange(t *testing.T) {
	for i, count := range []int{401, 1000, 3997} {
		rules := make([]*network.SecurityRule, 0, count)
		auto := sets.New[string]()
		for j := 0; j < count; j++ {
			name := fmt.Sprintf("r%d", j)
			rules = append(rules, &network.SecurityRule{Name: to.Ptr(name), Properties: &network.SecurityRulePropertiesFormat{}})
			auto.Insert(name)
		}
		require.NoError(t, assignPriorities(rules, auto), "TestCase[%d]: %d rules", i, count)
		seen := sets.New[int32]()
		for _, r := range rules {
			p := *r.Properties.Priority
			assert.GreaterOrEqual(t, p, consts.SecurityRulePriorityMin, "TestCase[%d]: %d rules", i, count)
			assert.LessOrEqual(t, p, consts.SecurityRulePriorityMax, "TestCase[%d]: %d rules", i, count)
			seen.Insert(p)
		}
		assert.Equal(t, count, seen.Len(), "TestCase[%d]: priorities must be unique", i)
		assert.Equal(t, int32(4000), *rules[390].Properties.Priority, "TestCase[%d]: stepped slot", i)
		assert.Equal(t, int32(101), *rules[400].Properties.Priority, "TestCase[%d]: first gap", i)
	}

	rules := make([]*network.SecurityRule, 0, 3998)
	auto := sets.New[string]()
	for j := 0; j < 3998; j++ {
		name := fmt.Sprintf("r%d", j)
		rules = append(rules, &network.SecurityRule{Name: to.Ptr(name), Properties: &network.SecurityRulePropertiesFormat{}})
		auto.Insert(name)
	}
	assert.ErrorContains(t, assignPriorities(rules, auto), "no free priority left")
}

func getTestNSG() *network.SecurityGroup {
	return &network.SecurityGroup{
		ID:       to.Ptr(testNSGID),
		Name:     to.Ptr("nsg"),
		Location: to.Ptr("eastus"),
		Properties: &network.SecurityGroupPropertiesFormat{
			SecurityRules: []*network.SecurityRule{
				{
					Name: to.Ptr("ssh"),
					Properties: &network.SecurityRulePropertiesFormat{
						Priority:  to.Ptr[int32](100),
						Direction: to.Ptr(network.SecurityRuleDirectionInbound),
						Access:    to.Ptr(network.SecurityRuleAccessAllow),
						Protocol:  to.Ptr(network.SecurityRuleProtocolTCP),
					},
				},
			},
			DefaultSecurityRules: []*network.SecurityRule{
				{Name: to.Ptr("AllowVnetInBound"), Properties: &network.SecurityRulePropertiesFormat{Priority: to.Ptr[int32](65000)}},
			},
			NetworkInterfaces: []*network.Interface{{ID: to.Ptr("nicID")}},
			Subnets:           []*network.Subnet{{ID: to.Ptr("subnetID")}},
		},
	}
}

func TestGetAndUpdate(t *testing.T) {
	client, nsgs := newTestEntry(t)
	client.EXPECT().Get(gomock.Any(), "testRG", "nsg", gomock.Any()).Return(getTestNSG(), nil)
	var sent network.SecurityGroup
	client.EXPECT().CreateOrUpdate(gomock.Any(), "testRG", "nsg", gomock.Any()).DoAndReturn(
		func(ctx context.Context, resourceGroupName, name string, nsg network.SecurityGroup) (*network.SecurityGroup, error) {
			sent = nsg
			return echoCreate(ctx, resourceGroupName, name, nsg)
		})

	nsg, err := nsgs.GetByID(context.Background(), testNSGID)
	require.NoError(t, err)
	assert.Equal(t, []string{"nicID"}, nsg.NetworkInterfaceIDs())
	assert.Equal(t, []string{"subnetID"}, nsg.SubnetIDs())
	assert.Contains(t, nsg.DefaultSecurityRules(), "AllowVnetInBound")

	updated, err := nsg.Update().
		DefineRule("rdp").
		DenyInbound().
		FromAnyAddress().
		FromAnyPort().
		ToAnyAddress().
		ToPort(3389).
		WithProtocol(enums.ProtocolTCP).
		Attach().
		WithoutRule("SSH").
		WithTag("k", "v").
		Apply(context.Background())
	require.NoError(t, err)
	require.Len(t, sent.Properties.SecurityRules, 1)
	assert.Equal(t, "rdp", *sent.Properties.SecurityRules[0].Name)

	rdp := updated.SecurityRules()["rdp"]
	require.NotNil(t, rdp)
	assert.Equal(t, int32(100), rdp.Priority())
	assert.Equal(t, map[string]string{"k": "v"}, updated.Tags())

	assert.Contains(t, nsg.SecurityRules(), "ssh")
	assert.NotContains(t, nsg.SecurityRules(), "rdp")
}

func TestGetByIDWrongType(t *testing.T) {
	_, nsgs := newTestEntry(t)
	_, err := nsgs.GetByID(context.Background(), "/subscriptions/testSub/resourceGroups/testRG/providers/Microsoft.Network/loadBalancers/nsg")
	assert.ErrorIs(t, err, fluent.ErrInvalidResourceID)
}
