// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package loadbalancer

import (
	"context"
	"fmt"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-network-fluent/pkg/azureclients/loadbalancerclient/mockloadbalancerclient"
	"github.com/Azure/azure-network-fluent/pkg/enums"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

const (
	testSubnetID   = "/subscriptions/testSub/resourceGroups/testRG/providers/Microsoft.Network/virtualNetworks/vnet/subnets/default"
	testPublicIPID = "/subscriptions/testSub/resourceGroups/testRG/providers/Microsoft.Network/publicIPAddresses/pip"
	testLBPrefix   = "/subscriptions/testSub/resourceGroups/testRG/providers/Microsoft.Network/loadBalancers/lb"
)

func echoCreate(ctx context.Context, resourceGroupName, name string, lb network.LoadBalancer) (*network.LoadBalancer, error) {
	lb.ID = to.Ptr(fmt.Sprintf("/subscriptions/testSub/resourceGroups/%s/providers/Microsoft.Network/loadBalancers/%s", resourceGroupName, name))
	lb.Name = to.Ptr(name)
	return &lb, nil
}

var _ = Describe("load balancer definition", func() {
	var (
		client *mockloadbalancerclient.MockInterface
		lbs    LoadBalancers
	)

	BeforeEach(func() {
		mctrl := gomock.NewController(GinkgoT())
		client = mockloadbalancerclient.NewMockInterface(mctrl)
		lbs = New(client, "testSub")
	})

	It("should only expose the methods of the current stage", func() {
		var stage any = lbs.Define("lb")
		Expect(stage).NotTo(BeAssignableToTypeOf(definitionWithCreate{}))
		_, ok := stage.(DefinitionWithFrontend)
		Expect(ok).To(BeFalse())
		_, ok = stage.(fluent.Creatable[LoadBalancer])
		Expect(ok).To(BeFalse())

		stage = lbs.Define("lb").WithRegion("eastus").WithExistingResourceGroup("testRG")
		_, ok = stage.(DefinitionWithFrontend)
		Expect(ok).To(BeTrue())
		_, ok = stage.(DefinitionWithCreate)
		Expect(ok).To(BeFalse())
		_, ok = stage.(fluent.Creatable[LoadBalancer])
		Expect(ok).To(BeFalse())
	})

	It("should create a private load balancer with resolved child IDs", func() {
		var sent network.LoadBalancer
		client.EXPECT().CreateOrUpdate(gomock.Any(), "testRG", "lb", gomock.Any()).DoAndReturn(
			func(ctx context.Context, resourceGroupName, name string, lb network.LoadBalancer) (*network.LoadBalancer, error) {
				sent = lb
				return echoCreate(ctx, resourceGroupName, name, lb)
			})

		lb, err := lbs.Define("lb").
			WithRegion("eastus").
			WithExistingResourceGroup("testRG").
			WithFrontendSubnet(testSubnetID).
			WithSku(enums.LoadBalancerSkuTypeStandard).
			WithBackend("pool").
			WithTCPProbe("tcp", 80).
			WithHTTPProbe("http", "/healthz", 8080).
			WithLoadBalancingRule("web", RuleOptions{
				Protocol:     enums.ProtocolTCP,
				FrontendPort: 80,
				BackendPort:  8080,
				Backend:      "pool",
				Probe:        "http",
			}).
			WithTag("app", "web").
			Create(context.Background())
		Expect(err).NotTo(HaveOccurred())

		Expect(string(*sent.SKU.Name)).To(Equal("Standard"))
		rule := sent.Properties.LoadBalancingRules[0].Properties
		Expect(*rule.FrontendIPConfiguration.ID).To(Equal(testLBPrefix + "/frontendIPConfigurations/frontend"))
		Expect(*rule.BackendAddressPool.ID).To(Equal(testLBPrefix + "/backendAddressPools/pool"))
		Expect(*rule.Probe.ID).To(Equal(testLBPrefix + "/probes/http"))
		Expect(*rule.Protocol).To(Equal(network.TransportProtocolTCP))
		Expect(*rule.IdleTimeoutInMinutes).To(Equal(int32(4)))

		Expect(lb.Sku()).To(BeIdenticalTo(enums.LoadBalancerSkuTypeStandard))
		Expect(lb.Tags()).To(Equal(map[string]string{"app": "web"}))
		Expect(lb.PublicIPAddressIDs()).To(BeEmpty())

		frontends := lb.Frontends()
		Expect(frontends).To(HaveKey("frontend"))
		Expect(frontends["frontend"].IsPublic()).To(BeFalse())
		Expect(frontends["frontend"].SubnetID()).To(Equal(testSubnetID))
		Expect(frontends["frontend"].PrivateIPAllocationMethod()).To(BeIdenticalTo(enums.IPAllocationMethodDynamic))

		Expect(lb.Backends()).To(HaveKey("pool"))
		Expect(lb.Probes()).To(HaveLen(2))
		Expect(lb.TCPProbes()).To(HaveKey("tcp"))
		Expect(lb.HTTPProbes()).To(HaveKey("http"))
		Expect(lb.HTTPProbes()["http"].RequestPath()).To(Equal("/healthz"))
		Expect(lb.HTTPProbes()["http"].IntervalInSeconds()).To(Equal(int32(5)))
		Expect(lb.HTTPProbes()["http"].NumberOfProbes()).To(Equal(int32(2)))

		web := lb.LoadBalancingRules()["web"]
		Expect(web.Protocol()).To(Equal(enums.ProtocolTCP))
		Expect(web.FrontendName()).To(Equal("frontend"))
		Expect(web.BackendName()).To(Equal("pool"))
		Expect(web.ProbeName()).To(Equal("http"))
		Expect(web.Parent()).To(BeIdenticalTo(lb))
	})

	It("should create a public load balancer", func() {
		client.EXPECT().CreateOrUpdate(gomock.Any(), "testRG", "lb", gomock.Any()).DoAndReturn(echoCreate)

		lb, err := lbs.Define("lb").
			WithRegion("eastus").
			WithExistingResourceGroup("testRG").
			WithFrontendPublicIPAddress(testPublicIPID).
			Create(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(lb.PublicIPAddressIDs()).To(Equal([]string{testPublicIPID}))
		Expect(lb.Frontends()["frontend"].IsPublic()).To(BeTrue())
		Expect(lb.Sku()).To(BeNil())
	})

	It("should fail locally when a rule references a missing probe or backend", func() {
		_, err := lbs.Define("lb").
			WithRegion("eastus").
			WithExistingResourceGroup("testRG").
			WithFrontendSubnet(testSubnetID).
			WithBackend("pool").
			WithLoadBalancingRule("web", RuleOptions{
				Protocol:     enums.ProtocolTCP,
				FrontendPort: 80,
				BackendPort:  80,
				Backend:      "missing",
				Probe:        "nope",
			}).
			Create(context.Background())
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring(`unknown backend "missing"`))
		Expect(err.Error()).To(ContainSubstring(`unknown probe "nope"`))
	})

	It("should reject a rule without a protocol", func() {
		_, err := lbs.Define("lb").
			WithRegion("eastus").
			WithExistingResourceGroup("testRG").
			WithFrontendSubnet(testSubnetID).
			WithBackend("pool").
			WithLoadBalancingRule("web", RuleOptions{Backend: "pool"}).
			Create(context.Background())
		Expect(err).To(MatchError(ContainSubstring("protocol is required")))
	})
})

var _ = Describe("load balancer update", func() {
	var (
		client *mockloadbalancerclient.MockInterface
		lbs    LoadBalancers
		lb     LoadBalancer
	)

	BeforeEach(func() {
		mctrl := gomock.NewController(GinkgoT())
		client = mockloadbalancerclient.NewMockInterface(mctrl)
		lbs = New(client, "testSub")
		client.EXPECT().CreateOrUpdate(gomock.Any(), "testRG", "lb", gomock.Any()).DoAndReturn(echoCreate)
		var err error
		lb, err = lbs.Define("lb").
			WithRegion("eastus").
			WithExistingResourceGroup("testRG").
			WithFrontendSubnet(testSubnetID).
			WithBackend("pool").
			WithTCPProbe("tcp", 80).
			WithLoadBalancingRule("web", RuleOptions{
				Protocol:     enums.ProtocolTCP,
				FrontendPort: 80,
				BackendPort:  80,
				Backend:      "pool",
				Probe:        "tcp",
			}).
			WithTag("env", "test").
			Create(context.Background())
		Expect(err).NotTo(HaveOccurred())
	})

	It("should apply changes to a copy", func() {
		client.EXPECT().CreateOrUpdate(gomock.Any(), "testRG", "lb", gomock.Any()).DoAndReturn(echoCreate)

		updated, err := lb.Update().
			WithoutLoadBalancingRule("web").
			WithoutProbe("tcp").
			WithHTTPProbe("http", "/", 8080).
			WithBackend("pool2").
			WithTag("team", "net").
			WithoutTag("env").
			Apply(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.LoadBalancingRules()).To(BeEmpty())
		Expect(updated.Probes()).To(HaveLen(1))
		Expect(updated.HTTPProbes()).To(HaveKey("http"))
		Expect(updated.Backends()).To(HaveLen(2))
		Expect(updated.Tags()).To(Equal(map[string]string{"team": "net"}))

		Expect(lb.LoadBalancingRules()).To(HaveKey("web"))
		Expect(lb.TCPProbes()).To(HaveKey("tcp"))
		Expect(lb.Tags()).To(Equal(map[string]string{"env": "test"}))
	})

	It("should refuse to drop a backend still used by a rule", func() {
		_, err := lb.Update().WithoutBackend("pool").Apply(context.Background())
		Expect(err).To(MatchError(ContainSubstring(`unknown backend "pool"`)))
	})

	It("should add a rule on an existing load balancer", func() {
		client.EXPECT().CreateOrUpdate(gomock.Any(), "testRG", "lb", gomock.Any()).DoAndReturn(echoCreate)

		updated, err := lb.Update().
			WithLoadBalancingRule("dns", RuleOptions{
				Protocol:     enums.ProtocolUDP,
				FrontendPort: 53,
				BackendPort:  53,
				Backend:      "pool",
			}).
			Apply(context.Background())
		Expect(err).NotTo(HaveOccurred())
		dns := updated.LoadBalancingRules()["dns"]
		Expect(dns.Protocol()).To(Equal(enums.ProtocolUDP))
		Expect(dns.FrontendName()).To(Equal("frontend"))
		Expect(dns.ProbeName()).To(BeEmpty())
	})
})
