// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package consts

const (
	// Cloud names accepted in the cloud config
	AzurePublicCloud       = "AzurePublicCloud"
	AzureChinaCloud        = "AzureChinaCloud"
	AzureUSGovernmentCloud = "AzureUSGovernmentCloud"

	// Default user agent (telemetry application ID)
	DefaultUserAgent = "azure-network-fluent"
	// azcore truncates telemetry application IDs longer than this
	MaxUserAgentLength = 24

	// Env prefix for cloud config keys
	EnvPrefix = "AZURE_NETWORK"

	// ARM resource types handled by the entry points
	ResourceTypeVirtualNetworks        = "Microsoft.Network/virtualNetworks"
	ResourceTypeLoadBalancers          = "Microsoft.Network/loadBalancers"
	ResourceTypeNetworkSecurityGroups  = "Microsoft.Network/networkSecurityGroups"
	ResourceTypeNetworkWatchers        = "Microsoft.Network/networkWatchers"
	ResourceTypeApplicationGateways    = "Microsoft.Network/applicationGateways"
	ResourceTypeVirtualNetworkGateways = "Microsoft.Network/virtualNetworkGateways"

	// LB child resource ID templates
	LBFrontendIPConfigTemplate = "/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Network/loadBalancers/%s/frontendIPConfigurations/%s"
	LBBackendPoolIDTemplate    = "/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Network/loadBalancers/%s/backendAddressPools/%s"
	LBProbeIDTemplate          = "/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Network/loadBalancers/%s/probes/%s"

	// Subnet a virtual network gateway must be attached to
	GatewaySubnetName = "GatewaySubnet"

	// Defaults applied by virtual network definitions
	DefaultAddressSpace = "10.0.0.0/16"
	DefaultSubnetName   = "subnet1"

	// Security rule priority bounds and auto-assignment step
	SecurityRulePriorityMin  int32 = 100
	SecurityRulePriorityMax  int32 = 4096
	SecurityRulePriorityStep int32 = 10

	// Defaults applied by load balancer probes and rules
	DefaultProbeIntervalInSeconds int32 = 5
	DefaultNumberOfProbes         int32 = 2
	DefaultIdleTimeoutInMinutes   int32 = 4
)
