// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.

// Package enums holds the network enumerations. Apart from Protocol they are
// expandable: values returned by the service that are not listed here are
// registered on first sight instead of being rejected.
package enums

import (
	"github.com/Azure/azure-network-fluent/pkg/expandable"
)

type (
	networkUsageUnit                      struct{}
	applicationGatewayBackendHealthStatus struct{}
	applicationGatewayOperationalState    struct{}
	loadBalancerSkuType                   struct{}
	ipAllocationMethod                    struct{}
	securityRuleDirection                 struct{}
	securityRuleAccess                    struct{}
	probeProtocol                         struct{}
	virtualNetworkGatewaySkuName          struct{}
	virtualNetworkGatewayType             struct{}
	vpnType                               struct{}
	associationType                       struct{}
)

type (
	NetworkUsageUnit                      = *expandable.Value[networkUsageUnit]
	ApplicationGatewayBackendHealthStatus = *expandable.Value[applicationGatewayBackendHealthStatus]
	ApplicationGatewayOperationalState    = *expandable.Value[applicationGatewayOperationalState]
	LoadBalancerSkuType                   = *expandable.Value[loadBalancerSkuType]
	IPAllocationMethod                    = *expandable.Value[ipAllocationMethod]
	SecurityRuleDirection                 = *expandable.Value[securityRuleDirection]
	SecurityRuleAccess                    = *expandable.Value[securityRuleAccess]
	ProbeProtocol                         = *expandable.Value[probeProtocol]
	VirtualNetworkGatewaySkuName          = *expandable.Value[virtualNetworkGatewaySkuName]
	VirtualNetworkGatewayType             = *expandable.Value[virtualNetworkGatewayType]
	VPNType                               = *expandable.Value[vpnType]
	AssociationType                       = *expandable.Value[associationType]
)

var (
	networkUsageUnits = expandable.NewRegistry[networkUsageUnit]("Count", "Bytes", "Seconds", "Percent", "CountsPerSecond", "BytesPerSecond")

	NetworkUsageUnitCount           = networkUsageUnits.FromString("Count")
	NetworkUsageUnitBytes           = networkUsageUnits.FromString("Bytes")
	NetworkUsageUnitSeconds         = networkUsageUnits.FromString("Seconds")
	NetworkUsageUnitPercent         = networkUsageUnits.FromString("Percent")
	NetworkUsageUnitCountsPerSecond = networkUsageUnits.FromString("CountsPerSecond")
	NetworkUsageUnitBytesPerSecond  = networkUsageUnits.FromString("BytesPerSecond")
)

func NetworkUsageUnitFromString(s string) NetworkUsageUnit {
	return networkUsageUnits.FromString(s)
}

func NetworkUsageUnitValues() []NetworkUsageUnit {
	return networkUsageUnits.Values()
}

var (
	backendHealthStatuses = expandable.NewRegistry[applicationGatewayBackendHealthStatus]("Unknown", "Up", "Down", "Partial", "Draining")

	ApplicationGatewayBackendHealthStatusUnknown  = backendHealthStatuses.FromString("Unknown")
	ApplicationGatewayBackendHealthStatusUp       = backendHealthStatuses.FromString("Up")
	ApplicationGatewayBackendHealthStatusDown     = backendHealthStatuses.FromString("Down")
	ApplicationGatewayBackendHealthStatusPartial  = backendHealthStatuses.FromString("Partial")
	ApplicationGatewayBackendHealthStatusDraining = backendHealthStatuses.FromString("Draining")
)

func ApplicationGatewayBackendHealthStatusFromString(s string) ApplicationGatewayBackendHealthStatus {
	return backendHealthStatuses.FromString(s)
}

func ApplicationGatewayBackendHealthStatusValues() []ApplicationGatewayBackendHealthStatus {
	return backendHealthStatuses.Values()
}

var (
	operationalStates = expandable.NewRegistry[applicationGatewayOperationalState]("Stopped", "Starting", "Running", "Stopping")

	ApplicationGatewayOperationalStateStopped  = operationalStates.FromString("Stopped")
	ApplicationGatewayOperationalStateStarting = operationalStates.FromString("Starting")
	ApplicationGatewayOperationalStateRunning  = operationalStates.FromString("Running")
	ApplicationGatewayOperationalStateStopping = operationalStates.FromString("Stopping")
)

func ApplicationGatewayOperationalStateFromString(s string) ApplicationGatewayOperationalState {
	return operationalStates.FromString(s)
}

func ApplicationGatewayOperationalStateValues() []ApplicationGatewayOperationalState {
	return operationalStates.Values()
}

var (
	loadBalancerSkuTypes = expandable.NewRegistry[loadBalancerSkuType]("Basic", "Standard", "Gateway")

	LoadBalancerSkuTypeBasic    = loadBalancerSkuTypes.FromString("Basic")
	LoadBalancerSkuTypeStandard = loadBalancerSkuTypes.FromString("Standard")
	LoadBalancerSkuTypeGateway  = loadBalancerSkuTypes.FromString("Gateway")
)

func LoadBalancerSkuTypeFromString(s string) LoadBalancerSkuType {
	return loadBalancerSkuTypes.FromString(s)
}

func LoadBalancerSkuTypeValues() []LoadBalancerSkuType {
	return loadBalancerSkuTypes.Values()
}

var (
	ipAllocationMethods = expandable.NewRegistry[ipAllocationMethod]("Static", "Dynamic")

	IPAllocationMethodStatic  = ipAllocationMethods.FromString("Static")
	IPAllocationMethodDynamic = ipAllocationMethods.FromString("Dynamic")
)

func IPAllocationMethodFromString(s string) IPAllocationMethod {
	return ipAllocationMethods.FromString(s)
}

func IPAllocationMethodValues() []IPAllocationMethod {
	return ipAllocationMethods.Values()
}

var (
	securityRuleDirections = expandable.NewRegistry[securityRuleDirection]("Inbound", "Outbound")

	SecurityRuleDirectionInbound  = securityRuleDirections.FromString("Inbound")
	SecurityRuleDirectionOutbound = securityRuleDirections.FromString("Outbound")
)

func SecurityRuleDirectionFromString(s string) SecurityRuleDirection {
	return securityRuleDirections.FromString(s)
}

func SecurityRuleDirectionValues() []SecurityRuleDirection {
	return securityRuleDirections.Values()
}

var (
	securityRuleAccesses = expandable.NewRegistry[securityRuleAccess]("Allow", "Deny")

	SecurityRuleAccessAllow = securityRuleAccesses.FromString("Allow")
	SecurityRuleAccessDeny  = securityRuleAccesses.FromString("Deny")
)

func SecurityRuleAccessFromString(s string) SecurityRuleAccess {
	return securityRuleAccesses.FromString(s)
}

func SecurityRuleAccessValues() []SecurityRuleAccess {
	return securityRuleAccesses.Values()
}

var (
	probeProtocols = expandable.NewRegistry[probeProtocol]("Tcp", "Http", "Https")

	ProbeProtocolTCP   = probeProtocols.FromString("Tcp")
	ProbeProtocolHTTP  = probeProtocols.FromString("Http")
	ProbeProtocolHTTPS = probeProtocols.FromString("Https")
)

func ProbeProtocolFromString(s string) ProbeProtocol {
	return probeProtocols.FromString(s)
}

func ProbeProtocolValues() []ProbeProtocol {
	return probeProtocols.Values()
}

var (
	gatewaySkuNames = expandable.NewRegistry[virtualNetworkGatewaySkuName]("Basic", "Standard", "HighPerformance", "UltraPerformance", "VpnGw1", "VpnGw2", "VpnGw3", "ErGw1AZ", "ErGw2AZ", "ErGw3AZ")

	VirtualNetworkGatewaySkuNameBasic            = gatewaySkuNames.FromString("Basic")
	VirtualNetworkGatewaySkuNameStandard         = gatewaySkuNames.FromString("Standard")
	VirtualNetworkGatewaySkuNameHighPerformance  = gatewaySkuNames.FromString("HighPerformance")
	VirtualNetworkGatewaySkuNameUltraPerformance = gatewaySkuNames.FromString("UltraPerformance")
	VirtualNetworkGatewaySkuNameVpnGw1           = gatewaySkuNames.FromString("VpnGw1")
	VirtualNetworkGatewaySkuNameVpnGw2           = gatewaySkuNames.FromString("VpnGw2")
	VirtualNetworkGatewaySkuNameVpnGw3           = gatewaySkuNames.FromString("VpnGw3")
	VirtualNetworkGatewaySkuNameErGw1AZ          = gatewaySkuNames.FromString("ErGw1AZ")
	VirtualNetworkGatewaySkuNameErGw2AZ          = gatewaySkuNames.FromString("ErGw2AZ")
	VirtualNetworkGatewaySkuNameErGw3AZ          = gatewaySkuNames.FromString("ErGw3AZ")
)

func VirtualNetworkGatewaySkuNameFromString(s string) VirtualNetworkGatewaySkuName {
	return gatewaySkuNames.FromString(s)
}

func VirtualNetworkGatewaySkuNameValues() []VirtualNetworkGatewaySkuName {
	return gatewaySkuNames.Values()
}

var (
	gatewayTypes = expandable.NewRegistry[virtualNetworkGatewayType]("Vpn", "ExpressRoute", "LocalGateway")

	VirtualNetworkGatewayTypeVPN          = gatewayTypes.FromString("Vpn")
	VirtualNetworkGatewayTypeExpressRoute = gatewayTypes.FromString("ExpressRoute")
	VirtualNetworkGatewayTypeLocalGateway = gatewayTypes.FromString("LocalGateway")
)

func VirtualNetworkGatewayTypeFromString(s string) VirtualNetworkGatewayType {
	return gatewayTypes.FromString(s)
}

func VirtualNetworkGatewayTypeValues() []VirtualNetworkGatewayType {
	return gatewayTypes.Values()
}

var (
	vpnTypes = expandable.NewRegistry[vpnType]("RouteBased", "PolicyBased")

	VPNTypeRouteBased  = vpnTypes.FromString("RouteBased")
	VPNTypePolicyBased = vpnTypes.FromString("PolicyBased")
)

func VPNTypeFromString(s string) VPNType {
	return vpnTypes.FromString(s)
}

func VPNTypeValues() []VPNType {
	return vpnTypes.Values()
}

var (
	associationTypes = expandable.NewRegistry[associationType]("Associated", "Contains")

	AssociationTypeAssociated = associationTypes.FromString("Associated")
	AssociationTypeContains   = associationTypes.FromString("Contains")
)

func AssociationTypeFromString(s string) AssociationType {
	return associationTypes.FromString(s)
}

func AssociationTypeValues() []AssociationType {
	return associationTypes.Values()
}
