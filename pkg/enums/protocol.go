// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package enums

import (
	"strings"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
)

// Protocol is the closed set of transport protocols accepted by load
// balancing rules and security rules.
type Protocol string

const (
	ProtocolUnknown Protocol = ""
	ProtocolTCP     Protocol = "TCP"
	ProtocolUDP     Protocol = "UDP"
	ProtocolAny     Protocol = "*"
)

var protocols = []Protocol{ProtocolTCP, ProtocolUDP, ProtocolAny}

// ProtocolFromString matches s case-insensitively. Unrecognized input
// returns ProtocolUnknown and false.
func ProtocolFromString(s string) (Protocol, bool) {
	for _, p := range protocols {
		if strings.EqualFold(string(p), s) {
			return p, true
		}
	}
	// ARM spells "any" differently per API.
	if strings.EqualFold(s, string(network.TransportProtocolAll)) {
		return ProtocolAny, true
	}
	return ProtocolUnknown, false
}

// Protocols returns the known protocols.
func Protocols() []Protocol {
	return append([]Protocol(nil), protocols...)
}

func (p Protocol) String() string {
	return string(p)
}

// TransportProtocol converts p for load balancing rules.
func (p Protocol) TransportProtocol() network.TransportProtocol {
	switch p {
	case ProtocolTCP:
		return network.TransportProtocolTCP
	case ProtocolUDP:
		return network.TransportProtocolUDP
	default:
		return network.TransportProtocolAll
	}
}

// SecurityRuleProtocol converts p for security rules.
func (p Protocol) SecurityRuleProtocol() network.SecurityRuleProtocol {
	switch p {
	case ProtocolTCP:
		return network.SecurityRuleProtocolTCP
	case ProtocolUDP:
		return network.SecurityRuleProtocolUDP
	default:
		return network.SecurityRuleProtocolAsterisk
	}
}
