// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package securitygroup

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/Azure/azure-network-fluent/pkg/consts"
	"github.com/Azure/azure-network-fluent/pkg/enums"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

const anyValue = "*"

// RuleBlank is the first stage of a security rule definition. P is the
// stage the rule returns to once attached.
type RuleBlank[P any] interface {
	AllowInbound() RuleWithSourceAddress[P]
	AllowOutbound() RuleWithSourceAddress[P]
	DenyInbound() RuleWithSourceAddress[P]
	DenyOutbound() RuleWithSourceAddress[P]
}

type RuleWithSourceAddress[P any] interface {
	FromAddress(cidr string) RuleWithSourcePort[P]
	FromAnyAddress() RuleWithSourcePort[P]
}

type RuleWithSourcePort[P any] interface {
	FromPort(port int32) RuleWithDestinationAddress[P]
	FromPortRange(start, end int32) RuleWithDestinationAddress[P]
	FromAnyPort() RuleWithDestinationAddress[P]
}

type RuleWithDestinationAddress[P any] interface {
	ToAddress(cidr string) RuleWithDestinationPort[P]
	ToAnyAddress() RuleWithDestinationPort[P]
}

type RuleWithDestinationPort[P any] interface {
	ToPort(port int32) RuleWithProtocol[P]
	ToPortRange(start, end int32) RuleWithProtocol[P]
	ToAnyPort() RuleWithProtocol[P]
}

type RuleWithProtocol[P any] interface {
	WithProtocol(protocol enums.Protocol) RuleAttach[P]
	WithAnyProtocol() RuleAttach[P]
}

// RuleAttach is the last stage of a rule definition. Without WithPriority
// the rule gets the first free priority from 100 + 10 * its position.
type RuleAttach[P any] interface {
	WithPriority(priority int32) RuleAttach[P]
	WithDescription(description string) RuleAttach[P]
	Attach() P
}

type ruleDefinition[P any] struct {
	inner       network.SecurityRule
	hasPriority bool
	attach      func(rule *network.SecurityRule, hasPriority bool) P
}

type ruleBlank[P any] struct{ r *ruleDefinition[P] }
type ruleWithSourceAddress[P any] struct{ r *ruleDefinition[P] }
type ruleWithSourcePort[P any] struct{ r *ruleDefinition[P] }
type ruleWithDestinationAddress[P any] struct{ r *ruleDefinition[P] }
type ruleWithDestinationPort[P any] struct{ r *ruleDefinition[P] }
type ruleWithProtocol[P any] struct{ r *ruleDefinition[P] }
type ruleAttach[P any] struct{ r *ruleDefinition[P] }

func newRuleDefinition[P any](name string, attach func(rule *network.SecurityRule, hasPriority bool) P) RuleBlank[P] {
	return ruleBlank[P]{r: &ruleDefinition[P]{
		inner: network.SecurityRule{
			Name:       to.Ptr(name),
			Properties: &network.SecurityRulePropertiesFormat{},
		},
		attach: attach,
	}}
}

func (s ruleBlank[P]) direction(access network.SecurityRuleAccess, direction network.SecurityRuleDirection) RuleWithSourceAddress[P] {
	s.r.inner.Properties.Access = to.Ptr(access)
	s.r.inner.Properties.Direction = to.Ptr(direction)
	return ruleWithSourceAddress[P](s)
}

func (s ruleBlank[P]) AllowInbound() RuleWithSourceAddress[P] {
	return s.direction(network.SecurityRuleAccessAllow, network.SecurityRuleDirectionInbound)
}

func (s ruleBlank[P]) AllowOutbound() RuleWithSourceAddress[P] {
	return s.direction(network.SecurityRuleAccessAllow, network.SecurityRuleDirectionOutbound)
}

func (s ruleBlank[P]) DenyInbound() RuleWithSourceAddress[P] {
	return s.direction(network.SecurityRuleAccessDeny, network.SecurityRuleDirectionInbound)
}

func (s ruleBlank[P]) DenyOutbound() RuleWithSourceAddress[P] {
	return s.direction(network.SecurityRuleAccessDeny, network.SecurityRuleDirectionOutbound)
}

func (s ruleWithSourceAddress[P]) FromAddress(cidr string) RuleWithSourcePort[P] {
	s.r.inner.Properties.SourceAddressPrefix = to.Ptr(cidr)
	return ruleWithSourcePort[P](s)
}

func (s ruleWithSourceAddress[P]) FromAnyAddress() RuleWithSourcePort[P] {
	return s.FromAddress(anyValue)
}

func (s ruleWithSourcePort[P]) FromPort(port int32) RuleWithDestinationAddress[P] {
	s.r.inner.Properties.SourcePortRange = to.Ptr(portRange(port, port))
	return ruleWithDestinationAddress[P](s)
}

func (s ruleWithSourcePort[P]) FromPortRange(start, end int32) RuleWithDestinationAddress[P] {
	s.r.inner.Properties.SourcePortRange = to.Ptr(portRange(start, end))
	return ruleWithDestinationAddress[P](s)
}

func (s ruleWithSourcePort[P]) FromAnyPort() RuleWithDestinationAddress[P] {
	s.r.inner.Properties.SourcePortRange = to.Ptr(anyValue)
	return ruleWithDestinationAddress[P](s)
}

func (s ruleWithDestinationAddress[P]) ToAddress(cidr string) RuleWithDestinationPort[P] {
	s.r.inner.Properties.DestinationAddressPrefix = to.Ptr(cidr)
	return ruleWithDestinationPort[P](s)
}

func (s ruleWithDestinationAddress[P]) ToAnyAddress() RuleWithDestinationPort[P] {
	return s.ToAddress(anyValue)
}

func (s ruleWithDestinationPort[P]) ToPort(port int32) RuleWithProtocol[P] {
	s.r.inner.Properties.DestinationPortRange = to.Ptr(portRange(port, port))
	return ruleWithProtocol[P](s)
}

func (s ruleWithDestinationPort[P]) ToPortRange(start, end int32) RuleWithProtocol[P] {
	s.r.inner.Properties.DestinationPortRange = to.Ptr(portRange(start, end))
	return ruleWithProtocol[P](s)
}

func (s ruleWithDestinationPort[P]) ToAnyPort() RuleWithProtocol[P] {
	s.r.inner.Properties.DestinationPortRange = to.Ptr(anyValue)
	return ruleWithProtocol[P](s)
}

func (s ruleWithProtocol[P]) WithProtocol(protocol enums.Protocol) RuleAttach[P] {
	s.r.inner.Properties.Protocol = to.Ptr(protocol.SecurityRuleProtocol())
	return ruleAttach[P](s)
}

func (s ruleWithProtocol[P]) WithAnyProtocol() RuleAttach[P] {
	return s.WithProtocol(enums.ProtocolAny)
}

func (s ruleAttach[P]) WithPriority(priority int32) RuleAttach[P] {
	s.r.inner.Properties.Priority = to.Ptr(priority)
	s.r.hasPriority = true
	return s
}

func (s ruleAttach[P]) WithDescription(description string) RuleAttach[P] {
	s.r.inner.Properties.Description = to.Ptr(description)
	return s
}

func (s ruleAttach[P]) Attach() P {
	return s.r.attach(&s.r.inner, s.r.hasPriority)
}

func portRange(start, end int32) string {
	if start == end {
		return strconv.Itoa(int(start))
	}
	return fmt.Sprintf("%d-%d", start, end)
}

// setRule adds rule or replaces the rule of the same name.
func setRule(props *network.SecurityGroupPropertiesFormat, rule *network.SecurityRule) {
	for i, existing := range props.SecurityRules {
		if existing != nil && strings.EqualFold(to.Val(existing.Name), to.Val(rule.Name)) {
			props.SecurityRules[i] = rule
			return
		}
	}
	props.SecurityRules = append(props.SecurityRules, rule)
}

func removeRule(props *network.SecurityGroupPropertiesFormat, name string) {
	props.SecurityRules = slices.DeleteFunc(props.SecurityRules, func(r *network.SecurityRule) bool {
		return r == nil || strings.EqualFold(to.Val(r.Name), name)
	})
}

// assignPriorities validates the priorities of every rule not named in
// auto and gives each rule in auto the first free slot starting at
// 100 + 10 * its position, or the lowest free priority once that runs past
// the maximum.
func assignPriorities(rules []*network.SecurityRule, auto sets.Set[string]) error {
	used := sets.New[int32]()
	for _, r := range rules {
		if r == nil || auto.Has(strings.ToLower(to.Val(r.Name))) {
			continue
		}
		if r.Properties == nil || r.Properties.Priority == nil {
			return fmt.Errorf("security rule %q has no priority", to.Val(r.Name))
		}
		p := *r.Properties.Priority
		if p < consts.SecurityRulePriorityMin || p > consts.SecurityRulePriorityMax {
			return fmt.Errorf("security rule %q: priority %d is outside [%d, %d]", to.Val(r.Name), p, consts.SecurityRulePriorityMin, consts.SecurityRulePriorityMax)
		}
		if used.Has(p) {
			return fmt.Errorf("security rule %q: priority %d is already in use", to.Val(r.Name), p)
		}
		used.Insert(p)
	}
	for i, r := range rules {
		if r == nil || !auto.Has(strings.ToLower(to.Val(r.Name))) {
			continue
		}
		p, ok := freePriority(used, consts.SecurityRulePriorityMin+consts.SecurityRulePriorityStep*int32(i))
		if !ok {
			return fmt.Errorf("security rule %q: no free priority left", to.Val(r.Name))
		}
		r.Properties.Priority = to.Ptr(p)
		used.Insert(p)
	}
	return nil
}

// freePriority steps up from start and falls back to scanning the whole
// range for the lowest unused priority.
func freePriority(used sets.Set[int32], start int32) (int32, bool) {
	for p := start; p <= consts.SecurityRulePriorityMax; p += consts.SecurityRulePriorityStep {
		if !used.Has(p) {
			return p, true
		}
	}
	for p := consts.SecurityRulePriorityMin; p <= consts.SecurityRulePriorityMax; p++ {
		if !used.Has(p) {
			return p, true
		}
	}
	return 0, false
}
