// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package applicationgateway

import (
	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-network-fluent/pkg/enums"
	"github.com/Azure/azure-network-fluent/pkg/fluent"
	"github.com/Azure/azure-network-fluent/pkg/utils/to"
)

// ApplicationGatewayBackendHealth is the health of one backend pool.
type ApplicationGatewayBackendHealth interface {
	fluent.ChildResource[ApplicationGateway]
	fluent.HasInner[network.ApplicationGatewayBackendHealthPool]

	BackendAddressPoolID() string
	// HTTPConfigurationHealths() returns the health per backend HTTP settings, keyed by settings name
	HTTPConfigurationHealths() map[string]ApplicationGatewayBackendHTTPConfigurationHealth
}

// ApplicationGatewayBackendHTTPConfigurationHealth is the health of the
// servers of a pool as probed through one backend HTTP settings.
type ApplicationGatewayBackendHTTPConfigurationHealth interface {
	fluent.ChildResource[ApplicationGatewayBackendHealth]
	fluent.HasInner[network.ApplicationGatewayBackendHealthHTTPSettings]

	BackendHTTPSettingsID() string
	// ServerHealths() returns the server health keyed by IP address
	ServerHealths() map[string]ApplicationGatewayBackendServerHealth
}

type ApplicationGatewayBackendServerHealth interface {
	fluent.HasInner[network.ApplicationGatewayBackendHealthServer]

	IPAddress() string
	Status() enums.ApplicationGatewayBackendHealthStatus
	HealthProbeLog() string
	Parent() ApplicationGatewayBackendHTTPConfigurationHealth
}

type backendHealth struct {
	inner  *network.ApplicationGatewayBackendHealthPool
	parent *applicationGateway
}

func (h *backendHealth) Name() string {
	if h.inner.BackendAddressPool == nil {
		return ""
	}
	if h.inner.BackendAddressPool.Name != nil {
		return *h.inner.BackendAddressPool.Name
	}
	return fluent.NameFromID(to.Val(h.inner.BackendAddressPool.ID))
}

func (h *backendHealth) BackendAddressPoolID() string {
	if h.inner.BackendAddressPool == nil {
		return ""
	}
	return to.Val(h.inner.BackendAddressPool.ID)
}

func (h *backendHealth) Parent() ApplicationGateway {
	return h.parent
}

func (h *backendHealth) Inner() *network.ApplicationGatewayBackendHealthPool {
	return h.inner
}

func (h *backendHealth) HTTPConfigurationHealths() map[string]ApplicationGatewayBackendHTTPConfigurationHealth {
	ret := make(map[string]ApplicationGatewayBackendHTTPConfigurationHealth)
	for _, s := range h.inner.BackendHTTPSettingsCollection {
		if s == nil {
			continue
		}
		c := &httpConfigurationHealth{inner: s, parent: h}
		ret[c.Name()] = c
	}
	return ret
}

type httpConfigurationHealth struct {
	inner  *network.ApplicationGatewayBackendHealthHTTPSettings
	parent *backendHealth
}

func (c *httpConfigurationHealth) Name() string {
	if c.inner.BackendHTTPSettings == nil {
		return ""
	}
	if c.inner.BackendHTTPSettings.Name != nil {
		return *c.inner.BackendHTTPSettings.Name
	}
	return fluent.NameFromID(to.Val(c.inner.BackendHTTPSettings.ID))
}

func (c *httpConfigurationHealth) BackendHTTPSettingsID() string {
	if c.inner.BackendHTTPSettings == nil {
		return ""
	}
	return to.Val(c.inner.BackendHTTPSettings.ID)
}

func (c *httpConfigurationHealth) Parent() ApplicationGatewayBackendHealth {
	return c.parent
}

func (c *httpConfigurationHealth) Inner() *network.ApplicationGatewayBackendHealthHTTPSettings {
	return c.inner
}

func (c *httpConfigurationHealth) ServerHealths() map[string]ApplicationGatewayBackendServerHealth {
	ret := make(map[string]ApplicationGatewayBackendServerHealth)
	for _, s := range c.inner.Servers {
		if s == nil || s.Address == nil {
			continue
		}
		ret[*s.Address] = &serverHealth{inner: s, parent: c}
	}
	return ret
}

type serverHealth struct {
	inner  *network.ApplicationGatewayBackendHealthServer
	parent *httpConfigurationHealth
}

func (s *serverHealth) IPAddress() string {
	return to.Val(s.inner.Address)
}

func (s *serverHealth) HealthProbeLog() string {
	return to.Val(s.inner.HealthProbeLog)
}

func (s *serverHealth) Status() enums.ApplicationGatewayBackendHealthStatus {
	if s.inner.Health == nil {
		return nil
	}
	return enums.ApplicationGatewayBackendHealthStatusFromString(string(*s.inner.Health))
}

func (s *serverHealth) Parent() ApplicationGatewayBackendHTTPConfigurationHealth {
	return s.parent
}

func (s *serverHealth) Inner() *network.ApplicationGatewayBackendHealthServer {
	return s.inner
}
