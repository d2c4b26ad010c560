/*
MIT License

Copyright (c) Microsoft Corporation.

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE
*/
package config

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/Azure/azure-network-fluent/pkg/consts"
)

type CloudConfig struct {
	// azure cloud
	Cloud string `json:"cloud" mapstructure:"cloud"`
	// default azure resource location
	Location string `json:"location" mapstructure:"location"`
	// subscription ID
	SubscriptionID string `json:"subscriptionId" mapstructure:"subscriptionId"`
	// tenant ID
	TenantID string `json:"tenantId" mapstructure:"tenantId"`
	// use user assigned identity or not
	UseUserAssignedIdentity bool `json:"useManagedIdentityExtension" mapstructure:"useManagedIdentityExtension"`
	// user assigned identity ID
	UserAssignedIdentityID string `json:"userAssignedIdentityID" mapstructure:"userAssignedIdentityID"`
	// use the azidentity default credential chain (environment, workload identity, az cli)
	UseDefaultCredential bool `json:"useDefaultCredential" mapstructure:"useDefaultCredential"`
	// aad client ID
	AADClientID string `json:"aadClientId" mapstructure:"aadClientId"`
	// aad client secret
	AADClientSecret string `json:"aadClientSecret" mapstructure:"aadClientSecret"`
	// user agent for Azure customer usage attribution
	UserAgent string `json:"userAgent" mapstructure:"userAgent"`
	// default resource group used when a command does not name one
	ResourceGroup string `json:"resourceGroup" mapstructure:"resourceGroup"`
	// maximum retries of the SDK retry policy, 0 keeps the SDK default
	MaxRetries int32 `json:"maxRetries" mapstructure:"maxRetries"`
}

// Load reads the config file at path (if any) merged with environment
// variables bound on v.
func Load(v *viper.Viper, path string) (*CloudConfig, error) {
	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, err
		}
		v.SetConfigFile(expanded)
		if strings.HasSuffix(expanded, ".json") {
			v.SetConfigType("json")
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", expanded, err)
		}
	}
	var cfg CloudConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode cloud config: %w", err)
	}
	cfg.TrimSpace()
	cfg.Default()
	return &cfg, nil
}

func (cfg *CloudConfig) TrimSpace() {
	cfg.Cloud = strings.TrimSpace(cfg.Cloud)
	cfg.Location = strings.TrimSpace(cfg.Location)
	cfg.SubscriptionID = strings.TrimSpace(cfg.SubscriptionID)
	cfg.TenantID = strings.TrimSpace(cfg.TenantID)
	cfg.UserAssignedIdentityID = strings.TrimSpace(cfg.UserAssignedIdentityID)
	cfg.AADClientID = strings.TrimSpace(cfg.AADClientID)
	cfg.AADClientSecret = strings.TrimSpace(cfg.AADClientSecret)
	cfg.UserAgent = strings.TrimSpace(cfg.UserAgent)
	cfg.ResourceGroup = strings.TrimSpace(cfg.ResourceGroup)
}

func (cfg *CloudConfig) Default() {
	if cfg.Cloud == "" {
		cfg.Cloud = consts.AzurePublicCloud
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = consts.DefaultUserAgent
	}
}

func (cfg *CloudConfig) Validate() error {
	if cfg.Cloud == "" {
		return fmt.Errorf("cloud is empty")
	}

	if _, err := cfg.CloudConfiguration(); err != nil {
		return err
	}

	if cfg.SubscriptionID == "" {
		return fmt.Errorf("subscription ID is empty")
	}

	switch {
	case cfg.UseUserAssignedIdentity:
		if cfg.UserAssignedIdentityID == "" {
			return fmt.Errorf("user assigned identity ID is empty")
		}
	case cfg.UseDefaultCredential:
	default:
		if cfg.TenantID == "" {
			return fmt.Errorf("tenant ID is empty")
		}
		if cfg.AADClientID == "" || cfg.AADClientSecret == "" {
			return fmt.Errorf("AAD client ID or AAD client secret is empty")
		}
	}

	if cfg.MaxRetries < 0 {
		return fmt.Errorf("max retries %d is negative", cfg.MaxRetries)
	}

	if len(cfg.UserAgent) > consts.MaxUserAgentLength {
		return fmt.Errorf("user agent %q is longer than %d characters", cfg.UserAgent, consts.MaxUserAgentLength)
	}

	return nil
}

// CloudConfiguration maps the cloud name onto the azcore cloud endpoints.
func (cfg *CloudConfig) CloudConfiguration() (cloud.Configuration, error) {
	switch strings.ToLower(cfg.Cloud) {
	case strings.ToLower(consts.AzurePublicCloud), "":
		return cloud.AzurePublic, nil
	case strings.ToLower(consts.AzureChinaCloud):
		return cloud.AzureChina, nil
	case strings.ToLower(consts.AzureUSGovernmentCloud):
		return cloud.AzureGovernment, nil
	default:
		return cloud.Configuration{}, fmt.Errorf("unknown cloud %q", cfg.Cloud)
	}
}

// ClientOptions returns the ARM client options shared by every network client.
func (cfg *CloudConfig) ClientOptions() (*arm.ClientOptions, error) {
	cloudCfg, err := cfg.CloudConfiguration()
	if err != nil {
		return nil, err
	}
	options := &arm.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: cloudCfg,
			Telemetry: policy.TelemetryOptions{
				ApplicationID: cfg.UserAgent,
			},
		},
	}
	if cfg.MaxRetries > 0 {
		options.Retry = policy.RetryOptions{MaxRetries: cfg.MaxRetries}
	}
	return options, nil
}

var configKeys = []string{
	"cloud", "location", "subscriptionId", "tenantId", "useManagedIdentityExtension",
	"userAssignedIdentityID", "useDefaultCredential", "aadClientId", "aadClientSecret",
	"userAgent", "resourceGroup", "maxRetries",
}

// BindEnv binds every config key to <PREFIX>_<KEY> environment variables,
// e.g. AZURE_NETWORK_SUBSCRIPTIONID.
func BindEnv(v *viper.Viper, prefix string) error {
	v.SetEnvPrefix(prefix)
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return err
		}
	}
	return nil
}
