// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	gatewayName              string
	watcherName              string
	targetResourceGroupName  string
	usageRegion              string
	inspectResourceGroupName string
)

type usageOutput struct {
	Name          string `json:"name"`
	LocalizedName string `json:"localizedName,omitempty"`
	Unit          string `json:"unit,omitempty"`
	CurrentValue  int64  `json:"currentValue"`
	Limit         int64  `json:"limit"`
}

var usagesCmd = &cobra.Command{
	Use:   "usages",
	Short: "Show the network quota usage of a region",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		region := usageRegion
		if region == "" {
			region = manager.Location()
		}
		if region == "" {
			return fmt.Errorf("--region is required when the cloud config has no location")
		}
		usages, err := manager.NetworkUsages().ListByRegion(cmd.Context(), region)
		if err != nil {
			return err
		}
		out := make([]usageOutput, 0, len(usages))
		for _, u := range usages {
			o := usageOutput{
				Name:          u.Name().Value,
				LocalizedName: u.Name().LocalizedValue,
				CurrentValue:  u.CurrentValue(),
				Limit:         u.Limit(),
			}
			if u.Unit() != nil {
				o.Unit = u.Unit().String()
			}
			out = append(out, o)
		}
		return printOutput(cmd.OutOrStdout(), out)
	},
}

// backend pool -> HTTP settings -> server IP -> status
type backendHealthOutput map[string]map[string]map[string]string

var backendHealthCmd = &cobra.Command{
	Use:   "backend-health",
	Short: "Show the backend health of an application gateway",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rg := manager.ResourceGroupOrDefault(inspectResourceGroupName)
		gateway, err := manager.ApplicationGateways().GetByResourceGroup(cmd.Context(), rg, gatewayName)
		if err != nil {
			return err
		}
		health, err := gateway.CheckBackendHealth(cmd.Context())
		if err != nil {
			return err
		}
		out := make(backendHealthOutput)
		for poolName, pool := range health {
			out[poolName] = make(map[string]map[string]string)
			for settingsName, settings := range pool.HTTPConfigurationHealths() {
				servers := make(map[string]string)
				for ip, server := range settings.ServerHealths() {
					if server.Status() != nil {
						servers[ip] = server.Status().String()
					} else {
						servers[ip] = ""
					}
				}
				out[poolName][settingsName] = servers
			}
		}
		return printOutput(cmd.OutOrStdout(), out)
	},
}

var topologyCmd = &cobra.Command{
	Use:   "topology",
	Short: "Show the network topology of a resource group as seen by a network watcher",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rg := manager.ResourceGroupOrDefault(inspectResourceGroupName)
		watcher, err := manager.NetworkWatchers().GetByResourceGroup(cmd.Context(), rg, watcherName)
		if err != nil {
			return err
		}
		topology, err := watcher.Topology(cmd.Context(), targetResourceGroupName)
		if err != nil {
			return err
		}
		return printOutput(cmd.OutOrStdout(), topology.Inner())
	},
}

func init() {
	usagesCmd.Flags().StringVar(&usageRegion, "region", "", "region to report, defaults to the configured location")

	backendHealthCmd.Flags().StringVarP(&inspectResourceGroupName, "resource-group", "g", "", "resource group of the application gateway")
	backendHealthCmd.Flags().StringVar(&gatewayName, "name", "", "application gateway name")
	_ = backendHealthCmd.MarkFlagRequired("name")

	topologyCmd.Flags().StringVarP(&inspectResourceGroupName, "resource-group", "g", "", "resource group of the network watcher")
	topologyCmd.Flags().StringVar(&watcherName, "name", "", "network watcher name")
	topologyCmd.Flags().StringVar(&targetResourceGroupName, "target-resource-group", "", "resource group to report the topology of")
	_ = topologyCmd.MarkFlagRequired("name")
	_ = topologyCmd.MarkFlagRequired("target-resource-group")

	rootCmd.AddCommand(usagesCmd, backendHealthCmd, topologyCmd)
}
