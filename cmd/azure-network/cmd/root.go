// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	"sigs.k8s.io/yaml"

	"github.com/Azure/azure-network-fluent/pkg/config"
	"github.com/Azure/azure-network-fluent/pkg/consts"
	"github.com/Azure/azure-network-fluent/pkg/logger"
	"github.com/Azure/azure-network-fluent/pkg/metrics"
	"github.com/Azure/azure-network-fluent/pkg/networkmanager"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:               "azure-network",
	Short:             "Inspect and manage Azure network resources",
	Long:              `Inspect and manage virtual networks, load balancers, network security groups, network watchers, application gateways and virtual network gateways`,
	SilenceUsage:       true,
	PersistentPreRunE:  initNetworkManager,
	PersistentPostRunE: writeMetrics,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

var (
	cloudConfigFile string
	subscriptionID  string
	outputFormat    string
	logLevel        string
	logDevelopment  bool
	metricsFile     string

	manager *networkmanager.NetworkManager
	// newNetworkManager is replaced in tests
	newNetworkManager = networkmanager.Authenticate
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cloudConfigFile, "config", "", "cloud config file (azure.json format)")
	rootCmd.PersistentFlags().StringVar(&subscriptionID, "subscription-id", "", "subscription to operate on, overrides the cloud config")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "yaml", "output format, yaml or json")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logDevelopment, "log-dev", false, "use the human readable development log format")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write Azure API request metrics in the Prometheus text format to this file after the command completes")

	utilruntime.Must(metrics.Register(prometheus.DefaultRegisterer))
}

func initNetworkManager(cmd *cobra.Command, args []string) error {
	log, err := logger.NewZapLogger(logLevel, logDevelopment)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	logger.SetDefaultLogger(log)
	cmd.SetContext(logger.IntoContext(cmd.Context(), log.WithName(cmd.Name())))

	if outputFormat != "yaml" && outputFormat != "json" {
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}

	v := viper.New()
	if err := config.BindEnv(v, consts.EnvPrefix); err != nil {
		return err
	}
	cloudConfig, err := config.Load(v, cloudConfigFile)
	if err != nil {
		return err
	}
	if subscriptionID != "" {
		cloudConfig.SubscriptionID = subscriptionID
	}
	manager, err = newNetworkManager(cloudConfig)
	if err != nil {
		return fmt.Errorf("failed to create network manager: %w", err)
	}
	return nil
}

func writeMetrics(cmd *cobra.Command, args []string) error {
	if metricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(metricsFile, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics to %q: %w", metricsFile, err)
	}
	return nil
}

func printOutput(w io.Writer, v any) error {
	var (
		out []byte
		err error
	)
	switch outputFormat {
	case "json":
		out, err = json.MarshalIndent(v, "", "  ")
		out = append(out, '\n')
	default:
		out, err = yaml.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
