// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Azure/azure-network-fluent/pkg/logger"
)

var (
	resourceGroupName string
	listAll           bool
	resourceID        string
	resourceIDs       []string
)

var listCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "List network resources of one kind",
	Long:  fmt.Sprintf("List network resources of one kind (%s) in the subscription or in one resource group", strings.Join(kindNames(), ", ")),
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := lookupKind(args[0])
		if err != nil {
			return err
		}
		var items []any
		rg := resourceGroupName
		if !listAll {
			rg = manager.ResourceGroupOrDefault(rg)
		}
		if rg != "" {
			items, err = kind.listByResourceGroup(cmd.Context(), manager, rg)
		} else {
			items, err = kind.list(cmd.Context(), manager)
		}
		if err != nil {
			return err
		}
		return printOutput(cmd.OutOrStdout(), items)
	},
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a network resource by ID",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := lookupKindByID(resourceID)
		if err != nil {
			return err
		}
		item, err := kind.getByID(cmd.Context(), manager, resourceID)
		if err != nil {
			return err
		}
		return printOutput(cmd.OutOrStdout(), item)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete network resources by ID",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(resourceIDs) == 0 {
			return fmt.Errorf("at least one --id is required")
		}
		byKind := make(map[*resourceKind][]string)
		for _, id := range resourceIDs {
			kind, err := lookupKindByID(id)
			if err != nil {
				return err
			}
			byKind[kind] = append(byKind[kind], id)
		}
		for kind, ids := range byKind {
			if err := kind.deleteByIDs(cmd.Context(), manager, ids...); err != nil {
				return err
			}
			logger.FromContext(cmd.Context()).Info("deleted resources", "resourceType", kind.resourceType, "count", len(ids))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&resourceGroupName, "resource-group", "g", "", "resource group to list, defaults to the configured resource group")
	listCmd.Flags().BoolVar(&listAll, "all", false, "list the whole subscription, ignoring the configured resource group")
	listCmd.MarkFlagsMutuallyExclusive("resource-group", "all")
	getCmd.Flags().StringVar(&resourceID, "id", "", "resource ID")
	_ = getCmd.MarkFlagRequired("id")
	deleteCmd.Flags().StringSliceVar(&resourceIDs, "id", nil, "resource IDs, may be repeated")
	rootCmd.AddCommand(listCmd, getCmd, deleteCmd)
}
