// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package fluent

import (
	"context"
	"fmt"

	"github.com/Azure/azure-network-fluent/pkg/logger"
	"github.com/Azure/azure-network-fluent/pkg/metrics"
)

// Operation describes one remote call for logging and metrics.
type Operation struct {
	Name           string
	SubscriptionID string
	ResourceGroup  string
	Resource       string
}

// Call runs fn with an operation scoped logger in ctx and records request
// metrics. Errors from fn are returned unchanged.
func Call[T any](ctx context.Context, op Operation, fn func(ctx context.Context) (T, error)) (T, error) {
	log := logger.FromContext(ctx).WithValues("operation", op.Name, "resourceGroup", op.ResourceGroup, "resourceName", op.Resource)
	ctx = logger.IntoContext(ctx, log)

	mc := metrics.NewMetricsContext(op.Name, op.SubscriptionID, op.ResourceGroup, op.Resource)
	ret, err := fn(ctx)
	mc.ObserveRequest(err == nil)
	if err != nil {
		log.Info(fmt.Sprintf("%s failed", op.Name), "error", err.Error(), "level", "warning")
		return ret, err
	}
	log.V(1).Info(fmt.Sprintf("%s success", op.Name))
	return ret, nil
}

// Run is Call for operations without a result.
func Run(ctx context.Context, op Operation, fn func(ctx context.Context) error) error {
	_, err := Call(ctx, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}
