// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package fluent

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/Azure/azure-network-fluent/pkg/logger"
)

// CreateAll runs every Create concurrently. Results keep the order of
// creatables; the first failure cancels the remaining calls.
func CreateAll[T any](ctx context.Context, creatables ...Creatable[T]) ([]T, error) {
	batchID := uuid.NewString()
	log := logger.FromContext(ctx).WithValues("batchID", batchID)
	log.V(1).Info("creating resources", "count", len(creatables))

	results := make([]T, len(creatables))
	g, ctx := errgroup.WithContext(logger.IntoContext(ctx, log))
	for i, c := range creatables {
		g.Go(func() error {
			ret, err := c.Create(ctx)
			if err != nil {
				return err
			}
			results[i] = ret
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// DeleteAll calls deleteFn for every id concurrently and returns every
// failure combined; multierr.Errors splits them again.
func DeleteAll(ctx context.Context, deleteFn func(ctx context.Context, id string) error, ids ...string) error {
	batchID := uuid.NewString()
	log := logger.FromContext(ctx).WithValues("batchID", batchID)
	log.V(1).Info("deleting resources", "count", len(ids))
	ctx = logger.IntoContext(ctx, log)

	var (
		mu   sync.Mutex
		errs error
		g    errgroup.Group
	)
	for _, id := range ids {
		g.Go(func() error {
			if err := deleteFn(ctx, id); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return errs
}
