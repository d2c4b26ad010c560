// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package utils

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

func PollUntilDone[ResponseType interface{}](ctx context.Context, asyncHandler func() (*runtime.Poller[ResponseType], error)) (*ResponseType, error) {
	pollerResp, err := asyncHandler()
	if err != nil {
		return nil, err
	}

	resp, err := pollerResp.PollUntilDone(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CollectPages drains pager and concatenates the values of every page.
func CollectPages[PageType any, T any](ctx context.Context, pager *runtime.Pager[PageType], values func(PageType) []*T) ([]*T, error) {
	var ret []*T
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, v := range values(page) {
			if v != nil {
				ret = append(ret, v)
			}
		}
	}
	return ret, nil
}
