// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package fluent

import (
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// IsNotFound reports whether err is an ARM 404 response.
func IsNotFound(err error) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound
}

// IsResourceGroupNotFound reports whether err is caused by a missing resource group.
func IsResourceGroupNotFound(err error) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.ErrorCode == "ResourceGroupNotFound"
}
