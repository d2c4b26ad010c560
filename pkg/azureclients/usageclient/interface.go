// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.

package usageclient

//go:generate mockgen -destination=./mockusageclient/interface.go -package=mockusageclient -source=interface.go

import (
	"context"

	network "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
)

type Interface interface {
	// List() lists the network usages of a location
	List(ctx context.Context, location string) ([]*network.Usage, error)
}
