// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package main

import "github.com/Azure/azure-network-fluent/cmd/azure-network/cmd"

func main() {
	cmd.Execute()
}
