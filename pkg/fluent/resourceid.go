// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package fluent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
)

var ErrInvalidResourceID = errors.New("invalid resource ID")

// ParseResourceID parses id and checks it names a top-level resource of
// resourceType, e.g. "Microsoft.Network/loadBalancers".
func ParseResourceID(id, resourceType string) (*arm.ResourceID, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is empty", ErrInvalidResourceID)
	}
	rid, err := arm.ParseResourceID(id)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidResourceID, id, err)
	}
	if !strings.EqualFold(rid.ResourceType.String(), resourceType) {
		return nil, fmt.Errorf("%w %q: resource type %s, expected %s", ErrInvalidResourceID, id, rid.ResourceType.String(), resourceType)
	}
	if rid.ResourceGroupName == "" {
		return nil, fmt.Errorf("%w %q: resource group is missing", ErrInvalidResourceID, id)
	}
	return rid, nil
}

// ChildResourceID builds the ID of a child resource under parentID.
func ChildResourceID(parentID, childType, childName string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(parentID, "/"), childType, childName)
}

// NameFromID returns the last segment of an ARM ID.
func NameFromID(id string) string {
	id = strings.TrimSuffix(id, "/")
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}
