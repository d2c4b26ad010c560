// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package to

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
)

func Ptr[T any](v T) *T {
	return to.Ptr(v)
}

func Val[T any](v *T) T {
	var empty T
	if v == nil {
		return empty
	}
	return *v
}

// Values dereferences every element of a pointer slice, dropping nil entries.
func Values[T any](in []*T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, 0, len(in))
	for _, v := range in {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// StringMap converts the ARM tag representation into a plain map.
func StringMap(in map[string]*string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = Val(v)
	}
	return out
}
