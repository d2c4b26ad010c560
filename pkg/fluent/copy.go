// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package fluent

import (
	"encoding/json"
	"fmt"
)

// DeepCopy copies an inner object through its JSON form, which the SDK
// models define for every field they carry.
func DeepCopy[T any](in *T) (*T, error) {
	out := new(T)
	if in == nil {
		return out, nil
	}
	b, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("failed to copy %T: %w", in, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return nil, fmt.Errorf("failed to copy %T: %w", in, err)
	}
	return out, nil
}
