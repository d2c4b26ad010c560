// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.

// Package expandable implements string-backed enumerations that accept values
// unknown at compile time. Every distinct (case-insensitive) string maps to a
// single canonical *Value, so members compare with ==.
package expandable

import (
	"sort"
	"strings"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// Value is one member of an expandable enum. K only tags the enum the value
// belongs to so members of different enums never mix.
type Value[K any] struct {
	name string
}

func (v *Value[K]) String() string {
	if v == nil {
		return ""
	}
	return v.name
}

func (v *Value[K]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Registry holds the canonical members of one expandable enum. It is safe
// for concurrent use.
type Registry[K any] struct {
	values cmap.ConcurrentMap[string, *Value[K]]
}

// NewRegistry returns a registry pre-populated with known.
func NewRegistry[K any](known ...string) *Registry[K] {
	r := &Registry[K]{values: cmap.New[*Value[K]]()}
	for _, name := range known {
		r.FromString(name)
	}
	return r
}

// FromString returns the canonical member for name, registering it on first
// use. Matching ignores case and the first spelling seen is kept. The empty
// string is a member like any other.
func (r *Registry[K]) FromString(name string) *Value[K] {
	return r.values.Upsert(key(name), nil, func(exist bool, inMap *Value[K], _ *Value[K]) *Value[K] {
		if exist {
			return inMap
		}
		return &Value[K]{name: name}
	})
}

// Lookup returns the member for name without registering it.
func (r *Registry[K]) Lookup(name string) (*Value[K], bool) {
	return r.values.Get(key(name))
}

// Values returns every member registered so far, sorted by name.
func (r *Registry[K]) Values() []*Value[K] {
	items := r.values.Items()
	out := make([]*Value[K], 0, len(items))
	for _, v := range items {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].name < out[j].name
	})
	return out
}

func key(name string) string {
	return strings.ToLower(name)
}
