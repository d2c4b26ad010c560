// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package logger

import (
	"context"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	assert.Equal(t, GetLogger(), FromContext(context.Background()), "FromContext() should fall back to the default logger")

	l := logr.Discard().WithName("test")
	ctx := IntoContext(context.Background(), l)
	assert.Equal(t, l, FromContext(ctx))
}

func TestNewZapLogger(t *testing.T) {
	tests := map[string]struct {
		level     string
		expectErr bool
	}{
		"debug":   {level: "debug"},
		"info":    {level: "info"},
		"invalid": {level: "loud", expectErr: true},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewZapLogger(test.level, true)
			assert.Equal(t, test.expectErr, err != nil)
		})
	}
}
