// Copyright (c) Microsoft Corporation.
// Licensed under the MIT license.
package logger

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var defaultLogger logr.Logger

// SetDefaultLogger sets the default logger
func SetDefaultLogger(logger logr.Logger) {
	defaultLogger = logger
}

// GetLogger returns the default logger
func GetLogger() logr.Logger {
	return defaultLogger
}

// FromContext returns the logger carried by ctx, or the default logger.
func FromContext(ctx context.Context) logr.Logger {
	if logger, err := logr.FromContext(ctx); err == nil {
		return logger
	}
	return defaultLogger
}

// IntoContext returns a copy of ctx carrying logger.
func IntoContext(ctx context.Context, logger logr.Logger) context.Context {
	return logr.NewContext(ctx, logger)
}

// NewZapLogger builds a logr.Logger backed by zap. level follows zap names
// ("debug", "info", "warn", "error").
func NewZapLogger(level string, development bool) (logr.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return logr.Discard(), err
	}
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	zapLog, err := cfg.Build()
	if err != nil {
		return logr.Discard(), err
	}
	return zapr.NewLogger(zapLog), nil
}

func init() {
	zapLog, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("who watches the watchmen (%v)?", err))
	}
	SetDefaultLogger(zapr.NewLogger(zapLog))
}
