package logger

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var base atomic.Pointer[zap.Logger]

func init() {
	l, err := zap.NewProduction()
	if err != nil {
		l = zap.NewNop()
	}
	base.Store(l)
}

// Configure replaces the process logger. level is a zap level name and
// encoding is "json" or "console".
func Configure(level, encoding string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	conf := zap.NewProductionConfig()
	if encoding == "console" {
		conf = zap.NewDevelopmentConfig()
	}
	conf.Level = zap.NewAtomicLevelAt(lvl)

	l, err := conf.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	base.Store(l)
	return nil
}

// Replace swaps the process logger, mostly for tests.
func Replace(l *zap.Logger) {
	base.Store(l)
}

// Named returns a sugared logger for one component.
func Named(name string) (*zap.SugaredLogger, error) {
	if name == "" {
		return nil, fmt.Errorf("logger name must not be empty")
	}
	return base.Load().Named(name).Sugar(), nil
}

func MustNamed(name string) *zap.SugaredLogger {
	l, err := Named(name)
	if err != nil {
		panic(err)
	}
	return l
}

func Sync() error {
	return base.Load().Sync()
}
