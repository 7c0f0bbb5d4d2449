// Package main provides the bundler CLI host. This file contains the
// logging configuration layer with validation.
package main

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// LogLevel represents available logging levels with validation
type LogLevel string

const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// IsValid validates if the log level is supported
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// ToLogrusLevel converts to the logrus level
func (l LogLevel) ToLogrusLevel() log.Level {
	switch l {
	case LogLevelTrace:
		return log.TraceLevel
	case LogLevelDebug:
		return log.DebugLevel
	case LogLevelInfo:
		return log.InfoLevel
	case LogLevelWarn:
		return log.WarnLevel
	case LogLevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Config represents the host configuration shared by all commands
type Config struct {
	LogLevel  LogLevel
	LogFormat string
}

// NewConfigFromContext creates a new Config from CLI context with validation
func NewConfigFromContext(ctx *cli.Context) (*Config, error) {
	config := &Config{
		LogLevel:  LogLevel(ctx.String("log-level")),
		LogFormat: ctx.String("log-format"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// Validate performs validation of the configuration
func (c *Config) Validate() error {
	var validationErrors []error

	if !c.LogLevel.IsValid() {
		validationErrors = append(validationErrors,
			fmt.Errorf("invalid log level %q (allowed: trace, debug, info, warn, error)", c.LogLevel))
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Errorf("invalid log format %q (allowed: text, json)", c.LogFormat))
	}

	if len(validationErrors) > 0 {
		return errors.Join(validationErrors...)
	}
	return nil
}

// SetupLogger configures the process-wide logger
func (c *Config) SetupLogger() {
	if c.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	log.SetLevel(c.LogLevel.ToLogrusLevel())
}
