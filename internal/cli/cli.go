//
// Copyright 2026 The RakeEngine Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package cli holds the plumbing shared by the build tools' commands:
// logger construction and flag/environment binding.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variables overriding flags,
// e.g. RAKE_LOG_LEVEL for --log-level.
const EnvPrefix = "RAKE"

// NewLogger returns a logger writing to w at the given level.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	}), nil
}

// RegisterLogFlag adds the --log-level flag to cmd.
func RegisterLogFlag(cmd *cobra.Command) {
	cmd.Flags().String("log-level", "info", "log level (debug|info|warn|error)")
}

// Bind returns a viper instance reading cmd's flags, with values overridable
// by RAKE_ prefixed environment variables. Dashes in flag names map to
// underscores in variable names.
func Bind(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	return v, nil
}

// StringSlice reads a list value. Flags already hold a list; an environment
// variable is a single string, split on commas and whitespace.
func StringSlice(v *viper.Viper, key string) []string {
	if s, ok := v.Get(key).(string); ok {
		return strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
	}
	return v.GetStringSlice(key)
}

// Setup binds cmd's flags and stores a logger configured from --log-level
// in the returned context.
func Setup(cmd *cobra.Command) (context.Context, *viper.Viper, error) {
	v, err := Bind(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger, err := NewLogger(os.Stderr, v.GetString("log-level"))
	if err != nil {
		return nil, nil, err
	}
	return log.WithContext(cmd.Context(), logger), v, nil
}

// Execute runs cmd with a context canceled on interrupt and exits with
// status 1 if it fails.
func Execute(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
