// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys. Each one can come from a flag, a SCICOMP_* environment
// variable or the --config file, in that order of precedence.
const (
	keyOutput      = "output"
	keyLogLevel    = "log-level"
	keyMetricsFile = "metrics-file"

	envPrefix = "SCICOMP"
)

// Output formats accepted by --output.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyOutput, formatText)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyMetricsFile, "")

	return v
}

// loadConfig binds the persistent flags and, when path is set, merges the
// config file into v.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet, path string) error {
	for _, key := range []string{keyOutput, keyLogLevel, keyMetricsFile} {
		if f := flags.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind %s: %w", key, err)
			}
		}
	}
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	return nil
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}
