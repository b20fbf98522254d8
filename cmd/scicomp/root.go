// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	v          *viper.Viper
	log        *logrus.Logger
	metrics    *metrics
	configPath string
}

func newRootCommand() *cobra.Command {
	a := &app{
		v:       newViper(),
		log:     logrus.New(),
		metrics: newMetrics(),
	}

	cmd := &cobra.Command{
		Use:           "scicomp",
		Short:         "Tridiagonal solver and quadrature toolbox",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Path to a YAML/JSON config file")
	pf.StringP(keyOutput, "o", formatText, "Output format: text, json or yaml")
	pf.String(keyLogLevel, "info", "Log level (trace, debug, info, warn, error)")
	pf.String(keyMetricsFile, "", "Write Prometheus textfile metrics to this path")

	cmd.AddCommand(
		newSolveCommand(a),
		newGaussCommand(a),
		newAdapt2DCommand(a),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := loadConfig(a.v, cmd.Flags(), a.configPath); err != nil {
		return err
	}
	if err := validateFormat(a.v.GetString(keyOutput)); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.log.SetLevel(level)
	a.log.SetOutput(cmd.ErrOrStderr())

	return nil
}

// run wraps a subcommand body so metrics are flushed on success and failure.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if werr := a.metrics.writeTo(a.v.GetString(keyMetricsFile)); werr != nil {
			a.log.WithError(werr).Warn("writing metrics")
			err = errors.Join(err, werr)
		}

		return err
	}
}

// emit writes v in the configured format; text is produced by textFn.
func (a *app) emit(w io.Writer, v any, textFn func(io.Writer) error) error {
	switch a.v.GetString(keyOutput) {
	case formatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))

		return err
	case formatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)

		return err
	default:
		return textFn(w)
	}
}
