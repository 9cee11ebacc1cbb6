/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cli implements the convctl commands.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dirpx.dev/convention/apis"
	"dirpx.dev/convention/internal/config"
	"dirpx.dev/convention/internal/logger"
	"dirpx.dev/convention/mapper"
)

// Exit codes returned by Run.
const (
	ExitSuccess           = 0
	ExitNotFound          = 1
	ExitInvalidInvocation = 2
	ExitConfigError       = 3
	ExitInternalError     = 4
)

// ExitError carries the exit code a failed command should produce.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func exitf(c int, format string, args ...any) error {
	return &ExitError{Code: c, Err: fmt.Errorf(format, args...)}
}

// ExitCode maps err to an exit code. Errors that carry no code come from
// argument parsing and count as invalid invocations.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitInvalidInvocation
}

// app is the state shared by all subcommands of one root command.
type app struct {
	v      *viper.Viper
	path   string
	cfg    *config.Config
	log    *logrus.Logger
	mapper apis.Mapper
}

// NewRootCommand builds the convctl command tree writing results to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "convctl",
		Short:         "Inspect project error codes, errno normalization and command words",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.path, "config", "", "path to a convctl.yaml file")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text, json)")
	pf.StringP("output", "o", "text", "output format (text, json, yaml)")
	_ = a.v.BindPFlag("log_level", pf.Lookup("log-level"))
	_ = a.v.BindPFlag("log_format", pf.Lookup("log-format"))
	_ = a.v.BindPFlag("output", pf.Lookup("output"))

	root.AddCommand(
		newErrnoCommand(a),
		newTableCommand(a),
		newCodeCommand(a),
		newCmdCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.path)
	if err != nil {
		return &ExitError{Code: ExitConfigError, Err: err}
	}
	a.cfg = cfg
	a.log = logger.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

	opts, err := cfg.MapperOptions()
	if err != nil {
		return &ExitError{Code: ExitConfigError, Err: err}
	}
	m, err := mapper.New(opts...)
	if err != nil {
		return &ExitError{Code: ExitConfigError, Err: err}
	}
	a.mapper = m

	a.log.WithFields(logger.Fields{
		"config":        a.path,
		"output":        cfg.Output,
		"mapper_option": len(opts),
	}).Debug("convctl configured")
	return nil
}

// Run executes convctl with args and returns the process exit code.
func Run(args []string, out, errOut io.Writer) int {
	root := NewRootCommand(out)
	root.SetErr(errOut)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(errOut, "convctl:", err)
		return ExitCode(err)
	}
	return ExitSuccess
}
