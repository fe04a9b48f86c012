// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ethersphere/swarmlog/pkg/mode"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	optionNameTestLogging = "test-logging"
	optionNameConsole     = "console"
	optionNameVerbosity   = "verbosity"
	optionNameOutput      = "output"
	optionNameLogger      = "logger"
	optionNameSeverity    = "severity"
	optionNameExpected    = "expected"
	optionNameMetrics     = "metrics"
	optionNameMessage     = "message"

	configName = ".swarmlog"
)

func init() {
	cobra.EnableCommandSorting = false
}

type command struct {
	root    *cobra.Command
	config  *viper.Viper
	fs      afero.Fs
	cfgFile string
	homeDir string
}

type option func(*command)

func newCommand(opts ...option) (c *command, err error) {
	c = &command{
		root: &cobra.Command{
			Use:           "swarmlog",
			Short:         "Inspect and exercise the user and dev loggers",
			SilenceErrors: true,
			SilenceUsage:  true,
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				return c.initConfig(cmd)
			},
		},
	}

	for _, o := range opts {
		o(c)
	}
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}

	// Find home directory.
	if err := c.setHomeDir(); err != nil {
		return nil, err
	}

	c.initGlobalFlags()

	c.initLevelsCmd()
	c.initEmitCmd()
	c.initAssertCmd()
	c.initClassifyCmd()
	c.initVersionCmd()

	return c, nil
}

func (c *command) Execute() (err error) {
	return c.root.Execute()
}

// Execute parses command line arguments and runs appropriate functions.
func Execute() (err error) {
	c, err := newCommand()
	if err != nil {
		return err
	}
	return c.Execute()
}

func (c *command) initGlobalFlags() {
	globalFlags := c.root.PersistentFlags()
	globalFlags.StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.swarmlog.yaml)")
	globalFlags.Bool(mode.KeyTest, false, "run in test mode")
	globalFlags.Bool(mode.KeyLocalDev, false, "run in local development mode")
	globalFlags.Bool(mode.KeyDevelopment, false, "run in development mode")
	globalFlags.String(mode.KeyLog, "", "log level override 0=off, 1=user, 2=dev info, 3=dev fine")
	globalFlags.Bool(optionNameTestLogging, false, "log everything in test mode")
	globalFlags.String(optionNameConsole, "plain", "console output format: plain, logrus, zap")
	globalFlags.String(optionNameVerbosity, "info", "command diagnostics verbosity 0=silent, 1=error, 2=warn, 3=info, 4=debug")
}

func (c *command) initConfig(cmd *cobra.Command) (err error) {
	opts := []mode.ConfigOption{mode.WithFs(c.fs)}
	switch {
	case c.cfgFile != "":
		// Use config file from the flag.
		opts = append(opts, mode.WithConfigFile(c.cfgFile))
	case c.homeDir != "":
		// Search config in home directory with name ".swarmlog" (without extension).
		opts = append(opts, mode.WithConfigDir(c.homeDir, configName))
	}

	config, err := mode.NewConfig(opts...)
	if err != nil {
		return err
	}
	if err := config.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	c.config = config
	return nil
}

func (c *command) setHomeDir() (err error) {
	if c.homeDir != "" {
		return
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	c.homeDir = dir
	return nil
}

// newLogger returns the logger of the command's own diagnostics.
func newLogger(w io.Writer, verbosity string) (*logrus.Logger, error) {
	l := logrus.New()
	l.Formatter = &logrus.TextFormatter{
		FullTimestamp: true,
	}
	l.SetOutput(w)
	switch verbosity {
	case "0", "silent":
		l.SetOutput(io.Discard)
	case "1", "error":
		l.SetLevel(logrus.ErrorLevel)
	case "2", "warn":
		l.SetLevel(logrus.WarnLevel)
	case "3", "info":
		l.SetLevel(logrus.InfoLevel)
	case "4", "debug":
		l.SetLevel(logrus.DebugLevel)
	default:
		return nil, fmt.Errorf("unknown verbosity level %q", verbosity)
	}
	return l, nil
}
