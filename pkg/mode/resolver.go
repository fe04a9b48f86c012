// Copyright 2024 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mode

import (
	"errors"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to the environment variables read by NewConfig.
const EnvPrefix = "swarmlog"

var _ Provider = (*Resolver)(nil)

// ConfigOptions specifies parameters for NewConfig.
type ConfigOptions struct {
	fs         afero.Fs
	configFile string
	configDir  string
	configName string
}

// ConfigOption represent ConfigOptions parameters modifier.
type ConfigOption func(*ConfigOptions)

// WithFs tells the config which filesystem to read the config file from.
func WithFs(fs afero.Fs) ConfigOption {
	return func(o *ConfigOptions) { o.fs = fs }
}

// WithConfigFile tells the config to read the given file.
func WithConfigFile(path string) ConfigOption {
	return func(o *ConfigOptions) { o.configFile = path }
}

// WithConfigDir tells the config to search for the
// named config file (without extension) in dir.
func WithConfigDir(dir, name string) ConfigOption {
	return func(o *ConfigOptions) {
		o.configDir = dir
		o.configName = name
	}
}

// NewConfig returns a viper configuration wired to the SWARMLOG_*
// environment variables and, if found, to a config file.
// A missing config file is not an error.
func NewConfig(opts ...ConfigOption) (*viper.Viper, error) {
	o := &ConfigOptions{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(o)
	}

	config := viper.New()
	config.SetFs(o.fs)
	config.SetEnvPrefix(EnvPrefix)
	config.AutomaticEnv()
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	switch {
	case o.configFile != "":
		config.SetConfigFile(o.configFile)
	case o.configDir != "":
		config.AddConfigPath(o.configDir)
		config.SetConfigName(o.configName)
	default:
		return config, nil
	}

	if err := config.ReadInConfig(); err != nil {
		var e viper.ConfigFileNotFoundError
		if !errors.As(err, &e) {
			return nil, err
		}
	}
	return config, nil
}

// Resolver reads the mode flags from a viper configuration.
type Resolver struct {
	config *viper.Viper

	once sync.Once
	mode Flags
}

// NewResolver returns a Resolver backed by the given configuration.
func NewResolver(config *viper.Viper) *Resolver {
	return &Resolver{config: config}
}

// Mode returns the mode snapshot. The first call reads the configuration,
// subsequent calls return the same snapshot.
func (r *Resolver) Mode() Flags {
	r.once.Do(func() {
		r.mode = r.ModeObject()
	})
	return r.mode
}

// ModeObject reads a fresh mode snapshot from the configuration.
func (r *Resolver) ModeObject() Flags {
	return Flags{
		Test:        r.config.GetBool(KeyTest),
		LocalDev:    r.config.GetBool(KeyLocalDev),
		Development: r.config.GetBool(KeyDevelopment),
		Log:         r.config.GetString(KeyLog),
	}
}
