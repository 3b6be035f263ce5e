// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.mondoo.com/cnrestore/features"
	"go.mondoo.com/cnrestore/logger"
)

/*
	Configuration is loaded in this order:
	ENV -> --config / $CNRESTORE_CONFIG_PATH / autodetected file -> defaults
*/

// Init registers the config flag and hooks config loading into cobra.
func Init(rootCmd *cobra.Command) {
	cobra.OnInitialize(InitViperConfig)
	// persistent flags are global for the application
	rootCmd.PersistentFlags().StringVar(&UserProvidedPath, "config", "", "Set config file path (default $HOME/.config/cnrestore/cnrestore.yml)")
}

func InitViperConfig() {
	viper.SetConfigType("yaml")

	Path = strings.TrimSpace(UserProvidedPath)
	if len(Path) == 0 && len(os.Getenv("CNRESTORE_CONFIG_PATH")) > 0 {
		// fallback to env variable if provided, but only if --config is not used
		Source = "$CNRESTORE_CONFIG_PATH"
		Path = os.Getenv("CNRESTORE_CONFIG_PATH")
	} else if len(Path) != 0 {
		Source = "--config"
	} else {
		Source = "default"
	}

	// check if the default config file is available
	if Path == "" {
		Path = autodetectConfig()
	}

	// we set this here, so that sub commands that rely on writing config can
	// use the default config location
	viper.SetConfigFile(Path)

	// if the file exists, load it
	if _, err := AppFs.Stat(Path); err == nil {
		log.Debug().Str("configfile", viper.ConfigFileUsed()).Msg("try to load local config file")
		if err := viper.ReadInConfig(); err == nil {
			LoadedConfig = true
		} else {
			LoadedConfig = false
			log.Error().Err(err).Str("path", Path).Msg("could not read config file")
		}
	}

	// by default it uses console output, for automation we may want to set
	// it to json output or, on windows, the event log
	switch viper.GetString("log.format") {
	case "json":
		logger.UseJSONLogging(logger.LogOutputWriter)
	case "eventlog":
		if err := logger.UseEventlogLogging("cnrestore"); err != nil {
			log.Warn().Err(err).Msg("could not open the windows event log, keeping console output")
		}
	}

	if viper.GetBool("log.color") {
		logger.CliCompactLogger(logger.LogOutputWriter)
	}

	// override values with env variables
	viper.SetEnvPrefix("cnrestore")
	// to parse env variables properly we need to replace some chars
	// all hyphens and all dots need to be underscores
	replacer := strings.NewReplacer("-", "_", ".", "_")
	viper.SetEnvKeyReplacer(replacer)

	// read in environment variables that match
	viper.AutomaticEnv()
}

func DisplayUsedConfig() {
	if !LoadedConfig && len(UserProvidedPath) > 0 {
		log.Warn().Msg("could not load configuration file " + UserProvidedPath)
	} else if LoadedConfig {
		log.Info().Msg("loaded configuration from " + viper.ConfigFileUsed() + " using source " + Source)
	} else {
		log.Info().Msg("no configuration file provided, using defaults")
	}
}

// Read loads the viper state into a validated config struct.
func Read() (*Config, error) {
	var opts Config
	err := viper.Unmarshal(&opts)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode into config struct")
	}

	// feature options get a strict decoder, so that typos in the config
	// file surface instead of being silently ignored
	if raw := viper.GetStringMap("features"); len(raw) > 0 {
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:      &opts.Features,
			ErrorUnused: true,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(raw); err != nil {
			return nil, errors.Wrap(err, "invalid features configuration")
		}
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// Config is the cnrestore configuration file.
type Config struct {
	// BackupRoot is the top of the backup store.
	BackupRoot string `json:"backup_root,omitempty" mapstructure:"backup_root"`
	// SharedRoot overrides the shared fallback location, default
	// <backup_root>/shared.
	SharedRoot string `json:"shared_root,omitempty" mapstructure:"shared_root"`
	// Machine overrides the machine subdirectory, default is the hostname.
	Machine string `json:"machine,omitempty" mapstructure:"machine"`
	// Force continues feature runs after item failures.
	Force bool `json:"force,omitempty" mapstructure:"force"`
	// Pager is the command used to page long reports, default $PAGER or less.
	Pager string `json:"pager,omitempty" mapstructure:"pager"`
	// Features carries the per-feature options.
	Features features.Options `json:"features,omitempty" mapstructure:"features"`
}

// Validate rejects configurations the engines cannot work with.
func (c *Config) Validate() error {
	return c.Features.Validate()
}
