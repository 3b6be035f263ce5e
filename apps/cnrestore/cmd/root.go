// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cmd

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.mondoo.com/cnrestore"
	"go.mondoo.com/cnrestore/cli/config"
	cli_errors "go.mondoo.com/cnrestore/cli/errors"
	"go.mondoo.com/cnrestore/cli/prof"
	"go.mondoo.com/cnrestore/cli/theme"
	"go.mondoo.com/cnrestore/logger"
)

const rootCmdDesc = "cnrestore backs up and restores Windows subsystem configuration:\n" +
	"keyboard layouts, Wi-Fi profiles, power schemes, RDP, sound, SSH keys,\n" +
	"Windows Terminal settings, Word preferences, default app associations,\n" +
	"browser profiles, and WSL distributions.\n"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "cnrestore",
	Short:   "cnrestore CLI",
	Long:    theme.DefaultTheme.Landing + "\n\n" + rootCmdDesc,
	Version: cnrestore.GetVersion(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var cmdErr *cli_errors.CommandError
		if errors.As(err, &cmdErr) {
			if cmdErr.HasError() {
				log.Error().Msg(cmdErr.Error())
			}
			os.Exit(cmdErr.ExitCode())
		}

		log.Error().Msg(err.Error())
		os.Exit(1)
	}
}

func init() {
	// NOTE: we need to call this super early, otherwise the CLI color output
	// on Windows is broken for the first lines
	if isatty.IsTerminal(os.Stdout.Fd()) && os.Getenv("NO_COLOR") == "" {
		logger.CliCompactLogger(logger.LogOutputWriter)
	} else {
		logger.CliNoColorLogger(logger.LogOutputWriter)
		theme.DefaultTheme = theme.PlainTheme
	}
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	prof.InitProfiler("cnrestore")

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("log-level", "info", "Set log level: error, warn, info, debug, trace")
	rootCmd.PersistentFlags().String("backup-root", "", "Set the backup store root directory")
	rootCmd.PersistentFlags().String("shared-root", "", "Set the shared fallback directory (default <backup-root>/shared)")
	rootCmd.PersistentFlags().String("machine", "", "Override the machine name (default: hostname)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("backup_root", rootCmd.PersistentFlags().Lookup("backup-root"))
	_ = viper.BindPFlag("shared_root", rootCmd.PersistentFlags().Lookup("shared-root"))
	_ = viper.BindPFlag("machine", rootCmd.PersistentFlags().Lookup("machine"))

	config.Init(rootCmd)
}

func initLogger() {
	// environment variables always over-write custom flags
	envLevel, ok := logger.GetEnvLogLevel()
	if ok {
		logger.Set(envLevel)
		return
	}

	// retrieve log-level from flags
	level := viper.GetString("log-level")
	if v := viper.GetBool("verbose"); v {
		level = "debug"
	}
	logger.Set(level)
}
