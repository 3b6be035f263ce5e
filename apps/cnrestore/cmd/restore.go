// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.mondoo.com/cnrestore/restore"
)

func init() {
	rootCmd.AddCommand(restoreCmd)
	addRunFlags(restoreCmd)
}

var restoreCmd = &cobra.Command{
	Use:   "restore [feature...]",
	Short: "Restore Windows configuration from the backup store",
	Long: `
Restore Windows subsystem configuration from the backup store onto this
machine. Without arguments, every feature in the catalog is restored:

    cnrestore restore --backup-root 'D:\Backups'

Name features to restrict the run, and use the include/exclude filters
to pick single items within a feature:

    cnrestore restore keyboard sound --backup-root 'D:\Backups'
    cnrestore restore wsl --include Ubuntu --dry-run

Each feature reads from the machine-specific directory of the backup
store when it exists, and falls back to the shared one otherwise. A
failing item stops its feature unless --force is set.
	`,
	PreRun: func(cmd *cobra.Command, args []string) {
		_ = viper.BindPFlag("force", cmd.Flags().Lookup("force"))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFeatures(cmd, args, restore.OpRestore)
	},
}
