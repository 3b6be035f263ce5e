// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.mondoo.com/cnrestore/restore"
)

func init() {
	rootCmd.AddCommand(backupCmd)
	addRunFlags(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup [feature...]",
	Short: "Back up Windows configuration into the backup store",
	Long: `
Export the live Windows subsystem configuration of this machine into the
backup store. Without arguments, every feature in the catalog is backed
up:

    cnrestore backup --backup-root 'D:\Backups'

Backups always target the machine-specific directory
(<backup-root>/<machine>/<feature>), which is created on demand. The
feature and item selection works the same as for restore:

    cnrestore backup network power --backup-root 'D:\Backups'
    cnrestore backup wsl --include Ubuntu --dry-run
	`,
	PreRun: func(cmd *cobra.Command, args []string) {
		_ = viper.BindPFlag("force", cmd.Flags().Lookup("force"))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFeatures(cmd, args, restore.OpBackup)
	},
}
