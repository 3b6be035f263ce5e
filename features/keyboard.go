// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package features

import (
	"go.mondoo.com/cnrestore/backup"
	"go.mondoo.com/cnrestore/restore"
)

// Keyboard covers layout preloads, substitutions and key repeat settings.
func Keyboard() Feature {
	return Feature{
		Name:   "Keyboard",
		Subdir: "Keyboard",
		Restore: []restore.Item{
			{Name: "Registry", Action: restore.ImportRegistryAction{Source: "Registry"}},
		},
		Backup: []restore.Item{
			{Name: "Registry", Action: backup.ExportRegistryAction{
				Dest: "Registry",
				Exports: []backup.RegistryExport{
					{Key: `HKEY_CURRENT_USER\Keyboard Layout`, File: "layout.reg"},
					{Key: `HKEY_CURRENT_USER\Control Panel\Keyboard`, File: "keyboard.reg"},
				},
			}},
		},
	}
}
