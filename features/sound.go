// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package features

import (
	"go.mondoo.com/cnrestore/backup"
	"go.mondoo.com/cnrestore/restore"
)

// Sound covers the sound scheme and event sounds. The audio services
// hold the device registry open while they run.
func Sound() Feature {
	return Feature{
		Name:     "Sound",
		Subdir:   "Sound",
		Services: []string{"Audiosrv", "AudioEndpointBuilder"},
		Restore: []restore.Item{
			{Name: "Registry", Action: restore.ImportRegistryAction{Source: "Registry"}},
		},
		Backup: []restore.Item{
			{Name: "Registry", Action: backup.ExportRegistryAction{
				Dest: "Registry",
				Exports: []backup.RegistryExport{
					{Key: `HKEY_CURRENT_USER\AppEvents\Schemes`, File: "schemes.reg"},
					{Key: `HKEY_CURRENT_USER\Control Panel\Sound`, File: "sound.reg"},
				},
			}},
		},
	}
}
