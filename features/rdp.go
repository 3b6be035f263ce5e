// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package features

import (
	"path/filepath"

	"go.mondoo.com/cnrestore/backup"
	"go.mondoo.com/cnrestore/restore"
)

// RDP covers Remote Desktop server settings and the default connection
// file. TermService holds the server keys open while it runs. The restore
// re-enables incoming connections after the keys are back.
func RDP(env Env) Feature {
	defaultRdp := filepath.Join(env.Home, "Documents", "Default.rdp")
	return Feature{
		Name:     "RDP",
		Subdir:   "RDP",
		Services: []string{"TermService"},
		Restore: []restore.Item{
			{Name: "Registry", Action: restore.ImportRegistryAction{Source: "Registry"}},
			{Name: "DefaultConnection", Action: restore.CopyFileAction{
				Source: "Default.rdp",
				Dest:   defaultRdp,
			}},
			{Name: "EnableConnections", Action: restore.SetRegistryAction{
				Key:  `HKEY_LOCAL_MACHINE\SYSTEM\CurrentControlSet\Control\Terminal Server`,
				Name: "fDenyTSConnections",
				Kind: "REG_DWORD",
				Data: "0",
			}},
		},
		Backup: []restore.Item{
			{Name: "Registry", Action: backup.ExportRegistryAction{
				Dest: "Registry",
				Exports: []backup.RegistryExport{
					{Key: `HKEY_LOCAL_MACHINE\SYSTEM\CurrentControlSet\Control\Terminal Server`, File: "terminal-server.reg"},
					{Key: `HKEY_CURRENT_USER\Software\Microsoft\Terminal Server Client`, File: "client.reg"},
				},
			}},
			{Name: "DefaultConnection", Action: backup.StoreFileAction{
				Source: defaultRdp,
				Dest:   "Default.rdp",
			}},
		},
	}
}
