// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package features

import (
	"path/filepath"

	"go.mondoo.com/cnrestore/backup"
	"go.mondoo.com/cnrestore/restore"
)

// Terminal covers Windows Terminal settings and profile fragments.
func Terminal(env Env) Feature {
	settings := filepath.Join(env.LocalAppData, "Packages", "Microsoft.WindowsTerminal_8wekyb3d8bbwe", "LocalState", "settings.json")
	fragments := filepath.Join(env.LocalAppData, "Microsoft", "Windows Terminal", "Fragments")
	return Feature{
		Name:   "Terminal",
		Subdir: "Terminal",
		Restore: []restore.Item{
			{Name: "Settings", Action: restore.CopyFileAction{
				Source: "settings.json",
				Dest:   settings,
			}},
			{Name: "Fragments", Action: restore.CopyDirAction{
				Source: "Fragments",
				Dest:   fragments,
			}},
		},
		Backup: []restore.Item{
			{Name: "Settings", Action: backup.StoreFileAction{
				Source: settings,
				Dest:   "settings.json",
			}},
			{Name: "Fragments", Action: backup.StoreDirAction{
				Source: fragments,
				Dest:   "Fragments",
			}},
		},
	}
}
