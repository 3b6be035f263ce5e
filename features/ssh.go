// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package features

import (
	"path/filepath"

	"go.mondoo.com/cnrestore/backup"
	"go.mondoo.com/cnrestore/restore"
)

// SSH covers the user's key material and client config, plus the server
// configuration where OpenSSH Server is installed. ssh-agent holds key
// handles, so it pauses during the restore.
func SSH(env Env) Feature {
	sshDir := filepath.Join(env.Home, ".ssh")
	sshdConfig := filepath.Join(env.ProgramData, "ssh", "sshd_config")
	exclude := []string{"*.old", "*.tmp"}
	return Feature{
		Name:     "SSH",
		Subdir:   "SSH",
		Services: []string{"ssh-agent"},
		Restore: []restore.Item{
			{Name: "Keys", Action: restore.CopyDirAction{
				Source:  "ssh",
				Dest:    sshDir,
				Exclude: exclude,
			}},
			{Name: "ServerConfig", Action: restore.CopyFileAction{
				Source: "sshd_config",
				Dest:   sshdConfig,
			}},
		},
		Backup: []restore.Item{
			{Name: "Keys", Action: backup.StoreDirAction{
				Source:  sshDir,
				Dest:    "ssh",
				Exclude: exclude,
			}},
			{Name: "ServerConfig", Action: backup.StoreFileAction{
				Source: sshdConfig,
				Dest:   "sshd_config",
			}},
		},
	}
}
