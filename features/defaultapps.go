// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package features

import (
	"path/filepath"

	"go.mondoo.com/cnrestore/restore"
	"go.mondoo.com/cnrestore/windows/defaultapps"
)

// DefaultApps covers the machine's file type and protocol associations,
// exported and applied through DISM.
func DefaultApps() Feature {
	return Feature{
		Name:   "DefaultApps",
		Subdir: "DefaultApps",
		Restore: []restore.Item{
			{Name: "Associations", Action: restore.ToolAction{
				Artifact: "associations.xml",
				Cmd: func(dir string) string {
					return defaultapps.ImportCmd(filepath.Join(dir, "associations.xml"))
				},
			}},
		},
		Backup: []restore.Item{
			{Name: "Associations", Action: restore.ToolAction{
				Cmd: func(dir string) string {
					return defaultapps.ExportCmd(filepath.Join(dir, "associations.xml"))
				},
			}},
		},
	}
}
