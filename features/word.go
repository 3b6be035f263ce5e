// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package features

import (
	"fmt"
	"path/filepath"

	"go.mondoo.com/cnrestore/backup"
	"go.mondoo.com/cnrestore/restore"
)

// Word covers editor options and the user's templates. The version
// selects the Office registry tree, 16.0 for Office 2016 and later.
func Word(env Env, opts WordOptions) Feature {
	if opts.Version == "" {
		opts.Version = "16.0"
	}
	optionsKey := fmt.Sprintf(`HKEY_CURRENT_USER\Software\Microsoft\Office\%s\Word\Options`, opts.Version)
	templates := filepath.Join(env.AppData, "Microsoft", "Templates")
	// ~$* are Word owner lock files
	exclude := []string{"~$*"}
	return Feature{
		Name:   "Word",
		Subdir: "Word",
		Restore: []restore.Item{
			{Name: "Registry", Action: restore.ImportRegistryAction{Source: "Registry"}},
			{Name: "Templates", Action: restore.CopyDirAction{
				Source:  "Templates",
				Dest:    templates,
				Exclude: exclude,
			}},
		},
		Backup: []restore.Item{
			{Name: "Registry", Action: backup.ExportRegistryAction{
				Dest:    "Registry",
				Exports: []backup.RegistryExport{{Key: optionsKey, File: "options.reg"}},
			}},
			{Name: "Templates", Action: backup.StoreDirAction{
				Source:  templates,
				Dest:    "Templates",
				Exclude: exclude,
			}},
		},
	}
}
