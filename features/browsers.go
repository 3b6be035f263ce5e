// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package features

import (
	"path/filepath"

	"go.mondoo.com/cnrestore/backup"
	"go.mondoo.com/cnrestore/restore"
)

// Browsers covers Chromium profile data for Chrome and Edge: bookmarks
// and preferences. Browsers have to be closed while this runs; there is
// no service to stop.
func Browsers(env Env, opts BrowsersOptions) Feature {
	if opts.Profile == "" {
		opts.Profile = "Default"
	}
	chrome := filepath.Join(env.LocalAppData, "Google", "Chrome", "User Data", opts.Profile)
	edge := filepath.Join(env.LocalAppData, "Microsoft", "Edge", "User Data", opts.Profile)
	return Feature{
		Name:   "Browsers",
		Subdir: "Browsers",
		Restore: []restore.Item{
			{Name: "ChromeBookmarks", Action: restore.CopyFileAction{
				Source: filepath.Join("Chrome", "Bookmarks"),
				Dest:   filepath.Join(chrome, "Bookmarks"),
			}},
			{Name: "ChromePreferences", Action: restore.CopyFileAction{
				Source: filepath.Join("Chrome", "Preferences"),
				Dest:   filepath.Join(chrome, "Preferences"),
			}},
			{Name: "EdgeBookmarks", Action: restore.CopyFileAction{
				Source: filepath.Join("Edge", "Bookmarks"),
				Dest:   filepath.Join(edge, "Bookmarks"),
			}},
			{Name: "EdgePreferences", Action: restore.CopyFileAction{
				Source: filepath.Join("Edge", "Preferences"),
				Dest:   filepath.Join(edge, "Preferences"),
			}},
		},
		Backup: []restore.Item{
			{Name: "ChromeBookmarks", Action: backup.StoreFileAction{
				Source: filepath.Join(chrome, "Bookmarks"),
				Dest:   filepath.Join("Chrome", "Bookmarks"),
			}},
			{Name: "ChromePreferences", Action: backup.StoreFileAction{
				Source: filepath.Join(chrome, "Preferences"),
				Dest:   filepath.Join("Chrome", "Preferences"),
			}},
			{Name: "EdgeBookmarks", Action: backup.StoreFileAction{
				Source: filepath.Join(edge, "Bookmarks"),
				Dest:   filepath.Join("Edge", "Bookmarks"),
			}},
			{Name: "EdgePreferences", Action: backup.StoreFileAction{
				Source: filepath.Join(edge, "Preferences"),
				Dest:   filepath.Join("Edge", "Preferences"),
			}},
		},
	}
}
