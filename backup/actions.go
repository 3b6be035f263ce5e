// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package backup

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"go.mondoo.com/cnrestore/restore"
	"go.mondoo.com/cnrestore/windows/registry"
)

var (
	_ restore.Action = ExportRegistryAction{}
	_ restore.Action = StoreFileAction{}
	_ restore.Action = StoreDirAction{}
)

// RegistryExport names one registry key and the .reg file it lands in.
type RegistryExport struct {
	// Key is a full root name path, e.g.
	// HKEY_CURRENT_USER\Control Panel\Sound.
	Key string
	// File is the file name inside the action's Dest subdirectory.
	File string
}

// ExportRegistryAction exports registry keys into .reg files under a
// backup subdirectory. Keys that do not exist on the system are skipped.
type ExportRegistryAction struct {
	// Dest is the subdirectory under the backup directory, e.g. "Registry".
	Dest    string
	Exports []RegistryExport
}

func (a ExportRegistryAction) Describe(x *restore.Exec) string {
	return fmt.Sprintf("export %d registry keys to %s", len(a.Exports), x.Path(a.Dest))
}

func (a ExportRegistryAction) Exists(x *restore.Exec) (bool, error) {
	// probing registry keys runs commands, which dry-run suppresses
	if x.DryRun {
		return true, nil
	}
	for i := range a.Exports {
		ok, err := registry.KeyExists(x.Conn, a.Exports[i].Key)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (a ExportRegistryAction) Run(ctx context.Context, x *restore.Exec) error {
	if err := x.Conn.FS().MkdirAll(x.Path(a.Dest), 0o755); err != nil {
		return errors.Wrapf(err, "could not create %s", x.Path(a.Dest))
	}
	for i := range a.Exports {
		exp := a.Exports[i]
		ok, err := registry.KeyExists(x.Conn, exp.Key)
		if err != nil {
			return err
		}
		if !ok {
			log.Debug().Str("key", exp.Key).Msg("key does not exist, nothing to export")
			continue
		}
		if err := registry.Export(x.Conn, exp.Key, x.Path(a.Dest, exp.File)); err != nil {
			return err
		}
	}
	return nil
}

// StoreFileAction copies one live file into the backup directory.
type StoreFileAction struct {
	// Source is the absolute path on the system.
	Source string
	// Dest is relative to the backup directory.
	Dest string
}

func (a StoreFileAction) Describe(x *restore.Exec) string {
	return fmt.Sprintf("store %s -> %s", a.Source, x.Path(a.Dest))
}

func (a StoreFileAction) Exists(x *restore.Exec) (bool, error) {
	return afero.Exists(x.Conn.FS(), a.Source)
}

func (a StoreFileAction) Run(ctx context.Context, x *restore.Exec) error {
	return restore.CopyFile(x.Conn.FS(), a.Source, x.Path(a.Dest))
}

// StoreDirAction copies a live directory tree into the backup directory.
// Exclude patterns filter out temp and cache entries by name.
type StoreDirAction struct {
	Source  string
	Dest    string
	Exclude []string
}

func (a StoreDirAction) Describe(x *restore.Exec) string {
	return fmt.Sprintf("store directory %s -> %s", a.Source, x.Path(a.Dest))
}

func (a StoreDirAction) Exists(x *restore.Exec) (bool, error) {
	return afero.DirExists(x.Conn.FS(), a.Source)
}

func (a StoreDirAction) Run(ctx context.Context, x *restore.Exec) error {
	return restore.CopyDir(x.Conn.FS(), a.Source, x.Path(a.Dest), a.Exclude)
}
