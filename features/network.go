// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package features

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.mondoo.com/cnrestore/backup"
	"go.mondoo.com/cnrestore/restore"
)

// Network covers wireless connection profiles and TCP/IP parameters.
func Network() Feature {
	return Feature{
		Name:   "Network",
		Subdir: "Network",
		Restore: []restore.Item{
			{Name: "Connections", Action: wifiProfilesAction{Source: "Wifi"}},
			{Name: "Registry", Action: restore.ImportRegistryAction{Source: "Registry"}},
		},
		Backup: []restore.Item{
			{Name: "Connections", Action: wifiExportAction{Dest: "Wifi"}},
			{Name: "Registry", Action: backup.ExportRegistryAction{
				Dest: "Registry",
				Exports: []backup.RegistryExport{
					{Key: `HKEY_LOCAL_MACHINE\SYSTEM\CurrentControlSet\Services\Tcpip\Parameters`, File: "tcpip.reg"},
				},
			}},
		},
	}
}

func netshExportCmd(dir string) string {
	return fmt.Sprintf(`netsh.exe wlan export profile key=clear folder="%s"`, dir)
}

func netshAddCmd(file string) string {
	return fmt.Sprintf(`netsh.exe wlan add profile filename="%s" user=all`, file)
}

// wifiProfilesAction adds every exported wireless profile back to the
// system. netsh imports one file at a time, so the action iterates the
// profile directory.
type wifiProfilesAction struct {
	// Source is the subdirectory holding the profile XML files.
	Source string
}

func (a wifiProfilesAction) Describe(x *restore.Exec) string {
	return fmt.Sprintf("add wireless profiles from %s", x.Path(a.Source))
}

func (a wifiProfilesAction) Exists(x *restore.Exec) (bool, error) {
	files, err := a.files(x)
	if err != nil {
		return false, err
	}
	return len(files) > 0, nil
}

func (a wifiProfilesAction) Run(ctx context.Context, x *restore.Exec) error {
	files, err := a.files(x)
	if err != nil {
		return err
	}
	for i := range files {
		if err := restore.RunCommand(x, netshAddCmd(files[i])); err != nil {
			return err
		}
	}
	return nil
}

func (a wifiProfilesAction) files(x *restore.Exec) ([]string, error) {
	return afero.Glob(x.Conn.FS(), filepath.Join(x.Path(a.Source), "*.xml"))
}

// wifiExportAction exports all wireless profiles with their keys into
// the backup. netsh refuses to write into a directory that does not
// exist, so the action creates it first.
type wifiExportAction struct {
	Dest string
}

func (a wifiExportAction) Describe(x *restore.Exec) string {
	return "export wireless profiles to " + x.Path(a.Dest)
}

func (a wifiExportAction) Exists(x *restore.Exec) (bool, error) {
	return true, nil
}

func (a wifiExportAction) Run(ctx context.Context, x *restore.Exec) error {
	dir := x.Path(a.Dest)
	if err := x.Conn.FS().MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "could not create %s", dir)
	}
	return restore.RunCommand(x, netshExportCmd(dir))
}
