// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package restore

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.mondoo.com/cnrestore/connection"
	"go.mondoo.com/cnrestore/windows/registry"
)

// CopyFileAction copies one file from the backup into a live location.
type CopyFileAction struct {
	// Source is relative to the resolved backup directory.
	Source string
	// Dest is the absolute path on the system.
	Dest string
}

func (a CopyFileAction) Describe(x *Exec) string {
	return fmt.Sprintf("copy %s -> %s", x.Path(a.Source), a.Dest)
}

func (a CopyFileAction) Exists(x *Exec) (bool, error) {
	return afero.Exists(x.Conn.FS(), x.Path(a.Source))
}

func (a CopyFileAction) Run(ctx context.Context, x *Exec) error {
	return CopyFile(x.Conn.FS(), x.Path(a.Source), a.Dest)
}

// CopyDirAction copies a directory tree from the backup into a live
// location. Exclude patterns filter out temp and cache entries by name.
type CopyDirAction struct {
	Source  string
	Dest    string
	Exclude []string
}

func (a CopyDirAction) Describe(x *Exec) string {
	return fmt.Sprintf("copy directory %s -> %s", x.Path(a.Source), a.Dest)
}

func (a CopyDirAction) Exists(x *Exec) (bool, error) {
	return afero.DirExists(x.Conn.FS(), x.Path(a.Source))
}

func (a CopyDirAction) Run(ctx context.Context, x *Exec) error {
	return CopyDir(x.Conn.FS(), x.Path(a.Source), a.Dest, a.Exclude)
}

// ImportRegistryAction imports every .reg file of a backup subdirectory
// via reg.exe.
type ImportRegistryAction struct {
	// Source is the subdirectory holding the .reg files.
	Source string
}

func (a ImportRegistryAction) Describe(x *Exec) string {
	return fmt.Sprintf("import registry files from %s", x.Path(a.Source))
}

func (a ImportRegistryAction) Exists(x *Exec) (bool, error) {
	files, err := a.files(x)
	if err != nil {
		return false, err
	}
	return len(files) > 0, nil
}

func (a ImportRegistryAction) Run(ctx context.Context, x *Exec) error {
	files, err := a.files(x)
	if err != nil {
		return err
	}
	for i := range files {
		if err := registry.Import(x.Conn, files[i]); err != nil {
			return err
		}
	}
	return nil
}

func (a ImportRegistryAction) files(x *Exec) ([]string, error) {
	return afero.Glob(x.Conn.FS(), filepath.Join(x.Path(a.Source), "*.reg"))
}

// SetRegistryAction sets a single registry value directly. It has no
// backup artifact and always runs.
type SetRegistryAction struct {
	Key  string
	Name string
	// Kind is a reg.exe value type, e.g. REG_DWORD.
	Kind string
	Data string
}

func (a SetRegistryAction) Describe(x *Exec) string {
	return fmt.Sprintf("set %s\\%s = %s", a.Key, a.Name, a.Data)
}

func (a SetRegistryAction) Exists(x *Exec) (bool, error) {
	return true, nil
}

func (a SetRegistryAction) Run(ctx context.Context, x *Exec) error {
	return RunCommand(x, registry.AddValueCmd(a.Key, a.Name, a.Kind, a.Data))
}

// ToolAction invokes an OS configuration tool (wsl.exe, dism.exe,
// netsh.exe, powercfg.exe). Cmd receives the resolved backup directory so
// the command line can point into the backup.
type ToolAction struct {
	// Artifact is an optional backup artifact that gates the run, relative
	// to the backup directory. Empty means the action always runs.
	Artifact string
	Cmd      func(dir string) string
}

func (a ToolAction) Describe(x *Exec) string {
	return "run: " + a.Cmd(x.Dir)
}

func (a ToolAction) Exists(x *Exec) (bool, error) {
	if a.Artifact == "" {
		return true, nil
	}
	return afero.Exists(x.Conn.FS(), x.Path(a.Artifact))
}

func (a ToolAction) Run(ctx context.Context, x *Exec) error {
	return RunCommand(x, a.Cmd(x.Dir))
}

// RunCommand executes one command through the connection and converts a
// non-zero exit into an error carrying the command's stderr.
func RunCommand(x *Exec, command string) error {
	cmd, err := x.Conn.RunCommand(command)
	if err != nil {
		return err
	}
	if cmd.ExitStatus != 0 {
		return errors.Newf("%s failed: %s", command, readStderr(cmd))
	}
	return nil
}

func readStderr(cmd *connection.Command) string {
	data, err := io.ReadAll(cmd.Stderr)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
