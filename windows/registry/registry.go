// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package registry

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"go.mondoo.com/cnrestore/connection"
	"go.mondoo.com/cnrestore/windows/powershell"
)

// ErrKeyNotFound indicates the queried registry key does not exist.
var ErrKeyNotFound = errors.New("registry key not found")

// ImportCmd returns the reg.exe invocation that loads the entries of a
// .reg file into the registry.
func ImportCmd(file string) string {
	return fmt.Sprintf("reg.exe import \"%s\"", file)
}

// ExportCmd returns the reg.exe invocation that writes a key and all of
// its subkeys to a .reg file, overwriting the file if it exists.
func ExportCmd(key string, file string) string {
	return fmt.Sprintf("reg.exe export \"%s\" \"%s\" /y", key, file)
}

// AddValueCmd returns the reg.exe invocation that sets a single value
// without prompting. kind is a reg.exe type such as REG_DWORD or REG_SZ.
func AddValueCmd(key string, name string, kind string, data string) string {
	return fmt.Sprintf("reg.exe add \"%s\" /v \"%s\" /t %s /d %s /f", key, name, kind, data)
}

// Import loads a .reg file via reg.exe. A non-zero exit of reg.exe is
// returned as an error carrying its stderr.
func Import(conn connection.Connection, file string) error {
	cmd, err := conn.RunCommand(ImportCmd(file))
	if err != nil {
		return errors.Wrapf(err, "could not run reg.exe import for %s", file)
	}
	if cmd.ExitStatus != 0 {
		return errors.Newf("reg.exe import %s failed: %s", file, readStderr(cmd))
	}
	return nil
}

// Export writes a registry key to a .reg file via reg.exe.
func Export(conn connection.Connection, key string, file string) error {
	cmd, err := conn.RunCommand(ExportCmd(key, file))
	if err != nil {
		return errors.Wrapf(err, "could not run reg.exe export for %s", key)
	}
	if cmd.ExitStatus != 0 {
		return errors.Newf("reg.exe export %s failed: %s", key, readStderr(cmd))
	}
	return nil
}

// GetKeyItems returns the properties of a registry key. On a local
// Windows connection it reads the registry natively, everywhere else it
// parses the output of a PowerShell script.
func GetKeyItems(conn connection.Connection, path string) ([]RegistryKeyItem, error) {
	if runtime.GOOS == "windows" {
		if _, ok := conn.(*connection.Local); ok {
			return GetNativeRegistryKeyItems(path)
		}
	}

	script := powershell.Encode(GetRegistryKeyItemScript(path))
	cmd, err := conn.RunCommand(script)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read registry key %s", path)
	}
	if cmd.ExitStatus != 0 {
		stderr := readStderr(cmd)
		// this is the expected error when the key is missing
		// TODO: revisit how this is handled for non-english systems
		if strings.Contains(stderr, "not exist") || strings.Contains(stderr, "ObjectNotFound") {
			return nil, errors.Wrap(ErrKeyNotFound, path)
		}
		return nil, errors.Newf("could not retrieve registry key %s: %s", path, stderr)
	}

	return ParseRegistryKeyItems(cmd.Stdout)
}

// KeyExists reports whether a registry key is present on the system.
func KeyExists(conn connection.Connection, path string) (bool, error) {
	_, err := GetKeyItems(conn, path)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func readStderr(cmd *connection.Command) string {
	data, err := io.ReadAll(cmd.Stderr)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
