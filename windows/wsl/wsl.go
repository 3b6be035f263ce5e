// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package wsl drives the Windows Subsystem for Linux through wsl.exe:
// distribution listing, tarball export/import and lifecycle control.
package wsl

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	version "github.com/hashicorp/go-version"
	"go.mondoo.com/cnrestore/connection"
	"golang.org/x/text/encoding/unicode"
)

// MinimumBuild is the first Windows 10 build that ships wsl.exe with
// --import and --export support.
const MinimumBuild = "18362"

func ListCmd() string {
	return "wsl.exe --list --quiet"
}

func ExportCmd(distribution string, tar string) string {
	return fmt.Sprintf("wsl.exe --export %s \"%s\"", distribution, tar)
}

func ImportCmd(distribution string, installDir string, tar string) string {
	return fmt.Sprintf("wsl.exe --import %s \"%s\" \"%s\"", distribution, installDir, tar)
}

func TerminateCmd(distribution string) string {
	return fmt.Sprintf("wsl.exe --terminate %s", distribution)
}

func ShutdownCmd() string {
	return "wsl.exe --shutdown"
}

func SetDefaultCmd(distribution string) string {
	return fmt.Sprintf("wsl.exe --set-default %s", distribution)
}

func UnregisterCmd(distribution string) string {
	return fmt.Sprintf("wsl.exe --unregister %s", distribution)
}

// DecodeOutput converts wsl.exe output to UTF-8. wsl.exe writes UTF-16LE
// while everything else on the shell writes UTF-8, so the conversion is
// only applied when NUL bytes are present.
func DecodeOutput(data []byte) (string, error) {
	if !bytes.ContainsRune(data, 0) {
		return string(data), nil
	}

	decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	decoded, err := decoder.Bytes(data)
	if err != nil {
		return "", errors.Wrap(err, "could not decode wsl.exe output")
	}
	return string(decoded), nil
}

// ParseDistributions parses the output of `wsl.exe --list --quiet` into
// distribution names.
func ParseDistributions(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	out, err := DecodeOutput(data)
	if err != nil {
		return nil, err
	}

	var distributions []string
	for _, line := range strings.Split(out, "\n") {
		name := strings.TrimSpace(strings.TrimRight(line, "\r"))
		if name == "" {
			continue
		}
		distributions = append(distributions, name)
	}
	return distributions, nil
}

// Distributions lists the registered WSL distributions.
func Distributions(conn connection.Connection) ([]string, error) {
	cmd, err := conn.RunCommand(ListCmd())
	if err != nil {
		return nil, errors.Wrap(err, "could not list wsl distributions")
	}
	if cmd.ExitStatus != 0 {
		// wsl.exe exits non-zero when the subsystem is not installed
		return nil, nil
	}
	return ParseDistributions(cmd.Stdout)
}

// DistributionExists reports whether a distribution is registered.
func DistributionExists(conn connection.Connection, name string) (bool, error) {
	distributions, err := Distributions(conn)
	if err != nil {
		return false, err
	}
	for i := range distributions {
		if strings.EqualFold(distributions[i], name) {
			return true, nil
		}
	}
	return false, nil
}

// SupportedBuild reports whether the given Windows build number ships a
// wsl.exe with tarball import/export.
func SupportedBuild(currentBuild string) (bool, error) {
	build, err := version.NewVersion(currentBuild)
	if err != nil {
		return false, errors.Wrapf(err, "could not parse windows build %s", currentBuild)
	}
	minimum := version.Must(version.NewVersion(MinimumBuild))
	return build.GreaterThanOrEqual(minimum), nil
}
