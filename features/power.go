// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

package features

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"go.mondoo.com/cnrestore/restore"
)

// Power covers the active power scheme.
func Power() Feature {
	return Feature{
		Name:   "Power",
		Subdir: "Power",
		Restore: []restore.Item{
			{Name: "Scheme", Action: restore.ToolAction{
				Artifact: "power.pow",
				Cmd: func(dir string) string {
					return fmt.Sprintf(`powercfg.exe /import "%s"`, filepath.Join(dir, "power.pow"))
				},
			}},
		},
		Backup: []restore.Item{
			{Name: "Scheme", Action: powerSchemeExportAction{File: "power.pow"}},
		},
	}
}

// powerSchemeExportAction saves the active power scheme. powercfg can
// only export by GUID, which /getactivescheme reveals.
type powerSchemeExportAction struct {
	File string
}

func (a powerSchemeExportAction) Describe(x *restore.Exec) string {
	return "export active power scheme to " + x.Path(a.File)
}

func (a powerSchemeExportAction) Exists(x *restore.Exec) (bool, error) {
	return true, nil
}

func (a powerSchemeExportAction) Run(ctx context.Context, x *restore.Exec) error {
	cmd, err := x.Conn.RunCommand("powercfg.exe /getactivescheme")
	if err != nil {
		return err
	}
	if cmd.ExitStatus != 0 {
		return errors.New("could not determine the active power scheme")
	}
	out, err := io.ReadAll(cmd.Stdout)
	if err != nil {
		return err
	}
	guid := parseSchemeGUID(string(out))
	if guid == "" {
		return errors.Newf("no scheme GUID in powercfg output: %s", strings.TrimSpace(string(out)))
	}
	return restore.RunCommand(x, fmt.Sprintf(`powercfg.exe /export "%s" %s`, x.Path(a.File), guid))
}

var schemeGUIDRe = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

// parseSchemeGUID extracts the GUID from output like
// "Power Scheme GUID: 381b4222-f694-41f0-9685-ff5bb260df2e  (Balanced)".
func parseSchemeGUID(out string) string {
	return schemeGUIDRe.FindString(out)
}
