// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package detector determines the Windows build, edition and revision of
// the connected machine. It prefers a native registry read when running
// locally on Windows and falls back to PowerShell everywhere else.
package detector

import (
	"encoding/json"
	"io"

	"go.mondoo.com/cnrestore/connection"
	"go.mondoo.com/cnrestore/windows/powershell"
)

// WindowsCurrentVersion carries the values of the CurrentVersion registry
// key that identify a Windows installation.
type WindowsCurrentVersion struct {
	CurrentBuild   string `json:"CurrentBuild"`
	EditionID      string `json:"EditionID"`
	ReleaseID      string `json:"ReleaseId"`
	DisplayVersion string `json:"DisplayVersion"`
	ProductName    string `json:"ProductName"`
	Architecture   string `json:"Architecture"`
	// UBR is the update build revision, e.g. the 720 in 17763.720.
	// Only available on Windows 10/2019 and later.
	UBR int `json:"UBR"`
}

// CurrentVersionScript reads the values that identify the installation
// from the CurrentVersion registry key.
const CurrentVersionScript = "Get-ItemProperty -Path 'HKLM:\\SOFTWARE\\Microsoft\\Windows NT\\CurrentVersion' -Name CurrentBuild, UBR, EditionID, ReleaseId, DisplayVersion, ProductName | ConvertTo-Json"

func ParseCurrentVersion(r io.Reader) (*WindowsCurrentVersion, error) {
	var version WindowsCurrentVersion
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(data, &version)
	if err != nil {
		return nil, err
	}
	return &version, nil
}

func powershellCurrentVersion(conn connection.Connection) (*WindowsCurrentVersion, error) {
	cmd, err := conn.RunCommand(powershell.Encode(CurrentVersionScript))
	if err != nil {
		return nil, err
	}
	return ParseCurrentVersion(cmd.Stdout)
}
