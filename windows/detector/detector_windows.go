// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

//go:build windows
// +build windows

package detector

import (
	"runtime"

	"go.mondoo.com/cnrestore/connection"
	"golang.org/x/sys/windows/registry"
)

func GetCurrentVersion(conn connection.Connection) (*WindowsCurrentVersion, error) {
	// if we are running locally on windows, we want to avoid using powershell to be faster
	_, ok := conn.(*connection.Local)
	if ok && runtime.GOOS == "windows" {
		k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
		if err != nil {
			return nil, err
		}
		defer k.Close()

		currentBuild, _, err := k.GetStringValue("CurrentBuild")
		if err != nil && err != registry.ErrNotExist {
			return nil, err
		}

		ubr, _, err := k.GetIntegerValue("UBR")
		if err != nil && err != registry.ErrNotExist {
			return nil, err
		}

		edition, _, err := k.GetStringValue("EditionID")
		if err != nil && err != registry.ErrNotExist {
			return nil, err
		}

		displayVersion, _, err := k.GetStringValue("DisplayVersion")
		if err != nil && err != registry.ErrNotExist {
			return nil, err
		}

		productName, _, err := k.GetStringValue("ProductName")
		if err != nil && err != registry.ErrNotExist {
			return nil, err
		}

		return &WindowsCurrentVersion{
			CurrentBuild:   currentBuild,
			EditionID:      edition,
			DisplayVersion: displayVersion,
			ProductName:    productName,
			UBR:            int(ubr),
		}, nil
	}

	// for all other connections use powershell
	return powershellCurrentVersion(conn)
}
