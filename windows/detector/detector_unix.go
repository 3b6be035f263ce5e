// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

//go:build linux || darwin || netbsd || openbsd || freebsd
// +build linux darwin netbsd openbsd freebsd

package detector

import "go.mondoo.com/cnrestore/connection"

func GetCurrentVersion(conn connection.Connection) (*WindowsCurrentVersion, error) {
	return powershellCurrentVersion(conn)
}
