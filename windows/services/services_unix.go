// Copyright (c) Mondoo, Inc.
// SPDX-License-Identifier: BUSL-1.1

//go:build !windows
// +build !windows

package services

import "github.com/cockroachdb/errors"

// non-windows stub
func wmiService(name string) (*Service, error) {
	return nil, errors.New("wmi service queries are not supported on non-windows platforms")
}
